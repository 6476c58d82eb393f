// Package keymap applies user keybinding overrides to bubbles key maps.
package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"github.com/mattsolo1/grove-pick/config"
)

// ApplyOverrides applies keybinding overrides from config to any KeyMap struct.
// It uses reflection to map config keys (snake_case) to struct fields
// (CamelCase). Only fields of type key.Binding are processed; embedded structs
// are recursed into.
//
// Example:
//
//	km := KeyMap{ToggleSelect: key.NewBinding(...), ...}
//	ApplyOverrides(&km, overrides) // overrides["toggle_select"] -> km.ToggleSelect
func ApplyOverrides(km interface{}, overrides config.KeybindingsConfig) {
	if overrides == nil {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	applyOverridesRecursive(v, overrides)
}

func applyOverridesRecursive(v reflect.Value, overrides config.KeybindingsConfig) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides)
			continue
		}

		if fieldType.Type != bindingType {
			continue
		}

		configKey := camelToSnake(fieldType.Name)

		if keys, ok := overrides[configKey]; ok && len(keys) > 0 {
			// Preserve the help description of the default binding
			currentBinding := field.Interface().(key.Binding)
			helpDesc := currentBinding.Help().Desc

			newBinding := key.NewBinding(
				key.WithKeys(keys...),
				key.WithHelp(keys[0], helpDesc),
			)
			field.Set(reflect.ValueOf(newBinding))
		}
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: ToggleSelect -> toggle_select, GoToTop -> go_to_top
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
