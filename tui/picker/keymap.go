package picker

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mattsolo1/grove-pick/config"
	"github.com/mattsolo1/grove-pick/tui/keymap"
)

// KeyMap defines the keybindings for the picker. Field names map to
// snake_case keys under "keybindings" in the config file.
type KeyMap struct {
	keymap.Base
	// Selection
	Select       key.Binding
	ToggleSelect key.Binding
	// Actions
	Preview key.Binding
	Diff    key.Binding
	Add     key.Binding
	Reset   key.Binding
	Commit  key.Binding
	Refresh key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Base: keymap.NewBase(),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mark"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "preview"),
		),
		Diff: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "diff"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "stage"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Commit: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "commit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "refresh"),
		),
	}
}

// newKeyMap builds the picker keymap with user overrides applied.
func newKeyMap(overrides config.KeybindingsConfig) KeyMap {
	km := defaultKeyMap()
	keymap.ApplyOverrides(&km, overrides)
	return km
}
