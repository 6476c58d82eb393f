package config

import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-pick/errors"
)

// configSchema is the hand-maintained JSON Schema for grove-pick.yml. Unknown
// top-level keys stay legal; they land in Config.Extensions for other
// packages to decode.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "sources": {
      "type": "object",
      "properties": {
        "log": {
          "type": "object",
          "properties": {
            "pathspec": {"type": "string"},
            "max_count": {"type": "integer", "minimum": 0}
          },
          "additionalProperties": false
        },
        "changed": {
          "type": "object",
          "properties": {
            "base": {"type": "string"}
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    },
    "exclude": {
      "type": "array",
      "items": {"type": "string"}
    },
    "keybindings": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string"}
      }
    },
    "commit": {
      "type": "object",
      "properties": {
        "conventional": {"type": "boolean"}
      },
      "additionalProperties": false
    },
    "editor": {"type": "string"},
    "theme": {"type": "string", "enum": ["dark", "light", "terminal", "auto"]},
    "logging": {"type": "object"}
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("grove-pick-schema.json", strings.NewReader(configSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("grove-pick-schema.json")
}

// ValidateSchema checks raw config bytes against the embedded schema. ext is
// the config file extension (".yml", ".yaml" or ".toml").
func ValidateSchema(data []byte, ext string) error {
	var doc interface{}

	switch strings.ToLower(ext) {
	case ".toml":
		// TOML is validated post-parse through Go types; the schema targets
		// the YAML surface. Nothing to do here.
		return nil
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse config for validation")
		}
	}

	if doc == nil {
		return nil
	}

	// jsonschema validates encoding/json-shaped values; round-trip the YAML
	// document to normalise map key and number types.
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "normalise config for validation")
	}
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "normalise config for validation")
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "config schema validation failed")
	}
	return nil
}
