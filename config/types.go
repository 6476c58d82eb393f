package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-pick/logging"
)

// LogSourceConfig holds options for the gitlog source.
type LogSourceConfig struct {
	// Pathspec restricts the log to a path. Empty means whole repository.
	Pathspec string `yaml:"pathspec,omitempty" toml:"pathspec,omitempty"`
	// MaxCount caps the number of listed commits. 0 means git's default (unbounded).
	MaxCount int `yaml:"max_count,omitempty" toml:"max_count,omitempty"`
}

// ChangedSourceConfig holds options for the gitchanged source.
type ChangedSourceConfig struct {
	// Base is the ref the working tree is diffed against. Defaults to HEAD.
	Base string `yaml:"base,omitempty" toml:"base,omitempty"`
}

// SourcesConfig groups per-source options.
type SourcesConfig struct {
	Log     LogSourceConfig     `yaml:"log,omitempty" toml:"log,omitempty"`
	Changed ChangedSourceConfig `yaml:"changed,omitempty" toml:"changed,omitempty"`
}

// CommitConfig controls the commit action.
type CommitConfig struct {
	// Conventional, if true, rejects commit messages that do not parse as
	// conventional commits.
	Conventional bool `yaml:"conventional,omitempty" toml:"conventional,omitempty"`
}

// KeybindingsConfig maps action names (e.g. "add", "reset") to lists of key
// combinations, overriding the picker defaults.
type KeybindingsConfig map[string][]string

// Config is the root of grove-pick.yml.
type Config struct {
	// Sources holds per-source options.
	Sources SourcesConfig `yaml:"sources,omitempty" toml:"sources,omitempty"`

	// Exclude lists dockerignore-style patterns; matching paths are dropped
	// from status/changed listings.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	// Keybindings overrides picker key mappings per action name.
	Keybindings KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty"`

	// Commit controls the commit action.
	Commit CommitConfig `yaml:"commit,omitempty" toml:"commit,omitempty"`

	// Editor overrides $EDITOR for the open action fallback.
	Editor string `yaml:"editor,omitempty" toml:"editor,omitempty"`

	// Theme selects the picker color theme ("dark", "light", "terminal" or
	// "auto").
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Logging configures the logging subsystem.
	Logging logging.Config `yaml:"logging,omitempty" toml:"logging,omitempty"`

	// Extensions holds sections this package does not model; other packages
	// decode them with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// UnmarshalExtension decodes a named extension section into target using
// mapstructure, so packages can define their own config structs without this
// package importing them.
func (c *Config) UnmarshalExtension(name string, target interface{}) error {
	raw, ok := c.Extensions[name]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder for extension %q: %w", name, err)
	}

	return decoder.Decode(raw)
}

// parseYAML decodes YAML configuration bytes.
func parseYAML(data []byte, c *Config) error {
	return yaml.Unmarshal(data, c)
}

// parseTOML decodes TOML configuration bytes.
func parseTOML(data []byte, c *Config) error {
	return toml.Unmarshal(data, c)
}
