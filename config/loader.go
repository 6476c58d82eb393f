package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/grove-pick/errors"
)

// Config file names searched for, in order, in each directory walking up
// from the starting directory.
var configFileNames = []string{"grove-pick.yml", "grove-pick.yaml", "grove-pick.toml"}

// FindConfigFile walks up from dir looking for a grove-pick config file.
func FindConfigFile(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(dir)
		}
		dir = parent
	}
}

// Load reads, parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = parseTOML(data, cfg)
	default:
		err = parseYAML(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("parse config %s", path))
	}

	if err := ValidateSchema(data, filepath.Ext(path)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault searches for a config file from the current working directory
// upwards. A missing file is not an error; defaults apply.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	path, err := FindConfigFile(cwd)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			return &Config{}, nil
		}
		return nil, err
	}

	return Load(path)
}
