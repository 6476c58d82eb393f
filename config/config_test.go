package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-pick/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindConfigFile(t *testing.T) {
	t.Run("in starting directory", func(t *testing.T) {
		dir := t.TempDir()
		want := writeConfig(t, dir, "grove-pick.yml", "theme: dark\n")

		got, err := FindConfigFile(dir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("walks up to parent", func(t *testing.T) {
		dir := t.TempDir()
		want := writeConfig(t, dir, "grove-pick.yml", "theme: dark\n")
		nested := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		got, err := FindConfigFile(nested)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindConfigFile(t.TempDir())
		assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
	})
}

func TestLoad(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "grove-pick.yml", `
theme: light
editor: vim
sources:
  log:
    max_count: 500
  changed:
    base: origin/main
exclude:
  - "*.log"
  - "vendor/"
keybindings:
  add:
    - "a"
  reset:
    - "ctrl+r"
commit:
  conventional: true
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, "vim", cfg.Editor)
		assert.Equal(t, 500, cfg.Sources.Log.MaxCount)
		assert.Equal(t, "origin/main", cfg.Sources.Changed.Base)
		assert.Equal(t, []string{"*.log", "vendor/"}, cfg.Exclude)
		assert.Equal(t, []string{"a"}, cfg.Keybindings["add"])
		assert.True(t, cfg.Commit.Conventional)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "grove-pick.toml", `
theme = "dark"

[sources.changed]
base = "main"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.Theme)
		assert.Equal(t, "main", cfg.Sources.Changed.Base)
	})

	t.Run("schema rejects bad theme", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "grove-pick.yml", "theme: solarized\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	})

	t.Run("schema rejects unknown source option", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "grove-pick.yml", `
sources:
  log:
    pathspce: "src/"
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "grove-pick.yml"))
		assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
	})
}

func TestLoadDefault(t *testing.T) {
	t.Run("no config file means defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := LoadDefault()
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Theme)
		assert.Empty(t, cfg.Exclude)
	})

	t.Run("finds file in cwd", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "grove-pick.yml", "editor: nvim\n")
		t.Chdir(dir)

		cfg, err := LoadDefault()
		require.NoError(t, err)
		assert.Equal(t, "nvim", cfg.Editor)
	})
}

func TestUnmarshalExtension(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "grove-pick.yml", `
theme: dark
picker:
  preview_width: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	var ext struct {
		PreviewWidth int `yaml:"preview_width"`
	}
	require.NoError(t, cfg.UnmarshalExtension("picker", &ext))
	assert.Equal(t, 60, ext.PreviewWidth)

	// Unknown section is not an error
	var other struct{}
	assert.NoError(t, cfg.UnmarshalExtension("nope", &other))
}
