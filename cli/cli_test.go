package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/version"
)

func TestNewStandardCommand(t *testing.T) {
	cmd := NewStandardCommand("grove-pick", "test command")

	for _, flag := range []string{"verbose", "json", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestGetOptions(t *testing.T) {
	cmd := NewStandardCommand("grove-pick", "test command")
	require.NoError(t, cmd.PersistentFlags().Set("verbose", "true"))
	require.NoError(t, cmd.PersistentFlags().Set("config", "/tmp/grove-pick.yml"))

	opts := GetOptions(cmd)
	assert.True(t, opts.Verbose)
	assert.False(t, opts.JSONOutput)
	assert.Equal(t, "/tmp/grove-pick.yml", opts.ConfigFile)
}

func TestErrorHandler(t *testing.T) {
	h := NewErrorHandler(false)

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, h.Handle(nil))
	})

	t.Run("errors are returned unchanged", func(t *testing.T) {
		err := errors.SourceUnknown("gitblame")
		assert.Equal(t, err, h.Handle(err))
	})
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(CommandOptions{ConfigFile: "/nonexistent/grove-pick.yml"})
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("grove-pick", version.GetInfo())
	assert.Equal(t, "version", cmd.Use)
	assert.NotPanics(t, func() { cmd.Run(cmd, nil) })
}
