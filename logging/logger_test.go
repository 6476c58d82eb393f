package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("singleton per component", func(t *testing.T) {
		a := NewLogger("test-singleton")
		b := NewLogger("test-singleton")
		assert.Same(t, a, b)
	})

	t.Run("component field is set", func(t *testing.T) {
		entry := NewLogger("test-field")
		assert.Equal(t, "test-field", entry.Data["component"])
	})

	t.Run("level from environment", func(t *testing.T) {
		t.Setenv("GROVE_PICK_LOG_LEVEL", "debug")
		entry := NewLogger("test-env-level")
		assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	})

	t.Run("default file sink path", func(t *testing.T) {
		NewLogger("test-file-sink")
		cwd, err := os.Getwd()
		require.NoError(t, err)
		entries, err := os.ReadDir(filepath.Join(cwd, ".grove-pick", "logs"))
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})
}

func TestSetConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	SetConfig(Config{Level: "warn"})
	t.Cleanup(func() { SetConfig(Config{}) })

	entry := NewLogger("test-config-level")
	assert.Equal(t, logrus.WarnLevel, entry.Logger.GetLevel())
}
