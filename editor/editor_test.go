package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNvim(t *testing.T) {
	t.Run("no surrounding nvim", func(t *testing.T) {
		t.Setenv("NVIM", "")
		t.Setenv("NVIM_LISTEN_ADDRESS", "")
		_, ok := DetectNvim()
		assert.False(t, ok)
	})

	t.Run("NVIM wins", func(t *testing.T) {
		t.Setenv("NVIM", "/tmp/nvim.sock")
		t.Setenv("NVIM_LISTEN_ADDRESS", "/tmp/other.sock")
		addr, ok := DetectNvim()
		require.True(t, ok)
		assert.Equal(t, "/tmp/nvim.sock", addr)
	})

	t.Run("legacy listen address", func(t *testing.T) {
		t.Setenv("NVIM", "")
		t.Setenv("NVIM_LISTEN_ADDRESS", "/tmp/legacy.sock")
		addr, ok := DetectNvim()
		require.True(t, ok)
		assert.Equal(t, "/tmp/legacy.sock", addr)
	})
}

func TestFnameEscape(t *testing.T) {
	assert.Equal(t, "plain.txt", fnameEscape("plain.txt"))
	assert.Equal(t, `with\ space.txt`, fnameEscape("with space.txt"))
	assert.Equal(t, `a\%b\#c`, fnameEscape("a%b#c"))
}

func TestSubprocessOpener(t *testing.T) {
	t.Run("runs the editor command", func(t *testing.T) {
		// "true" exits 0 without reading the file
		o := NewSubprocessOpener("true")
		path := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		assert.NoError(t, o.OpenFile(context.Background(), path))
	})

	t.Run("editor failure is reported", func(t *testing.T) {
		o := NewSubprocessOpener("false")
		assert.Error(t, o.OpenFile(context.Background(), "whatever"))
	})

	t.Run("open text writes a temp file", func(t *testing.T) {
		o := NewSubprocessOpener("true")
		assert.NoError(t, o.OpenText(context.Background(), "git-show-abc", "diff content\n"))
	})

	t.Run("defaults to vi", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		o := NewSubprocessOpener("")
		assert.Equal(t, "vi", o.editor)
	})
}
