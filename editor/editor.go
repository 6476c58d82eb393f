// Package editor bridges candidates to a text editor: a running Neovim via
// msgpack-RPC when one surrounds the process, otherwise $EDITOR as a
// subprocess.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mattsolo1/grove-pick/source"
)

// SubprocessOpener opens files by spawning an editor command attached to the
// terminal.
type SubprocessOpener struct {
	editor string
}

// NewSubprocessOpener creates an opener for the given editor command.
// Empty falls back to $EDITOR, then to vi.
func NewSubprocessOpener(editor string) *SubprocessOpener {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	return &SubprocessOpener{editor: editor}
}

// OpenFile runs the editor on the file and waits for it to exit.
func (o *SubprocessOpener) OpenFile(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, o.editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", o.editor, path, err)
	}
	return nil
}

// OpenText writes the content to a temporary file and opens that.
func (o *SubprocessOpener) OpenText(ctx context.Context, name, content string) error {
	dir, err := os.MkdirTemp("", "grove-pick-")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return err
	}
	return o.OpenFile(ctx, path)
}

// New picks the best available opener: a surrounding Neovim instance wins,
// otherwise the configured editor command runs as a subprocess.
func New(configuredEditor string) source.Opener {
	if addr, ok := DetectNvim(); ok {
		return NewNvimOpener(addr)
	}
	return NewSubprocessOpener(configuredEditor)
}
