package editor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/neovim/go-client/nvim"

	"github.com/mattsolo1/grove-pick/logging"
)

// NvimOpener opens candidates in an already-running Neovim over msgpack-RPC,
// so picks land as buffers in the editor the picker was launched from.
type NvimOpener struct {
	addr string
}

// DetectNvim returns the RPC address of a surrounding Neovim instance, if
// any. Neovim exports $NVIM to child processes; older releases used
// $NVIM_LISTEN_ADDRESS.
func DetectNvim() (string, bool) {
	if addr := os.Getenv("NVIM"); addr != "" {
		return addr, true
	}
	if addr := os.Getenv("NVIM_LISTEN_ADDRESS"); addr != "" {
		return addr, true
	}
	return "", false
}

// NewNvimOpener creates an opener talking to the given RPC address.
func NewNvimOpener(addr string) *NvimOpener {
	return &NvimOpener{addr: addr}
}

// OpenFile edits the file in the attached Neovim.
func (o *NvimOpener) OpenFile(ctx context.Context, path string) error {
	v, err := o.dial()
	if err != nil {
		return err
	}
	defer v.Close()

	logging.NewLogger("editor").Debugf("nvim edit %s", path)
	return v.Command("edit " + fnameEscape(path))
}

// OpenText loads read-only content into a scratch buffer and focuses it.
func (o *NvimOpener) OpenText(ctx context.Context, name, content string) error {
	v, err := o.dial()
	if err != nil {
		return err
	}
	defer v.Close()

	buf, err := v.CreateBuffer(false, true)
	if err != nil {
		return fmt.Errorf("create scratch buffer: %w", err)
	}

	lines := strings.Split(content, "\n")
	replacement := make([][]byte, len(lines))
	for i, line := range lines {
		replacement[i] = []byte(line)
	}

	if err := v.SetBufferLines(buf, 0, -1, true, replacement); err != nil {
		return fmt.Errorf("fill scratch buffer: %w", err)
	}
	if err := v.SetBufferName(buf, name); err != nil {
		return fmt.Errorf("name scratch buffer: %w", err)
	}
	if err := v.SetBufferOption(buf, "modifiable", false); err != nil {
		return err
	}
	if err := v.SetBufferOption(buf, "filetype", "git"); err != nil {
		return err
	}
	return v.SetCurrentBuffer(buf)
}

func (o *NvimOpener) dial() (*nvim.Nvim, error) {
	v, err := nvim.Dial(o.addr)
	if err != nil {
		return nil, fmt.Errorf("connect to nvim at %s: %w", o.addr, err)
	}
	return v, nil
}

// fnameEscape escapes a path for use in an ex command, like Vim's
// fnameescape().
func fnameEscape(path string) string {
	escaped := strings.Builder{}
	for _, r := range path {
		if strings.ContainsRune(" \t\n*?[{`$\\%#'\"|!<", r) {
			escaped.WriteByte('\\')
		}
		escaped.WriteRune(r)
	}
	return escaped.String()
}
