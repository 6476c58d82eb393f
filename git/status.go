package git

import (
	"context"
	"path/filepath"
	"strings"
)

// StatusFile represents one entry from git status --porcelain output.
type StatusFile struct {
	// Path is the absolute path of the file.
	Path string
	// RelPath is the path relative to the repository root, as printed by git.
	RelPath string
	// Code is the two-character XY porcelain status code.
	Code string
	// Staged is true when the index column reports a change.
	Staged bool
	// Worktree is true when the working-tree column reports a change.
	Worktree bool
}

// statusSymbols maps a porcelain status letter to its display symbol and
// description.
var statusSymbols = map[byte]struct {
	Symbol string
	Desc   string
}{
	' ': {" ", ""},
	'M': {"~", "modified"},
	'A': {"+", "added"},
	'D': {"-", "deleted"},
	'R': {"→", "renamed"},
	'C': {"C", "copied"},
	'U': {"U", "updated"},
	'?': {"?", "untracked"},
}

// KnownStatusLetter reports whether b is a recognized porcelain status letter.
func KnownStatusLetter(b byte) bool {
	_, ok := statusSymbols[b]
	return ok
}

// StatusSymbol returns the display symbol for a porcelain status letter.
func StatusSymbol(b byte) string {
	if s, ok := statusSymbols[b]; ok {
		return s.Symbol
	}
	return string(b)
}

// StatusDescription returns the human description for a porcelain status letter.
func StatusDescription(b byte) string {
	if s, ok := statusSymbols[b]; ok {
		return s.Desc
	}
	return ""
}

// Status lists changed and untracked files for the repository rooted at root.
func Status(ctx context.Context, r *Runner, root string) ([]StatusFile, error) {
	lines, err := r.Lines(ctx, root, "status", "--porcelain", "-uall")
	if err != nil {
		return nil, err
	}
	return ParsePorcelain(lines, root), nil
}

// ParsePorcelain parses porcelain v1 status lines into StatusFile entries.
// Malformed lines are skipped rather than failing the whole listing.
func ParsePorcelain(lines []string, root string) []StatusFile {
	files := make([]StatusFile, 0, len(lines))
	for _, line := range lines {
		file, ok := parsePorcelainLine(line, root)
		if !ok {
			continue
		}
		files = append(files, file)
	}
	return files
}

// parsePorcelainLine parses one "XY path" line. Rename/copy lines read
// "XY old -> new"; the destination is kept as the entry's path.
func parsePorcelainLine(line, root string) (StatusFile, bool) {
	if len(line) < 4 || line[2] != ' ' {
		return StatusFile{}, false
	}

	index, worktree := line[0], line[1]
	if !KnownStatusLetter(index) || !KnownStatusLetter(worktree) {
		return StatusFile{}, false
	}

	relPath := line[3:]
	if index == 'R' || index == 'C' || worktree == 'R' || worktree == 'C' {
		if _, dst, found := strings.Cut(relPath, " -> "); found {
			relPath = dst
		}
	}
	relPath = unquotePath(relPath)
	if relPath == "" {
		return StatusFile{}, false
	}

	return StatusFile{
		Path:     filepath.Join(root, relPath),
		RelPath:  relPath,
		Code:     line[:2],
		Staged:   index != ' ' && index != '?',
		Worktree: worktree != ' ' && worktree != '?',
	}, true
}

// unquotePath strips the C-style quoting git applies to paths with special
// characters. Escape sequences beyond \" and \\ are left as-is; git only
// quotes, it never truncates, so the path stays usable for display.
func unquotePath(p string) string {
	if len(p) < 2 || p[0] != '"' || p[len(p)-1] != '"' {
		return p
	}
	inner := p[1 : len(p)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `\\`, `\`)
	return inner
}
