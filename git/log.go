package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// logFormat is tab-separated so subjects with spaces survive splitting:
// full hash, short hash, subject, author, date.
const logFormat = "%H%x09%h%x09%s%x09%an%x09%ad"

// LogEntry represents one commit from git log output.
type LogEntry struct {
	Hash      string
	ShortHash string
	Subject   string
	Author    string
	Date      string
}

// LogOptions controls the git log invocation.
type LogOptions struct {
	// All includes commits from all branches (gitlog:all).
	All bool
	// Grep is a free-text filter passed through to git log --grep, unescaped.
	Grep string
	// Pathspec restricts the log to a path.
	Pathspec string
	// MaxCount caps the number of commits. 0 means unbounded.
	MaxCount int
}

// Log lists commits for the repository rooted at root.
func Log(ctx context.Context, r *Runner, root string, opts LogOptions) ([]LogEntry, error) {
	args := []string{"log", "--pretty=format:" + logFormat, "--date=short"}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.Grep != "" {
		// The filter token is handed to git verbatim; it is never shell
		// interpreted, argv passing only.
		args = append(args, "--grep="+opts.Grep)
	}
	if opts.MaxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(opts.MaxCount))
	}
	if opts.Pathspec != "" {
		if err := r.Builder().Validate("pathspec", opts.Pathspec); err != nil {
			return nil, fmt.Errorf("log pathspec: %w", err)
		}
		args = append(args, "--", opts.Pathspec)
	}

	lines, err := r.Lines(ctx, root, args...)
	if err != nil {
		return nil, err
	}

	entries := make([]LogEntry, 0, len(lines))
	for _, line := range lines {
		entry, ok := parseLogLine(line)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseLogLine splits one formatted log line. Lines missing the hash or
// subject are skipped; a commit without author or date still lists.
func parseLogLine(line string) (LogEntry, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 || fields[0] == "" {
		return LogEntry{}, false
	}

	entry := LogEntry{
		Hash:      fields[0],
		ShortHash: fields[1],
		Subject:   fields[2],
	}
	if len(fields) > 3 {
		entry.Author = fields[3]
	}
	if len(fields) > 4 {
		entry.Date = fields[4]
	}
	return entry, true
}
