// Package testutil provides git repository fixtures shared across tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Git runs a git command in dir and fails the test on error.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed with output: %s", strings.Join(args, " "), string(output))
	return string(output)
}

// InitRepo initializes a git repository in dir with user config set.
func InitRepo(t *testing.T, dir string) {
	t.Helper()
	Git(t, dir, "init", "--initial-branch=main")
	Git(t, dir, "config", "user.email", "test@example.com")
	Git(t, dir, "config", "user.name", "Test User")
}

// WriteFile writes content to a file under dir, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Commit writes a file, stages it and commits it.
func Commit(t *testing.T, dir, name, content, message string) {
	t.Helper()
	WriteFile(t, dir, name, content)
	Git(t, dir, "add", name)
	Git(t, dir, "commit", "-m", message)
}

// InitRepoWithCommit initializes a repository holding one commit.
func InitRepoWithCommit(t *testing.T, dir string) {
	t.Helper()
	InitRepo(t, dir)
	Commit(t, dir, "README.md", "# Test Project\n", "initial commit")
}

// StagedPaths returns the paths currently staged in dir.
func StagedPaths(t *testing.T, dir string) []string {
	t.Helper()
	output := strings.TrimSpace(Git(t, dir, "diff", "--cached", "--name-only"))
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}
