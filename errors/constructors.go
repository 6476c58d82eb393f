package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PickError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PickError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// NotARepository creates a not-a-git-repository error
func NotARepository(dir string) *PickError {
	return New(ErrCodeGitNotRepo, fmt.Sprintf("not a git repository: %s", dir)).
		WithDetail("dir", dir)
}

// SourceUnknown creates an unknown source error
func SourceUnknown(name string) *PickError {
	return New(ErrCodeSourceUnknown, fmt.Sprintf("unknown source '%s'", name)).
		WithDetail("source", name)
}

// ActionUnknown creates an unknown action error
func ActionUnknown(name string) *PickError {
	return New(ErrCodeActionUnknown, fmt.Sprintf("unknown action '%s'", name)).
		WithDetail("action", name)
}

// CandidateGone creates an error for a candidate whose target no longer exists
func CandidateGone(ref string) *PickError {
	return New(ErrCodeCandidateGone, fmt.Sprintf("candidate target no longer exists: %s", ref)).
		WithDetail("ref", ref)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *PickError {
	pickErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		pickErr = pickErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return pickErr
}
