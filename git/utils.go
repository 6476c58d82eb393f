package git

import (
	"context"
	"fmt"
	"strings"
)

// GetGitRoot returns the root directory of the git repository containing dir.
func GetGitRoot(ctx context.Context, r *Runner, dir string) (string, error) {
	output, err := r.Output(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// IsGitRepo checks if the given directory is inside a git repository.
func IsGitRepo(ctx context.Context, r *Runner, dir string) bool {
	return r.Run(ctx, dir, "rev-parse", "--git-dir") == nil
}

// CurrentBranch returns the checked-out branch name for dir.
func CurrentBranch(ctx context.Context, r *Runner, dir string) (string, error) {
	output, err := r.Output(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// ResolveRef resolves a git ref (branch name, tag, or commit) to its full
// commit hash. Returns an error if the ref does not resolve, which is how
// actions detect candidates whose commit no longer exists.
func ResolveRef(ctx context.Context, r *Runner, dir, ref string) (string, error) {
	if err := r.Builder().Validate("gitRef", ref); err != nil {
		return "", err
	}
	output, err := r.Output(ctx, dir, "rev-parse", "--verify", ref)
	if err != nil {
		return "", fmt.Errorf("resolve ref %s: %w", ref, err)
	}
	return strings.TrimSpace(output), nil
}

// GetHeadCommit returns the current HEAD commit hash for a repository.
func GetHeadCommit(ctx context.Context, r *Runner, dir string) (string, error) {
	return ResolveRef(ctx, r, dir, "HEAD")
}
