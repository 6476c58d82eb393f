package git

import (
	"context"
	"fmt"
	"os"

	pickerrors "github.com/mattsolo1/grove-pick/errors"
)

// validatePaths runs the pathspec validator over every path.
func validatePaths(r *Runner, paths []string) error {
	if len(paths) == 0 {
		return pickerrors.New(pickerrors.ErrCodeInvalidInput, "no paths given")
	}
	for _, p := range paths {
		if err := r.Builder().Validate("pathspec", p); err != nil {
			return err
		}
	}
	return nil
}

// Add stages exactly the given paths. A single git invocation, so a failure
// leaves the index unchanged.
func Add(ctx context.Context, r *Runner, root string, paths []string) error {
	if err := validatePaths(r, paths); err != nil {
		return err
	}
	args := append([]string{"add", "--"}, paths...)
	return r.Run(ctx, root, args...)
}

// ResetHead unstages the given paths without touching working-tree content.
func ResetHead(ctx context.Context, r *Runner, root string, paths []string) error {
	if err := validatePaths(r, paths); err != nil {
		return err
	}
	args := append([]string{"reset", "HEAD", "--"}, paths...)
	return r.Run(ctx, root, args...)
}

// CheckoutPaths discards working-tree modifications to the given paths.
func CheckoutPaths(ctx context.Context, r *Runner, root string, paths []string) error {
	if err := validatePaths(r, paths); err != nil {
		return err
	}
	args := append([]string{"checkout", "--"}, paths...)
	return r.Run(ctx, root, args...)
}

// RemovePath deletes an untracked file from disk. Untracked files are unknown
// to git, so this is the one operation that bypasses the git CLI.
func RemovePath(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return pickerrors.CandidateGone(path)
		}
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Commit commits the given paths with message. When paths is empty the commit
// covers whatever is staged.
func Commit(ctx context.Context, r *Runner, root, message string, paths []string) error {
	if message == "" {
		return pickerrors.New(pickerrors.ErrCodeInvalidInput, "empty commit message")
	}
	args := []string{"commit", "-m", message}
	if len(paths) > 0 {
		if err := validatePaths(r, paths); err != nil {
			return err
		}
		args = append(args, "--")
		args = append(args, paths...)
	}
	return r.Run(ctx, root, args...)
}

// Diff returns the diff of a path against the index, or against HEAD when
// cached is true (for staged-only files).
func Diff(ctx context.Context, r *Runner, root, relPath string, cached bool) (string, error) {
	if err := r.Builder().Validate("pathspec", relPath); err != nil {
		return "", err
	}
	args := []string{"diff"}
	if cached {
		args = append(args, "--cached")
	}
	args = append(args, "--", relPath)
	return r.Output(ctx, root, args...)
}

// Show renders a commit (git show) for preview and open buffers.
func Show(ctx context.Context, r *Runner, root, hash string) (string, error) {
	if err := r.Builder().Validate("gitRef", hash); err != nil {
		return "", err
	}
	output, err := r.Output(ctx, root, "show", hash)
	if err != nil {
		if pickerrors.Is(err, pickerrors.ErrCodeCommandFailed) {
			return "", pickerrors.CandidateGone(hash)
		}
		return "", err
	}
	return output, nil
}
