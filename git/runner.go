package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/mattsolo1/grove-pick/command"
	pickerrors "github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/logging"
)

// Runner executes git subcommands through the command.SafeBuilder layer and
// maps failures onto the structured error taxonomy. All listing and action
// code in this module funnels through it; git's stdout is the sole data feed.
type Runner struct {
	builder *command.SafeBuilder
}

// NewRunner creates a Runner backed by the real executor.
func NewRunner() *Runner {
	return &Runner{builder: command.NewSafeBuilder()}
}

// NewRunnerWithExecutor creates a Runner with a custom executor for tests.
func NewRunnerWithExecutor(exec command.Executor) *Runner {
	return &Runner{builder: command.NewSafeBuilderWithExecutor(exec)}
}

// Builder exposes the underlying SafeBuilder for argument validation.
func (r *Runner) Builder() *command.SafeBuilder {
	return r.builder
}

// Output runs git with the given arguments in dir and returns trimmed stdout.
func (r *Runner) Output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd, err := r.builder.Build(ctx, "git", args...)
	if err != nil {
		return "", pickerrors.Wrap(err, pickerrors.ErrCodeInternal, "build git command")
	}

	execCmd := cmd.Exec()
	execCmd.Dir = dir

	logging.NewLogger("git").WithField("dir", dir).Debugf("git %s", strings.Join(args, " "))

	output, err := execCmd.Output()
	if err != nil {
		return "", classify(err, args)
	}

	return strings.TrimRight(string(output), "\n"), nil
}

// Lines runs git and splits stdout into lines, dropping empty ones.
func (r *Runner) Lines(ctx context.Context, dir string, args ...string) ([]string, error) {
	output, err := r.Output(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}

	raw := strings.Split(output, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Run runs git for its side effect, discarding stdout.
func (r *Runner) Run(ctx context.Context, dir string, args ...string) error {
	_, err := r.Output(ctx, dir, args...)
	return err
}

// classify maps a subprocess failure onto the error taxonomy. The stderr
// captured by exec.ExitError carries git's diagnostic.
func classify(err error, args []string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return pickerrors.Wrap(err, pickerrors.ErrCodeGitNotInstalled, "git executable not found in PATH")
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := string(exitErr.Stderr)
		switch {
		case strings.Contains(stderr, "not a git repository"):
			return pickerrors.Wrap(err, pickerrors.ErrCodeGitNotRepo, "not a git repository")
		case strings.Contains(stderr, "does not have any commits yet"),
			strings.Contains(stderr, "bad default revision"):
			return pickerrors.Wrap(err, pickerrors.ErrCodeGitNoCommits, "repository has no commits")
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return pickerrors.Wrap(err, pickerrors.ErrCodeCommandTimeout, "git command timed out")
	}

	return pickerrors.CommandFailed("git "+strings.Join(args, " "), err)
}
