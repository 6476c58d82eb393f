package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattsolo1/grove-pick/conventional"
	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/git"
)

// ResetMode selects what reset does for files that are both staged and
// modified in the working tree, where unstaging and discarding are different
// operations.
type ResetMode int

const (
	// ResetModeAsk means no choice was supplied; ambiguous candidates error
	// so an interactive caller can prompt and retry.
	ResetModeAsk ResetMode = iota
	// ResetModeReset unstages (git reset HEAD --).
	ResetModeReset
	// ResetModeCheckout discards working-tree changes (git checkout --).
	ResetModeCheckout
)

// ActionRequest carries the selected candidates plus action-specific input.
type ActionRequest struct {
	Candidates []Candidate
	// Message is the commit message for the commit action.
	Message string
	// ResetMode disambiguates reset on staged+modified files.
	ResetMode ResetMode
}

// ActionResult carries text produced by an action (diff/show output for
// preview-style actions). Nil-equivalent for pure side-effect actions.
type ActionResult struct {
	Output string
}

// Handler executes one named action against selected candidates.
type Handler func(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error)

// Actions is the action-name dispatch table.
type Actions struct {
	handlers map[string]Handler
}

// NewActions returns the built-in action set: open (default), preview,
// delete, reset, add, commit.
func NewActions() *Actions {
	a := &Actions{handlers: make(map[string]Handler)}
	a.Register("open", actionOpen)
	a.Register("preview", actionPreview)
	a.Register("delete", actionDelete)
	a.Register("reset", actionReset)
	a.Register("add", actionAdd)
	a.Register("commit", actionCommit)
	return a
}

// Register adds a named handler.
func (a *Actions) Register(name string, h Handler) {
	a.handlers[name] = h
}

// Names returns the registered action names.
func (a *Actions) Names() []string {
	names := make([]string, 0, len(a.handlers))
	for name := range a.handlers {
		names = append(names, name)
	}
	return names
}

// Invoke dispatches an action by name.
func (a *Actions) Invoke(ctx context.Context, env *Env, name string, req ActionRequest) (*ActionResult, error) {
	handler, ok := a.handlers[name]
	if !ok {
		return nil, errors.ActionUnknown(name)
	}
	if len(req.Candidates) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no candidates selected")
	}
	return handler(ctx, env, req)
}

// actionOpen opens the candidate in an editor: commits as a read-only show
// buffer, files directly.
func actionOpen(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error) {
	if env.Opener == nil {
		return nil, errors.New(errors.ErrCodeInternal, "no editor opener configured")
	}

	for _, c := range req.Candidates {
		switch c.Kind {
		case KindCommit:
			content, err := git.Show(ctx, env.Runner, env.Root, c.Hash)
			if err != nil {
				return nil, err
			}
			short := c.Hash
			if len(short) > 12 {
				short = short[:12]
			}
			if err := env.Opener.OpenText(ctx, "git-show-"+short, content); err != nil {
				return nil, err
			}
		default:
			if _, err := os.Stat(c.Path); err != nil {
				return nil, errors.CandidateGone(c.Path)
			}
			if err := env.Opener.OpenFile(ctx, c.Path); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// actionPreview renders the candidate without leaving the picker: git show
// for commits, a diff for files.
func actionPreview(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error) {
	c := req.Candidates[0]
	switch c.Kind {
	case KindCommit:
		out, err := git.Show(ctx, env.Runner, env.Root, c.Hash)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Output: out}, nil
	default:
		out, err := diffCandidate(ctx, env, c)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Output: out}, nil
	}
}

// actionDelete runs a diff of the candidate against the working copy. The
// name is a historical quirk kept deliberately; it deletes nothing.
func actionDelete(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error) {
	c := req.Candidates[0]
	if c.Kind == KindCommit {
		out, err := env.Runner.Output(ctx, env.Root, "diff", c.Hash)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Output: out}, nil
	}

	out, err := diffCandidate(ctx, env, c)
	if err != nil {
		return nil, err
	}
	return &ActionResult{Output: out}, nil
}

// diffCandidate picks the cached diff for staged-only files, since their
// working-tree diff is empty.
func diffCandidate(ctx context.Context, env *Env, c Candidate) (string, error) {
	cached := c.Staged && !c.Worktree
	return git.Diff(ctx, env.Runner, env.Root, c.RelPath, cached)
}

// actionReset branches four ways per candidate: staged+modified needs an
// explicit mode, modified-only is checked out, staged-only is unstaged,
// untracked files are removed from disk.
func actionReset(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error) {
	for _, c := range req.Candidates {
		if c.Kind != KindFile {
			return nil, errors.New(errors.ErrCodeInvalidInput, "reset applies to file candidates only")
		}

		switch {
		case c.Staged && c.Worktree:
			switch req.ResetMode {
			case ResetModeReset:
				if err := git.ResetHead(ctx, env.Runner, env.Root, []string{c.RelPath}); err != nil {
					return nil, err
				}
			case ResetModeCheckout:
				if err := git.CheckoutPaths(ctx, env.Runner, env.Root, []string{c.RelPath}); err != nil {
					return nil, err
				}
			default:
				return nil, errors.New(errors.ErrCodeInvalidInput,
					fmt.Sprintf("%s is staged and modified: choose reset or checkout", c.RelPath))
			}
		case c.Worktree:
			if err := git.CheckoutPaths(ctx, env.Runner, env.Root, []string{c.RelPath}); err != nil {
				return nil, err
			}
		case c.Staged:
			if err := git.ResetHead(ctx, env.Runner, env.Root, []string{c.RelPath}); err != nil {
				return nil, err
			}
		default:
			// Untracked
			if err := git.RemovePath(c.Path); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// actionAdd stages exactly the selected paths in one git invocation.
func actionAdd(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error) {
	paths, err := filePaths(req.Candidates)
	if err != nil {
		return nil, err
	}
	if err := git.Add(ctx, env.Runner, env.Root, paths); err != nil {
		return nil, err
	}
	return nil, nil
}

// actionCommit commits the selected paths with the supplied message.
func actionCommit(ctx context.Context, env *Env, req ActionRequest) (*ActionResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "commit message required")
	}
	if env.Cfg.Commit.Conventional {
		if _, err := conventional.Parse(message); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "commit message is not a conventional commit")
		}
	}

	paths, err := filePaths(req.Candidates)
	if err != nil {
		return nil, err
	}
	if err := git.Commit(ctx, env.Runner, env.Root, message, paths); err != nil {
		return nil, err
	}
	return nil, nil
}

// filePaths collects repository-relative paths, rejecting commit candidates.
func filePaths(candidates []Candidate) ([]string, error) {
	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Kind != KindFile {
			return nil, errors.New(errors.ErrCodeInvalidInput, "action applies to file candidates only")
		}
		paths = append(paths, c.RelPath)
	}
	return paths, nil
}
