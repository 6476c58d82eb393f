package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/git"
)

// changedSource is the simple line source: one candidate per path that
// differs from the base ref, no structured parsing beyond line splitting.
type changedSource struct {
	env  *Env
	base string
}

func newChangedSource(env *Env, spec Spec) (Source, error) {
	if spec.Modifier != "" {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("gitchanged takes no modifier, got '%s'", spec.Modifier))
	}
	return &changedSource{env: env, base: env.Cfg.Sources.Changed.Base}, nil
}

func (s *changedSource) Name() string { return "gitchanged" }

func (s *changedSource) Gather(ctx context.Context) ([]Candidate, error) {
	paths, err := git.Changed(ctx, s.env.Runner, s.env.Root, s.base)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(paths))
	for _, relPath := range paths {
		if s.env.Excluded(relPath) {
			continue
		}
		candidates = append(candidates, Candidate{
			Kind:     KindFile,
			Path:     filepath.Join(s.env.Root, relPath),
			RelPath:  relPath,
			Worktree: true,
			Display:  relPath,
		})
	}
	return candidates, nil
}
