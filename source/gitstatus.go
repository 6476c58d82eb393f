package source

import (
	"context"
	"fmt"

	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/git"
)

// statusSource lists changed/untracked files from git status --porcelain.
type statusSource struct {
	env *Env
}

func newStatusSource(env *Env, spec Spec) (Source, error) {
	if spec.Modifier != "" {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("gitstatus takes no modifier, got '%s'", spec.Modifier))
	}
	return &statusSource{env: env}, nil
}

func (s *statusSource) Name() string { return "gitstatus" }

func (s *statusSource) Gather(ctx context.Context) ([]Candidate, error) {
	files, err := git.Status(ctx, s.env.Runner, s.env.Root)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(files))
	for _, file := range files {
		if s.env.Excluded(file.RelPath) {
			continue
		}
		candidates = append(candidates, Candidate{
			Kind:     KindFile,
			Path:     file.Path,
			RelPath:  file.RelPath,
			Code:     file.Code,
			Staged:   file.Staged,
			Worktree: file.Worktree,
			Display:  formatStatusFile(file),
		})
	}
	return candidates, nil
}

// formatStatusFile renders "<symbols> <index desc> <worktree desc> <path>".
// The worktree description is dropped when it repeats the index one.
func formatStatusFile(file git.StatusFile) string {
	index, worktree := file.Code[0], file.Code[1]
	indexDesc := git.StatusDescription(index)
	worktreeDesc := git.StatusDescription(worktree)
	if worktreeDesc == indexDesc {
		worktreeDesc = ""
	}

	return fmt.Sprintf("%s%s %-12s %-12s %s",
		git.StatusSymbol(index), git.StatusSymbol(worktree),
		indexDesc, worktreeDesc, file.RelPath)
}
