package source

import (
	"context"
	"fmt"

	"github.com/mattsolo1/grove-pick/conventional"
	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/git"
)

// logSource lists commits; each output line becomes a candidate keyed by the
// commit hash.
type logSource struct {
	env  *Env
	opts git.LogOptions
}

func newLogSource(env *Env, spec Spec) (Source, error) {
	opts := git.LogOptions{
		Grep:     spec.Filter,
		Pathspec: env.Cfg.Sources.Log.Pathspec,
		MaxCount: env.Cfg.Sources.Log.MaxCount,
	}

	switch spec.Modifier {
	case "":
	case "all":
		opts.All = true
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("unknown gitlog modifier '%s'", spec.Modifier))
	}

	return &logSource{env: env, opts: opts}, nil
}

func (s *logSource) Name() string { return "gitlog" }

func (s *logSource) Gather(ctx context.Context) ([]Candidate, error) {
	entries, err := git.Log(ctx, s.env.Runner, s.env.Root, s.opts)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		candidate := Candidate{
			Kind:    KindCommit,
			Hash:    entry.Hash,
			Display: formatLogEntry(entry),
		}
		if c := conventional.ParseSubject(entry.Subject); c != nil {
			candidate.CommitType = c.Type
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func formatLogEntry(entry git.LogEntry) string {
	return fmt.Sprintf("%s %s %-16.16s %s", entry.ShortHash, entry.Date, entry.Author, entry.Subject)
}
