// Package source provides the candidate sources (gitlog, gitstatus,
// gitchanged) and the actions applied to selected candidates. Sources and
// actions are looked up by name through registries, so callers can add their
// own without touching the built-ins.
package source

import (
	"context"

	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-pick/config"
	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/git"
	"github.com/mattsolo1/grove-pick/logging"
)

// Source is a named provider of candidates.
type Source interface {
	// Name returns the registered source name.
	Name() string
	// Gather runs the underlying git subcommand and returns candidates.
	// A failing subcommand yields an error and no candidates; malformed
	// output lines are skipped, never fatal.
	Gather(ctx context.Context) ([]Candidate, error)
}

// Opener opens candidates in an editor. Implementations live outside this
// package (Neovim RPC, $EDITOR subprocess).
type Opener interface {
	// OpenFile opens an existing file.
	OpenFile(ctx context.Context, path string) error
	// OpenText opens read-only text in a scratch buffer (e.g. a git show).
	OpenText(ctx context.Context, name, content string) error
}

// Env carries the shared state sources and actions operate on: the repository
// root, the git runner, configuration and the editor bridge. One Env serves
// one picker session; there is no other shared mutable state.
type Env struct {
	Runner *git.Runner
	Root   string
	Cfg    *config.Config
	Opener Opener

	matcher *patternmatcher.PatternMatcher
	log     *logrus.Entry
}

// NewEnv resolves the repository containing dir and builds the environment.
func NewEnv(ctx context.Context, dir string, cfg *config.Config, opener Opener) (*Env, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	root, err := git.GetGitRoot(ctx, git.NewRunner(), dir)
	if err != nil {
		return nil, err
	}

	return newEnvAt(root, cfg, opener)
}

func newEnvAt(root string, cfg *config.Config, opener Opener) (*Env, error) {
	env := &Env{
		Runner: git.NewRunner(),
		Root:   root,
		Cfg:    cfg,
		Opener: opener,
		log:    logging.NewLogger("source"),
	}

	if len(cfg.Exclude) > 0 {
		matcher, err := patternmatcher.New(cfg.Exclude)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "bad exclude patterns")
		}
		env.matcher = matcher
	}

	return env, nil
}

// Excluded reports whether a repository-relative path matches the configured
// exclude patterns.
func (e *Env) Excluded(relPath string) bool {
	if e.matcher == nil {
		return false
	}
	matched, err := e.matcher.MatchesOrParentMatches(relPath)
	if err != nil {
		e.log.WithError(err).Debugf("exclude match failed for %s", relPath)
		return false
	}
	return matched
}

// Constructor builds a source for a parsed invocation spec.
type Constructor func(env *Env, spec Spec) (Source, error)

// Registry maps source names to constructors.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry returns a registry with the built-in sources registered.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]Constructor)}
	r.Register("gitlog", newLogSource)
	r.Register("gitstatus", newStatusSource)
	r.Register("gitchanged", newChangedSource)
	return r
}

// Register adds a named source constructor.
func (r *Registry) Register(name string, ctor Constructor) {
	r.constructors[name] = ctor
}

// Names returns the registered source names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	return names
}

// Open resolves a parsed invocation spec to a source.
func (r *Registry) Open(env *Env, spec Spec) (Source, error) {
	ctor, ok := r.constructors[spec.Name]
	if !ok {
		return nil, errors.SourceUnknown(spec.Name)
	}
	return ctor(env, spec)
}
