package source

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-pick/config"
	"github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/git"
	"github.com/mattsolo1/grove-pick/testutil"
)

// fakeOpener records open requests instead of talking to an editor.
type fakeOpener struct {
	files []string
	texts []string
}

func (f *fakeOpener) OpenFile(ctx context.Context, path string) error {
	f.files = append(f.files, path)
	return nil
}

func (f *fakeOpener) OpenText(ctx context.Context, name, content string) error {
	f.texts = append(f.texts, name)
	return nil
}

func testEnv(t *testing.T, dir string, cfg *config.Config) *Env {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	env, err := NewEnv(context.Background(), dir, cfg, &fakeOpener{})
	require.NoError(t, err)
	return env
}

func gather(t *testing.T, env *Env, raw string) []Candidate {
	t.Helper()
	spec, err := ParseSpec(raw)
	require.NoError(t, err)
	src, err := NewRegistry().Open(env, spec)
	require.NoError(t, err)
	candidates, err := src.Gather(context.Background())
	require.NoError(t, err)
	return candidates
}

func TestNewEnv(t *testing.T) {
	t.Run("not a repository", func(t *testing.T) {
		_, err := NewEnv(context.Background(), t.TempDir(), nil, nil)
		assert.True(t, errors.Is(err, errors.ErrCodeGitNotRepo))
	})

	t.Run("resolves root from subdirectory", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "sub/file.txt", "x\n")

		env := testEnv(t, dir+"/sub", nil)
		files, err := git.Status(context.Background(), env.Runner, env.Root)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "sub/file.txt", files[0].RelPath)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("unknown source", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		env := testEnv(t, dir, nil)

		_, err := NewRegistry().Open(env, Spec{Name: "gitblame"})
		assert.True(t, errors.Is(err, errors.ErrCodeSourceUnknown))
	})

	t.Run("names", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"gitlog", "gitstatus", "gitchanged"}, NewRegistry().Names())
	})
}

func TestLogSource(t *testing.T) {
	dir := t.TempDir()
	testutil.InitRepoWithCommit(t, dir)
	testutil.Commit(t, dir, "a.txt", "a\n", "feat(picker): add filter")
	env := testEnv(t, dir, nil)

	t.Run("candidates keyed by hash", func(t *testing.T) {
		candidates := gather(t, env, "gitlog")
		require.Len(t, candidates, 2)
		for _, c := range candidates {
			assert.Equal(t, KindCommit, c.Kind)
			assert.Len(t, c.Hash, 40)
			assert.NotEmpty(t, c.Display)
		}
	})

	t.Run("conventional subjects are tagged", func(t *testing.T) {
		candidates := gather(t, env, "gitlog")
		assert.Equal(t, "feat", candidates[0].CommitType)
		assert.Equal(t, "", candidates[1].CommitType)
	})

	t.Run("all modifier includes other branches", func(t *testing.T) {
		testutil.Git(t, dir, "checkout", "-b", "side")
		testutil.Commit(t, dir, "side.txt", "s\n", "side commit")
		testutil.Git(t, dir, "checkout", "main")

		assert.Len(t, gather(t, env, "gitlog"), 2)
		assert.Len(t, gather(t, env, "gitlog:all"), 3)
	})

	t.Run("filter token", func(t *testing.T) {
		candidates := gather(t, env, "gitlog::add filter")
		require.Len(t, candidates, 1)
		assert.Contains(t, candidates[0].Display, "add filter")
	})

	t.Run("unknown modifier", func(t *testing.T) {
		_, err := NewRegistry().Open(env, Spec{Name: "gitlog", Modifier: "everything"})
		assert.Error(t, err)
	})
}

func TestStatusSource(t *testing.T) {
	dir := t.TempDir()
	testutil.InitRepoWithCommit(t, dir)
	testutil.WriteFile(t, dir, "README.md", "changed\n")
	testutil.WriteFile(t, dir, "new.txt", "new\n")
	testutil.Git(t, dir, "add", "new.txt")
	testutil.WriteFile(t, dir, "scratch.log", "noise\n")

	t.Run("one candidate per status line", func(t *testing.T) {
		env := testEnv(t, dir, nil)
		candidates := gather(t, env, "gitstatus")
		require.Len(t, candidates, 3)

		byRel := map[string]Candidate{}
		for _, c := range candidates {
			assert.Equal(t, KindFile, c.Kind)
			byRel[c.RelPath] = c
		}
		assert.Contains(t, byRel["README.md"].Display, "modified")
		assert.Contains(t, byRel["new.txt"].Display, "added")
		assert.Contains(t, byRel["scratch.log"].Display, "untracked")
		assert.True(t, byRel["new.txt"].Staged)
		assert.True(t, byRel["README.md"].Worktree)
	})

	t.Run("exclude patterns filter candidates", func(t *testing.T) {
		env := testEnv(t, dir, &config.Config{Exclude: []string{"*.log"}})
		candidates := gather(t, env, "gitstatus")
		require.Len(t, candidates, 2)
		for _, c := range candidates {
			assert.NotEqual(t, "scratch.log", c.RelPath)
		}
	})

	t.Run("display format mirrors symbols", func(t *testing.T) {
		display := formatStatusFile(git.StatusFile{RelPath: "foo.txt", Code: "M "})
		assert.True(t, strings.HasPrefix(display, "~ "), "display=%q", display)
		assert.True(t, strings.HasSuffix(display, "foo.txt"))
	})
}

func TestChangedSource(t *testing.T) {
	dir := t.TempDir()
	testutil.InitRepoWithCommit(t, dir)
	testutil.WriteFile(t, dir, "README.md", "changed\n")

	t.Run("simple line source", func(t *testing.T) {
		env := testEnv(t, dir, nil)
		candidates := gather(t, env, "gitchanged")
		require.Len(t, candidates, 1)
		assert.Equal(t, "README.md", candidates[0].Display)
		assert.Equal(t, "README.md", candidates[0].RelPath)
		assert.Equal(t, KindFile, candidates[0].Kind)
	})

	t.Run("untracked files are not listed", func(t *testing.T) {
		testutil.WriteFile(t, dir, "untracked.txt", "u\n")
		env := testEnv(t, dir, nil)
		candidates := gather(t, env, "gitchanged")
		assert.Len(t, candidates, 1)
	})

	t.Run("configured base ref", func(t *testing.T) {
		env := testEnv(t, dir, &config.Config{
			Sources: config.SourcesConfig{Changed: config.ChangedSourceConfig{Base: "HEAD"}},
		})
		assert.Len(t, gather(t, env, "gitchanged"), 1)
	})
}
