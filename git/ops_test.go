package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pickerrors "github.com/mattsolo1/grove-pick/errors"
	"github.com/mattsolo1/grove-pick/testutil"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	t.Run("stages exactly the given paths", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "one.txt", "1\n")
		testutil.WriteFile(t, dir, "two.txt", "2\n")
		testutil.WriteFile(t, dir, "three.txt", "3\n")

		require.NoError(t, Add(ctx, r, dir, []string{"one.txt", "two.txt"}))

		staged := testutil.StagedPaths(t, dir)
		assert.ElementsMatch(t, []string{"one.txt", "two.txt"}, staged)
	})

	t.Run("error leaves index unchanged", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "one.txt", "1\n")

		err := Add(ctx, r, dir, []string{"one.txt", "missing.txt"})
		assert.Error(t, err)
		assert.Empty(t, testutil.StagedPaths(t, dir))
	})

	t.Run("rejects empty path list", func(t *testing.T) {
		err := Add(ctx, r, t.TempDir(), nil)
		assert.True(t, pickerrors.Is(err, pickerrors.ErrCodeInvalidInput))
	})

	t.Run("rejects flag-like path", func(t *testing.T) {
		err := Add(ctx, r, t.TempDir(), []string{"--force"})
		assert.Error(t, err)
	})
}

func TestResetHead(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	t.Run("unstages without deleting content", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "staged.txt", "content\n")
		testutil.Git(t, dir, "add", "staged.txt")

		require.NoError(t, ResetHead(ctx, r, dir, []string{"staged.txt"}))

		assert.Empty(t, testutil.StagedPaths(t, dir))
		data, err := os.ReadFile(filepath.Join(dir, "staged.txt"))
		require.NoError(t, err)
		assert.Equal(t, "content\n", string(data))
	})
}

func TestCheckoutPaths(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	dir := t.TempDir()
	testutil.InitRepoWithCommit(t, dir)
	testutil.WriteFile(t, dir, "README.md", "scribbled over\n")

	require.NoError(t, CheckoutPaths(ctx, r, dir, []string{"README.md"}))

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Test Project\n", string(data))
}

func TestRemovePath(t *testing.T) {
	t.Run("removes untracked file", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "junk.txt", "x\n")

		require.NoError(t, RemovePath(path))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("vanished file reports candidate gone", func(t *testing.T) {
		err := RemovePath(filepath.Join(t.TempDir(), "nope.txt"))
		assert.True(t, pickerrors.Is(err, pickerrors.ErrCodeCandidateGone))
	})
}

func TestCommit(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	t.Run("commits selected paths", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "a.txt", "a\n")
		testutil.WriteFile(t, dir, "b.txt", "b\n")
		testutil.Git(t, dir, "add", "a.txt", "b.txt")

		require.NoError(t, Commit(ctx, r, dir, "add a only", []string{"a.txt"}))

		entries, err := Log(ctx, r, dir, LogOptions{MaxCount: 1})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "add a only", entries[0].Subject)
		// b.txt stays staged, not committed
		assert.Equal(t, []string{"b.txt"}, testutil.StagedPaths(t, dir))
	})

	t.Run("rejects empty message", func(t *testing.T) {
		err := Commit(ctx, r, t.TempDir(), "", nil)
		assert.True(t, pickerrors.Is(err, pickerrors.ErrCodeInvalidInput))
	})
}

func TestDiffAndShow(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	t.Run("diff worktree change", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "README.md", "# Test Project\nmore\n")

		diff, err := Diff(ctx, r, dir, "README.md", false)
		require.NoError(t, err)
		assert.Contains(t, diff, "+more")
	})

	t.Run("cached diff for staged change", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)
		testutil.WriteFile(t, dir, "new.txt", "fresh\n")
		testutil.Git(t, dir, "add", "new.txt")

		plain, err := Diff(ctx, r, dir, "new.txt", false)
		require.NoError(t, err)
		assert.Empty(t, plain)

		cached, err := Diff(ctx, r, dir, "new.txt", true)
		require.NoError(t, err)
		assert.Contains(t, cached, "+fresh")
	})

	t.Run("show commit", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)

		head, err := GetHeadCommit(ctx, r, dir)
		require.NoError(t, err)

		out, err := Show(ctx, r, dir, head)
		require.NoError(t, err)
		assert.Contains(t, out, "initial commit")
	})

	t.Run("show vanished commit", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)

		_, err := Show(ctx, r, dir, "0123456789abcdef0123456789abcdef01234567")
		assert.True(t, pickerrors.Is(err, pickerrors.ErrCodeCandidateGone))
	})
}

func TestUtils(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	t.Run("root and branch", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)

		root, err := GetGitRoot(ctx, r, dir)
		require.NoError(t, err)
		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		assert.Equal(t, resolved, root)

		branch, err := CurrentBranch(ctx, r, dir)
		require.NoError(t, err)
		assert.Equal(t, "main", branch)

		assert.True(t, IsGitRepo(ctx, r, dir))
		assert.False(t, IsGitRepo(ctx, r, t.TempDir()))
	})

	t.Run("not a repository error code", func(t *testing.T) {
		_, err := GetGitRoot(ctx, r, t.TempDir())
		assert.True(t, pickerrors.Is(err, pickerrors.ErrCodeGitNotRepo))
	})
}
