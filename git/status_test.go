package git

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-pick/testutil"
)

func TestParsePorcelain(t *testing.T) {
	t.Run("spec example", func(t *testing.T) {
		files := ParsePorcelain([]string{"M  foo.txt", "?? bar.txt"}, "/repo")

		require.Len(t, files, 2)
		assert.Equal(t, "M ", files[0].Code)
		assert.Equal(t, "foo.txt", files[0].RelPath)
		assert.Equal(t, filepath.Join("/repo", "foo.txt"), files[0].Path)
		assert.True(t, files[0].Staged)
		assert.False(t, files[0].Worktree)

		assert.Equal(t, "??", files[1].Code)
		assert.Equal(t, "bar.txt", files[1].RelPath)
		assert.False(t, files[1].Staged)
		assert.False(t, files[1].Worktree)
	})

	t.Run("candidate count equals line count", func(t *testing.T) {
		lines := []string{"M  a.go", " M b.go", "A  c.go", "D  d.go", "?? e.go", "UU f.go"}
		files := ParsePorcelain(lines, "/repo")
		assert.Len(t, files, len(lines))
		for _, f := range files {
			assert.True(t, KnownStatusLetter(f.Code[0]), "index letter %q", f.Code[0])
			assert.True(t, KnownStatusLetter(f.Code[1]), "worktree letter %q", f.Code[1])
		}
	})

	t.Run("staged and worktree flags", func(t *testing.T) {
		files := ParsePorcelain([]string{"MM both.go"}, "/repo")
		require.Len(t, files, 1)
		assert.True(t, files[0].Staged)
		assert.True(t, files[0].Worktree)
	})

	t.Run("rename keeps destination path", func(t *testing.T) {
		files := ParsePorcelain([]string{"R  old.go -> new.go"}, "/repo")
		require.Len(t, files, 1)
		assert.Equal(t, "new.go", files[0].RelPath)
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		files := ParsePorcelain([]string{"M  good.go", "garbage", "X? odd.go", "M"}, "/repo")
		require.Len(t, files, 1)
		assert.Equal(t, "good.go", files[0].RelPath)
	})

	t.Run("quoted path", func(t *testing.T) {
		files := ParsePorcelain([]string{`?? "with space.txt"`}, "/repo")
		require.Len(t, files, 1)
		assert.Equal(t, "with space.txt", files[0].RelPath)
	})
}

func TestStatusSymbols(t *testing.T) {
	assert.Equal(t, "~", StatusSymbol('M'))
	assert.Equal(t, "?", StatusSymbol('?'))
	assert.Equal(t, "→", StatusSymbol('R'))
	assert.Equal(t, "modified", StatusDescription('M'))
	assert.Equal(t, "", StatusDescription(' '))
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	r := NewRunner()

	t.Run("not a repository", func(t *testing.T) {
		_, err := Status(ctx, r, t.TempDir())
		assert.Error(t, err)
	})

	t.Run("clean repository", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)

		files, err := Status(ctx, r, dir)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("mixed changes", func(t *testing.T) {
		dir := t.TempDir()
		testutil.InitRepoWithCommit(t, dir)

		testutil.WriteFile(t, dir, "README.md", "changed\n")
		testutil.WriteFile(t, dir, "staged.txt", "staged\n")
		testutil.Git(t, dir, "add", "staged.txt")
		testutil.WriteFile(t, dir, "untracked.txt", "untracked\n")

		files, err := Status(ctx, r, dir)
		require.NoError(t, err)
		require.Len(t, files, 3)

		byRel := map[string]StatusFile{}
		for _, f := range files {
			byRel[f.RelPath] = f
		}
		assert.Equal(t, " M", byRel["README.md"].Code)
		assert.Equal(t, "A ", byRel["staged.txt"].Code)
		assert.Equal(t, "??", byRel["untracked.txt"].Code)
		assert.True(t, byRel["staged.txt"].Staged)
		assert.False(t, byRel["untracked.txt"].Staged)
	})
}
