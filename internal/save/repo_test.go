package save

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "Garbonzo.pqw", FileName("Garbonzo"))
	assert.Equal(t, "a_b.pqw", FileName("a/b"))
	assert.Equal(t, "hero.pqw", FileName("  "))
}

func TestFileRepo(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo, err := NewFileRepo(dir)
	require.NoError(t, err)

	t.Run("empty directory", func(t *testing.T) {
		_, err := repo.Latest(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.Load(ctx, "Nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	first := sampleSnapshot()
	require.NoError(t, repo.Save(ctx, first))

	second := Default()
	second.Traits = Traits{Name: "Zed", Race: "Pixie", Class: "Robot Monk", Level: 1}
	require.NoError(t, repo.Save(ctx, second))

	// Make the first hero the most recent one on disk.
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(repo.Path("Garbonzo"), later, later))

	t.Run("load", func(t *testing.T) {
		got, err := repo.Load(ctx, "Garbonzo")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("latest by modification time", func(t *testing.T) {
		got, err := repo.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Garbonzo", got.Traits.Name)
	})

	t.Run("list skips unreadable files", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.pqw"), []byte("%%%"), 0o644))
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Garbonzo", list[0].Name)
		assert.Equal(t, 3, list[0].Level)
		assert.Equal(t, "Zed", list[1].Name)
	})

	t.Run("overwrite keeps a backup", func(t *testing.T) {
		updated := first
		updated.Traits.Level = 4
		require.NoError(t, repo.Save(ctx, updated))

		b, err := os.ReadFile(repo.Path("Garbonzo") + BackupExtension)
		require.NoError(t, err)
		prev, err := Decode(b)
		require.NoError(t, err)
		assert.Equal(t, 3, prev.Traits.Level)

		cur, err := repo.Load(ctx, "Garbonzo")
		require.NoError(t, err)
		assert.Equal(t, 4, cur.Traits.Level)
	})

	t.Run("nameless hero", func(t *testing.T) {
		assert.Error(t, repo.Save(ctx, Default()))
	})
}

func TestSQLiteRepo(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pq.db")
	repo, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	_, err = repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	s := sampleSnapshot()
	require.NoError(t, repo.Save(ctx, s))
	s.Traits.Level = 4
	require.NoError(t, repo.Save(ctx, s))

	other := Default()
	other.Traits = Traits{Name: "Zed", Race: "Pixie", Class: "Robot Monk", Level: 1}
	require.NoError(t, repo.Save(ctx, other))

	t.Run("load returns newest revision", func(t *testing.T) {
		got, err := repo.Load(ctx, "Garbonzo")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})

	t.Run("latest", func(t *testing.T) {
		got, err := repo.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Zed", got.Traits.Name)
	})

	t.Run("list one row per hero", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Zed", list[0].Name)
		assert.Equal(t, "Garbonzo", list[1].Name)
		assert.Equal(t, 4, list[1].Level)
	})

	t.Run("revisions", func(t *testing.T) {
		revs, err := repo.Revisions(ctx, "Garbonzo")
		require.NoError(t, err)
		require.Len(t, revs, 2)
		assert.Equal(t, 4, revs[0].Level)
		assert.NotEmpty(t, revs[1].Revision)

		old, err := repo.LoadRevision(ctx, revs[1].Revision)
		require.NoError(t, err)
		assert.Equal(t, 3, old.Traits.Level)
	})

	t.Run("reopen skips applied migrations", func(t *testing.T) {
		again, err := OpenSQLite(path)
		require.NoError(t, err)
		defer again.Close()
		got, err := again.Load(ctx, "Zed")
		require.NoError(t, err)
		assert.Equal(t, "Pixie", got.Traits.Race)
	})
}
