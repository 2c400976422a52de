package runner

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/config"
	"github.com/fernicar/PQ-TINS-Edition/internal/game"
	"github.com/fernicar/PQ-TINS-Edition/internal/save"
)

func testConfig(t *testing.T, store string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		SavesDir:         t.TempDir(),
		Store:            store,
		SQLitePath:       "pq.db",
		AutosaveInterval: 20 * time.Millisecond,
	}
	cfg.ApplyDefaults()
	cfg.Balance.TickInterval = 5 * time.Millisecond
	cfg.Balance.MaxTickMultiple = 1000
	return cfg
}

// steppingClock moves a second forward every time it is read.
type steppingClock struct {
	*game.FakeClock
}

func (c steppingClock) Now() time.Time {
	c.Advance(time.Second)
	return c.FakeClock.Now()
}

func newRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()
	r, err := New(Options{
		Config: cfg,
		Clock:  game.NewFakeClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		repo, closeFn, err := OpenStore(testConfig(t, config.StoreFile))
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &save.FileRepo{}, repo)
	})

	t.Run("sqlite lands in the saves dir", func(t *testing.T) {
		cfg := testConfig(t, config.StoreSQLite)
		repo, closeFn, err := OpenStore(cfg)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &save.SQLiteRepo{}, repo)
		assert.FileExists(t, filepath.Join(cfg.SavesDir, "pq.db"))
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := testConfig(t, config.StoreFile)
		cfg.Store = "tape"
		_, _, err := OpenStore(cfg)
		assert.Error(t, err)
	})
}

func TestStart(t *testing.T) {
	for _, store := range []string{config.StoreFile, config.StoreSQLite} {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, store)
			seed := alea.Seed("runner")

			first := newRunner(t, cfg)
			require.NoError(t, first.Start(ctx, "", seed))
			created := first.Engine().State()

			saved, err := first.Repo().List(ctx)
			require.NoError(t, err)
			require.Len(t, saved, 1, "a new hero is saved straight away")
			assert.Equal(t, created.Name, saved[0].Name)
			require.NoError(t, first.Close())

			second := newRunner(t, cfg)
			require.NoError(t, second.Start(ctx, "", alea.Seed("ignored")))
			assert.Equal(t, created, second.Engine().State(), "latest hero is loaded, not rerolled")

			third := newRunner(t, cfg)
			require.NoError(t, third.Start(ctx, created.Name, alea.State{}))
			assert.Equal(t, created.Name, third.Engine().Name())
		})
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, config.StoreFile)
	clock := steppingClock{game.NewFakeClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))}
	r, err := New(Options{Config: cfg, Clock: clock})
	require.NoError(t, err)

	assert.ErrorIs(t, r.Run(context.Background()), game.ErrNoCharacter)

	ctx := context.Background()
	require.NoError(t, r.Start(ctx, "", alea.Seed("run")))

	runCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	require.NoError(t, r.Run(runCtx))

	snap, err := r.Repo().Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, r.Engine().Name(), snap.Traits.Name)
	assert.Positive(t, snap.Tasks, "the loading task completed and was saved")
}
