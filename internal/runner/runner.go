// Package runner wires an engine to a save store and drives it in real
// time for the headless player.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/config"
	"github.com/fernicar/PQ-TINS-Edition/internal/game"
	"github.com/fernicar/PQ-TINS-Edition/internal/save"
	"github.com/fernicar/PQ-TINS-Edition/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger
	Clock  game.Clock
	Events telemetry.Recorder
	// Repo overrides the store named by Config.
	Repo save.Repository
}

type Runner struct {
	cfg    *config.Config
	logger *log.Logger
	engine *game.Engine
	repo   save.Repository
	close  func() error
}

func New(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = game.RealClock{}
	}
	r := &Runner{
		cfg:    opts.Config,
		logger: opts.Logger,
		repo:   opts.Repo,
		close:  func() error { return nil },
	}
	if r.repo == nil {
		repo, closeFn, err := OpenStore(opts.Config)
		if err != nil {
			return nil, err
		}
		r.repo, r.close = repo, closeFn
	}
	r.engine = game.New(game.Options{
		Balance: opts.Config.Balance,
		Clock:   opts.Clock,
		Logger:  opts.Logger.WithPrefix("engine"),
		Events:  opts.Events,
	})
	return r, nil
}

// OpenStore opens the save repository cfg names.
func OpenStore(cfg *config.Config) (save.Repository, func() error, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		path := cfg.SQLitePath
		if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
			path = filepath.Join(cfg.SavesDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		repo, err := save.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return repo, repo.Close, nil
	case config.StoreFile, "":
		repo, err := save.NewFileRepo(cfg.SavesDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open saves dir: %w", err)
		}
		return repo, func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func (r *Runner) Engine() *game.Engine { return r.engine }

func (r *Runner) Repo() save.Repository { return r.repo }

func (r *Runner) Close() error { return r.close() }

// Start loads the named hero, or the most recent one when name is empty.
// With nothing to load it rolls a new hero from seed, or from a fresh
// random seed when seed is zero.
func (r *Runner) Start(ctx context.Context, name string, seed alea.State) error {
	var (
		snap save.Snapshot
		err  error
	)
	if name != "" {
		snap, err = r.repo.Load(ctx, name)
	} else {
		snap, err = r.repo.Latest(ctx)
	}
	switch {
	case err == nil:
		if err := r.engine.Apply(snap); err != nil {
			return fmt.Errorf("load %s: %w", snap.Traits.Name, err)
		}
		return nil
	case !errors.Is(err, save.ErrNotFound):
		return err
	}

	if seed.IsZero() {
		if seed, err = alea.NewSeed(); err != nil {
			return err
		}
	}
	if err := r.engine.CreateRandomCharacter(seed); err != nil {
		return err
	}
	v := r.engine.State()
	r.logger.Info("rolled a new hero", "name", v.Name, "race", v.Race, "class", v.Class)
	return r.Save(ctx)
}

// Save stores the current hero.
func (r *Runner) Save(ctx context.Context) error {
	snap, err := r.engine.Snapshot()
	if err != nil {
		return err
	}
	if err := r.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save %s: %w", snap.Traits.Name, err)
	}
	r.logger.Debug("saved", "name", snap.Traits.Name, "level", snap.Traits.Level)
	return nil
}

// Run pulses the engine every tick interval and autosaves on the configured
// interval until ctx is done, then saves one last time.
func (r *Runner) Run(ctx context.Context) error {
	if !r.engine.HasCharacter() {
		return game.ErrNoCharacter
	}
	tick := time.NewTicker(r.cfg.Balance.TickInterval)
	defer tick.Stop()
	autosave := time.NewTicker(r.cfg.AutosaveInterval)
	defer autosave.Stop()

	level := r.engine.State().Level
	for {
		select {
		case <-ctx.Done():
			return r.finalSave()
		case <-tick.C:
			if err := r.engine.Pulse(); err != nil {
				return err
			}
			if v := r.engine.State(); v.Level != level {
				level = v.Level
				r.logger.Info("level", "name", v.Name, "level", v.Level, "plot", v.Plot)
			}
		case <-autosave.C:
			if err := r.Save(ctx); err != nil {
				r.logger.Error("autosave", "err", err)
			}
		}
	}
}

// finalSave runs after the run context is cancelled, so it gets its own.
func (r *Runner) finalSave() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Save(ctx)
}
