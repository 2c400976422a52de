package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/config"
	"github.com/fernicar/PQ-TINS-Edition/internal/runner"
	"github.com/fernicar/PQ-TINS-Edition/internal/telemetry"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pq:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pq", flag.ContinueOnError)
	configPath := fs.String("config", "pq.yml", "path to config file")
	name := fs.String("name", "", "hero to load (default: most recently saved)")
	seed := fs.String("seed", "", "seed phrase for a new hero (default: random)")
	limit := fs.Duration("for", 0, "stop after this long (0 runs until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	events := telemetry.NewMemoryRepository()
	r, err := runner.New(runner.Options{Config: cfg, Logger: logger, Events: events})
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *limit)
		defer cancel()
	}

	var heroSeed alea.State
	if *seed != "" {
		heroSeed = alea.Seed(*seed)
	}
	if err := r.Start(ctx, *name, heroSeed); err != nil {
		return err
	}
	v := r.Engine().State()
	logger.Info("playing", "name", v.Name, "level", v.Level, "plot", v.Plot, "store", cfg.Store, "pace", cfg.Pace)

	started := time.Now()
	if err := r.Run(ctx); err != nil {
		return err
	}

	evs, err := events.GetEvents(started, nil)
	if err != nil {
		return err
	}
	stats, err := telemetry.CalculateStats(evs, started)
	if err != nil {
		return err
	}
	v = r.Engine().State()
	logger.Info("stopped", "name", v.Name, "level", v.Level, "tasks", stats.TaskCompletions, "levels", stats.LevelUps, "quests", stats.QuestsCompleted)
	return nil
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "pq",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
