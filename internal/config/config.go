package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends for save games.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config is the runtime configuration for the headless runner and the ops
// tool.
type Config struct {
	Version          string        `yaml:"version" json:"version"`
	SavesDir         string        `yaml:"saves_dir" json:"saves_dir" env:"PQ_SAVES_DIR"`
	Store            string        `yaml:"store" json:"store" env:"PQ_STORE"`
	SQLitePath       string        `yaml:"sqlite_path" json:"sqlite_path" env:"PQ_SQLITE_PATH"`
	AutosaveInterval time.Duration `yaml:"autosave_interval" json:"autosave_interval" env:"PQ_AUTOSAVE_INTERVAL"`
	LogLevel         string        `yaml:"log_level" json:"log_level" env:"PQ_LOG_LEVEL"`
	Pace             string        `yaml:"pace" json:"pace" env:"PQ_PACE"`
	Balance          Balance       `yaml:"balance" json:"balance"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.SavesDir == "" {
		c.SavesDir = "savegame"
	}
	if c.Store == "" {
		c.Store = StoreFile
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "savegame/pq.db"
	}
	if c.AutosaveInterval <= 0 {
		c.AutosaveInterval = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Balance == (Balance{}) {
		c.Balance = Preset(c.Pace)
	}
	c.Balance.ApplyDefaults()
}

// Validate rejects settings the runner cannot act on.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreFile, StoreSQLite)
	}
	return nil
}

// Load reads a YAML config. Balance knobs start from the file's pace preset
// and are then overridden by whatever the balance section sets.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var head struct {
		Pace string `yaml:"pace"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	r := Config{Balance: Preset(head.Pace)}
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}

// Resolve loads path if it exists, falls back to defaults otherwise, and
// finally applies PQ_* environment overrides.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}
