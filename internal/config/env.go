package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromEnv loads balance configuration from environment variables.
// PQ_PACE picks a preset; individual PQ_* knobs override it.
func FromEnv() (Balance, error) {
	cfg := Preset(os.Getenv("PQ_PACE"))
	if err := ParseEnv(&cfg); err != nil {
		return Default(), err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
