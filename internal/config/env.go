package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the process configuration read from MINIRPG_* variables.
type Env struct {
	WorldPath string `env:"MINIRPG_CONFIG" envDefault:"./world.yaml"`
	DBPath    string `env:"MINIRPG_DB" envDefault:"./data/minirpg.db"`
	// Seed 0 means draw a fresh seed at startup.
	Seed     int64  `env:"MINIRPG_SEED" envDefault:"0"`
	SaveSlot string `env:"MINIRPG_SAVE_SLOT" envDefault:"main"`
	Class    string `env:"MINIRPG_CLASS" envDefault:"warrior"`
	Hero     string `env:"MINIRPG_HERO" envDefault:"Hero"`
	MaxSteps int    `env:"MINIRPG_MAX_STEPS" envDefault:"200"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxSteps <= 0 {
		return Env{}, fmt.Errorf("MINIRPG_MAX_STEPS must be positive, got %d", cfg.MaxSteps)
	}
	if cfg.SaveSlot == "" {
		return Env{}, fmt.Errorf("MINIRPG_SAVE_SLOT must not be empty")
	}
	return cfg, nil
}
