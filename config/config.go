package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config is the table setup, decoded from the environment.
type Config struct {
	Players       int `env:"UNO_PLAYERS,default=2"`
	StartingCards int `env:"UNO_STARTING_CARDS,default=7"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Players < 2 {
		return Config{}, fmt.Errorf("UNO_PLAYERS must be at least 2, got %d", cfg.Players)
	}
	if cfg.StartingCards < 1 {
		return Config{}, fmt.Errorf("UNO_STARTING_CARDS must be at least 1, got %d", cfg.StartingCards)
	}
	return cfg, nil
}
