package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, parsed from environment variables
type Config struct {
	// Host and Port for the HTTP listener
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the game registry backend: "memory" or "redis"
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`

	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
