package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration, populated from the environment
type Config struct {
	// HTTPAddr is the listen address for the combined API and web server
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`

	// RedisURL is the Redis connection URL, required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// PublicURL is the externally reachable base URL used in QR join
	// links; empty means derive it from each request
	PublicURL string `env:"PUBLIC_URL"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel translates the configured log level into a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
