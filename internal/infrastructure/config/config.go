// Package config provides environment-driven configuration for the mutation
// engine, following 12-factor conventions. Every knob has a sensible default
// so the engine works with nothing set.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration.
type Config struct {
	Engine  EngineConfig
	Logging LogConfig
}

// EngineConfig holds tuning for the mutation engine itself.
type EngineConfig struct {
	// MaxInFlight bounds the number of concurrently executing filesystem
	// operations across a batch, including tree-copy children.
	MaxInFlight int `envconfig:"PERCH_MAX_IN_FLIGHT" default:"16"`

	// ListenerTimeout bounds the pre-relocation listener hook. Listeners
	// that miss the deadline are skipped; the rename proceeds regardless.
	ListenerTimeout time.Duration `envconfig:"PERCH_LISTENER_TIMEOUT" default:"2s"`

	// CopyBufferSize is the per-file buffer used when copying file bytes.
	CopyBufferSize int `envconfig:"PERCH_COPY_BUFFER_SIZE" default:"131072"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"PERCH_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"PERCH_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxInFlight:     16,
			ListenerTimeout: 2 * time.Second,
			CopyBufferSize:  128 * 1024,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

func (c *Config) validate() error {
	if c.Engine.MaxInFlight < 1 {
		return fmt.Errorf("PERCH_MAX_IN_FLIGHT must be at least 1, got %d", c.Engine.MaxInFlight)
	}
	if c.Engine.CopyBufferSize < 1 {
		return fmt.Errorf("PERCH_COPY_BUFFER_SIZE must be positive, got %d", c.Engine.CopyBufferSize)
	}
	return nil
}
