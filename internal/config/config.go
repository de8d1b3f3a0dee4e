// Package config loads search settings from defaults, an optional YAML
// file and CUBEORDER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocube_order/internal/search"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds search settings.
type Config struct {
	// FromDepth and ToDepth bound the searched depths, inclusive.
	FromDepth int `yaml:"from_depth" env:"CUBEORDER_FROM_DEPTH"`
	ToDepth   int `yaml:"to_depth" env:"CUBEORDER_TO_DEPTH"`

	// Pool lists moves in notation. Empty means the face pool.
	Pool []string `yaml:"pool" env:"CUBEORDER_POOL" envSeparator:","`

	// MaxOrder caps repetitions per sequence; 0 disables the cap.
	MaxOrder int `yaml:"max_order" env:"CUBEORDER_MAX_ORDER"`

	Workers   int  `yaml:"workers" env:"CUBEORDER_WORKERS"`
	BatchSize int  `yaml:"batch_size" env:"CUBEORDER_BATCH_SIZE"`
	JSON      bool `yaml:"json" env:"CUBEORDER_JSON"`
	Verbose   bool `yaml:"verbose" env:"CUBEORDER_VERBOSE"`
}

// Default returns the built-in settings: depth 3 over the 12 face turns,
// one worker per CPU.
func Default() Config {
	return Config{
		FromDepth: 3,
		ToDepth:   3,
		Pool:      search.FacePool().Names(),
		Workers:   runtime.NumCPU(),
		BatchSize: 1024,
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path
// is non-empty) and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and that the pool parses.
func (c Config) Validate() error {
	if c.FromDepth < 1 {
		return fmt.Errorf("%w: from_depth must be at least 1, got %d", ErrInvalid, c.FromDepth)
	}
	if c.ToDepth < c.FromDepth {
		return fmt.Errorf("%w: to_depth %d is below from_depth %d", ErrInvalid, c.ToDepth, c.FromDepth)
	}
	if c.MaxOrder < 0 {
		return fmt.Errorf("%w: max_order must not be negative", ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch_size must be at least 1", ErrInvalid)
	}
	if _, err := c.SearchPool(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SearchPool parses Pool, falling back to the face pool when empty.
func (c Config) SearchPool() (search.Pool, error) {
	if len(c.Pool) == 0 {
		return search.FacePool(), nil
	}
	return search.ParsePool(c.Pool)
}

// SearchOptions converts the settings into searcher options.
func (c Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithMaxOrder(c.MaxOrder),
		search.WithWorkers(c.Workers),
		search.WithBatchSize(c.BatchSize),
	}
}
