// Package config loads hatsurround settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// MinSearchLevels is the smallest universe radius that can hold a 3-patch
// around the seed. Smaller universes leave boundary cells uncovered.
const MinSearchLevels = 3

// Config is the top-level configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig controls the surround search and the neighbour catalogue.
type SearchConfig struct {
	Levels        int  `yaml:"levels"`         // radius of the transform universe
	ProgressEvery int  `yaml:"progress_every"` // 2-patches between progress records
	AllowHoles    bool `yaml:"allow_holes"`
}

// RenderConfig controls SVG and PNG output.
type RenderConfig struct {
	Scale   float64 `yaml:"scale"`
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// MetricsConfig configures the Prometheus textfile written after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty disables
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Levels:        3,
			ProgressEvery: 100,
		},
		Render: RenderConfig{
			Scale:   10,
			Columns: 3,
			Rows:    4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load overlays the YAML file at path on the defaults, applies environment
// overrides and validates the result. An empty path or a missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HATSURROUND_LEVELS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.Search.Levels = i
		}
	}
	if v := os.Getenv("HATSURROUND_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HATSURROUND_METRICS_TEXTFILE"); v != "" {
		c.Metrics.Textfile = v
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if err := ValidateLevels(c.Search.Levels); err != nil {
		return err
	}
	if c.Search.ProgressEvery < 0 {
		return fmt.Errorf("%w: search.progress_every must not be negative, got %d", ErrInvalid, c.Search.ProgressEvery)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("%w: render.scale must be positive, got %g", ErrInvalid, c.Render.Scale)
	}
	if c.Render.Columns < 1 || c.Render.Rows < 1 {
		return fmt.Errorf("%w: render grid must be at least 1x1, got %dx%d", ErrInvalid, c.Render.Columns, c.Render.Rows)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// ValidateLevels checks a universe radius against MinSearchLevels.
func ValidateLevels(levels int) error {
	if levels < MinSearchLevels {
		return fmt.Errorf("%w: search.levels must be at least %d, got %d", ErrInvalid, MinSearchLevels, levels)
	}
	return nil
}
