package voxphys

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	TickRate           float64       `yaml:"tick_rate"`
	Substeps           int           `yaml:"substeps"`
	MaxRetries         int           `yaml:"max_retries"`
	Gravity            mgl32.Vec3    `yaml:"gravity"`
	GravityEnabled     bool          `yaml:"gravity_enabled"`
	Epsilon            float32       `yaml:"epsilon"`
	Skin               float32       `yaml:"skin"`
	BroadPhaseCellSize float32       `yaml:"broad_phase_cell_size"`
	MaxTicksPerUpdate  int           `yaml:"max_ticks_per_update"`
	Logging            LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Prefix string `yaml:"prefix"`
}

func DefaultConfig() *Config {
	return &Config{
		TickRate:          60,
		Substeps:          4,
		MaxRetries:        8,
		Gravity:           mgl32.Vec3{0, -1, 0},
		GravityEnabled:    true,
		Epsilon:           DefaultTolerance.Epsilon,
		Skin:              DefaultTolerance.Skin,
		MaxTicksPerUpdate: 5,
		Logging: LoggingConfig{
			Level:  "info",
			Prefix: "voxphys",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %v", ErrInvalidConfig, c.TickRate)
	case c.Substeps < 1:
		return fmt.Errorf("%w: substeps must be at least 1, got %d", ErrInvalidConfig, c.Substeps)
	case c.MaxRetries < 1:
		return fmt.Errorf("%w: max_retries must be at least 1, got %d", ErrInvalidConfig, c.MaxRetries)
	case c.Epsilon <= 0:
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidConfig, c.Epsilon)
	case c.Skin < 0:
		return fmt.Errorf("%w: skin must not be negative, got %v", ErrInvalidConfig, c.Skin)
	case c.BroadPhaseCellSize < 0:
		return fmt.Errorf("%w: broad_phase_cell_size must not be negative, got %v", ErrInvalidConfig, c.BroadPhaseCellSize)
	case c.MaxTicksPerUpdate < 1:
		return fmt.Errorf("%w: max_ticks_per_update must be at least 1, got %d", ErrInvalidConfig, c.MaxTicksPerUpdate)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) TickOptions() TickOptions {
	return TickOptions{
		Substeps:           c.Substeps,
		MaxRetries:         c.MaxRetries,
		Tolerance:          Tolerance{Epsilon: c.Epsilon, Skin: c.Skin},
		BroadPhaseCellSize: c.BroadPhaseCellSize,
	}
}

// GravityVector returns nil when gravity is disabled.
func (c *Config) GravityVector() *mgl32.Vec3 {
	if !c.GravityEnabled {
		return nil
	}
	g := c.Gravity
	return &g
}

// NewLogger builds the logger described by the logging section. An unknown
// level falls back to info.
func (c *Config) NewLogger() Logger {
	level, _ := ParseLevel(c.Logging.Level)
	return NewDefaultLogger(c.Logging.Prefix, level)
}
