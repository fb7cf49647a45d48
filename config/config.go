// Package config provides YAML-based configuration for the latticewalk
// solver and command-line tool.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/latticewalk/classify"
	"github.com/katalvlaran/latticewalk/solver"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the solver and CLI.
type Config struct {
	Strategy       string       `yaml:"strategy"`
	ExactThreshold int          `yaml:"exact_threshold"`
	Verify         bool         `yaml:"verify"`
	Parallel       bool         `yaml:"parallel"`
	LogLevel       string       `yaml:"log_level"`
	Render         RenderConfig `yaml:"render"`
}

// RenderConfig controls the render and explore commands.
type RenderConfig struct {
	MaxWindow int    `yaml:"max_window"` // largest window side drawn
	Color     string `yaml:"color"`      // "auto", "always" or "never"
}

// Color modes for RenderConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the hardcoded defaults, identical to the embedded YAML.
func Default() Config {
	return Config{
		Strategy:       classify.Auto.String(),
		ExactThreshold: classify.DefaultThreshold,
		Verify:         true,
		Parallel:       false,
		LogLevel:       "info",
		Render: RenderConfig{
			MaxWindow: 201,
			Color:     ColorAuto,
		},
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if _, err := classify.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.ExactThreshold < 0 {
		return fmt.Errorf("%w: exact_threshold %d is negative", ErrInvalidConfig, c.ExactThreshold)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Render.MaxWindow < 1 {
		return fmt.Errorf("%w: render.max_window %d must be positive", ErrInvalidConfig, c.Render.MaxWindow)
	}
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: render.color %q", ErrInvalidConfig, c.Render.Color)
	}
	return nil
}

// Level returns the parsed log level, or info if it does not parse.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SolverOptions translates the configuration into solver options.
func (c Config) SolverOptions(logger *log.Logger) ([]solver.Option, error) {
	strategy, err := classify.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return []solver.Option{
		solver.WithStrategy(strategy),
		solver.WithThreshold(c.ExactThreshold),
		solver.WithVerify(c.Verify),
		solver.WithParallel(c.Parallel),
		solver.WithLogger(logger),
	}, nil
}
