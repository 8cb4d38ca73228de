// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads settings for the calib command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mediamix/calib/stats"
)

// Config holds all calib configuration.
type Config struct {
	Distance DistanceConfig `yaml:"distance"`
	Beta     BetaConfig     `yaml:"beta"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DistanceConfig configures prior/posterior distance computations.
type DistanceConfig struct {
	// Method is KS, Hellinger, JS, min or "all".
	Method string `yaml:"method"`

	// Discrete selects the probability mass estimator instead of
	// kernel smoothing.
	Discrete bool `yaml:"discrete"`

	// Bandwidth is the kernel bandwidth for continuous data:
	// empty for unit variance, "scott", "silverman" or a number.
	Bandwidth string `yaml:"bandwidth"`

	// GridPoints is the number of grid points for continuous
	// data. Zero means stats.DefaultGridPoints.
	GridPoints int `yaml:"grid_points"`

	// Workers bounds the number of columns compared at once.
	// Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// BetaConfig configures the Beta moment-matching solver.
type BetaConfig struct {
	BracketLow  float64 `yaml:"bracket_low"`
	BracketHigh float64 `yaml:"bracket_high"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Distance: DistanceConfig{
			Method:   stats.KS.String(),
			Discrete: true,
		},
		Beta: BetaConfig{
			BracketLow:  stats.DefaultBetaBracket[0],
			BracketHigh: stats.DefaultBetaBracket[1],
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults
// and applies environment overrides. An empty path or a missing file
// leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Keep defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file at path if
// it exists. Variables already set in the environment win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CALIB_METHOD"); v != "" {
		c.Distance.Method = v
	}
	if v := os.Getenv("CALIB_DISCRETE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("bad CALIB_DISCRETE %q: %w", v, err)
		}
		c.Distance.Discrete = b
	}
	if v := os.Getenv("CALIB_BANDWIDTH"); v != "" {
		c.Distance.Bandwidth = v
	}
	if v := os.Getenv("CALIB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.Distance.Methods(); err != nil {
		return err
	}
	if _, err := c.Distance.BandwidthRule(); err != nil {
		return err
	}
	if c.Distance.GridPoints < 0 || c.Distance.GridPoints == 1 {
		return fmt.Errorf("grid_points must be 0 or at least 2, got %d", c.Distance.GridPoints)
	}
	if c.Distance.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Distance.Workers)
	}
	if !(c.Beta.BracketLow > 0 && c.Beta.BracketLow < c.Beta.BracketHigh) {
		return fmt.Errorf("beta bracket must satisfy 0 < low < high, got [%g, %g]", c.Beta.BracketLow, c.Beta.BracketHigh)
	}
	if _, err := c.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// Methods returns the distance methods named by d.Method.
func (d DistanceConfig) Methods() ([]stats.Method, error) {
	if strings.EqualFold(d.Method, "all") {
		return stats.Methods, nil
	}
	m, err := stats.ParseMethod(d.Method)
	if err != nil {
		return nil, err
	}
	return []stats.Method{m}, nil
}

// BandwidthRule returns a function computing the kernel bandwidth
// from a sample, or nil for the default unit-variance kernel.
func (d DistanceConfig) BandwidthRule() (func(stats.Sample) float64, error) {
	switch strings.ToLower(d.Bandwidth) {
	case "":
		return nil, nil
	case "scott":
		return func(s stats.Sample) float64 { return stats.BandwidthScott(s) }, nil
	case "silverman":
		return func(s stats.Sample) float64 { return stats.BandwidthSilverman(s) }, nil
	}
	h, err := strconv.ParseFloat(d.Bandwidth, 64)
	if err != nil || !(h > 0) {
		return nil, fmt.Errorf("bandwidth must be scott, silverman or a positive number, got %q", d.Bandwidth)
	}
	return func(stats.Sample) float64 { return h }, nil
}

// BetaBracket returns the solver search interval.
func (c *Config) BetaBracket() [2]float64 {
	return [2]float64{c.Beta.BracketLow, c.Beta.BracketHigh}
}

// ZapLevel returns the configured log level.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("bad log level: %w", err)
	}
	return lvl, nil
}
