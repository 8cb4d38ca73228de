// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// calib compares prior and posterior sample collections of a
// Bayesian model and derives prior parameters from target moments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mediamix/calib/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "calib",
	Short: "Calibration diagnostics for Bayesian media mix models",
	Long: `calib quantifies how far posterior samples have moved from their
priors and converts target moments into prior distribution parameters.

Sample files are CSV (one column per model parameter, optional header
row) or XLSX (first sheet, same layout).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(distanceCmd, betaCmd, halfNormalCmd, describeCmd)
}

// setup loads configuration and initializes the logger.
func setup() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := cfg.ZapLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Configuration loaded",
		zap.String("path", configPath),
		zap.String("method", cfg.Distance.Method),
		zap.Bool("discrete", cfg.Distance.Discrete))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
