// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediamix/calib/stats"
)

var (
	betaMu      float64
	betaSigma   float64
	betaBracket []float64

	halfNormalMean  float64
	halfNormalScale float64
)

var betaCmd = &cobra.Command{
	Use:   "beta",
	Short: "Derive Beta prior parameters from a target mean and standard deviation",
	Long: `Derives the shape parameters (a, b) of a Beta distribution with mean
--mu. The standard deviation --sigma determines b by solving the Beta
variance identity with a = 1 inside --bracket; a is then set so the
mean is exactly --mu.

Example:
  calib beta --mu 0.5 --sigma 0.1`,
	Args: cobra.NoArgs,
	RunE: runBeta,
}

var halfNormalCmd = &cobra.Command{
	Use:   "halfnormal",
	Short: "Convert between the mean and scale of a half-normal prior",
	Args:  cobra.NoArgs,
	RunE:  runHalfNormal,
}

func init() {
	betaCmd.Flags().Float64Var(&betaMu, "mu", 0, "Target mean, in (0, 1)")
	betaCmd.Flags().Float64Var(&betaSigma, "sigma", 0, "Target standard deviation, > 0")
	betaCmd.Flags().Float64SliceVar(&betaBracket, "bracket", nil, "Search interval for b as low,high (default from config, 0.5,100)")
	_ = betaCmd.MarkFlagRequired("mu")
	_ = betaCmd.MarkFlagRequired("sigma")

	halfNormalCmd.Flags().Float64Var(&halfNormalMean, "mean", 0, "Mean to convert to a scale")
	halfNormalCmd.Flags().Float64Var(&halfNormalScale, "scale", 0, "Scale to convert to a mean")
	halfNormalCmd.MarkFlagsMutuallyExclusive("mean", "scale")
	halfNormalCmd.MarkFlagsOneRequired("mean", "scale")
}

func runBeta(cmd *cobra.Command, args []string) error {
	bracket := cfg.BetaBracket()
	if cmd.Flags().Changed("bracket") {
		if len(betaBracket) != 2 {
			return fmt.Errorf("--bracket needs exactly two values, got %d", len(betaBracket))
		}
		bracket = [2]float64{betaBracket[0], betaBracket[1]}
	}

	bp, err := stats.BetaParamsFromMoments(betaMu, betaSigma, bracket)
	if err != nil {
		return err
	}
	logger.Info("Solved beta parameters",
		zap.Float64("mu", betaMu),
		zap.Float64("sigma", betaSigma),
		zap.Float64("a", bp.Alpha),
		zap.Float64("b", bp.Beta))

	dist := bp.Dist()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "a %.6g  b %.6g\n", bp.Alpha, bp.Beta)
	fmt.Fprintf(w, "mean %.6g  std dev %.6g\n", dist.Mean(), dist.StdDev())
	return nil
}

func runHalfNormal(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if cmd.Flags().Changed("mean") {
		if !(halfNormalMean > 0) {
			return fmt.Errorf("%w: mean %g not positive", stats.ErrOutOfRange, halfNormalMean)
		}
		fmt.Fprintf(w, "scale %.6g\n", stats.HalfNormalScaleFromMean(halfNormalMean))
		return nil
	}
	if !(halfNormalScale > 0) {
		return fmt.Errorf("%w: scale %g not positive", stats.ErrOutOfRange, halfNormalScale)
	}
	fmt.Fprintf(w, "mean %.6g\n", stats.HalfNormalMeanFromScale(halfNormalScale))
	return nil
}
