// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	summary "github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediamix/calib/internal/samplefile"
	"github.com/mediamix/calib/stats"
)

// plotPoints is the number of rows in a density plot.
const plotPoints = 20

var describeBandwidth string

var describeCmd = &cobra.Command{
	Use:   "describe [FILE]",
	Short: "Describe the distribution of each sample column",
	Long: `Prints summary statistics and a kernel density plot for each column
of FILE, or of standard input if FILE is omitted or "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeBandwidth, "bandwidth", "", "Kernel bandwidth of the density plot: scott, silverman or a number (default 1)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	var cols []samplefile.Column
	var err error
	if len(args) == 0 || args[0] == "-" {
		cols, err = samplefile.ReadFrom(cmd.InOrStdin())
	} else {
		cols, err = samplefile.Read(args[0])
	}
	if err != nil {
		return err
	}
	logger.Debug("Describing samples", zap.Int("columns", len(cols)))

	dc := cfg.Distance
	if cmd.Flags().Changed("bandwidth") {
		dc.Bandwidth = describeBandwidth
	}
	rule, err := dc.BandwidthRule()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for i, c := range cols {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s\n", c.Name)
		if err := describe(w, c.Values); err != nil {
			return fmt.Errorf("column %q: %w", c.Name, err)
		}

		kde := stats.KDE{Points: plotPoints}
		if rule != nil {
			if kde.Bandwidth, err = ruleBandwidth(c.Name, rule, c.Values); err != nil {
				return err
			}
		}
		if err := fprintDensity(w, kde, c.Values); err != nil {
			return fmt.Errorf("column %q: %w", c.Name, err)
		}
	}
	return nil
}

// describe prints the size, moments and quantiles of xs.
func describe(w io.Writer, xs []float64) error {
	data := summary.Float64Data(xs)
	sum, err := data.Sum()
	if err != nil {
		return err
	}
	mean, err := data.Mean()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(xs), sum, mean)
	if len(xs) > 1 {
		sd, err := data.StandardDeviationSample()
		if err != nil {
			return err
		}
		variance, err := data.SampleVariance()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  std dev %.6g  variance %.6g", sd, variance)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	// Quartiles and tails.
	min, err := data.Min()
	if err != nil {
		return err
	}
	max, err := data.Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%8s %.6g\n", "min", min)
	for _, p := range []float64{1, 5, 25, 50, 75, 95, 99} {
		v, err := data.PercentileNearestRank(p)
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%g%%ile", p)
		if p == 50 {
			label = "median"
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, v)
	}
	fmt.Fprintf(w, "%8s %.6g\n", "max", max)
	fmt.Fprintln(w)
	return nil
}

// fprintDensity prints a horizontal bar chart of the continuous
// probability function of xs.
func fprintDensity(w io.Writer, kde stats.KDE, xs []float64) error {
	const width = 50

	grid := kde.Grid(xs, xs)
	pdf, err := kde.Estimate(xs, grid)
	if err != nil {
		return err
	}
	peak := 0.0
	for _, v := range pdf {
		peak = max(peak, v)
	}
	for i, x := range grid {
		bar := int(pdf[i]/peak*width + 0.5)
		fmt.Fprintf(w, "%10.4g %6.4f %s\n", x, pdf[i], strings.Repeat("*", bar))
	}
	return nil
}
