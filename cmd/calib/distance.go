// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"runtime"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mediamix/calib/internal/config"
	"github.com/mediamix/calib/internal/samplefile"
	"github.com/mediamix/calib/stats"
)

var (
	distanceMethod     string
	distanceContinuous bool
	distanceBandwidth  string
)

var distanceCmd = &cobra.Command{
	Use:   "distance PRIOR POSTERIOR",
	Short: "Measure how far posterior samples moved from their priors",
	Long: `Compares each column of PRIOR with the column of the same name in
POSTERIOR. If both files have a single column they are compared
regardless of names.

Methods:
  KS         two-sample Kolmogorov-Smirnov statistic
  Hellinger  Hellinger distance
  JS         Jensen-Shannon distance
  min        one minus the overlap of the probability functions
  all        every method

Every distance is in [0, 1]; 0 means the distributions agree.`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().StringVarP(&distanceMethod, "method", "m", "", "Distance method: KS, Hellinger, JS, min or all (default from config, KS)")
	distanceCmd.Flags().BoolVar(&distanceContinuous, "continuous", false, "Treat samples as continuous and smooth them with a Gaussian kernel")
	distanceCmd.Flags().StringVar(&distanceBandwidth, "bandwidth", "", "Kernel bandwidth for continuous samples: scott, silverman or a number (default 1)")
}

func runDistance(cmd *cobra.Command, args []string) error {
	dc := cfg.Distance
	flags := cmd.Flags()
	if flags.Changed("method") {
		dc.Method = distanceMethod
	}
	if flags.Changed("continuous") {
		dc.Discrete = !distanceContinuous
	}
	if flags.Changed("bandwidth") {
		dc.Bandwidth = distanceBandwidth
	}
	methods, err := dc.Methods()
	if err != nil {
		return err
	}

	prior, err := readColumns(args[0])
	if err != nil {
		return err
	}
	posterior, err := readColumns(args[1])
	if err != nil {
		return err
	}
	pairs, err := pairColumns(prior, posterior)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := computeDistances(ctx, pairs, methods, dc)
	if err != nil {
		return err
	}
	return printDistances(cmd.OutOrStdout(), results, methods)
}

func readColumns(path string) ([]samplefile.Column, error) {
	cols, err := samplefile.Read(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	logger.Info("Read samples", zap.String("path", path), zap.Strings("columns", names))
	return cols, nil
}

// columnPair is a prior and posterior sample of one parameter.
type columnPair struct {
	name             string
	prior, posterior []float64
}

// pairColumns matches prior and posterior columns by name, sorted by
// name. Two single-column files pair up regardless of names.
func pairColumns(prior, posterior []samplefile.Column) ([]columnPair, error) {
	if len(prior) == 1 && len(posterior) == 1 {
		name := posterior[0].Name
		if prior[0].Name != name {
			name = prior[0].Name + "/" + name
		}
		return []columnPair{{name, prior[0].Values, posterior[0].Values}}, nil
	}

	var pairs []columnPair
	for _, pc := range prior {
		qc, ok := samplefile.Lookup(posterior, pc.Name)
		if !ok {
			logger.Warn("No posterior column for prior column", zap.String("column", pc.Name))
			continue
		}
		pairs = append(pairs, columnPair{pc.Name, pc.Values, qc.Values})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("prior and posterior have no columns in common")
	}
	slices.SortFunc(pairs, func(a, b columnPair) int { return strings.Compare(a.name, b.name) })
	return pairs, nil
}

// estimatorFor returns the estimator configured by dc for one pair.
// Data-driven bandwidths are computed from the pooled samples so both
// sides share a kernel.
func estimatorFor(dc config.DistanceConfig, pair columnPair) (stats.Estimator, error) {
	if dc.Discrete {
		return stats.PMF{}, nil
	}
	rule, err := dc.BandwidthRule()
	if err != nil {
		return nil, err
	}
	kde := stats.KDE{Points: dc.GridPoints}
	if rule != nil {
		kde.Bandwidth, err = ruleBandwidth(pair.name, rule, slices.Concat(pair.prior, pair.posterior))
		if err != nil {
			return nil, err
		}
	}
	return kde, nil
}

// ruleBandwidth applies a bandwidth rule to the values of column name.
// Rules give NaN for a single value and zero for constant values,
// neither of which is a kernel width.
func ruleBandwidth(name string, rule func(stats.Sample) float64, xs []float64) (float64, error) {
	h := rule(stats.Sample{Xs: xs})
	if !(h > 0) || math.IsInf(h, 1) {
		return 0, fmt.Errorf("column %q: bandwidth rule gives %g", name, h)
	}
	return h, nil
}

// distanceResult holds the distances of one column pair. Only the
// requested methods are filled in.
type distanceResult struct {
	pair      columnPair
	distances stats.Distances
}

// computeDistances computes the distances of each pair concurrently.
func computeDistances(ctx context.Context, pairs []columnPair, methods []stats.Method, dc config.DistanceConfig) ([]distanceResult, error) {
	workers := dc.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]distanceResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			est, err := estimatorFor(dc, pair)
			if err != nil {
				return err
			}
			res := distanceResult{pair: pair}
			if len(methods) == len(stats.Methods) {
				res.distances, err = stats.Compare(pair.prior, pair.posterior, est)
				if err != nil {
					return fmt.Errorf("column %q: %w", pair.name, err)
				}
			} else {
				for _, m := range methods {
					d, err := stats.Distance(pair.prior, pair.posterior, m, est)
					if err != nil {
						return fmt.Errorf("column %q: %w", pair.name, err)
					}
					res.distances.Set(m, d)
				}
			}
			logger.Debug("Computed distances",
				zap.String("column", pair.name),
				zap.Int("prior", len(pair.prior)),
				zap.Int("posterior", len(pair.posterior)),
				zap.Any("distances", res.distances))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printDistances(w io.Writer, results []distanceResult, methods []stats.Method) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprint(tw, "parameter\tprior n\tposterior n")
	for _, m := range methods {
		fmt.Fprintf(tw, "\t%v", m)
	}
	fmt.Fprintln(tw)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d", r.pair.name, len(r.pair.prior), len(r.pair.posterior))
		for _, m := range methods {
			fmt.Fprintf(tw, "\t%.4f", r.distances.Get(m))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
