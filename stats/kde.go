// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultGridPoints is the number of grid points a KDE evaluates when
// its Points field is zero.
const DefaultGridPoints = 100

// KDE estimates probability functions of continuous data by Gaussian
// kernel smoothing.
//
// The grid is a set of equally spaced points covering the joint range
// of both samples. At each grid point, the estimate is the sum of a
// Gaussian kernel centered at every sample value, and the resulting
// vector is normalized to sum to 1. This is a discretized density
// over the grid, not a density calibrated to its bandwidth.
//
// The default (zero) value of KDE uses unit-variance kernels and
// DefaultGridPoints grid points.
type KDE struct {
	// Bandwidth is the standard deviation of the Gaussian kernel.
	// If this is zero, the kernel has unit variance.
	//
	// The default does not depend on the data, so
	// the estimate oversmooths samples on a small scale and
	// undersmooths samples on a large one. Callers that want a
	// data-driven bandwidth can set this from BandwidthScott or
	// BandwidthSilverman.
	Bandwidth float64

	// Points is the number of grid points. If this is zero,
	// DefaultGridPoints is used. Otherwise it must be at least 2.
	Points int
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	} else {
		// Use IQR/1.349 as a robust estimator of the standard
		// deviation of a Gaussian distribution.
		return hScale * (iqr / 1.349)
	}
}

func (k KDE) points() int {
	switch {
	case k.Points == 0:
		return DefaultGridPoints
	case k.Points < 2:
		panic(fmt.Sprintf("KDE needs at least 2 grid points, got %d", k.Points))
	}
	return k.Points
}

func (k KDE) bandwidth() float64 {
	if k.Bandwidth == 0 {
		return 1
	}
	if !(k.Bandwidth > 0) || math.IsInf(k.Bandwidth, 1) {
		panic(fmt.Sprintf("bad KDE bandwidth %g", k.Bandwidth))
	}
	return k.Bandwidth
}

// Grid returns k.Points equally spaced points from the smallest to the
// largest value of p and q. If every value is the same, every grid
// point is that value.
func (k KDE) Grid(p, q []float64) []float64 {
	lo := math.Min(floats.Min(p), floats.Min(q))
	hi := math.Max(floats.Max(p), floats.Max(q))
	return floats.Span(make([]float64, k.points()), lo, hi)
}

// Estimate returns the normalized kernel density of xs at each point
// of grid.
func (k KDE) Estimate(xs, grid []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	// Evaluating kernels shifted by xs at g is equivalent to
	// evaluating one unshifted kernel at g - xs.
	kernel := distuv.Normal{Mu: 0, Sigma: k.bandwidth()}
	density := make([]float64, len(grid))
	for i, g := range grid {
		for _, x := range xs {
			density[i] += kernel.Prob(g - x)
		}
	}
	return normalize(density)
}
