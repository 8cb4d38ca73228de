// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of draws from a distribution, such as the
// prior or posterior samples of one model parameter.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of the sample.
//
// If the sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Weight returns the total weight of the sample, which is its size.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Sum returns the sum of the sample values.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// StdDev returns the sample standard deviation of the sample. It is
// NaN for samples with fewer than two values.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, nil)
}

// Percentile returns the pctileth value from the sample, where
// pctile is in [0, 1]. Values outside that range are clamped. This
// is the smallest sample value at or above which a pctile fraction
// of the sample lies.
//
// If the sample is empty, Percentile returns NaN.
func (s Sample) Percentile(pctile float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	pctile = math.Max(0, math.Min(1, pctile))
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return stat.Quantile(pctile, stat.Empirical, s.Xs, nil)
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		slices.Sort(s.Xs)
		s.Sorted = true
	}
	return s
}

// Copy returns a copy of s that does not share storage with s.
func (s Sample) Copy() *Sample {
	return &Sample{Xs: slices.Clone(s.Xs), Sorted: s.Sorted}
}
