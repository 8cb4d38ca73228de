// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// PMF estimates probability mass functions of discrete data.
//
// The grid is the sorted set of distinct values of both samples, and
// the mass at each grid point is the jump of the sample's empirical
// CDF at that point.
type PMF struct{}

// Grid returns the sorted distinct values of p and q.
func (PMF) Grid(p, q []float64) []float64 {
	grid := make([]float64, 0, len(p)+len(q))
	grid = append(grid, p...)
	grid = append(grid, q...)
	slices.Sort(grid)
	return slices.Compact(grid)
}

// Estimate returns the probability mass of xs at each point of grid.
// grid must be sorted.
func (PMF) Estimate(xs, grid []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	sorted := sortedCopy(xs)
	pmf := make([]float64, len(grid))
	prev := 0.0
	for i, x := range grid {
		cdf := stat.CDF(x, stat.Empirical, sorted, nil)
		pmf[i] = cdf - prev
		prev = cdf
	}
	return normalize(pmf)
}
