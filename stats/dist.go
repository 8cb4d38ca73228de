// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// An Estimator turns sample collections into probability functions
// that can be compared point by point.
type Estimator interface {
	// Grid returns the support grid shared by the sample
	// collections p and q. Both must be non-empty.
	Grid(p, q []float64) []float64

	// Estimate returns the probability function of xs over grid.
	// The result has one non-negative weight per grid point and
	// sums to 1.
	Estimate(xs, grid []float64) ([]float64, error)
}

// EstimatorFor returns the estimator for discrete data (PMF) or for
// continuous data (KDE with its default configuration).
func EstimatorFor(discrete bool) Estimator {
	if discrete {
		return PMF{}
	}
	return KDE{}
}
