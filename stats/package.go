// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements calibration diagnostics for Bayesian
// models: distances between prior and posterior sample collections
// and closed-form parameters for priors specified by their moments.
package stats // import "github.com/mediamix/calib/stats"

import (
	"errors"
	"math"
)

var nan = math.NaN()

var (
	// ErrEmptySample is returned when a sample collection has no
	// values.
	ErrEmptySample = errors.New("empty sample")

	// ErrInvalidMethod is returned for a distance method that is
	// not one of KS, Hellinger, JS or min.
	ErrInvalidMethod = errors.New("invalid distance method")

	// ErrNoEstimator is returned when a method that compares
	// probability functions is given a nil Estimator.
	ErrNoEstimator = errors.New("no probability estimator")

	// ErrZeroMass is returned when an estimated probability
	// function has no mass anywhere on its grid, so it cannot be
	// normalized.
	ErrZeroMass = errors.New("probability function has zero mass")

	// ErrNotBracketed is returned by root finders when f has the
	// same sign at both ends of the search interval.
	ErrNotBracketed = errors.New("root is not bracketed")

	// ErrNoConvergence is returned by root finders that exceed
	// their iteration limit.
	ErrNoConvergence = errors.New("root finding did not converge")

	// ErrOutOfRange is returned for a parameter outside its
	// domain.
	ErrOutOfRange = errors.New("parameter out of range")
)
