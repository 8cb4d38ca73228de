// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// BetaParams are the shape parameters of a Beta distribution.
type BetaParams struct {
	Alpha, Beta float64
}

// Dist returns the Beta distribution with shape parameters p.
func (p BetaParams) Dist() distuv.Beta {
	return distuv.Beta{Alpha: p.Alpha, Beta: p.Beta}
}

// DefaultBetaBracket is the default search interval for the second
// shape parameter in BetaParamsFromMoments.
var DefaultBetaBracket = [2]float64{0.5, 100}

// BetaParamsFromMoments deterministically derives Beta shape
// parameters from the mean mu and standard deviation sigma of a Beta
// distributed variable.
//
// It first assumes Alpha = 1, which reduces the variance identity to
// b² + 4b + 5 + 2/b = 1/σ², and finds b in bracket with Brent's
// method. Given b, Alpha is then recovered from the mean identity as
// b / (1/μ - 1), so the resulting distribution has mean exactly mu.
// Its standard deviation only approximates sigma.
//
// mu must be in (0, 1), sigma must be positive and bracket must
// satisfy 0 < bracket[0] < bracket[1]; otherwise this returns
// ErrOutOfRange. If the variance identity has no root in bracket,
// this returns ErrNotBracketed.
func BetaParamsFromMoments(mu, sigma float64, bracket [2]float64) (BetaParams, error) {
	if !(mu > 0 && mu < 1) {
		return BetaParams{}, fmt.Errorf("%w: mean %g not in (0, 1)", ErrOutOfRange, mu)
	}
	if !(sigma > 0) {
		return BetaParams{}, fmt.Errorf("%w: standard deviation %g not positive", ErrOutOfRange, sigma)
	}
	lo, hi := bracket[0], bracket[1]
	if !(lo > 0 && lo < hi) {
		return BetaParams{}, fmt.Errorf("%w: bad bracket [%g, %g]", ErrOutOfRange, lo, hi)
	}

	invVar := 1 / (sigma * sigma)
	f := func(b float64) float64 {
		return b*b + 4*b + 5 + 2/b - invVar
	}
	b, err := Brent(f, lo, hi, BrentTolerance)
	if err != nil {
		return BetaParams{}, fmt.Errorf("solving for beta shape: %w", err)
	}
	return BetaParams{Alpha: b / (1/mu - 1), Beta: b}, nil
}
