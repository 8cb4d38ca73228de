// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// sign returns the sign of x: -1 if x < 0, 0 if x == 0, 1 if x > 0.
// If x is NaN, it returns NaN.
func sign(x float64) float64 {
	if x == 0 {
		return 0
	} else if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return nan
}

// sortedCopy returns a sorted copy of xs, leaving xs untouched.
func sortedCopy(xs []float64) []float64 {
	ys := slices.Clone(xs)
	slices.Sort(ys)
	return ys
}

// normalize scales xs in place to sum to 1.
func normalize(xs []float64) ([]float64, error) {
	sum := floats.Sum(xs)
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, ErrZeroMass
	}
	floats.Scale(1/sum, xs)
	return xs, nil
}

// BrentTolerance is the absolute tolerance used by the solvers in
// this package when calling Brent.
const BrentTolerance = 2e-12

const (
	brentMaxIter = 200
	machEpsilon  = 2.220446049250313e-16
)

// Brent returns an x in [low, high] such that f(x) is zero to within
// tolerance, using the Brent-Dekker method. It combines inverse
// quadratic interpolation and secant steps with bisection, so it
// converges superlinearly on smooth functions and never does worse
// than bisection.
//
// f(low) and f(high) must have opposite signs (or one of them must be
// zero); otherwise Brent returns ErrNotBracketed.
func Brent(f func(float64) float64, low, high, tolerance float64) (float64, error) {
	a, b := low, high
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.IsNaN(fa) || math.IsNaN(fb) || sign(fa) == sign(fb) {
		return nan, fmt.Errorf("%w by [%g, %g]: f(%g)=%g f(%g)=%g", ErrNotBracketed, low, high, low, fa, high, fb)
	}

	// b is the current best estimate, a the previous one, and c
	// the contrapoint such that f(b) and f(c) differ in sign.
	c, fc := b, fb
	var d, e float64
	for iter := 0; iter < brentMaxIter; iter++ {
		if sign(fb) == sign(fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*machEpsilon*math.Abs(b) + tolerance/2
		mid := (c - b) / 2
		if math.Abs(mid) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation.
			var p, q float64
			s := fb / fa
			if a == c {
				// Secant.
				p = 2 * mid * s
				q = 1 - s
			} else {
				// Inverse quadratic.
				q = fa / fc
				r := fb / fc
				p = s * (2*mid*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*mid*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = mid
				e = d
			}
		} else {
			d = mid
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, mid)
		}
		fb = f(b)
	}
	return b, fmt.Errorf("%w after %d iterations", ErrNoConvergence, brentMaxIter)
}
