// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestBrent(t *testing.T) {
	check := func(name string, f func(float64) float64, lo, hi, want float64) {
		t.Helper()
		got, err := Brent(f, lo, hi, BrentTolerance)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}

	check("x²-2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2)
	check("2-x²", func(x float64) float64 { return 2 - x*x }, 0, 2, math.Sqrt2)
	check("x³-2x-5", func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3, 2.0945514815423265)
	check("cos(x)-x", func(x float64) float64 { return math.Cos(x) - x }, 0, 1, 0.7390851332151607)
	check("x-1 at low", func(x float64) float64 { return x - 1 }, 1, 3, 1)
	check("x-1 at high", func(x float64) float64 { return x - 1 }, -3, 1, 1)
	// Discontinuous: falls back to bisection at the jump.
	check("sign(x-1)", func(x float64) float64 { return 1.5 * sign(x-1) }, 0, 3, 1)
	check("exp", func(x float64) float64 { return math.Exp(x) - 1e3 }, 0, 100, math.Log(1e3))
}

func TestBrentNotBracketed(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	if _, err := Brent(f, 3, 4, BrentTolerance); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("got %v, want %v", err, ErrNotBracketed)
	}
	// An even number of roots is not a sign change.
	if _, err := Brent(f, -2, 2, BrentTolerance); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("got %v, want %v", err, ErrNotBracketed)
	}
	nanf := func(x float64) float64 { return math.NaN() }
	if _, err := Brent(nanf, 0, 1, BrentTolerance); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("NaN: got %v, want %v", err, ErrNotBracketed)
	}
}
