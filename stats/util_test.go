// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against each x -> y pair in vals.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := vals[x], f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// approx compares float slices to within aeq's tolerance.
var approx = cmpopts.EquateApprox(0, 0.00001)

func checkVec(t *testing.T, name string, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// checkProbability checks that pf is a probability function.
func checkProbability(t *testing.T, name string, pf []float64) {
	t.Helper()
	for i, v := range pf {
		if v < 0 || math.IsNaN(v) {
			t.Errorf("%s[%d] = %v, want >= 0", name, i, v)
		}
	}
	if sum := floats.Sum(pf); !aeq(1, sum) {
		t.Errorf("%s sums to %v, want 1", name, sum)
	}
}

// seq returns n values from a deterministic pseudo-random sequence
// in [lo, hi).
func seq(n int, seed uint64, lo, hi float64) []float64 {
	xs := make([]float64, n)
	x := seed
	for i := range xs {
		// Knuth's MMIX LCG.
		x = x*6364136223846793005 + 1442695040888963407
		xs[i] = lo + (hi-lo)*float64(x>>11)/float64(1<<53)
	}
	return xs
}
