// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSamplePercentile(t *testing.T) {
	s := Sample{Xs: []float64{40, 15, 50, 20, 35}}
	testFunc(t, "Percentile", s.Percentile, map[float64]float64{
		-1:  15,
		0:   15,
		.30: 20,
		.50: 35,
		1:   50,
		2:   50,
	})
	if s.Sorted || s.Xs[0] != 40 {
		t.Errorf("Percentile modified unsorted sample: %v", s.Xs)
	}
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if e, g := 5.0, s.Mean(); !aeq(e, g) {
		t.Errorf("bad mean: expected %g, got %g", e, g)
	}
	if e, g := math.Sqrt(32.0/7), s.StdDev(); !aeq(e, g) {
		t.Errorf("bad std dev: expected %g, got %g", e, g)
	}
	if e, g := 40.0, s.Sum(); e != g {
		t.Errorf("bad sum: expected %g, got %g", e, g)
	}
	if e, g := 8.0, s.Weight(); e != g {
		t.Errorf("bad weight: expected %g, got %g", e, g)
	}

	var empty Sample
	if !math.IsNaN(empty.Mean()) || !math.IsNaN(empty.StdDev()) || !math.IsNaN(empty.Percentile(0.5)) {
		t.Errorf("empty sample: want NaN mean, std dev and percentile")
	}
	if one := (Sample{Xs: []float64{3}}); !math.IsNaN(one.StdDev()) {
		t.Errorf("single value std dev = %g, want NaN", one.StdDev())
	}
}

func TestSampleBounds(t *testing.T) {
	s := Sample{Xs: []float64{3, -1, 8, 2}}
	if lo, hi := s.Bounds(); lo != -1 || hi != 8 {
		t.Errorf("Bounds() = %v, %v, want -1, 8", lo, hi)
	}
	c := s.Copy().Sort()
	if lo, hi := c.Bounds(); lo != -1 || hi != 8 {
		t.Errorf("sorted Bounds() = %v, %v, want -1, 8", lo, hi)
	}
	checkVec(t, "sorted copy", []float64{-1, 2, 3, 8}, c.Xs)
	checkVec(t, "input", []float64{3, -1, 8, 2}, s.Xs)

	if lo, hi := (Sample{}).Bounds(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("empty Bounds() = %v, %v, want NaN, NaN", lo, hi)
	}
}
