// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestHalfNormal(t *testing.T) {
	testFunc(t, "HalfNormalMeanFromScale", HalfNormalMeanFromScale, map[float64]float64{
		0: 0,
		1: math.Sqrt(2 / math.Pi),
		3: 3 * 0.7978845608028654,
	})
	for _, mean := range []float64{0.1, 1, 2.5, 40} {
		if g := HalfNormalMeanFromScale(HalfNormalScaleFromMean(mean)); !aeq(mean, g) {
			t.Errorf("round trip of %v gives %v", mean, g)
		}
	}
}
