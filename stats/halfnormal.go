// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// HalfNormalMeanFromScale returns the mean of the half-normal
// distribution with scale parameter scale.
func HalfNormalMeanFromScale(scale float64) float64 {
	return scale * math.Sqrt2 / math.SqrtPi
}

// HalfNormalScaleFromMean returns the scale parameter of the
// half-normal distribution with mean mean.
func HalfNormalScaleFromMean(mean float64) float64 {
	return mean * math.SqrtPi / math.Sqrt2
}
