// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats_test

import (
	"fmt"

	"github.com/mediamix/calib/stats"
)

func ExampleDistancePriorPosterior() {
	prior := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	posterior := []float64{3, 3, 3, 3, 4, 4, 4, 5, 5}
	d, err := stats.DistancePriorPosterior(prior, posterior, "KS", true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", d)
	// Output: 0.3333
}

func ExampleBetaParamsFromMoments() {
	bp, err := stats.BetaParamsFromMoments(0.2, 0.1, stats.DefaultBetaBracket)
	if err != nil {
		panic(err)
	}
	fmt.Printf("mean %.2f\n", bp.Dist().Mean())
	// Output: mean 0.20
}
