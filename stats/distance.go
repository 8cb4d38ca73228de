// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Method is a distance between two distributions. Every method is
// symmetric in its arguments and ranges over [0, 1], where 0 means
// the distributions are indistinguishable.
//
// Kullback-Leibler divergence is not offered because it is undefined
// wherever one probability function is zero and the other is not,
// which routinely happens for finite samples on a shared grid.
type Method int

const (
	// KS is the two-sample Kolmogorov-Smirnov statistic: the
	// largest absolute difference between the empirical CDFs of
	// the samples. It works on the raw samples and ignores the
	// Estimator.
	KS Method = iota

	// Hellinger is the Hellinger distance between the estimated
	// probability functions.
	Hellinger

	// JensenShannon is the Jensen-Shannon distance, the square
	// root of the Jensen-Shannon divergence (natural logarithm)
	// between the estimated probability functions.
	JensenShannon

	// MinOverlap is one minus the overlap of the estimated
	// probability functions, the sum of their pointwise minima.
	MinOverlap
)

// Methods lists every Method in order.
var Methods = []Method{KS, Hellinger, JensenShannon, MinOverlap}

func (m Method) String() string {
	switch m {
	case KS:
		return "KS"
	case Hellinger:
		return "Hellinger"
	case JensenShannon:
		return "JS"
	case MinOverlap:
		return "min"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s. It accepts the names
// returned by Method.String in any letter case, as well as
// "jensenshannon" and "jensen-shannon".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "ks":
		return KS, nil
	case "hellinger":
		return Hellinger, nil
	case "js", "jensenshannon", "jensen-shannon":
		return JensenShannon, nil
	case "min":
		return MinOverlap, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidMethod, s)
}

// metric returns the function computing m from two probability
// functions, or nil if m does not compare probability functions.
func (m Method) metric() func(p, q []float64) float64 {
	switch m {
	case Hellinger:
		return hellinger
	case JensenShannon:
		return jensenShannon
	case MinOverlap:
		return minOverlap
	}
	return nil
}

func (m Method) valid() bool {
	return m == KS || m.metric() != nil
}

// Distance returns the distance between the distributions of samples
// p and q using method m. For every method but KS, est turns p and q
// into probability functions over a shared grid.
func Distance(p, q []float64, m Method, est Estimator) (float64, error) {
	if len(p) == 0 || len(q) == 0 {
		return 0, ErrEmptySample
	}
	if !m.valid() {
		return 0, fmt.Errorf("%w %v", ErrInvalidMethod, m)
	}
	if m == KS {
		return ksStatistic(p, q), nil
	}
	pf, qf, err := probabilities(p, q, est)
	if err != nil {
		return 0, err
	}
	return m.metric()(pf, qf), nil
}

// DistancePriorPosterior returns the distance between samples p and q
// using the method named method. If discrete is true, the
// probability functions are estimated with PMF, otherwise with KDE.
func DistancePriorPosterior(p, q []float64, method string, discrete bool) (float64, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return 0, err
	}
	return Distance(p, q, m, EstimatorFor(discrete))
}

// Distances holds every distance between two samples.
type Distances struct {
	KS, Hellinger, JS, Min float64
}

// Get returns the distance computed by m.
func (d Distances) Get(m Method) float64 {
	switch m {
	case KS:
		return d.KS
	case Hellinger:
		return d.Hellinger
	case JensenShannon:
		return d.JS
	case MinOverlap:
		return d.Min
	}
	panic(fmt.Sprintf("unknown method %v", m))
}

// Set sets the distance computed by m to v.
func (d *Distances) Set(m Method, v float64) {
	switch m {
	case KS:
		d.KS = v
	case Hellinger:
		d.Hellinger = v
	case JensenShannon:
		d.JS = v
	case MinOverlap:
		d.Min = v
	default:
		panic(fmt.Sprintf("unknown method %v", m))
	}
}

// Compare returns every distance between samples p and q. The
// probability functions are estimated once and shared by the methods
// that need them.
func Compare(p, q []float64, est Estimator) (Distances, error) {
	if len(p) == 0 || len(q) == 0 {
		return Distances{}, ErrEmptySample
	}
	pf, qf, err := probabilities(p, q, est)
	if err != nil {
		return Distances{}, err
	}
	return Distances{
		KS:        ksStatistic(p, q),
		Hellinger: hellinger(pf, qf),
		JS:        jensenShannon(pf, qf),
		Min:       minOverlap(pf, qf),
	}, nil
}

// probabilities returns the probability functions of p and q over
// their shared grid.
func probabilities(p, q []float64, est Estimator) (pf, qf []float64, err error) {
	if est == nil {
		return nil, nil, ErrNoEstimator
	}
	grid := est.Grid(p, q)
	if pf, err = est.Estimate(p, grid); err != nil {
		return nil, nil, fmt.Errorf("estimating first sample: %w", err)
	}
	if qf, err = est.Estimate(q, grid); err != nil {
		return nil, nil, fmt.Errorf("estimating second sample: %w", err)
	}
	return pf, qf, nil
}

func ksStatistic(p, q []float64) float64 {
	return stat.KolmogorovSmirnov(sortedCopy(p), nil, sortedCopy(q), nil)
}

func hellinger(p, q []float64) float64 {
	sp, sq := make([]float64, len(p)), make([]float64, len(q))
	for i := range p {
		sp[i], sq[i] = math.Sqrt(p[i]), math.Sqrt(q[i])
	}
	return clamp01(floats.Distance(sp, sq, 2) / math.Sqrt2)
}

func jensenShannon(p, q []float64) float64 {
	// Round-off can push the divergence of identical functions
	// slightly below zero.
	return clamp01(math.Sqrt(math.Max(0, stat.JensenShannon(p, q))))
}

func minOverlap(p, q []float64) float64 {
	if len(p) != len(q) {
		panic("len(p) != len(q)")
	}
	overlap := 0.0
	for i := range p {
		overlap += math.Min(p[i], q[i])
	}
	return clamp01(1 - overlap)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
