package smt

import (
	"math"
)

// LikelihoodFunc scores a draw of heads out of trials under bias theta.
// The score need not be normalized; the E step normalizes across components.
type LikelihoodFunc func(heads, trials int, theta float64) float64

// Posterior holds one observation's responsibilities, one entry per
// component, summing to 1.
type Posterior []float64

type Estimator interface {
	Learn(observations []int) error
}

type MixtureEstimator interface {
	// Guesses returns the responsibility table of the last E step.
	Guesses() []Posterior

	// Thetas returns the current bias estimates, one per component.
	Thetas() []float64

	// Iterations returns the number of EM iterations the last Learn performed.
	Iterations() int

	// Trace returns per-iteration parameter snapshots of the last Learn.
	Trace() Trace

	Predict(heads int) (Posterior, error)

	Estimator
}

var (
	BernoulliLikelihood = func(heads, trials int, theta float64) float64 {
		return math.Pow(theta, float64(heads)) * math.Pow(1-theta, float64(trials-heads))
	}
)
