package smt

import (
	"gonum.org/v1/gonum/floats"
)

// EStep scores every observation under every component and normalizes the
// scores into responsibilities.
func EStep(observations []int, thetas []float64, trials int, likelihood LikelihoodFunc) []Posterior {
	var p = make([]Posterior, len(observations))

	for i, h := range observations {
		p[i] = posteriorOf(h, thetas, trials, likelihood)
	}

	return p
}

// MStep re-estimates every component's bias as the responsibility-weighted
// fraction of heads over responsibility-weighted trials.
func MStep(observations []int, posteriors []Posterior, trials int) []float64 {
	if len(posteriors) == 0 {
		return nil
	}

	var (
		k = len(posteriors[0])
		n = make([]float64, k)
		d = make([]float64, k)
		t = make([]float64, k)
	)

	for i, h := range observations {
		for j, r := range posteriors[i] {
			n[j] += r * float64(h)
			d[j] += r * float64(trials)
		}
	}

	for j := range t {
		// a component starved of all responsibility reverts to a fair coin
		if d[j] == 0 {
			t[j] = 0.5
			continue
		}

		t[j] = n[j] / d[j]
	}

	return t
}

/* If every component assigns zero likelihood the posterior is undefined,
 * so the observation is split uniformly rather than poisoning the M step
 * with NaNs. */
func posteriorOf(heads int, thetas []float64, trials int, likelihood LikelihoodFunc) Posterior {
	var p = make(Posterior, len(thetas))

	for j, t := range thetas {
		p[j] = likelihood(heads, trials, t)
	}

	if s := floats.Sum(p); s > 0 {
		floats.Scale(1/s, p)
	} else {
		for j := range p {
			p[j] = 1 / float64(len(p))
		}
	}

	return p
}
