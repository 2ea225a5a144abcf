package smt

import (
	"sync"
)

type emEstimator struct {
	iterations int
	trials     int
	workers    int
	epsilon    float64

	likelihood LikelihoodFunc

	// Current bias estimates, one per component.
	t []float64

	// Responsibility table, recomputed fully every E step.
	p []Posterior

	// Per-iteration parameter snapshots.
	r Trace

	// Iterations performed by the last Learn.
	n int

	trained bool

	// variables used for concurrent scoring of observations
	s int
	j chan *rangeJob
	w *sync.WaitGroup

	// Training set
	d []int

	// Computed estimates. Access is synchronized.
	mu sync.RWMutex
}

// BernoulliMixture creates an EM estimator for a mixture of len(thetas)
// biased coins, each draw consisting of a fixed number of trials. The
// initial bias estimates are caller-supplied and never seeded internally,
// so a run is deterministic given its inputs. A workers count of 0 lets the
// estimator scale the E step pool to the dataset, a nil likelihood selects
// BernoulliLikelihood.
func BernoulliMixture(iterations int, epsilon float64, trials int, thetas []float64, workers int, likelihood LikelihoodFunc) (MixtureEstimator, error) {
	if iterations < 1 {
		return nil, ErrZeroIterations
	}

	if epsilon <= 0 {
		return nil, ErrZeroEpsilon
	}

	if trials < 1 {
		return nil, ErrZeroTrials
	}

	if len(thetas) < 2 {
		return nil, ErrOneComponent
	}

	if workers < 0 {
		return nil, ErrZeroWorkers
	}

	for _, t := range thetas {
		if t < 0 || t > 1 {
			return nil, ErrThetaRange
		}

		if t == 0 || t == 1 {
			return nil, ErrDegenerateTheta
		}
	}

	var l LikelihoodFunc
	{
		if likelihood != nil {
			l = likelihood
		} else {
			l = BernoulliLikelihood
		}
	}

	return &emEstimator{
		iterations: iterations,
		epsilon:    epsilon,
		trials:     trials,
		workers:    workers,
		likelihood: l,
		t:          snapshot(thetas),
	}, nil
}

// Learn alternates E and M steps over the observations until the largest
// absolute parameter change drops below epsilon or the iteration cap is
// reached. In the latter case the approximate estimates are retained and
// ErrNotConverged is returned for the caller to judge.
func (c *emEstimator) Learn(observations []int) error {
	if len(observations) == 0 {
		return ErrEmptySet
	}

	for _, h := range observations {
		if h < 0 || h > c.trials {
			return ErrObservationRange
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.d = observations
	c.p = make([]Posterior, len(observations))
	c.r = make(Trace, 0, c.iterations)
	c.n = 0

	c.s = c.numWorkers()

	c.startWorkers()
	defer c.endWorkers()

	for i := 0; i < c.iterations; i++ {
		c.eStep()

		var (
			t = MStep(c.d, c.p, c.trials)
			d = maxDelta(c.t, t)
		)

		c.t = t
		c.n++

		c.r = append(c.r, Iteration{Thetas: snapshot(t), Delta: d})

		if d < c.epsilon {
			c.trained = true
			return nil
		}
	}

	c.trained = true

	return ErrNotConverged
}

func (c *emEstimator) Guesses() []Posterior {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.p
}

func (c *emEstimator) Thetas() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return snapshot(c.t)
}

func (c *emEstimator) Iterations() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.n
}

func (c *emEstimator) Trace() Trace {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.r
}

func (c *emEstimator) Predict(heads int) (Posterior, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return nil, ErrNotTrained
	}

	if heads < 0 || heads > c.trials {
		return nil, ErrObservationRange
	}

	return posteriorOf(heads, c.t, c.trials, c.likelihood), nil
}

/* Observations are scored concurrently: the slice is split into contiguous
 * ranges and every worker writes posteriors only to its own indices, so no
 * locking is needed beyond the final wait. Summation in the M step happens
 * serially afterwards, keeping it order-independent. */
func (c *emEstimator) eStep() {
	var jobs = partition(len(c.d), c.s)

	c.w.Add(len(jobs))

	for i := range jobs {
		c.j <- &jobs[i]
	}

	c.w.Wait()
}

func (c *emEstimator) startWorkers() {
	c.j = make(chan *rangeJob, c.s)
	c.w = &sync.WaitGroup{}

	for i := 0; i < c.s; i++ {
		go c.scoreWorker(c.j, c.w)
	}
}

func (c *emEstimator) endWorkers() {
	close(c.j)
}

func (c *emEstimator) scoreWorker(jobs chan *rangeJob, w *sync.WaitGroup) {
	for j := range jobs {
		for i := j.a; i < j.b; i++ {
			c.p[i] = posteriorOf(c.d[i], c.t, c.trials, c.likelihood)
		}

		w.Done()
	}
}

func (c *emEstimator) numWorkers() int {
	var b int

	if l := len(c.d); l < 1000 {
		b = 1
	} else if l < 10000 {
		b = 10
	} else if l < 100000 {
		b = 100
	} else {
		b = 1000
	}

	if c.workers == 0 || c.workers > b {
		return b
	}

	return c.workers
}
