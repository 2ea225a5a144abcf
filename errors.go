package smt

import "errors"

var (
	ErrEmptySet         = errors.New("Empty training set")
	ErrNotTrained       = errors.New("You need to train the algorithm first")
	ErrZeroIterations   = errors.New("Number of iterations cannot be less than 1")
	ErrOneComponent     = errors.New("Number of components cannot be less than 2")
	ErrZeroEpsilon      = errors.New("Epsilon cannot be 0")
	ErrZeroTrials       = errors.New("Number of trials cannot be less than 1")
	ErrZeroWorkers      = errors.New("Number of workers cannot be negative")
	ErrThetaRange       = errors.New("Initial bias estimates must lie in [0,1]")
	ErrDegenerateTheta  = errors.New("Bias estimates of exactly 0 or 1 assign no likelihood")
	ErrObservationRange = errors.New("Observed head counts must lie in [0,trials]")
	ErrNotConverged     = errors.New("Iteration cap reached before convergence")
	ErrEmptyTrace       = errors.New("Nothing to plot in an empty trace")
	ErrInvalidRange     = errors.New("Column index cannot be negative")
)
