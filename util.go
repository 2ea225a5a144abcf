package smt

import "math"

func maxDelta(a, b []float64) float64 {
	var m float64

	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m
}

func snapshot(a []float64) []float64 {
	s := make([]float64, len(a))
	copy(s, a)

	return s
}
