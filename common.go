package smt

// struct denoting start and end indices of the observation slice to be scored by E step workers
type rangeJob struct {
	a, b int
}

// partition splits l observations into s contiguous jobs, the last one
// absorbing the remainder.
func partition(l, s int) []rangeJob {
	var (
		f = l / s
		r = make([]rangeJob, 0, s)
	)

	for i := 0; i < s; i++ {
		b := (i + 1) * f
		if i == s-1 {
			b = l
		}

		r = append(r, rangeJob{a: i * f, b: b})
	}

	return r
}
