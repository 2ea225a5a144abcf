package smt

// Iteration records the bias estimates after one EM iteration and the
// largest absolute parameter change that produced them.
type Iteration struct {
	Thetas []float64
	Delta  float64
}

type Trace []Iteration

func (t Trace) Last() Iteration {
	if len(t) == 0 {
		return Iteration{}
	}

	return t[len(t)-1]
}

func (t Trace) Deltas() []float64 {
	d := make([]float64, len(t))

	for i := range t {
		d[i] = t[i].Delta
	}

	return d
}
