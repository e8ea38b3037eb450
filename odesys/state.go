package odesys

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is the vector state of a system of ODEs. The helpers never mutate
// their receiver; each returns a fresh vector. Operands must have equal
// length (the floats kernels panic otherwise; solvers validate lengths
// before arithmetic is reached).
type State []float64

// Clone returns an independent copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether s is free of NaN and Inf entries.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of s.
func (s State) Norm() float64 {
	return floats.Norm(s, 2)
}

// Add returns the elementwise sum s + o.
func (s State) Add(o State) State {
	r := s.Clone()
	floats.Add(r, o)
	return r
}

// Scale returns s scaled by factor.
func (s State) Scale(factor float64) State {
	r := s.Clone()
	floats.Scale(factor, r)
	return r
}

// AddScaled returns s + alpha*o.
func (s State) AddScaled(alpha float64, o State) State {
	r := s.Clone()
	floats.AddScaled(r, alpha, o)
	return r
}
