package odesys

// Leapfrog is the kick-drift-kick leapfrog scheme over a split state:
// positions in the first half, velocities in the second. It is symplectic
// when the acceleration depends only on position.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys System, x float64, y State, h float64) (State, error) {
	half := len(y) / 2

	dy, err := derive(sys, x, y)
	if err != nil {
		return nil, err
	}

	result := y.Clone()
	for i := 0; i < half; i++ {
		result[half+i] += 0.5 * h * dy[half+i]
	}
	for i := 0; i < half; i++ {
		result[i] += h * result[half+i]
	}

	dyNew, err := derive(sys, x+h, result)
	if err != nil {
		return nil, err
	}
	for i := 0; i < half; i++ {
		result[half+i] += 0.5 * h * dyNew[half+i]
	}
	return result, nil
}
