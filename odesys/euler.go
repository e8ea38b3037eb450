package odesys

// Euler is the explicit first-order Euler method.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, x float64, y State, h float64) (State, error) {
	dy, err := derive(sys, x, y)
	if err != nil {
		return nil, err
	}
	return y.AddScaled(h, dy), nil
}
