package ode

// Euler is the explicit first-order Euler method.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f ODE, x, y, h float64) float64 {
	return y + h*f.Eval(x, y)
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (e *Euler) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, e, x0, y0, h, xTarget)
}
