package ode

// RK2 is the two-stage second-order Runge-Kutta method with endpoint
// stage weights.
type RK2 struct{}

func NewRK2() *RK2 {
	return &RK2{}
}

func (r *RK2) Step(f ODE, x, y, h float64) float64 {
	k1 := h * f.Eval(x, y)
	k2 := h * f.Eval(x+h, y+k1)
	return y + 0.5*(k1+k2)
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (r *RK2) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, r, x0, y0, h, xTarget)
}
