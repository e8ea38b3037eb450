package ode

// RK4 is the classical four-stage fourth-order Runge-Kutta method.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f ODE, x, y, h float64) float64 {
	k1 := h * f.Eval(x, y)
	k2 := h * f.Eval(x+0.5*h, y+0.5*k1)
	k3 := h * f.Eval(x+0.5*h, y+0.5*k2)
	k4 := h * f.Eval(x+h, y+k3)
	return y + (k1+2*k2+2*k3+k4)/6.0
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (r *RK4) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, r, x0, y0, h, xTarget)
}
