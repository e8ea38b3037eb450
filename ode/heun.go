package ode

// Heun is the explicit trapezoidal predictor-corrector method.
type Heun struct{}

func NewHeun() *Heun {
	return &Heun{}
}

func (hn *Heun) Step(f ODE, x, y, h float64) float64 {
	slope := f.Eval(x, y)
	predicted := y + h*slope
	return y + h*0.5*(slope+f.Eval(x+h, predicted))
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (hn *Heun) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, hn, x0, y0, h, xTarget)
}
