package ode

// AdamsBashforth is a two-point Adams-Bashforth scheme. Instead of keeping a
// history of previous derivative values it predicts the lookahead point with
// a forward Euler step, so it needs no bootstrap and stays single-step.
type AdamsBashforth struct{}

func NewAdamsBashforth() *AdamsBashforth {
	return &AdamsBashforth{}
}

func (a *AdamsBashforth) Step(f ODE, x, y, h float64) float64 {
	f0 := f.Eval(x, y)
	f1 := f.Eval(x+h, y+h*f0)
	return y + h*(1.5*f1-0.5*f0)
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (a *AdamsBashforth) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, a, x0, y0, h, xTarget)
}

// AdamsMoulton is the corrector companion to [AdamsBashforth], with the
// implicit stage replaced by the same Euler lookahead.
type AdamsMoulton struct{}

func NewAdamsMoulton() *AdamsMoulton {
	return &AdamsMoulton{}
}

func (a *AdamsMoulton) Step(f ODE, x, y, h float64) float64 {
	f0 := f.Eval(x, y)
	f1 := f.Eval(x+h, y+h*f0)
	return y + h*(5*f1+8*f0)/12.0
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (a *AdamsMoulton) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, a, x0, y0, h, xTarget)
}
