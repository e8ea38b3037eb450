package ode

// BogackiShampine is the four-stage Bogacki-Shampine scheme. The embedded
// second-order combination is the value carried forward; the step size stays
// fixed, so the pair's error estimate is not used to resize steps here.
type BogackiShampine struct{}

func NewBogackiShampine() *BogackiShampine {
	return &BogackiShampine{}
}

func (b *BogackiShampine) Step(f ODE, x, y, h float64) float64 {
	k1 := h * f.Eval(x, y)
	k2 := h * f.Eval(x+h/2.0, y+k1/2.0)
	k3 := h * f.Eval(x+h*3.0/4.0, y+3.0/4.0*k2)

	y3 := y + 2.0/3.0*k1 + 1.0/9.0*k2 + 4.0/9.0*k3

	k4 := h * f.Eval(x, y3)

	return y + 7.0/24.0*k1 + 1.0/4.0*k2 + 1.0/3.0*k3 + 1.0/8.0*k4
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (b *BogackiShampine) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, b, x0, y0, h, xTarget)
}
