package ode

// Solve advances y0 from x0 to xTarget with fixed steps of size h, using the
// given Stepper for each step. The step count is precomputed, so a
// misconfigured h fails fast instead of looping forever. The final x may
// exceed xTarget by less than h; no interpolation back to the exact target
// is performed.
func Solve(f ODE, s Stepper, x0, y0, h, xTarget float64) (float64, error) {
	if err := validate(x0, h, xTarget); err != nil {
		return y0, err
	}

	x, y := x0, y0
	for n := stepCount(x0, h, xTarget); n > 0; n-- {
		y = s.Step(f, x, y, h)
		x += h
	}
	return y, nil
}
