package odesys

import "math"

// Solve advances y0 across [start, end] in exactly steps fixed steps of size
// (end-start)/steps, so the final x lands on end with no overshoot. This is
// the primary call form; see [SolveStep] for the explicit-step-size variant.
func Solve(sys System, st Stepper, y0 State, start, end float64, steps int) (State, error) {
	if steps <= 0 {
		return nil, ErrInvalidStepCount
	}
	if start == end {
		return y0.Clone(), nil
	}

	h := (end - start) / float64(steps)
	x, y := start, y0.Clone()
	for i := 0; i < steps; i++ {
		next, err := st.Step(sys, x, y, h)
		if err != nil {
			return nil, err
		}
		y = next
		x += h
	}
	return y, nil
}

// SolveStep advances y0 from x0 to xTarget in fixed steps of size h. The
// step count is precomputed, so a misconfigured h fails fast instead of
// looping forever; the final x may exceed xTarget by less than h.
func SolveStep(sys System, st Stepper, y0 State, x0, xTarget, h float64) (State, error) {
	if h == 0 {
		return nil, ErrZeroStepSize
	}
	if (xTarget-x0)*h < 0 {
		return nil, ErrInvalidStepDirection
	}

	x, y := x0, y0.Clone()
	for n := int(math.Ceil((xTarget - x0) / h)); n > 0; n-- {
		next, err := st.Step(sys, x, y, h)
		if err != nil {
			return nil, err
		}
		y = next
		x += h
	}
	return y, nil
}
