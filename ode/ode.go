package ode

import "math"

// ODE is the derivative capability supplied by the caller: given the
// independent variable x and the state y, return dy/dx.
type ODE interface {
	Eval(x, y float64) float64
}

// Func adapts a plain function to the ODE interface.
type Func func(x, y float64) float64

func (f Func) Eval(x, y float64) float64 { return f(x, y) }

// Stepper advances a state by one step of size h.
type Stepper interface {
	Step(f ODE, x, y, h float64) float64
}

// Trace is a sampled solution trajectory.
type Trace struct {
	Xs []float64
	Ys []float64
}

// validate checks the step parameters shared by every solver.
// A zero h or an h pointing away from the target would never terminate.
func validate(x0, h, xTarget float64) error {
	if h == 0 {
		return ErrZeroStepSize
	}
	if (xTarget-x0)*h < 0 {
		return ErrInvalidStepDirection
	}
	return nil
}

// stepCount returns the bounded number of steps from x0 to xTarget.
// The last step may overshoot the target by less than h.
func stepCount(x0, h, xTarget float64) int {
	return int(math.Ceil((xTarget - x0) / h))
}
