package ode

import "errors"

// Domain errors for solver preconditions.
var (
	// ErrZeroStepSize indicates a step size of exactly zero.
	ErrZeroStepSize = errors.New("ode: step size is zero")

	// ErrInvalidStepDirection indicates a step size whose sign points away
	// from the integration target.
	ErrInvalidStepDirection = errors.New("ode: step direction inconsistent with target")

	// ErrTooManySteps indicates an adaptive solver exceeded its step budget
	// before reaching the target.
	ErrTooManySteps = errors.New("ode: maximum step count exceeded")
)
