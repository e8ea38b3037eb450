package odesys

import "errors"

// Domain errors for solver preconditions.
var (
	// ErrDimensionMismatch indicates a derivative whose length differs from
	// the state it was evaluated at.
	ErrDimensionMismatch = errors.New("odesys: derivative length differs from state length")

	// ErrZeroStepSize indicates a step size of exactly zero.
	ErrZeroStepSize = errors.New("odesys: step size is zero")

	// ErrInvalidStepDirection indicates a step size whose sign points away
	// from the integration target.
	ErrInvalidStepDirection = errors.New("odesys: step direction inconsistent with target")

	// ErrInvalidStepCount indicates a non-positive number of steps.
	ErrInvalidStepCount = errors.New("odesys: step count must be positive")
)
