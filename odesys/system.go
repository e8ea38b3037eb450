package odesys

import "fmt"

// System is the derivative capability supplied by the caller: given the
// independent variable x and the state y, return dY/dx. The returned vector
// must have the same length as y.
type System interface {
	Derive(x float64, y State) State
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(x float64, y State) State

func (f SystemFunc) Derive(x float64, y State) State { return f(x, y) }

// Hamiltonian is implemented by systems with a conserved energy, used to
// monitor drift under long symplectic integrations.
type Hamiltonian interface {
	Energy(y State) float64
}

// Stepper advances a state by one step of size h.
type Stepper interface {
	Step(sys System, x float64, y State, h float64) (State, error)
}

// derive evaluates the system and fails fast on a length mismatch instead of
// letting a short or long derivative silently truncate the state.
func derive(sys System, x float64, y State) (State, error) {
	dy := sys.Derive(x, y)
	if len(dy) != len(y) {
		return nil, fmt.Errorf("%w: state %d, derivative %d", ErrDimensionMismatch, len(y), len(dy))
	}
	return dy, nil
}
