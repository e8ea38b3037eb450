// Package odesys provides numerical solvers for initial value problems of
// systems of ordinary differential equations dY/dx = f(x, Y).
//
// The package defines:
//
//   - [State]: vector representing the system state
//   - [System]: the caller-supplied derivative function
//   - [Stepper]: a single-step advancement scheme
//   - [Solve], [SolveStep]: drivers from a start to a target
//
// General-purpose steppers ([Euler], [RK4], [RadauIA], [RadauIIA], [QSSSys])
// treat the state as an arbitrary vector. The symplectic steppers
// ([Leapfrog], [VelocityVerlet], [ForestRuth], [Yoshida4]) use a split-state
// convention: the first half of the state holds positions and the second
// half the matching velocities, so the derivative's second half is read as
// acceleration. An odd middle element is carried through unchanged.
//
// # Example
//
//	lv := models.NewLotkaVolterra()
//	y, err := odesys.Solve(lv, odesys.NewRK4(), odesys.State{40, 10}, 0, 40, 4000)
//
// # Thread Safety
//
// Steppers hold no mutable state; a single instance may be used from
// multiple goroutines as long as the derivative function itself is safe for
// concurrent invocation.
package odesys
