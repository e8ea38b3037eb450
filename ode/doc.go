// Package ode provides numerical solvers for scalar initial value problems
// of ordinary differential equations dy/dx = f(x, y).
//
// The package defines the fundamental contracts:
//
//   - [ODE]: the caller-supplied derivative function
//   - [Stepper]: a fixed-step advancement scheme
//   - [Solve]: drives any Stepper from x0 to a target x
//
// Fixed-step methods ([Euler], [Heun], [RK2], [RK4], [AdamsBashforth],
// [AdamsMoulton], [BogackiShampine]) share the Solve driver. The adaptive
// [RKF45] and the quantized [QSS] family own their loops.
//
// # Example
//
//	decay := ode.Func(func(x, y float64) float64 { return -y })
//	y, err := ode.NewRK4().Solve(decay, 0, 1, 0.01, 1)
//
// # Thread Safety
//
// Solvers hold no mutable state; a single instance may be used from multiple
// goroutines as long as the derivative function itself is safe for
// concurrent invocation.
package ode
