// Package models provides example derivative functions for the solver
// packages.
//
// Scalar equations implement [ode.ODE]:
//
//   - [Decay]: dy/dx = -y
//   - [Growth]: dy/dx = x + y
//   - [Wave]: dy/dx = sin(y) - cos(x)
//
// Systems implement [odesys.System]:
//
//   - [HarmonicOscillator]: unit oscillator, also implements
//     [odesys.Hamiltonian] for energy drift monitoring
//   - [LotkaVolterra]: two-species predator-prey dynamics
package models
