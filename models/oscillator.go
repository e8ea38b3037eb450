package models

import "github.com/ScipioneParmigiano/damn-differential/odesys"

// HarmonicOscillator is the unit harmonic oscillator dx/dt = v, dv/dt = -x,
// in the split-state layout [position, velocity] used by the symplectic
// steppers.
type HarmonicOscillator struct{}

func NewHarmonicOscillator() *HarmonicOscillator {
	return &HarmonicOscillator{}
}

func (o *HarmonicOscillator) Derive(x float64, y odesys.State) odesys.State {
	return odesys.State{y[1], -y[0]}
}

// Energy returns the conserved total energy x^2 + v^2 up to a constant
// factor.
func (o *HarmonicOscillator) Energy(y odesys.State) float64 {
	return y[0]*y[0] + y[1]*y[1]
}
