package odesys

import "math"

// Composition coefficients for the fourth-order symplectic schemes, derived
// from the cube root of two.
var (
	cbrt2 = math.Cbrt(2)

	// Forest-Ruth: theta = 1/(2 - 2^(1/3))
	frTheta = 1.0 / (2.0 - cbrt2)
	frDrift = [4]float64{frTheta / 2, (1 - frTheta) / 2, (1 - frTheta) / 2, frTheta / 2}
	frKick  = [3]float64{frTheta, 1 - 2*frTheta, frTheta}

	// Yoshida: w1 = 1/(2 - 2^(1/3)), w0 = -2^(1/3) * w1
	yoW1    = 1.0 / (2.0 - cbrt2)
	yoW0    = -cbrt2 * yoW1
	yoDrift = [4]float64{yoW1 / 2, (yoW0 + yoW1) / 2, (yoW0 + yoW1) / 2, yoW1 / 2}
	yoKick  = [3]float64{yoW1, yoW0, yoW1}
)

// ForestRuth is the fourth-order Forest-Ruth symplectic composition over a
// split state: positions in the first half, velocities in the second.
type ForestRuth struct{}

func NewForestRuth() *ForestRuth {
	return &ForestRuth{}
}

func (f *ForestRuth) Step(sys System, x float64, y State, h float64) (State, error) {
	return compositionStep(sys, x, y, h, frDrift, frKick)
}

// Yoshida4 is Yoshida's fourth-order symplectic composition over a split
// state: positions in the first half, velocities in the second.
type Yoshida4 struct{}

func NewYoshida4() *Yoshida4 {
	return &Yoshida4{}
}

func (yo *Yoshida4) Step(sys System, x float64, y State, h float64) (State, error) {
	return compositionStep(sys, x, y, h, yoDrift, yoKick)
}

// compositionStep alternates position drifts and velocity kicks with the
// given sub-stage coefficients, re-evaluating the acceleration after every
// drift.
func compositionStep(sys System, x float64, y State, h float64, drift [4]float64, kick [3]float64) (State, error) {
	half := len(y) / 2
	result := y.Clone()
	t := x

	for s := 0; s < 3; s++ {
		for i := 0; i < half; i++ {
			result[i] += drift[s] * h * result[half+i]
		}
		t += drift[s] * h

		dy, err := derive(sys, t, result)
		if err != nil {
			return nil, err
		}
		for i := 0; i < half; i++ {
			result[half+i] += kick[s] * h * dy[half+i]
		}
	}

	for i := 0; i < half; i++ {
		result[i] += drift[3] * h * result[half+i]
	}
	return result, nil
}
