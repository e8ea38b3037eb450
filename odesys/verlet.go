package odesys

// VelocityVerlet is the velocity Verlet scheme over a split state: positions
// in the first half, velocities in the second. Positions take a full drift
// with the current acceleration; velocities take the average of the old and
// new accelerations.
type VelocityVerlet struct{}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) Step(sys System, x float64, y State, h float64) (State, error) {
	half := len(y) / 2

	dy, err := derive(sys, x, y)
	if err != nil {
		return nil, err
	}

	result := y.Clone()
	h2 := h * h
	for i := 0; i < half; i++ {
		result[i] += y[half+i]*h + 0.5*dy[half+i]*h2
	}

	// New positions, old velocities: only the position part feeds the
	// acceleration re-evaluation.
	mid := result.Clone()
	for i := 0; i < half; i++ {
		mid[half+i] = y[half+i]
	}
	dyNew, err := derive(sys, x+h, mid)
	if err != nil {
		return nil, err
	}

	halfH := 0.5 * h
	for i := 0; i < half; i++ {
		result[half+i] = y[half+i] + (dy[half+i]+dyNew[half+i])*halfH
	}
	return result, nil
}
