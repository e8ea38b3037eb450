package odesys

// RK4 is the classical four-stage fourth-order Runge-Kutta method.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys System, x float64, y State, h float64) (State, error) {
	return RK4Step(sys, x, y, h)
}

// RK4Step performs a single classical RK4 step. It is exported so other
// schemes and callers driving their own loops can reuse it.
func RK4Step(sys System, x float64, y State, h float64) (State, error) {
	k1, err := derive(sys, x, y)
	if err != nil {
		return nil, err
	}
	k2, err := derive(sys, x+0.5*h, y.AddScaled(0.5*h, k1))
	if err != nil {
		return nil, err
	}
	k3, err := derive(sys, x+0.5*h, y.AddScaled(0.5*h, k2))
	if err != nil {
		return nil, err
	}
	k4, err := derive(sys, x+h, y.AddScaled(h, k3))
	if err != nil {
		return nil, err
	}

	result := y.Clone()
	h6 := h / 6.0
	for i := range result {
		result[i] += h6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
	return result, nil
}
