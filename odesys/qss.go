package odesys

import "math"

// DefaultDeltaQ is the quantum threshold used by [NewQSSSys].
const DefaultDeltaQ = 1e-6

// QSSSys is a quantized-state scheme for systems. Each step computes a
// two-stage trial update and commits it componentwise: components whose
// change reaches the quantum DeltaQ take the new value, the rest hold. This
// is a synchronous approximation of quantized state systems, not the
// event-driven original.
type QSSSys struct {
	deltaQ float64
}

func NewQSSSys() *QSSSys {
	return &QSSSys{deltaQ: DefaultDeltaQ}
}

// SetDeltaQ overrides the quantum threshold.
func (q *QSSSys) SetDeltaQ(deltaQ float64) {
	q.deltaQ = deltaQ
}

func (q *QSSSys) Step(sys System, x float64, y State, h float64) (State, error) {
	k1, err := derive(sys, x, y)
	if err != nil {
		return nil, err
	}
	k2, err := derive(sys, x+h, y.AddScaled(h, k1))
	if err != nil {
		return nil, err
	}

	result := y.Clone()
	halfH := 0.5 * h
	for i := range result {
		change := halfH * (k1[i] + k2[i])
		if math.Abs(change) >= q.deltaQ {
			result[i] += change
		}
	}
	return result, nil
}
