package ode

import "math"

// DefaultDeltaQ is the quantum threshold used by the QSS constructors.
const DefaultDeltaQ = 1e-6

// QSS is a quantized-state scheme of order 1, 2 or 3. Each step computes a
// trial update with an explicit Runge-Kutta stage of the matching order and
// commits it only when the change reaches the quantum DeltaQ; smaller
// changes leave the state held at its previous value. This is a synchronous
// approximation of quantized state systems, not the event-driven original.
type QSS struct {
	order  int
	deltaQ float64
}

func NewQSS1() *QSS {
	return &QSS{order: 1, deltaQ: DefaultDeltaQ}
}

func NewQSS2() *QSS {
	return &QSS{order: 2, deltaQ: DefaultDeltaQ}
}

func NewQSS3() *QSS {
	return &QSS{order: 3, deltaQ: DefaultDeltaQ}
}

// Order reports the order of the underlying trial update.
func (q *QSS) Order() int { return q.order }

// SetDeltaQ overrides the quantum threshold.
func (q *QSS) SetDeltaQ(deltaQ float64) {
	q.deltaQ = deltaQ
}

func (q *QSS) Step(f ODE, x, y, h float64) float64 {
	trial := q.trial(f, x, y, h)
	if math.Abs(trial-y) < q.deltaQ {
		return y
	}
	return trial
}

func (q *QSS) trial(f ODE, x, y, h float64) float64 {
	switch q.order {
	case 1:
		return y + h*f.Eval(x, y)
	case 2:
		k1 := h * f.Eval(x, y)
		k2 := h * f.Eval(x+h, y+k1)
		return y + 0.5*(k1+k2)
	default:
		k1 := h * f.Eval(x, y)
		k2 := h * f.Eval(x+0.5*h, y+0.5*k1)
		k3 := h * f.Eval(x+h, y-k1+2*k2)
		return y + (k1+4*k2+k3)/6.0
	}
}

// Solve integrates f from (x0, y0) to xTarget with fixed step h.
func (q *QSS) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	return Solve(f, q, x0, y0, h, xTarget)
}

// SolveTrajectory integrates like Solve but records every visited point,
// including held ones, starting at (x0, y0).
func (q *QSS) SolveTrajectory(f ODE, x0, y0, h, xTarget float64) (Trace, error) {
	if err := validate(x0, h, xTarget); err != nil {
		return Trace{}, err
	}

	n := stepCount(x0, h, xTarget)
	tr := Trace{
		Xs: make([]float64, 0, n+1),
		Ys: make([]float64, 0, n+1),
	}

	x, y := x0, y0
	tr.Xs = append(tr.Xs, x)
	tr.Ys = append(tr.Ys, y)
	for i := 0; i < n; i++ {
		y = q.Step(f, x, y, h)
		x += h
		tr.Xs = append(tr.Xs, x)
		tr.Ys = append(tr.Ys, y)
	}
	return tr, nil
}
