package ode

import "math"

// Fehlberg coefficients (RKF45)
var (
	fa2 = 1.0 / 4.0
	fa3 = 3.0 / 8.0
	fa4 = 12.0 / 13.0
	fa5 = 1.0
	fa6 = 1.0 / 2.0

	fb21 = 1.0 / 4.0
	fb31 = 3.0 / 32.0
	fb32 = 9.0 / 32.0
	fb41 = 1932.0 / 2197.0
	fb42 = -7200.0 / 2197.0
	fb43 = 7296.0 / 2197.0
	fb51 = 439.0 / 216.0
	fb52 = -8.0
	fb53 = 3680.0 / 513.0
	fb54 = -845.0 / 4104.0
	fb61 = -8.0 / 27.0
	fb62 = 2.0
	fb63 = -3544.0 / 2565.0
	fb64 = 1859.0 / 4104.0
	fb65 = -11.0 / 40.0

	// order-4 estimate
	fc1 = 25.0 / 216.0
	fc3 = 1408.0 / 2565.0
	fc4 = 2197.0 / 4104.0
	fc5 = -1.0 / 5.0

	// order-5 estimate
	fd1 = 16.0 / 135.0
	fd3 = 6656.0 / 12825.0
	fd4 = 28561.0 / 56430.0
	fd5 = -9.0 / 50.0
	fd6 = 2.0 / 55.0
)

// RKF45 is the Runge-Kutta-Fehlberg embedded 4(5) pair. Every step is
// accepted with the order-5 estimate; the difference between the two
// estimates only drives the size of the following step.
type RKF45 struct {
	tol      float64
	safety   float64
	minScale float64
	maxScale float64
	maxSteps int
}

func NewRKF45() *RKF45 {
	return &RKF45{
		tol:      1e-6,
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
		maxSteps: 1_000_000,
	}
}

// SetTolerance overrides the default local error tolerance of 1e-6.
func (r *RKF45) SetTolerance(tol float64) {
	r.tol = tol
}

// Solve integrates f from (x0, y0) to xTarget, starting from step size h and
// adapting it after each step. The step budget guards against a tolerance
// that keeps shrinking h without progress.
func (r *RKF45) Solve(f ODE, x0, y0, h, xTarget float64) (float64, error) {
	if err := validate(x0, h, xTarget); err != nil {
		return y0, err
	}

	x, y := x0, y0
	for n := 0; (xTarget-x)*h > 0; n++ {
		if n >= r.maxSteps {
			return y, ErrTooManySteps
		}
		// Clamp the last step onto the target so a grown h cannot
		// carry the solution far past it.
		hStep := h
		if math.Abs(hStep) > math.Abs(xTarget-x) {
			hStep = xTarget - x
		}
		yNext, _, hNew := r.step(f, x, y, hStep)
		y = yNext
		x += hStep
		h = hNew
	}
	return y, nil
}

// step performs one RKF45 step and returns the order-5 estimate, the local
// error estimate and the step size to use next.
func (r *RKF45) step(f ODE, x, y, h float64) (yNext, errEst, hNew float64) {
	k1 := h * f.Eval(x, y)
	k2 := h * f.Eval(x+fa2*h, y+fb21*k1)
	k3 := h * f.Eval(x+fa3*h, y+fb31*k1+fb32*k2)
	k4 := h * f.Eval(x+fa4*h, y+fb41*k1+fb42*k2+fb43*k3)
	k5 := h * f.Eval(x+fa5*h, y+fb51*k1+fb52*k2+fb53*k3+fb54*k4)
	k6 := h * f.Eval(x+fa6*h, y+fb61*k1+fb62*k2+fb63*k3+fb64*k4+fb65*k5)

	y4 := y + fc1*k1 + fc3*k3 + fc4*k4 + fc5*k5
	y5 := y + fd1*k1 + fd3*k3 + fd4*k4 + fd5*k5 + fd6*k6

	errEst = math.Abs(y5 - y4)

	scale := r.maxScale
	if errEst > 0 {
		scale = r.safety * math.Pow(r.tol/errEst, 0.2)
		scale = math.Max(r.minScale, math.Min(r.maxScale, scale))
	}
	return y5, errEst, h * scale
}
