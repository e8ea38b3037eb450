package ode

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

var growth = Func(func(x, y float64) float64 { return x + y })

func TestRKF45_Growth(t *testing.T) {
	g := NewWithT(t)

	// dy/dx = x + y, y(0) = 1 has the solution y = 2e^x - x - 1.
	y, err := NewRKF45().Solve(growth, 0, 1, 0.1, 1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(y).To(BeNumerically("~", 2*math.E-2, 1e-5))
}

func TestRKF45_ErrorWithinTolerance(t *testing.T) {
	g := NewWithT(t)

	r := NewRKF45()
	x, y, h := 0.0, 1.0, 0.1
	within, total := 0, 0
	for x < 1 {
		yNext, errEst, hNew := r.step(growth, x, y, h)
		if errEst <= r.tol {
			within++
		}
		total++
		y = yNext
		x += h
		h = hNew
	}

	g.Expect(total).To(BeNumerically(">=", 5))
	g.Expect(float64(within) / float64(total)).To(BeNumerically(">=", 0.8),
		"local error should stay within tolerance on most accepted steps")
}

func TestRKF45_ZeroErrorGuard(t *testing.T) {
	g := NewWithT(t)

	flat := Func(func(x, y float64) float64 { return 0 })
	r := NewRKF45()

	_, errEst, hNew := r.step(flat, 0, 1, 0.1)
	g.Expect(errEst).To(BeZero())
	g.Expect(hNew).To(BeNumerically("~", 0.1*r.maxScale, 1e-12),
		"zero error grows the step by the capped max scale")

	y, err := r.Solve(flat, 0, 1, 0.1, 100)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(y).To(Equal(1.0))
}

func TestRKF45_StepBudget(t *testing.T) {
	g := NewWithT(t)

	r := NewRKF45()
	r.tol = 1e-300 // unreachable, h shrinks every step
	r.maxSteps = 10

	_, err := r.Solve(growth, 0, 1, 0.1, 1)
	g.Expect(err).To(MatchError(ErrTooManySteps))
}

func TestRKF45_SetTolerance(t *testing.T) {
	g := NewWithT(t)

	loose := NewRKF45()
	loose.SetTolerance(1e-2)
	tight := NewRKF45()
	tight.SetTolerance(1e-10)

	exact := 2*math.E - 2
	yLoose, err := loose.Solve(growth, 0, 1, 0.1, 1)
	g.Expect(err).NotTo(HaveOccurred())
	yTight, err := tight.Solve(growth, 0, 1, 0.1, 1)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(math.Abs(yTight - exact)).To(BeNumerically("<=", math.Abs(yLoose-exact)))
}
