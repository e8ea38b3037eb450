package odesys

import (
	"math"
	"testing"
)

func TestRK4_VectorDecay(t *testing.T) {
	y, err := Solve(vecDecay, NewRK4(), State{1, 2, 3}, 0, 1, 100)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for i, y0 := range []float64{1, 2, 3} {
		want := y0 * math.Exp(-1)
		if math.Abs(y[i]-want) > 1e-6 {
			t.Errorf("component %d: y = %.8f, want %.8f", i, y[i], want)
		}
	}
}

func TestRK4Step_ReusableStep(t *testing.T) {
	// Driving RK4Step manually must agree with the stepper through Solve.
	y := State{1.0}
	x, h := 0.0, 0.01
	for i := 0; i < 100; i++ {
		next, err := RK4Step(vecDecay, x, y, h)
		if err != nil {
			t.Fatalf("RK4Step failed: %v", err)
		}
		y = next
		x += h
	}

	viaSolve, err := Solve(vecDecay, NewRK4(), State{1.0}, 0, 1, 100)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(y[0]-viaSolve[0]) > 1e-15 {
		t.Errorf("manual %.15f != driver %.15f", y[0], viaSolve[0])
	}
}

func TestRK4_FourthOrderConvergence(t *testing.T) {
	exact := math.Exp(-1)

	yH, err := Solve(vecDecay, NewRK4(), State{1}, 0, 1, 10)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	yH2, err := Solve(vecDecay, NewRK4(), State{1}, 0, 1, 20)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	ratio := math.Abs(yH[0]-exact) / math.Abs(yH2[0]-exact)
	if ratio < 12 || ratio > 20 {
		t.Errorf("error ratio = %f, want ~16 for a fourth-order method", ratio)
	}
}

func TestEuler_VectorDecay(t *testing.T) {
	y, err := Solve(vecDecay, NewEuler(), State{1}, 0, 1, 100)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(y[0]-0.3660) > 5e-4 {
		t.Errorf("y(1) = %f, want ~0.3660", y[0])
	}
}
