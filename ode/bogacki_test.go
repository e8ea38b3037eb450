package ode

import (
	"math"
	"testing"
)

func TestBogackiShampine_Decay(t *testing.T) {
	y, err := NewBogackiShampine().Solve(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(y-math.Exp(-1)) > 5e-3 {
		t.Errorf("y(1) = %f, want ~%f", y, math.Exp(-1))
	}
}

func TestBogackiShampine_BeatsEuler(t *testing.T) {
	exact := math.Exp(-1)

	yBS, err := NewBogackiShampine().Solve(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	yEU, err := NewEuler().Solve(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if math.Abs(yBS-exact) >= math.Abs(yEU-exact) {
		t.Errorf("Bogacki-Shampine error %e not below Euler error %e",
			math.Abs(yBS-exact), math.Abs(yEU-exact))
	}
}
