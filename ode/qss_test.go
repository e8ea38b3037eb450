package ode

import (
	"math"
	"testing"
)

func TestQSS1_CommitsLikeEuler(t *testing.T) {
	// With the default quantum every change on this equation commits, so
	// QSS1 reduces to forward Euler.
	yQ, err := NewQSS1().Solve(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	yE, err := NewEuler().Solve(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(yQ-yE) > 1e-15 {
		t.Errorf("QSS1 %f != Euler %f", yQ, yE)
	}
}

func TestQSS_HoldsBelowQuantum(t *testing.T) {
	for _, q := range []*QSS{NewQSS1(), NewQSS2(), NewQSS3()} {
		q.SetDeltaQ(10)
		y, err := q.Solve(decay, 0, 1, 0.01, 1)
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if y != 1 {
			t.Errorf("order %d: y = %f, want held initial value 1", q.Order(), y)
		}
	}
}

func TestQSS3_ThirdOrderAccuracy(t *testing.T) {
	y, err := NewQSS3().Solve(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(y-math.Exp(-1)) > 1e-5 {
		t.Errorf("y(1) = %.8f, want ~%.8f", y, math.Exp(-1))
	}
}

func TestQSS_Orders(t *testing.T) {
	if got := NewQSS2().Order(); got != 2 {
		t.Errorf("Order = %d, want 2", got)
	}
}

func TestQSS_SolveTrajectory(t *testing.T) {
	tr, err := NewQSS2().SolveTrajectory(decay, 0, 1, 0.01, 1)
	if err != nil {
		t.Fatalf("SolveTrajectory failed: %v", err)
	}
	if len(tr.Xs) != len(tr.Ys) {
		t.Fatalf("trajectory lengths differ: %d vs %d", len(tr.Xs), len(tr.Ys))
	}
	if len(tr.Xs) != 101 {
		t.Errorf("trajectory length = %d, want 101", len(tr.Xs))
	}
	if tr.Xs[0] != 0 || tr.Ys[0] != 1 {
		t.Errorf("trajectory must start at the initial condition, got (%f, %f)", tr.Xs[0], tr.Ys[0])
	}
	for i := 1; i < len(tr.Ys); i++ {
		if tr.Ys[i] > tr.Ys[i-1] {
			t.Fatalf("decay trajectory rose at index %d", i)
		}
	}
	if math.Abs(tr.Xs[100]-1.0) > 1e-9 {
		t.Errorf("final x = %f, want 1.0", tr.Xs[100])
	}
}

func TestQSS_TrajectoryValidation(t *testing.T) {
	if _, err := NewQSS1().SolveTrajectory(decay, 0, 1, 0, 1); err == nil {
		t.Error("expected error for zero step size")
	}
}
