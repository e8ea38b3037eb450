package ode

import "testing"

func BenchmarkEuler(b *testing.B) {
	s := NewEuler()
	y := 1.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = s.Step(decay, 0, y, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	s := NewRK4()
	y := 1.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = s.Step(decay, 0, y, 0.01)
	}
}

func BenchmarkRKF45(b *testing.B) {
	s := NewRKF45()
	y := 1.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y, _, _ = s.step(decay, 0, y, 0.01)
	}
}

func BenchmarkQSS3(b *testing.B) {
	s := NewQSS3()
	y := 1.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = s.Step(decay, 0, y, 0.01)
	}
}
