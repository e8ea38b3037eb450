package models

import "math"

// Decay is the exponential decay equation dy/dx = -y, with the analytic
// solution y = y0 * exp(-x).
type Decay struct{}

func (Decay) Eval(x, y float64) float64 { return -y }

// Growth is the linear growth equation dy/dx = x + y.
type Growth struct{}

func (Growth) Eval(x, y float64) float64 { return x + y }

// Wave is the equation dy/dx = sin(y) - cos(x).
type Wave struct{}

func (Wave) Eval(x, y float64) float64 { return math.Sin(y) - math.Cos(x) }
