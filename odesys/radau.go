package odesys

// Two-stage Radau quadrature tableaux.
var (
	radauIA = radauTableau{
		c: [2]float64{0, 2.0 / 3.0},
		b: [2]float64{1.0 / 4.0, 3.0 / 4.0},
		a: [2][2]float64{
			{1.0 / 4.0, -1.0 / 4.0},
			{1.0 / 4.0, 5.0 / 12.0},
		},
	}
	radauIIA = radauTableau{
		c: [2]float64{1.0 / 3.0, 1},
		b: [2]float64{3.0 / 4.0, 1.0 / 4.0},
		a: [2][2]float64{
			{5.0 / 12.0, -1.0 / 12.0},
			{3.0 / 4.0, 1.0 / 4.0},
		},
	}
)

type radauTableau struct {
	c [2]float64
	b [2]float64
	a [2][2]float64
}

// RadauIA carries the two-stage Radau IA tableau. The stages are evaluated
// explicitly: each stage substitutes the previously computed derivative for
// the unknowns instead of solving the implicit system.
type RadauIA struct{}

func NewRadauIA() *RadauIA {
	return &RadauIA{}
}

func (r *RadauIA) Step(sys System, x float64, y State, h float64) (State, error) {
	return radauStep(sys, x, y, h, radauIA)
}

// RadauIIA carries the two-stage Radau IIA tableau, evaluated explicitly
// like [RadauIA].
type RadauIIA struct{}

func NewRadauIIA() *RadauIIA {
	return &RadauIIA{}
}

func (r *RadauIIA) Step(sys System, x float64, y State, h float64) (State, error) {
	return radauStep(sys, x, y, h, radauIIA)
}

func radauStep(sys System, x float64, y State, h float64, tb radauTableau) (State, error) {
	f0, err := derive(sys, x, y)
	if err != nil {
		return nil, err
	}

	// Euler predictor to the first abscissa in place of the implicit stage.
	k1, err := derive(sys, x+tb.c[0]*h, y.AddScaled(tb.c[0]*h, f0))
	if err != nil {
		return nil, err
	}
	k2, err := derive(sys, x+tb.c[1]*h, y.AddScaled((tb.a[1][0]+tb.a[1][1])*h, k1))
	if err != nil {
		return nil, err
	}

	result := y.Clone()
	for i := range result {
		result[i] += h * (tb.b[0]*k1[i] + tb.b[1]*k2[i])
	}
	return result, nil
}
