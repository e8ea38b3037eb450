package models

import "github.com/ScipioneParmigiano/damn-differential/odesys"

// LotkaVolterra is the two-species predator-prey system
//
//	dPrey/dt     = Alpha*Prey - Beta*Prey*Predator
//	dPredator/dt = Delta*Prey*Predator - Gamma*Predator
//
// over the state [prey, predator].
type LotkaVolterra struct {
	Alpha float64
	Beta  float64
	Gamma float64
	Delta float64
}

func NewLotkaVolterra() *LotkaVolterra {
	return &LotkaVolterra{
		Alpha: 0.1,
		Beta:  0.02,
		Gamma: 0.3,
		Delta: 0.01,
	}
}

func (lv *LotkaVolterra) Derive(x float64, y odesys.State) odesys.State {
	prey, pred := y[0], y[1]
	return odesys.State{
		lv.Alpha*prey - lv.Beta*prey*pred,
		lv.Delta*prey*pred - lv.Gamma*pred,
	}
}
