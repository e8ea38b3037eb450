package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultH      = 0.01
	DefaultTarget = 1.0
	DefaultY0     = 1.0
	DefaultEnd    = 40.0
	DefaultSteps  = 4000
)

// Scenario describes one demo integration run, loadable from YAML.
type Scenario struct {
	Method string  `yaml:"method"`
	H      float64 `yaml:"h"`
	X0     float64 `yaml:"x0"`
	Y0     float64 `yaml:"y0"`
	Target float64 `yaml:"target"`

	// System form: initial state plus (start, end, steps).
	State []float64 `yaml:"state"`
	Start float64   `yaml:"start"`
	End   float64   `yaml:"end"`
	Steps int       `yaml:"steps"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		Method: "rk4",
		H:      DefaultH,
		Y0:     DefaultY0,
		Target: DefaultTarget,
		State:  []float64{40, 10},
		End:    DefaultEnd,
		Steps:  DefaultSteps,
	}
}

// Load reads a scenario file, filling unset fields from the defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return sc, nil
}

// Save writes a scenario file, so a run can be reproduced later.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
