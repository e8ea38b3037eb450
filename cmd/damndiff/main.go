// Command damndiff demonstrates the solver packages: it integrates a few
// example equations with every available method and prints the results.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ScipioneParmigiano/damn-differential/internal/config"
	"github.com/ScipioneParmigiano/damn-differential/models"
	"github.com/ScipioneParmigiano/damn-differential/ode"
	"github.com/ScipioneParmigiano/damn-differential/odesys"
)

var (
	configFile string
	method     string
	stepSize   float64
	x0         float64
	y0         float64
	target     float64
	start      float64
	end        float64
	steps      int
	state      []float64
	plot       bool
)

type scalarSolver interface {
	Solve(f ode.ODE, x0, y0, h, xTarget float64) (float64, error)
}

func scalarSolvers() map[string]scalarSolver {
	return map[string]scalarSolver{
		"euler":            ode.NewEuler(),
		"heun":             ode.NewHeun(),
		"rk2":              ode.NewRK2(),
		"rk4":              ode.NewRK4(),
		"rkf45":            ode.NewRKF45(),
		"adams-bashforth":  ode.NewAdamsBashforth(),
		"adams-moulton":    ode.NewAdamsMoulton(),
		"bogacki-shampine": ode.NewBogackiShampine(),
		"qss1":             ode.NewQSS1(),
		"qss2":             ode.NewQSS2(),
		"qss3":             ode.NewQSS3(),
	}
}

func systemSteppers() map[string]odesys.Stepper {
	return map[string]odesys.Stepper{
		"euler":       odesys.NewEuler(),
		"rk4":         odesys.NewRK4(),
		"leapfrog":    odesys.NewLeapfrog(),
		"verlet":      odesys.NewVelocityVerlet(),
		"forest-ruth": odesys.NewForestRuth(),
		"yoshida4":    odesys.NewYoshida4(),
		"radau-ia":    odesys.NewRadauIA(),
		"radau-iia":   odesys.NewRadauIIA(),
		"qss":         odesys.NewQSSSys(),
	}
}

func sortedNames[M ~map[string]V, V any](m M) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scenario merges the scenario file, if any, with the command line. Flags
// win only when set explicitly; otherwise the file (or the defaults) hold.
func scenario(cmd *cobra.Command) (*config.Scenario, error) {
	sc := config.DefaultScenario()
	var err error
	if configFile != "" {
		if sc, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	flagSet := func(name string) bool {
		return configFile == "" || cmd.Flags().Changed(name) || cmd.InheritedFlags().Changed(name)
	}
	if flagSet("method") {
		sc.Method = method
	}
	if flagSet("h") {
		sc.H = stepSize
	}
	if flagSet("x0") {
		sc.X0 = x0
	}
	if flagSet("y0") {
		sc.Y0 = y0
	}
	if flagSet("target") {
		sc.Target = target
	}
	if flagSet("start") {
		sc.Start = start
	}
	if flagSet("end") {
		sc.End = end
	}
	if flagSet("steps") {
		sc.Steps = steps
	}
	if len(state) != 0 {
		sc.State = state
	}
	return sc, nil
}

func runScalar(cmd *cobra.Command, args []string) error {
	sc, err := scenario(cmd)
	if err != nil {
		return err
	}

	eq := models.Wave{}
	solvers := scalarSolvers()

	names := []string{sc.Method}
	if sc.Method == "all" {
		names = sortedNames(solvers)
	}
	for _, name := range names {
		s, ok := solvers[name]
		if !ok {
			return fmt.Errorf("unknown scalar method %q", name)
		}
		y, err := s.Solve(eq, sc.X0, sc.Y0, sc.H, sc.Target)
		if err != nil {
			return err
		}
		fmt.Printf("%-18s y(%g) = %.8f\n", name, sc.Target, y)
	}
	return nil
}

func runSystem(cmd *cobra.Command, args []string) error {
	sc, err := scenario(cmd)
	if err != nil {
		return err
	}

	lv := models.NewLotkaVolterra()
	steppers := systemSteppers()

	names := []string{sc.Method}
	if sc.Method == "all" {
		names = sortedNames(steppers)
	}
	for _, name := range names {
		st, ok := steppers[name]
		if !ok {
			return fmt.Errorf("unknown system method %q", name)
		}
		y, err := odesys.Solve(lv, st, odesys.State(sc.State), sc.Start, sc.End, sc.Steps)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s final state = %v\n", name, []float64(y))
	}

	if plot {
		return plotTrajectory(lv, steppers[names[0]], sc)
	}
	return nil
}

// plotTrajectory re-runs the first requested method step by step and charts
// the prey population.
func plotTrajectory(sys odesys.System, st odesys.Stepper, sc *config.Scenario) error {
	if st == nil {
		return nil
	}
	h := (sc.End - sc.Start) / float64(sc.Steps)
	x, y := sc.Start, odesys.State(sc.State).Clone()

	series := make([]float64, 0, sc.Steps+1)
	series = append(series, y[0])
	for i := 0; i < sc.Steps; i++ {
		next, err := st.Step(sys, x, y, h)
		if err != nil {
			return err
		}
		y = next
		x += h
		series = append(series, y[0])
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(72),
		asciigraph.Caption("prey population")))
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "damndiff",
		Short: "Numerical IVP solver demos",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML scenario file")
	rootCmd.PersistentFlags().StringVarP(&method, "method", "m", "all", "method name, or 'all'")

	scalarCmd := &cobra.Command{
		Use:   "scalar",
		Short: "Integrate dy/dx = sin(y) - cos(x) with the scalar solvers",
		RunE:  runScalar,
	}
	scalarCmd.Flags().Float64Var(&stepSize, "h", config.DefaultH, "step size")
	scalarCmd.Flags().Float64Var(&x0, "x0", 0, "initial x")
	scalarCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial y")
	scalarCmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "target x")

	systemCmd := &cobra.Command{
		Use:   "system",
		Short: "Integrate a Lotka-Volterra system with the vector solvers",
		RunE:  runSystem,
	}
	systemCmd.Flags().Float64Var(&start, "start", 0, "start time")
	systemCmd.Flags().Float64Var(&end, "end", config.DefaultEnd, "end time")
	systemCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	systemCmd.Flags().Float64SliceVar(&state, "state", nil, "initial state (default 40,10)")
	systemCmd.Flags().BoolVar(&plot, "plot", false, "chart the prey trajectory")

	rootCmd.AddCommand(scalarCmd, systemCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
