package oscillator

import "gonum.org/v1/gonum/mat"

// System is a continuous-time dynamical system given by its state derivative.
type System interface {
	Derivative(t float64, state mat.Vector) mat.Vector
}

// RungeKutta integrates a System with an explicit Runge-Kutta scheme
// described by its Butcher tableau,
// https://en.wikipedia.org/wiki/Runge–Kutta_methods.
type RungeKutta struct {
	tableau butcherTableau
}

type butcherTableau struct {
	stages           int
	weights          []float64
	nodes            []float64
	rungeKuttaMatrix [][]float64
}

// NewRK4 returns the classic fourth-order Runge-Kutta integrator.
func NewRK4() *RungeKutta {
	return &RungeKutta{butcherTableau{
		stages:  4,
		nodes:   []float64{0, 1. / 2., 1. / 2., 1},
		weights: []float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.},
		rungeKuttaMatrix: [][]float64{
			nil,
			{1. / 2.},
			{0, 1. / 2.},
			{0, 0, 1.},
		},
	}}
}

// NewEulerMethod returns the forward Euler integrator.
func NewEulerMethod() *RungeKutta {
	return &RungeKutta{butcherTableau{
		stages:  1,
		nodes:   []float64{0},
		weights: []float64{1},
	}}
}

// Step advances state in place from t to t+h.
func (rk *RungeKutta) Step(sys System, t, h float64, state *mat.VecDense) {
	m, _ := state.Dims()
	K := make([]mat.Vector, rk.tableau.stages)
	tmp := mat.NewVecDense(m, nil)
	for index := range K {
		tmp.CopyVec(state)
		// Combine the previously computed derivative points according to
		// the tableau row.
		if index < len(rk.tableau.rungeKuttaMatrix) {
			for index2, a := range rk.tableau.rungeKuttaMatrix[index] {
				tmp.AddScaledVec(tmp, h*a, K[index2])
			}
		}
		K[index] = sys.Derivative(t+h*rk.tableau.nodes[index], tmp)
	}
	for index, k := range K {
		state.AddScaledVec(state, h*rk.tableau.weights[index], k)
	}
}
