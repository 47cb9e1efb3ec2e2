// Package oscillator generates synthetic response data for identification
// experiments: a forced Duffing oscillator integrated with a fixed-step
// Runge-Kutta scheme, a Gaussian excitation source and a decimation helper
// to bring the simulated record down to the identification sample rate.
package oscillator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Duffing is the nonlinear oscillator
//
//	ẍ + δẋ + αx + βx³ = u(t)
//
// whose cubic stiffness term makes the response amplitude-dependent. Under
// broadband forcing its sampled displacement is the standard benchmark
// signal for parameter-varying AR identification.
type Duffing struct {
	Delta float64 // viscous damping δ
	Alpha float64 // linear stiffness α
	Beta  float64 // cubic stiffness β
	// Forcing is the excitation u(t). See Hold for driving the oscillator
	// with a sampled sequence.
	Forcing Excitation
}

// Derivative implements System for the two-state form
// (x, v)' = (v, u - δv - αx - βx³).
func (d Duffing) Derivative(t float64, state mat.Vector) mat.Vector {
	x := state.AtVec(0)
	v := state.AtVec(1)
	return mat.NewVecDense(2, []float64{
		v,
		d.Forcing(t) - d.Delta*v - d.Alpha*x - d.Beta*x*x*x,
	})
}

// Response integrates the oscillator from the initial displacement x0 and
// velocity v0 and returns n displacement samples at rate fs. Each sample
// interval is divided into substeps RK4 steps; the first sample is the
// initial state.
func (d Duffing) Response(n int, fs float64, substeps int, x0, v0 float64) ([]float64, error) {
	if d.Forcing == nil {
		return nil, ErrNoForcing
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleCount, n)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrSampleRate, fs)
	}
	if substeps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSubsteps, substeps)
	}

	rk := NewRK4()
	h := 1 / fs / float64(substeps)
	state := mat.NewVecDense(2, []float64{x0, v0})
	out := make([]float64, n)
	out[0] = x0
	for i := 1; i < n; i++ {
		t0 := float64(i-1) / fs
		for s := 0; s < substeps; s++ {
			rk.Step(d, t0+float64(s)*h, h, state)
		}
		out[i] = state.AtVec(0)
	}
	return out, nil
}

// Decimate reduces the sample rate of y by an integer factor, averaging each
// block of factor samples (boxcar anti-aliasing). Trailing samples that do
// not fill a block are dropped.
func Decimate(y []float64, factor int) ([]float64, error) {
	if factor < 1 || factor > len(y) {
		return nil, fmt.Errorf("%w: factor %d for %d samples", ErrDecimationFactor, factor, len(y))
	}
	out := make([]float64, len(y)/factor)
	for i := range out {
		sum := 0.0
		for k := 0; k < factor; k++ {
			sum += y[i*factor+k]
		}
		out[i] = sum / float64(factor)
	}
	return out, nil
}
