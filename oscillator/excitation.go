package oscillator

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Excitation is a scalar forcing signal u(t).
type Excitation func(t float64) float64

// GaussianSequence draws n independent N(0, σ²) samples. The same seed
// reproduces the same sequence.
func GaussianSequence(n int, sigma float64, seed uint64) []float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed),
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Hold turns a sequence sampled at rate fs into a zero-order-hold forcing
// signal: u(t) keeps the value of the most recent sample. Times outside the
// record clamp to its ends.
func Hold(u []float64, fs float64) Excitation {
	return func(t float64) float64 {
		i := int(t * fs)
		if i < 0 {
			i = 0
		}
		if i >= len(u) {
			i = len(u) - 1
		}
		return u[i]
	}
}
