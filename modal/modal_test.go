package modal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YX577/NS-time-series-modeling/basis"
	"github.com/YX577/NS-time-series-modeling/lpv"
)

// ar2FromMode builds the fixed AR(2) coefficients whose discrete poles are
// the images of the continuous pair s = -ζω ± jω√(1-ζ²).
func ar2FromMode(omega, zeta, fs float64) (a1, a2 float64) {
	ts := 1 / fs
	wd := omega * math.Sqrt(1-zeta*zeta)
	r := math.Exp(-zeta * omega * ts)
	a1 = -2 * r * math.Cos(wd*ts)
	a2 = r * r
	return a1, a2
}

// fixedModel wraps fixed AR coefficients in a model whose basis mask retains
// only the constant function, making the dynamics scheduling-independent.
func fixedModel(t *testing.T, a []float64) *lpv.Model {
	t.Helper()
	full, err := basis.New(basis.Hermite, 3)
	require.NoError(t, err)
	masked, err := full.WithMask([]bool{true, false, false})
	require.NoError(t, err)
	return &lpv.Model{
		Order:    lpv.Order{NA: len(a), NB: -1, PA: 3},
		Basis:    masked,
		A:        mat.NewDense(1, len(a), a),
		Variance: 1,
	}
}

// With only the constant basis function retained the model is linear
// time-invariant: the modal trajectories must be flat across the scheduling
// grid and match the closed-form frequency and damping of the equivalent
// fixed-coefficient AR(2) polynomial.
func TestLTISpecialCase(t *testing.T) {
	fs := 100.0
	omega := 2 * math.Pi * 5
	zeta := 0.1
	a1, a2 := ar2FromMode(omega, zeta, fs)
	m := fixedModel(t, []float64{a1, a2})

	grid := []float64{-2, -0.5, 0, 1, 3.7}
	dyn, err := Analyze(m, grid, fs, 64)
	require.NoError(t, err)

	for c := range grid {
		for i := 0; i < 2; i++ {
			assert.InDelta(t, omega, dyn.Omega.At(i, c), 1e-8, "grid point %d", c)
			assert.InDelta(t, zeta, dyn.Zeta.At(i, c), 1e-8, "grid point %d", c)
		}
	}
}

// Real roots are overdamped modes: ζ reported as 1 and ω_n = fs·|ln r|.
func TestOverdampedRoots(t *testing.T) {
	fs := 50.0
	r1, r2 := 0.5, 0.9
	// (z-r1)(z-r2) = z² - (r1+r2)z + r1·r2
	m := fixedModel(t, []float64{-(r1 + r2), r1 * r2})

	dyn, err := Analyze(m, []float64{0}, fs, 16)
	require.NoError(t, err)

	// Sorted ascending: the slower pole (r2 closer to 1) comes first.
	assert.InDelta(t, fs*math.Abs(math.Log(r2)), dyn.Omega.At(0, 0), 1e-9)
	assert.InDelta(t, fs*math.Abs(math.Log(r1)), dyn.Omega.At(1, 0), 1e-9)
	assert.InDelta(t, 1.0, dyn.Zeta.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, dyn.Zeta.At(1, 0), 1e-12)
}

// A negative real root alternates sign every sample; its continuous image
// s = fs·(ln|r| + iπ) is reported as an oscillatory mode, not forced to
// ζ = 1 like a positive real root.
func TestNegativeRealRootIsNyquistMode(t *testing.T) {
	fs := 50.0
	r1, r2 := -0.5, 0.8
	// (z-r1)(z-r2) = z² - (r1+r2)z + r1·r2
	m := fixedModel(t, []float64{-(r1 + r2), r1 * r2})

	dyn, err := Analyze(m, []float64{0}, fs, 16)
	require.NoError(t, err)

	// Positive root first: its ω is the smaller of the two.
	assert.InDelta(t, fs*math.Abs(math.Log(r2)), dyn.Omega.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0, dyn.Zeta.At(0, 0), 1e-12)

	logR := math.Log(-r1)
	wantOmega := fs * math.Hypot(logR, math.Pi)
	assert.InDelta(t, wantOmega, dyn.Omega.At(1, 0), 1e-9)
	assert.InDelta(t, -fs*logR/wantOmega, dyn.Zeta.At(1, 0), 1e-9)
	assert.Less(t, dyn.Zeta.At(1, 0), 1.0)
}

func TestPSDPeaksAtResonance(t *testing.T) {
	fs := 100.0
	omega := 2 * math.Pi * 10
	a1, a2 := ar2FromMode(omega, 0.05, fs)
	m := fixedModel(t, []float64{a1, a2})

	nfreq := 256
	dyn, err := Analyze(m, []float64{0}, fs, nfreq)
	require.NoError(t, err)

	peak := 0
	for k := 1; k < nfreq; k++ {
		if dyn.PSD.At(k, 0) > dyn.PSD.At(peak, 0) {
			peak = k
		}
	}
	assert.InDelta(t, 10.0, dyn.Freqs[peak], 0.5, "resonance location")
}

func TestMapShapes(t *testing.T) {
	m := fixedModel(t, []float64{-0.5, 0.2, -0.1})
	grid := []float64{0, 1, 2, 3}
	dyn, err := Analyze(m, grid, 10, 32)
	require.NoError(t, err)

	fr, fc := dyn.PSD.Dims()
	assert.Equal(t, 32, fr)
	assert.Equal(t, len(grid), fc)
	or, oc := dyn.Omega.Dims()
	assert.Equal(t, 3, or)
	assert.Equal(t, len(grid), oc)
	zr, zc := dyn.Zeta.Dims()
	assert.Equal(t, 3, zr)
	assert.Equal(t, len(grid), zc)
	assert.Equal(t, 0.0, dyn.Freqs[0])
	assert.InDelta(t, 5.0, dyn.Freqs[31], 1e-12)
}

func TestAnalyzeArguments(t *testing.T) {
	m := fixedModel(t, []float64{-0.5})

	_, err := Analyze(m, nil, 10, 16)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Analyze(m, []float64{0}, 10, 1)
	assert.ErrorIs(t, err, ErrFrequencyCount)

	_, err = Analyze(m, []float64{0}, 0, 16)
	assert.ErrorIs(t, err, ErrSampleRate)
}
