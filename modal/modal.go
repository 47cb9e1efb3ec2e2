// Package modal derives the frozen-coefficient dynamics of a fitted LPV-AR
// model as a function of the scheduling variable. For each point of a
// scheduling grid it evaluates the instantaneous AR characteristic
// polynomial 1 + Σ a_i z^{-i}, extracts natural frequencies and damping
// ratios from its roots, and accumulates an AR power-spectral-density
// surface.
package modal

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/YX577/NS-time-series-modeling/lpv"
)

// Map is the dynamics map of a model over a scheduling grid. Columns index
// the grid, rows the frequency axis (PSD) or the mode number (Omega, Zeta).
type Map struct {
	// Grid holds the scheduling-variable values the map was evaluated at.
	Grid []float64
	// Freqs is the frequency axis in Hz, nfreq points from 0 to fs/2.
	Freqs []float64
	// PSD is the power-spectral-density surface, len(Freqs) by len(Grid):
	// σ̂²·Ts / |A(e^{-jωTs})|² of the frozen AR polynomial at each grid point.
	PSD *mat.Dense
	// Omega holds the natural frequencies in rad/s, NA by len(Grid), sorted
	// ascending within each column. Every root gets its own row so the map
	// stays rectangular: positive real (overdamped) roots carry ζ = 1,
	// negative real roots alternate sign at the Nyquist rate and are
	// reported as oscillatory modes.
	Omega *mat.Dense
	// Zeta holds the damping ratios, NA by len(Grid).
	Zeta *mat.Dense
}

// Analyze sweeps the scheduling grid and evaluates the frozen dynamics of
// the fitted model at the sampling rate fs. The AR polynomial of ARX models
// is analyzed; the exogenous block does not move the poles. Grid points are
// independent and processed concurrently.
func Analyze(m *lpv.Model, grid []float64, fs float64, nfreq int) (*Map, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	if nfreq < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrFrequencyCount, nfreq)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrSampleRate, fs)
	}

	na := m.Order.NA
	cols := len(grid)
	out := &Map{
		Grid:  append([]float64(nil), grid...),
		Freqs: make([]float64, nfreq),
		PSD:   mat.NewDense(nfreq, cols, nil),
		Omega: mat.NewDense(na, cols, nil),
		Zeta:  mat.NewDense(na, cols, nil),
	}
	for k := range out.Freqs {
		out.Freqs[k] = float64(k) / float64(nfreq-1) * fs / 2
	}

	// Basis evaluation can fail (mask bookkeeping); do it up front so the
	// concurrent sweep below is error-free.
	coeffs := make([][]float64, cols)
	for c, xi := range grid {
		g, err := m.Basis.EvalAt(xi)
		if err != nil {
			return nil, err
		}
		coeffs[c] = frozenAR(m.A, g, na)
	}

	var wg sync.WaitGroup
	wg.Add(cols)
	for c := 0; c < cols; c++ {
		go func(c int) {
			defer wg.Done()
			a := coeffs[c]
			omega, zeta := modes(a, fs)
			for i := 0; i < na; i++ {
				out.Omega.Set(i, c, omega[i])
				out.Zeta.Set(i, c, zeta[i])
			}
			for k, f := range out.Freqs {
				out.PSD.Set(k, c, psd(a, f, fs, m.Variance))
			}
		}(c)
	}
	wg.Wait()
	return out, nil
}

// frozenAR collapses the coefficient tensor at one scheduling value:
// a_i = Σ_j g_j A[j,i].
func frozenAR(a *mat.Dense, g []float64, na int) []float64 {
	p, _ := a.Dims()
	out := make([]float64, na)
	for i := 0; i < na; i++ {
		for j := 0; j < p; j++ {
			out[i] += g[j] * a.At(j, i)
		}
	}
	return out
}

// modes finds the roots of z^na + a_1 z^{na-1} + ... + a_na as the
// eigenvalues of the companion matrix and maps each discrete pole z to a
// continuous one s = fs·ln(z), giving ω_n = |s| and ζ = -Re(s)/|s|. Stable
// positive real roots map onto ζ = 1; negative real roots pick up the π
// imaginary part of the log and come out as modes oscillating at the
// Nyquist rate. Modes are sorted by ascending ω_n.
func modes(a []float64, fs float64) (omega, zeta []float64) {
	na := len(a)
	comp := mat.NewDense(na, na, nil)
	for i, ai := range a {
		comp.Set(0, i, -ai)
	}
	for i := 1; i < na; i++ {
		comp.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(comp, mat.EigenNone); !ok {
		// The companion matrix is well formed; a failed factorization means
		// the coefficients themselves are degenerate. Report dead modes.
		return make([]float64, na), onesSlice(na)
	}
	roots := eig.Values(nil)

	ms := make([]mode, 0, na)
	for _, root := range roots {
		ms = append(ms, poleToMode(root, fs))
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].w < ms[j].w })

	omega = make([]float64, na)
	zeta = make([]float64, na)
	for i, md := range ms {
		omega[i] = md.w
		zeta[i] = md.z
	}
	return omega, zeta
}

// mode is one pole mapped to continuous time: natural frequency w in rad/s
// and damping ratio z.
type mode struct{ w, z float64 }

func poleToMode(pole complex128, fs float64) mode {
	if pole == 0 {
		// A pole at the origin is a pure delay; report it as a dead,
		// critically damped mode.
		return mode{0, 1}
	}
	s := cmplx.Log(pole) * complex(fs, 0)
	w := cmplx.Abs(s)
	if w == 0 {
		return mode{0, 1}
	}
	return mode{w, -real(s) / w}
}

// psd evaluates σ̂²·Ts / |A(e^{-jωTs})|² at frequency f in Hz.
func psd(a []float64, f, fs, sigma2 float64) float64 {
	wd := 2 * math.Pi * f / fs
	acc := complex(1, 0)
	for i, ai := range a {
		acc += complex(ai, 0) * cmplx.Exp(complex(0, -wd*float64(i+1)))
	}
	den := cmplx.Abs(acc)
	return sigma2 / fs / (den * den)
}

func onesSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
