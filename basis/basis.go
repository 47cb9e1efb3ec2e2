// Package basis evaluates functional bases of a measured scheduling
// variable. A basis of order p maps a scheduling sequence ξ(1)...ξ(N) to a
// p by N matrix G whose first row is identically one, so that a
// parameter-varying coefficient a(ξ) can be written as a finite expansion
//
//	a(ξ) = Σ_j θ_j G_j(ξ)
//
// over fixed functions G_j. Two families are provided: physicists' Hermite
// polynomials and a trigonometric (Fourier) family. An optional selection
// mask drops individual basis functions so that downstream estimators only
// carry the retained rows.
package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Family enumerates the supported basis families.
type Family int

const (
	// Hermite selects the physicists' Hermite polynomials H_j, generated by
	// the recurrence H_j(ξ) = 2ξ H_{j-1}(ξ) - 2(j-1) H_{j-2}(ξ).
	Hermite Family = iota
	// Fourier selects the trigonometric family 1, sin(ξ), cos(ξ), sin(2ξ),
	// cos(2ξ), ... Harmonics come in sin/cos pairs, so an even order leaves
	// the final row at the constant value 1 (DC padding). Callers wanting
	// symmetric harmonic coverage should use an odd order.
	Fourier
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Hermite:
		return "hermite"
	case Fourier:
		return "fourier"
	}
	return "unknown"
}

// Basis describes a functional basis of the scheduling variable: a family,
// an order p and an optional selection mask. The zero mask means all p
// functions are retained.
type Basis struct {
	Family Family
	Order  int
	Mask   []bool
}

// New returns a basis of the given family and order with all functions
// retained.
func New(family Family, order int) (Basis, error) {
	if order < 1 {
		return Basis{}, ErrInvalidOrder
	}
	if family != Hermite && family != Fourier {
		return Basis{}, ErrUnknownFamily
	}
	return Basis{Family: family, Order: order}, nil
}

// WithMask returns a copy of b retaining only the functions whose mask entry
// is true. The mask must have exactly Order entries and at least one true
// entry.
func (b Basis) WithMask(mask []bool) (Basis, error) {
	if len(mask) != b.Order {
		return Basis{}, ErrMaskLength
	}
	retained := 0
	for _, keep := range mask {
		if keep {
			retained++
		}
	}
	if retained == 0 {
		return Basis{}, ErrEmptyMask
	}
	m := make([]bool, len(mask))
	copy(m, mask)
	b.Mask = m
	return b, nil
}

// Rows returns the number of retained basis functions, i.e. the row count of
// the matrices produced by Eval.
func (b Basis) Rows() int {
	if b.Mask == nil {
		return b.Order
	}
	rows := 0
	for _, keep := range b.Mask {
		if keep {
			rows++
		}
	}
	return rows
}

// Eval evaluates the basis over the scheduling sequence xi and returns the
// retained-rows by len(xi) basis matrix. Row 0 of the unmasked matrix is the
// constant sequence of ones for every family.
func (b Basis) Eval(xi []float64) (*mat.Dense, error) {
	full, err := b.evalFull(xi)
	if err != nil {
		return nil, err
	}
	if b.Mask == nil {
		return full, nil
	}
	rows := b.Rows()
	if rows == 0 {
		return nil, ErrEmptyMask
	}
	g := mat.NewDense(rows, len(xi), nil)
	row := 0
	for j, keep := range b.Mask {
		if !keep {
			continue
		}
		g.SetRow(row, full.RawRowView(j))
		row++
	}
	return g, nil
}

// EvalAt evaluates the retained basis functions at a single scheduling value.
func (b Basis) EvalAt(x float64) ([]float64, error) {
	g, err := b.Eval([]float64{x})
	if err != nil {
		return nil, err
	}
	rows, _ := g.Dims()
	out := make([]float64, rows)
	for j := range out {
		out[j] = g.At(j, 0)
	}
	return out, nil
}

func (b Basis) evalFull(xi []float64) (*mat.Dense, error) {
	if b.Order < 1 {
		return nil, ErrInvalidOrder
	}
	if b.Mask != nil && len(b.Mask) != b.Order {
		return nil, ErrMaskLength
	}
	n := len(xi)
	g := mat.NewDense(b.Order, n, nil)
	for t := 0; t < n; t++ {
		g.Set(0, t, 1)
	}
	switch b.Family {
	case Hermite:
		if b.Order > 1 {
			for t, x := range xi {
				g.Set(1, t, 2*x)
			}
		}
		for j := 2; j < b.Order; j++ {
			for t, x := range xi {
				g.Set(j, t, 2*x*g.At(j-1, t)-2*float64(j-1)*g.At(j-2, t))
			}
		}
	case Fourier:
		// Harmonic pairs sin(jξ), cos(jξ). With an even order the last row
		// has no partner and stays at 1; see the Fourier doc comment.
		for j := 1; 2*j < b.Order; j++ {
			for t, x := range xi {
				g.Set(2*j-1, t, math.Sin(float64(j)*x))
				g.Set(2*j, t, math.Cos(float64(j)*x))
			}
		}
		if b.Order%2 == 0 && b.Order > 1 {
			for t := 0; t < n; t++ {
				g.Set(b.Order-1, t, 1)
			}
		}
	default:
		return nil, ErrUnknownFamily
	}
	return g, nil
}
