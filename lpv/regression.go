package lpv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// buildRegression constructs the lifted regression matrix Φ and the target
// vector over the valid window τ = na..N-1. Each lagged sample is multiplied
// by each retained basis function: block i-1 (rows (i-1)p..ip-1) holds
// -y(τ-i)·G_j(ξ(τ-i)) for AR lag i, and for ARX orders block na+k holds
// x(τ-k)·G_j(ξ(τ-k)) for input lag k = 0..nb. The first na samples cannot
// form a complete lag window and are excluded from the target, not
// zero-padded into it.
func buildRegression(b Bundle, o Order, g *mat.Dense) (*mat.Dense, *mat.VecDense, error) {
	p, n := g.Dims()
	rows := o.blocks() * p
	cols := n - o.NA
	if cols < rows {
		return nil, nil, fmt.Errorf("%w: %d regressors but only %d valid samples",
			ErrInsufficientData, rows, cols)
	}

	phi := mat.NewDense(rows, cols, nil)
	for t := 0; t < cols; t++ {
		tau := o.NA + t
		for i := 1; i <= o.NA; i++ {
			for j := 0; j < p; j++ {
				phi.Set((i-1)*p+j, t, -b.Y[tau-i]*g.At(j, tau-i))
			}
		}
		if o.ARX() {
			for k := 0; k <= o.NB; k++ {
				for j := 0; j < p; j++ {
					phi.Set((o.NA+k)*p+j, t, b.X[tau-k]*g.At(j, tau-k))
				}
			}
		}
	}

	target := mat.NewVecDense(cols, nil)
	for t := 0; t < cols; t++ {
		target.SetVec(t, b.Y[o.NA+t])
	}
	return phi, target, nil
}
