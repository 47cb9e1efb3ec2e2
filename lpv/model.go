package lpv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YX577/NS-time-series-modeling/basis"
)

// condMax is the Gram-matrix condition number beyond which the regression is
// reported as singular.
const condMax = 1e12

// Model is a fitted LPV-AR or LPV-ARX model. It is created by Fit and
// immutable afterwards; Simulate and the modal package consume it read-only.
type Model struct {
	Order Order
	Basis basis.Basis

	// A holds the AR coefficient tensor, shaped rows(basis) by NA: A[j,i]
	// weighs basis function j at lag i+1. B holds the exogenous tensor,
	// rows(basis) by NB+1, and is nil for output-only models.
	A *mat.Dense
	B *mat.Dense

	// Variance is the population variance of the one-step-ahead residual
	// over the valid window.
	Variance float64
	// Covariance is the OLS asymptotic coefficient covariance
	// σ̂²(ΦΦᵀ)⁻¹, ordered as the flattened coefficient vector.
	Covariance *mat.Dense
	// Cond is the condition number of the regression Gram matrix.
	Cond float64

	// Criteria holds the in-sample goodness-of-fit record.
	Criteria *Criteria
}

// Fit estimates an LPV-AR/ARX model of the given order from the signal
// bundle, expanding the autoregressive coefficients over the given basis of
// the scheduling variable. The lifted problem is solved by minimum-norm
// ordinary least squares.
func Fit(b Bundle, o Order, bas basis.Basis) (*Model, error) {
	if err := b.validate(o.ARX()); err != nil {
		return nil, err
	}
	n := len(b.Y)
	if err := o.validate(n); err != nil {
		return nil, err
	}
	if bas.Order != o.PA {
		return nil, fmt.Errorf("%w: basis order %d does not match pa=%d",
			ErrInvalidOrder, bas.Order, o.PA)
	}

	g, err := bas.Eval(b.Xi)
	if err != nil {
		return nil, err
	}
	phi, target, err := buildRegression(b, o, g)
	if err != nil {
		return nil, err
	}

	// Solve y_τ = Θ Φ for the coefficient row vector Θ. Transposed this is
	// the overdetermined system Φᵀ Θᵀ = y_τ, solved through QR.
	var theta mat.VecDense
	if err := theta.SolveVec(phi.T(), target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularRegression, err)
	}

	residual := oneStepResidual(phi, target, &theta)
	sigma2 := popVariance(residual)

	cov, cond, err := coefficientCovariance(phi, sigma2)
	if err != nil {
		return nil, err
	}

	p, _ := g.Dims()
	m := &Model{
		Order:      o,
		Basis:      bas,
		A:          reshapeBlock(&theta, 0, p, o.NA),
		Variance:   sigma2,
		Covariance: cov,
		Cond:       cond,
	}
	if o.ARX() {
		m.B = reshapeBlock(&theta, o.NA*p, p, o.NB+1)
	}
	m.Criteria = newCriteria(residual, target, sigma2, n, o, p, m.A, cov)
	return m, nil
}

// Simulate reconstructs the one-step-ahead predicted output for new data
// using the fitted coefficients and recomputes the fit criteria against it.
// The basis matrix is rebuilt from the model's stored basis specification
// applied to the new scheduling variable. No coefficients change; this is
// out-of-sample validation, not re-estimation. The returned prediction
// covers the valid window only, length N-na: callers must align indices.
func (m *Model) Simulate(b Bundle) ([]float64, *Criteria, error) {
	if err := b.validate(m.Order.ARX()); err != nil {
		return nil, nil, err
	}
	n := len(b.Y)
	if err := m.Order.validate(n); err != nil {
		return nil, nil, err
	}

	g, err := m.Basis.Eval(b.Xi)
	if err != nil {
		return nil, nil, err
	}
	phi, target, err := buildRegression(b, m.Order, g)
	if err != nil {
		return nil, nil, err
	}

	theta := m.flatCoefficients()
	var pred mat.VecDense
	pred.MulVec(phi.T(), theta)

	residual := make([]float64, target.Len())
	for t := range residual {
		residual[t] = target.AtVec(t) - pred.AtVec(t)
	}
	sigma2 := popVariance(residual)

	p, _ := g.Dims()
	crit := newCriteria(residual, target, sigma2, n, m.Order, p, m.A, m.Covariance)

	out := make([]float64, pred.Len())
	copy(out, pred.RawVector().Data)
	return out, crit, nil
}

// flatCoefficients restores the coefficient row vector Θ in regression
// order: AR blocks by lag, then input blocks.
func (m *Model) flatCoefficients() *mat.VecDense {
	p, na := m.A.Dims()
	size := p * na
	nb1 := 0
	if m.B != nil {
		_, nb1 = m.B.Dims()
		size += p * nb1
	}
	theta := mat.NewVecDense(size, nil)
	for i := 0; i < na; i++ {
		for j := 0; j < p; j++ {
			theta.SetVec(i*p+j, m.A.At(j, i))
		}
	}
	for k := 0; k < nb1; k++ {
		for j := 0; j < p; j++ {
			theta.SetVec(na*p+k*p+j, m.B.At(j, k))
		}
	}
	return theta
}

// reshapeBlock lifts a contiguous run of the flat coefficient vector into a
// p by lags tensor, basis index down the rows.
func reshapeBlock(theta *mat.VecDense, offset, p, lags int) *mat.Dense {
	block := mat.NewDense(p, lags, nil)
	for i := 0; i < lags; i++ {
		for j := 0; j < p; j++ {
			block.Set(j, i, theta.AtVec(offset+i*p+j))
		}
	}
	return block
}

func oneStepResidual(phi *mat.Dense, target, theta *mat.VecDense) []float64 {
	var pred mat.VecDense
	pred.MulVec(phi.T(), theta)
	residual := make([]float64, target.Len())
	for t := range residual {
		residual[t] = target.AtVec(t) - pred.AtVec(t)
	}
	return residual
}

// coefficientCovariance computes σ̂²(ΦΦᵀ)⁻¹ together with the Gram-matrix
// condition number used as the singularity diagnostic.
func coefficientCovariance(phi *mat.Dense, sigma2 float64) (*mat.Dense, float64, error) {
	rows, _ := phi.Dims()
	gram := mat.NewDense(rows, rows, nil)
	gram.Mul(phi, phi.T())

	cond := mat.Cond(gram, 2)
	if cond > condMax {
		return nil, cond, fmt.Errorf("%w: condition number %.3g", ErrSingularRegression, cond)
	}

	var inv mat.Dense
	if err := inv.Inverse(gram); err != nil {
		return nil, cond, fmt.Errorf("%w: condition number %.3g: %v", ErrSingularRegression, cond, err)
	}
	inv.Scale(sigma2, &inv)
	return &inv, cond, nil
}

// popVariance is the population variance about the mean, the convention used
// for the residual throughout this package. No degrees-of-freedom correction
// is applied for the estimated parameters; covariance and BIC follow the
// same convention.
func popVariance(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.PopVariance(x, nil)
}
