package lpv

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Criteria is the goodness-of-fit record attached to a fitted model and
// recomputed by Simulate for held-out data.
type Criteria struct {
	// RSS is the residual sum of squares over the valid window.
	RSS float64
	// RSSSSS is RSS normalised by the target signal energy Σy_τ².
	RSSSSS float64
	// LogLik is the Gaussian log-likelihood of the residual.
	LogLik float64
	// BIC is log(N)·k − 2·LogLik where k counts the estimated coefficients
	// and N is the record length.
	BIC float64
	// Significance holds the per-coefficient χ² statistic a²/var(a) for the
	// AR block, shaped rows(basis) by NA. The statistic is raw: thresholding
	// against a χ²(1) quantile is caller policy. Nil when no coefficient
	// covariance is available.
	Significance *mat.Dense
}

func newCriteria(residual []float64, target *mat.VecDense, sigma2 float64, n int, o Order, p int, a, cov *mat.Dense) *Criteria {
	c := &Criteria{}
	for _, r := range residual {
		c.RSS += r * r
	}
	sss := 0.0
	for t := 0; t < target.Len(); t++ {
		v := target.AtVec(t)
		sss += v * v
	}
	if sss > 0 {
		c.RSSSSS = c.RSS / sss
	}

	if sigma2 > 0 {
		nw := float64(len(residual))
		c.LogLik = -0.5 * (nw*math.Log(2*math.Pi*sigma2) + c.RSS/sigma2)
	} else {
		// A numerically perfect fit: the Gaussian likelihood degenerates.
		c.LogLik = math.Inf(1)
	}
	k := float64(o.blocks() * p)
	c.BIC = math.Log(float64(n))*k - 2*c.LogLik

	if cov != nil {
		c.Significance = significance(a, cov, p)
	}
	return c
}

// significance maps the covariance diagonal of the AR block back into the
// basis-by-lag tensor layout.
func significance(a, cov *mat.Dense, p int) *mat.Dense {
	_, na := a.Dims()
	chi2 := mat.NewDense(p, na, nil)
	for i := 0; i < na; i++ {
		for j := 0; j < p; j++ {
			v := cov.At(i*p+j, i*p+j)
			if v > 0 {
				coef := a.At(j, i)
				chi2.Set(j, i, coef*coef/v)
			}
		}
	}
	return chi2
}
