package lpv

import "fmt"

// Order is an LPV model order: autoregressive order NA, exogenous-input
// order NB and basis order PA. A negative NB selects an output-only LPV-AR
// model; NB = 0 keeps the zero-lag input term only.
type Order struct {
	NA int
	NB int
	PA int
}

// ARX reports whether the order includes an exogenous-input block.
func (o Order) ARX() bool { return o.NB >= 0 }

// blocks is the number of lag blocks in the lifted regression matrix.
func (o Order) blocks() int {
	if o.ARX() {
		return o.NA + o.NB + 1
	}
	return o.NA
}

func (o Order) validate(n int) error {
	if o.NA < 1 || o.PA < 1 {
		return fmt.Errorf("%w: na=%d pa=%d", ErrInvalidOrder, o.NA, o.PA)
	}
	if o.NA > n-1 {
		return fmt.Errorf("%w: na=%d needs at least %d samples, have %d",
			ErrInvalidOrder, o.NA, o.NA+1, n)
	}
	return nil
}

// Bundle is a signal bundle: the response Y, the scheduling variable Xi and,
// for ARX models, the exogenous input X. All series must share length and
// alignment; sample rate and units are caller-managed metadata.
type Bundle struct {
	Y  []float64
	X  []float64
	Xi []float64
}

func (b Bundle) validate(arx bool) error {
	n := len(b.Y)
	if n == 0 {
		return fmt.Errorf("%w: empty response", ErrDimensionMismatch)
	}
	if len(b.Xi) != n {
		return fmt.Errorf("%w: response has %d samples, scheduling variable %d",
			ErrDimensionMismatch, n, len(b.Xi))
	}
	if arx && len(b.X) != n {
		return fmt.Errorf("%w: response has %d samples, input %d",
			ErrDimensionMismatch, n, len(b.X))
	}
	return nil
}
