package lpv

import "errors"

var (
	// ErrInvalidOrder indicates non-positive or mutually inconsistent order
	// parameters.
	ErrInvalidOrder = errors.New("lpv: invalid model order")
	// ErrInsufficientData indicates too few samples for the requested order
	// and basis size.
	ErrInsufficientData = errors.New("lpv: insufficient data for model order")
	// ErrSingularRegression indicates a regression Gram matrix that is not
	// invertible within numerical tolerance.
	ErrSingularRegression = errors.New("lpv: singular regression matrix")
	// ErrDimensionMismatch indicates signal bundle series of unequal length.
	ErrDimensionMismatch = errors.New("lpv: signal lengths disagree")
)
