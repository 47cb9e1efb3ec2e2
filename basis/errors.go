package basis

import "errors"

var (
	// ErrInvalidOrder indicates a basis order smaller than one.
	ErrInvalidOrder = errors.New("basis: order must be at least 1")
	// ErrMaskLength indicates a selection mask whose length differs from the order.
	ErrMaskLength = errors.New("basis: selection mask length must equal the basis order")
	// ErrEmptyMask indicates a selection mask that retains no basis function.
	ErrEmptyMask = errors.New("basis: selection mask must retain at least one basis function")
	// ErrUnknownFamily indicates a basis family outside the supported enumeration.
	ErrUnknownFamily = errors.New("basis: unknown basis family")
)
