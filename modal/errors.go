package modal

import "errors"

var (
	// ErrEmptyGrid indicates an empty scheduling-variable grid.
	ErrEmptyGrid = errors.New("modal: scheduling grid must have at least one point")
	// ErrFrequencyCount indicates too few frequency-axis points.
	ErrFrequencyCount = errors.New("modal: frequency axis needs at least two points")
	// ErrSampleRate indicates a non-positive sampling rate.
	ErrSampleRate = errors.New("modal: sampling rate must be positive")
)
