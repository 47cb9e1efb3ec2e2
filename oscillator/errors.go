package oscillator

import "errors"

var (
	// ErrSampleCount indicates a non-positive number of requested samples.
	ErrSampleCount = errors.New("oscillator: sample count must be positive")
	// ErrSampleRate indicates a non-positive sampling rate.
	ErrSampleRate = errors.New("oscillator: sampling rate must be positive")
	// ErrSubsteps indicates a non-positive number of integrator substeps.
	ErrSubsteps = errors.New("oscillator: substeps per sample must be positive")
	// ErrNoForcing indicates a Duffing system simulated without a forcing signal.
	ErrNoForcing = errors.New("oscillator: forcing signal not set")
	// ErrDecimationFactor indicates a decimation factor below one or larger
	// than the input.
	ErrDecimationFactor = errors.New("oscillator: invalid decimation factor")
)
