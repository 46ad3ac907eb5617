package elastic

import "errors"

var (
	// ErrInvalidSigma indicates a non-positive or non-finite smoothing sigma.
	ErrInvalidSigma = errors.New("elastic: sigma must be finite and > 0")

	// ErrInvalidIntensity indicates a negative or non-finite deformation intensity.
	ErrInvalidIntensity = errors.New("elastic: intensity must be finite and >= 0")

	// ErrNonFiniteFlow indicates a flow field holding NaN or ±Inf displacements.
	ErrNonFiniteFlow = errors.New("elastic: flow contains NaN or Inf")

	// ErrNilFlow indicates a nil *Flow argument.
	ErrNilFlow = errors.New("elastic: nil flow")
)
