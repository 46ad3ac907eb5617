// SPDX-License-Identifier: MIT
// Package affine: sentinel error set.
// Every message is prefixed with "affine: ..." for easy grepping. Call sites
// add context with fmt.Errorf("Op: ...: %w", ErrX); callers use errors.Is.

package affine

import "errors"

var (
	// ErrSingularMatrix is returned when a transform matrix has a determinant
	// within SingularEpsilon of zero (e.g. a zero zoom factor). Retrying with
	// the same parameters reproduces it; the caller must redraw.
	ErrSingularMatrix = errors.New("affine: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf matrix entry or transform parameter.
	ErrNaNInf = errors.New("affine: NaN or Inf encountered")

	// ErrPairLength indicates a CoordinatePair whose Source and Destination
	// lists differ in length.
	ErrPairLength = errors.New("affine: source/destination length mismatch")
)
