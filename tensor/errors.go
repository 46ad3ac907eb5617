// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All functions in this package return these sentinels (optionally wrapped
// with call-site context via fmt.Errorf("...: %w", ErrX)); callers match them
// with errors.Is. Nothing in this package panics on user input.

package tensor

import "errors"

var (
	// ErrInvalidRank is returned when a shape has an unsupported rank, or when
	// an operation requires an HWC (rank-3) tensor and gets something else.
	ErrInvalidRank = errors.New("tensor: invalid rank")

	// ErrShapeMismatch indicates two tensors disagree on height/width where
	// pixel alignment requires them to match (image vs. label, image vs. flow).
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrBadShape is returned when a requested dimension is non-positive.
	ErrBadShape = errors.New("tensor: dimensions must be > 0")

	// ErrOutOfRange indicates a (row, col, channel) index outside the image.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilImage indicates a nil *Image argument.
	ErrNilImage = errors.New("tensor: nil image")

	// ErrDataLength indicates that a backing slice does not hold H*W*C values.
	ErrDataLength = errors.New("tensor: data length does not match shape")
)
