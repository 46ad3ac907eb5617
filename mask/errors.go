// SPDX-License-Identifier: MIT

package mask

import "errors"

var (
	// ErrEmptyMask indicates a mask with no positive pixel, so no box exists.
	ErrEmptyMask = errors.New("mask: no positive pixel")

	// ErrInvalidMargin indicates a negative or non-finite LooseBox margin.
	ErrInvalidMargin = errors.New("mask: invalid margin")
)
