// SPDX-License-Identifier: MIT

package segaug

import "errors"

var (
	// ErrInvalidRange indicates a non-finite bound, min > max, or a flip rate
	// outside [0, 1].
	ErrInvalidRange = errors.New("segaug: invalid parameter range")

	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("segaug: nil random source")
)
