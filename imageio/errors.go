// SPDX-License-Identifier: MIT

package imageio

import "errors"

var (
	// ErrUnsupportedChannels indicates a tensor whose channel count has no
	// image.Image counterpart (only 1, 3 and 4 are encodable).
	ErrUnsupportedChannels = errors.New("imageio: unsupported channel count")

	// ErrUnsupportedFormat indicates an unknown file extension or format name.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrPrecisionLoss indicates a 16-bit source read through an 8-bit
	// decoder. Use Decode16/Load16, or FromImage to truncate on purpose.
	ErrPrecisionLoss = errors.New("imageio: 16-bit source needs a 16-bit decoder")
)
