package mask

import (
	"fmt"
	"math"

	"github.com/katalvlaran/segaug/tensor"
)

// Box is an axis-aligned rectangle in normalised [0,1] coordinates.
type Box struct {
	YMin, XMin, YMax, XMax float64
}

// String formats b as [ymin xmin ymax xmax].
func (b Box) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.YMin, b.XMin, b.YMax, b.XMax)
}

// TightBox returns the minimal rectangle enclosing every positive pixel of m.
// Row and column indices are divided by (H−1) and (W−1); a length-1 axis maps
// to 0.
//
// Errors:
//   - tensor.ErrNilImage / tensor.ErrBadShape from validation.
//   - tensor.ErrInvalidRank when m has more than one channel.
//   - ErrEmptyMask when no pixel is positive.
//
// Complexity: O(H*W).
func TightBox[T tensor.Number](m *tensor.Image[T]) (Box, error) {
	if err := tensor.ValidateImage(m); err != nil {
		return Box{}, fmt.Errorf("TightBox: %w", err)
	}
	if m.Channels() != 1 {
		return Box{}, fmt.Errorf("TightBox: %d channels, want 1: %w", m.Channels(), tensor.ErrInvalidRank)
	}

	h, w := m.Height(), m.Width()
	minR, minC, maxR, maxC := h, w, -1, -1
	data := m.Data()
	for r := 0; r < h; r++ {
		row := data[r*w : (r+1)*w]
		for c, v := range row {
			if v <= 0 {
				continue
			}
			minR, maxR = min(minR, r), max(maxR, r)
			minC, maxC = min(minC, c), max(maxC, c)
		}
	}
	if maxR < 0 {
		return Box{}, fmt.Errorf("TightBox: %w", ErrEmptyMask)
	}

	return Box{
		YMin: normalise(minR, h),
		XMin: normalise(minC, w),
		YMax: normalise(maxR, h),
		XMax: normalise(maxC, w),
	}, nil
}

// LooseBox returns TightBox(m) grown by margin on every side and clamped to
// [0,1]. The margin is relative to the image height/width.
func LooseBox[T tensor.Number](m *tensor.Image[T], margin float64) (Box, error) {
	if math.IsNaN(margin) || math.IsInf(margin, 0) || margin < 0 {
		return Box{}, fmt.Errorf("LooseBox: margin=%g: %w", margin, ErrInvalidMargin)
	}
	b, err := TightBox(m)
	if err != nil {
		return Box{}, fmt.Errorf("LooseBox: %w", err)
	}

	return Box{
		YMin: math.Max(b.YMin-margin, 0),
		XMin: math.Max(b.XMin-margin, 0),
		YMax: math.Min(b.YMax+margin, 1),
		XMax: math.Min(b.XMax+margin, 1),
	}, nil
}

func normalise(i, size int) float64 {
	if size == 1 {
		return 0
	}
	return float64(i) / float64(size-1)
}
