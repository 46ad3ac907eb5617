package tensor

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of sample types an Image can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// imageErrorf wraps an underlying error with Image method context.
func imageErrorf(method string, row, col, ch int, err error) error {
	return fmt.Errorf("Image.%s(%d,%d,%d): %w", method, row, col, ch, err)
}

// Image is a row-major HWC tensor of T values.
// h, w, c are height, width and channels; data holds h*w*c samples.
type Image[T Number] struct {
	h, w, c int
	data    []T
}

// New creates an h×w×c Image initialized to zero.
// Complexity: O(h*w*c) time and memory.
func New[T Number](h, w, c int) (*Image[T], error) {
	if h <= 0 || w <= 0 || c <= 0 {
		return nil, fmt.Errorf("New(%d,%d,%d): %w", h, w, c, ErrBadShape)
	}

	return &Image[T]{h: h, w: w, c: c, data: make([]T, h*w*c)}, nil
}

// Full creates an h×w×c Image with every sample set to v.
func Full[T Number](h, w, c int, v T) (*Image[T], error) {
	img, err := New[T](h, w, c)
	if err != nil {
		return nil, err
	}
	for i := range img.data {
		img.data[i] = v
	}

	return img, nil
}

// FromSlice wraps a copy of data (row-major HWC) as an h×w×c Image.
// Stage 1 (Validate): positive dims, len(data) == h*w*c.
// Stage 2 (Execute): copy data so the caller keeps ownership of its slice.
func FromSlice[T Number](h, w, c int, data []T) (*Image[T], error) {
	if h <= 0 || w <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromSlice(%d,%d,%d): %w", h, w, c, ErrBadShape)
	}
	if len(data) != h*w*c {
		return nil, fmt.Errorf("FromSlice(%d,%d,%d): got %d values: %w", h, w, c, len(data), ErrDataLength)
	}
	owned := make([]T, len(data))
	copy(owned, data)

	return &Image[T]{h: h, w: w, c: c, data: owned}, nil
}

// FromShape wraps a copy of data under an HW (rank 2, one channel implied)
// or HWC (rank 3) shape. Any other rank, including batched BHWC, fails with
// ErrInvalidRank before data is inspected.
func FromShape[T Number](s Shape, data []T) (*Image[T], error) {
	switch len(s) {
	case 2:
		return FromSlice(s[0], s[1], 1, data)
	case 3:
		return FromSlice(s[0], s[1], s[2], data)
	default:
		return nil, fmt.Errorf("FromShape: rank %d (want HW or HWC): %w", len(s), ErrInvalidRank)
	}
}

// Height returns the number of rows.
func (m *Image[T]) Height() int { return m.h }

// Width returns the number of columns.
func (m *Image[T]) Width() int { return m.w }

// Channels returns the number of channels.
func (m *Image[T]) Channels() int { return m.c }

// Shape returns the HWC shape as a fresh rank-3 Shape.
func (m *Image[T]) Shape() Shape { return Shape{m.h, m.w, m.c} }

// Len returns h*w*c.
func (m *Image[T]) Len() int { return len(m.data) }

// Data returns the backing slice. Callers must treat it as read-only.
func (m *Image[T]) Data() []T { return m.data }

// offset computes the flat index for (row, col, ch) without bounds checks.
func (m *Image[T]) offset(row, col, ch int) int {
	return (row*m.w+col)*m.c + ch
}

// Contains reports whether (row, col, ch) is inside the image.
func (m *Image[T]) Contains(row, col, ch int) bool {
	return row >= 0 && row < m.h && col >= 0 && col < m.w && ch >= 0 && ch < m.c
}

// At returns the sample at (row, col, ch) or ErrOutOfRange.
func (m *Image[T]) At(row, col, ch int) (T, error) {
	if !m.Contains(row, col, ch) {
		var zero T
		return zero, imageErrorf("At", row, col, ch, ErrOutOfRange)
	}

	return m.data[m.offset(row, col, ch)], nil
}

// Set assigns v at (row, col, ch) or returns ErrOutOfRange.
// Set is meant for building fresh images; operations never call it on inputs.
func (m *Image[T]) Set(row, col, ch int, v T) error {
	if !m.Contains(row, col, ch) {
		return imageErrorf("Set", row, col, ch, ErrOutOfRange)
	}
	m.data[m.offset(row, col, ch)] = v

	return nil
}

// Clone returns a deep copy.
func (m *Image[T]) Clone() *Image[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Image[T]{h: m.h, w: m.w, c: m.c, data: data}
}

// Equal reports whether o has the same shape and bit-identical samples.
// For float types NaN != NaN, as with ==.
func (m *Image[T]) Equal(o *Image[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.h != o.h || m.w != o.w || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// IsFinite reports whether no sample is NaN or ±Inf. Integer images are
// always finite.
func (m *Image[T]) IsFinite() bool {
	for _, v := range m.data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// Convert returns a copy of src with every sample converted to U.
// Conversion follows Go's numeric conversion rules (truncation toward zero
// for float→integer).
func Convert[U, T Number](src *Image[T]) *Image[U] {
	data := make([]U, len(src.data))
	for i, v := range src.data {
		data[i] = U(v)
	}

	return &Image[U]{h: src.h, w: src.w, c: src.c, data: data}
}

// String implements fmt.Stringer with a short shape/type summary.
func (m *Image[T]) String() string {
	var zero T
	return fmt.Sprintf("Image[%T](%dx%dx%d)", zero, m.h, m.w, m.c)
}
