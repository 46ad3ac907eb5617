package elastic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/segaug/tensor"
)

// Source supplies uniform samples in [0,1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Flow is an h×w field of (Δrow, Δcol) displacements, stored interleaved in
// row-major order: data[(r*w+c)*2] = Δrow, data[(r*w+c)*2+1] = Δcol.
type Flow struct {
	h, w int
	data []float64
}

// ZeroFlow returns an h×w field of zero displacements.
func ZeroFlow(h, w int) (*Flow, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("ZeroFlow(%d,%d): %w", h, w, tensor.ErrBadShape)
	}

	return &Flow{h: h, w: w, data: make([]float64, h*w*2)}, nil
}

// FlowFromSlice wraps a copy of interleaved (Δrow, Δcol) data.
func FlowFromSlice(h, w int, data []float64) (*Flow, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("FlowFromSlice(%d,%d): %w", h, w, tensor.ErrBadShape)
	}
	if len(data) != h*w*2 {
		return nil, fmt.Errorf("FlowFromSlice(%d,%d): got %d values: %w", h, w, len(data), tensor.ErrDataLength)
	}
	owned := make([]float64, len(data))
	copy(owned, data)

	return &Flow{h: h, w: w, data: owned}, nil
}

// Height returns the number of rows.
func (f *Flow) Height() int { return f.h }

// Width returns the number of columns.
func (f *Flow) Width() int { return f.w }

// Data returns the interleaved backing slice. Treat it as read-only.
func (f *Flow) Data() []float64 { return f.data }

// At returns the displacement at (r, c). Indices are not bounds-checked
// beyond the slice access itself.
func (f *Flow) At(r, c int) (dr, dc float64) {
	i := (r*f.w + c) * 2
	return f.data[i], f.data[i+1]
}

// MaxAbs returns the largest absolute displacement component.
func (f *Flow) MaxAbs() float64 {
	var m float64
	for _, v := range f.data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

// IsFinite reports whether every displacement is finite.
func (f *Flow) IsFinite() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// RandomFlow draws a smooth random h×w displacement field.
// Blueprint:
//
//	Stage 1 (Validate): h, w > 0; sigma finite > 0; intensity finite ≥ 0.
//	Stage 2 (Noise): two h×w planes of uniform samples in [-1,1], drawn
//	  Δrow then Δcol for each pixel in row-major order.
//	Stage 3 (Smooth): separable normalised Gaussian per plane, reflect padding.
//	  The window is capped at MaxKernelSize(h, w).
//	Stage 4 (Scale): multiply by intensity and clamp to [-intensity, intensity].
//
// The result depends only on rng: the same seeded source gives the same field.
//
// Complexity: O(h*w*k) time with k ≤ 2·max(h,w)+1 the kernel length, O(h*w) memory.
func RandomFlow(rng Source, h, w int, sigma, intensity float64, opts ...Option) (*Flow, error) {
	// Stage 1: Validate
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("RandomFlow(%d,%d): %w", h, w, tensor.ErrBadShape)
	}
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity < 0 {
		return nil, fmt.Errorf("RandomFlow: intensity=%g: %w", intensity, ErrInvalidIntensity)
	}
	o := gatherOptions(sigma, h, w, opts...)
	kernel, err := GaussianKernel(sigma, o.kernelSize)
	if err != nil {
		return nil, fmt.Errorf("RandomFlow: %w", err)
	}

	// Stage 2: Noise
	n := h * w
	dr := make([]float64, n)
	dc := make([]float64, n)
	for i := 0; i < n; i++ {
		dr[i] = 2*rng.Float64() - 1
		dc[i] = 2*rng.Float64() - 1
	}

	// Stage 3: Smooth
	dr = convolveSeparable(dr, h, w, kernel)
	dc = convolveSeparable(dc, h, w, kernel)

	// Stage 4: Scale
	data := make([]float64, n*2)
	for i := 0; i < n; i++ {
		data[2*i] = clamp(dr[i]*intensity, -intensity, intensity)
		data[2*i+1] = clamp(dc[i]*intensity, -intensity, intensity)
	}

	return &Flow{h: h, w: w, data: data}, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
