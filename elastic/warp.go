package elastic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/segaug/tensor"
)

// Warp resamples img at (row−Δrow, col−Δcol) for every output pixel using
// bilinear interpolation with clamp-to-edge boundaries.
// Blueprint:
//
//	Stage 1 (Validate): flow finite and sized to img's height/width.
//	Stage 2 (Query): per pixel, split each query axis into a base index and a
//	  fraction (see axisWeights).
//	Stage 3 (Interpolate): per channel,
//	  v = (1-fr)(1-fc)·p00 + (1-fr)fc·p01 + fr(1-fc)·p10 + fr·fc·p11.
//	Stage 4 (Cast): integer dtypes round half away from zero, float dtypes convert.
//
// A zero flow returns an exact copy.
//
// Complexity: O(h*w*c).
func Warp[T tensor.Number](img *tensor.Image[T], flow *Flow) (*tensor.Image[T], error) {
	// Stage 1: Validate
	if err := tensor.ValidateImage(img); err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}
	if flow == nil {
		return nil, fmt.Errorf("Warp: %w", ErrNilFlow)
	}
	h, w, c := img.Height(), img.Width(), img.Channels()
	if flow.h != h || flow.w != w {
		return nil, fmt.Errorf("Warp: image %dx%d, flow %dx%d: %w", h, w, flow.h, flow.w, tensor.ErrShapeMismatch)
	}
	if !flow.IsFinite() {
		return nil, fmt.Errorf("Warp: %w", ErrNonFiniteFlow)
	}

	out, err := tensor.New[T](h, w, c)
	if err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}
	var (
		src    = img.Data()
		dst    = out.Data()
		round  = isInteger[T]()
		stride = w * c
	)
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			// Stage 2: Query
			dr, dc := flow.At(r, col)
			r0, r1, fr := axisWeights(float64(r)-dr, h)
			c0, c1, fc := axisWeights(float64(col)-dc, w)
			w00 := (1 - fr) * (1 - fc)
			w01 := (1 - fr) * fc
			w10 := fr * (1 - fc)
			w11 := fr * fc

			// Stage 3: Interpolate
			base00 := r0*stride + c0*c
			base01 := r0*stride + c1*c
			base10 := r1*stride + c0*c
			base11 := r1*stride + c1*c
			o := (r*w + col) * c
			for ch := 0; ch < c; ch++ {
				v := w00*float64(src[base00+ch]) +
					w01*float64(src[base01+ch]) +
					w10*float64(src[base10+ch]) +
					w11*float64(src[base11+ch])
				// Stage 4: Cast
				if round {
					v = math.Round(v)
				}
				dst[o+ch] = T(v)
			}
		}
	}

	return out, nil
}

// axisWeights splits query coordinate q on an axis of length size into the
// two neighbouring indices and the weight of the second one. The base index
// is clamped to [0, size-2] and the fraction to [0, 1], which reads the edge
// sample for any q outside the axis. A length-1 axis always reads index 0.
func axisWeights(q float64, size int) (i0, i1 int, frac float64) {
	maxBase := size - 2
	if maxBase < 0 {
		maxBase = 0
	}
	base := clamp(math.Floor(q), 0, float64(maxBase))
	frac = clamp(q-base, 0, 1)
	i0 = int(base)
	i1 = i0 + 1
	if i1 > size-1 {
		i1 = size - 1
	}

	return i0, i1, frac
}

// isInteger reports whether T is an integer type.
func isInteger[T tensor.Number]() bool {
	half := 0.5
	return T(half) == 0
}
