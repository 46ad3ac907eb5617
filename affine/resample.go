package affine

import (
	"fmt"

	"github.com/katalvlaran/segaug/tensor"
)

// TransformCoords computes the (source, destination) coordinate pairs for an
// h×w×c image transformed by m.
// Blueprint:
//
//	Stage 1 (Validate): positive dims; invert m (ErrSingularMatrix / ErrNaNInf).
//	Stage 2 (Map): for each destination (row, col, ch) in row-major order,
//	  src = inv·(dst − centre) + centre, with centre = (h/2, w/2, 0).
//	Stage 3 (Trim): keep the pair only if src lies in [0,h)×[0,w)×[0,c).
//	Stage 4 (Finalize): truncate src toward zero and append the pair.
//
// Both returned lists have the same length, at most h*w*c. Destination
// coordinates are distinct, so scatter order does not matter.
//
// Complexity: O(h*w*c) time and memory.
func TransformCoords(h, w, c int, m Matrix) (tensor.CoordinatePair, error) {
	// Stage 1: Validate
	if h <= 0 || w <= 0 || c <= 0 {
		return tensor.CoordinatePair{}, fmt.Errorf("TransformCoords(%d,%d,%d): %w", h, w, c, tensor.ErrBadShape)
	}
	inv, err := Inverse(m)
	if err != nil {
		return tensor.CoordinatePair{}, fmt.Errorf("TransformCoords: %w", err)
	}

	// Stage 2-4: Map, trim, truncate
	var (
		centre = [3]float64{float64(h) / 2, float64(w) / 2, 0}
		limit  = [3]float64{float64(h), float64(w), float64(c)}
		n      = h * w * c
		src    = make([]tensor.Coord, 0, n)
		dst    = make([]tensor.Coord, 0, n)
	)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			for ch := 0; ch < c; ch++ {
				p := inv.Apply([3]float64{
					float64(row) - centre[0],
					float64(col) - centre[1],
					float64(ch) - centre[2],
				})
				p[0] += centre[0]
				p[1] += centre[1]
				p[2] += centre[2]
				if !inside(p, limit) {
					continue // background
				}
				src = append(src, tensor.Coord{int(p[0]), int(p[1]), int(p[2])})
				dst = append(dst, tensor.Coord{row, col, ch})
			}
		}
	}

	return tensor.CoordinatePair{Source: src, Destination: dst}, nil
}

// inside reports 0 ≤ p[k] < limit[k] on every axis. NaN compares false and is
// therefore trimmed.
func inside(p, limit [3]float64) bool {
	for k := range p {
		if !(p[k] >= 0 && p[k] < limit[k]) {
			return false
		}
	}

	return true
}

// Resample allocates a new image shaped like img, fills it with fill, and
// copies img[Source[i]] into result[Destination[i]] for every pair. Pixels
// not named by any destination keep the fill value.
//
// fill is converted with tensor.Saturate: truncated toward zero and clamped
// to T's range, so -1 on uint8 fills with 0 and 300 with 255.
//
// Errors:
//   - ErrPairLength when the two lists differ in length.
//   - tensor.ErrOutOfRange when a coordinate lies outside img.
//
// Complexity: O(h*w*c + len(pairs)).
func Resample[T tensor.Number](img *tensor.Image[T], pairs tensor.CoordinatePair, fill float64) (*tensor.Image[T], error) {
	if err := tensor.ValidateImage(img); err != nil {
		return nil, fmt.Errorf("Resample: %w", err)
	}
	if len(pairs.Source) != len(pairs.Destination) {
		return nil, fmt.Errorf("Resample: %d sources, %d destinations: %w",
			len(pairs.Source), len(pairs.Destination), ErrPairLength)
	}

	out, err := tensor.Full(img.Height(), img.Width(), img.Channels(), tensor.Saturate[T](fill))
	if err != nil {
		return nil, fmt.Errorf("Resample: %w", err)
	}
	var v T
	for i, s := range pairs.Source {
		d := pairs.Destination[i]
		if v, err = img.At(s[0], s[1], s[2]); err != nil {
			return nil, fmt.Errorf("Resample: source %d: %w", i, err)
		}
		if err = out.Set(d[0], d[1], d[2], v); err != nil {
			return nil, fmt.Errorf("Resample: destination %d: %w", i, err)
		}
	}

	return out, nil
}
