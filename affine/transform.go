package affine

import (
	"fmt"

	"github.com/katalvlaran/segaug/tensor"
)

// TransformImage applies the rotation/shear/zoom described by opts to img.
// With no options it returns an exact copy.
//
// Errors: ErrSingularMatrix when the composed matrix cannot be inverted.
func TransformImage[T tensor.Number](img *tensor.Image[T], opts ...Option) (*tensor.Image[T], error) {
	o := gatherOptions(opts...)

	return TransformWith(img, o.Matrix(), o.FillValue())
}

// TransformWith resamples img under an already composed matrix m.
func TransformWith[T tensor.Number](img *tensor.Image[T], m Matrix, fill float64) (*tensor.Image[T], error) {
	if err := tensor.ValidateImage(img); err != nil {
		return nil, fmt.Errorf("TransformWith: %w", err)
	}
	pairs, err := TransformCoords(img.Height(), img.Width(), img.Channels(), m)
	if err != nil {
		return nil, fmt.Errorf("TransformWith %v: %w", img, err)
	}

	return Resample(img, pairs, fill)
}
