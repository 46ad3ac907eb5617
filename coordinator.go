package segaug

import (
	"fmt"

	"github.com/katalvlaran/segaug/affine"
	"github.com/katalvlaran/segaug/elastic"
	"github.com/katalvlaran/segaug/tensor"
)

// validatePair runs the shared guards: both tensors HWC, same height/width.
func validatePair[I, L tensor.Number](op string, img *tensor.Image[I], lbl *tensor.Image[L]) error {
	if err := tensor.ValidateImage(img); err != nil {
		return fmt.Errorf("%s: image: %w", op, err)
	}
	if err := tensor.ValidateImage(lbl); err != nil {
		return fmt.Errorf("%s: label: %w", op, err)
	}
	if err := tensor.ValidateSameHW(img.Shape(), lbl.Shape()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RandomAffine draws one set of affine parameters from r and applies it to
// both img and lbl.
// Blueprint:
//
//	Stage 1 (Validate): rng non-nil, ranges valid, tensors HWC and aligned.
//	Stage 2 (Draw): DrawAffineParams, exactly once.
//	Stage 3 (Apply): ApplyAffine with the shared parameters.
//
// With DefaultAffineRanges both outputs equal their inputs.
func RandomAffine[I, L tensor.Number](rng Source, img *tensor.Image[I], lbl *tensor.Image[L], r AffineRanges) (*tensor.Image[I], *tensor.Image[L], error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("RandomAffine: %w", ErrNilSource)
	}
	if err := r.Validate(); err != nil {
		return nil, nil, fmt.Errorf("RandomAffine: %w", err)
	}
	if err := validatePair("RandomAffine", img, lbl); err != nil {
		return nil, nil, err
	}

	p := DrawAffineParams(rng, r)

	return ApplyAffine(img, lbl, p, r.FillValue, r.LabelFillValue)
}

// ApplyAffine applies p to img and lbl: flips first (identically to both),
// then one composed matrix. Coordinate pairs are computed separately for
// each tensor because their channel counts may differ; the matrix is shared.
//
// Errors: tensor.ErrNilImage / ErrInvalidRank / ErrShapeMismatch on bad
// inputs, affine.ErrSingularMatrix when p's matrix cannot be inverted.
func ApplyAffine[I, L tensor.Number](img *tensor.Image[I], lbl *tensor.Image[L], p AffineParams, imgFill, lblFill float64) (*tensor.Image[I], *tensor.Image[L], error) {
	if err := validatePair("ApplyAffine", img, lbl); err != nil {
		return nil, nil, err
	}

	if p.FlipLR {
		img, lbl = tensor.FlipLeftRight(img), tensor.FlipLeftRight(lbl)
	}
	if p.FlipUD {
		img, lbl = tensor.FlipUpDown(img), tensor.FlipUpDown(lbl)
	}

	m := p.Matrix()
	if m.IsIdentity() {
		if !p.FlipLR && !p.FlipUD {
			return img.Clone(), lbl.Clone(), nil
		}
		return img, lbl, nil
	}

	outImg, err := affine.TransformWith(img, m, imgFill)
	if err != nil {
		return nil, nil, fmt.Errorf("ApplyAffine: image: %w", err)
	}
	outLbl, err := affine.TransformWith(lbl, m, lblFill)
	if err != nil {
		return nil, nil, fmt.Errorf("ApplyAffine: label: %w", err)
	}

	return outImg, outLbl, nil
}

// ElasticDeformation draws one flow field sized to img and warps img and lbl
// by it, so both deform identically pixel for pixel.
func ElasticDeformation[I, L tensor.Number](rng Source, img *tensor.Image[I], lbl *tensor.Image[L], p ElasticParams) (*tensor.Image[I], *tensor.Image[L], error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("ElasticDeformation: %w", ErrNilSource)
	}
	if err := validatePair("ElasticDeformation", img, lbl); err != nil {
		return nil, nil, err
	}

	flow, err := elastic.RandomFlow(rng, img.Height(), img.Width(), p.Sigma, p.Intensity, p.options()...)
	if err != nil {
		return nil, nil, fmt.Errorf("ElasticDeformation: %w", err)
	}

	return ApplyFlow(img, lbl, flow)
}

// ApplyFlow warps img and lbl by the same flow.
func ApplyFlow[I, L tensor.Number](img *tensor.Image[I], lbl *tensor.Image[L], flow *elastic.Flow) (*tensor.Image[I], *tensor.Image[L], error) {
	if err := validatePair("ApplyFlow", img, lbl); err != nil {
		return nil, nil, err
	}

	outImg, err := elastic.Warp(img, flow)
	if err != nil {
		return nil, nil, fmt.Errorf("ApplyFlow: image: %w", err)
	}
	outLbl, err := elastic.Warp(lbl, flow)
	if err != nil {
		return nil, nil, fmt.Errorf("ApplyFlow: label: %w", err)
	}

	return outImg, outLbl, nil
}
