package segaug

import (
	"fmt"

	"github.com/katalvlaran/segaug/elastic"
	"github.com/katalvlaran/segaug/tensor"
)

// PairFunc transforms one (image, label) example. It is the shape expected
// by dataset map stages.
type PairFunc[I, L tensor.Number] func(img *tensor.Image[I], lbl *tensor.Image[L]) (*tensor.Image[I], *tensor.Image[L], error)

// AffineFunc binds rng and r into a PairFunc calling RandomAffine. The
// ranges are validated once, here. The returned function shares rng and is
// therefore only as concurrency-safe as rng.
func AffineFunc[I, L tensor.Number](rng Source, r AffineRanges) (PairFunc[I, L], error) {
	if rng == nil {
		return nil, fmt.Errorf("AffineFunc: %w", ErrNilSource)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("AffineFunc: %w", err)
	}

	return func(img *tensor.Image[I], lbl *tensor.Image[L]) (*tensor.Image[I], *tensor.Image[L], error) {
		return RandomAffine(rng, img, lbl, r)
	}, nil
}

// ElasticFunc binds rng and p into a PairFunc calling ElasticDeformation.
// Sigma and intensity are checked once, here.
func ElasticFunc[I, L tensor.Number](rng Source, p ElasticParams) (PairFunc[I, L], error) {
	if rng == nil {
		return nil, fmt.Errorf("ElasticFunc: %w", ErrNilSource)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("ElasticFunc: %w", err)
	}

	return func(img *tensor.Image[I], lbl *tensor.Image[L]) (*tensor.Image[I], *tensor.Image[L], error) {
		return ElasticDeformation(rng, img, lbl, p)
	}, nil
}

// Validate checks Sigma and Intensity without drawing any random numbers.
func (p ElasticParams) Validate() error {
	if _, err := elastic.GaussianKernel(p.Sigma, 1); err != nil {
		return fmt.Errorf("ElasticParams.Validate: %w", err)
	}
	if !finite(p.Intensity) || p.Intensity < 0 {
		return fmt.Errorf("ElasticParams.Validate: intensity=%g: %w", p.Intensity, elastic.ErrInvalidIntensity)
	}
	if p.KernelSize < 0 {
		return fmt.Errorf("ElasticParams.Validate: kernel size %d: %w", p.KernelSize, ErrInvalidRange)
	}

	return nil
}
