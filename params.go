package segaug

import (
	"fmt"
	"math"

	"github.com/katalvlaran/segaug/affine"
	"github.com/katalvlaran/segaug/elastic"
)

// Source supplies uniform samples in [0,1). *math/rand/v2.Rand satisfies it.
// A Source is not safe for concurrent use unless its implementation says so.
type Source interface {
	Float64() float64
}

// AffineRanges bounds the random affine parameters. Angles are in radians,
// shear and zoom are relative to the image size, and the flip rates are the
// fraction of calls that flip (0 never, 1 always).
type AffineRanges struct {
	RotationMin, RotationMax float64
	ShearMin, ShearMax       float64
	ZoomMin, ZoomMax         float64
	RateFlipLR, RateFlipUD   float64

	// FillValue is written to image pixels whose source falls outside the
	// image; LabelFillValue does the same for the label.
	FillValue      float64
	LabelFillValue float64
}

// DefaultAffineRanges returns the identity configuration: no rotation, no
// shear, unit zoom, no flips, zero fill.
func DefaultAffineRanges() AffineRanges {
	return AffineRanges{ZoomMin: 1, ZoomMax: 1}
}

// Validate checks every bound is finite, every min ≤ max and both flip
// rates lie in [0, 1]. Zoom bounds may include 0; such draws surface as
// affine.ErrSingularMatrix when applied.
func (r AffineRanges) Validate() error {
	for _, b := range []struct {
		name     string
		min, max float64
	}{
		{"rotation", r.RotationMin, r.RotationMax},
		{"shear", r.ShearMin, r.ShearMax},
		{"zoom", r.ZoomMin, r.ZoomMax},
	} {
		if !finite(b.min) || !finite(b.max) {
			return fmt.Errorf("AffineRanges.Validate: %s bounds not finite: %w", b.name, ErrInvalidRange)
		}
		if b.min > b.max {
			return fmt.Errorf("AffineRanges.Validate: %s min %g > max %g: %w", b.name, b.min, b.max, ErrInvalidRange)
		}
	}
	for _, rate := range []float64{r.RateFlipLR, r.RateFlipUD} {
		if !(rate >= 0 && rate <= 1) {
			return fmt.Errorf("AffineRanges.Validate: flip rate %g outside [0,1]: %w", rate, ErrInvalidRange)
		}
	}
	if !finite(r.FillValue) || !finite(r.LabelFillValue) {
		return fmt.Errorf("AffineRanges.Validate: fill value not finite: %w", ErrInvalidRange)
	}

	return nil
}

// AffineParams is one draw of the affine augmentation. It is created once
// per paired call and shared by the image and label transforms.
type AffineParams struct {
	FlipLR, FlipUD bool
	Rotation       float64
	Shear          float64
	ZoomH, ZoomW   float64
}

// IdentityParams returns parameters that leave both tensors unchanged.
func IdentityParams() AffineParams {
	return AffineParams{ZoomH: 1, ZoomW: 1}
}

// Matrix composes rotation·shear·zoom for p.
func (p AffineParams) Matrix() affine.Matrix {
	return affine.Compose(affine.Rotation(p.Rotation), affine.Shear(p.Shear), affine.Zoom(p.ZoomH, p.ZoomW))
}

// DrawAffineParams draws one AffineParams from r. The draw order is fixed
// (flip LR, flip UD, rotation, shear, zoom height, zoom width) so a seeded
// Source reproduces the same parameters. A flip happens when u < rate.
// Ranges are not validated here; RandomAffine does that first.
func DrawAffineParams(rng Source, r AffineRanges) AffineParams {
	var p AffineParams
	p.FlipLR = rng.Float64() < r.RateFlipLR
	p.FlipUD = rng.Float64() < r.RateFlipUD
	p.Rotation = uniform(rng, r.RotationMin, r.RotationMax)
	p.Shear = uniform(rng, r.ShearMin, r.ShearMax)
	p.ZoomH = uniform(rng, r.ZoomMin, r.ZoomMax)
	p.ZoomW = uniform(rng, r.ZoomMin, r.ZoomMax)

	return p
}

// ElasticParams configures an elastic deformation: Sigma is the Gaussian
// smoothing width (elasticity), Intensity the displacement cap in pixels.
// KernelSize overrides the smoothing window when > 0.
type ElasticParams struct {
	Sigma      float64
	Intensity  float64
	KernelSize int
}

// options maps p onto elastic.Option values.
func (p ElasticParams) options() []elastic.Option {
	if p.KernelSize > 0 {
		return []elastic.Option{elastic.WithKernelSize(p.KernelSize)}
	}

	return nil
}

// uniform returns a sample in [lo, hi); lo == hi returns lo exactly.
func uniform(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
