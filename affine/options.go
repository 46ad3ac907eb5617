// SPDX-License-Identifier: MIT

// Package affine: functional configuration for TransformImage.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     values (programmer error); data errors come back as sentinels.
//   - Defaults reproduce the identity transform.
package affine

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRotation is the rotation angle in radians.
	DefaultRotation = 0.0

	// DefaultShear is the shear factor.
	DefaultShear = 0.0

	// DefaultZoom is applied to both height and width.
	DefaultZoom = 1.0

	// DefaultFillValue is written to pixels whose source falls outside the image.
	DefaultFillValue = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRotationInvalid = "affine: WithRotation: angle must be finite"
	panicShearInvalid    = "affine: WithShear: factor must be finite"
	panicZoomInvalid     = "affine: WithZoom: factors must be finite"
	panicFillInvalid     = "affine: WithFillValue: value must be finite"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective TransformImage configuration.
type Options struct {
	rotation     float64
	shear        float64
	zoomH, zoomW float64
	fill         float64
}

// DefaultOptions returns the identity configuration.
func DefaultOptions() Options {
	return Options{
		rotation: DefaultRotation,
		shear:    DefaultShear,
		zoomH:    DefaultZoom,
		zoomW:    DefaultZoom,
		fill:     DefaultFillValue,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Matrix returns the composed transform described by o.
func (o Options) Matrix() Matrix {
	return Compose(Rotation(o.rotation), Shear(o.shear), Zoom(o.zoomH, o.zoomW))
}

// FillValue returns the configured background value.
func (o Options) FillValue() float64 { return o.fill }

// WithRotation sets the rotation angle in radians.
func WithRotation(theta float64) Option {
	if !finite(theta) {
		panic(panicRotationInvalid)
	}

	return func(o *Options) { o.rotation = theta }
}

// WithShear sets the shear factor.
func WithShear(k float64) Option {
	if !finite(k) {
		panic(panicShearInvalid)
	}

	return func(o *Options) { o.shear = k }
}

// WithZoom sets the height and width zoom factors. A zero factor is accepted
// here and reported as ErrSingularMatrix when the transform runs.
func WithZoom(zh, zw float64) Option {
	if !finite(zh) || !finite(zw) {
		panic(panicZoomInvalid)
	}

	return func(o *Options) { o.zoomH, o.zoomW = zh, zw }
}

// WithFillValue sets the background value for trimmed pixels.
func WithFillValue(v float64) Option {
	if !finite(v) {
		panic(panicFillInvalid)
	}

	return func(o *Options) { o.fill = v }
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
