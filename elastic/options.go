package elastic

import "math"

const panicKernelSizeInvalid = "elastic: WithKernelSize: size must be >= 1"

// Option configures RandomFlow.
type Option func(*Options)

// Options holds the effective RandomFlow configuration.
type Options struct {
	kernelSize int // 0 means derive from sigma
}

// WithKernelSize fixes the Gaussian window length instead of deriving it
// from sigma. Panics if size < 1.
func WithKernelSize(size int) Option {
	if size < 1 {
		panic(panicKernelSizeInvalid)
	}

	return func(o *Options) { o.kernelSize = size }
}

// maxKernelHalf bounds ⌈sigma⌉ before the int conversion.
const maxKernelHalf = 1 << 29

// KernelSizeFor returns the default window length for sigma: 2·⌈sigma⌉+1.
// The half-width saturates at 2^29, so huge sigmas never overflow.
func KernelSizeFor(sigma float64) int {
	half := math.Ceil(sigma)
	if !(half <= maxKernelHalf) {
		half = maxKernelHalf
	}

	return 2*int(half) + 1
}

// MaxKernelSize is the longest window RandomFlow uses on an h×w field:
// 2·max(h,w)+1. With reflect padding a longer window only revisits samples.
func MaxKernelSize(h, w int) int {
	return 2*max(h, w) + 1
}

// gatherOptions applies opts, derives the window from sigma when unset and
// caps it at MaxKernelSize(h, w).
func gatherOptions(sigma float64, h, w int, opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.kernelSize == 0 {
		o.kernelSize = KernelSizeFor(sigma)
	}
	o.kernelSize = min(o.kernelSize, MaxKernelSize(h, w))

	return o
}
