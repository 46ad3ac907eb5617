package elastic

import (
	"fmt"
	"math"
)

// GaussianKernel returns a normalised 1-D Gaussian of standard deviation
// sigma over a window of size taps centred at (size-1)/2.
//
// Errors:
//   - ErrInvalidSigma if sigma is not finite and positive.
//   - size < 1 is a programmer error and panics (see WithKernelSize).
//
// Complexity: O(size).
func GaussianKernel(sigma float64, size int) ([]float64, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, fmt.Errorf("GaussianKernel(%g): %w", sigma, ErrInvalidSigma)
	}
	if size < 1 {
		panic(panicKernelSizeInvalid)
	}

	k := make([]float64, size)
	mid := float64(size-1) / 2
	var sum float64
	for i := range k {
		x := float64(i) - mid
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}

	return k, nil
}

// reflect maps i into [0, n) by mirroring about the edge samples without
// repeating them (…2 1 | 0 1 2 … n-1 | n-2 n-3…).
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}

	return i
}

// convolveSeparable smooths an h×w plane with k along rows then columns.
// src is not modified.
func convolveSeparable(src []float64, h, w int, k []float64) []float64 {
	var (
		tmp  = make([]float64, h*w)
		dst  = make([]float64, h*w)
		half = (len(k) - 1) / 2
	)
	// horizontal pass
	for r := 0; r < h; r++ {
		row := src[r*w : (r+1)*w]
		for c := 0; c < w; c++ {
			var acc float64
			for t, kv := range k {
				acc += kv * row[reflect(c+t-half, w)]
			}
			tmp[r*w+c] = acc
		}
	}
	// vertical pass
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			var acc float64
			for t, kv := range k {
				acc += kv * tmp[reflect(r+t-half, h)*w+c]
			}
			dst[r*w+c] = acc
		}
	}

	return dst
}
