// SPDX-License-Identifier: MIT
// Package affine_test contains test helpers.

package affine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug/tensor"
)

// tol is the absolute tolerance for float64 matrix comparisons.
const tol = 1e-12

// randomImage fills an h×w×c float32 image with uniform samples in [0,1).
func randomImage(t testing.TB, h, w, c int, seed uint64) *tensor.Image[float32] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 7))
	data := make([]float32, h*w*c)
	for i := range data {
		data[i] = rng.Float32()
	}
	img, err := tensor.FromSlice(h, w, c, data)
	require.NoError(t, err)

	return img
}

// ramp returns an image whose sample at flat index i equals i+1 (so zero is
// never a legitimate pixel value and stands out as fill).
func ramp[T tensor.Number](t testing.TB, h, w, c int) *tensor.Image[T] {
	t.Helper()
	data := make([]T, h*w*c)
	for i := range data {
		data[i] = T(i + 1)
	}
	img, err := tensor.FromSlice(h, w, c, data)
	require.NoError(t, err)

	return img
}

// requireMatrixInDelta compares two 3×3 arrays entry-wise.
func requireMatrixInDelta(t testing.TB, want, got [3][3]float64, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want[i][j], got[i][j], delta, "entry [%d,%d]", i, j)
		}
	}
}
