// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for images of any sample type.

package tensor_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug/tensor"
)

// MustImage allocates an h×w×c image or fails the test.
func MustImage[T tensor.Number](t testing.TB, h, w, c int) *tensor.Image[T] {
	t.Helper()
	img, err := tensor.New[T](h, w, c)
	require.NoError(t, err)

	return img
}

// Ramp returns an image whose sample at flat index i equals i.
func Ramp[T tensor.Number](t testing.TB, h, w, c int) *tensor.Image[T] {
	t.Helper()
	data := make([]T, h*w*c)
	for i := range data {
		data[i] = T(i)
	}
	img, err := tensor.FromSlice(h, w, c, data)
	require.NoError(t, err)

	return img
}

// RandomImage fills an h×w×c float32 image with uniform samples in [0,1).
func RandomImage(t testing.TB, h, w, c int, seed uint64) *tensor.Image[float32] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]float32, h*w*c)
	for i := range data {
		data[i] = rng.Float32()
	}
	img, err := tensor.FromSlice(h, w, c, data)
	require.NoError(t, err)

	return img
}
