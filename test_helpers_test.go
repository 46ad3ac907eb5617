// SPDX-License-Identifier: MIT
// Package segaug_test contains shared fixtures for the paired coordinator tests.

package segaug_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug"
	"github.com/katalvlaran/segaug/tensor"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x5eed))
}

// randomInts returns an h×w×c int32 image with samples in [0, 255).
func randomInts(t testing.TB, h, w, c int, seed uint64) *tensor.Image[int32] {
	t.Helper()
	rng := newRand(seed)
	data := make([]int32, h*w*c)
	for i := range data {
		data[i] = int32(rng.IntN(255))
	}
	img, err := tensor.FromSlice(h, w, c, data)
	require.NoError(t, err)

	return img
}

// randomFloats returns an h×w×c float32 image with samples in [0, 1).
func randomFloats(t testing.TB, h, w, c int, seed uint64) *tensor.Image[float32] {
	t.Helper()
	rng := newRand(seed)
	data := make([]float32, h*w*c)
	for i := range data {
		data[i] = rng.Float32()
	}
	img, err := tensor.FromSlice(h, w, c, data)
	require.NoError(t, err)

	return img
}

// countingSource wraps a Source and counts draws.
type countingSource struct {
	src interface{ Float64() float64 }
	n   int
}

func (c *countingSource) Float64() float64 {
	c.n++
	return c.src.Float64()
}

// fixedSource replays vals in order, then repeats the last one.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i]
	if f.i < len(f.vals)-1 {
		f.i++
	}
	return v
}

// wideRanges is the aggressive configuration used by the pairing tests.
func wideRanges() segaug.AffineRanges {
	return segaug.AffineRanges{
		ShearMin:    -1, ShearMax: 1,
		RotationMin: -1, RotationMax: 1,
		ZoomMin:     0.1, ZoomMax: 10,
		RateFlipLR:  0.5, RateFlipUD: 0.5,
	}
}
