package affine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug/affine"
	"github.com/katalvlaran/segaug/tensor"
)

// TestTransformCoords_IdentityCoversFullGrid: a 256×256×4 image under a zero
// shear maps every coordinate onto itself.
func TestTransformCoords_IdentityCoversFullGrid(t *testing.T) {
	const h, w, c = 256, 256, 4
	pairs, err := affine.TransformCoords(h, w, c, affine.Shear(0.0))
	require.NoError(t, err)
	require.Equal(t, h*w*c, pairs.Len())
	require.Len(t, pairs.Source, 262144)
	require.Equal(t, pairs.Source, pairs.Destination)

	grid, err := tensor.EnumerateCoordinates(h, w, c)
	require.NoError(t, err)
	require.Equal(t, grid, pairs.Destination)
}

// TestTransformCoords_ShearChangesMapping keeps both lists the same length
// while changing the mapping.
func TestTransformCoords_ShearChangesMapping(t *testing.T) {
	pairs, err := affine.TransformCoords(256, 256, 4, affine.Shear(0.1))
	require.NoError(t, err)
	require.Len(t, pairs.Source, len(pairs.Destination))
	require.NotEqual(t, pairs.Source, pairs.Destination)
}

// TestTransformCoords_ShrinkTrims works a 4×4 shrink by 0.5 by hand: the
// inverse doubles centred offsets, so only rows/cols 1 and 2 survive.
func TestTransformCoords_ShrinkTrims(t *testing.T) {
	pairs, err := affine.TransformCoords(4, 4, 1, affine.Zoom(0.5, 0.5))
	require.NoError(t, err)
	require.Equal(t, []tensor.Coord{{1, 1, 0}, {1, 2, 0}, {2, 1, 0}, {2, 2, 0}}, pairs.Destination)
	require.Equal(t, []tensor.Coord{{0, 0, 0}, {0, 2, 0}, {2, 0, 0}, {2, 2, 0}}, pairs.Source)
}

// TestTransformCoords_EnlargeKeepsAll: zooming in by 2 maps every destination
// into the central region of the source.
func TestTransformCoords_EnlargeKeepsAll(t *testing.T) {
	pairs, err := affine.TransformCoords(4, 4, 2, affine.Zoom(2, 2))
	require.NoError(t, err)
	require.Equal(t, 32, pairs.Len())
	for _, s := range pairs.Source {
		require.GreaterOrEqual(t, s[0], 1)
		require.LessOrEqual(t, s[0], 3)
		require.GreaterOrEqual(t, s[1], 1)
		require.LessOrEqual(t, s[1], 3)
	}
}

// TestTransformCoords_SourcesInBounds checks the trim invariant for an
// aggressive composed transform.
func TestTransformCoords_SourcesInBounds(t *testing.T) {
	const h, w, c = 31, 17, 3
	m := affine.Compose(affine.Rotation(0.9), affine.Shear(-0.4), affine.Zoom(0.3, 2.5))
	pairs, err := affine.TransformCoords(h, w, c, m)
	require.NoError(t, err)
	require.LessOrEqual(t, pairs.Len(), h*w*c)
	seen := make(map[tensor.Coord]bool, pairs.Len())
	for i, s := range pairs.Source {
		d := pairs.Destination[i]
		require.True(t, s[0] >= 0 && s[0] < h && s[1] >= 0 && s[1] < w && s[2] >= 0 && s[2] < c, "source %v", s)
		require.Equal(t, d[2], s[2], "channels must not mix")
		require.False(t, seen[d], "destination %v repeated", d)
		seen[d] = true
	}
}

func TestTransformCoords_Errors(t *testing.T) {
	_, err := affine.TransformCoords(4, 4, 1, affine.Zoom(0, 1))
	require.ErrorIs(t, err, affine.ErrSingularMatrix)

	_, err = affine.TransformCoords(0, 4, 1, affine.Identity())
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestResample_IdentityPairsCopy(t *testing.T) {
	img := randomImage(t, 256, 256, 4, 1)
	pairs, err := tensor.IdentityPairs(256, 256, 4)
	require.NoError(t, err)

	out, err := affine.Resample(img, pairs, 0)
	require.NoError(t, err)
	require.True(t, img.Equal(out))
}

func TestResample_ShearChangesImage(t *testing.T) {
	img := randomImage(t, 256, 256, 4, 2)
	pairs, err := affine.TransformCoords(256, 256, 4, affine.Shear(0.1))
	require.NoError(t, err)

	out, err := affine.Resample(img, pairs, 0)
	require.NoError(t, err)
	require.Equal(t, img.Shape(), out.Shape())
	require.False(t, img.Equal(out))
}

func TestResample_FillAndScatter(t *testing.T) {
	img := ramp[uint8](t, 4, 4, 1)
	pairs, err := affine.TransformCoords(4, 4, 1, affine.Zoom(0.5, 0.5))
	require.NoError(t, err)

	out, err := affine.Resample(img, pairs, 200)
	require.NoError(t, err)
	// sources (0,0),(0,2),(2,0),(2,2) hold 1,3,9,11
	assert.Equal(t, []uint8{
		200, 200, 200, 200,
		200, 1, 3, 200,
		200, 9, 11, 200,
		200, 200, 200, 200,
	}, out.Data())
	assert.Equal(t, uint8(1), img.Data()[0], "input must not change")
}

func TestResample_FillIsCastToDtype(t *testing.T) {
	img := ramp[int32](t, 2, 2, 1)
	out, err := affine.Resample(img, tensor.CoordinatePair{}, 7.9)
	require.NoError(t, err)
	require.Equal(t, []int32{7, 7, 7, 7}, out.Data())
}

func TestResample_FillSaturates(t *testing.T) {
	img := ramp[uint8](t, 2, 2, 1)
	for fill, want := range map[float64]uint8{-1: 0, 300: 255, 1e12: 255, 255.9: 255} {
		out, err := affine.Resample(img, tensor.CoordinatePair{}, fill)
		require.NoError(t, err)
		require.Equal(t, []uint8{want, want, want, want}, out.Data(), "fill %g", fill)
	}

	small := ramp[int8](t, 1, 2, 1)
	out, err := affine.TransformWith(small, affine.Zoom(0.1, 0.1), -500)
	require.NoError(t, err)
	require.Contains(t, out.Data(), int8(-128))
}

func TestResample_Errors(t *testing.T) {
	img := ramp[float64](t, 2, 2, 1)

	_, err := affine.Resample(img, tensor.CoordinatePair{Source: []tensor.Coord{{0, 0, 0}}}, 0)
	require.ErrorIs(t, err, affine.ErrPairLength)

	_, err = affine.Resample(img, tensor.CoordinatePair{
		Source:      []tensor.Coord{{2, 0, 0}},
		Destination: []tensor.Coord{{0, 0, 0}},
	}, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	_, err = affine.Resample(img, tensor.CoordinatePair{
		Source:      []tensor.Coord{{0, 0, 0}},
		Destination: []tensor.Coord{{0, 0, 1}},
	}, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}
