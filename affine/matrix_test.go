package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug/affine"
)

func TestBuilders_NeutralParametersGiveIdentity(t *testing.T) {
	require.True(t, affine.Shear(0).IsIdentity())
	require.True(t, affine.Rotation(0).IsIdentity())
	require.True(t, affine.Zoom(1, 1).IsIdentity())
	require.True(t, affine.Compose(affine.Rotation(0), affine.Shear(0), affine.Zoom(1, 1)).IsIdentity())
}

func TestShear(t *testing.T) {
	require.Equal(t, affine.Matrix{{1, 0.3, 0}, {0.3, 1, 0}, {0, 0, 1}}, affine.Shear(0.3))
}

func TestZoom(t *testing.T) {
	require.Equal(t, affine.Matrix{{2, 0, 0}, {0, 0.5, 0}, {0, 0, 1}}, affine.Zoom(2, 0.5))
}

func TestRotation_QuarterTurn(t *testing.T) {
	got := affine.Rotation(math.Pi / 2)
	requireMatrixInDelta(t, [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, got, tol)
	require.InDelta(t, 1.0, got.Det(), tol)
}

func TestCompose_OrderIsRotationShearZoom(t *testing.T) {
	r := affine.Rotation(0.4)
	s := affine.Shear(0.2)
	z := affine.Zoom(1.5, 0.7)

	got := affine.Compose(r, s, z)
	require.Equal(t, r.Mul(s).Mul(z), got)

	// a different order gives a different matrix
	require.NotEqual(t, z.Mul(s).Mul(r), got)
}

func TestMul_Identity(t *testing.T) {
	m := affine.Compose(affine.Rotation(1.1), affine.Shear(-0.3), affine.Zoom(0.8, 1.2))
	require.Equal(t, m, m.Mul(affine.Identity()))
	require.Equal(t, m, affine.Identity().Mul(m))
}

func TestDet(t *testing.T) {
	require.InDelta(t, 6.0, affine.Zoom(2, 3).Det(), tol)
	require.InDelta(t, 1-0.25, affine.Shear(0.5).Det(), tol)
	require.InDelta(t, 0.0, affine.Shear(1).Det(), tol)
}

func TestApply_KeepsChannelAxis(t *testing.T) {
	m := affine.Compose(affine.Rotation(0.7), affine.Shear(0.1), affine.Zoom(2, 0.5))
	v := m.Apply([3]float64{3, -4, 2})
	require.Equal(t, 2.0, v[2])
}

func TestIsFinite(t *testing.T) {
	require.True(t, affine.Identity().IsFinite())
	require.False(t, affine.Zoom(math.Inf(1), 1).IsFinite())
	require.False(t, affine.Shear(math.NaN()).IsFinite())
}
