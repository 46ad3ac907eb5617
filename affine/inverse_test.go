package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/segaug/affine"
)

// InverseSuite checks the closed-form inverse against gonum's LU-based one.
type InverseSuite struct {
	suite.Suite
}

func (s *InverseSuite) gonumInverse(m affine.Matrix) [3][3]float64 {
	a := mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
	var inv mat.Dense
	s.Require().NoError(inv.Inverse(a))

	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = inv.At(i, j)
		}
	}

	return out
}

// TestMatchesGonum compares against gonum for a spread of composed transforms.
func (s *InverseSuite) TestMatchesGonum() {
	for _, m := range []affine.Matrix{
		affine.Identity(),
		affine.Shear(0.1),
		affine.Rotation(-0.9),
		affine.Zoom(0.25, 4),
		affine.Compose(affine.Rotation(1.0), affine.Shear(-0.5), affine.Zoom(0.1, 10)),
		{{2, 1, 0.5}, {0.3, 3, 1}, {0.1, 0.2, 1}},
	} {
		got, err := affine.Inverse(m)
		s.Require().NoError(err)
		requireMatrixInDelta(s.T(), s.gonumInverse(m), got, 1e-9)
	}
}

// TestRoundTrip verifies m·inv(m) == I.
func (s *InverseSuite) TestRoundTrip() {
	m := affine.Compose(affine.Rotation(0.3), affine.Shear(0.2), affine.Zoom(1.7, 0.6))
	inv, err := affine.Inverse(m)
	s.Require().NoError(err)
	requireMatrixInDelta(s.T(), affine.Identity(), m.Mul(inv), 1e-12)
}

// TestIdentityIsExact keeps the identity path bit-exact.
func (s *InverseSuite) TestIdentityIsExact() {
	inv, err := affine.Inverse(affine.Identity())
	s.Require().NoError(err)
	s.Require().Equal(affine.Identity(), inv)
}

// TestSingular covers the degenerate zoom and unit shear.
func (s *InverseSuite) TestSingular() {
	for _, m := range []affine.Matrix{
		affine.Zoom(0, 1),
		affine.Zoom(1, 0),
		affine.Shear(1),
		affine.Shear(-1),
		{},
	} {
		_, err := affine.Inverse(m)
		s.Require().ErrorIs(err, affine.ErrSingularMatrix, "matrix\n%v", m)
	}
}

// TestNonFinite rejects NaN/Inf before computing anything.
func (s *InverseSuite) TestNonFinite() {
	_, err := affine.Inverse(affine.Zoom(math.NaN(), 1))
	s.Require().ErrorIs(err, affine.ErrNaNInf)
}

func TestInverseSuite(t *testing.T) {
	suite.Run(t, new(InverseSuite))
}

func TestInverse_RotationIsTranspose(t *testing.T) {
	r := affine.Rotation(0.8)
	inv, err := affine.Inverse(r)
	require.NoError(t, err)
	requireMatrixInDelta(t, affine.Rotation(-0.8), inv, tol)
}
