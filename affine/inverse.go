package affine

import (
	"fmt"
	"math"
)

// SingularEpsilon is the absolute determinant threshold below which a
// matrix is treated as singular.
const SingularEpsilon = 1e-12

// Inverse returns the inverse of m, or an error if m is singular or holds
// non-finite entries.
// Blueprint:
//
//	Stage 1 (Validate): reject NaN/Inf entries.
//	Stage 2 (Determinant): det(m) by cofactor expansion; |det| ≤ SingularEpsilon → ErrSingularMatrix.
//	Stage 3 (Execute): inverse = adj(m) / det, with adj the transposed cofactor matrix.
//
// Complexity: O(1).
func Inverse(m Matrix) (Matrix, error) {
	// Stage 1: Validate entries
	if !m.IsFinite() {
		return Matrix{}, fmt.Errorf("Inverse: %w", ErrNaNInf)
	}

	// Stage 2: Determinant guard
	det := m.Det()
	if math.Abs(det) <= SingularEpsilon {
		return Matrix{}, fmt.Errorf("Inverse: det=%g: %w", det, ErrSingularMatrix)
	}

	// Stage 3: adjugate / det
	var (
		a, b, c = m[0][0], m[0][1], m[0][2]
		d, e, f = m[1][0], m[1][1], m[1][2]
		g, h, i = m[2][0], m[2][1], m[2][2]
	)
	inv := Matrix{
		{e*i - f*h, c*h - b*i, b*f - c*e},
		{f*g - d*i, a*i - c*g, c*d - a*f},
		{d*h - e*g, b*g - a*h, a*e - b*d},
	}
	for r := range inv {
		for k := range inv[r] {
			inv[r][k] /= det
		}
	}

	return inv, nil
}
