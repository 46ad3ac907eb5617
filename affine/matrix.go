package affine

import (
	"fmt"
	"math"
)

// Matrix is a 3×3 transform acting on (row, col, channel) column vectors.
// It is a value type: every operation returns a new Matrix.
type Matrix [3][3]float64

// Identity returns the 3×3 identity.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Shear returns the symmetric shear matrix [[1,k,0],[k,1,0],[0,0,1]].
func Shear(k float64) Matrix {
	return Matrix{
		{1, k, 0},
		{k, 1, 0},
		{0, 0, 1},
	}
}

// Rotation returns the rotation by theta radians embedded in 3×3 form.
func Rotation(theta float64) Matrix {
	sin, cos := math.Sincos(theta)

	return Matrix{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Zoom returns diag(zh, zw, 1). Factors in (0,1) shrink, factors > 1 enlarge.
func Zoom(zh, zw float64) Matrix {
	return Matrix{
		{zh, 0, 0},
		{0, zw, 0},
		{0, 0, 1},
	}
}

// Compose returns rotation·shear·zoom. The order is part of the contract:
// zoom is applied first and rotation last.
func Compose(rotation, shear, zoom Matrix) Matrix {
	return rotation.Mul(shear).Mul(zoom)
}

// Mul returns the matrix product m·o.
// Complexity: O(27).
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			var sum float64
			for k = 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Apply returns m·v.
func (m Matrix) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether every entry is finite.
func (m Matrix) IsFinite() bool {
	for i := range m {
		for _, v := range m[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Matrix) String() string {
	var s string
	for i := range m {
		s += fmt.Sprintf("[%g, %g, %g]\n", m[i][0], m[i][1], m[i][2])
	}

	return s
}
