package colorconv

import (
	"errors"
	"fmt"
)

type Vec3 [3]float64
type Mat3 [3][3]float64

var ErrSingularMatrix = errors.New("colorconv: matrix is not invertible")

// Multiply returns m·v, treating v as a column vector.
func Multiply(v Vec3, m Mat3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m·b, so that Multiply(v, m.Mul(b)) ==
// Multiply(Multiply(v, b), m).
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat3) Transpose() (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[j][i]
		}
	}
	return
}

func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Mat3) Inverted() (ans Mat3, err error) {
	det := m.Determinant()
	if det == 0 {
		return ans, fmt.Errorf("%w: %v", ErrSingularMatrix, m)
	}
	inv := 1 / det
	ans[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv
	ans[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	ans[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	ans[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv
	ans[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	ans[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv
	ans[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv
	ans[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv
	ans[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv
	return
}

func diagonal(v Vec3) Mat3 {
	return Mat3{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}

// Clamp01 clamps x to [0,1]
func Clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

func Clamp(x, lo, hi float64) float64 {
	return max(lo, min(x, hi))
}
