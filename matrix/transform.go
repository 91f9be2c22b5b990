// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/affine/vector"
)

// Translation returns the identity matrix with row 3 set to (v.X, v.Y, v.Z, 1).
//
// Points are row vectors multiplied on the left ([x y z 1]·T), so the offset
// lives in the last ROW, not the last column. Keep this convention when
// composing with Mul; a column-major caller must transpose.
func Translation(v vector.Vec3) Mat4 {
	t := Identity()
	t[3][0], t[3][1], t[3][2] = v.X, v.Y, v.Z

	return t
}

// RotationZ returns the rotation by angle radians about the z-axis,
// embedded in a homogeneous 4x4 matrix:
//
//	|  cos  -sin  0  0 |
//	|  sin   cos  0  0 |
//	|   0     0   1  0 |
//	|   0     0   0  1 |
//
// Only z-axis rotation is provided.
func RotationZ(angle float32) Mat4 {
	s, c := math.Sincos(float64(angle))
	cos, sin := float32(c), float32(s)

	return Mat4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotateAboutPoint replaces m with m · T(-pivot) · R(angle) · T(pivot):
// move the pivot to the origin, rotate about z, move back.
//
// Rotating by angle and then by -angle about the same pivot restores m up
// to float32 rounding. The three temporaries are stack values.
func RotateAboutPoint(m *Mat4, pivot vector.Vec3, angle float32) {
	if m == nil {
		return
	}
	toOrigin := Translation(pivot.Neg())
	rot := RotationZ(angle)
	back := Translation(pivot)

	*m = Mul(*m, toOrigin)
	*m = Mul(*m, rot)
	*m = Mul(*m, back)
}

// TransformPoint returns the first three components of [v.X v.Y v.Z 1]·m.
func TransformPoint(m Mat4, v vector.Vec3) vector.Vec3 {
	row := [Size]float32{v.X, v.Y, v.Z, 1}
	var out [Size]float32
	var j, k int
	for j = 0; j < Size; j++ {
		for k = 0; k < Size; k++ {
			out[j] += row[k] * m[k][j]
		}
	}

	return vector.New(out[0], out[1], out[2])
}
