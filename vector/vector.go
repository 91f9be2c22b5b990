// SPDX-License-Identifier: MIT

// Package vector provides the 3-component float32 value that the matrix
// package consumes (translation offsets, rotation pivots) and produces
// (row/column extraction, point transforms).
//
// Vec3 is a plain value: no unit or range constraints, copied on assignment.
// It converts losslessly to and from golang.org/x/image/math/f32.Vec3 so that
// callers already speaking the x/image vocabulary can pass their values through.
package vector

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vec3 is a 3-component single-precision vector (x, y, z).
type Vec3 struct {
	X, Y, Z float32
}

// New returns Vec3{x, y, z}.
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromF32 converts an x/image f32.Vec3 into a Vec3.
// Complexity: O(1).
func FromF32(v f32.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// F32 returns v as an x/image f32.Vec3 (index 0 = X, 1 = Y, 2 = Z).
// Complexity: O(1).
func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Neg returns (-x, -y, -z).
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
