// SPDX-License-Identifier: MIT

// Package matrix defines the fixed-size Mat4 type and its accessors.
//
// What & Why:
//
//	Mat4 is a 4x4 grid of float32 values in row-major order, indexed
//	m[row][col]. It is an array type, so it has value semantics: assignment
//	and parameter passing copy all 16 cells and no matrix ever aliases another.
//	Operations that mutate in place (Transpose, RotateAboutPoint, Inverse,
//	GaussJordan) take *Mat4; everything else takes and returns values.
//
// Complexity:
//
//	At/Set are O(1) with bounds checking. Row/column extraction is O(1).
package matrix

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/affine/vector"
)

// Size is the fixed dimension of every Mat4 (rows == cols == Size).
const Size = 4

// Mat4 is a 4x4 single-precision matrix, row-major, indexed [row][col].
// The zero value is the all-zero matrix.
type Mat4 [Size][Size]float32

// Identity returns a new identity matrix (diagonal 1, all other cells 0).
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// indexErrorf wraps ErrOutOfRange with the method name and offending indices.
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("Mat4.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}

// At returns the cell at (row, col).
// Returns ErrOutOfRange if either index is outside [0, 4).
func (m Mat4) At(row, col int) (float32, error) {
	if !validIndex(row) || !validIndex(col) {
		return 0, indexErrorf("At", row, col)
	}

	return m[row][col], nil
}

// Set assigns v to the cell at (row, col).
// Returns ErrOutOfRange if either index is outside [0, 4).
func (m *Mat4) Set(row, col int, v float32) error {
	if !validIndex(row) || !validIndex(col) {
		return indexErrorf("Set", row, col)
	}
	m[row][col] = v

	return nil
}

// RowVector returns the first three cells of the given row as a Vec3.
// Returns ErrOutOfRange if row is outside [0, 4).
func RowVector(m Mat4, row int) (vector.Vec3, error) {
	if !validIndex(row) {
		return vector.Vec3{}, fmt.Errorf("RowVector(%d): %w", row, ErrOutOfRange)
	}

	return vector.New(m[row][0], m[row][1], m[row][2]), nil
}

// ColVector returns the first three cells of the given column as a Vec3.
// Returns ErrOutOfRange if col is outside [0, 4).
func ColVector(m Mat4, col int) (vector.Vec3, error) {
	if !validIndex(col) {
		return vector.Vec3{}, fmt.Errorf("ColVector(%d): %w", col, ErrOutOfRange)
	}

	return vector.New(m[0][col], m[1][col], m[2][col]), nil
}

// FromVector returns a matrix whose row 0 is (v.X, v.Y, v.Z, 0); every
// other cell is zero.
func FromVector(v vector.Vec3) Mat4 {
	var m Mat4
	m[0][0], m[0][1], m[0][2] = v.X, v.Y, v.Z

	return m
}

// FromF32 converts an x/image f32.Mat4 (m[4*r+c]) into a Mat4.
func FromF32(src f32.Mat4) Mat4 {
	var m Mat4
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			m[r][c] = src[Size*r+c]
		}
	}

	return m
}

// F32 returns m in the flat row-major layout of x/image f32.Mat4.
func (m Mat4) F32() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[Size*r+c] = m[r][c]
		}
	}

	return out
}
