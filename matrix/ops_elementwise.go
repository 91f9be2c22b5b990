// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels over Mat4.
//
// Purpose:
//   - Add / Sub / Scale produce a fresh Mat4; operands are never mutated.
//   - Equal is exact IEEE-754 comparison, EqualApprox is the tolerant variant.
//
// Determinism:
//   - Fixed i→j traversal; identical inputs give identical outputs.
//
// None of these kernels can fail: the 4x4 shape is fixed by the type.

package matrix

// Add returns a + b cell by cell.
// Complexity: O(16).
func Add(a, b Mat4) Mat4 {
	var out Mat4
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out
}

// Sub returns a - b cell by cell.
// Complexity: O(16).
func Sub(a, b Mat4) Mat4 {
	var out Mat4
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			out[i][j] = a[i][j] - b[i][j]
		}
	}

	return out
}

// Scale returns alpha·m.
func Scale(m Mat4, alpha float32) Mat4 {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			m[i][j] *= alpha
		}
	}

	return m
}

// Equal reports whether a and b are element-wise identical under exact
// floating-point comparison. The elimination engine uses
// Equal(a, Identity()) as its convergence test.
// NaN cells are never equal.
func Equal(a, b Mat4) bool {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports whether |a[i][j] - b[i][j]| <= eps for every cell.
// eps must be finite and non-negative; otherwise EqualApprox returns false.
func EqualApprox(a, b Mat4, eps float32) bool {
	if eps < 0 || isNonFinite(eps) {
		return false
	}
	var i, j int
	var d float32
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			d = a[i][j] - b[i][j]
			if d < 0 {
				d = -d
			}
			if !(d <= eps) { // NaN-safe
				return false
			}
		}
	}

	return true
}
