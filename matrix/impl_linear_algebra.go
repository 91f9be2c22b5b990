// SPDX-License-Identifier: MIT
// Package matrix: product and transpose kernels.
//
// Purpose:
//   - Mul: standard 4x4 product with a fixed accumulation order.
//   - Transpose: in-place transpose through a full scratch copy.
//   - Shared operation tags and matrixErrorf for uniform error wrapping.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opGaussJordan = "GaussJordan"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opInverseAll  = "InverseAll"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b, C[i][j] = Σ_k a[i][k]*b[k][j].
//
// Behavior highlights:
//   - Accumulates k = 0..3 in order into a float32 sum, so results are
//     reproducible for identical inputs.
//   - Row-vector convention: a point p is transformed as p·M, which is why
//     Translation stores its offset in row 3.
//
// Complexity:
//   - 64 multiply-adds, no allocation.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	var (
		i, j, k int
		sum     float32
	)
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			sum = 0
			for k = 0; k < Size; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Transpose replaces m with its transpose, m'[j][i] = m[i][j].
// The source is copied to a scratch matrix first; swapping cells in place
// without it would overwrite the second half of every off-diagonal pair.
func Transpose(m *Mat4) {
	if m == nil {
		return
	}
	src := *m
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			m[j][i] = src[i][j]
		}
	}
}

// Transposed returns the transpose of m, leaving m untouched.
func Transposed(m Mat4) Mat4 {
	Transpose(&m)

	return m
}
