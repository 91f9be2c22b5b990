// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels and the engine.
//   • Keep exact-equality fixtures on exactly representable values (small
//     integers, powers of two) so results do not depend on rounding.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine/matrix"
	"github.com/katalvlaran/affine/vector"
)

// approxEps is the tolerance for results that go through division or sin/cos.
const approxEps = 1e-5

// requireMatEqual fails unless want and got are exactly equal.
func requireMatEqual(t testing.TB, want, got matrix.Mat4) {
	t.Helper()
	if !matrix.Equal(want, got) {
		require.Failf(t, "matrices differ", "want:\n%sgot:\n%s", want.String(), got.String())
	}
}

// requireMatApprox fails unless every cell of got is within eps of want.
func requireMatApprox(t testing.TB, want, got matrix.Mat4, eps float32) {
	t.Helper()
	if !matrix.EqualApprox(want, got, eps) {
		require.Failf(t, "matrices differ beyond tolerance", "eps=%g\nwant:\n%sgot:\n%s", eps, want.String(), got.String())
	}
}

// sequential returns the matrix with cells 1..16 in row-major order.
func sequential() matrix.Mat4 {
	var m matrix.Mat4
	var i, j int
	for i = 0; i < matrix.Size; i++ {
		for j = 0; j < matrix.Size; j++ {
			m[i][j] = float32(i*matrix.Size + j + 1)
		}
	}

	return m
}

// randomMat4 fills a matrix with values in [-10, 10] on a 0.01 grid, drawn
// from a xorshift32 stream so every seed yields the same matrix everywhere.
func randomMat4(seed int64) matrix.Mat4 {
	x := uint32(seed)*2654435761 | 1
	var m matrix.Mat4
	var i, j int
	for i = 0; i < matrix.Size; i++ {
		for j = 0; j < matrix.Size; j++ {
			x ^= x << 13
			x ^= x >> 17
			x ^= x << 5
			m[i][j] = float32(x%2001)/100 - 10
		}
	}

	return m
}

// normInf returns the maximum absolute row sum of m.
func normInf(m matrix.Mat4) float32 {
	var best float32
	for _, row := range m {
		var sum float32
		for _, v := range row {
			sum += float32(math.Abs(float64(v)))
		}
		best = max(best, sum)
	}

	return best
}

// invertible is the named set of non-singular fixtures used across tests.
func invertible() map[string]matrix.Mat4 {
	return map[string]matrix.Mat4{
		"identity":        matrix.Identity(),
		"translation":     matrix.Translation(vector.New(1, 2, 3)),
		"neg-translation": matrix.Translation(vector.New(-1, -2, -3)),
		"rotation-0.3":    matrix.RotationZ(0.3),
		"rotation-30deg":  matrix.RotationZ(math.Pi / 6),
		"rotation-90deg":  matrix.RotationZ(math.Pi / 2),
		"rotation-1rad":   matrix.RotationZ(1),
		"diagonal":        {{2, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 8, 0}, {0, 0, 0, 1}},
		"upper-bidiag":    {{2, 1, 0, 0}, {0, 2, 1, 0}, {0, 0, 2, 1}, {0, 0, 0, 2}},
		"affine-mixed":    {{4, 1, 0, 0}, {1, 3, 0, 0}, {0, 0, 2, 0}, {1, 2, 3, 1}},
	}
}
