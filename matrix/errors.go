// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in Option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Facades wrap
// with matrixErrorf(op, ErrX) so the text reads "Inverse: matrix: singular
// matrix" while errors.Is(err, ErrSingular) still holds.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> aliasing -> NaN/Inf input -> index -> singular pivot -> non-convergence.

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, 4).
	// Accessors and row operations MUST return this instead of silently no-oping.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Mat4 was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAliased indicates that the system matrix and the accumulator passed to
	// elimination are the same *Mat4; every row operation would be applied twice.
	ErrAliased = errors.New("matrix: system and accumulator are the same matrix")

	// ErrNaNInf signals a NaN or ±Inf cell in an input to elimination.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when elimination meets a zero or non-finite pivot
	// while normalizing, or produces NaN/Inf cells. The system has no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotConverged is returned when elimination exhausts its pass budget
	// without reducing the system matrix to the identity. Results are invalid.
	ErrNotConverged = errors.New("matrix: elimination did not converge")
)
