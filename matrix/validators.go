// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for index, finiteness and
//    elimination-input checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - ValidateSystem follows a fixed sequence: nil → aliasing → NaN/Inf.

package matrix

import "math"

// validIndex reports whether i addresses a row or column of a Mat4.
func validIndex(i int) bool {
	return i >= 0 && i < Size
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float32) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// hasNonFinite reports whether any cell of m is NaN or ±Inf.
// Complexity: O(16).
func hasNonFinite(m *Mat4) bool {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			if isNonFinite(m[i][j]) {
				return true
			}
		}
	}

	return false
}

// ValidateFinite returns ErrNaNInf if any cell of m is NaN or ±Inf.
func ValidateFinite(m Mat4) error {
	if hasNonFinite(&m) {
		return ErrNaNInf
	}

	return nil
}

// ValidateSystem checks the (a, b) pair handed to GaussJordan.
//
// Errors (in priority order):
//   - ErrNilMatrix if a or b is nil.
//   - ErrAliased if a and b point to the same matrix.
//   - ErrNaNInf if either holds a non-finite cell.
func ValidateSystem(a, b *Mat4) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a == b {
		return ErrAliased
	}
	if hasNonFinite(a) || hasNonFinite(b) {
		return ErrNaNInf
	}

	return nil
}
