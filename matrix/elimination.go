// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan elimination engine.
//
// Purpose:
//   - Reduce a system matrix A to the identity by elementary row operations,
//     applying every operation in lockstep to an accumulator B. When A == I,
//     B holds A₀⁻¹·B₀ (A₀⁻¹ itself when B₀ == I).
//
// Structure:
//   - system pairs A and B; its row operations (swapRows, scaleRow,
//     addScaledRow) always touch both, so the two can never drift apart.
//   - pivotRow chooses the pivot per PivotStrategy.
//   - normalize rejects pivots that are zero, non-finite, or lost to
//     cancellation relative to their row's magnitude at the start of the pass.
//   - correctColumn zeroes column d below the diagonal, correctRow zeroes
//     row d right of the diagonal.
//   - sweep runs one pass: forward elimination over d = 0..3 followed by
//     back substitution over d = 3..0 (PivotPartial), or the interleaved
//     legacy order (PivotSignedMax).
//   - GaussJordan drives passes until A equals the identity exactly or the
//     pass budget is spent.
//
// Determinism:
//   - Fixed traversal order, no randomness; identical inputs and options
//     give identical outputs and Reports.

package matrix

import (
	"fmt"
	"log/slog"
)

// pivotTolerance is the relative pivot threshold: Size units of float32
// machine epsilon (2⁻²³).
const pivotTolerance = Size * 0x1p-23

// system is the (A, B) pair transformed in lockstep.
type system struct {
	a, b   *Mat4
	scale  [Size]float32 // max |a[r][c]| per row at the start of the pass
	report *Report
	log    *slog.Logger
}

// beginPass records every row's magnitude; normalize measures pivots
// against it.
func (s *system) beginPass() {
	for r := 0; r < Size; r++ {
		var m float32
		for c := 0; c < Size; c++ {
			if v := abs32(s.a[r][c]); v > m {
				m = v
			}
		}
		s.scale[r] = m
	}
}

// rowErrorf wraps ErrOutOfRange for a row operation.
func rowErrorf(op string, rows ...int) error {
	return fmt.Errorf("%s%v: %w", op, rows, ErrOutOfRange)
}

// swapRows exchanges rows r1 and r2 of both matrices.
// Returns ErrOutOfRange when either index is outside [0, 4).
func (s *system) swapRows(r1, r2 int) error {
	if !validIndex(r1) || !validIndex(r2) {
		return rowErrorf("swapRows", r1, r2)
	}
	s.a[r1], s.a[r2] = s.a[r2], s.a[r1]
	s.b[r1], s.b[r2] = s.b[r2], s.b[r1]
	s.scale[r1], s.scale[r2] = s.scale[r2], s.scale[r1]

	return nil
}

// scaleRow multiplies every cell of row in both matrices by factor.
func (s *system) scaleRow(row int, factor float32) error {
	if !validIndex(row) {
		return rowErrorf("scaleRow", row)
	}
	for i := 0; i < Size; i++ {
		s.a[row][i] *= factor
		s.b[row][i] *= factor
	}

	return nil
}

// addScaledRow performs dst += factor·src in both matrices. The same factor
// is used for A and B; that is what keeps B equal to E·B₀ whenever A = E·A₀.
func (s *system) addScaledRow(src, dst int, factor float32) error {
	if !validIndex(src) || !validIndex(dst) {
		return rowErrorf("addScaledRow", src, dst)
	}
	for i := 0; i < Size; i++ {
		s.a[dst][i] += s.a[src][i] * factor
		s.b[dst][i] += s.b[src][i] * factor
	}

	return nil
}

// pivotRow returns the row that should be swapped onto diagonal position d.
//
// PivotPartial scans rows d..3 for the largest |a[r][d]|, keeping d on ties.
// PivotSignedMax scans rows 0..3 for the largest signed a[r][d], keeping the
// first row on ties; rows already placed above d may be pulled back down.
func pivotRow(a *Mat4, d int, strategy PivotStrategy) int {
	if strategy == PivotSignedMax {
		row := 0
		best := a[0][d]
		for i := 1; i < Size; i++ {
			if a[i][d] > best {
				best = a[i][d]
				row = i
			}
		}

		return row
	}

	row := d
	best := abs32(a[d][d])
	for i := d + 1; i < Size; i++ {
		if v := abs32(a[i][d]); v > best {
			best = v
			row = i
		}
	}

	return row
}

// normalize scales row d so that a[d][d] == 1 (up to rounding).
//
// A pivot that is zero or non-finite cannot be normalized, and neither can
// one with |pivot| <= pivotTolerance·scale[d]: such a value is what is left
// of a row that cancelled against the rows above it, i.e. rounding noise
// standing in for an exact zero. Both report ErrSingular.
func (s *system) normalize(d int) error {
	pivot := s.a[d][d]
	if pivot == 1 {
		return nil
	}
	if pivot == 0 || isNonFinite(pivot) || abs32(pivot) <= pivotTolerance*s.scale[d] {
		s.log.Warn("gauss-jordan: unusable pivot",
			"diag", d, "pivot", pivot, "row_scale", s.scale[d])

		return fmt.Errorf("pivot a[%d][%d]=%g: %w", d, d, pivot, ErrSingular)
	}

	return s.scaleRow(d, 1/pivot)
}

// correctColumn zeroes a[r][d] for every row r below d using row d as the
// pivot row: factor = -a[r][d] / a[d][d]. Rows whose pivot is zero are
// skipped and counted in Report.SkippedCorrections.
func (s *system) correctColumn(d int) error {
	var factor float32
	for r := d + 1; r < Size; r++ {
		if s.a[r][d] == 0 {
			continue
		}
		pivot := s.a[d][d]
		if pivot == 0 {
			s.report.SkippedCorrections++
			s.log.Debug("gauss-jordan: skipped column correction", "row", r, "col", d)
			continue
		}
		factor = -(s.a[r][d] / pivot)
		if err := s.addScaledRow(d, r, factor); err != nil {
			return err
		}
	}

	return nil
}

// correctRow zeroes a[d][c] for every column c right of d by adding a
// multiple of row c: factor = -a[d][c] / a[c][c]. A zero a[c][c] leaves the
// cell uncorrected and is counted in Report.SkippedCorrections.
func (s *system) correctRow(d int) error {
	var factor float32
	for c := d + 1; c < Size; c++ {
		if s.a[d][c] == 0 {
			continue
		}
		pivot := s.a[c][c]
		if pivot == 0 {
			s.report.SkippedCorrections++
			s.log.Debug("gauss-jordan: skipped row correction", "row", d, "col", c)
			continue
		}
		factor = -(s.a[d][c] / pivot)
		if err := s.addScaledRow(c, d, factor); err != nil {
			return err
		}
	}

	return nil
}

// place moves the chosen pivot row onto diagonal position d and normalizes it.
func (s *system) place(d int, strategy PivotStrategy) error {
	if p := pivotRow(s.a, d, strategy); p != d {
		if err := s.swapRows(d, p); err != nil {
			return err
		}
		s.report.Swaps++
		s.log.Debug("gauss-jordan: swap", "diag", d, "row", p)
	}

	return s.normalize(d)
}

// sweep runs one pass over the diagonal.
//
// PivotPartial eliminates forward (place, correctColumn for d = 0..3) and
// then substitutes back (correctRow for d = 3..0), so every row correction
// divides by a diagonal that is already normalized.
// PivotSignedMax keeps the legacy order: place, correctColumn and correctRow
// for each d in turn, where correctRow may divide by rows not yet reduced.
func (s *system) sweep(strategy PivotStrategy) error {
	s.beginPass()
	for d := 0; d < Size; d++ {
		if err := s.place(d, strategy); err != nil {
			return err
		}
		if err := s.correctColumn(d); err != nil {
			return err
		}
		if strategy == PivotSignedMax {
			if err := s.correctRow(d); err != nil {
				return err
			}
		}
	}
	if strategy != PivotSignedMax {
		for d := Size - 1; d >= 0; d-- {
			if err := s.correctRow(d); err != nil {
				return err
			}
		}
	}
	if hasNonFinite(s.a) {
		return fmt.Errorf("non-finite cell after pass %d: %w", s.report.Passes, ErrSingular)
	}

	return nil
}

// GaussJordan reduces a to the identity in place, applying every row
// operation to b as well. On success b holds a₀⁻¹·b₀.
//
// Implementation:
//   - Stage 1: ValidateSystem (ErrNilMatrix, ErrAliased, ErrNaNInf).
//   - Stage 2: while a != I (exact), run a sweep: pivot selection and swap,
//     normalization of row d and column correction below d for d = 0..3,
//     then row correction right of d for d = 3..0 (see sweep for the
//     PivotSignedMax order).
//   - Stage 3: stop with ErrNotConverged once MaxPasses sweeps did not reach I.
//
// Behavior highlights:
//   - A zero or non-finite pivot at normalization fails fast with ErrSingular:
//     dividing by it would fill the row with Inf/NaN, and no later sweep can
//     bring such a matrix back to the identity.
//   - So does a pivot within Size·2⁻²³ of its row's magnitude. Rank-deficient
//     inputs such as the 1..16 matrix leave rounding residue of that size
//     where the exact pivot is zero; normalizing it would yield a finite,
//     exactly converged and entirely wrong b.
//   - Corrections whose divisor is zero are skipped, not fatal, and counted.
//   - Convergence is exact equality with the identity. Most affine inputs
//     land there in one or two sweeps; later sweeps clean residual rounding.
//
// Inputs:
//   - a: system matrix, reduced in place.
//   - b: accumulator, co-transformed in place. Must not alias a.
//   - opts: WithMaxPasses, WithPivot.
//
// Returns:
//   - Report: passes, swaps, skipped corrections, Converged flag. Always
//     populated, also on error.
//   - error: nil iff Report.Converged.
//
// Errors:
//   - ErrNilMatrix, ErrAliased, ErrNaNInf (input validation; a and b untouched).
//   - ErrSingular (a and b left partially reduced).
//   - ErrNotConverged (a and b left in the state of the last sweep).
//
// Complexity:
//   - O(passes · 4 · 4 · 4) arithmetic, no allocation beyond the Report.
//
// Notes:
//   - With PivotSignedMax the legacy pivot order is reproduced, including its
//     failure on inputs whose largest signed column entry is above the diagonal.
func GaussJordan(a, b *Mat4, opts ...Option) (Report, error) {
	var report Report
	if err := ValidateSystem(a, b); err != nil {
		return report, matrixErrorf(opGaussJordan, err)
	}

	o := gatherOptions(opts...)
	s := &system{a: a, b: b, report: &report, log: Logger()}
	identity := Identity()

	for !Equal(*a, identity) {
		if report.Passes >= o.maxPasses {
			s.log.Warn("gauss-jordan: pass budget exhausted",
				"passes", report.Passes, "pivot", o.pivot.String())

			return report, matrixErrorf(opGaussJordan,
				fmt.Errorf("after %d passes: %w", report.Passes, ErrNotConverged))
		}
		report.Passes++
		s.log.Debug("gauss-jordan: pass", "pass", report.Passes, "pivot", o.pivot.String())
		if err := s.sweep(o.pivot); err != nil {
			return report, matrixErrorf(opGaussJordan, err)
		}
	}
	report.Converged = true

	return report, nil
}

// abs32 returns |v|.
func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}
