// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private elimination kernels and options.
//
// Purpose:
//   - Expose the unexported row operations, correction kernels, pivot search
//     and the resolved Options to matrix_test ONLY.
//   - Compiled only with `go test` (the _test.go suffix), invisible to production builds.
//
// Maintenance:
//   - If a private kernel changes signature, mirror the change here once.

import "log/slog"

// ExportedPivotRow exposes pivotRow.
var ExportedPivotRow = pivotRow

// newTestSystem pairs a and b with a fresh Report and the package logger.
func newTestSystem(a, b *Mat4) (*system, *Report) {
	r := &Report{}

	return &system{a: a, b: b, report: r, log: slog.New(nopHandler{})}, r
}

// ExportedSwapRows runs system.swapRows on (a, b).
func ExportedSwapRows(a, b *Mat4, r1, r2 int) error {
	s, _ := newTestSystem(a, b)

	return s.swapRows(r1, r2)
}

// ExportedScaleRow runs system.scaleRow on (a, b).
func ExportedScaleRow(a, b *Mat4, row int, factor float32) error {
	s, _ := newTestSystem(a, b)

	return s.scaleRow(row, factor)
}

// ExportedAddScaledRow runs system.addScaledRow on (a, b).
func ExportedAddScaledRow(a, b *Mat4, src, dst int, factor float32) error {
	s, _ := newTestSystem(a, b)

	return s.addScaledRow(src, dst, factor)
}

// ExportedNormalize runs system.normalize on (a, b), with row magnitudes
// taken from a as at the start of a pass.
func ExportedNormalize(a, b *Mat4, d int) error {
	s, _ := newTestSystem(a, b)
	s.beginPass()

	return s.normalize(d)
}

// ExportedCorrectColumn runs system.correctColumn and returns the Report it filled.
func ExportedCorrectColumn(a, b *Mat4, d int) (Report, error) {
	s, r := newTestSystem(a, b)
	err := s.correctColumn(d)

	return *r, err
}

// ExportedCorrectRow runs system.correctRow and returns the Report it filled.
func ExportedCorrectRow(a, b *Mat4, d int) (Report, error) {
	s, r := newTestSystem(a, b)
	err := s.correctRow(d)

	return *r, err
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	MaxPasses   int
	Pivot       PivotStrategy
	Concurrency int
}

// GatherOptionsSnapshot resolves opts the way public entry points do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{MaxPasses: o.maxPasses, Pivot: o.pivot, Concurrency: o.concurrency}
}
