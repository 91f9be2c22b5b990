// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination engine,
// Inverse and the batch inverter. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// PivotStrategy selects how the elimination engine chooses the pivot row
// for each diagonal position.
type PivotStrategy int

const (
	// PivotPartial picks the row r ≥ d with the largest |a[r][d]|.
	// Rows already placed above the diagonal cursor are never disturbed.
	PivotPartial PivotStrategy = iota

	// PivotSignedMax picks the row over ALL rows 0..3 with the largest signed
	// a[r][d], rescanned on every diagonal step of every pass, and corrects
	// row d right of the diagonal right after column d. This reproduces the
	// elimination order of legacy transform pipelines.
	// Known weakness: a column whose largest signed entry sits above the
	// diagonal, or whose only non-zero entries are negative, swaps a zero onto
	// the diagonal and fails with ErrSingular (e.g. Translation(1,2,3),
	// RotationZ(π/2)).
	PivotSignedMax
)

// String implements fmt.Stringer.
func (p PivotStrategy) String() string {
	switch p {
	case PivotPartial:
		return "partial"
	case PivotSignedMax:
		return "signed-max"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxPasses bounds the number of full diagonal sweeps the
	// elimination engine runs before reporting ErrNotConverged.
	DefaultMaxPasses = 10

	// DefaultPivot is the pivot strategy used when WithPivot is not given.
	DefaultPivot = PivotPartial

	// DefaultConcurrency is the number of goroutines InverseAll runs at once.
	DefaultConcurrency = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxPassesInvalid   = "matrix: WithMaxPasses: passes must be >= 1"
	panicPivotInvalid       = "matrix: WithPivot: unknown pivot strategy"
	panicConcurrencyInvalid = "matrix: WithConcurrency: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxPasses   int           // >= 1; DefaultMaxPasses
	pivot       PivotStrategy // DefaultPivot
	concurrency int           // >= 1; DefaultConcurrency (InverseAll only)
}

// WithMaxPasses sets the pass budget of the elimination engine.
// Implementation:
//   - Stage 1: validate n ≥ 1.
//   - Stage 2: return a setter that writes n into Options.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Notes:
//   - Most well-conditioned affine transforms converge in one or two passes;
//     the budget only matters for inputs that keep perturbing each other
//     under PivotSignedMax.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *Options) { o.maxPasses = n }
}

// WithPivot selects the pivot strategy (PivotPartial or PivotSignedMax).
// Panics on any other value.
func WithPivot(p PivotStrategy) Option {
	if p != PivotPartial && p != PivotSignedMax {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// WithConcurrency bounds the number of goroutines used by InverseAll.
// Panics when n < 1. Ignored by single-matrix operations.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// defaultOptions returns the zero-configuration snapshot.
func defaultOptions() Options {
	return Options{
		maxPasses:   DefaultMaxPasses,
		pivot:       DefaultPivot,
		concurrency: DefaultConcurrency,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
