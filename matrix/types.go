// SPDX-License-Identifier: MIT

// Package matrix: result types of the elimination engine.
// This file contains ONLY the Report type; errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Report describes how an elimination run went. It is returned alongside
// the error of GaussJordan and Solve so callers can tell a converged run
// from one that stopped at the pass bound, and can see corrections that were
// skipped because their pivot was zero.
type Report struct {
	// Passes is the number of full diagonal sweeps executed (0 when the
	// system matrix was already the identity).
	Passes int

	// Swaps counts row exchanges performed by pivot selection.
	Swaps int

	// SkippedCorrections counts column/row corrections left undone because
	// the pivot they would divide by was exactly zero. A non-zero count on
	// a converged run is harmless; on a failed run it usually points at the
	// rank-deficient column.
	SkippedCorrections int

	// Converged is true iff the system matrix reached the exact identity.
	Converged bool
}

// String implements fmt.Stringer.
func (r Report) String() string {
	return fmt.Sprintf("passes=%d swaps=%d skipped=%d converged=%t",
		r.Passes, r.Swaps, r.SkippedCorrections, r.Converged)
}
