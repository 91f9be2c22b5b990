// SPDX-License-Identifier: MIT

package matrix

// Inverse replaces m with m⁻¹.
//
// Implementation:
//   - Stage 1: copy m into a working system matrix, build an identity accumulator.
//   - Stage 2: run GaussJordan(work, acc).
//   - Stage 3: on success overwrite m with acc.
//
// Behavior highlights:
//   - On any error m is left exactly as it was; the partially reduced working
//     copies are discarded.
//   - A singular input (e.g. the zero matrix) reports ErrSingular, an input
//     that cycles without reaching the identity reports ErrNotConverged.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSingular, ErrNotConverged, each wrapped
//     with the "Inverse" tag.
//
// Complexity:
//   - Same as GaussJordan.
func Inverse(m *Mat4, opts ...Option) error {
	if m == nil {
		return matrixErrorf(opInverse, ErrNilMatrix)
	}
	work := *m
	acc := Identity()
	if _, err := GaussJordan(&work, &acc, opts...); err != nil {
		return matrixErrorf(opInverse, err)
	}
	*m = acc

	return nil
}

// Inverted returns m⁻¹ without touching m. See Inverse.
func Inverted(m Mat4, opts ...Option) (Mat4, error) {
	if err := Inverse(&m, opts...); err != nil {
		return Mat4{}, err
	}

	return m, nil
}

// Solve returns X such that a·X = b, computed by eliminating a against b.
// Neither input is modified. The Report is returned on success and failure.
func Solve(a, b Mat4, opts ...Option) (Mat4, Report, error) {
	report, err := GaussJordan(&a, &b, opts...)
	if err != nil {
		return Mat4{}, report, matrixErrorf(opSolve, err)
	}

	return b, report, nil
}
