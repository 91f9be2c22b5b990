// Package matrix offers fixed-size 4x4 float32 matrix algebra for building
// and inverting model/view transforms.
//
// The matrix package provides:
//
//   - Mat4, a row-major value type with bounds-checked At/Set and row/column
//     extraction into vector.Vec3.
//   - Add, Sub, Scale, Mul, Transpose and exact Equal.
//   - Transform builders: Identity, Translation, RotationZ and the in-place
//     RotateAboutPoint. Points are row vectors ([x y z 1]·M), so translations
//     live in row 3.
//   - GaussJordan, an elimination engine that reduces a system matrix to the
//     identity while co-transforming an accumulator, with selectable pivoting
//     (WithPivot) and a bounded pass budget (WithMaxPasses). Failures are
//     explicit: ErrSingular, ErrNotConverged.
//   - Inverse / Inverted / Solve built on the engine, and InverseAll for
//     concurrent batches.
//   - Fprint / Print, a plain-text dump for debugging.
//
// All single-matrix operations are synchronous and allocation-free.
// Logging is off by default; see SetLogger.
package matrix
