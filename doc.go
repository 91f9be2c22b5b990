// Package affine is a small toolkit for 4x4 homogeneous transforms as used by
// 2D/3D rendering pipelines: build a model transform, combine it with others,
// and invert it when mapping back from view space.
//
// What is inside:
//
//	vector/ — Vec3, the 3-component value used for offsets and pivots
//	matrix/ — Mat4 arithmetic, transform builders, Gauss-Jordan elimination,
//	          inverse and batch inverse
//
// Quick example (row-vector convention, p' = p·M):
//
//	m := matrix.Translation(vector.New(10, 0, 0))
//	matrix.RotateAboutPoint(&m, vector.New(5, 5, 0), math.Pi/2)
//	inv, err := matrix.Inverted(m)
//
// Everything is pure Go with no cgo; interop with golang.org/x/image/math/f32
// is provided for both vectors and matrices.
//
//	go get github.com/katalvlaran/affine
package affine
