package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine/matrix"
	"github.com/katalvlaran/affine/vector"
)

func TestInverse_Identity(t *testing.T) {
	m := matrix.Identity()
	require.NoError(t, matrix.Inverse(&m))
	requireMatEqual(t, matrix.Identity(), m)
}

func TestInverse_Translation(t *testing.T) {
	m := matrix.Translation(vector.New(1, 2, 3))
	require.NoError(t, matrix.Inverse(&m))
	requireMatEqual(t, matrix.Translation(vector.New(-1, -2, -3)), m)
}

// TestInverse_ProductIsIdentity checks A·A⁻¹ ≈ I and A⁻¹·A ≈ I.
func TestInverse_ProductIsIdentity(t *testing.T) {
	for name, a := range invertible() {
		t.Run(name, func(t *testing.T) {
			inv, err := matrix.Inverted(a)
			require.NoError(t, err)
			requireMatApprox(t, matrix.Identity(), matrix.Mul(a, inv), approxEps)
			requireMatApprox(t, matrix.Identity(), matrix.Mul(inv, a), approxEps)
		})
	}
}

// TestInverse_DenseRandom checks A·A⁻¹ ≈ I and A⁻¹·A ≈ I on fully dense
// inputs. The tolerance scales with ‖A‖∞·‖A⁻¹‖∞, the amplification float32
// rounding can undergo on the way.
func TestInverse_DenseRandom(t *testing.T) {
	for seed := int64(1); seed <= 32; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := randomMat4(seed)
			inv, err := matrix.Inverted(a)
			require.NoError(t, err)

			eps := float32(matrix.Size) * 0x1p-23 * normInf(a) * normInf(inv)
			requireMatApprox(t, matrix.Identity(), matrix.Mul(a, inv), eps)
			requireMatApprox(t, matrix.Identity(), matrix.Mul(inv, a), eps)
		})
	}
}

// TestInverse_Involution checks inverse(inverse(A)) ≈ A.
func TestInverse_Involution(t *testing.T) {
	for name, a := range invertible() {
		t.Run(name, func(t *testing.T) {
			m := a
			require.NoError(t, matrix.Inverse(&m))
			require.NoError(t, matrix.Inverse(&m))
			requireMatApprox(t, a, m, approxEps)
		})
	}
}

func TestInverse_RotationIsTranspose(t *testing.T) {
	r := matrix.RotationZ(0.3)
	inv, err := matrix.Inverted(r)
	require.NoError(t, err)
	requireMatApprox(t, matrix.Transposed(r), inv, approxEps)
}

// TestInverse_UndoesRotateAboutPoint composes a model transform and checks
// that its inverse maps transformed points back.
func TestInverse_UndoesRotateAboutPoint(t *testing.T) {
	m := matrix.Translation(vector.New(4, -1, 2))
	matrix.RotateAboutPoint(&m, vector.New(2, 2, 0), 0.8)

	inv, err := matrix.Inverted(m)
	require.NoError(t, err)

	p := vector.New(3, 7, -1)
	back := matrix.TransformPoint(inv, matrix.TransformPoint(m, p))
	require.InDelta(t, p.X, back.X, 1e-4)
	require.InDelta(t, p.Y, back.Y, 1e-4)
	require.InDelta(t, p.Z, back.Z, 1e-4)
}

// TestInverse_SingularLeavesInput: a singular input reports an error and
// the caller's matrix is not replaced by a partially reduced one.
func TestInverse_SingularLeavesInput(t *testing.T) {
	for name, m := range map[string]matrix.Mat4{
		"zero":          {},
		"duplicate-row": {{1, 2, 3, 4}, {2, 4, 6, 8}, {1, 1, 1, 1}, {0, 0, 0, 1}},
		"zero-column":   {{0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}, {0, 1, 1, 1}},
		"sequential":    sequential(),
		"rank-2-block":  {{.1, .2, .3, 0}, {.4, .5, .6, 0}, {.7, .8, .9, 0}, {0, 0, 0, 1}},
	} {
		t.Run(name, func(t *testing.T) {
			before := m
			err := matrix.Inverse(&m)
			require.Error(t, err)
			require.True(t, errors.Is(err, matrix.ErrSingular), "got %v", err)
			require.Contains(t, err.Error(), "Inverse")
			requireMatEqual(t, before, m)

			_, err = matrix.Inverted(before)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverse_NotConverged(t *testing.T) {
	m := matrix.RotationZ(1)
	before := m

	err := matrix.Inverse(&m, matrix.WithMaxPasses(1))
	require.ErrorIs(t, err, matrix.ErrNotConverged)
	requireMatEqual(t, before, m)
}

func TestInverse_LegacyPivot(t *testing.T) {
	r := matrix.RotationZ(-0.5)
	inv, err := matrix.Inverted(r, matrix.WithPivot(matrix.PivotSignedMax))
	require.NoError(t, err)
	requireMatApprox(t, matrix.Identity(), matrix.Mul(r, inv), approxEps)

	_, err = matrix.Inverted(matrix.Translation(vector.New(1, 2, 3)), matrix.WithPivot(matrix.PivotSignedMax))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Nil(t *testing.T) {
	require.ErrorIs(t, matrix.Inverse(nil), matrix.ErrNilMatrix)
}
