// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Add, Sub, Mul and Transpose.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Scenario(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, sum)
}

func TestSub_Succeeds(t *testing.T) {
	a := MustFromRows(t, [][]float64{{5, 4}, {3, 2}, {1, 0}})
	b := MustFromRows(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 3}, {2, 1}, {0, -1}}, diff)
}

func TestAddSub_ElementwiseAndRoundTrip(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 7, 42} {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := RandDense(t, 4, 5, seed)
			b := RandDense(t, 4, 5, seed+100)

			sum, err := matrix.Add(a, b)
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				for j := 0; j < 5; j++ {
					require.Equal(t, MustAt(t, a, i, j)+MustAt(t, b, i, j), MustAt(t, sum, i, j))
				}
			}

			back, err := matrix.Sub(sum, b)
			require.NoError(t, err)
			RequireClose(t, a, back, 0, 1e-12)
		})
	}
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	for name, op := range map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add": matrix.Add,
		"Sub": matrix.Sub,
	} {
		res, err := op(a, b)
		require.Nil(t, res, name)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)

		var dm *matrix.DimensionMismatchError
		require.True(t, errors.As(err, &dm), name)
		require.Equal(t, name, dm.Op)
		require.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, dm.Left)
		require.Equal(t, matrix.Shape{Rows: 3, Cols: 2}, dm.Right)
		require.Equal(t, name+": matrix: dimension mismatch: 2x2 and 3x2", err.Error())
	}
}

func TestMul_Scenario(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, prod)
}

func TestMul_RectangularShapes(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})       // 2×3
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, ab)

	ba, err := matrix.Mul(b, a)
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 3, Cols: 3}, ba.Shape())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})       // 2×2

	res, err := matrix.Mul(a, b)
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var dm *matrix.DimensionMismatchError
	require.ErrorAs(t, err, &dm)
	require.Equal(t, "Mul", dm.Op)
	require.Equal(t, "2x3", dm.Left.String())
	require.Equal(t, "2x2", dm.Right.String())
}

func TestMul_Associative(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 3, 4, 11)
	b := RandDense(t, 4, 2, 12)
	c := RandDense(t, 2, 5, 13)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	RequireClose(t, left, right, 1e-12, 1e-12)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	a := RandDense(t, 3, 3, 5)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
	require.True(t, matrix.Equal(a, right))
}

func TestTranspose_Scenario(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	for _, shape := range []matrix.Shape{{Rows: 1, Cols: 1}, {Rows: 1, Cols: 7}, {Rows: 5, Cols: 2}, {Rows: 4, Cols: 4}} {
		a := RandDense(t, shape.Rows, shape.Cols, int64(shape.Rows*10+shape.Cols))
		tr, err := matrix.Transpose(a)
		require.NoError(t, err)
		require.Equal(t, matrix.Shape{Rows: shape.Cols, Cols: shape.Rows}, tr.Shape())

		back, err := matrix.Transpose(tr)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, back), "shape %s", shape)
	}
}

func TestTranspose_Nil(t *testing.T) {
	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense
	_, err = matrix.Transpose(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestKernels_NilOperands(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1}})

	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernels_FallbackMatchesFastPath hides the concrete type of one operand
// so the At-based path runs, and checks it against the *Dense path.
func TestKernels_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 4, 4, 21)
	b := RandDense(t, 4, 4, 22)

	binary := map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add": matrix.Add,
		"Sub": matrix.Sub,
		"Mul": matrix.Mul,
	}
	for name, op := range binary {
		fast, err := op(a, b)
		require.NoError(t, err, name)
		slow, err := op(hide{a}, b)
		require.NoError(t, err, name)
		RequireClose(t, fast, slow, 0, 1e-15)
	}

	fast, err := matrix.Transpose(a)
	require.NoError(t, err)
	slow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

func TestKernels_DoNotMutateOperands(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	a := MustFromRows(t, rows)
	b := MustFromRows(t, [][]float64{{0, 1}, {1, 0}})
	snapshot := a.RawRowMajor()

	_, err := matrix.Add(a, b)
	require.NoError(t, err)
	_, err = matrix.Mul(a, b)
	require.NoError(t, err)
	_, err = matrix.Transpose(a)
	require.NoError(t, err)
	_, err = matrix.Det(a)
	require.NoError(t, err)

	require.Equal(t, snapshot, a.RawRowMajor())
}
