// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication and transpose.
// All functions perform strict fail-fast validation BEFORE allocating a
// result and return typed errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path (flat slices) and a generic path
//     (At-based, fixed i→j order). Both produce bitwise-identical results.
//   - Inputs are never mutated; results are always freshly allocated.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opDet       = "Det"
)

// readAll materializes any Matrix into a row-major buffer.
// For *Dense it is a plain copy; otherwise At is called in i→j order.
func readAll(m Matrix, opTag string) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.RawRowMajor(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v
		}
	}

	return buf, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b), before any allocation.
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, *DimensionMismatchError (tagged with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - sign*b is exact for sign = ±1, so a + (-1)*b == a - b bit for bit.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	out := make([]float64, rows*cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range out { // deterministic 0..n-1
				out[idx] = da.data[idx] + sign*db.data[idx]
			}

			return newDenseFrom(rows, cols, out), nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i*cols+j] = av + sign*bv
		}
	}

	return newDenseFrom(rows, cols, out), nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand with the same shape as a.
//
// Returns:
//   - *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), *DimensionMismatchError with Op "Add" (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), *DimensionMismatchError with Op "Sub" (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - Each C[i,j] is accumulated left-to-right over k in both paths,
//     so the two paths agree bit for bit.
//   - No zero-skipping: 0*Inf must still yield NaN when NaN/Inf are admitted.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), *DimensionMismatchError with Op "Mul" (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - No blocking or Strassen here; the intended scale is a handful of rows typed by a person.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, aRows*bCols)
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						out[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return newDenseFrom(aRows, bCols, out), nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			out[i*bCols+j] = current
		}
	}

	return newDenseFrom(aRows, bCols, out), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix only; every valid Matrix has a transpose.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → out[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				out[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return newDenseFrom(cols, rows, out), nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[j*rows+i] = v
		}
	}

	return newDenseFrom(cols, rows, out), nil
}
