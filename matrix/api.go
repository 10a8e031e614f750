// SPDX-License-Identifier: MIT
// Package matrix: convenience constructors and value comparisons.
//
// Purpose:
//   - Friendly constructors for common fixtures (identity, diagonal).
//   - Value-wise equality (exact and tolerance-based); matrices have no
//     identity beyond their values.

package matrix

import (
	"fmt"
	"math"
)

// NewIdentity returns an n×n identity matrix.
// Errors: ErrBadShape when n ≤ 0. Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewDiagonal returns a square matrix with diag on its main diagonal.
// Errors: ErrBadShape when diag is empty. Complexity: O(n²).
func NewDiagonal(diag []float64) (*Dense, error) {
	n := len(diag)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range diag {
		m.data[i*n+i] = v
	}

	return m, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (so NaN != NaN). Nil operands are never equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	ok, err := compare(a, b, func(x, y float64) bool { return x == y })

	return err == nil && ok
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	return compare(a, b, func(x, y float64) bool {
		if x == y { // covers equal infinities
			return true
		}

		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
}

// compare runs eq over every element pair in i→j order, stopping at the first miss.
func compare(a, b Matrix, eq func(x, y float64) bool) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("compare", err)
	}
	rows, cols := a.Rows(), a.Cols()

	// Dense fast-path: flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !eq(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var (
		av, bv float64
		err    error
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("compare: At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("compare: At(%d,%d): %w", i, j, err)
			}
			if !eq(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
