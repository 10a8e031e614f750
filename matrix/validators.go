// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/rectangularity checks here.
//  - Return sentinels or typed shape errors WITHOUT an operation tag so that
//    kernels can tag them uniformly via matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal dimensions.
//
// Errors: ErrNilMatrix, *DimensionMismatchError.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return &DimensionMismatchError{Left: ShapeOf(a), Right: ShapeOf(b)}
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, *DimensionMismatchError.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return &DimensionMismatchError{Left: ShapeOf(a), Right: ShapeOf(b)}
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, *NotSquareError.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return &NotSquareError{Shape: ShapeOf(m)}
	}

	return nil
}

// ValidateRows checks that values is a non-empty rectangular table with
// non-empty rows, and, when finiteOnly is set, that every value is finite.
// Shape problems are reported before numeric ones, scanning rows in order.
//
// Errors: *ShapeError, ErrNaNInf (wrapped with coordinates).
// Complexity: O(rows) for shape, O(rows*cols) with finiteOnly.
func ValidateRows(values [][]float64, finiteOnly bool) error {
	if len(values) == 0 {
		return &ShapeError{Row: -1}
	}
	want := len(values[0])
	for i, row := range values {
		if len(row) == 0 || len(row) != want {
			return &ShapeError{Row: i, Want: want, Got: len(row)}
		}
	}
	if !finiteOnly {
		return nil
	}
	for i, row := range values {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("value (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}
