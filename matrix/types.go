// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the Dense container and the kernels.
// This file contains ONLY the read-only Matrix interface and the Shape value;
// errors and options live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Matrix is a read-only view of a two-dimensional array of float64 values.
// There are no setters on purpose: every kernel returns a freshly allocated
// *Dense and never mutates its operands.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix (always ≥ 1).
	Rows() int

	// Cols returns the number of columns in the matrix (always ≥ 1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Shape is the (rows, cols) pair describing a Matrix's dimensions.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// ShapeOf returns the shape of m. A nil m yields the zero Shape.
func ShapeOf(m Matrix) Shape {
	if m == nil {
		return Shape{}
	}

	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// String renders the shape as "RxC", e.g. "2x3".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }
