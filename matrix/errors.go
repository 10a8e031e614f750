// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed diagnostics.
// Every kernel returns either one of these sentinels or a typed error that
// unwraps to one of them; tests MUST check via errors.Is / errors.As.
// No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Typed errors below embed their sentinel via
// Unwrap, so errors.Is(err, ErrDimensionMismatch) keeps working while
// errors.As exposes the shapes to presentation layers.

var (
	// ErrBadShape is returned when input rows are malformed (no rows, an empty
	// row, ragged rows) or a requested shape has r<=0 or c<=0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At, Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value at construction while the
	// finite-only numeric policy is active.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ShapeError describes malformed construction input.
// Row is the offending row index, or -1 when the outer sequence is empty.
type ShapeError struct {
	Row  int // offending row (-1: no rows at all)
	Want int // expected row length (column count of row 0)
	Got  int // observed row length
}

// Error implements error.
func (e *ShapeError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%v: no rows", ErrBadShape)
	case e.Got == 0:
		return fmt.Sprintf("%v: row %d is empty", ErrBadShape, e.Row)
	default:
		return fmt.Sprintf("%v: row %d has %d values, want %d", ErrBadShape, e.Row, e.Got, e.Want)
	}
}

// Unwrap exposes ErrBadShape to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrBadShape }

// DimensionMismatchError reports operands whose shapes are incompatible for
// the named operation. Op is empty when raised by a bare validator.
type DimensionMismatchError struct {
	Op    string // operation tag (opAdd, opSub, opMul) or ""
	Left  Shape  // shape of the left operand
	Right Shape  // shape of the right operand
}

// Error implements error.
func (e *DimensionMismatchError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v: %s and %s", ErrDimensionMismatch, e.Left, e.Right)
	}

	return fmt.Sprintf("%s: %v: %s and %s", e.Op, ErrDimensionMismatch, e.Left, e.Right)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// NotSquareError reports a non-square operand where a square one is required.
type NotSquareError struct {
	Op    string // operation tag (opDet) or ""
	Shape Shape  // actual shape
}

// Error implements error.
func (e *NotSquareError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v: %s", ErrNonSquare, e.Shape)
	}

	return fmt.Sprintf("%s: %v: %s", e.Op, ErrNonSquare, e.Shape)
}

// Unwrap exposes ErrNonSquare to errors.Is.
func (e *NotSquareError) Unwrap() error { return ErrNonSquare }

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Typed shape errors get the tag stamped into their Op field instead, so the
// message never carries the operation name twice.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	var dm *DimensionMismatchError
	if errors.As(err, &dm) {
		return &DimensionMismatchError{Op: tag, Left: dm.Left, Right: dm.Right}
	}
	var ns *NotSquareError
	if errors.As(err, &ns) {
		return &NotSquareError{Op: tag, Shape: ns.Shape}
	}

	return fmt.Errorf("%s: %w", tag, err)
}
