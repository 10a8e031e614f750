// Package matrix is a small dense linear-algebra kernel.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major float64 container built from
//     rectangular rows (NewFromRows) or as zero/identity/diagonal fixtures.
//   - Element-wise Add and Sub, Mul (standard O(r·n·c) product) and Transpose,
//     each returning a freshly allocated *Dense.
//   - Det, the determinant by Gaussian elimination with partial pivoting.
//   - Equal and AllClose for value-wise comparison.
//
// Every precondition is checked before any result is allocated. Failures are
// reported as typed errors (*ShapeError, *DimensionMismatchError,
// *NotSquareError) that also match the package sentinels through errors.Is.
//
// Operations never mutate their operands, so matrices may be shared freely
// between goroutines without synchronization.
package matrix
