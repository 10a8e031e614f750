// SPDX-License-Identifier: MIT

package matrix

import "math"

// Det computes the determinant of a square matrix by Gaussian elimination
// with partial pivoting.
// Implementation:
//   - Stage 1: ValidateSquare(m). 1×1 short-circuits to its single element.
//   - Stage 2: Copy m into a flat working buffer (m itself is untouched).
//   - Stage 3: For each column k pick the row p ≥ k with the largest |W[p,k]|,
//     swap it into row k (flipping the sign), and eliminate below it.
//   - Stage 4: det = sign × Π W[k,k].
//
// Behavior highlights:
//   - A zero pivot with a non-zero entry further down is handled by the swap,
//     never by dividing by zero.
//   - If the best candidate satisfies |W[p,k]| ≤ eps·max|A|, the matrix is
//     singular: Det returns exactly 0 and stops eliminating.
//   - Zero multipliers are not skipped, so with WithNoValidateNaNInf a NaN or
//     Inf anywhere reaches the result (0·Inf = NaN).
//
// Inputs:
//   - m   : square Matrix (n×n).
//   - opts: WithPivotTolerance(eps); default eps = 0 (exact zero test).
//
// Returns:
//   - float64: the determinant, unrounded.
//
// Errors:
//   - ErrNilMatrix, *NotSquareError with Op "Det".
//
// Determinism:
//   - Ties in pivot magnitude keep the topmost row (strict > comparison).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	w, err := readAll(m, opDet)
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return w[0], nil
	}

	// 0·Inf would poison the comparison, so the exact test skips maxAbs.
	var tol float64
	if o.pivotEps > 0 {
		tol = o.pivotEps * maxAbs(w)
	}
	sign := 1.0
	var (
		i, j, k, p   int
		best, a      float64
		pivot, f     float64
		rowK, rowI   int
		prod         = 1.0
		tmp          float64
		pivotRowBase int
	)
	for k = 0; k < n; k++ {
		// Pivot search over rows k..n-1 in column k.
		p, best = k, math.Abs(w[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(w[i*n+k]); a > best {
				p, best = i, a
			}
		}
		// Whole candidate column is (numerically) zero: singular.
		if best <= tol {
			return 0, nil
		}

		if p != k {
			rowK, rowI = k*n, p*n
			for j = k; j < n; j++ {
				tmp = w[rowK+j]
				w[rowK+j] = w[rowI+j]
				w[rowI+j] = tmp
			}
			sign = -sign
		}

		pivotRowBase = k * n
		pivot = w[pivotRowBase+k]
		prod *= pivot

		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = w[rowI+k] / pivot
			w[rowI+k] = 0
			for j = k + 1; j < n; j++ {
				w[rowI+j] -= f * w[pivotRowBase+j]
			}
		}
	}

	return sign * prod, nil
}

// maxAbs returns max |v| over buf (NaN entries are ignored).
func maxAbs(buf []float64) float64 {
	var mx float64
	for _, v := range buf {
		if a := math.Abs(v); a > mx {
			mx = a
		}
	}

	return mx
}
