package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleDet shows that a zero leading pivot is handled by row exchange.
func ExampleDet() {
	m, _ := matrix.NewFromRows([][]float64{{0, 2, 0}, {1, 0, 0}, {0, 0, 3}})

	d, _ := matrix.Det(m)
	fmt.Println(d)

	// Output:
	// -6
}

// ExampleDimensionMismatchError inspects the shapes carried by the error.
func ExampleDimensionMismatchError() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	_, err := matrix.Mul(a, b)
	var dm *matrix.DimensionMismatchError
	if errors.As(err, &dm) {
		fmt.Println(dm.Op, dm.Left, dm.Right)
	}
	fmt.Println(err)

	// Output:
	// Mul 2x3 2x2
	// Mul: matrix: dimension mismatch: 2x3 and 2x2
}
