// Package matcalc is a small interactive calculator for dense matrices.
//
// Layout:
//
//	matrix/          — the kernel: Dense container, Add, Sub, Mul, Transpose, Det
//	internal/format/ — fixed-precision rendering of matrices and scalars
//	internal/cli/    — the interactive menu loop over stdin/stdout
//	cmd/matcalc/     — the binary
//	examples/        — a runnable walkthrough of partial pivoting
//
// Quick start:
//
//	go run ./cmd/matcalc
package matcalc
