// SPDX-License-Identifier: MIT

// Package cli is the interactive front end of matcalc: it prompts for an
// operation and its operands, calls the matrix kernel and prints the result.
// Errors are reported to the user and never end the session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matcalc/internal/format"
	"github.com/katalvlaran/matcalc/matrix"
)

const menu = `Matrix Operations Tool
1. Addition
2. Subtraction
3. Multiplication
4. Transpose
5. Determinant
`

// binaryOp describes one of the two-operand menu entries.
type binaryOp struct {
	name     string // kernel name, for logs
	title    string // result heading
	mismatch string // message for incompatible shapes
	apply    func(a, b matrix.Matrix) (*matrix.Dense, error)
}

var binaryOps = map[string]binaryOp{
	"1": {"Add", "A + B", "Matrices must have same dimensions for addition", matrix.Add},
	"2": {"Sub", "A - B", "Matrices must have same dimensions for subtraction", matrix.Sub},
	"3": {"Mul", "A x B", "Invalid dimensions for multiplication", matrix.Mul},
}

// Session runs the menu loop over one input and one output stream.
// A Session is not safe for concurrent use.
type Session struct {
	p    *prompter
	out  io.Writer
	opts Options
}

// NewSession returns a Session reading answers from in and writing to out.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	return &Session{
		p:    &prompter{in: bufio.NewReader(in), out: out},
		out:  out,
		opts: gatherOptions(opts...),
	}
}

// Run performs operations until the user declines another one, input ends,
// or ctx is cancelled. Only output failures and unexpected read errors are
// returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			s.opts.logger.Printf("stopping: %v", ctx.Err())
			return nil
		}
		if err := s.RunOnce(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		answer, err := s.p.ask("\nAnother operation? (y/n): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return nil
		}
	}
}

// RunOnce shows the menu and performs a single operation.
// Input and kernel errors are printed and swallowed; io.EOF and write
// errors are returned.
func (s *Session) RunOnce() error {
	if _, err := io.WriteString(s.out, menu); err != nil {
		return err
	}
	choice, err := s.p.ask("Choose operation (1-5): ")
	if err != nil {
		return err
	}
	choice = strings.TrimSpace(choice)

	if op, ok := binaryOps[choice]; ok {
		return s.binary(op)
	}
	switch choice {
	case "4":
		return s.transpose()
	case "5":
		return s.determinant()
	default:
		s.opts.logger.Printf("invalid choice %q", choice)
		_, err = fmt.Fprintln(s.out, "Invalid choice")
		return err
	}
}

func (s *Session) binary(op binaryOp) error {
	a, err := s.operand("Enter Matrix A:")
	if a == nil {
		return err
	}
	b, err := s.operand("Enter Matrix B:")
	if b == nil {
		return err
	}

	s.opts.logger.Printf("%s %s %s", op.name, a.Shape(), b.Shape())
	res, err := op.apply(a, b)
	if err != nil {
		var dm *matrix.DimensionMismatchError
		if errors.As(err, &dm) {
			return s.reportf(err, "%s (A is %s, B is %s)", op.mismatch, dm.Left, dm.Right)
		}
		return s.reportf(err, "%v", err)
	}

	return format.Matrix(s.out, op.title, res, s.opts.formatOpts...)
}

func (s *Session) transpose() error {
	m, err := s.operand("Enter Matrix:")
	if m == nil {
		return err
	}

	s.opts.logger.Printf("Transpose %s", m.Shape())
	res, err := matrix.Transpose(m)
	if err != nil {
		return s.reportf(err, "%v", err)
	}

	return format.Matrix(s.out, "Transpose", res, s.opts.formatOpts...)
}

func (s *Session) determinant() error {
	m, err := s.operand("Enter square Matrix:")
	if m == nil {
		return err
	}

	s.opts.logger.Printf("Det %s", m.Shape())
	d, err := matrix.Det(m, s.opts.matrixOpts...)
	if err != nil {
		var ns *matrix.NotSquareError
		if errors.As(err, &ns) {
			return s.reportf(err, "Matrix must be square for determinant (got %s)", ns.Shape)
		}
		return s.reportf(err, "%v", err)
	}

	return format.Scalar(s.out, "Determinant", d, s.opts.formatOpts...)
}

// operand prints heading and reads one matrix. A nil matrix with a nil
// error means an input error was already reported to the user.
func (s *Session) operand(heading string) (*matrix.Dense, error) {
	if _, err := fmt.Fprintln(s.out, heading); err != nil {
		return nil, err
	}
	m, err := s.p.readMatrix(s.opts.matrixOpts...)
	if err == nil {
		return m, nil
	}
	if isInputError(err) {
		return nil, s.reportf(err, "%v", err)
	}

	return nil, err
}

// reportf prints "Error: <msg>" and logs the underlying cause.
func (s *Session) reportf(cause error, msg string, args ...any) error {
	s.opts.logger.Printf("error: %v", cause)
	_, err := fmt.Fprintf(s.out, "Error: "+msg+"\n", args...)

	return err
}

// isInputError reports whether err came from what the user typed rather
// than from the streams themselves.
func isInputError(err error) bool {
	for _, target := range []error{
		ErrInvalidCount, ErrInvalidRowLength, ErrInvalidNumber,
		matrix.ErrBadShape, matrix.ErrNaNInf,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
