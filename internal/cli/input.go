// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/katalvlaran/matcalc/matrix"
)

// MaxCount bounds the number of rows or columns of a typed matrix.
const MaxCount = 1000

var (
	// ErrInvalidCount is returned for a row or column count that is not an
	// integer in [1, MaxCount].
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidRowLength is returned when a row has the wrong number of values.
	ErrInvalidRowLength = errors.New("invalid row length")

	// ErrInvalidNumber is returned when a token does not parse as a float.
	ErrInvalidNumber = errors.New("invalid number")
)

// prompter writes prompts to out and reads answers line by line from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints prompt and returns the next input line without its line ending.
// A final line without a newline is still returned; io.EOF means no input was left.
func (p *prompter) ask(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// askCount reads an integer in [1, MaxCount].
func (p *prompter) askCount(prompt string) (int, error) {
	line, err := p.ask(prompt)
	if err != nil {
		return 0, err
	}
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, line)
	}
	if n > MaxCount {
		return 0, fmt.Errorf("%w: %q exceeds %d", ErrInvalidCount, line, MaxCount)
	}

	return n, nil
}

// readMatrix prompts for a shape and then for rows of space-separated numbers.
func (p *prompter) readMatrix(opts ...matrix.Option) (*matrix.Dense, error) {
	rows, err := p.askCount("Enter number of rows: ")
	if err != nil {
		return nil, err
	}
	cols, err := p.askCount("Enter number of columns: ")
	if err != nil {
		return nil, err
	}
	if _, err = fmt.Fprintf(p.out, "Enter %d rows of %d space-separated numbers:\n", rows, cols); err != nil {
		return nil, err
	}

	// Rows are appended as they arrive; nothing is sized from the counts.
	var values [][]float64
	for i := 0; i < rows; i++ {
		line, err := p.ask("")
		if err != nil {
			return nil, err
		}
		row, err := ParseRow(line, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		values = append(values, row)
	}

	return matrix.NewFromRows(values, opts...)
}

// ParseRow splits line into shell-style tokens (quotes and # comments are
// honoured) and parses exactly want floats.
func ParseRow(line string, want int) ([]float64, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if len(tokens) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrInvalidRowLength, len(tokens), want)
	}

	row := make([]float64, want)
	for j, tok := range tokens {
		if row[j], err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
		}
	}

	return row, nil
}
