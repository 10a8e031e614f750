// SPDX-License-Identifier: MIT

// Package format renders kernel results for people: fixed precision,
// right-aligned columns, and no "-0.00" noise from values that round to zero.
package format

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// DefaultPrecision is the number of digits printed after the decimal point.
const DefaultPrecision = 2

// maxPrecision bounds WithPrecision; beyond this float64 has no digits left to show.
const maxPrecision = 15

const panicPrecisionInvalid = "format: WithPrecision: precision must be within [0, 15]"

// Option mutates Options.
type Option func(*Options)

// Options holds the effective rendering configuration.
type Options struct {
	precision int
}

// WithPrecision sets the digits after the decimal point.
// Panics when p is outside [0, 15] (programmer error).
func WithPrecision(p int) Option {
	if p < 0 || p > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Value formats v at fixed precision. Values that round to zero print as
// zero without a sign; NaN and ±Inf print as "nan", "inf", "-inf".
func Value(v float64, opts ...Option) string {
	return value(v, gatherOptions(opts...).precision)
}

func value(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}

// Matrix writes a blank line, "name:" and then the rows of m, e.g.
//
//	A + B:
//	[[ 6.00  8.00]
//	 [10.00 12.00]]
//
// Each column is padded to the widest entry in the whole matrix.
func Matrix(w io.Writer, name string, m *matrix.Dense, opts ...Option) error {
	o := gatherOptions(opts...)

	cells := make([]string, 0, m.Rows()*m.Cols())
	width := 0
	m.Do(func(_, _ int, v float64) bool {
		s := value(v, o.precision)
		if len(s) > width {
			width = len(s)
		}
		cells = append(cells, s)
		return true
	})

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", name)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		switch i {
		case 0:
			b.WriteString("[[")
		default:
			b.WriteString(" [")
		}
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, cells[i*cols+j])
		}
		if i == rows-1 {
			b.WriteString("]]\n")
		} else {
			b.WriteString("]\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Scalar writes "label: value" on its own line.
func Scalar(w io.Writer, label string, v float64, opts ...Option) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", label, value(v, gatherOptions(opts...).precision))

	return err
}
