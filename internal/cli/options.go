// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log"

	"github.com/katalvlaran/matcalc/internal/format"
	"github.com/katalvlaran/matcalc/matrix"
)

// Option configures a Session.
type Option func(*Options)

// Options holds the effective session configuration.
type Options struct {
	formatOpts []format.Option
	matrixOpts []matrix.Option
	logger     *log.Logger
}

// WithPrecision sets the digits printed after the decimal point.
// Panics on values outside [0, 15], like format.WithPrecision.
func WithPrecision(p int) Option {
	fo := format.WithPrecision(p)

	return func(o *Options) { o.formatOpts = append(o.formatOpts, fo) }
}

// WithPivotTolerance forwards a relative pivot tolerance to matrix.Det.
// Panics on negative, NaN or infinite eps, like matrix.WithPivotTolerance.
func WithPivotTolerance(eps float64) Option {
	mo := matrix.WithPivotTolerance(eps)

	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, mo) }
}

// WithLogger sets the diagnostics logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	return o
}
