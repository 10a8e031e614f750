// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the relative tolerance below which a pivot
	// column is treated as all-zero by Det. Zero means an exact test, which
	// keeps singular-matrix detection deterministic in tests.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on construction.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotEps       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotTolerance sets the relative pivot tolerance used by Det.
// A pivot column is considered singular when its largest candidate magnitude
// is ≤ eps * max|A[i,j]|.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Notes:
//   - 1e-12 is a reasonable choice for double-precision data read from users.
func WithPivotTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithValidateNaNInf rejects NaN and ±Inf values at construction (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts NaN and ±Inf values at construction; they then
// propagate through arithmetic under IEEE-754 rules.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Exposed so callers (and tests) can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance returns the effective relative pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotEps }

// ValidateNaNInf reports whether finite-only validation is active.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided setters on top of defaults in order
// (last-writer-wins). Time O(k), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotEps:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
