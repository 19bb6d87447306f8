// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of Dense.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultSymmetryRTol is the relative tolerance of the allclose-style
	// symmetry check used by IsSymmetric (|a-b| ≤ atol + rtol*|b|).
	DefaultSymmetryRTol = 1e-5

	// DefaultSymmetryATol is the absolute tolerance of the allclose-style
	// symmetry check used by IsSymmetric.
	DefaultSymmetryATol = 1e-6
)

const (
	panicToleranceInvalid = "matrix: WithSymmetryTolerance: rtol and atol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	rtol           float64 // DefaultSymmetryRTol
	atol           float64 // DefaultSymmetryATol
}

// WithNoValidateNaNInf disables finite-value validation in Set
// (DefaultValidateNaNInf is on).
// Useful for scratch buffers that are sanitized afterwards.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSymmetryTolerance sets the (rtol, atol) pair used by IsSymmetric.
// Panics when either value is negative, NaN or Inf (programmer error).
func WithSymmetryTolerance(rtol, atol float64) Option {
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		rtol:           DefaultSymmetryRTol,
		atol:           DefaultSymmetryATol,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
