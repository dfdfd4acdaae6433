// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSymmetryTolerance is the relative tolerance used when a Symmetric
	// matrix is built from a full row-major source: src[i][j] must match src[j][i].
	DefaultSymmetryTolerance = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on construction and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithSymmetryTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	symTol         float64 // >= 0; DefaultSymmetryTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// SymmetryTolerance returns the resolved relative symmetry tolerance.
func (o Options) SymmetryTolerance() float64 { return o.symTol }

// ValidateNaNInf reports whether NaN/Inf values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithSymmetryTolerance sets the relative tolerance for symmetric-source validation.
// Panics on negative, NaN or Inf values (programmer error).
func WithSymmetryTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.symTol = tol }
}

// WithValidateNaNInf enables rejection of NaN/±Inf in constructors and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/±Inf rejection.
// Useful for ingesting sentinel-laden data; arithmetic never checks either way.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts over the defaults. Exposed for sibling packages
// (decomp) that forward matrix options.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{
		symTol:         DefaultSymmetryTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options over defaults in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
