// SPDX-License-Identifier: MIT

package decomp

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// DefaultSymmetryTolerance is the relative tolerance NewCholesky uses to accept
// a non-Symmetric layout as symmetric.
const DefaultSymmetryTolerance = matrix.DefaultSymmetryTolerance

const (
	panicNilLogger        = "decomp: WithLogger: logger must be non-nil"
	panicToleranceInvalid = "decomp: WithSymmetryTolerance: tol must be finite, non-negative"
)

// Option configures a decomposition.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	logger *slog.Logger
	symTol float64
}

// WithLogger routes debug diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithSymmetryTolerance sets the relative tolerance of the symmetry check in NewCholesky.
// Panics on negative, NaN or Inf values.
func WithSymmetryTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.symTol = tol }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		logger: slog.New(slog.DiscardHandler),
		symTol: DefaultSymmetryTolerance,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
