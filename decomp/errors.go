// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrRankMismatch is returned by NewLU when the best normalized pivot of a step,
	// or the final pivot, is exactly zero.
	ErrRankMismatch = fmt.Errorf("decomp: rank mismatch: %w", matrix.ErrSingular)

	// ErrNotPositiveDefinite is returned by NewCholesky when a diagonal term
	// before the square root is ≤ 0.
	ErrNotPositiveDefinite = fmt.Errorf("decomp: matrix is not positive definite: %w", matrix.ErrSingular)
)

const (
	opLU            = "LU"
	opLUSolve       = "LU.Solve"
	opLUDet         = "LU.Det"
	opCholesky      = "Cholesky"
	opCholeskySolve = "Cholesky.Solve"
)

// decompErrorf wraps err with an operation tag, preserving it for errors.Is.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
