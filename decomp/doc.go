// SPDX-License-Identifier: MIT

// Package decomp provides LU and Cholesky decompositions of matrix.Matrix values
// together with the triangular solves built on them.
//
//   - LU: Gaussian elimination with scaled partial pivoting for M×K sources, M ≥ K.
//     The factors are K×K LowerTriangular (unit diagonal) and UpperTriangular matrices.
//   - Cholesky: C·Cᵗ factorization of a symmetric positive-definite K×K source; C is
//     LowerTriangular and Solve uses transposed access instead of materializing Cᵗ.
//
// Both results copy their source and are immutable afterwards; they are safe to share
// between goroutines once constructed.
//
// Failures wrap matrix.ErrSingular, so callers may test either the specific sentinel
// (ErrRankMismatch, ErrNotPositiveDefinite) or the singularity class with errors.Is.
//
// Diagnostics (pivot choices, failing steps) are emitted at slog.LevelDebug through the
// logger supplied with WithLogger; the default logger discards everything.
package decomp
