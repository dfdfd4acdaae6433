// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf/denseErrorf
// (fmt.Errorf with %w), so callers keep matching with errors.Is.
//
// ERROR CLASSES:
// construction/consistency -> bounds -> write protection -> singularity
// -> arithmetic policy -> formats.

var (
	// ErrInvalidDimensions indicates that requested matrix or vector dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Packed layouts (Symmetric, LowerTriangular, UpperTriangular) are square only.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a source
	// slice whose length does not match the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a source for a Symmetric matrix violated symmetry
	// within the configured relative tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNotTriangular signals that the structurally-zero half of a triangular
	// source contained a non-zero entry.
	ErrNotTriangular = errors.New("matrix: forbidden triangle is not zero")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrWriteProtected is returned when writing a structurally-fixed zero cell
	// of a triangular layout.
	ErrWriteProtected = errors.New("matrix: cell is write-protected")

	// ErrSingular is returned when the determinant is exactly zero on Inverse.
	// Decomposition failures (rank mismatch, not positive definite) wrap it.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivideByZero is returned when dividing by an exact zero scalar or
	// normalizing a zero-length vector.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, construction).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrParse is returned by the text parsers on malformed input.
	ErrParse = errors.New("matrix: malformed text")

	// ErrRepresentation is returned when an operation requires a Cartesian vector
	// but received a Polar one (or vice versa).
	ErrRepresentation = errors.New("matrix: unsupported vector representation")

	// ErrUnknownLayout is returned when a Layout value is outside the defined set.
	ErrUnknownLayout = errors.New("matrix: unknown storage layout")
)
