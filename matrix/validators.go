// SPDX-License-Identifier: MIT

// Package matrix - shared validators.
//
// One source of truth for nil/shape/symmetry guards used by the kernels here and by
// decomp. Validators return sentinel errors tagged with the validator name; call
// sites add their own operation tag on top.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

const (
	opValidateShaped    = "ValidateShaped"
	opValidateSquare    = "ValidateSquare"
	opValidateSymmetric = "ValidateSymmetric"
	opValidateVector    = "ValidateVector"
)

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShaped ensures m is non-nil and was built by a constructor.
// A zero-value Matrix has no shape and no storage.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func ValidateShaped[T Float](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf(opValidateShaped, ErrNilMatrix)
	}
	if m.r <= 0 || m.c <= 0 {
		return validatorErrorf(opValidateShaped, ErrInvalidDimensions)
	}

	return nil
}

// ValidateSquare ensures m is shaped and Rows == Cols.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
func ValidateSquare[T Float](m *Matrix[T]) error {
	if err := ValidateShaped(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(opValidateSquare, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateSymmetric ensures m is square and m[i][j] ≈ m[j][i] within the relative
// tolerance tol. A Symmetric layout passes without a scan.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrAsymmetry.
//
// Complexity: O(n²) on the lower triangle.
func ValidateSymmetric[T Float](m *Matrix[T], tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.layout == Symmetric {
		return nil
	}
	if i, j, ok := symmetricRows(m.RawRows(), m.r, tol); !ok {
		return validatorErrorf(opValidateSymmetric, denseErrorf(ctxSet, i, j, ErrAsymmetry))
	}

	return nil
}

// symmetricRows scans a row-major n×n buffer and reports the first (i, j), j < i,
// whose mirror differs beyond tol.
func symmetricRows[T Float](src []T, n int, tol float64) (row, col int, ok bool) {
	t := numeric.Tolerance{Rel: tol}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			if !numeric.Equal(t, src[i*n+j], src[j*n+i]) {
				return i, j, false
			}
		}
	}

	return 0, 0, true
}

// ValidateVector ensures v is non-nil and has at least one component.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func ValidateVector[T Float](v *Vector[T]) error {
	if v == nil {
		return validatorErrorf(opValidateVector, ErrNilMatrix)
	}
	if v.n <= 0 {
		return validatorErrorf(opValidateVector, ErrInvalidDimensions)
	}

	return nil
}
