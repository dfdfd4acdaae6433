// SPDX-License-Identifier: MIT

// Package numeric: float comparison policy shared by matrix, vector and decomposition code.
//
// Purpose:
//   - One place that decides when two floats are "the same number".
//   - Absolute, relative and ULP-distance criteria, combinable through Tolerance.
//
// Notes:
//   - float64 comparisons delegate to gonum's floats/scalar so the semantics match the
//     wider gonum ecosystem; float32 ULP distance is measured on float32 bit patterns.
//   - Every value in this file is immutable after package init; safe for concurrent use.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float is the element constraint used across the module.
type Float interface {
	~float32 | ~float64
}

// Default tolerances (single source of truth).
const (
	// DefaultAbs is the absolute tolerance used by DefaultTolerance.
	DefaultAbs = 1e-9

	// DefaultRel is the relative tolerance used by DefaultTolerance.
	DefaultRel = 1e-9

	// DefaultULP is the ULP distance used by DefaultTolerance.
	DefaultULP = 4
)

// Tolerance combines the three comparison criteria.
// A zero field disables that criterion; Equal reports true when ANY enabled criterion holds.
// The zero Tolerance compares exactly.
type Tolerance struct {
	Abs float64 // |a-b| ≤ Abs
	Rel float64 // |a-b| ≤ Rel·max(|a|,|b|)
	ULP uint    // integer distance between bit patterns ≤ ULP
}

// DefaultTolerance is the tolerance used when callers do not supply one.
var DefaultTolerance = Tolerance{Abs: DefaultAbs, Rel: DefaultRel, ULP: DefaultULP}

// Equal reports whether a and b are equal under t.
//
// Implementation:
//   - Stage 1: NaN is never equal; exact equality (including ±0) short-circuits.
//   - Stage 2: try each enabled criterion in order Abs → Rel → ULP.
//
// Complexity: O(1).
func Equal[T Float](t Tolerance, a, b T) bool {
	if isNaN(a) || isNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if t.Abs > 0 && EqualWithinAbs(a, b, t.Abs) {
		return true
	}
	if t.Rel > 0 && EqualWithinRel(a, b, t.Rel) {
		return true
	}
	if t.ULP > 0 && EqualWithinULP(a, b, t.ULP) {
		return true
	}

	return false
}

// EqualSlices applies Equal element-wise; slices of different length are never equal.
func EqualSlices[T Float](t Tolerance, a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(t, a[i], b[i]) {
			return false
		}
	}

	return true
}

// EqualWithinAbs reports whether |a-b| ≤ tol.
func EqualWithinAbs[T Float](a, b T, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}

// EqualWithinRel reports whether |a-b| ≤ tol·max(|a|,|b|).
func EqualWithinRel[T Float](a, b T, tol float64) bool {
	return scalar.EqualWithinRel(float64(a), float64(b), tol)
}

// EqualWithinAbsOrRel reports whether a and b are equal within absTol or relTol.
func EqualWithinAbsOrRel[T Float](a, b T, absTol, relTol float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), absTol, relTol)
}

// EqualWithinULP reports whether a and b are at most ulp representable values apart.
// The distance is measured in the precision of T, so float32 inputs are not widened.
func EqualWithinULP[T Float](a, b T, ulp uint) bool {
	switch v := any(a).(type) {
	case float32:
		return equalWithinULP32(v, float32(b), ulp)
	case float64:
		return scalar.EqualWithinULP(v, float64(b), ulp)
	}
	// Named types (~float32 / ~float64) fall through the type switch.
	if isFloat32[T]() {
		return equalWithinULP32(float32(a), float32(b), ulp)
	}

	return scalar.EqualWithinULP(float64(a), float64(b), ulp)
}

// ULPDistance returns the number of representable T values between a and b.
// Values of opposite sign are measured through zero. NaN yields math.MaxUint64.
func ULPDistance[T Float](a, b T) uint64 {
	if isNaN(a) || isNaN(b) {
		return math.MaxUint64
	}
	if isFloat32[T]() {
		return dist(ordered32(float32(a)), ordered32(float32(b)))
	}

	return dist(ordered64(float64(a)), ordered64(float64(b)))
}

func equalWithinULP32(a, b float32, ulp uint) bool {
	if a == b {
		return true
	}
	if isNaN(a) || isNaN(b) {
		return false
	}

	return dist(ordered32(a), ordered32(b)) <= uint64(ulp)
}

// ordered32 maps float32 bits onto a monotonic signed line (−0 and +0 coincide).
func ordered32(f float32) int64 {
	bits := int64(int32(math.Float32bits(f)))
	if bits < 0 {
		bits = math.MinInt32 - bits
	}

	return bits
}

func ordered64(f float64) int64 {
	bits := int64(math.Float64bits(f))
	if bits < 0 {
		bits = math.MinInt64 - bits
	}

	return bits
}

func dist(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}

func isNaN[T Float](v T) bool { return v != v }

// isFloat32 reports whether T has float32 precision.
func isFloat32[T Float]() bool {
	var probe T = 1
	probe += 1e-10

	return probe == 1
}

// BitSize returns 32 or 64, the precision of T, for strconv and encoding/binary callers.
func BitSize[T Float]() int {
	if isFloat32[T]() {
		return 32
	}

	return 64
}
