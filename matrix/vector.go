// SPDX-License-Identifier: MIT

// Package matrix - Vector storage (Cartesian / Polar representations).
//
// Purpose:
//   - N-dimensional vector with an explicit representation tag.
//   - Cartesian stores N components; Polar stores one length and N-1 hyperspherical angles.
//   - Interconversion is exact up to floating-point rounding.
//
// Polar convention (hyperspherical, N ≥ 2):
//
//	x0   = r·cos φ0
//	x1   = r·sin φ0·cos φ1
//	...
//	xN-2 = r·sin φ0···sin φN-3·cos φN-2
//	xN-1 = r·sin φ0···sin φN-3·sin φN-2
//
// φ0..φN-3 lie in [0, π]; φN-2 lies in (-π, π]. For N=2 this is the usual (r, θ).
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/numeric"
)

// Representation tags how a Vector stores its values.
type Representation uint8

const (
	// Cartesian stores N raw components.
	Cartesian Representation = iota
	// Polar stores a length followed by N-1 angles.
	Polar
)

// String returns the representation name.
func (r Representation) String() string {
	switch r {
	case Cartesian:
		return "Cartesian"
	case Polar:
		return "Polar"
	default:
		return fmt.Sprintf("Representation(%d)", uint8(r))
	}
}

const (
	ctxVecAt  = "Vector.At"
	ctxVecSet = "Vector.Set"
	ctxVecNew = "NewVector"
	ctxPolar  = "NewPolar"
)

// Vector is an N-dimensional vector.
//   - n is the logical dimension.
//   - data holds n values: components (Cartesian) or [length, φ0..φn-2] (Polar).
type Vector[T Float] struct {
	rep  Representation
	n    int
	data []T
}

func newCartesian[T Float](n int) *Vector[T] {
	return &Vector[T]{rep: Cartesian, n: n, data: make([]T, n)}
}

// NewVector returns a Cartesian vector holding a copy of vals.
func NewVector[T Float](vals ...T) (*Vector[T], error) {
	if len(vals) == 0 {
		return nil, matrixErrorf(ctxVecNew, ErrInvalidDimensions)
	}
	v := newCartesian[T](len(vals))
	copy(v.data, vals)

	return v, nil
}

// ZeroVector returns the n-dimensional Cartesian zero vector.
func ZeroVector[T Float](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxVecNew, ErrInvalidDimensions)
	}

	return newCartesian[T](n), nil
}

// NewPolar returns a Polar vector of dimension len(angles)+1.
func NewPolar[T Float](length T, angles ...T) (*Vector[T], error) {
	if len(angles) == 0 {
		return nil, matrixErrorf(ctxPolar, ErrInvalidDimensions)
	}
	v := &Vector[T]{rep: Polar, n: len(angles) + 1, data: make([]T, len(angles)+1)}
	v.data[0] = length
	copy(v.data[1:], angles)

	return v, nil
}

// Len returns the logical dimension N.
func (v *Vector[T]) Len() int { return v.n }

// Representation returns the storage representation.
func (v *Vector[T]) Representation() Representation { return v.rep }

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] {
	cp := &Vector[T]{rep: v.rep, n: v.n, data: make([]T, len(v.data))}
	copy(cp.data, v.data)

	return cp
}

// cartesian returns Cartesian components; the slice aliases v for Cartesian
// vectors and MUST be treated as read-only by callers.
func (v *Vector[T]) cartesian() []T {
	if v.rep == Cartesian {
		return v.data
	}

	return polarToCartesian(v.data)
}

// Values returns a copy of the Cartesian components.
func (v *Vector[T]) Values() []T {
	if v.rep == Cartesian {
		out := make([]T, v.n)
		copy(out, v.data)

		return out
	}

	return polarToCartesian(v.data)
}

// Storage returns a copy of the stored values in storage order.
func (v *Vector[T]) Storage() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// At returns the i-th Cartesian component for either representation.
func (v *Vector[T]) At(i int) (T, error) {
	if v == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("%s(%d): %w", ctxVecAt, i, ErrOutOfRange)
	}
	if v.rep == Cartesian {
		return v.data[i], nil
	}

	return polarToCartesian(v.data)[i], nil
}

// Set assigns the i-th component of a Cartesian vector.
// Polar vectors return ErrRepresentation; convert with ToCartesian first.
func (v *Vector[T]) Set(i int, val T) error {
	if v == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= v.n {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, ErrOutOfRange)
	}
	if v.rep != Cartesian {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, ErrRepresentation)
	}
	v.data[i] = val

	return nil
}

// Length returns the Euclidean length; O(1) for Polar vectors.
func (v *Vector[T]) Length() T {
	if v.rep == Polar {
		return v.data[0]
	}

	return norm(v.data)
}

// Angles returns the N-1 hyperspherical angles.
func (v *Vector[T]) Angles() []T {
	if v.rep == Polar {
		out := make([]T, v.n-1)
		copy(out, v.data[1:])

		return out
	}
	if v.n < 2 {
		return nil
	}

	return cartesianToPolar(v.data)[1:]
}

// ToCartesian returns a Cartesian copy.
func (v *Vector[T]) ToCartesian() *Vector[T] {
	return &Vector[T]{rep: Cartesian, n: v.n, data: v.Values()}
}

// ToPolar returns a Polar copy. One-dimensional vectors have no angles and
// return ErrRepresentation.
func (v *Vector[T]) ToPolar() (*Vector[T], error) {
	if v.rep == Polar {
		return v.Clone(), nil
	}
	if v.n < 2 {
		return nil, matrixErrorf(ctxPolar, ErrRepresentation)
	}

	return &Vector[T]{rep: Polar, n: v.n, data: cartesianToPolar(v.data)}, nil
}

// As converts v into rep.
func (v *Vector[T]) As(rep Representation) (*Vector[T], error) {
	switch rep {
	case Cartesian:
		return v.ToCartesian(), nil
	case Polar:
		return v.ToPolar()
	default:
		return nil, ErrRepresentation
	}
}

// String renders "(a, b, c)" using Cartesian components.
func (v *Vector[T]) String() string { return FormatVector(v) }

// EqualVec reports exact equality of Cartesian components.
func EqualVec[T Float](a, b *Vector[T]) bool {
	return EqualVecApprox(a, b, numeric.Tolerance{})
}

// EqualVecApprox compares Cartesian components under tol.
func EqualVecApprox[T Float](a, b *Vector[T], tol numeric.Tolerance) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}

	return numeric.EqualSlices(tol, a.cartesian(), b.cartesian())
}

// polarToCartesian expands [r, φ0..φn-2] into n components.
func polarToCartesian[T Float](p []T) []T {
	n := len(p)
	out := make([]T, n)
	s := float64(p[0])
	for k := 0; k < n-1; k++ {
		phi := float64(p[k+1])
		out[k] = T(s * math.Cos(phi))
		s *= math.Sin(phi)
	}
	out[n-1] = T(s)

	return out
}

// cartesianToPolar computes [r, φ0..φn-2] for n ≥ 2 components.
//
// Implementation:
//   - Stage 1: tail[k] = sqrt(x_k² + ... + x_{n-1}²), accumulated backwards.
//   - Stage 2: φk = atan2(tail[k+1], x_k) for k < n-2; last angle = atan2(x_{n-1}, x_{n-2}).
func cartesianToPolar[T Float](x []T) []T {
	n := len(x)
	tail := make([]float64, n+1)
	for k := n - 1; k >= 0; k-- {
		tail[k] = math.Hypot(tail[k+1], float64(x[k]))
	}
	out := make([]T, n)
	out[0] = T(tail[0])
	for k := 0; k < n-2; k++ {
		out[k+1] = T(math.Atan2(tail[k+1], float64(x[k])))
	}
	last := math.Atan2(float64(x[n-1]), float64(x[n-2]))
	if last == -math.Pi {
		last = math.Pi
	}
	out[n-1] = T(last)

	return out
}

func norm[T Float](x []T) T {
	var acc float64
	for _, v := range x {
		acc = math.Hypot(acc, float64(v))
	}

	return T(acc)
}
