// SPDX-License-Identifier: MIT

// Package matrix - vector arithmetic.
//
// All operations compute on Cartesian components. Results that are vectors keep the
// representation of the left operand (a Polar + Cartesian sum is returned Polar).
package matrix

import (
	"math"
)

const (
	opAddVec    = "AddVec"
	opSubVec    = "SubVec"
	opScaleVec  = "ScaleVec"
	opDivVec    = "DivVec"
	opDot       = "Dot"
	opCross     = "Cross"
	opSchur     = "Schur"
	opNormalize = "Normalize"
	opRotate2D  = "Rotate2D"
	opRotAxis   = "RotateAxis"
)

// withRep packages Cartesian values x in representation rep.
func withRep[T Float](x []T, rep Representation) *Vector[T] {
	if rep == Polar && len(x) >= 2 {
		return &Vector[T]{rep: Polar, n: len(x), data: cartesianToPolar(x)}
	}

	return &Vector[T]{rep: Cartesian, n: len(x), data: x}
}

func sameLen[T Float](a, b *Vector[T], op string) error {
	if err := ValidateVector(a); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateVector(b); err != nil {
		return matrixErrorf(op, err)
	}
	if a.n != b.n {
		return matrixErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// AddVec returns a + b.
func AddVec[T Float](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(a, b, opAddVec); err != nil {
		return nil, err
	}
	x, y := a.cartesian(), b.cartesian()
	out := make([]T, a.n)
	for i := range out {
		out[i] = x[i] + y[i]
	}

	return withRep(out, a.rep), nil
}

// SubVec returns a - b.
func SubVec[T Float](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(a, b, opSubVec); err != nil {
		return nil, err
	}
	x, y := a.cartesian(), b.cartesian()
	out := make([]T, a.n)
	for i := range out {
		out[i] = x[i] - y[i]
	}

	return withRep(out, a.rep), nil
}

// ScaleVec returns s·v. Polar vectors with s ≥ 0 only rescale the length.
func ScaleVec[T Float](v *Vector[T], s T) (*Vector[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opScaleVec, err)
	}
	if v.rep == Polar && s >= 0 {
		out := v.Clone()
		out.data[0] *= s

		return out, nil
	}
	x := v.cartesian()
	out := make([]T, v.n)
	for i := range out {
		out[i] = x[i] * s
	}

	return withRep(out, v.rep), nil
}

// DivVec returns v/s; s == 0 is ErrDivideByZero.
func DivVec[T Float](v *Vector[T], s T) (*Vector[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opDivVec, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDivVec, ErrDivideByZero)
	}
	if v.rep == Polar && s > 0 {
		out := v.Clone()
		out.data[0] /= s

		return out, nil
	}
	x := v.cartesian()
	out := make([]T, v.n)
	for i := range out {
		out[i] = x[i] / s
	}

	return withRep(out, v.rep), nil
}

// Dot returns the inner product a·b.
func Dot[T Float](a, b *Vector[T]) (T, error) {
	if err := sameLen(a, b, opDot); err != nil {
		return 0, err
	}
	x, y := a.cartesian(), b.cartesian()
	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Cross returns a × b for 3-dimensional vectors.
func Cross[T Float](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(a, b, opCross); err != nil {
		return nil, err
	}
	if a.n != 3 {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}
	x, y := a.cartesian(), b.cartesian()
	out := []T{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}

	return withRep(out, a.rep), nil
}

// Schur returns the element-wise (Hadamard) product a ⊙ b.
func Schur[T Float](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(a, b, opSchur); err != nil {
		return nil, err
	}
	x, y := a.cartesian(), b.cartesian()
	out := make([]T, a.n)
	for i := range out {
		out[i] = x[i] * y[i]
	}

	return withRep(out, a.rep), nil
}

// Norm returns the Euclidean length of v.
func Norm[T Float](v *Vector[T]) T { return v.Length() }

// Normalize returns v / |v|; the zero vector is ErrDivideByZero.
func Normalize[T Float](v *Vector[T]) (*Vector[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	n := v.Length()
	if n == 0 {
		return nil, matrixErrorf(opNormalize, ErrDivideByZero)
	}

	return DivVec(v, n)
}

// Rotate2D rotates a 2-dimensional vector counter-clockwise by angle radians.
// Polar vectors only shift their angle.
func Rotate2D[T Float](v *Vector[T], angle T) (*Vector[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opRotate2D, err)
	}
	if v.n != 2 {
		return nil, matrixErrorf(opRotate2D, ErrDimensionMismatch)
	}
	if v.rep == Polar {
		out := v.Clone()
		out.data[1] = T(wrapPi(float64(out.data[1] + angle)))

		return out, nil
	}
	s, c := SinCos(angle)
	x := v.data

	return withRep([]T{c*x[0] - s*x[1], s*x[0] + c*x[1]}, Cartesian), nil
}

// RotateAxis rotates a 3-dimensional vector by angle radians about axis.
func RotateAxis[T Float](v, axis *Vector[T], angle T) (*Vector[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opRotAxis, err)
	}
	r, err := RotationFromAxisAngle(axis, angle, 3)
	if err != nil {
		return nil, matrixErrorf(opRotAxis, err)
	}
	out, err := MulVec(r, v)
	if err != nil {
		return nil, matrixErrorf(opRotAxis, err)
	}

	return withRep(out.data, v.rep), nil
}

// SinCos returns (sin a, cos a) in T precision.
func SinCos[T Float](a T) (sin, cos T) {
	s, c := math.Sincos(float64(a))

	return T(s), T(c)
}
