// SPDX-License-Identifier: MIT

// Package matrix - rotation construction & extraction for 3×3 and 4×4 (homogeneous) matrices.
//
// Purpose:
//   - Rotation ↔ (axis, angle) through an intermediate unit quaternion.
//   - Rotation ↔ (roll, pitch, yaw) with the fixed ZYX convention R = Rz(yaw)·Ry(pitch)·Rx(roll).
//   - Read/write the rotation block and translation column of homogeneous transforms.
//
// Notes:
//   - Quaternion extraction branches on the largest of trace / diagonal entries so the
//     square root argument never suffers from cancellation.
//   - Euler decomposition has two solutions away from gimbal lock; RPY(m, true) returns
//     the second one (pitch' = π - pitch). Both reconstruct the same matrix.
//   - Angles are computed in float64 and converted back to T.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

const (
	opAxisAngle   = "AxisAngle"
	opQuaternion  = "Quaternion"
	opFromQuat    = "RotationFromQuaternion"
	opFromAxis    = "RotationFromAxisAngle"
	opFromRPY     = "RotationFromRPY"
	opRPY         = "RPY"
	opRotation    = "Rotation"
	opSetRotation = "SetRotation"
	opTranslation = "Translation"
	opSetTransl   = "SetTranslation"
)

// gimbalTolerance is the distance of |r20| from 1 below which pitch is treated as ±π/2.
const gimbalTolerance = 1e-9

// rotationDim validates a 3×3 or 4×4 square shape.
func rotationDim[T Float](m *Matrix[T], op string) error {
	if err := ValidateShaped(m); err != nil {
		return matrixErrorf(op, err)
	}
	if m.r != m.c || (m.r != 3 && m.r != 4) {
		return matrixErrorf(op, fmt.Errorf("%dx%d is not 3x3 or 4x4: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// block3 reads the upper-left 3×3 block as float64 row-major.
func block3[T Float](m *Matrix[T]) (r [9]float64) {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r[i*3+j] = float64(m.get(i, j))
		}
	}

	return r
}

// fromBlock3 builds a dim×dim Full matrix with r in the rotation block and the
// identity elsewhere.
func fromBlock3[T Float](r [9]float64, dim int) *Matrix[T] {
	out := newMatrix[T](dim, dim, Full, DefaultValidateNaNInf)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out.data[i*dim+j] = T(r[i*3+j])
		}
	}
	if dim == 4 {
		out.data[15] = 1
	}

	return out
}

func checkRotationSize(dim int, op string) error {
	if dim != 3 && dim != 4 {
		return matrixErrorf(op, fmt.Errorf("dim=%d: %w", dim, ErrDimensionMismatch))
	}

	return nil
}

// Quaternion extracts the unit quaternion of the rotation block of m.
//
// Implementation:
//   - Stage 1: tr = r00+r11+r22; pick the largest of {tr, r00, r11, r22}.
//   - Stage 2: compute that component from a well-conditioned square root, then
//     derive the other three from sums/differences of off-diagonal pairs.
//   - Stage 3: canonicalize to Real ≥ 0.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Quaternion[T Float](m *Matrix[T]) (quat.Number, error) {
	if err := rotationDim(m, opQuaternion); err != nil {
		return quat.Number{}, err
	}
	r := block3(m)
	r00, r01, r02 := r[0], r[1], r[2]
	r10, r11, r12 := r[3], r[4], r[5]
	r20, r21, r22 := r[6], r[7], r[8]

	var q quat.Number
	tr := r00 + r11 + r22
	switch {
	case tr > r00 && tr > r11 && tr > r22:
		s := 2 * math.Sqrt(1+tr)
		q = quat.Number{Real: s / 4, Imag: (r21 - r12) / s, Jmag: (r02 - r20) / s, Kmag: (r10 - r01) / s}
	case r00 >= r11 && r00 >= r22:
		s := 2 * math.Sqrt(1+r00-r11-r22)
		q = quat.Number{Real: (r21 - r12) / s, Imag: s / 4, Jmag: (r01 + r10) / s, Kmag: (r02 + r20) / s}
	case r11 >= r22:
		s := 2 * math.Sqrt(1+r11-r00-r22)
		q = quat.Number{Real: (r02 - r20) / s, Imag: (r01 + r10) / s, Jmag: s / 4, Kmag: (r12 + r21) / s}
	default:
		s := 2 * math.Sqrt(1+r22-r00-r11)
		q = quat.Number{Real: (r10 - r01) / s, Imag: (r02 + r20) / s, Jmag: (r12 + r21) / s, Kmag: s / 4}
	}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}

	return q, nil
}

// RotationFromQuaternion returns the dim×dim (3 or 4) rotation for q.
// q is normalized first; the zero quaternion is ErrDivideByZero.
func RotationFromQuaternion[T Float](q quat.Number, dim int) (*Matrix[T], error) {
	if err := checkRotationSize(dim, opFromQuat); err != nil {
		return nil, err
	}
	n := quat.Abs(q)
	if n == 0 {
		return nil, matrixErrorf(opFromQuat, ErrDivideByZero)
	}
	q = quat.Scale(1/n, q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	r := [9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	}

	return fromBlock3[T](r, dim), nil
}

// RotationFromAxisAngle returns the dim×dim rotation of angle radians about axis.
// axis must be 3-dimensional and non-zero; it is normalized internally.
func RotationFromAxisAngle[T Float](axis *Vector[T], angle T, dim int) (*Matrix[T], error) {
	if err := ValidateVector(axis); err != nil {
		return nil, matrixErrorf(opFromAxis, err)
	}
	if axis.Len() != 3 {
		return nil, matrixErrorf(opFromAxis, ErrDimensionMismatch)
	}
	k := axis.cartesian()
	kx, ky, kz := float64(k[0]), float64(k[1]), float64(k[2])
	n := math.Sqrt(kx*kx + ky*ky + kz*kz)
	if n == 0 {
		return nil, matrixErrorf(opFromAxis, ErrDivideByZero)
	}
	half := float64(angle) / 2
	s := math.Sin(half) / n
	q := quat.Number{Real: math.Cos(half), Imag: kx * s, Jmag: ky * s, Kmag: kz * s}

	out, err := RotationFromQuaternion[T](q, dim)
	if err != nil {
		return nil, matrixErrorf(opFromAxis, err)
	}

	return out, nil
}

// AxisAngle extracts a unit axis and an angle in [0, π] from the rotation block of m.
// For the identity rotation the angle is 0 and the axis is (1, 0, 0).
func AxisAngle[T Float](m *Matrix[T]) (*Vector[T], T, error) {
	q, err := Quaternion(m)
	if err != nil {
		return nil, 0, matrixErrorf(opAxisAngle, err)
	}
	vn := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	axis := newCartesian[T](3)
	if vn == 0 {
		axis.data[0] = 1

		return axis, 0, nil
	}
	axis.data[0] = T(q.Imag / vn)
	axis.data[1] = T(q.Jmag / vn)
	axis.data[2] = T(q.Kmag / vn)

	return axis, T(2 * math.Atan2(vn, q.Real)), nil
}

// RotationFromRPY returns R = Rz(yaw)·Ry(pitch)·Rx(roll) as a dim×dim matrix.
func RotationFromRPY[T Float](roll, pitch, yaw T, dim int) (*Matrix[T], error) {
	if err := checkRotationSize(dim, opFromRPY); err != nil {
		return nil, err
	}
	sr, cr := math.Sincos(float64(roll))
	sp, cp := math.Sincos(float64(pitch))
	sy, cy := math.Sincos(float64(yaw))

	r := [9]float64{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr,
		-sp, cp * sr, cp * cr,
	}

	return fromBlock3[T](r, dim), nil
}

// RPY extracts (roll, pitch, yaw) in the ZYX convention.
// MAIN DESCRIPTION:
//   - Away from gimbal lock two solutions exist: pitch ∈ [-π/2, π/2] (first) and
//     π - pitch (second, selected with secondSolution). All angles are wrapped to (-π, π].
//   - At gimbal lock (|r20| = 1) yaw is fixed to 0 and the remaining freedom goes to roll;
//     both solutions coincide.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func RPY[T Float](m *Matrix[T], secondSolution bool) (roll, pitch, yaw T, err error) {
	if err = rotationDim(m, opRPY); err != nil {
		return 0, 0, 0, err
	}
	r := block3(m)
	r20 := math.Max(-1, math.Min(1, r[6]))

	if 1-math.Abs(r20) <= gimbalTolerance {
		if r20 < 0 {
			return T(math.Atan2(r[1], r[2])), T(math.Pi / 2), 0, nil
		}

		return T(math.Atan2(-r[1], -r[2])), T(-math.Pi / 2), 0, nil
	}

	p := -math.Asin(r20)
	if secondSolution {
		p = math.Pi - p
	}
	sign := 1.0
	if math.Cos(p) < 0 {
		sign = -1
	}
	rl := math.Atan2(sign*r[7], sign*r[8])
	yw := math.Atan2(sign*r[3], sign*r[0])

	return T(wrapPi(rl)), T(wrapPi(p)), T(wrapPi(yw)), nil
}

// wrapPi maps a to (-π, π].
func wrapPi(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}

	return a
}

// Rotation returns the upper-left 3×3 block of a 3×3 or 4×4 matrix as a Full matrix.
func Rotation[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := rotationDim(m, opRotation); err != nil {
		return nil, err
	}
	out := newMatrix[T](3, 3, Full, m.validateNaNInf)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out.data[i*3+j] = m.get(i, j)
		}
	}

	return out, nil
}

// SetRotation overwrites the upper-left 3×3 block of m with r, leaving the
// translation column and the bottom row untouched. Write protection of m's layout applies.
func SetRotation[T Float](m, r *Matrix[T]) error {
	if err := rotationDim(m, opSetRotation); err != nil {
		return err
	}
	if err := ValidateShaped(r); err != nil {
		return matrixErrorf(opSetRotation, err)
	}
	if r.r < 3 || r.c < 3 {
		return matrixErrorf(opSetRotation, ErrDimensionMismatch)
	}
	next := m.Clone()
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if err := next.Set(i, j, r.get(i, j)); err != nil {
				return matrixErrorf(opSetRotation, err)
			}
		}
	}
	copy(m.data, next.data)

	return nil
}

// Translation returns the first N-1 entries of the last column of an N×N transform.
func Translation[T Float](m *Matrix[T]) (*Vector[T], error) {
	if err := requireSquare(m, opTranslation); err != nil {
		return nil, err
	}
	if m.r < 2 {
		return nil, matrixErrorf(opTranslation, ErrInvalidDimensions)
	}
	n := m.r - 1
	out := newCartesian[T](n)
	for i := 0; i < n; i++ {
		out.data[i] = m.get(i, n)
	}

	return out, nil
}

// SetTranslation writes v into the first N-1 entries of the last column of m.
func SetTranslation[T Float](m *Matrix[T], v *Vector[T]) error {
	if err := requireSquare(m, opSetTransl); err != nil {
		return err
	}
	if err := ValidateVector(v); err != nil {
		return matrixErrorf(opSetTransl, err)
	}
	n := m.r - 1
	if v.Len() != n {
		return matrixErrorf(opSetTransl, ErrDimensionMismatch)
	}
	x := v.cartesian()
	next := m.Clone()
	for i := 0; i < n; i++ {
		if err := next.Set(i, n, x[i]); err != nil {
			return matrixErrorf(opSetTransl, err)
		}
	}
	copy(m.data, next.data)

	return nil
}
