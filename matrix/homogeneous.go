// SPDX-License-Identifier: MIT

package matrix

const (
	opHomogeneous = "MulHomogeneous"
	opCompose     = "Transform"
)

// MulHomogeneous applies the N×N affine transform m to an (N-1)-vector v.
// v is implicitly extended with a trailing 1 and the last output row is dropped:
// out = linear·v + translation. There is no projective divide.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity: O(N²), or the non-zero span only for triangular layouts.
func MulHomogeneous[T Float](m *Matrix[T], v *Vector[T]) (*Vector[T], error) {
	if err := requireSquare(m, opHomogeneous); err != nil {
		return nil, err
	}
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opHomogeneous, err)
	}
	n := m.r - 1
	if n < 1 || v.Len() != n {
		return nil, matrixErrorf(opHomogeneous, ErrDimensionMismatch)
	}
	x := v.cartesian()
	out := newCartesian[T](n)
	var i, j, lo, hi int
	for i = 0; i < n; i++ {
		lo, hi = m.layout.rowSpan(i, m.c)
		sum := m.get(i, n) // translation (0 when outside the stored span)
		for j = lo; j < hi && j < n; j++ {
			sum += m.get(i, j) * x[j]
		}
		out.data[i] = sum
	}

	return out, nil
}

// Transform builds an N×N homogeneous transform from an (N-1)×(N-1) linear block
// and an (N-1) translation. The bottom row is (0, ..., 0, 1).
func Transform[T Float](linear *Matrix[T], translation *Vector[T]) (*Matrix[T], error) {
	if err := requireSquare(linear, opCompose); err != nil {
		return nil, err
	}
	if err := ValidateVector(translation); err != nil {
		return nil, matrixErrorf(opCompose, err)
	}
	n := linear.r
	if translation.Len() != n {
		return nil, matrixErrorf(opCompose, ErrDimensionMismatch)
	}
	out := newMatrix[T](n+1, n+1, Full, linear.validateNaNInf)
	t := translation.cartesian()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*(n+1)+j] = linear.get(i, j)
		}
		out.data[i*(n+1)+n] = t[i]
	}
	out.data[n*(n+1)+n] = 1

	return out, nil
}
