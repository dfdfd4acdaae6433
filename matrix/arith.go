// SPDX-License-Identifier: MIT

// Package matrix - cross-layout arithmetic.
//
// Purpose:
//   - Add/Sub/Mul between any pair of layouts, implemented once over the Layout capability.
//   - Result layout chosen by the promotion tables in layout.go.
//   - Only cells stored by the result layout are computed; products iterate only the
//     intersection of the non-zero spans of both operands.
//
// Notes:
//   - Operands are never mutated; every result owns a freshly allocated buffer.
//   - The left operand's numeric policy is carried into the result.
package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDiv       = "DivScalar"
	opTranspose = "Transpose"
	opMulVec    = "MulVec"
	opVecMul    = "VecMul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// eachStored visits every cell the layout stores, in a fixed row-major order.
// For Symmetric only the lower triangle (j ≤ i) is visited.
func eachStored(layout Layout, rows, cols int, f func(i, j int)) {
	var i, j, lo, hi int
	for i = 0; i < rows; i++ {
		switch layout {
		case Symmetric, LowerTriangular:
			lo, hi = 0, i+1
		case UpperTriangular:
			lo, hi = i, cols
		default:
			lo, hi = 0, cols
		}
		for j = lo; j < hi; j++ {
			f(i, j)
		}
	}
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate non-nil, identical shapes.
//   - Stage 2: same layout → single flat loop over the packed buffers (fast path).
//   - Stage 3: otherwise allocate PromoteAdd(a,b) and fill its stored cells.
//
// Complexity: Time O(size of result), Space O(size of result).
func addSub[T Float](a, b *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	if err := ValidateShaped(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateShaped(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opTag, ErrDimensionMismatch)
	}

	if a.layout == b.layout {
		out := newMatrix[T](a.r, a.c, a.layout, a.validateNaNInf)
		for k := range out.data {
			out.data[k] = a.data[k] + sign*b.data[k]
		}

		return out, nil
	}

	out := newMatrix[T](a.r, a.c, PromoteAdd(a.layout, b.layout), a.validateNaNInf)
	eachStored(out.layout, out.r, out.c, func(i, j int) {
		out.set(i, j, a.get(i, j)+sign*b.get(i, j))
	})

	return out, nil
}

// Add returns a + b. Identical packed layouts are preserved; mixed layouts promote to Full.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T Float](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b with the same promotion rules as Add.
func Sub[T Float](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a × b.
// MAIN DESCRIPTION:
//   - Lower×Lower stays Lower, Upper×Upper stays Upper, everything else is Full.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: allocate PromoteMul(a,b); for each stored result cell (i,j) sum
//     a[i,t]·b[t,j] over t in rowSpan_a(i) ∩ colSpan_b(j).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r·c·k) worst case (Full×Full), Space O(size of result).
func Mul[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateShaped(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateShaped(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	out := newMatrix[T](a.r, b.c, PromoteMul(a.layout, b.layout), a.validateNaNInf)
	k := a.c
	eachStored(out.layout, out.r, out.c, func(i, j int) {
		lo, hi := a.layout.rowSpan(i, k)
		blo, bhi := b.layout.colSpan(j, k)
		lo, hi = max(lo, blo), min(hi, bhi)
		var sum T
		for t := lo; t < hi; t++ {
			sum += a.get(i, t) * b.get(t, j)
		}
		out.set(i, j, sum)
	})

	return out, nil
}

// Scale returns s·m, preserving m's layout.
func Scale[T Float](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateShaped(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := newMatrix[T](m.r, m.c, m.layout, m.validateNaNInf)
	for k, v := range m.data {
		out.data[k] = v * s
	}

	return out, nil
}

// DivScalar returns m/s, preserving m's layout.
// Division by an exact zero is rejected with ErrDivideByZero rather than producing Inf/NaN.
func DivScalar[T Float](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateShaped(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDiv, ErrDivideByZero)
	}
	out := newMatrix[T](m.r, m.c, m.layout, m.validateNaNInf)
	for k, v := range m.data {
		out.data[k] = v / s
	}

	return out, nil
}

// Neg returns -m, preserving m's layout.
func Neg[T Float](m *Matrix[T]) (*Matrix[T], error) { return Scale(m, -1) }

// Transpose returns mᵀ.
// MAIN DESCRIPTION:
//   - Full → Full with indices swapped.
//   - LowerTriangular ↔ UpperTriangular: the packed buffer is reused verbatim, only the tag flips.
//   - Symmetric → Symmetric: same storage, no computation.
//
// Complexity: Time O(size), Space O(size).
func Transpose[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateShaped(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if m.layout.Packed() {
		out := m.Clone()
		out.layout = m.layout.Transposed()

		return out, nil
	}
	out := newMatrix[T](m.c, m.r, Full, m.validateNaNInf)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Transposed is the method form of Transpose. It cannot fail for a non-nil receiver.
func (m *Matrix[T]) Transposed() *Matrix[T] {
	out, _ := Transpose(m)

	return out
}

// MulVec returns m·v as a dense Cartesian vector of length m.Rows().
// Only the non-zero span of each row is visited for packed layouts.
func MulVec[T Float](m *Matrix[T], v *Vector[T]) (*Vector[T], error) {
	if err := ValidateShaped(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if v.Len() != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	x := v.cartesian()
	out := newCartesian[T](m.r)
	var i, j, lo, hi int
	for i = 0; i < m.r; i++ {
		lo, hi = m.layout.rowSpan(i, m.c)
		var sum T
		for j = lo; j < hi; j++ {
			sum += m.get(i, j) * x[j]
		}
		out.data[i] = sum
	}

	return out, nil
}

// VecMul returns vᵀ·m as a dense Cartesian vector of length m.Cols().
func VecMul[T Float](v *Vector[T], m *Matrix[T]) (*Vector[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateShaped(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if v.Len() != m.r {
		return nil, matrixErrorf(opVecMul, ErrDimensionMismatch)
	}
	x := v.cartesian()
	out := newCartesian[T](m.c)
	var i, j, lo, hi int
	for j = 0; j < m.c; j++ {
		lo, hi = m.layout.colSpan(j, m.r)
		var sum T
		for i = lo; i < hi; i++ {
			sum += x[i] * m.get(i, j)
		}
		out.data[j] = sum
	}

	return out, nil
}

// OuterProduct returns a·bᵀ as a Full matrix; a·aᵀ style covariance updates
// can be symmetrized by the caller via NewFromRows(..., Symmetric, ...).
func OuterProduct[T Float](a, b *Vector[T]) (*Matrix[T], error) {
	if err := ValidateVector(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateVector(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	x, y := a.cartesian(), b.cartesian()
	out := newMatrix[T](a.n, b.n, Full, DefaultValidateNaNInf)
	for i := range x {
		for j := range y {
			out.data[i*b.n+j] = x[i] * y[j]
		}
	}

	return out, nil
}
