// SPDX-License-Identifier: MIT

// Package matrix - square-matrix operations (trace, determinant, cofactors, inverse).
//
// Purpose:
//   - Determinant by closed forms for n ≤ 3 and Laplace expansion along row 0 beyond.
//   - Inverse by adjugate / determinant (cofactor method), intended for small fixed sizes.
//
// Notes:
//   - Singularity is an exact-zero determinant test. A tolerance-based test would be a
//     behavior change and is intentionally not applied here.
//   - Adjugate and Inverse keep Symmetric / triangular layouts (both are closed under
//     these operations); only the stored cells are computed.
package matrix

const (
	opTrace    = "Trace"
	opDet      = "Det"
	opMinor    = "Minor"
	opCofactor = "Cofactor"
	opAdj      = "Adjugate"
	opInverse  = "Inverse"
)

func requireSquare[T Float](m *Matrix[T], op string) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(op, err)
	}

	return nil
}

// Trace returns the sum of the diagonal.
func Trace[T Float](m *Matrix[T]) (T, error) {
	if err := requireSquare(m, opTrace); err != nil {
		return 0, err
	}
	var sum T
	for i := 0; i < m.r; i++ {
		sum += m.get(i, i)
	}

	return sum, nil
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: materialize the logical matrix row-major (packed layouts expand here).
//   - Stage 2: closed form for n ≤ 3; Laplace expansion along row 0 otherwise,
//     skipping zero entries of the expansion row.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
//
// Complexity: O(n!) for n > 3 (cofactor method, small n only).
func Det[T Float](m *Matrix[T]) (T, error) {
	if err := requireSquare(m, opDet); err != nil {
		return 0, err
	}

	return detFlat(m.RawRows(), m.r), nil
}

// DetCofactor returns the determinant by pure recursive Laplace expansion down to
// the 1×1 base case. It is the reference definition the closed forms in Det agree with.
func DetCofactor[T Float](m *Matrix[T]) (T, error) {
	if err := requireSquare(m, opDet); err != nil {
		return 0, err
	}

	return detRecursive(m.RawRows(), m.r), nil
}

// detFlat computes the determinant of an n×n row-major buffer.
func detFlat[T Float](a []T, n int) T {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	case 3:
		return a[0]*(a[4]*a[8]-a[5]*a[7]) -
			a[1]*(a[3]*a[8]-a[5]*a[6]) +
			a[2]*(a[3]*a[7]-a[4]*a[6])
	}
	var det T
	sign := T(1)
	for j := 0; j < n; j++ {
		if a[j] != 0 {
			det += sign * a[j] * detFlat(minorFlat(a, n, 0, j), n-1)
		}
		sign = -sign
	}

	return det
}

// detRecursive is the unoptimized Laplace expansion along row 0.
func detRecursive[T Float](a []T, n int) T {
	if n == 1 {
		return a[0]
	}
	var det T
	sign := T(1)
	for j := 0; j < n; j++ {
		det += sign * a[j] * detRecursive(minorFlat(a, n, 0, j), n-1)
		sign = -sign
	}

	return det
}

// minorFlat removes row ri and column cj from an n×n row-major buffer.
func minorFlat[T Float](a []T, n, ri, cj int) []T {
	out := make([]T, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == ri {
			continue
		}
		for j = 0; j < n; j++ {
			if j == cj {
				continue
			}
			out = append(out, a[i*n+j])
		}
	}

	return out
}

// cofactorFlat returns (-1)^(i+j)·det(minor(i,j)).
func cofactorFlat[T Float](a []T, n, i, j int) T {
	if n == 1 {
		return 1
	}
	c := detFlat(minorFlat(a, n, i, j), n-1)
	if (i+j)%2 == 1 {
		return -c
	}

	return c
}

// Minor returns the (n-1)×(n-1) Full matrix with row i and column j removed.
func Minor[T Float](m *Matrix[T], i, j int) (*Matrix[T], error) {
	if err := requireSquare(m, opMinor); err != nil {
		return nil, err
	}
	if err := m.checkIndex(i, j); err != nil {
		return nil, matrixErrorf(opMinor, denseErrorf(ctxAt, i, j, err))
	}
	if m.r == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	out := newMatrix[T](m.r-1, m.c-1, Full, m.validateNaNInf)
	copy(out.data, minorFlat(m.RawRows(), m.r, i, j))

	return out, nil
}

// Cofactor returns (-1)^(i+j)·det(Minor(i,j)). The 1×1 cofactor is 1.
func Cofactor[T Float](m *Matrix[T], i, j int) (T, error) {
	if err := requireSquare(m, opCofactor); err != nil {
		return 0, err
	}
	if err := m.checkIndex(i, j); err != nil {
		return 0, matrixErrorf(opCofactor, denseErrorf(ctxAt, i, j, err))
	}

	return cofactorFlat(m.RawRows(), m.r, i, j), nil
}

// Adjugate returns the transposed cofactor matrix, keeping m's layout.
func Adjugate[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := requireSquare(m, opAdj); err != nil {
		return nil, err
	}

	return adjugate(m, m.RawRows()), nil
}

func adjugate[T Float](m *Matrix[T], raw []T) *Matrix[T] {
	n := m.r
	out := newMatrix[T](n, n, m.layout, m.validateNaNInf)
	eachStored(out.layout, n, n, func(i, j int) {
		out.set(i, j, cofactorFlat(raw, n, j, i))
	})

	return out
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Pure cofactor method; appropriate for the small fixed sizes used by poses
//     and covariances, not for large systems (use decomp.LU / decomp.Cholesky).
//
// Implementation:
//   - Stage 1: validate square; compute det via closed form / Laplace.
//   - Stage 2: det == 0 exactly → ErrSingular.
//   - Stage 3: adjugate in m's layout, divided by det.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular.
//
// Complexity: O(n²·(n-1)!) for n > 4; constant for n ≤ 4.
func Inverse[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := requireSquare(m, opInverse); err != nil {
		return nil, err
	}
	raw := m.RawRows()
	det := detFlat(raw, m.r)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	out := adjugate(m, raw)
	for k := range out.data {
		out.data[k] /= det
	}

	return out, nil
}
