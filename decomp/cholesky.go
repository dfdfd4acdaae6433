// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// Cholesky is the factorization A = C·Cᵗ of a symmetric positive-definite matrix.
// c holds the lower factor in packed row order: C[i][j] at i*(i+1)/2 + j, j ≤ i.
type Cholesky[T matrix.Float] struct {
	n int
	c []T
}

// NewCholesky factors the square symmetric matrix a.
// MAIN DESCRIPTION:
//   - a may use any layout; non-Symmetric layouts are checked for symmetry with the
//     relative tolerance from WithSymmetryTolerance and only the lower triangle is read.
//
// Implementation:
//   - Stage 1: validate square and symmetric.
//   - Stage 2: for each step s: d = A[s][s] - Σ_{t<s} C[s][t]²; d ≤ 0 or NaN is ErrNotPositiveDefinite;
//     C[s][s] = √d; C[r][s] = (A[r][s] - Σ_{t<s} C[r][t]·C[s][t]) / C[s][s] for r > s.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNonSquare,
// matrix.ErrAsymmetry, ErrNotPositiveDefinite (also for a NaN pivot).
//
// Complexity: Time O(n³/3), Space O(n²/2).
func NewCholesky[T matrix.Float](a *matrix.Matrix[T], opts ...Option) (*Cholesky[T], error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSymmetric(a, o.symTol); err != nil {
		return nil, decompErrorf(opCholesky, err)
	}
	n := a.Rows()
	src := a.RawRows()

	var t, s, r int
	ch := &Cholesky[T]{n: n, c: make([]T, n*(n+1)/2)}
	for s = 0; s < n; s++ {
		ss := s * (s + 1) / 2
		d := src[s*n+s]
		for t = 0; t < s; t++ {
			d -= ch.c[ss+t] * ch.c[ss+t]
		}
		if !(d > 0) {
			o.logger.Debug("cholesky: non-positive pivot", "step", s, "value", float64(d))

			return nil, decompErrorf(opCholesky, fmt.Errorf("step %d: %w", s, ErrNotPositiveDefinite))
		}
		diag := T(math.Sqrt(float64(d)))
		ch.c[ss+s] = diag

		for r = s + 1; r < n; r++ {
			rr := r * (r + 1) / 2
			v := src[r*n+s]
			for t = 0; t < s; t++ {
				v -= ch.c[rr+t] * ch.c[ss+t]
			}
			ch.c[rr+s] = v / diag
		}
	}
	o.logger.Debug("cholesky: factored", "n", n)

	return ch, nil
}

// Size returns n.
func (ch *Cholesky[T]) Size() int { return ch.n }

// L returns C in LowerTriangular layout.
func (ch *Cholesky[T]) L() *matrix.Matrix[T] {
	out, _ := matrix.FromPacked(ch.n, ch.n, matrix.LowerTriangular, ch.c, matrix.WithNoValidateNaNInf())

	return out
}

// Det returns det(A) = Π C[i][i]².
func (ch *Cholesky[T]) Det() T {
	det := T(1)
	for i := 0; i < ch.n; i++ {
		d := ch.c[i*(i+1)/2+i]
		det *= d * d
	}

	return det
}

// Solve returns x with A·x = b.
//
// Implementation:
//   - Stage 1: forward C·y = b.
//   - Stage 2: backward Cᵗ·x = y reading C[j][i] for Cᵗ[i][j].
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(n²).
func (ch *Cholesky[T]) Solve(b *matrix.Vector[T]) (*matrix.Vector[T], error) {
	if b == nil {
		return nil, decompErrorf(opCholeskySolve, matrix.ErrNilMatrix)
	}
	n := ch.n
	if b.Len() != n {
		return nil, decompErrorf(opCholeskySolve, fmt.Errorf("len(b)=%d want %d: %w", b.Len(), n, matrix.ErrDimensionMismatch))
	}
	x := b.Values()
	var i, j int
	for i = 0; i < n; i++ {
		ii := i * (i + 1) / 2
		sum := x[i]
		for j = 0; j < i; j++ {
			sum -= ch.c[ii+j] * x[j]
		}
		x[i] = sum / ch.c[ii+i]
	}
	for i = n - 1; i >= 0; i-- {
		sum := x[i]
		for j = i + 1; j < n; j++ {
			sum -= ch.c[j*(j+1)/2+i] * x[j]
		}
		x[i] = sum / ch.c[i*(i+1)/2+i]
	}

	return matrix.NewVector(x...)
}
