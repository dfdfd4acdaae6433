// SPDX-License-Identifier: MIT

// Package decomp - LU decomposition with scaled partial pivoting.
//
// Layout of the working buffer w (M×K, row-major, rows never moved):
//   - order[i] is the source row currently at elimination position i.
//   - After elimination, row order[i] holds multipliers in columns < min(i, K)
//     and the reduced (upper) entries in columns ≥ i.
//
// The first K positions define L (unit lower) and U; positions ≥ K keep their
// multipliers only, which is enough to reconstruct every source row.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// LU is the factorization P·A = L·U of an M×K matrix A (M ≥ K).
type LU[T matrix.Float] struct {
	m, k  int
	w     []T   // M×K working copy, see file header
	order []int // elimination position → source row, length M
	swaps int   // number of row exchanges, for the determinant sign
}

// NewLU factors a with Gaussian elimination and scaled partial pivoting.
//
// Implementation:
//   - Stage 1: copy a row-major into w; order = identity.
//   - Stage 2: for each step s < K pick, among positions i ≥ s, the row maximizing
//     |w[r][s]| / Σ_{j≥s} |w[r][j]|; a zero best ratio is ErrRankMismatch.
//   - Stage 3: swap positions, then eliminate column s below the pivot, storing the
//     multiplier in place of the eliminated entry.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (zero value),
// matrix.ErrDimensionMismatch (M < K), ErrRankMismatch.
//
// Complexity: Time O(M·K²), Space O(M·K).
func NewLU[T matrix.Float](a *matrix.Matrix[T], opts ...Option) (*LU[T], error) {
	if err := matrix.ValidateShaped(a); err != nil {
		return nil, decompErrorf(opLU, err)
	}
	m, k := a.Shape()
	if m < k {
		return nil, decompErrorf(opLU, fmt.Errorf("%dx%d has fewer rows than columns: %w", m, k, matrix.ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)

	lu := &LU[T]{m: m, k: k, w: a.RawRows(), order: make([]int, m)}
	for i := range lu.order {
		lu.order[i] = i
	}

	var s, i, j, r, best int
	var ratio, bestRatio T
	for s = 0; s < k; s++ {
		best, bestRatio = s, 0
		for i = s; i < m; i++ {
			r = lu.order[i]
			var sum T
			for j = s; j < k; j++ {
				sum += abs(lu.w[r*k+j])
			}
			if sum == 0 {
				continue
			}
			ratio = abs(lu.w[r*k+s]) / sum
			if ratio > bestRatio {
				best, bestRatio = i, ratio
			}
		}
		if bestRatio == 0 {
			o.logger.Debug("lu: zero pivot column", "step", s, "rows", m, "cols", k)

			return nil, decompErrorf(opLU, fmt.Errorf("step %d: %w", s, ErrRankMismatch))
		}
		if best != s {
			lu.order[s], lu.order[best] = lu.order[best], lu.order[s]
			lu.swaps++
		}
		p := lu.order[s]
		pivot := lu.w[p*k+s]
		o.logger.Debug("lu: pivot", "step", s, "row", p, "ratio", float64(bestRatio))

		for i = s + 1; i < m; i++ {
			r = lu.order[i]
			f := lu.w[r*k+s] / pivot
			lu.w[r*k+s] = f
			if f == 0 {
				continue
			}
			for j = s + 1; j < k; j++ {
				lu.w[r*k+j] -= f * lu.w[p*k+j]
			}
		}
	}
	if last := lu.w[lu.order[k-1]*k+k-1]; last == 0 {
		return nil, decompErrorf(opLU, fmt.Errorf("final pivot: %w", ErrRankMismatch))
	}

	return lu, nil
}

// Rows returns M, the number of source rows.
func (lu *LU[T]) Rows() int { return lu.m }

// Cols returns K, the rank of the factors.
func (lu *LU[T]) Cols() int { return lu.k }

// L returns the K×K unit lower factor in LowerTriangular layout.
func (lu *LU[T]) L() *matrix.Matrix[T] {
	k := lu.k
	packed := make([]T, k*(k+1)/2)
	var i, j int
	for i = 0; i < k; i++ {
		r := lu.order[i]
		for j = 0; j < i; j++ {
			packed[i*(i+1)/2+j] = lu.w[r*k+j]
		}
		packed[i*(i+1)/2+i] = 1
	}
	out, _ := matrix.FromPacked(k, k, matrix.LowerTriangular, packed, matrix.WithNoValidateNaNInf())

	return out
}

// U returns the K×K upper factor in UpperTriangular layout.
func (lu *LU[T]) U() *matrix.Matrix[T] {
	k := lu.k
	packed := make([]T, k*(k+1)/2)
	var i, j int
	for i = 0; i < k; i++ {
		r := lu.order[i]
		for j = i; j < k; j++ {
			packed[j*(j+1)/2+i] = lu.w[r*k+j]
		}
	}
	out, _ := matrix.FromPacked(k, k, matrix.UpperTriangular, packed, matrix.WithNoValidateNaNInf())

	return out
}

// Permutation returns a copy of the pivot record: element s is the source row
// chosen at elimination step s.
func (lu *LU[T]) Permutation() []int {
	out := make([]int, lu.k)
	copy(out, lu.order[:lu.k])

	return out
}

// Det returns det(A) = (-1)^swaps · Π U[i][i]. Only square sources have a determinant.
func (lu *LU[T]) Det() (T, error) {
	if lu.m != lu.k {
		return 0, decompErrorf(opLUDet, matrix.ErrNonSquare)
	}
	det := T(1)
	if lu.swaps%2 == 1 {
		det = -1
	}
	for i := 0; i < lu.k; i++ {
		det *= lu.w[lu.order[i]*lu.k+i]
	}

	return det, nil
}

// Reconstruct multiplies the factors back and undoes the row permutation,
// returning an M×K Full matrix that approximates the source.
// Rows beyond the first K positions are rebuilt from their stored multipliers.
func (lu *LU[T]) Reconstruct() *matrix.Matrix[T] {
	m, k := lu.m, lu.k
	out := make([]T, m*k)
	var i, j, t int
	for i = 0; i < m; i++ {
		r := lu.order[i]
		for j = 0; j < k; j++ {
			var sum T
			for t = 0; t <= min(i, j); t++ {
				l := T(1)
				if t < i {
					l = lu.w[r*k+t]
				}
				sum += l * lu.w[lu.order[t]*k+j]
			}
			out[r*k+j] = sum
		}
	}
	res, _ := matrix.FromPacked(m, k, matrix.Full, out, matrix.WithNoValidateNaNInf())

	return res
}

// Solve returns x (length K) with A·x = b for b of length M.
//
// Implementation:
//   - Stage 1: y[i] = b[order[i]] - Σ_{j<i} L[i][j]·y[j] for i < K (unit diagonal).
//   - Stage 2: x[i] = (y[i] - Σ_{j>i} U[i][j]·x[j]) / U[i][i], i from K-1 down.
//
// For M > K the entries of b at positions ≥ K are not checked for consistency.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(K²).
func (lu *LU[T]) Solve(b *matrix.Vector[T]) (*matrix.Vector[T], error) {
	if b == nil {
		return nil, decompErrorf(opLUSolve, matrix.ErrNilMatrix)
	}
	if b.Len() != lu.m {
		return nil, decompErrorf(opLUSolve, fmt.Errorf("len(b)=%d want %d: %w", b.Len(), lu.m, matrix.ErrDimensionMismatch))
	}
	k := lu.k
	rhs := b.Values()
	x := make([]T, k)
	var i, j int
	for i = 0; i < k; i++ {
		r := lu.order[i]
		sum := rhs[r]
		for j = 0; j < i; j++ {
			sum -= lu.w[r*k+j] * x[j]
		}
		x[i] = sum
	}
	for i = k - 1; i >= 0; i-- {
		r := lu.order[i]
		sum := x[i]
		for j = i + 1; j < k; j++ {
			sum -= lu.w[r*k+j] * x[j]
		}
		x[i] = sum / lu.w[r*k+i]
	}

	return matrix.NewVector(x...)
}

func abs[T matrix.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
