// SPDX-License-Identifier: MIT

// Package matrix - storage layouts (Full, Symmetric, LowerTriangular, UpperTriangular).
//
// Purpose:
//   - Map a logical (row, col) to a physical offset inside a flat backing buffer.
//   - Report which cells are structurally fixed zeros (not stored, not writable).
//   - Decide the result layout of cross-layout arithmetic (promotion tables).
//
// Index formulas:
//   - Full            : off = row*cols + col                       (R*C cells)
//   - Symmetric       : off = hi*(hi+1)/2 + lo, hi=max, lo=min      (n(n+1)/2 cells)
//   - LowerTriangular : off = row*(row+1)/2 + col, col ≤ row        (n(n+1)/2 cells)
//   - UpperTriangular : off = col*(col+1)/2 + row, row ≤ col        (n(n+1)/2 cells)
//
// Complexity quicksheet:
//   - PhysicalSize/Offset/IsWritable: O(1), no allocations.

package matrix

import "fmt"

// Layout tags the physical storage scheme of a Matrix.
// The zero value is Full.
type Layout uint8

const (
	// Full stores every cell in row-major order.
	Full Layout = iota
	// Symmetric stores the lower triangle; (i,j) and (j,i) share one cell.
	Symmetric
	// LowerTriangular stores cells with col ≤ row; the upper half is fixed zero.
	LowerTriangular
	// UpperTriangular stores cells with row ≤ col; the lower half is fixed zero.
	UpperTriangular

	layoutCount = 4
)

var layoutNames = [layoutCount]string{"Full", "Symmetric", "LowerTriangular", "UpperTriangular"}

// String returns the layout name.
func (l Layout) String() string {
	if !l.valid() {
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}

	return layoutNames[l]
}

func (l Layout) valid() bool { return l < layoutCount }

// Packed reports whether the layout stores only n(n+1)/2 cells (and so requires a square shape).
func (l Layout) Packed() bool { return l != Full }

// PhysicalSize returns the number of stored elements for a rows×cols matrix.
// Complexity: O(1).
func (l Layout) PhysicalSize(rows, cols int) int {
	if l == Full {
		return rows * cols
	}

	return rows * (rows + 1) / 2
}

// Offset maps (row, col) to a physical offset.
// stored is false for structural zeros of triangular layouts; off is then meaningless.
// Callers MUST bounds-check (row, col) beforehand.
//
// Implementation:
//   - Stage 1: dispatch on the layout tag.
//   - Stage 2: apply the closed-form index formula from the file header.
//
// Complexity: O(1).
func (l Layout) Offset(cols, row, col int) (off int, stored bool) {
	switch l {
	case Symmetric:
		hi, lo := row, col
		if lo > hi {
			hi, lo = lo, hi
		}

		return hi*(hi+1)/2 + lo, true
	case LowerTriangular:
		if col > row {
			return 0, false
		}

		return row*(row+1)/2 + col, true
	case UpperTriangular:
		if row > col {
			return 0, false
		}

		return col*(col+1)/2 + row, true
	default:
		return row*cols + col, true
	}
}

// IsWritable reports whether (row, col) may be assigned.
func (l Layout) IsWritable(row, col int) bool {
	switch l {
	case LowerTriangular:
		return col <= row
	case UpperTriangular:
		return row <= col
	default:
		return true
	}
}

// Transposed returns the layout of the transpose: Lower↔Upper, others unchanged.
func (l Layout) Transposed() Layout {
	switch l {
	case LowerTriangular:
		return UpperTriangular
	case UpperTriangular:
		return LowerTriangular
	default:
		return l
	}
}

// rowSpan returns the half-open column range [lo, hi) holding the possibly
// non-zero entries of row i in an n-column matrix with this layout.
func (l Layout) rowSpan(i, n int) (lo, hi int) {
	switch l {
	case LowerTriangular:
		return 0, i + 1
	case UpperTriangular:
		return i, n
	default:
		return 0, n
	}
}

// colSpan returns the half-open row range [lo, hi) holding the possibly
// non-zero entries of column j in an n-row matrix with this layout.
func (l Layout) colSpan(j, n int) (lo, hi int) {
	switch l {
	case LowerTriangular:
		return j, n
	case UpperTriangular:
		return 0, j + 1
	default:
		return 0, n
	}
}

// ---------- Promotion tables ----------

// promoteAdd[a][b] is the result layout of a±b.
// Only identical packed layouts survive; everything else is Full.
var promoteAdd = [layoutCount][layoutCount]Layout{
	Full:            {Full, Full, Full, Full},
	Symmetric:       {Full, Symmetric, Full, Full},
	LowerTriangular: {Full, Full, LowerTriangular, Full},
	UpperTriangular: {Full, Full, Full, UpperTriangular},
}

// promoteMul[a][b] is the result layout of a×b.
// Triangular patterns are closed under multiplication; symmetric ones are not.
var promoteMul = [layoutCount][layoutCount]Layout{
	Full:            {Full, Full, Full, Full},
	Symmetric:       {Full, Full, Full, Full},
	LowerTriangular: {Full, Full, LowerTriangular, Full},
	UpperTriangular: {Full, Full, Full, UpperTriangular},
}

// PromoteAdd returns the layout produced by adding or subtracting a and b.
func PromoteAdd(a, b Layout) Layout {
	if !a.valid() || !b.valid() {
		return Full
	}

	return promoteAdd[a][b]
}

// PromoteMul returns the layout produced by multiplying a by b.
func PromoteMul(a, b Layout) Layout {
	if !a.valid() || !b.valid() {
		return Full
	}

	return promoteMul[a][b]
}
