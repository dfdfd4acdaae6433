// SPDX-License-Identifier: MIT

// Package matrix - layout-tagged Matrix storage & safe accessors.
//
// Purpose:
//   - One concrete Matrix type whose flat buffer is interpreted through its Layout.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Assignment always produces an independent copy: every constructor and
//     operation allocates its own buffer, so two matrices never share storage.
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(1); Clone/Dense/Packed: O(size).

package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/linalg/numeric"
)

// Float is the element constraint (float32 or float64, including named types).
type Float = numeric.Float

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSetRow = "SetRow"
	ctxSetCol = "SetCol"
	ctxNew    = "New"
	ctxRows   = "NewFromRows"
	ctxPacked = "FromPacked"
	ctxCopy   = "CopyFrom"
	ctxDiag   = "Diagonal"
	ctxIdent  = "Identity"
	ctxRandom = "Random"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols matrix of T stored according to its Layout.
//   - r,c hold dimensions (rows, cols); both > 0, and r == c for packed layouts.
//   - data has exactly layout.PhysicalSize(r, c) elements and is never resized.
//   - validateNaNInf enables NaN/Inf rejection in Set (policy from options.go).
type Matrix[T Float] struct {
	r, c           int
	layout         Layout
	data           []T
	validateNaNInf bool
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// validateShape checks the dimension contract of a layout.
func validateShape(rows, cols int, layout Layout) error {
	if !layout.valid() {
		return ErrUnknownLayout
	}
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if layout.Packed() && rows != cols {
		return ErrNonSquare
	}

	return nil
}

// newMatrix allocates without validation; callers guarantee the shape contract.
func newMatrix[T Float](rows, cols int, layout Layout, validateNaNInf bool) *Matrix[T] {
	return &Matrix[T]{
		r:              rows,
		c:              cols,
		layout:         layout,
		data:           make([]T, layout.PhysicalSize(rows, cols)),
		validateNaNInf: validateNaNInf,
	}
}

// New creates a rows×cols zero matrix with the given layout.
//
// Errors:
//   - ErrInvalidDimensions (rows or cols ≤ 0), ErrNonSquare (packed layout, rows≠cols),
//     ErrUnknownLayout.
//
// Complexity: Time O(size), Space O(size).
func New[T Float](rows, cols int, layout Layout, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols, layout); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)

	return newMatrix[T](rows, cols, layout, o.validateNaNInf), nil
}

// NewFromRows builds a matrix from a flat row-major logical source of rows*cols values.
// MAIN DESCRIPTION:
//   - The source is always the full logical matrix; the layout decides what is kept.
//
// Implementation:
//   - Stage 1: validate shape and len(src) == rows*cols.
//   - Stage 2: validate the layout invariant against the source:
//     Symmetric → src[i][j] ≈ src[j][i] (relative tolerance from options);
//     Lower/Upper → the forbidden half is exactly zero.
//   - Stage 3: copy stored cells into the packed buffer (Symmetric keeps the lower value).
//
// Errors:
//   - ErrDimensionMismatch, ErrAsymmetry, ErrNotTriangular, ErrNaNInf plus shape errors.
//
// Complexity: Time O(rows*cols), Space O(size).
func NewFromRows[T Float](rows, cols int, layout Layout, src []T, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols, layout); err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}
	if len(src) != rows*cols {
		return nil, matrixErrorf(ctxRows, fmt.Errorf("len(src)=%d want %d: %w", len(src), rows*cols, ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range src {
			if !isFinite(v) {
				return nil, matrixErrorf(ctxRows, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf))
			}
		}
	}

	if layout == Symmetric {
		if i, j, ok := symmetricRows(src, rows, o.symTol); !ok {
			return nil, matrixErrorf(ctxRows, denseErrorf(ctxSet, i, j, ErrAsymmetry))
		}
	}

	m := newMatrix[T](rows, cols, layout, o.validateNaNInf)
	var i, j, off int
	var stored bool
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v := src[i*cols+j]
			switch layout {
			case Symmetric:
				if j > i {
					continue // lower value wins
				}
			case LowerTriangular, UpperTriangular:
				if !layout.IsWritable(i, j) {
					if v != 0 {
						return nil, matrixErrorf(ctxRows, denseErrorf(ctxSet, i, j, ErrNotTriangular))
					}
					continue
				}
			}
			off, stored = layout.Offset(cols, i, j)
			if stored {
				m.data[off] = v
			}
		}
	}

	return m, nil
}

// FromPacked builds an n×n (or rows×cols for Full) matrix from elements in storage order.
// len(packed) must equal layout.PhysicalSize(rows, cols).
func FromPacked[T Float](rows, cols int, layout Layout, packed []T, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols, layout); err != nil {
		return nil, matrixErrorf(ctxPacked, err)
	}
	want := layout.PhysicalSize(rows, cols)
	if len(packed) != want {
		return nil, matrixErrorf(ctxPacked, fmt.Errorf("len(packed)=%d want %d: %w", len(packed), want, ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for _, v := range packed {
			if !isFinite(v) {
				return nil, matrixErrorf(ctxPacked, ErrNaNInf)
			}
		}
	}
	m := newMatrix[T](rows, cols, layout, o.validateNaNInf)
	copy(m.data, packed)

	return m, nil
}

// Identity returns the n×n identity in the requested layout.
func Identity[T Float](n int, layout Layout, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, n, layout, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxIdent, err)
	}
	for i := 0; i < n; i++ {
		m.set(i, i, 1)
	}

	return m, nil
}

// Diagonal returns a square matrix with vals on the diagonal, typical for covariances.
func Diagonal[T Float](layout Layout, vals ...T) (*Matrix[T], error) {
	m, err := New[T](len(vals), len(vals), layout)
	if err != nil {
		return nil, matrixErrorf(ctxDiag, err)
	}
	for i, v := range vals {
		if err = m.Set(i, i, v); err != nil {
			return nil, matrixErrorf(ctxDiag, err)
		}
	}

	return m, nil
}

// Random fills every writable cell with a uniform value in [-1, 1) drawn from rng.
// The generator is injected so callers control seeding and sharing.
func Random[T Float](rng *rand.Rand, rows, cols int, layout Layout) (*Matrix[T], error) {
	if rng == nil {
		return nil, matrixErrorf(ctxRandom, ErrNilMatrix)
	}
	m, err := New[T](rows, cols, layout)
	if err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}
	for k := range m.data {
		m.data[k] = T(2*rng.Float64() - 1)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Layout returns the storage layout.
func (m *Matrix[T]) Layout() Layout { return m.layout }

// IsSquare reports whether Rows()==Cols().
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// PhysicalSize returns the number of stored elements.
func (m *Matrix[T]) PhysicalSize() int { return len(m.data) }

// checkIndex bounds-checks (row, col).
func (m *Matrix[T]) checkIndex(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// get reads a bounds-checked cell; structural zeros read as 0.
func (m *Matrix[T]) get(row, col int) T {
	off, stored := m.layout.Offset(m.c, row, col)
	if !stored {
		return 0
	}

	return m.data[off]
}

// set writes a bounds-checked, writable cell without policy checks.
func (m *Matrix[T]) set(row, col int, v T) {
	off, _ := m.layout.Offset(m.c, row, col)
	m.data[off] = v
}

// At returns the value at (row, col) or ErrOutOfRange.
// Structural zeros of triangular layouts read as 0.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if err := m.checkIndex(row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.get(row, col), nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with write protection and optional finite-only policy.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: reject structural-zero cells (ErrWriteProtected).
//   - Stage 3: enforce numeric policy, then write through the layout offset.
//
// Behavior highlights:
//   - Symmetric: Set(i,j) also changes At(j,i) (single shared cell).
//
// Errors:
//   - ErrOutOfRange, ErrWriteProtected, ErrNaNInf.
//
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !m.layout.IsWritable(row, col) {
		return denseErrorf(ctxSet, row, col, ErrWriteProtected)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.set(row, col, v)

	return nil
}

// Clone returns a deep copy (new buffer, same layout and policy).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := newMatrix[T](m.r, m.c, m.layout, m.validateNaNInf)
	copy(cp.data, m.data)

	return cp
}

// CopyFrom assigns src into m. Shapes and layouts must match exactly.
// The copy is always independent of src.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxCopy, ErrNilMatrix)
	}
	if m.r != src.r || m.c != src.c || m.layout != src.layout {
		return matrixErrorf(ctxCopy, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Dense returns a Full-layout copy with every logical cell materialized.
func (m *Matrix[T]) Dense() *Matrix[T] {
	if m.layout == Full {
		return m.Clone()
	}
	out := newMatrix[T](m.r, m.c, Full, m.validateNaNInf)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.get(i, j)
		}
	}

	return out
}

// Packed returns a copy of the physical storage in storage order.
func (m *Matrix[T]) Packed() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// RawRows returns the logical matrix as a flat row-major copy.
func (m *Matrix[T]) RawRows() []T {
	out := make([]T, m.r*m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[i*m.c+j] = m.get(i, j)
		}
	}

	return out
}

// Row extracts row i as a Cartesian vector.
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	v := newCartesian[T](m.c)
	for j := 0; j < m.c; j++ {
		v.data[j] = m.get(i, j)
	}

	return v, nil
}

// Col extracts column j as a Cartesian vector.
func (m *Matrix[T]) Col(j int) (*Vector[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	v := newCartesian[T](m.r)
	for i := 0; i < m.r; i++ {
		v.data[i] = m.get(i, j)
	}

	return v, nil
}

// SetRow assigns v to row i. Structural-zero cells must receive 0; any other
// value is a write-protection error and leaves m unchanged.
func (m *Matrix[T]) SetRow(i int, v *Vector[T]) error {
	if v == nil {
		return matrixErrorf(ctxSetRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if v.Len() != m.c {
		return matrixErrorf(ctxSetRow, ErrDimensionMismatch)
	}
	vals := v.cartesian()
	if err := m.checkLine(vals, func(k int) (int, int) { return i, k }, ctxSetRow); err != nil {
		return err
	}
	for j := 0; j < m.c; j++ {
		if m.layout.IsWritable(i, j) {
			m.set(i, j, vals[j])
		}
	}

	return nil
}

// SetCol assigns v to column j with the same rules as SetRow.
func (m *Matrix[T]) SetCol(j int, v *Vector[T]) error {
	if v == nil {
		return matrixErrorf(ctxSetCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if v.Len() != m.r {
		return matrixErrorf(ctxSetCol, ErrDimensionMismatch)
	}
	vals := v.cartesian()
	if err := m.checkLine(vals, func(k int) (int, int) { return k, j }, ctxSetCol); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		if m.layout.IsWritable(i, j) {
			m.set(i, j, vals[i])
		}
	}

	return nil
}

// checkLine validates a whole row/column write before mutating anything.
func (m *Matrix[T]) checkLine(vals []T, at func(k int) (int, int), ctx string) error {
	for k, v := range vals {
		i, j := at(k)
		if !m.layout.IsWritable(i, j) && v != 0 {
			return denseErrorf(ctx, i, j, ErrWriteProtected)
		}
		if m.validateNaNInf && !isFinite(v) {
			return denseErrorf(ctx, i, j, ErrNaNInf)
		}
	}

	return nil
}

// Do visits every logical cell in row-major order; stops early when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.get(i, j)) {
				return
			}
		}
	}
}

// String renders the bracket text form, e.g. "[ 1 2 ; 3 4 ]".
func (m *Matrix[T]) String() string { return FormatMatrix(m) }

// Equal reports exact logical equality (layouts may differ).
func Equal[T Float](a, b *Matrix[T]) bool {
	return EqualApprox(a, b, numeric.Tolerance{})
}

// EqualApprox reports logical equality under tol (layouts may differ).
func EqualApprox[T Float](a, b *Matrix[T], tol numeric.Tolerance) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if !numeric.Equal(tol, a.get(i, j), b.get(i, j)) {
				return false
			}
		}
	}

	return true
}

func isFinite[T Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
