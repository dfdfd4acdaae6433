// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures (explicit values or seeded PCG streams).
//   - A gonum mat oracle for products and inverses.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/numeric"
)

// allLayouts lists every layout in declaration order for cross-product tables.
var allLayouts = []matrix.Layout{
	matrix.Full,
	matrix.Symmetric,
	matrix.LowerTriangular,
	matrix.UpperTriangular,
}

// numericTol is the default comparison used for results of exact-arithmetic fixtures.
var numericTol = numeric.Tolerance{Abs: 1e-9, Rel: 1e-9}

// MustFromRows builds a matrix from a row-major logical source or fails the test.
func MustFromRows(t *testing.T, rows, cols int, layout matrix.Layout, src ...float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows, cols, layout, src)
	require.NoError(t, err)

	return m
}

// MustVector builds a Cartesian vector or fails the test.
func MustVector(t *testing.T, vals ...float64) *matrix.Vector[float64] {
	t.Helper()
	v, err := matrix.NewVector(vals...)
	require.NoError(t, err)

	return v
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRandom draws an n×n matrix in layout from a seeded PCG stream.
func MustRandom(t *testing.T, seed uint64, n int, layout matrix.Layout) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m, err := matrix.Random[float64](rng, n, n, layout)
	require.NoError(t, err)

	return m
}

// oracle converts m into a gonum dense matrix.
func oracle(m *matrix.Matrix[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawRows())
}

// requireClose compares the logical cells of got and the row-major want
// with a mixed absolute/relative tolerance.
func requireClose(t *testing.T, want []float64, got *matrix.Matrix[float64], tol float64) {
	t.Helper()
	opt := cmpopts.EquateApprox(tol, tol)
	if diff := cmp.Diff(want, got.RawRows(), opt); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// requireCloseVec compares Cartesian components with tolerance.
func requireCloseVec(t *testing.T, want []float64, got *matrix.Vector[float64], tol float64) {
	t.Helper()
	opt := cmpopts.EquateApprox(tol, tol)
	if diff := cmp.Diff(want, got.Values(), opt); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}
