// SPDX-License-Identifier: MIT

package decomp_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/matrix"
)

type CholeskySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *CholeskySuite) SetupTest() {
	s.rng = rand.New(rand.NewPCG(41, 42))
}

// spd builds B·Bᵗ + n·I, which is symmetric positive definite.
func (s *CholeskySuite) spd(n int, layout matrix.Layout) *matrix.Matrix[float64] {
	require := require.New(s.T())
	b, err := matrix.Random[float64](s.rng, n, n, matrix.Full)
	require.NoError(err)
	bbt, err := matrix.Mul(b, b.Transposed())
	require.NoError(err)
	raw := bbt.RawRows()
	for i := 0; i < n; i++ {
		raw[i*n+i] += float64(n)
	}
	a, err := matrix.NewFromRows(n, n, layout, raw)
	require.NoError(err)

	return a
}

func (s *CholeskySuite) TestKnownFactor() {
	require := require.New(s.T())
	a, err := matrix.NewFromRows(3, 3, matrix.Symmetric, []float64{1, 2, 3, 2, 5, 7, 3, 7, 26})
	require.NoError(err)

	ch, err := decomp.NewCholesky(a)
	require.NoError(err)
	require.Equal(3, ch.Size())
	c := ch.L()
	require.Equal(matrix.LowerTriangular, c.Layout())
	require.Equal([]float64{1, 0, 0, 2, 1, 0, 3, 1, 4}, c.RawRows())

	b, err := matrix.NewVector(10.0, 23, 49)
	require.NoError(err)
	x, err := ch.Solve(b)
	require.NoError(err)
	require.Equal([]float64{3, 2, 1}, x.Values())
	require.Equal(16.0, ch.Det())
}

func (s *CholeskySuite) TestReconstructsSource() {
	require := require.New(s.T())
	for n := 1; n <= 7; n++ {
		for _, l := range []matrix.Layout{matrix.Symmetric, matrix.Full} {
			a := s.spd(n, l)
			ch, err := decomp.NewCholesky(a)
			require.NoError(err)

			c := ch.L()
			cct, err := matrix.Mul(c, c.Transposed())
			require.NoError(err)
			requireInDeltaSlice(s.T(), a.RawRows(), cct.RawRows(), 1e-10)

			det, err := matrix.Det(a)
			require.NoError(err)
			require.InEpsilon(det, ch.Det(), 1e-9)
		}
	}
}

func (s *CholeskySuite) TestMatchesGonum() {
	require := require.New(s.T())
	const n = 6
	a := s.spd(n, matrix.Symmetric)

	var chol mat.Cholesky
	require.True(chol.Factorize(mat.NewSymDense(n, a.RawRows())))
	var lt mat.TriDense
	chol.LTo(&lt)

	ch, err := decomp.NewCholesky(a)
	require.NoError(err)
	want := mat.DenseCopyOf(&lt)
	requireInDeltaSlice(s.T(), want.RawMatrix().Data, ch.L().RawRows(), 1e-12)

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = s.rng.Float64()
	}
	b, err := matrix.NewVector(rhs...)
	require.NoError(err)
	got, err := ch.Solve(b)
	require.NoError(err)
	var x mat.VecDense
	require.NoError(chol.SolveVecTo(&x, mat.NewVecDense(n, rhs)))
	requireInDeltaSlice(s.T(), x.RawVector().Data, got.Values(), 1e-12)
}

func (s *CholeskySuite) TestNotPositiveDefinite() {
	require := require.New(s.T())
	for _, src := range [][]float64{
		{1, 2, 2, 1},
		{-1, 0, 0, 1},
		{0, 0, 0, 0},
	} {
		a, err := matrix.NewFromRows(2, 2, matrix.Symmetric, src)
		require.NoError(err)
		_, err = decomp.NewCholesky(a)
		require.ErrorIs(err, decomp.ErrNotPositiveDefinite)
		require.True(errors.Is(err, matrix.ErrSingular))
	}
}

func (s *CholeskySuite) TestNaNPivotRejected() {
	require := require.New(s.T())
	for _, packed := range [][]float64{
		{math.NaN(), 0, 1},
		{1, math.NaN(), 1},
	} {
		a, err := matrix.FromPacked(2, 2, matrix.Symmetric, packed, matrix.WithNoValidateNaNInf())
		require.NoError(err)
		ch, err := decomp.NewCholesky(a)
		require.ErrorIs(err, decomp.ErrNotPositiveDefinite)
		require.Nil(ch)
	}
}

func (s *CholeskySuite) TestValidation() {
	require := require.New(s.T())

	full, err := matrix.NewFromRows(2, 2, matrix.Full, []float64{4, 1, 1.001, 3})
	require.NoError(err)
	_, err = decomp.NewCholesky(full)
	require.ErrorIs(err, matrix.ErrAsymmetry)
	_, err = decomp.NewCholesky(full, decomp.WithSymmetryTolerance(1e-2))
	require.NoError(err)

	lower, err := matrix.NewFromRows(2, 2, matrix.LowerTriangular, []float64{4, 0, 1, 3})
	require.NoError(err)
	_, err = decomp.NewCholesky(lower)
	require.ErrorIs(err, matrix.ErrAsymmetry)

	rect, err := matrix.New[float64](2, 3, matrix.Full)
	require.NoError(err)
	_, err = decomp.NewCholesky(rect)
	require.ErrorIs(err, matrix.ErrNonSquare)

	_, err = decomp.NewCholesky[float64](nil)
	require.ErrorIs(err, matrix.ErrNilMatrix)

	_, err = decomp.NewCholesky(new(matrix.Matrix[float64]))
	require.ErrorIs(err, matrix.ErrInvalidDimensions)

	a := s.spd(3, matrix.Symmetric)
	ch, err := decomp.NewCholesky(a)
	require.NoError(err)
	short, err := matrix.NewVector(1.0, 2)
	require.NoError(err)
	_, err = ch.Solve(short)
	require.ErrorIs(err, matrix.ErrDimensionMismatch)

	require.Panics(func() { decomp.WithSymmetryTolerance(-1) })
}

func (s *CholeskySuite) TestFloat32() {
	require := require.New(s.T())
	a, err := matrix.NewFromRows(3, 3, matrix.Symmetric, []float32{1, 2, 3, 2, 5, 7, 3, 7, 26})
	require.NoError(err)
	ch, err := decomp.NewCholesky(a)
	require.NoError(err)
	require.Equal([]float32{1, 0, 0, 2, 1, 0, 3, 1, 4}, ch.L().RawRows())
}

func TestCholeskySuite(t *testing.T) {
	suite.Run(t, new(CholeskySuite))
}
