// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestVector_Construction(t *testing.T) {
	_, err := matrix.NewVector[float64]()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.ZeroVector[float64](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewPolar[float64](1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	v := MustVector(t, 1, 2, 3)
	require.Equal(t, 3, v.Len())
	require.Equal(t, matrix.Cartesian, v.Representation())
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)
	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	z, err := matrix.ZeroVector[float32](2)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0}, z.Values())
}

func TestVector_PolarConversion(t *testing.T) {
	p, err := matrix.NewPolar(2.0, math.Pi/2)
	require.NoError(t, err)
	require.Equal(t, matrix.Polar, p.Representation())
	require.Equal(t, 2.0, p.Length())
	requireCloseVec(t, []float64{0, 2}, p, 1e-15)

	y, err := p.At(1)
	require.NoError(t, err)
	require.InDelta(t, 2.0, y, 1e-15)
	require.ErrorIs(t, p.Set(0, 1), matrix.ErrRepresentation)

	for _, vals := range [][]float64{
		{3, 4},
		{-1, -1},
		{1, -2, 3},
		{1, -2, 3, 0.5},
		{0, 0, -2, 1, 4},
	} {
		c := MustVector(t, vals...)
		pol, err := c.ToPolar()
		require.NoError(t, err)
		require.InDelta(t, matrix.Norm(c), pol.Length(), 1e-12)
		angles := pol.Angles()
		require.Len(t, angles, len(vals)-1)
		for k, a := range angles[:len(angles)-1] {
			require.GreaterOrEqual(t, a, 0.0, "angle %d", k)
			require.LessOrEqual(t, a, math.Pi, "angle %d", k)
		}
		requireCloseVec(t, vals, pol.ToCartesian(), 1e-12)

		back, err := pol.As(matrix.Cartesian)
		require.NoError(t, err)
		require.True(t, matrix.EqualVecApprox(c, back, numericTol))
	}

	_, err = MustVector(t, 1).ToPolar()
	require.ErrorIs(t, err, matrix.ErrRepresentation)
	_, err = MustVector(t, 1, 1).As(matrix.Representation(7))
	require.ErrorIs(t, err, matrix.ErrRepresentation)
}

func TestVector_Arithmetic(t *testing.T) {
	a := MustVector(t, 1, 2, 3)
	b := MustVector(t, 4, -5, 6)

	sum, err := matrix.AddVec(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, -3, 9}, sum.Values())
	diff, err := matrix.SubVec(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 7, -3}, diff.Values())

	dot, err := matrix.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, 12.0, dot)

	cross, err := matrix.Cross(MustVector(t, 1, 0, 0), MustVector(t, 0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, cross.Values())
	_, err = matrix.Cross(MustVector(t, 1, 0), MustVector(t, 0, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	schur, err := matrix.Schur(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, -10, 18}, schur.Values())

	half, err := matrix.DivVec(a, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1, 1.5}, half.Values())
	_, err = matrix.DivVec(a, 0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)

	_, err = matrix.AddVec(a, MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVector_MixedRepresentation(t *testing.T) {
	p, err := matrix.NewPolar(1.0, 0)
	require.NoError(t, err)
	c := MustVector(t, 0, 1)

	sum, err := matrix.AddVec(p, c)
	require.NoError(t, err)
	require.Equal(t, matrix.Polar, sum.Representation())
	require.InDelta(t, math.Sqrt2, sum.Length(), 1e-15)
	requireCloseVec(t, []float64{1, 1}, sum, 1e-15)

	scaled, err := matrix.ScaleVec(p, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 0}, scaled.Storage())

	flipped, err := matrix.ScaleVec(p, -2)
	require.NoError(t, err)
	require.Equal(t, matrix.Polar, flipped.Representation())
	require.InDelta(t, 2.0, flipped.Length(), 1e-15)
	requireCloseVec(t, []float64{-2, 0}, flipped, 1e-15)
}

func TestVector_NormalizeAndRotate(t *testing.T) {
	u, err := matrix.Normalize(MustVector(t, 3, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{0.6, 0.8}, u.Values())
	_, err = matrix.Normalize(MustVector(t, 0, 0))
	require.ErrorIs(t, err, matrix.ErrDivideByZero)

	r, err := matrix.Rotate2D(MustVector(t, 1, 0), math.Pi/2)
	require.NoError(t, err)
	requireCloseVec(t, []float64{0, 1}, r, 1e-15)

	p, err := matrix.NewPolar(2.0, 3.0)
	require.NoError(t, err)
	rp, err := matrix.Rotate2D(p, 0.5)
	require.NoError(t, err)
	require.Equal(t, matrix.Polar, rp.Representation())
	require.InDelta(t, 3.5-2*math.Pi, rp.Angles()[0], 1e-12)

	_, err = matrix.Rotate2D(MustVector(t, 1, 0, 0), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	v, err := matrix.RotateAxis(MustVector(t, 1, 0, 0), MustVector(t, 0, 0, 1), math.Pi/2)
	require.NoError(t, err)
	requireCloseVec(t, []float64{0, 1, 0}, v, 1e-15)

	s, c := matrix.SinCos(float32(math.Pi / 6))
	require.InDelta(t, 0.5, s, 1e-6)
	require.InDelta(t, math.Sqrt(3)/2, c, 1e-6)
}

func TestVector_ZeroValueRejected(t *testing.T) {
	var zero matrix.Vector[float64]
	v := MustVector(t, 1, 2)

	_, err := matrix.AddVec(&zero, &zero)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.SubVec(v, &zero)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Schur(&zero, &zero)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Dot(&zero, &zero)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.ScaleVec(&zero, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.DivVec(&zero, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Normalize(&zero)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.AddVec[float64](nil, v)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVector_CloneIndependent(t *testing.T) {
	a := MustVector(t, 1, 2)
	b := a.Clone()
	require.NoError(t, b.Set(0, 9))
	require.Equal(t, []float64{1, 2}, a.Values())
	require.True(t, matrix.EqualVec(a, a.ToCartesian()))
	require.False(t, matrix.EqualVec(a, b))
}
