// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestAxisAngle_RoundTrip(t *testing.T) {
	cases := []struct {
		axis  []float64
		angle float64
	}{
		{[]float64{1, 2, 3}, 0.7},
		{[]float64{1, 0, 0}, 3.0},  // r00 branch
		{[]float64{0, 1, 0}, 3.0},  // r11 branch
		{[]float64{0, 0, -1}, 2.9}, // r22 branch
		{[]float64{-1, 1, 0.5}, 1e-3},
	}
	for _, dim := range []int{3, 4} {
		for k, tc := range cases {
			t.Run(fmt.Sprintf("%d/%d", dim, k), func(t *testing.T) {
				axis := MustVector(t, tc.axis...)
				r, err := matrix.RotationFromAxisAngle(axis, tc.angle, dim)
				require.NoError(t, err)
				require.Equal(t, dim, r.Rows())

				det, err := matrix.Det(r)
				require.NoError(t, err)
				require.InDelta(t, 1.0, det, 1e-12)

				gotAxis, gotAngle, err := matrix.AxisAngle(r)
				require.NoError(t, err)
				require.InDelta(t, tc.angle, gotAngle, 1e-9)
				unit, err := matrix.Normalize(axis)
				require.NoError(t, err)
				requireCloseVec(t, unit.Values(), gotAxis, 1e-9)
			})
		}
	}
}

func TestAxisAngle_Identity(t *testing.T) {
	id, err := matrix.Identity[float64](3, matrix.Full)
	require.NoError(t, err)
	axis, angle, err := matrix.AxisAngle(id)
	require.NoError(t, err)
	require.Zero(t, angle)
	require.Equal(t, []float64{1, 0, 0}, axis.Values())
}

func TestQuaternion_RoundTrip(t *testing.T) {
	q := quat.Number{Real: 0.2, Imag: -0.5, Jmag: 0.7, Kmag: 0.1}
	r, err := matrix.RotationFromQuaternion[float64](q, 4)
	require.NoError(t, err)

	got, err := matrix.Quaternion(r)
	require.NoError(t, err)
	want := quat.Scale(1/quat.Abs(q), q)
	require.InDelta(t, want.Real, got.Real, 1e-12)
	require.InDelta(t, want.Imag, got.Imag, 1e-12)
	require.InDelta(t, want.Jmag, got.Jmag, 1e-12)
	require.InDelta(t, want.Kmag, got.Kmag, 1e-12)

	// -q describes the same rotation; extraction canonicalizes Real ≥ 0.
	r2, err := matrix.RotationFromQuaternion[float64](quat.Scale(-1, q), 3)
	require.NoError(t, err)
	got2, err := matrix.Quaternion(r2)
	require.NoError(t, err)
	require.InDelta(t, want.Real, got2.Real, 1e-12)

	_, err = matrix.RotationFromQuaternion[float64](quat.Number{}, 3)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
	_, err = matrix.RotationFromQuaternion[float64](q, 5)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Quaternion(MustFromRows(t, 2, 2, matrix.Full, 1, 0, 0, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRPY_BothSolutions(t *testing.T) {
	const roll, pitch, yaw = 0.3, -0.4, 1.2
	r, err := matrix.RotationFromRPY(roll, pitch, yaw, 3)
	require.NoError(t, err)

	gr, gp, gy, err := matrix.RPY(r, false)
	require.NoError(t, err)
	require.InDelta(t, roll, gr, 1e-12)
	require.InDelta(t, pitch, gp, 1e-12)
	require.InDelta(t, yaw, gy, 1e-12)

	sr, sp, sy, err := matrix.RPY(r, true)
	require.NoError(t, err)
	require.InDelta(t, math.Pi-pitch-2*math.Pi, sp, 1e-12)
	back, err := matrix.RotationFromRPY(sr, sp, sy, 3)
	require.NoError(t, err)
	requireClose(t, r.RawRows(), back, 1e-12)
}

func TestRPY_GimbalLock(t *testing.T) {
	for _, pitch := range []float64{math.Pi / 2, -math.Pi / 2} {
		r, err := matrix.RotationFromRPY(0.5, pitch, 0.2, 4)
		require.NoError(t, err)

		gr, gp, gy, err := matrix.RPY(r, false)
		require.NoError(t, err)
		require.Zero(t, gy)
		require.InDelta(t, pitch, gp, 1e-12)

		s1, s2, s3, err := matrix.RPY(r, true)
		require.NoError(t, err)
		require.Equal(t, []float64{gr, gp, gy}, []float64{s1, s2, s3})

		back, err := matrix.RotationFromRPY(gr, gp, gy, 4)
		require.NoError(t, err)
		requireClose(t, r.RawRows(), back, 1e-12)
	}
}

func TestTranslationAndRotationBlocks(t *testing.T) {
	m, err := matrix.Identity[float64](4, matrix.Full)
	require.NoError(t, err)

	require.NoError(t, matrix.SetTranslation(m, MustVector(t, 1, 2, 3)))
	tr, err := matrix.Translation(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, tr.Values())

	rot, err := matrix.RotationFromAxisAngle(MustVector(t, 0, 0, 1), math.Pi/2, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.SetRotation(m, rot))
	block, err := matrix.Rotation(m)
	require.NoError(t, err)
	requireClose(t, rot.RawRows(), block, 1e-15)
	require.Equal(t, 3.0, MustAt(t, m, 2, 3))
	require.Equal(t, 1.0, MustAt(t, m, 3, 3))

	// Write protection applies and leaves m untouched.
	low, err := matrix.Identity[float64](4, matrix.LowerTriangular)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.SetRotation(low, rot), matrix.ErrWriteProtected)
	require.Equal(t, 1.0, MustAt(t, low, 0, 0))
	require.ErrorIs(t, matrix.SetTranslation(low, MustVector(t, 1, 0, 0)), matrix.ErrWriteProtected)
	require.ErrorIs(t, matrix.SetTranslation(m, MustVector(t, 1, 0)), matrix.ErrDimensionMismatch)
}

func TestMulHomogeneous(t *testing.T) {
	rot, err := matrix.RotationFromRPY(0.1, 0.2, 0.3, 3)
	require.NoError(t, err)
	shift := MustVector(t, 5, -1, 2)
	tf, err := matrix.Transform(rot, shift)
	require.NoError(t, err)
	require.Equal(t, 4, tf.Rows())

	p := MustVector(t, 1, 2, 3)
	got, err := matrix.MulHomogeneous(tf, p)
	require.NoError(t, err)

	rp, err := matrix.MulVec(rot, p)
	require.NoError(t, err)
	want, err := matrix.AddVec(rp, shift)
	require.NoError(t, err)
	requireCloseVec(t, want.Values(), got, 1e-12)

	_, err = matrix.MulHomogeneous(tf, MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulHomogeneous(MustFromRows(t, 1, 2, matrix.Full, 1, 2), p)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestMulHomogeneous_2D(t *testing.T) {
	tf := MustFromRows(t, 3, 3, matrix.Full,
		0, -1, 4,
		1, 0, -2,
		0, 0, 1,
	)
	got, err := matrix.MulHomogeneous(tf, MustVector(t, 1, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{3, -1}, got.Values())
}
