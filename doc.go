// SPDX-License-Identifier: MIT

// Package linalg is a small fixed-size dense linear algebra engine for poses,
// transformations and covariance computations.
//
// 🚀 What is inside?
//
//	• numeric/ - float comparison policy (absolute, relative, ULP distance)
//	• matrix/  - Matrix[T] with Full, Symmetric, LowerTriangular and UpperTriangular
//	             storage, cross-layout arithmetic, determinant & cofactor inverse,
//	             rotations (axis/angle, quaternion, roll/pitch/yaw), homogeneous
//	             transforms, Cartesian/Polar vectors, text & binary formats
//	• decomp/  - LU (scaled partial pivoting) and Cholesky with triangular solves
//
// ✨ Why?
//
//   - Packed storage: symmetric and triangular matrices keep n(n+1)/2 elements and
//     arithmetic writes only the cells the result layout stores.
//   - Loud failures: every invalid input is a sentinel error (errors.Is), never NaN.
//   - Value semantics: operations return fresh matrices; nothing shares storage.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows(3, 3, matrix.Symmetric, []float64{
//		1, 2, 3,
//		2, 5, 7,
//		3, 7, 26,
//	})
//	ch, _ := decomp.NewCholesky(a)
//	b, _ := matrix.NewVector(10.0, 23, 49)
//	x, _ := ch.Solve(b) // (3, 2, 1)
//
// See examples/pose_covariance for a complete program.
package linalg
