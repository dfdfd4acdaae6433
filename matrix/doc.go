// SPDX-License-Identifier: MIT

// Package matrix implements fixed-size dense matrices and vectors over float32 / float64.
//
// The matrix package provides:
//
//   - Matrix[T] with four storage layouts: Full (row-major), Symmetric, LowerTriangular
//     and UpperTriangular (packed n(n+1)/2 storage). Structural zeros of the triangular
//     layouts read as 0 and are write-protected.
//   - Cross-layout arithmetic (Add, Sub, Mul, Scale, DivScalar, Transpose) with a fixed
//     promotion policy: identical packed layouts are preserved by Add/Sub, triangular
//     layouts are preserved by Mul with themselves, everything else promotes to Full.
//   - Square operations: Trace, Det, Minor, Cofactor, Adjugate, Inverse (cofactor method).
//   - Rotations for 3×3 and homogeneous 4×4 matrices: axis/angle, quaternion (gonum
//     num/quat), roll/pitch/yaw in the ZYX convention; translation accessors and
//     MulHomogeneous for affine transforms.
//   - Vector[T] in Cartesian or Polar (hyperspherical) representation with dot, cross,
//     Schur product, normalization and rotations.
//   - Text (bracket / tuple / bare) and little-endian binary formats.
//
// Sizes are fixed when a value is constructed. Every operation returns a new value
// with its own buffer; no two matrices ever share storage.
//
// Errors are package sentinels (ErrNonSquare, ErrSingular, ...) wrapped with the
// operation name; match them with errors.Is. LU and Cholesky live in package decomp.
package matrix
