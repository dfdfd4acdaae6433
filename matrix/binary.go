// SPDX-License-Identifier: MIT

// Package matrix - binary serialization.
//
// Format: the physical elements in storage order, little-endian IEEE-754 in the
// precision of T, no header. Packed layouts therefore write n(n+1)/2 elements, and the
// reader must already know shape and layout (a shaped receiver).
package matrix

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/linalg/numeric"
)

const (
	opWriteTo  = "WriteTo"
	opReadFrom = "ReadFrom"
)

func encodeElems[T Float](data []T) []byte {
	if numeric.BitSize[T]() == 32 {
		buf := make([]byte, 4*len(data))
		for k, v := range data {
			binary.LittleEndian.PutUint32(buf[4*k:], math.Float32bits(float32(v)))
		}

		return buf
	}
	buf := make([]byte, 8*len(data))
	for k, v := range data {
		binary.LittleEndian.PutUint64(buf[8*k:], math.Float64bits(float64(v)))
	}

	return buf
}

func decodeElems[T Float](r io.Reader, dst []T) (int64, error) {
	size := numeric.BitSize[T]() / 8
	buf := make([]byte, size*len(dst))
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), err
	}
	for k := range dst {
		if size == 4 {
			dst[k] = T(math.Float32frombits(binary.LittleEndian.Uint32(buf[4*k:])))
		} else {
			dst[k] = T(math.Float64frombits(binary.LittleEndian.Uint64(buf[8*k:])))
		}
	}

	return int64(n), nil
}

// WriteTo implements io.WriterTo, writing the packed storage of m.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, matrixErrorf(opWriteTo, ErrNilMatrix)
	}
	n, err := w.Write(encodeElems(m.data))
	if err != nil {
		return int64(n), matrixErrorf(opWriteTo, err)
	}

	return int64(n), nil
}

// ReadFrom reads exactly PhysicalSize() elements into m's storage.
// m must be shaped (created by New or any other constructor). On error m is unchanged.
func (m *Matrix[T]) ReadFrom(r io.Reader) (int64, error) {
	if err := ValidateShaped(m); err != nil {
		return 0, matrixErrorf(opReadFrom, err)
	}
	tmp := make([]T, len(m.data))
	n, err := decodeElems(r, tmp)
	if err != nil {
		return n, matrixErrorf(opReadFrom, err)
	}
	if m.validateNaNInf {
		for k, v := range tmp {
			if !isFinite(v) {
				return n, matrixErrorf(opReadFrom, fmt.Errorf("element %d: %w", k, ErrNaNInf))
			}
		}
	}
	copy(m.data, tmp)

	return n, nil
}

// WriteTo implements io.WriterTo, writing the stored values of v
// (components for Cartesian, length then angles for Polar).
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	if v == nil {
		return 0, matrixErrorf(opWriteTo, ErrNilMatrix)
	}
	n, err := w.Write(encodeElems(v.data))
	if err != nil {
		return int64(n), matrixErrorf(opWriteTo, err)
	}

	return int64(n), nil
}

// ReadFrom reads Len() stored values into v, keeping its representation.
func (v *Vector[T]) ReadFrom(r io.Reader) (int64, error) {
	if err := ValidateVector(v); err != nil {
		return 0, matrixErrorf(opReadFrom, err)
	}
	tmp := make([]T, len(v.data))
	n, err := decodeElems(r, tmp)
	if err != nil {
		return n, matrixErrorf(opReadFrom, err)
	}
	copy(v.data, tmp)

	return n, nil
}
