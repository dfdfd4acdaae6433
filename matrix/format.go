// SPDX-License-Identifier: MIT

// Package matrix - text formats.
//
// Matrix writer emits the bracket form "[ a b ; c d ]". The parser accepts:
//   - bracket form  "[ a b ; c d ]" (rows separated by ';'),
//   - tuple form    "(a, b, c, d)",
//   - bare form     "a b c d" (whitespace and/or commas).
//
// Vectors use "(a, b, c)". Numbers are written with the shortest representation
// that round-trips in the precision of T.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtRowSep   = ";"
	_fmtTupOpen  = "("
	_fmtTupClose = ")"
	_fmtTupSep   = ", "
)

const (
	opParse       = "Parse"
	opParseVector = "ParseVector"
	opUnmarshal   = "UnmarshalText"
)

func formatElem[T Float](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, numeric.BitSize[T]())
}

// FormatMatrix renders m as "[ a b ; c d ]".
func FormatMatrix[T Float](m *Matrix[T]) string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(" " + _fmtRowSep)
		}
		for j = 0; j < m.c; j++ {
			b.WriteByte(' ')
			b.WriteString(formatElem(m.get(i, j)))
		}
	}
	b.WriteString(" " + _fmtClose)

	return b.String()
}

// FormatVector renders the Cartesian components of v as "(a, b, c)".
func FormatVector[T Float](v *Vector[T]) string {
	if v == nil {
		return "<nil>"
	}
	x := v.cartesian()
	parts := make([]string, len(x))
	for i, e := range x {
		parts[i] = formatElem(e)
	}

	return _fmtTupOpen + strings.Join(parts, _fmtTupSep) + _fmtTupClose
}

// splitFields splits on whitespace and commas.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseElems[T Float](fields []string) ([]T, error) {
	out := make([]T, len(fields))
	bits := numeric.BitSize[T]()
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, bits)
		if err != nil {
			return nil, fmt.Errorf("element %d %q: %w", i, f, ErrParse)
		}
		out[i] = T(v)
	}

	return out, nil
}

// scanMatrix tokenizes any of the three accepted forms.
// rows is the number of ';'-separated rows for the bracket form, or -1 otherwise;
// cols is the width of every bracket row (which must agree), or -1.
func scanMatrix[T Float](s string) (vals []T, rows, cols int, err error) {
	s = strings.TrimSpace(s)
	rows, cols = -1, -1

	switch {
	case strings.HasPrefix(s, _fmtOpen):
		if !strings.HasSuffix(s, _fmtClose) {
			return nil, 0, 0, fmt.Errorf("missing %q: %w", _fmtClose, ErrParse)
		}
		inner := s[len(_fmtOpen) : len(s)-len(_fmtClose)]
		lines := strings.Split(inner, _fmtRowSep)
		rows = len(lines)
		for i, line := range lines {
			fields := splitFields(line)
			if len(fields) == 0 {
				return nil, 0, 0, fmt.Errorf("row %d empty: %w", i, ErrParse)
			}
			if cols == -1 {
				cols = len(fields)
			} else if cols != len(fields) {
				return nil, 0, 0, fmt.Errorf("row %d has %d values, want %d: %w", i, len(fields), cols, ErrParse)
			}
			row, perr := parseElems[T](fields)
			if perr != nil {
				return nil, 0, 0, perr
			}
			vals = append(vals, row...)
		}

		return vals, rows, cols, nil
	case strings.HasPrefix(s, _fmtTupOpen):
		if !strings.HasSuffix(s, _fmtTupClose) {
			return nil, 0, 0, fmt.Errorf("missing %q: %w", _fmtTupClose, ErrParse)
		}
		s = s[len(_fmtTupOpen) : len(s)-len(_fmtTupClose)]
	}

	fields := splitFields(s)
	if len(fields) == 0 {
		return nil, 0, 0, fmt.Errorf("no values: %w", ErrParse)
	}
	vals, err = parseElems[T](fields)

	return vals, rows, cols, err
}

// Parse reads a rows×cols matrix in any accepted text form and builds it with layout.
// Layout invariants are validated exactly as in NewFromRows.
//
// Errors: ErrParse (syntax or shape disagreement) plus NewFromRows errors.
func Parse[T Float](s string, rows, cols int, layout Layout, opts ...Option) (*Matrix[T], error) {
	vals, pr, pc, err := scanMatrix[T](s)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	if pr != -1 && (pr != rows || pc != cols) {
		return nil, matrixErrorf(opParse, fmt.Errorf("text is %dx%d, want %dx%d: %w", pr, pc, rows, cols, ErrParse))
	}
	if len(vals) != rows*cols {
		return nil, matrixErrorf(opParse, fmt.Errorf("%d values, want %d: %w", len(vals), rows*cols, ErrParse))
	}
	m, err := NewFromRows(rows, cols, layout, vals, opts...)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}

// ParseVector reads "(a, b, c)" or bare values into a Cartesian vector.
func ParseVector[T Float](s string) (*Vector[T], error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, _fmtTupOpen) {
		if !strings.HasSuffix(s, _fmtTupClose) {
			return nil, matrixErrorf(opParseVector, ErrParse)
		}
		s = s[len(_fmtTupOpen) : len(s)-len(_fmtTupClose)]
	}
	fields := splitFields(s)
	if len(fields) == 0 {
		return nil, matrixErrorf(opParseVector, ErrParse)
	}
	vals, err := parseElems[T](fields)
	if err != nil {
		return nil, matrixErrorf(opParseVector, err)
	}

	return &Vector[T]{rep: Cartesian, n: len(vals), data: vals}, nil
}

// MarshalText implements encoding.TextMarshaler with the bracket form.
func (m *Matrix[T]) MarshalText() ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return []byte(FormatMatrix(m)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// A shaped receiver parses with its own shape and layout. A zero-value receiver
// accepts only the bracket form and becomes a Full matrix of the parsed shape.
func (m *Matrix[T]) UnmarshalText(text []byte) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r == 0 {
		vals, rows, cols, err := scanMatrix[T](string(text))
		if err != nil {
			return matrixErrorf(opUnmarshal, err)
		}
		if rows == -1 {
			return matrixErrorf(opUnmarshal, fmt.Errorf("shape unknown without bracket form: %w", ErrParse))
		}
		for k, v := range vals {
			if DefaultValidateNaNInf && !isFinite(v) {
				return matrixErrorf(opUnmarshal, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf))
			}
		}
		*m = Matrix[T]{r: rows, c: cols, layout: Full, data: vals, validateNaNInf: DefaultValidateNaNInf}

		return nil
	}
	parsed, err := Parse[T](string(text), m.r, m.c, m.layout, m.options()...)
	if err != nil {
		return matrixErrorf(opUnmarshal, err)
	}
	copy(m.data, parsed.data)

	return nil
}

// MarshalText implements encoding.TextMarshaler with the "(a, b, c)" form.
func (v *Vector[T]) MarshalText() ([]byte, error) {
	if v == nil {
		return nil, ErrNilMatrix
	}

	return []byte(FormatVector(v)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; the result is Cartesian.
func (v *Vector[T]) UnmarshalText(text []byte) error {
	if v == nil {
		return ErrNilMatrix
	}
	parsed, err := ParseVector[T](string(text))
	if err != nil {
		return err
	}
	*v = *parsed

	return nil
}

// options reconstructs the Option set that produced m's policy.
func (m *Matrix[T]) options() []Option {
	if m.validateNaNInf {
		return []Option{WithValidateNaNInf()}
	}

	return []Option{WithNoValidateNaNInf()}
}
