// SPDX-License-Identifier: MIT

// Package matrix - CDense: complex128 row-major storage.
//
// Purpose:
//   - Mirror Dense for complex entries with the same bounds and numeric policy.
//   - Offer the real/complex bridges the hafnian dispatcher needs
//     (IsRealValued, RealPart, Complexify).
//
// Complexity quicksheet:
//   - NewCDense: O(r*c); At/Set: O(1); Clone/Flatten/RealPart: O(r*c).

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// cdenseErrorf wraps an error with CDense context and coordinates.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFiniteC reports whether either component of v is NaN or ±Inf.
func isNonFiniteC(v complex128) bool { return cmplx.IsNaN(v) || cmplx.IsInf(v) }

// CDense is a concrete row-major matrix of complex128 values.
type CDense struct {
	r, c           int          // row and column counts (>=0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

var (
	_ CMatrix      = (*CDense)(nil)
	_ fmt.Stringer = (*CDense)(nil)
)

// NewCDense creates an r×c complex zero matrix.
// Errors: ErrInvalidDimensions for negative dimensions.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int, opts ...Option) (*CDense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &CDense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewCDenseFromRows copies a complex row-slice literal into a new CDense.
// Errors: ErrBadShape for ragged input; ErrNaNInf when the policy rejects a value.
// Complexity: O(r*c).
func NewCDenseFromRows(rows [][]complex128, opts ...Option) (*CDense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewCDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, cdenseErrorf(ctxFromRows, i, len(rows[i]), ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFiniteC(rows[i][j]) {
				return nil, cdenseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *CDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *CDense) Cols() int { return m.c }

func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *CDense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cdenseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col); NaN/Inf in either part is rejected under the
// default numeric policy.
func (m *CDense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cdenseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFiniteC(v) {
		return cdenseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with the same numeric policy.
func (m *CDense) Clone() CMatrix {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Flatten returns an independent row-major copy of the elements.
// Complexity: O(r*c).
func (m *CDense) Flatten() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// IsRealValued reports whether every imaginary part is exactly zero.
// Implementation:
//   - Stage 1: linear scan with early exit on the first non-zero imaginary part.
//
// Behavior highlights:
//   - -0 imaginary parts count as zero; NaN imaginary parts do not.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *CDense) IsRealValued() bool {
	for _, v := range m.data {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

// RealPart returns a Dense holding the real parts, with the same numeric policy.
// Complexity: O(r*c).
func (m *CDense) RealPart() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for k, v := range m.data {
		out.data[k] = real(v)
	}

	return out
}

// String renders rows as lines with comma-separated values (diagnostics only).
func (m *CDense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
