// SPDX-License-Identifier: MIT

// Package matrix - conversions between storage forms.
//
// Purpose:
//   - Ingest gonum matrices (mat.Matrix, mat.CMatrix) into Dense / CDense.
//   - Export Dense / CDense back to row slices for reporting.
//   - Lift real matrices into the complex field (Complexify).
//
// Determinism:
//   - All copies walk rows then columns in ascending order.
//
// AI-Hints:
//   - Converted matrices never alias the source: mutate either side freely.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// NewDenseFromGonum copies any gonum real matrix (e.g. *mat.Dense, *mat.SymDense)
// into a new Dense.
// Implementation:
//   - Stage 1: read Dims(); allocate Dense.
//   - Stage 2: copy via At in i→j order, enforcing the numeric policy.
//
// Errors:
//   - ErrNilMatrix for a nil interface or nil gonum pointer; ErrNaNInf when the policy rejects a value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilGonum(src) {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewCDenseFromGonum copies any gonum complex matrix (e.g. *mat.CDense) into a
// new CDense.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func NewCDenseFromGonum(src mat.CMatrix, opts ...Option) (*CDense, error) {
	if isNilGonumC(src) {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	m, err := NewCDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v complex128
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if m.validateNaNInf && isNonFiniteC(v) {
				return nil, cdenseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// CopyOf copies any Matrix into a new Dense with the given policy.
// A *Dense source takes the flat-copy fast path.
// Errors: ErrNilMatrix; ErrNaNInf under the validating policy.
// Complexity: O(r*c).
func CopyOf(src Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	m, err := NewDense(src.Rows(), src.Cols(), opts...)
	if err != nil {
		return nil, err
	}
	if d, ok := src.(*Dense); ok {
		copy(m.data, d.data)
	} else {
		var i, j int
		for i = 0; i < m.r; i++ {
			for j = 0; j < m.c; j++ {
				m.data[i*m.c+j], _ = src.At(i, j)
			}
		}
	}
	if m.validateNaNInf {
		if err = ValidateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// CopyOfC is CopyOf for complex matrices.
func CopyOfC(src CMatrix, opts ...Option) (*CDense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	m, err := NewCDense(src.Rows(), src.Cols(), opts...)
	if err != nil {
		return nil, err
	}
	if d, ok := src.(*CDense); ok {
		copy(m.data, d.data)
	} else {
		var i, j int
		for i = 0; i < m.r; i++ {
			for j = 0; j < m.c; j++ {
				m.data[i*m.c+j], _ = src.At(i, j)
			}
		}
	}
	if m.validateNaNInf {
		if err = ValidateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Complexify lifts a real matrix into a CDense with zero imaginary parts.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Complexify(src Matrix) (*CDense, error) {
	d, err := CopyOf(src, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	out := &CDense{r: d.r, c: d.c, data: make([]complex128, len(d.data)), validateNaNInf: DefaultValidateNaNInf}
	for k, v := range d.data {
		out.data[k] = complex(v, 0)
	}

	return out, nil
}

// ToRows exports a Dense as a freshly allocated [][]float64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// isNilGonum reports a nil interface or a nil pointer to a concrete gonum type.
func isNilGonum(src mat.Matrix) bool {
	switch v := src.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil
	case *mat.SymDense:
		return v == nil
	case *mat.TriDense:
		return v == nil
	case *mat.BandDense:
		return v == nil
	case *mat.SymBandDense:
		return v == nil
	case *mat.DiagDense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	}

	return false
}

// isNilGonumC is isNilGonum for complex sources.
func isNilGonumC(src mat.CMatrix) bool {
	switch v := src.(type) {
	case nil:
		return true
	case *mat.CDense:
		return v == nil
	}

	return false
}
