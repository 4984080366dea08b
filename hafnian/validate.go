// SPDX-License-Identifier: MIT
// Package hafnian - input validation (fail fast, ordered).
//
// Purpose:
//   - Recognize the supported input structures and copy them into call-local
//     storage, so the caller's matrix is never mutated or retained.
//   - Run the ordered checks: type → shape → parity → symmetry → finiteness,
//     each reporting its own sentinel.
//
// Design principles:
//   - Deterministic, side-effect free; no logging.
//   - Row slices are checked for squareness before they are copied, so ragged
//     input is a shape error rather than a conversion failure.

package hafnian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hafnian/matrix"
)

// operand is a validated, call-local copy of the input.
// Exactly one of re / cx is non-nil, matching storage.
type operand struct {
	storage Field          // field of the storage, not of the content
	dim     int            // 2n
	re      *matrix.Dense  // real storage
	cx      *matrix.CDense // complex storage
}

// n returns the number of index blocks.
func (op operand) n() int { return op.dim / 2 }

// stored returns the stored matrix as the validators' `any` operand.
func (op operand) stored() any {
	if op.re != nil {
		return op.re
	}

	return op.cx
}

// Validate runs the full MatrixValidator on input and reports the storage
// field of the recognized structure.
//
// Implementation:
//   - Stage 1: recognize and copy the structure (ErrTypeMismatch, ErrNilMatrix, ErrShape for ragged rows).
//   - Stage 2: square, even dimension, exact symmetry, finite entries.
//   - Stage 3: capacity (n ≤ MaxBlocks).
//
// Returns:
//   - Field: FieldReal for real storage, FieldComplex for complex storage
//     (content-based demotion is the Dispatcher's job, not the validator's).
//
// Errors:
//   - ErrTypeMismatch, ErrNilMatrix, ErrShape, ErrDimensionParity,
//     ErrAsymmetry, ErrNonFinite, ErrTooLarge (first failing stage wins).
//
// Complexity:
//   - Time O(dim²), Space O(dim²) for the call-local copy.
func Validate(input any) (Field, error) {
	op, err := validate(input)
	if err != nil {
		return 0, err
	}

	return op.storage, nil
}

// validate is Validate returning the call-local operand for the kernels.
func validate(input any) (operand, error) {
	op, err := recognize(input)
	if err != nil {
		return operand{}, hafErrorf(opValidate, err)
	}

	m := op.stored()
	if err = matrix.ValidateSquare(m); err != nil {
		return operand{}, hafErrorf(opValidate, err)
	}
	if err = matrix.ValidateEvenDimension(m); err != nil {
		return operand{}, hafErrorf(opValidate, err)
	}
	if err = matrix.ValidateSymmetricExact(m); err != nil {
		return operand{}, hafErrorf(opValidate, err)
	}
	if err = matrix.ValidateFinite(m); err != nil {
		return operand{}, hafErrorf(opValidate, err)
	}
	if op.n() > MaxBlocks {
		return operand{}, hafErrorf(opValidate, ErrTooLarge)
	}

	return op, nil
}

// recognize maps a supported input onto a call-local operand.
// Order matters: concrete pointer types come before the interfaces they
// implement so typed nils are reported as ErrNilMatrix instead of panicking.
// Nil gonum pointers are caught by the gonum adapters.
func recognize(input any) (operand, error) {
	var (
		re  *matrix.Dense
		cx  *matrix.CDense
		err error
	)
	// Values are copied raw; finiteness is checked later, in order.
	switch v := input.(type) {
	case nil:
		return operand{}, ErrTypeMismatch
	case [][]float64:
		if err = squareRows(len(v), func(i int) int { return len(v[i]) }); err != nil {
			return operand{}, err
		}
		re, err = matrix.NewDenseFromRows(v, matrix.WithNoValidateNaNInf())
	case [][]complex128:
		if err = squareRows(len(v), func(i int) int { return len(v[i]) }); err != nil {
			return operand{}, err
		}
		cx, err = matrix.NewCDenseFromRows(v, matrix.WithNoValidateNaNInf())
	case *matrix.Dense:
		if err = matrix.ValidateNotNil(v); err != nil {
			return operand{}, err
		}
		re, err = matrix.CopyOf(v, matrix.WithNoValidateNaNInf())
	case *matrix.CDense:
		if err = matrix.ValidateNotNil(v); err != nil {
			return operand{}, err
		}
		cx, err = matrix.CopyOfC(v, matrix.WithNoValidateNaNInf())
	case matrix.Matrix:
		re, err = matrix.CopyOf(v, matrix.WithNoValidateNaNInf())
	case matrix.CMatrix:
		cx, err = matrix.CopyOfC(v, matrix.WithNoValidateNaNInf())
	case mat.Matrix:
		re, err = matrix.NewDenseFromGonum(v, matrix.WithNoValidateNaNInf())
	case mat.CMatrix:
		cx, err = matrix.NewCDenseFromGonum(v, matrix.WithNoValidateNaNInf())
	default:
		return operand{}, ErrTypeMismatch
	}
	if err != nil {
		return operand{}, err
	}

	if re != nil {
		return operand{storage: FieldReal, dim: re.Rows(), re: re}, nil
	}

	return operand{storage: FieldComplex, dim: cx.Rows(), cx: cx}, nil
}

// squareRows rejects row slices whose rows are not all of length rows.
func squareRows(rows int, rowLen func(i int) int) error {
	for i := 0; i < rows; i++ {
		if rowLen(i) != rows {
			return ErrShape
		}
	}

	return nil
}
