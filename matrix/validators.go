// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     match with errors.Is and still read where the check failed.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the strict upper triangle only, i→j order.
//   - *Dense / *CDense operands are scanned on the flat buffer directly.
//
// AI-Hints:
//   - Composite order used by hafnian: NotNil → Square → EvenDimension →
//     SymmetricExact → Finite. Each validator assumes the previous ones passed.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dims returns the shape of a Matrix or CMatrix; ok=false for other values.
func dims(m any) (rows, cols int, ok bool) {
	switch v := m.(type) {
	case Matrix:
		return v.Rows(), v.Cols(), true
	case CMatrix:
		return v.Rows(), v.Cols(), true
	}

	return 0, 0, false
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix, CMatrix or *Dense / *CDense (typed nil pointers are caught).
// Returns ErrNilMatrix for nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m any) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *CDense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Inputs: non-nil Matrix or CMatrix.
// Errors: ErrTypeMismatch for other values, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m any) error {
	r, c, ok := dims(m)
	if !ok {
		return validatorErrorf("ValidateSquare", ErrTypeMismatch)
	}
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateEvenDimension checks that the (square) dimension is even.
// 0 is even: the empty matrix passes.
//
// Errors: ErrTypeMismatch, ErrOddDimension.
// Complexity: O(1).
func ValidateEvenDimension(m any) error {
	r, _, ok := dims(m)
	if !ok {
		return validatorErrorf("ValidateEvenDimension", ErrTypeMismatch)
	}
	if r%2 != 0 {
		return validatorErrorf("ValidateEvenDimension", ErrOddDimension)
	}

	return nil
}

// sameFloat is exact equality that also treats identical bit patterns as equal,
// so a mirrored NaN pair is left to the finiteness check.
func sameFloat(a, b float64) bool {
	return a == b || math.Float64bits(a) == math.Float64bits(b)
}

// sameComplex applies sameFloat to both components.
func sameComplex(a, b complex128) bool {
	return sameFloat(real(a), real(b)) && sameFloat(imag(a), imag(b))
}

// ValidateSymmetricExact checks A[i,j] == A[j,i] for all i<j with no tolerance.
//
// Implementation:
//   - Stage 1: require a square Matrix/CMatrix.
//   - Stage 2: scan the strict upper triangle in i→j order; fail fast.
//
// Behavior highlights:
//   - +0 and -0 compare equal. Two NaNs with the same bit pattern compare
//     equal here; they are reported by ValidateFinite instead.
//
// Errors: ErrTypeMismatch, ErrNonSquare, ErrAsymmetry.
// Complexity: Time O(n²), Space O(1).
//
// AI-Hints:
//   - Algorithms whose correctness depends on true symmetry (hafnian) must
//     use this instead of a tolerance-based check.
func ValidateSymmetricExact(m any) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetricExact", err)
	}

	var i, j int
	switch v := m.(type) {
	case *Dense:
		n := v.r
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if !sameFloat(v.data[i*n+j], v.data[j*n+i]) {
					return validatorErrorf("ValidateSymmetricExact", ErrAsymmetry)
				}
			}
		}
	case *CDense:
		n := v.r
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if !sameComplex(v.data[i*n+j], v.data[j*n+i]) {
					return validatorErrorf("ValidateSymmetricExact", ErrAsymmetry)
				}
			}
		}
	case Matrix:
		n := v.Rows()
		var aij, aji float64
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij, _ = v.At(i, j) // in range after ValidateSquare
				aji, _ = v.At(j, i)
				if !sameFloat(aij, aji) {
					return validatorErrorf("ValidateSymmetricExact", ErrAsymmetry)
				}
			}
		}
	case CMatrix:
		n := v.Rows()
		var aij, aji complex128
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij, _ = v.At(i, j)
				aji, _ = v.At(j, i)
				if !sameComplex(aij, aji) {
					return validatorErrorf("ValidateSymmetricExact", ErrAsymmetry)
				}
			}
		}
	}

	return nil
}

// ValidateFinite checks that no entry is NaN or ±Inf (either component for
// complex matrices).
//
// Errors: ErrTypeMismatch, ErrNaNInf.
// Complexity: Time O(r*c), Space O(1).
func ValidateFinite(m any) error {
	var i, j int
	switch v := m.(type) {
	case *Dense:
		for _, x := range v.data {
			if isNonFinite(x) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	case *CDense:
		for _, x := range v.data {
			if isNonFiniteC(x) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	case Matrix:
		var x float64
		for i = 0; i < v.Rows(); i++ {
			for j = 0; j < v.Cols(); j++ {
				x, _ = v.At(i, j)
				if isNonFinite(x) {
					return validatorErrorf("ValidateFinite", ErrNaNInf)
				}
			}
		}
	case CMatrix:
		var x complex128
		for i = 0; i < v.Rows(); i++ {
			for j = 0; j < v.Cols(); j++ {
				x, _ = v.At(i, j)
				if isNonFiniteC(x) {
					return validatorErrorf("ValidateFinite", ErrNaNInf)
				}
			}
		}
	default:
		return validatorErrorf("ValidateFinite", ErrTypeMismatch)
	}

	return nil
}
