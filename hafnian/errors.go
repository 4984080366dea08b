// SPDX-License-Identifier: MIT
// Package hafnian: sentinel errors.
// The validation taxonomy reuses the matrix sentinels so errors.Is matches
// either name. Every error is returned synchronously before any kernel work;
// no partial result accompanies an error.

package hafnian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hafnian/matrix"
)

var (
	// ErrTypeMismatch: the input is not a recognized numeric 2-D structure.
	ErrTypeMismatch = matrix.ErrTypeMismatch

	// ErrShape: the input is not square (including ragged row slices).
	ErrShape = matrix.ErrNonSquare

	// ErrDimensionParity: the square dimension is odd; no perfect matching exists.
	ErrDimensionParity = matrix.ErrOddDimension

	// ErrAsymmetry: A[i][j] != A[j][i] for some pair (exact comparison).
	ErrAsymmetry = matrix.ErrAsymmetry

	// ErrNonFinite: an entry (or a component of one) is NaN or ±Inf.
	ErrNonFinite = matrix.ErrNaNInf

	// ErrNilMatrix: a typed nil matrix was passed to a forced entry point.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrTooLarge: n = dim/2 exceeds MaxBlocks and subsets cannot be indexed.
	ErrTooLarge = errors.New("hafnian: matrix too large for subset enumeration")
)

// Operation tags for error wrapping (no magic strings).
const (
	opHafnian    = "hafnian: Hafnian"
	opHafReal    = "hafnian: HafReal"
	opHafComplex = "hafnian: HafComplex"
	opValidate   = "Validate"
)

// hafErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func hafErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
