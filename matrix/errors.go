// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and validators return these sentinels (possibly
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) only;
// callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// type -> nil -> shape -> parity -> symmetry -> NaN/Inf.

var (
	// ErrTypeMismatch is returned when an input is not a recognized numeric
	// two-dimensional structure (row slices, Matrix, CMatrix or gonum matrices).
	ErrTypeMismatch = errors.New("matrix: unsupported input type")

	// ErrBadShape is returned when requested shape is invalid (negative sizes,
	// ragged row slices).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOddDimension signals that an even square dimension was required.
	ErrOddDimension = errors.New("matrix: dimension is odd")

	// ErrAsymmetry signals that a matrix expected to be exactly symmetric
	// has a pair A[i,j] != A[j,i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, validation).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
