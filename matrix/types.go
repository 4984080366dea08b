// SPDX-License-Identifier: MIT

// Package matrix: public matrix interfaces.
// This file intentionally contains ONLY the interfaces shared by the real and
// complex implementations. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// CMatrix is the complex128 counterpart of Matrix.
// The method set differs from Matrix only by the element type, so a single
// concrete type can never satisfy both interfaces.
type CMatrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j) or ErrOutOfRange.
	At(i, j int) (complex128, error)

	// Set assigns v at position (i, j) or returns ErrOutOfRange.
	Set(i, j int, v complex128) error

	// Clone returns a deep copy of the matrix.
	Clone() CMatrix
}
