// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for storage and validator tests.
//   • Force the interface fallback paths (hide / hideC) next to the flat fast paths.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hafnian/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Matrix }

// hideC is hide for complex matrices.
type hideC struct{ matrix.CMatrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustCDense allocates an r×c *CDense or fails the test.
func MustCDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.CDense {
	t.Helper()
	m, err := matrix.NewCDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewCDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows builds a *Dense from a row literal or fails the test.
func FromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// CFromRows builds a *CDense from a row literal or fails the test.
func CFromRows(t *testing.T, rows [][]complex128, opts ...matrix.Option) *matrix.CDense {
	t.Helper()
	m, err := matrix.NewCDenseFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewCDenseFromRows: %v", err)
	}

	return m
}

// RandSquare returns an n×n *Dense with entries in [-1,1) from a seeded source.
// Determinism: same seed, same matrix.
func RandSquare(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}

	return m
}

// MustSet sets m[i,j]=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt returns m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: got %d, want %d", m.Rows(), len(want))
	}
	for i := range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols: got %d, want %d", m.Cols(), len(want[i]))
		}
		for j := range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("(%d,%d): got %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}
