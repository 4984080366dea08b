// SPDX-License-Identifier: MIT

// Package ops provides field-generic dense kernels for the hafnian engine.
//
// Every kernel is written once over the Scalar constraint (float64 or
// complex128) and specialized by the compiler; the few operations that differ
// between the fields (pivot magnitude, finiteness) go through a Field value.
package ops

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of element types the kernels are instantiated over.
type Scalar interface {
	~float64 | ~complex128
}

// Field supplies the field-specific primitives the generic kernels need.
// Implementations are zero-size values; pass them by value.
type Field[T Scalar] interface {
	// Mag returns a magnitude used only to order pivot candidates.
	Mag(x T) float64

	// IsFinite reports whether x has no NaN or ±Inf component.
	IsFinite(x T) bool
}

// Real is the Field over float64.
type Real struct{}

// Mag returns |x|.
func (Real) Mag(x float64) float64 { return math.Abs(x) }

// IsFinite reports !NaN && !Inf.
func (Real) IsFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Complex is the Field over complex128.
type Complex struct{}

// Mag returns |re|+|im|, which orders pivots like the modulus up to a factor
// of √2 without a square root.
func (Complex) Mag(x complex128) float64 { return math.Abs(real(x)) + math.Abs(imag(x)) }

// IsFinite reports that neither component is NaN or Inf.
func (Complex) IsFinite(x complex128) bool { return !cmplx.IsNaN(x) && !cmplx.IsInf(x) }

var (
	_ Field[float64]    = Real{}
	_ Field[complex128] = Complex{}
)
