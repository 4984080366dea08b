// SPDX-License-Identifier: MIT

package hafnian

import "fmt"

// Field tags the scalar domain a matrix is processed in.
// It is decided once per call and never cached across calls.
type Field uint8

const (
	// FieldReal selects float64 arithmetic.
	FieldReal Field = iota + 1
	// FieldComplex selects complex128 arithmetic.
	FieldComplex
)

// String implements fmt.Stringer.
func (f Field) String() string {
	switch f {
	case FieldReal:
		return "real"
	case FieldComplex:
		return "complex"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

// Result is the hafnian returned by the auto-dispatching entry point.
// Field reports the kernel that produced it; for FieldReal the imaginary part
// is exactly zero because the value never left float64 arithmetic.
type Result struct {
	value complex128
	field Field
}

// Field reports which kernel computed the value.
func (r Result) Field() Field { return r.field }

// Real returns the real part (the whole value for FieldReal).
func (r Result) Real() float64 { return real(r.value) }

// Complex returns the value as complex128.
func (r Result) Complex() complex128 { return r.value }

// String renders a real result as a float and a complex result as (a+bi).
func (r Result) String() string {
	if r.field == FieldReal {
		return fmt.Sprintf("%g", real(r.value))
	}

	return fmt.Sprintf("%g", r.value)
}
