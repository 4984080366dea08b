// SPDX-License-Identifier: MIT

package hafnian

import "github.com/katalvlaran/hafnian/matrix/ops"

// complexKernel evaluates the hafnian entirely in complex128, including every
// intermediate of the reduced matrices.
type complexKernel struct {
	a []complex128 // 2n×2n row-major, call-local
	n int
}

func (k complexKernel) field() Field { return FieldComplex }
func (k complexKernel) blocks() int  { return k.n }

func (k complexKernel) evaluate(o Options) Result {
	return Result{value: k.value(o), field: FieldComplex}
}

// value mirrors realKernel.value over complex128.
func (k complexKernel) value(o Options) complex128 {
	a := k.a
	switch k.n {
	case 0:
		return 1
	case 1:
		return a[1]
	case 2:
		return complex128(a[1]*a[11]) + complex128(a[2]*a[7]) + complex128(a[3]*a[6])
	}

	return runEngine(ops.Complex{}, a, k.n, FieldComplex, o)
}
