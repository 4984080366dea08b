// SPDX-License-Identifier: MIT

package hafnian

import "github.com/katalvlaran/hafnian/matrix/ops"

// realKernel evaluates the hafnian entirely in float64.
// Real-symmetric input keeps every reduced matrix, Hessenberg form and
// characteristic polynomial real, so no complex intermediate is ever formed.
type realKernel struct {
	a []float64 // 2n×2n row-major, call-local
	n int
}

func (k realKernel) field() Field { return FieldReal }
func (k realKernel) blocks() int  { return k.n }

func (k realKernel) evaluate(o Options) Result {
	return Result{value: complex(k.value(o), 0), field: FieldReal}
}

// value dispatches the degenerate sizes to their closed forms:
//
//	n=0: 1 (empty matching)
//	n=1: A01
//	n=2: A01·A23 + A02·A13 + A03·A12
//
// The explicit float64 conversions forbid fused multiply-add so the closed
// form rounds exactly as written.
func (k realKernel) value(o Options) float64 {
	a := k.a
	switch k.n {
	case 0:
		return 1
	case 1:
		return a[1]
	case 2:
		return float64(a[1]*a[11]) + float64(a[2]*a[7]) + float64(a[3]*a[6])
	}

	return runEngine(ops.Real{}, a, k.n, FieldReal, o)
}
