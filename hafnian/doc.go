// SPDX-License-Identifier: MIT

// Package hafnian computes the hafnian of a symmetric matrix.
//
// The hafnian of a 2n×2n symmetric A is the sum, over all perfect matchings
// of the indices 0..2n-1, of the product of the matched entries:
//
//	haf([[a,b],[b,d]]) = b
//	haf(A₄ₓ₄)          = A01·A23 + A02·A13 + A03·A12
//	haf(0×0)           = 1
//
// Amplitudes of Gaussian boson sampling are proportional to hafnians of
// matrices derived from covariance data; this package is the exact kernel.
//
// Entry points:
//
//   - Hafnian(input): validates, routes real-valued input (even in
//     complex storage) to the float64 kernel and everything else to the
//     complex128 kernel.
//   - HafReal / HafRealRows, HafComplex / HafComplexRows: forced kernels.
//   - Validate(input): the ordered validator alone.
//   - Version / Algorithm / BuildInfo: build reporting for wrappers.
//
// Algorithm: the power-trace formula summed over the 2ⁿ subsets of index
// blocks, each subset costing one Hessenberg reduction and one La Budde
// characteristic polynomial: O(n³·2ⁿ) time. The sweep is split into a fixed,
// n-dependent set of chunks processed by a bounded worker pool and reduced in
// chunk order, so results are reproducible bit for bit.
//
// Exact hafnians grow like (2n-1)!!·max|A|ⁿ and cancel heavily across the
// signed subset terms; overflow and rounding are reported as the field's
// natural floating-point behavior.
package hafnian
