// SPDX-License-Identifier: MIT

// Package matrix provides the dense real and complex matrices consumed by the
// hafnian engine, plus the validators and conversions around them.
//
// The matrix package provides:
//
//   - Dense (float64) and CDense (complex128): row-major storage with
//     bounds-checked At/Set, deep Clone and an optional NaN/Inf policy.
//   - Validators with a fixed priority: NotNil → Square → EvenDimension →
//     SymmetricExact → Finite. Each returns a wrapped sentinel from errors.go.
//   - Conversions from row slices and gonum matrices, real↔complex bridges
//     (IsRealValued, RealPart, Complexify).
//
// 0×0 matrices are legal everywhere: they model the empty perfect matching.
//
// Numeric kernels built on these types live in the ops subpackage.
package matrix
