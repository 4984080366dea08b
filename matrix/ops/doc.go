// SPDX-License-Identifier: MIT

// Package ops: spectral invariants of dense matrices without eigenvalues.
//
// Pipeline used by the hafnian engine for one reduced matrix C of order s:
//
//	HessenbergInPlace(f, C, s)          O(s³)  similarity transform
//	CharPolyHessenberg(C, s, work, c)   O(s³)  det(λI − C)
//	PowerSums(c, p)                     O(n·s) p[k] = tr(Cᵏ)
//	HalfExpCoefficient(p, e, n)         O(n²)  [ηⁿ] exp(Σ p[k]/(2k) ηᵏ)
//
// All kernels take caller-owned buffers and allocate nothing, so a worker can
// reuse one workspace across millions of calls.
package ops
