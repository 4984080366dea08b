// SPDX-License-Identifier: MIT

package ops

// PowerSums converts monic characteristic-polynomial coefficients into power
// sums of the roots with Newton's identities.
//
// With c[0] = 1 and c[i] = 0 for i > s (s = len(c)-1), for k = 1..len(p)-1:
//
//	p[k] = −k·c[k] − Σ_{i=1..k−1} c[i]·p[k−i]    (= tr(Aᵏ) when c is A's char-poly).
//
// p[0] is set to s (tr(A⁰) = s).
//
// Complexity:
//   - Time O(len(p)·min(len(p), s)), Space O(1).
//
// Notes:
//   - k may exceed s: the identities continue with c[k] = 0.
func PowerSums[T Scalar](c []T, p []T) {
	s := len(c) - 1
	var (
		k, i int
		kT   T // k as a field element, counted up to avoid int→complex conversion
		acc  T
	)
	var order T
	for i = 0; i < s; i++ {
		order += 1
	}
	if len(p) > 0 {
		p[0] = order
	}
	for k = 1; k < len(p); k++ {
		kT += 1
		acc = 0
		if k <= s {
			acc = -kT * c[k]
		}
		for i = 1; i < k && i <= s; i++ {
			acc -= c[i] * p[k-i]
		}
		p[k] = acc
	}
}

// HalfExpCoefficient returns [ηⁿ] exp( Σ_{k=1..n} p[k]/(2k) · ηᵏ ).
//
// Implementation:
//   - e[0] = 1, e[k] = (1/(2k)) · Σ_{j=1..k} p[j]·e[k−j]  (the exponential
//     series recurrence with g_j = p[j]/(2j), so j·g_j = p[j]/2).
//
// Inputs:
//   - p: power sums with len(p) ≥ n+1 (p[0] unused).
//   - e: scratch with len(e) ≥ n+1.
//   - n: target degree (n ≥ 0; n = 0 returns 1).
//
// Complexity:
//   - Time O(n²), Space O(1) beyond e.
func HalfExpCoefficient[T Scalar](p []T, e []T, n int) T {
	e[0] = 1
	var (
		k, j int
		twoK T
		acc  T
	)
	for k = 1; k <= n; k++ {
		twoK += 2
		acc = 0
		for j = 1; j <= k; j++ {
			acc += p[j] * e[k-j]
		}
		e[k] = acc / twoK
	}

	return e[n]
}
