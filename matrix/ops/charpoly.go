// SPDX-License-Identifier: MIT

package ops

// CharPolyWorkLen returns the scratch length CharPolyHessenberg needs for order s.
func CharPolyWorkLen(s int) int { return (s + 1) * (s + 1) }

// CharPolyHessenberg computes the characteristic polynomial of an upper
// Hessenberg matrix with La Budde's recurrence.
//
// The result c (len s+1) is monic in descending powers:
//
//	det(λI − H) = c[0]·λˢ + c[1]·λˢ⁻¹ + … + c[s],   c[0] = 1.
//
// Implementation:
//   - Stage 1: P₀(λ) = 1.
//   - Stage 2: for i = 0..s-1 build P_{i+1} from the leading (i+1)×(i+1) block:
//     P_{i+1} = (λ − h[i,i])·P_i − Σ_{j=1..i} h[i−j,i]·(Π_{k=i−j+1..i} h[k,k−1])·P_{i−j}.
//   - Stage 3: copy P_s into c.
//
// Inputs:
//   - h: s×s row-major Hessenberg matrix (entries below the subdiagonal ignored).
//   - work: scratch of len ≥ CharPolyWorkLen(s); row i holds P_i's i+1 coefficients.
//   - c: output of len ≥ s+1.
//
// Determinism:
//   - Fixed i→j→t loop order.
//
// Complexity:
//   - Time O(s³), Space O(s²) scratch (caller-owned, reusable).
//
// AI-Hints:
//   - Pair with HessenbergInPlace for an O(s³) char-poly of a dense matrix
//     without eigenvalues; PowerSums then gives every tr(Aᵏ) in O(k·s).
func CharPolyHessenberg[T Scalar](h []T, s int, work []T, c []T) {
	w := s + 1
	var (
		i, j, t    int
		prod, coef T
		hii        T
	)
	work[0] = 1
	for i = 0; i < s; i++ {
		prev := work[i*w : i*w+i+1]
		next := work[(i+1)*w : (i+1)*w+i+2]
		for t = range next {
			next[t] = 0
		}
		hii = h[i*s+i]
		for t = 0; t <= i; t++ {
			next[t] += prev[t]
			next[t+1] -= hii * prev[t]
		}
		prod = 1
		for j = 1; j <= i; j++ {
			prod *= h[(i-j+1)*s+i-j] // subdiagonal h[k,k-1], k = i-j+1
			coef = h[(i-j)*s+i] * prod
			q := work[(i-j)*w : (i-j)*w+i-j+1]
			for t = range q {
				next[t+j+1] -= coef * q[t]
			}
		}
	}
	copy(c[:s+1], work[s*w:s*w+s+1])
}
