// SPDX-License-Identifier: MIT

package ops

// HessenbergInPlace reduces the s×s row-major matrix a to upper Hessenberg
// form by stabilized elementary similarity transforms (Gaussian elimination
// with partial pivoting, applied from both sides).
//
// Implementation:
//   - Stage 1: for each column r-1 (r = 1..s-2) pick the row p ≥ r with the
//     largest Mag(a[p, r-1]) and swap rows and columns p↔r (a permutation
//     similarity).
//   - Stage 2: for every row i > r subtract y·row_r with y = a[i,r-1]/a[r,r-1],
//     then add y·col_i to col_r, which keeps the spectrum unchanged.
//
// Behavior highlights:
//   - The characteristic polynomial (hence every tr(Aᵏ)) is preserved.
//   - A zero pivot column is already reduced and is skipped.
//   - Entries below the first subdiagonal are set to exact zeros.
//
// Inputs:
//   - f: field primitives (Real{} or Complex{}).
//   - a: row-major buffer with len(a) ≥ s*s; overwritten.
//   - s: order of the matrix.
//
// Determinism:
//   - Fixed loop order; ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(s³), Space O(1) beyond a.
//
// AI-Hints:
//   - Cheaper than Householder (no square roots, no conjugation), so the same
//     code serves both fields. Use for spectral invariants, not eigenvectors.
func HessenbergInPlace[T Scalar, F Field[T]](f F, a []T, s int) {
	var (
		zero       T
		r, i, j, p int
		best, mag  float64
		x, y       T
	)
	for r = 1; r < s-1; r++ {
		// Pivot search down column r-1.
		p = r
		best = f.Mag(a[r*s+r-1])
		for i = r + 1; i < s; i++ {
			if mag = f.Mag(a[i*s+r-1]); mag > best {
				best, p = mag, i
			}
		}
		if p != r {
			swapRows(a, s, p, r)
			swapCols(a, s, p, r)
		}

		x = a[r*s+r-1]
		if x == zero {
			continue
		}
		for i = r + 1; i < s; i++ {
			y = a[i*s+r-1]
			if y == zero {
				continue
			}
			y /= x
			for j = r - 1; j < s; j++ {
				a[i*s+j] -= y * a[r*s+j]
			}
			a[i*s+r-1] = zero
			for j = 0; j < s; j++ {
				a[j*s+r] += y * a[j*s+i]
			}
		}
	}
}

// swapRows exchanges rows p and q of the s×s row-major buffer a.
func swapRows[T Scalar](a []T, s, p, q int) {
	rp := a[p*s : (p+1)*s]
	rq := a[q*s : (q+1)*s]
	for j := range rp {
		rp[j], rq[j] = rq[j], rp[j]
	}
}

// swapCols exchanges columns p and q of the s×s row-major buffer a.
func swapCols[T Scalar](a []T, s, p, q int) {
	for i := 0; i < s; i++ {
		a[i*s+p], a[i*s+q] = a[i*s+q], a[i*s+p]
	}
}
