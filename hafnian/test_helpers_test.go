// SPDX-License-Identifier: MIT
// Package hafnian_test contains test helpers
//
// Purpose:
//   • Deterministic random symmetric fixtures (seeded math/rand).
//   • A brute-force matching enumerator used as the reference hafnian.
//   • Relative-closeness assertions shared by real and complex tests.

package hafnian_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// relTol is the agreement bound between independent evaluations.
const relTol = 1e-9

// randSymmetric returns a dim×dim exactly symmetric matrix with entries in [0,1).
func randSymmetric(rng *rand.Rand, dim int) [][]float64 {
	a := make([][]float64, dim)
	for i := range a {
		a[i] = make([]float64, dim)
	}
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			v := rng.Float64()
			a[i][j], a[j][i] = v, v
		}
	}

	return a
}

// randSymmetricComplex returns a dim×dim complex-symmetric (A = Aᵀ) matrix.
func randSymmetricComplex(rng *rand.Rand, dim int) [][]complex128 {
	a := make([][]complex128, dim)
	for i := range a {
		a[i] = make([]complex128, dim)
	}
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			v := complex(rng.Float64(), rng.Float64())
			a[i][j], a[j][i] = v, v
		}
	}

	return a
}

// filled returns a dim×dim matrix with every entry v.
func filled(dim int, v float64) [][]float64 {
	a := make([][]float64, dim)
	for i := range a {
		a[i] = make([]float64, dim)
		for j := range a[i] {
			a[i][j] = v
		}
	}

	return a
}

// complexify lifts a real row slice into complex storage.
func complexify(a [][]float64) [][]complex128 {
	out := make([][]complex128, len(a))
	for i := range a {
		out[i] = make([]complex128, len(a[i]))
		for j, v := range a[i] {
			out[i][j] = complex(v, 0)
		}
	}

	return out
}

// bruteHafnian sums over all (dim-1)!! perfect matchings directly.
func bruteHafnian[T float64 | complex128](a [][]T) T {
	idx := make([]int, len(a))
	for i := range idx {
		idx[i] = i
	}

	return bruteRec(a, idx)
}

// bruteRec matches the first remaining index with every other one.
func bruteRec[T float64 | complex128](a [][]T, rem []int) T {
	if len(rem) == 0 {
		return 1
	}
	var sum T
	i := rem[0]
	for k := 1; k < len(rem); k++ {
		rest := make([]int, 0, len(rem)-2)
		rest = append(rest, rem[1:k]...)
		rest = append(rest, rem[k+1:]...)
		sum += a[i][rem[k]] * bruteRec(a, rest)
	}

	return sum
}

// doubleFactorial returns (2n-1)!! = 1·3·5·…·(2n-1).
func doubleFactorial(n int) float64 {
	out := 1.0
	for k := 1; k <= n; k++ {
		out *= float64(2*k - 1)
	}

	return out
}

// absT is |x| for either field.
func absT[T float64 | complex128](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}

	return math.NaN()
}

// requireRelClose asserts |want-got| ≤ rtol·max(1, |want|).
func requireRelClose[T float64 | complex128](t *testing.T, want, got T, rtol float64) {
	t.Helper()
	scale := math.Max(1, absT(want))
	require.LessOrEqualf(t, absT(want-got), rtol*scale, "want %v, got %v", want, got)
}
