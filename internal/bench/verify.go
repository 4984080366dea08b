// SPDX-License-Identifier: MIT

package bench

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/hafnian/hafnian"
)

// DefaultTolerance is the relative error Verify accepts.
const DefaultTolerance = 1e-9

// Check is the outcome of one cross-check.
type Check struct {
	Name   string
	N      int
	Want   complex128
	Got    complex128
	RelErr float64
	OK     bool
}

// BruteForce sums the products over all (2n-1)!! perfect matchings.
// Complexity: O((2n-1)!!·n); use for 2n ≤ 12 only.
func BruteForce[T float64 | complex128](a [][]T) T {
	idx := make([]int, len(a))
	for i := range idx {
		idx[i] = i
	}

	return matchRest(a, idx)
}

func matchRest[T float64 | complex128](a [][]T, rem []int) T {
	if len(rem) == 0 {
		return 1
	}
	var sum T
	first := rem[0]
	rest := make([]int, 0, len(rem)-2)
	for k := 1; k < len(rem); k++ {
		rest = rest[:0]
		rest = append(rest, rem[1:k]...)
		rest = append(rest, rem[k+1:]...)
		sum += a[first][rem[k]] * matchRest(a, rest)
	}

	return sum
}

// DoubleFactorial returns (2n-1)!!, the number of perfect matchings of 2n points.
func DoubleFactorial(n int) float64 {
	out := 1.0
	for k := 1; k <= n; k++ {
		out *= float64(2*k - 1)
	}

	return out
}

// Verify cross-checks the engine for n = 1..maxN against the all-ones
// identity and against BruteForce on seeded random real and complex matrices.
// Checks that fail carry OK=false; the error is reserved for engine errors.
func Verify(maxN int, seed int64, tol float64) ([]Check, error) {
	rng := rand.New(rand.NewSource(seed))
	checks := make([]Check, 0, 3*maxN)

	for n := 1; n <= maxN; n++ {
		ones := make([][]float64, 2*n)
		for i := range ones {
			ones[i] = make([]float64, 2*n)
			for j := range ones[i] {
				ones[i][j] = 1
			}
		}
		got, err := hafnian.HafRealRows(ones)
		if err != nil {
			return nil, err
		}
		checks = append(checks, newCheck("ones", n, complex(DoubleFactorial(n), 0), complex(got, 0), tol))

		a := RandomSymmetric(rng, 2*n)
		if got, err = hafnian.HafRealRows(a); err != nil {
			return nil, err
		}
		checks = append(checks, newCheck("random-real", n, complex(BruteForce(a), 0), complex(got, 0), tol))

		c := RandomSymmetricComplex(rng, 2*n)
		cgot, err := hafnian.HafComplexRows(c)
		if err != nil {
			return nil, err
		}
		checks = append(checks, newCheck("random-complex", n, BruteForce(c), cgot, tol))
	}

	return checks, nil
}

// newCheck scores got against want with |want-got| / max(1, |want|).
func newCheck(name string, n int, want, got complex128, tol float64) Check {
	rel := cmplx.Abs(want-got) / math.Max(1, cmplx.Abs(want))

	return Check{Name: name, N: n, Want: want, Got: got, RelErr: rel, OK: rel <= tol}
}
