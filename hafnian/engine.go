// SPDX-License-Identifier: MIT
// Package hafnian - subset coefficient engine (shared by both kernels).
//
// Power-trace formula: with X swapping the two indices of every block
// (column c ↦ c xor 1) and (AX)_S the principal submatrix of AX on the
// indices of the blocks in S,
//
//	haf(A) = Σ_{S ⊆ [n]} (−1)^{n−|S|} · [ηⁿ] exp( Σ_{k=1..n} tr((AX)_S^k)/(2k) · ηᵏ ).
//
// The normalization constant of this identity is 1.
//
// Per subset (s = 2|S|):
//   - gather (AX)_S into worker scratch                    O(s²)
//   - Hessenberg reduction                                  O(s³)
//   - La Budde characteristic polynomial                    O(s³)
//   - Newton power sums tr(Cᵏ), k = 1..n                    O(n·s)
//   - exponential-series coefficient                        O(n²)
//
// Total: O(n³·2ⁿ) time, O(n²) memory per worker.
//
// Summation order: masks ascend inside each chunk; chunk partial sums are
// added in ascending chunk order. The partition depends on n only, so the
// result is bit-identical for every worker count.

package hafnian

import (
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hafnian/matrix/ops"
)

// workspace is the private scratch of one worker, reused across subsets.
type workspace[T ops.Scalar] struct {
	idx  []int // selected indices, pairs (2b, 2b+1)
	c    []T   // reduced matrix, row-major s×s
	work []T   // La Budde table
	poly []T   // characteristic polynomial, s+1 coefficients
	p    []T   // power sums p[0..n]
	e    []T   // exponential-series coefficients e[0..n]
}

func newWorkspace[T ops.Scalar](dim, n int) *workspace[T] {
	return &workspace[T]{
		idx:  make([]int, dim),
		c:    make([]T, dim*dim),
		work: make([]T, ops.CharPolyWorkLen(dim)),
		poly: make([]T, dim+1),
		p:    make([]T, n+1),
		e:    make([]T, n+1),
	}
}

// engine evaluates the power-trace sum over one field.
// a is read-only and shared by all workers.
type engine[T ops.Scalar, F ops.Field[T]] struct {
	field F
	a     []T // dim×dim row-major, exactly symmetric
	dim   int // 2n
	n     int
}

// partition describes how the 2ⁿ masks are split into chunks.
type partition struct {
	chunks    int
	chunkSize uint64
}

// partitionFor returns the fixed partition for n blocks.
func partitionFor(n int) partition {
	total := uint64(1) << uint(n)
	chunkShift := 0
	if n > chunkBits {
		chunkShift = n - chunkBits
		if chunkShift > maxChunkBits {
			chunkShift = maxChunkBits
		}
	}
	chunks := uint64(1) << uint(chunkShift)

	return partition{chunks: int(chunks), chunkSize: total / chunks}
}

// run sweeps every subset and returns the hafnian (n ≥ 1).
func (g *engine[T, F]) run(workers int, part partition) T {
	partial := make([]T, part.chunks)

	if workers <= 1 {
		ws := newWorkspace[T](g.dim, g.n)
		for c := 0; c < part.chunks; c++ {
			partial[c] = g.sweep(uint64(c)*part.chunkSize, uint64(c+1)*part.chunkSize, ws)
		}
	} else {
		spare := make(chan *workspace[T], workers)
		for w := 0; w < workers; w++ {
			spare <- newWorkspace[T](g.dim, g.n)
		}
		var eg errgroup.Group
		eg.SetLimit(workers)
		for c := 0; c < part.chunks; c++ {
			eg.Go(func() error {
				ws := <-spare
				partial[c] = g.sweep(uint64(c)*part.chunkSize, uint64(c+1)*part.chunkSize, ws)
				spare <- ws

				return nil
			})
		}
		_ = eg.Wait() // workers never fail
	}

	// Fixed reduction order.
	var sum T
	for _, v := range partial {
		sum += v
	}

	return sum
}

// sweep accumulates the signed terms of masks lo..hi-1 in ascending order.
func (g *engine[T, F]) sweep(lo, hi uint64, ws *workspace[T]) T {
	var acc, term T
	for mask := lo; mask < hi; mask++ {
		if mask == 0 {
			continue // exp(0) has no ηⁿ term for n ≥ 1
		}
		term = g.subsetTerm(mask, ws)
		if (g.n-bits.OnesCount64(mask))&1 == 1 {
			acc -= term
		} else {
			acc += term
		}
	}

	return acc
}

// subsetTerm returns [ηⁿ] exp(Σ tr((AX)_S^k)/(2k) ηᵏ) for the blocks in mask.
func (g *engine[T, F]) subsetTerm(mask uint64, ws *workspace[T]) T {
	s := 0
	for b := 0; b < g.n; b++ {
		if mask&(1<<uint(b)) != 0 {
			ws.idx[s] = 2 * b
			ws.idx[s+1] = 2*b + 1
			s += 2
		}
	}

	// (AX)_S[r][c] = A[idx[r]][idx[c] xor 1]; the partner of a selected index
	// is selected too.
	c := ws.c[:s*s]
	var r, col, row int
	for r = 0; r < s; r++ {
		row = ws.idx[r] * g.dim
		for col = 0; col < s; col++ {
			c[r*s+col] = g.a[row+(ws.idx[col]^1)]
		}
	}

	ops.HessenbergInPlace(g.field, c, s)
	ops.CharPolyHessenberg(c, s, ws.work, ws.poly)
	ops.PowerSums(ws.poly[:s+1], ws.p)

	return ops.HalfExpCoefficient(ws.p, ws.e, g.n)
}
