// SPDX-License-Identifier: MIT

// Package bench holds the workloads behind cmd/hafbench: seeded random
// symmetric fixtures, timed hafnian evaluations and the brute-force
// cross-check.
//
// Determinism:
//   - Every fixture is a pure function of (seed, n, field).
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/hafnian/hafnian"
)

// Measurement is one timed workload: Repeat evaluations of the same matrix.
type Measurement struct {
	RunID   string
	N       int
	Field   hafnian.Field
	Workers int
	Seed    int64
	Repeat  int
	Elapsed time.Duration // total over Repeat evaluations
	Value   complex128
}

// PerCall returns the mean wall time of one evaluation.
func (m Measurement) PerCall() time.Duration {
	if m.Repeat <= 0 {
		return 0
	}

	return m.Elapsed / time.Duration(m.Repeat)
}

// RandomSymmetric returns a dim×dim exactly symmetric matrix, entries in [-1,1).
func RandomSymmetric(rng *rand.Rand, dim int) [][]float64 {
	a := make([][]float64, dim)
	for i := range a {
		a[i] = make([]float64, dim)
	}
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			v := 2*rng.Float64() - 1
			a[i][j], a[j][i] = v, v
		}
	}

	return a
}

// RandomSymmetricComplex returns a dim×dim complex-symmetric matrix with both
// components in [-1,1).
func RandomSymmetricComplex(rng *rand.Rand, dim int) [][]complex128 {
	a := make([][]complex128, dim)
	for i := range a {
		a[i] = make([]complex128, dim)
	}
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			v := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			a[i][j], a[j][i] = v, v
		}
	}

	return a
}

// Fixture returns the matrix Measure evaluates for (n, field, seed).
func Fixture(n int, field hafnian.Field, seed int64) (any, error) {
	rng := rand.New(rand.NewSource(seed))
	switch field {
	case hafnian.FieldReal:
		return RandomSymmetric(rng, 2*n), nil
	case hafnian.FieldComplex:
		return RandomSymmetricComplex(rng, 2*n), nil
	default:
		return nil, fmt.Errorf("bench: unknown field %v", field)
	}
}

// Measure times repeat evaluations of the (n, field, seed) fixture.
// It checks ctx between evaluations; a single evaluation is not interrupted.
func Measure(ctx context.Context, logger *slog.Logger, runID string, n int, field hafnian.Field, workers int, seed int64, repeat int) (Measurement, error) {
	if repeat < 1 {
		return Measurement{}, fmt.Errorf("bench: repeat must be >= 1, got %d", repeat)
	}
	input, err := Fixture(n, field, seed)
	if err != nil {
		return Measurement{}, err
	}

	opts := []hafnian.Option{hafnian.WithWorkers(workers), hafnian.WithLogger(logger)}
	m := Measurement{RunID: runID, N: n, Field: field, Workers: workers, Seed: seed, Repeat: repeat}

	var res hafnian.Result
	start := time.Now()
	for r := 0; r < repeat; r++ {
		if err = ctx.Err(); err != nil {
			return Measurement{}, err
		}
		if res, err = hafnian.Hafnian(input, opts...); err != nil {
			return Measurement{}, fmt.Errorf("bench: n=%d: %w", n, err)
		}
	}
	m.Elapsed = time.Since(start)
	m.Value = res.Complex()

	return m, nil
}
