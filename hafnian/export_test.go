// SPDX-License-Identifier: MIT
// Test-only bridges into the unexported engine.

package hafnian

import "github.com/katalvlaran/hafnian/matrix/ops"

// EngineReal runs the subset engine on a real 2n×2n matrix, bypassing the
// closed forms used for n ≤ 2.
func EngineReal(rows [][]float64, workers int) float64 {
	n := len(rows) / 2
	a := make([]float64, 0, len(rows)*len(rows))
	for _, r := range rows {
		a = append(a, r...)
	}

	return runEngine(ops.Real{}, a, n, FieldReal, Options{workers: workers})
}

// EngineComplex is EngineReal over complex128.
func EngineComplex(rows [][]complex128, workers int) complex128 {
	n := len(rows) / 2
	a := make([]complex128, 0, len(rows)*len(rows))
	for _, r := range rows {
		a = append(a, r...)
	}

	return runEngine(ops.Complex{}, a, n, FieldComplex, Options{workers: workers})
}

// PartitionChunks reports the number of chunks the sweep uses for n blocks.
func PartitionChunks(n int) int { return partitionFor(n).chunks }
