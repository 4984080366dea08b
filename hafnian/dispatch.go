// SPDX-License-Identifier: MIT

package hafnian

import (
	"log/slog"

	"github.com/katalvlaran/hafnian/matrix"
)

// Hafnian computes the hafnian of a 2n×2n symmetric matrix, choosing the
// kernel from the matrix content.
//
// Implementation:
//   - Stage 1: Validate (type → shape → parity → symmetry → finiteness).
//   - Stage 2: select the kernel: real storage, or complex storage whose
//     imaginary parts are all exactly zero, runs the real kernel on the real
//     parts (demotion); anything else runs the complex kernel.
//   - Stage 3: evaluate (closed forms for n ≤ 2, subset engine otherwise).
//
// Inputs:
//   - input: [][]float64, [][]complex128, matrix.Matrix, matrix.CMatrix,
//     or a gonum mat.Matrix / mat.CMatrix.
//   - opts: WithWorkers, WithLogger.
//
// Returns:
//   - Result: the value and the field of the kernel that produced it.
//
// Errors:
//   - The validation sentinel of the first failing stage, wrapped with the
//     operation tag; errors.Is matches ErrTypeMismatch, ErrShape,
//     ErrDimensionParity, ErrAsymmetry, ErrNonFinite, ErrNilMatrix, ErrTooLarge.
//
// Determinism:
//   - Bit-identical results for identical input bits, for any WithWorkers.
//
// Complexity:
//   - Time O(n³·2ⁿ), Space O(n² · workers).
//
// Notes:
//   - Overflow for large n surfaces as ±Inf/NaN in the result, not as an error.
//   - The caller's matrix is copied once and never mutated or retained.
//
// AI-Hints:
//   - If the field is known up front use HafReal / HafComplex to skip the scan.
func Hafnian(input any, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	op, err := validate(input)
	if err != nil {
		return Result{}, hafErrorf(opHafnian, err)
	}

	k := selectKernel(op)
	if o.logger != nil {
		o.logger.Debug("hafnian dispatch",
			slog.String("storage", op.storage.String()),
			slog.String("kernel", k.field().String()),
			slog.Int("n", k.blocks()),
		)
	}

	return k.evaluate(o), nil
}

// selectKernel applies the demotion rule. It is a pure function of the
// operand; nothing about the decision outlives the call.
func selectKernel(op operand) kernel {
	if op.re != nil {
		return realKernel{a: op.re.Flatten(), n: op.n()}
	}
	if op.cx.IsRealValued() {
		return realKernel{a: op.cx.RealPart().Flatten(), n: op.n()}
	}

	return complexKernel{a: op.cx.Flatten(), n: op.n()}
}

// HafReal computes the hafnian of a real matrix on the real kernel, skipping
// the content scan. Results equal Hafnian's bit for bit on the same input.
//
// Errors:
//   - ErrNilMatrix for a nil matrix, then the Validate sentinels.
func HafReal(m matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, hafErrorf(opHafReal, err)
	}
	op, err := validate(m)
	if err != nil {
		return 0, hafErrorf(opHafReal, err)
	}

	return realKernel{a: op.re.Flatten(), n: op.n()}.value(gatherOptions(opts...)), nil
}

// HafComplex computes the hafnian of a complex matrix on the complex kernel,
// even when every imaginary part is zero.
//
// Errors:
//   - ErrNilMatrix for a nil matrix, then the Validate sentinels.
func HafComplex(m matrix.CMatrix, opts ...Option) (complex128, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, hafErrorf(opHafComplex, err)
	}
	op, err := validate(m)
	if err != nil {
		return 0, hafErrorf(opHafComplex, err)
	}

	return complexKernel{a: op.cx.Flatten(), n: op.n()}.value(gatherOptions(opts...)), nil
}

// HafRealRows is HafReal for a [][]float64 literal.
func HafRealRows(rows [][]float64, opts ...Option) (float64, error) {
	op, err := validate(rows)
	if err != nil {
		return 0, hafErrorf(opHafReal, err)
	}

	return realKernel{a: op.re.Flatten(), n: op.n()}.value(gatherOptions(opts...)), nil
}

// HafComplexRows is HafComplex for a [][]complex128 literal.
func HafComplexRows(rows [][]complex128, opts ...Option) (complex128, error) {
	op, err := validate(rows)
	if err != nil {
		return 0, hafErrorf(opHafComplex, err)
	}

	return complexKernel{a: op.cx.Flatten(), n: op.n()}.value(gatherOptions(opts...)), nil
}
