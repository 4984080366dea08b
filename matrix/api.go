// SPDX-License-Identifier: MIT
// Package matrix: public facades for common constructors.
//
// Purpose:
//   - Small named constructors used by callers and tests (identity, all-ones,
//     symmetrization) so they do not re-implement fill loops.
//
// Determinism:
//   - Fixed i→j loop order; no randomness.

package matrix

// NewIdentity returns the n×n identity (n ≥ 0).
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewFilled returns an r×c matrix with every entry equal to v.
// Errors: ErrInvalidDimensions; ErrNaNInf for non-finite v under the default policy.
// Complexity: O(r*c).
//
// AI-Hints:
//   - NewFilled(2n, 2n, 1) is the all-ones J matrix with haf(J) = (2n-1)!!.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return nil, ErrNaNInf
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// Symmetrize returns S = A + Aᵀ for a square A.
// The result is exactly symmetric: S[i,j] and S[j,i] are computed from the same
// two operands in the same order.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Symmetrize(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij, _ = a.At(i, j)
			aji, _ = a.At(j, i)
			out.data[i*n+j] = aij + aji
			out.data[j*n+i] = aij + aji
		}
	}

	return out, nil
}

// SymmetrizeC returns S = A + Aᵀ (plain transpose, no conjugation) for a
// square complex A.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func SymmetrizeC(a CMatrix) (*CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	out, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	var aij, aji complex128
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij, _ = a.At(i, j)
			aji, _ = a.At(j, i)
			out.data[i*n+j] = aij + aji
			out.data[j*n+i] = aij + aji
		}
	}

	return out, nil
}
