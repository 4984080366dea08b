// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hafnian/matrix"
)

// TestNewDenseDimensions: negative sizes are rejected, zero sizes are legal.
func TestNewDenseDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Empty(t, m.Flatten())

	m, err = matrix.NewDense(0, 5)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, [2]int{0, 5}, [2]int{r, c})
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 7.89)
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestSetNumericPolicy: NaN/Inf are rejected by default and accepted when relaxed.
func TestSetNumericPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose := MustDense(t, 1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, loose, 0, 0), 1))
}

// TestNewDenseFromRows covers copy semantics, ragged input and the NaN policy.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := FromRows(t, rows)
	rows[0][0] = 99 // the input is not retained
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	raw, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, raw, 0, 0)))

	empty, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

// TestCloneIndependence ensures Clone() returns a deep copy that keeps the policy.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2, matrix.WithNoValidateNaNInf())
	MustSet(t, m, 0, 0, 1.0)
	MustSet(t, m, 1, 1, 2.0)

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	require.False(t, matrix.ValidatesNaNInf_TestOnly(clone.(*matrix.Dense)))
}

// TestFlattenIsCopy: Flatten returns row-major data that does not alias storage.
func TestFlattenIsCopy(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	flat := m.Flatten()
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat)

	flat[0] = -1
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
