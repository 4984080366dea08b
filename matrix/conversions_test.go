// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hafnian/matrix"
)

func TestNewDenseFromGonum(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := matrix.NewDenseFromGonum(src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	// No aliasing in either direction.
	src.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	// SymDense stores one triangle and mirrors it through At.
	sym := mat.NewSymDense(2, []float64{1, 7, 7, 3})
	ms, err := matrix.NewDenseFromGonum(sym)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 7}, {7, 3}}, ms)

	_, err = matrix.NewDenseFromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	for _, src := range []mat.Matrix{(*mat.Dense)(nil), (*mat.SymDense)(nil), (*mat.VecDense)(nil)} {
		_, err = matrix.NewDenseFromGonum(src)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, "%T", src)
	}

	withNaN := mat.NewDense(1, 1, []float64{math.NaN()})
	_, err = matrix.NewDenseFromGonum(withNaN)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewDenseFromGonum(withNaN, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}

func TestNewCDenseFromGonum(t *testing.T) {
	t.Parallel()

	src := mat.NewCDense(2, 2, []complex128{1, 2i, 2i, 3})
	m, err := matrix.NewCDenseFromGonum(src)
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 2i, 2i, 3}, m.Flatten())

	_, err = matrix.NewCDenseFromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.NewCDenseFromGonum((*mat.CDense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewCDenseFromGonum(mat.NewCDense(1, 1, []complex128{complex(math.Inf(1), 0)}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCopyOf_FastPathEqualsFallback: the flat copy and the At walk agree.
func TestCopyOf_FastPathEqualsFallback(t *testing.T) {
	t.Parallel()

	src := RandSquare(t, 5, 42)
	fast, err := matrix.CopyOf(src)
	require.NoError(t, err)
	slow, err := matrix.CopyOf(hide{src})
	require.NoError(t, err)
	require.Equal(t, fast.Flatten(), slow.Flatten())
	require.Equal(t, src.Flatten(), fast.Flatten())

	MustSet(t, fast, 0, 0, 9)
	require.NotEqual(t, 9.0, MustAt(t, src, 0, 0))

	_, err = matrix.CopyOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCopyOf_Policy: the destination policy decides whether NaN passes.
func TestCopyOf_Policy(t *testing.T) {
	t.Parallel()

	raw := FromRows(t, [][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	_, err := matrix.CopyOf(raw)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	cp, err := matrix.CopyOf(raw, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, cp, 0, 0)))

	craw := CFromRows(t, [][]complex128{{complex(0, math.NaN())}}, matrix.WithNoValidateNaNInf())
	_, err = matrix.CopyOfC(craw)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.CopyOfC(hideC{craw}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}

func TestComplexify(t *testing.T) {
	t.Parallel()

	src := FromRows(t, [][]float64{{1, -2}, {-2, 3}})
	c, err := matrix.Complexify(src)
	require.NoError(t, err)
	require.True(t, c.IsRealValued())
	require.Equal(t, []complex128{1, -2, -2, 3}, c.Flatten())
	require.Equal(t, src.Flatten(), c.RealPart().Flatten())

	_, err = matrix.Complexify(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
