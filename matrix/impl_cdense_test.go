// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hafnian/matrix"
)

func TestCDense_Basics(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewCDense(-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m := MustCDense(t, 2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 1+2i))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1+2i, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "CDense.At(2,0)")
	require.ErrorIs(t, m.Set(0, 3, 0), matrix.ErrOutOfRange)
}

func TestCDense_NumericPolicy(t *testing.T) {
	t.Parallel()

	strict := MustCDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, complex(0, math.NaN())), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, cmplx.Inf()), matrix.ErrNaNInf)

	loose := MustCDense(t, 1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.Set(0, 0, complex(math.Inf(1), 0)))

	_, err := matrix.NewCDenseFromRows([][]complex128{{complex(math.NaN(), 0)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewCDenseFromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestCDense_CloneFlatten(t *testing.T) {
	t.Parallel()

	m := CFromRows(t, [][]complex128{{1, 2i}, {3, 4 + 1i}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), v)

	flat := m.Flatten()
	require.Equal(t, []complex128{1, 2i, 3, 4 + 1i}, flat)
	flat[1] = 0
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2i, v)
}

func TestCDense_RealValuedAndRealPart(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)
	tests := []struct {
		name string
		rows [][]complex128
		want bool
	}{
		{"empty", [][]complex128{}, true},
		{"zero imag", [][]complex128{{1, 2}, {2, 3}}, true},
		{"negative zero imag", [][]complex128{{complex(1, negZero)}}, true},
		{"tiny imag", [][]complex128{{complex(1, 1e-300)}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := CFromRows(t, tc.rows)
			require.Equal(t, tc.want, m.IsRealValued())
		})
	}

	m := CFromRows(t, [][]complex128{{1 + 5i, 2}, {2, -3}}, matrix.WithNoValidateNaNInf())
	re := m.RealPart()
	CompareExact(t, [][]float64{{1, 2}, {2, -3}}, re)
	require.False(t, matrix.ValidatesNaNInf_TestOnly(re))
}

func TestCDense_String(t *testing.T) {
	t.Parallel()

	m := CFromRows(t, [][]complex128{{1, 2i}})
	require.Equal(t, "[(1+0i), (0+2i)]\n", m.String())
}
