// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slowcv/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	// The slice is copied.
	data[0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom(2, 3, data[:5])
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestDense_NumericPolicy(t *testing.T) {
	t.Parallel()
	strict := MustDense(t, 1, 1)
	assert.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	assert.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
	assert.True(t, math.IsInf(MustAt(t, loose, 0, 0), -1))

	// Clone preserves the policy.
	c := loose.Clone()
	assert.NoError(t, c.Set(0, 0, math.NaN()))
}

func TestDense_CloneRowRawDataAreCopies(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, 1, 2, 3, 4)

	c := m.Clone()
	MustSet(t, c, 0, 0, 9)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = 0
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	raw := m.RawData()
	raw[3] = 0
	assert.Equal(t, []float64{1, 2, 3, 4}, m.RawData())
}

func TestDense_IdentityShapeString(t *testing.T) {
	t.Parallel()
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
	r, c := id.Shape()
	assert.Equal(t, [2]int{3, 3}, [2]int{r, c})

	_, err = matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m := NewFilledDense(t, 2, 2, 1, 2.5, -3, 4)
	assert.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
