// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for column statistics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slowcv/matrix"
)

func TestColumnStdDevs(t *testing.T) {
	t.Parallel()
	x := NewFilledDense(t, 4, 2,
		1, 5,
		2, 5,
		3, 5,
		6, 5,
	)
	for name, in := range map[string]matrix.Matrix{"dense": x, "fallback": hide{x}} {
		t.Run(name, func(t *testing.T) {
			means, stds, err := matrix.ColumnStdDevs(in)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{3, 5}, means, 1e-12)
			// Unbiased: (4+1+0+9)/3.
			assert.InDeltaSlice(t, []float64{math.Sqrt(14.0 / 3), 0}, stds, 1e-12)
		})
	}

	// Input untouched.
	CompareExact(t, [][]float64{{1, 5}, {2, 5}, {3, 5}, {6, 5}}, x)

	_, _, err := matrix.ColumnStdDevs(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
