// SPDX-License-Identifier: MIT

package correlation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slowcv/matrix"
)

// hide wraps a Matrix so that type assertions to *matrix.Dense fail.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c matrix from row-major values or fails the test.
func MustDense(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustZeros returns an n×n zero matrix.
func MustZeros(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	return m
}

// ones returns a slice of n unit weights.
func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}

// requireDenseInDelta compares m against row-major want.
func requireDenseInDelta(t *testing.T, want []float64, m *matrix.Dense, delta float64) {
	t.Helper()
	require.InDeltaSlice(t, want, m.RawData(), delta)
}

// emptyBatch is a zero-row Matrix with a fixed column count; matrix.NewDense
// cannot represent it.
type emptyBatch struct{ cols int }

func (e emptyBatch) Rows() int                    { return 0 }
func (e emptyBatch) Cols() int                    { return e.cols }
func (e emptyBatch) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (e emptyBatch) Set(int, int, float64) error  { return matrix.ErrOutOfRange }
func (e emptyBatch) Clone() matrix.Matrix         { return e }
