// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

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

// MustGonum copies m into gonum for reference arithmetic.
func MustGonum(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	g, err := matrix.ToGonum(m)
	require.NoError(t, err)

	return g
}

// requireAllFinite fails the test on the first NaN/±Inf entry.
func requireAllFinite(t *testing.T, m *matrix.Dense) {
	t.Helper()
	for idx, v := range m.RawData() {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "entry %d is %v", idx, v)
	}
}

// requireClose compares two gonum matrices element-wise.
func requireClose(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	require.Truef(t, mat.EqualApprox(want, got, tol),
		"want\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(got))
}
