// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over observation-by-feature matrices (rows are
//     observations): means and unbiased standard deviations.
//   - Moments are delegated to gonum/stat; this file only gathers columns
//     in a deterministic order and validates shapes.
//
// Exposed API:
//   - ColumnStdDevs(X) -> (means, stds) // unbiased (r-1) standard deviation

package matrix

import (
	"gonum.org/v1/gonum/stat"
)

const (
	opColumnStdDevs = "ColumnStdDevs"
)

// column copies column j of d into buf (len(buf) == d.r) and returns buf.
func (m *Dense) column(j int, buf []float64) []float64 {
	var i int
	for i = 0; i < m.r; i++ {
		buf[i] = m.data[i*m.c+j]
	}

	return buf
}

// ColumnStdDevs returns per-column means and unbiased standard deviations
// (normalization by r-1, matching the usual sample estimator).
// A single-row X yields NaN deviations, exactly as the estimator is undefined there;
// callers that need a usable scale must supply at least two observations.
// Complexity: Time O(r*c), Space O(r+c).
func ColumnStdDevs(X Matrix) (means, stds []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	means = make([]float64, d.c)
	stds = make([]float64, d.c)
	buf := make([]float64, d.r)
	var j int
	for j = 0; j < d.c; j++ {
		means[j], stds[j] = stat.MeanStdDev(d.column(j, buf), nil)
	}

	return means, stds, nil
}
