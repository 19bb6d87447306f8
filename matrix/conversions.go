// SPDX-License-Identifier: MIT
// Package matrix: converters between Dense and gonum/mat.
//
// Factorizations (Cholesky, symmetric eigendecomposition, triangular inverse)
// are delegated to gonum; these converters are the only place where data
// crosses that boundary. Every conversion copies, so neither side ever
// aliases the other's storage.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum    = "ToGonum"
	opToSymDense = "ToSymDense"
	opFromGonum  = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
// Errors: ErrNilMatrix; wrapped At errors on the fallback path.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(d.r, d.c, d.RawData()), nil
}

// ToSymDense copies the upper triangle of the square matrix m into a new
// *mat.SymDense. The strict lower triangle of m is ignored, so callers that
// need symmetry checked must validate first (IsSymmetric)
// or symmetrize (Symmetrize).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ToSymDense(m Matrix) (*mat.SymDense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	n := d.r
	s := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, d.data[i*n+j])
		}
	}

	return s, nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// The numeric policy of the result is the default one, but values are copied
// verbatim (factorization output is not re-validated element by element).
// Errors: ErrNilMatrix for a nil argument, ErrInvalidDimensions for an empty one.
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = a.At(i, j)
		}
	}

	return out, nil
}
