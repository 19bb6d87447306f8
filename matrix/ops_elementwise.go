// SPDX-License-Identifier: MIT
// Package matrix: element-wise micro-kernels with broadcasting.
//
// Purpose:
//   - Keep the tight per-element loops used by higher-level routines in one
//     place (row scaling for weighted statistics, tolerance comparisons).
//
// Determinism:
//   - Fixed i→j traversal; *Dense fast paths walk the flat buffer.

package matrix

import "math"

const (
	opScaleRows = "ScaleRows"
	opAllClose  = "AllClose"
)

// ScaleRows computes out[i,j] = X[i,j] * w[i] (w broadcast across columns).
// This is W ⊙ X for W = tile(w, cols), the weighting used by pathweighted
// correlation estimates.
//
// Errors:
//   - ErrNilMatrix (nil X or nil w), ErrDimensionMismatch (len(w) != rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ScaleRows(X Matrix, w []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(w, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	var i, j, base int
	var sf, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			sf = w[i] // scale factor for row i
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}

		return out, nil
	}

	for i = 0; i < r; i++ {
		sf = w[i]
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleRows, err)
			}
			out.data[i*c+j] = v * sf
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. Negative tolerances are treated as their absolute value.
//
// Errors:
//   - ErrNaNInf for NaN/Inf tolerances; ErrNilMatrix; ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) on the fast path.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var idx int
	for idx = 0; idx < len(da.data); idx++ {
		// Written as !(≤) so that NaN on either side reports "not close".
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil
		}
	}

	return true, nil
}
