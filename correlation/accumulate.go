// SPDX-License-Identifier: MIT

package correlation

import (
	"github.com/katalvlaran/slowcv/matrix"
)

// Accumulate adds the weighted correlations of one batch into c00, c01, c10
// and c11 and returns the same four pointers.
//
// Inputs:
//   - zt0, ztt: N×n feature matrices, row i of ztt paired with row i of zt0.
//   - pathweight: N finite, non-negative weights (all ones for an unweighted
//     estimate).
//   - c00..c11: n×n running sums, mutated in place.
//
// A batch with zero rows (and an empty, non-nil pathweight) is validated and
// then leaves the accumulators untouched.
//
// Implementation:
//   - Stage 1: validate every shape and weight.
//   - Stage 2: form W⊙zt0, W⊙ztt and the four n×n products.
//   - Stage 3: add the products into the accumulators.
//
// Errors (accumulators untouched on any of them):
//   - matrix.ErrNilMatrix for nil inputs.
//   - matrix.ErrDimensionMismatch when row counts, column counts or the
//     weight length disagree, or an accumulator is not n×n.
//   - matrix.ErrNaNInf / ErrNegativeWeight for bad weights.
//
// Complexity:
//   - Time O(N·n²), Space O(N·n + n²).
func Accumulate(
	zt0, ztt matrix.Matrix,
	pathweight []float64,
	c00, c01, c10, c11 *matrix.Dense,
) (*matrix.Dense, *matrix.Dense, *matrix.Dense, *matrix.Dense, error) {
	if err := validateBatch(zt0, ztt, pathweight, c00, c01, c10, c11); err != nil {
		return c00, c01, c10, c11, correlationErrorf(opAccumulate, err)
	}
	if zt0.Rows() == 0 {
		return c00, c01, c10, c11, nil
	}

	prods, err := batchProducts(zt0, ztt, pathweight)
	if err != nil {
		return c00, c01, c10, c11, correlationErrorf(opAccumulate, err)
	}

	// Shapes were validated, so the additions cannot fail part-way.
	for i, dst := range [4]*matrix.Dense{c00, c01, c10, c11} {
		if err = matrix.AddInPlace(dst, prods[i]); err != nil {
			return c00, c01, c10, c11, correlationErrorf(opAccumulate, err)
		}
	}

	return c00, c01, c10, c11, nil
}

// validateBatch checks the batch against accumulators of size n×n,
// n = zt0.Cols().
func validateBatch(zt0, ztt matrix.Matrix, w []float64, acc ...*matrix.Dense) error {
	if err := matrix.ValidateBinarySameShape(zt0, ztt); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(w, zt0.Rows()); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(w); err != nil {
		return err
	}
	for _, v := range w {
		if v < 0 {
			return ErrNegativeWeight
		}
	}
	n := zt0.Cols()
	for _, c := range acc {
		if c == nil {
			return matrix.ErrNilMatrix
		}
		if c.Rows() != n || c.Cols() != n {
			return matrix.ErrDimensionMismatch
		}
	}

	return nil
}

// batchProducts returns z0ᵀ(W⊙z0), z0ᵀ(W⊙zt), ztᵀ(W⊙z0), ztᵀ(W⊙zt).
func batchProducts(zt0, ztt matrix.Matrix, w []float64) ([4]matrix.Matrix, error) {
	var out [4]matrix.Matrix

	wz0, err := matrix.ScaleRows(zt0, w)
	if err != nil {
		return out, err
	}
	wzt, err := matrix.ScaleRows(ztt, w)
	if err != nil {
		return out, err
	}
	z0T, err := matrix.Transpose(zt0)
	if err != nil {
		return out, err
	}
	ztT, err := matrix.Transpose(ztt)
	if err != nil {
		return out, err
	}

	pairs := [4][2]matrix.Matrix{
		{z0T, wz0},
		{z0T, wzt},
		{ztT, wz0},
		{ztT, wzt},
	}
	for i, p := range pairs {
		if out[i], err = matrix.Mul(p[0], p[1]); err != nil {
			return out, err
		}
	}

	return out, nil
}
