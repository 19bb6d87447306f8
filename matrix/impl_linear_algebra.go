// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, matrix multiplication, matrix-vector product, transpose,
// scalar and row scaling, symmetrization and the in-place accumulation kernel
// used by streaming statistics. All functions perform strict fail-fast
// validation and return wrapped sentinel errors on dimension mismatches.
//
// Notes:
//   - Every kernel except AddInPlace allocates a fresh *Dense result and never
//     mutates its inputs.
//   - Every kernel has a flat-slice fast path for *Dense operands and a generic
//     At/Set fallback with the same fixed loop order.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opMul            = "Mul"
	opTranspose      = "Transpose"
	opScale          = "Scale"
	opMatVec         = "MatVec"
	opAddInPlace     = "AddInPlace"
	opSymmetrize     = "Symmetrize"
	opReverseColumns = "ReverseColumns"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b as a new Dense. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast-path: single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = 0; idx < rows*cols; idx++ {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: fixed i→j order through the interface.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C (r×c).
//   - Stage 2: *Dense fast path in i→k→j order (row-major friendly); generic
//     fallback in i→j→k order through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		var idx int
		for idx = 0; idx < rows*cols; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// AddInPlace performs dst += src. It is the only mutating kernel of the
// package and exists for streaming accumulators that must not reallocate
// their state per batch.
//
// Implementation:
//   - Stage 1: validate dst and src non-nil with identical shapes.
//   - Stage 2: flat loop when src is *Dense; otherwise read src through At.
//
// Behavior highlights:
//   - dst is untouched when validation fails.
//   - Deterministic flat (or i→j) order, so repeated accumulation of the same
//     batches in the same order is bitwise reproducible.
//
// Complexity:
//   - Time O(r*c), Space O(1) on the fast path.
func AddInPlace(dst *Dense, src Matrix) error {
	if dst == nil {
		return matrixErrorf(opAddInPlace, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}

	if ds, ok := src.(*Dense); ok {
		var idx int
		for idx = 0; idx < len(dst.data); idx++ {
			dst.data[idx] += ds.data[idx]
		}

		return nil
	}

	// Read everything first so a failing At leaves dst unchanged.
	sd, err := asDense(src)
	if err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	var idx int
	for idx = 0; idx < len(dst.data); idx++ {
		dst.data[idx] += sd.data[idx]
	}

	return nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
// Useful to remove floating-point asymmetry before symmetric factorizations.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := d.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		res.data[i*n+i] = d.data[i*n+i]
		for j = i + 1; j < n; j++ {
			v = 0.5 * (d.data[i*n+j] + d.data[j*n+i])
			res.data[i*n+j] = v
			res.data[j*n+i] = v
		}
	}

	return res, nil
}

// ReverseColumns returns a copy of m with its column order reversed
// (column j of the result is column c-1-j of m).
func ReverseColumns(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReverseColumns, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opReverseColumns, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opReverseColumns, err)
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[base+j] = d.data[base+d.c-1-j]
		}
	}

	return res, nil
}
