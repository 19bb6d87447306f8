// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels and the numerical packages minimal by delegating
//     shape/nil/symmetry checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     wrap once more with their operation name and callers match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry checks run O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrDimensionMismatch if not square. Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of x is finite.
func ValidateFinite(x []float64) error {
	var i int
	for i = 0; i < len(x); i++ {
		if isNonFinite(x[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// IsSymmetric validates symmetry with allclose semantics against the
// transpose: |A[i,j] - A[j,i]| ≤ atol + rtol*max(|A[i,j]|, |A[j,i]|) for all
// i≠j. Defaults are DefaultSymmetryRTol / DefaultSymmetryATol; override with
// WithSymmetryTolerance. A rtol/atol of (0, 0) demands exact symmetry.
//
// Returns nil when symmetric, ErrAsymmetry (wrapped) otherwise, ErrNaNInf
// when an off-diagonal entry is NaN/±Inf; structural problems report
// ErrNilMatrix / ErrDimensionMismatch.
func IsSymmetric(m Matrix, opts ...Option) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("IsSymmetric", err)
	}
	o := gatherOptions(opts...)

	return checkSymmetric(m, o.rtol, o.atol)
}

// checkSymmetric scans the strict upper triangle in fixed i→j order and
// fails on the first pair where |aij-aji| > atol + rtol*max(|aij|,|aji|)
// or where either entry is NaN/±Inf.
// Using the max makes the relation independent of which side is "reference",
// so the check is identical for A and Aᵀ.
func checkSymmetric(m Matrix, rtol, atol float64) error {
	n := m.Rows()
	if n <= 1 {
		return nil
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	d, isDense := m.(*Dense)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if isDense {
				aij, aji = d.data[i*n+j], d.data[j*n+i]
			} else {
				if aij, err = m.At(i, j); err != nil {
					return validatorErrorf("checkSymmetric", err)
				}
				if aji, err = m.At(j, i); err != nil {
					return validatorErrorf("checkSymmetric", err)
				}
			}
			if isNonFinite(aij) || isNonFinite(aji) {
				return validatorErrorf(fmt.Sprintf("checkSymmetric(%d,%d)", i, j), ErrNaNInf)
			}
			if math.Abs(aij-aji) > atol+rtol*math.Max(math.Abs(aij), math.Abs(aji)) {
				return validatorErrorf(fmt.Sprintf("checkSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
