// Package spectral solves the small dense symmetric eigenproblems that turn
// time-lagged correlation matrices into slow collective variables.
//
// What is in here?
//
//   - GenEigChol solves the symmetric-definite generalized eigenproblem
//     C·v = w·Q·v by Cholesky reduction (Q = L·Lᵀ, C̃ = L⁻¹·C·L⁻ᵀ), the
//     approach of Sidky, Chen & Ferguson, J. Chem. Phys. 150, 214114 (2019).
//     Results come back in non-ascending order: the leading eigenpair is the
//     slowest / dominant mode.
//   - StableSymmetricInverse returns a pseudo-inverse A⁺ (or A^-1/2) of a
//     symmetric matrix by eigendecomposition, flooring eigenvalues at or below
//     float32 machine epsilon to exactly zero. It is the stabilization
//     primitive for whitening-style estimators; GenEigChol does not need it.
//
// Both routines delegate factorizations to gonum (mat.Cholesky, mat.EigenSym,
// mat.TriDense.InverseTri) and never reimplement them.
//
// Errors:
//
//   - Preconditions (nil, non-square, shape mismatch, asymmetric input where
//     symmetry is required) are reported with the matrix package sentinels
//     (matrix.ErrDimensionMismatch, matrix.ErrAsymmetry, ...). They indicate a
//     caller bug and are not meant to be retried.
//   - ErrNotPositiveDefinite is the one failure training loops should expect:
//     the metric matrix Q lost positive definiteness. Its message tells the
//     user what to change.
//
// Usage:
//
//	w, v, err := spectral.GenEigChol(c, q)
//	if errors.Is(err, spectral.ErrNotPositiveDefinite) {
//		// lower the learning rate, grow the batch, or request fewer components
//	}
package spectral
