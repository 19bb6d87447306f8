// Package matrix offers the dense linear-algebra substrate used by slowcv.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional finite-value policy.
//   - Validators (shape, squareness, symmetry within tolerance) shared by every
//     numerical routine so preconditions fail fast and uniformly.
//   - Allocation-explicit kernels (Mul, Transpose, Scale, ScaleRows, ...) plus
//     the single in-place kernel AddInPlace used by streaming accumulators.
//   - Column statistics (means, unbiased standard deviations) for feature
//     standardization.
//   - A bridge to gonum (ToGonum, ToSymDense, FromGonum) so factorizations
//     (Cholesky, symmetric eigendecomposition) are delegated to a trusted library.
//
// Matrices here are small: tens to a few hundred rows and columns, the size of
// a learned collective-variable basis. Nothing in this package is tuned for
// large or sparse problems.
package matrix
