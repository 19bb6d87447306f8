// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slowcv/matrix"
)

// StableSymmetricInverse returns a numerically stable inverse A⁺ of the
// symmetric matrix a, or its inverse square root (A⁺)^½ with WithInverseSqrt.
//
// Implementation:
//   - Stage 1: require a symmetric within allclose(A, Aᵀ, rtol=1e-5, atol=1e-6).
//   - Stage 2: A = V·diag(w)·Vᵀ via mat.EigenSym (ascending w).
//   - Stage 3: every w ≤ floor (default float32 epsilon) becomes exactly 0;
//     f(w) = w⁻¹ (or w^-½) for the rest and f(0) = 0.
//   - Stage 4: B = V·diag(f(w))·Vᵀ.
//
// Behavior highlights:
//   - Zeroed eigenvalues contribute nothing instead of ±Inf, so B is a
//     pseudo-inverse and never holds NaN/Inf for finite input.
//   - Negative eigenvalues from round-off are floored as well, so the square
//     root variant never needs complex arithmetic.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAsymmetry,
//     matrix.ErrNaNInf (precondition violations).
//   - matrix.ErrFactorization if the eigendecomposition does not converge.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func StableSymmetricInverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	if err := matrix.IsSymmetric(a, o.symmetryOpt()); err != nil {
		return nil, spectralErrorf(opStableSymmetricInverse, err)
	}
	sym, err := matrix.ToSymDense(a)
	if err != nil {
		return nil, spectralErrorf(opStableSymmetricInverse, err)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, spectralErrorf(opStableSymmetricInverse, matrix.ErrFactorization)
	}
	w := eig.Values(nil)
	var v mat.Dense
	eig.VectorsTo(&v)

	power := -1.0
	if o.invSqrt {
		power = -0.5
	}
	n := len(w)
	f := make([]float64, n)
	var i, j, floored int
	for i = 0; i < n; i++ {
		if w[i] <= o.floor {
			f[i] = 0 // guarded zero: 0^(negative) must not become +Inf
			floored++
			continue
		}
		f[i] = math.Pow(w[i], power)
	}

	// scaled = V·diag(f): scale column j of V by f[j].
	scaled := mat.DenseCopyOf(&v)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			scaled.Set(i, j, scaled.At(i, j)*f[j])
		}
	}
	var b mat.Dense
	b.Mul(scaled, v.T())

	if floored > 0 {
		o.logger.Debug("stabilizer floored eigenvalues",
			"n", n, "floored", floored, "floor", o.floor, "inverse_sqrt", o.invSqrt)
	}

	out, err := matrix.FromGonum(&b)
	if err != nil {
		return nil, spectralErrorf(opStableSymmetricInverse, err)
	}

	return out, nil
}
