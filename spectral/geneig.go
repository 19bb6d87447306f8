// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slowcv/matrix"
)

// GenEigChol solves the symmetric-definite generalized eigenvalue problem
//
//	C·vᵢ = wᵢ·Q·vᵢ
//
// by reduction to a standard symmetric problem:
//
//	Q = L·Lᵀ              (Cholesky, L lower triangular)
//	C̃ = L⁻¹·C·L⁻ᵀ         (symmetric whenever C is)
//	C̃·ṽᵢ = wᵢ·ṽᵢ
//	vᵢ = L⁻ᵀ·ṽᵢ
//
// Returns:
//   - w: the n eigenvalues in non-ascending order (largest first).
//   - v: n×n matrix whose column i is the eigenvector of w[i]. Column signs
//     are whatever the symmetric eigensolver produced; no canonicalization.
//
// Errors:
//   - ErrNotPositiveDefinite when Q is not positive definite (including a Q
//     that is not symmetric within tolerance).
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for nil, non-square
//     or differently shaped inputs.
//   - matrix.ErrAsymmetry for an asymmetric C under WithStrictSymmetry.
//   - matrix.ErrFactorization if the eigensolver does not converge.
//
// Notes:
//   - L⁻¹ is formed explicitly (mat.TriDense.InverseTri) rather than through
//     triangular solves; for the small n this package targets, the cost is
//     irrelevant. L⁻ᵀ is taken as (L⁻¹)ᵀ.
//   - C̃ is averaged with its transpose before the eigensolve so round-off
//     asymmetry in C or in the two products cannot leak into the result.
//   - A Q that factorizes but is badly conditioned is logged at warn level.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GenEigChol(c, q matrix.Matrix, opts ...Option) ([]float64, *matrix.Dense, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape preconditions.
	if err := matrix.ValidateSquareNonNil(q); err != nil {
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}
	if err := matrix.ValidateBinarySameShape(c, q); err != nil {
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}
	if o.strict {
		if err := matrix.IsSymmetric(c, o.symmetryOpt()); err != nil {
			return nil, nil, spectralErrorf(opGenEigChol, err)
		}
	}
	n := q.Rows()

	// Stage 2: Q = L·Lᵀ. An asymmetric Q has no Cholesky factor either.
	if err := matrix.IsSymmetric(q, o.symmetryOpt()); err != nil {
		if errors.Is(err, matrix.ErrAsymmetry) {
			return nil, nil, spectralErrorf(opGenEigChol, ErrNotPositiveDefinite)
		}
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}
	qs, err := matrix.ToSymDense(q)
	if err != nil {
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(qs); !ok {
		o.logger.Debug("cholesky factorization failed", "n", n)
		return nil, nil, spectralErrorf(opGenEigChol, ErrNotPositiveDefinite)
	}
	if cond := chol.Cond(); cond > condWarnThreshold {
		o.logger.Warn("metric matrix is ill-conditioned", "n", n, "cond", cond)
	}
	var l mat.TriDense
	chol.LTo(&l)

	// Stage 3: explicit L⁻¹; a mat.Condition error only reports ill-conditioning.
	var lInv mat.TriDense
	if err = lInv.InverseTri(&l); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, nil, spectralErrorf(opGenEigChol, ErrNotPositiveDefinite)
		}
		o.logger.Warn("cholesky factor is ill-conditioned", "n", n, "cond", float64(cond))
	}
	ltInv := lInv.T()

	// Stage 4: C̃ = L⁻¹·C·L⁻ᵀ, symmetrized.
	cg, err := matrix.ToGonum(c)
	if err != nil {
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}
	var tmp, cTilde mat.Dense
	tmp.Mul(cg, ltInv)
	cTilde.Mul(&lInv, &tmp)
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(cTilde.At(i, j)+cTilde.At(j, i)))
		}
	}

	// Stage 5: standard symmetric eigenproblem, ascending.
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, spectralErrorf(opGenEigChol, matrix.ErrFactorization)
	}
	wAsc := eig.Values(nil)
	var vTilde mat.Dense
	eig.VectorsTo(&vTilde)

	// Stage 6: back-transform v = L⁻ᵀ·ṽ.
	var vAsc mat.Dense
	vAsc.Mul(ltInv, &vTilde)

	// Stage 7: flip to non-ascending; columns mirror the eigenvalue order.
	w := make([]float64, n)
	for i = 0; i < n; i++ {
		w[i] = wAsc[n-1-i]
	}
	vd, err := matrix.FromGonum(&vAsc)
	if err != nil {
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}
	v, err := matrix.ReverseColumns(vd)
	if err != nil {
		return nil, nil, spectralErrorf(opGenEigChol, err)
	}

	return w, v, nil
}
