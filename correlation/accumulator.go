// SPDX-License-Identifier: MIT

package correlation

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slowcv/matrix"
)

// Accumulator owns the running sums C00, C01, C10, C11 for n components,
// together with the number of accumulated pairs and their total weight.
// The zero value is not usable; construct with NewAccumulator.
type Accumulator struct {
	n      int
	c      [4]*matrix.Dense // C00, C01, C10, C11
	obs    int
	weight float64
}

// NewAccumulator returns an Accumulator for nComp components with all sums zero.
// Errors: matrix.ErrInvalidDimensions if nComp <= 0.
func NewAccumulator(nComp int) (*Accumulator, error) {
	a := &Accumulator{n: nComp}
	if err := a.Reset(); err != nil {
		return nil, correlationErrorf(opNewAccumulator, err)
	}

	return a, nil
}

// NewAccumulatorFrom resumes accumulation from externally computed partial
// sums. The four matrices are copied. totalWeight is the Σw those sums
// already contain; it only matters for Normalized and Symmetrized.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square or
// differing shapes), matrix.ErrNaNInf / ErrNegativeWeight for totalWeight.
func NewAccumulatorFrom(c00, c01, c10, c11 *matrix.Dense, totalWeight float64) (*Accumulator, error) {
	if err := matrix.ValidateFinite([]float64{totalWeight}); err != nil {
		return nil, correlationErrorf(opNewAccumulatorFrom, err)
	}
	if totalWeight < 0 {
		return nil, correlationErrorf(opNewAccumulatorFrom, ErrNegativeWeight)
	}
	src := [4]*matrix.Dense{c00, c01, c10, c11}
	for _, m := range src {
		if m == nil {
			return nil, correlationErrorf(opNewAccumulatorFrom, matrix.ErrNilMatrix)
		}
		if err := matrix.ValidateSquare(m); err != nil {
			return nil, correlationErrorf(opNewAccumulatorFrom, err)
		}
		if err := matrix.ValidateSameShape(c00, m); err != nil {
			return nil, correlationErrorf(opNewAccumulatorFrom, err)
		}
	}

	a := &Accumulator{n: c00.Rows(), weight: totalWeight}
	for i, m := range src {
		a.c[i] = cloneDense(m)
	}

	return a, nil
}

// Accumulate adds one batch; see the package-level Accumulate for the
// contract. Observations grows by the batch's row count and TotalWeight by Σw.
func (a *Accumulator) Accumulate(zt0, ztt matrix.Matrix, pathweight []float64) error {
	if _, _, _, _, err := Accumulate(zt0, ztt, pathweight, a.c[0], a.c[1], a.c[2], a.c[3]); err != nil {
		return err
	}
	a.obs += zt0.Rows()
	a.weight += floats.Sum(pathweight)

	return nil
}

// NComp returns the number of components n.
func (a *Accumulator) NComp() int { return a.n }

// Observations returns the number of accumulated pairs.
func (a *Accumulator) Observations() int { return a.obs }

// TotalWeight returns Σw over all accumulated pairs.
func (a *Accumulator) TotalWeight() float64 { return a.weight }

// C00 returns a copy of Σ z_t0ᵀ(W⊙z_t0).
func (a *Accumulator) C00() *matrix.Dense { return cloneDense(a.c[0]) }

// C01 returns a copy of Σ z_t0ᵀ(W⊙z_tt).
func (a *Accumulator) C01() *matrix.Dense { return cloneDense(a.c[1]) }

// C10 returns a copy of Σ z_ttᵀ(W⊙z_t0).
func (a *Accumulator) C10() *matrix.Dense { return cloneDense(a.c[2]) }

// C11 returns a copy of Σ z_ttᵀ(W⊙z_tt).
func (a *Accumulator) C11() *matrix.Dense { return cloneDense(a.c[3]) }

// Matrices returns copies of all four raw sums.
func (a *Accumulator) Matrices() (c00, c01, c10, c11 *matrix.Dense) {
	return a.C00(), a.C01(), a.C10(), a.C11()
}

// Reset zeroes the sums and counters.
func (a *Accumulator) Reset() error {
	var err error
	for i := range a.c {
		if a.c[i], err = matrix.NewDense(a.n, a.n); err != nil {
			return err
		}
	}
	a.obs, a.weight = 0, 0

	return nil
}

// Normalized returns the four sums divided by TotalWeight.
// Errors: ErrEmpty when no weight has been accumulated.
func (a *Accumulator) Normalized() (c00, c01, c10, c11 *matrix.Dense, err error) {
	if a.weight == 0 {
		return nil, nil, nil, nil, correlationErrorf(opAccumulatorNormed, ErrEmpty)
	}
	var out [4]*matrix.Dense
	for i, m := range a.c {
		if out[i], err = scaled(m, 1/a.weight); err != nil {
			return nil, nil, nil, nil, correlationErrorf(opAccumulatorNormed, err)
		}
	}

	return out[0], out[1], out[2], out[3], nil
}

// Symmetrized returns the reversible estimates
//
//	C = ½(C01 + C10) / Σw
//	Q = ½(C00 + C11) / Σw
//
// both symmetric by construction, ready for spectral.GenEigChol(C, Q).
// Errors: ErrEmpty when no weight has been accumulated.
func (a *Accumulator) Symmetrized() (c, q *matrix.Dense, err error) {
	if a.weight == 0 {
		return nil, nil, correlationErrorf(opAccumulatorSymmetry, ErrEmpty)
	}
	if c, err = halfSum(a.c[1], a.c[2], a.weight); err != nil {
		return nil, nil, correlationErrorf(opAccumulatorSymmetry, err)
	}
	if q, err = halfSum(a.c[0], a.c[3], a.weight); err != nil {
		return nil, nil, correlationErrorf(opAccumulatorSymmetry, err)
	}

	return c, q, nil
}

// halfSum returns (x + y) / (2·w), made exactly symmetric.
func halfSum(x, y *matrix.Dense, w float64) (*matrix.Dense, error) {
	sum, err := matrix.Add(x, y)
	if err != nil {
		return nil, err
	}
	s, err := scaled(sum, 0.5/w)
	if err != nil {
		return nil, err
	}

	return matrix.Symmetrize(s)
}

func scaled(m matrix.Matrix, alpha float64) (*matrix.Dense, error) {
	res, err := matrix.Scale(m, alpha)
	if err != nil {
		return nil, err
	}

	return res.(*matrix.Dense), nil
}

func cloneDense(m *matrix.Dense) *matrix.Dense {
	return m.Clone().(*matrix.Dense)
}
