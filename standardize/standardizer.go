// SPDX-License-Identifier: MIT

package standardize

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slowcv/matrix"
)

// ErrNoFeatures indicates empty mean/stddev vectors.
var ErrNoFeatures = errors.New("standardize: at least one feature is required")

const (
	opNew        = "New"
	opFit        = "Fit"
	opForward    = "Forward"
	opForwardVec = "ForwardVec"
)

func standardizeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Standardizer holds per-feature location and scale parameters.
type Standardizer struct {
	mean  []float64
	scale []float64 // stddev + eps, precomputed
	std   []float64
	eps   float64
}

// New returns a Standardizer for len(mean) features.
//
// Errors:
//   - ErrNoFeatures for empty vectors.
//   - matrix.ErrDimensionMismatch if len(stddev) != len(mean).
//   - matrix.ErrNaNInf for non-finite parameters.
func New(mean, stddev []float64, opts ...Option) (*Standardizer, error) {
	o := gatherOptions(opts...)
	if len(mean) == 0 {
		return nil, standardizeErrorf(opNew, ErrNoFeatures)
	}
	if err := matrix.ValidateVecLen(stddev, len(mean)); err != nil {
		return nil, standardizeErrorf(opNew, err)
	}
	if err := matrix.ValidateFinite(mean); err != nil {
		return nil, standardizeErrorf(opNew, err)
	}
	if err := matrix.ValidateFinite(stddev); err != nil {
		return nil, standardizeErrorf(opNew, err)
	}

	s := &Standardizer{
		mean:  append([]float64(nil), mean...),
		std:   append([]float64(nil), stddev...),
		scale: append([]float64(nil), stddev...),
		eps:   o.eps,
	}
	floats.AddConst(o.eps, s.scale)

	return s, nil
}

// Fit estimates mean and unbiased standard deviation per column of x
// (rows are observations) and returns the corresponding Standardizer.
// x needs at least two rows for the deviation to be defined.
func Fit(x matrix.Matrix, opts ...Option) (*Standardizer, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, standardizeErrorf(opFit, err)
	}
	if x.Rows() < 2 {
		return nil, standardizeErrorf(opFit, matrix.ErrDimensionMismatch)
	}
	mean, std, err := matrix.ColumnStdDevs(x)
	if err != nil {
		return nil, standardizeErrorf(opFit, err)
	}
	s, err := New(mean, std, opts...)
	if err != nil {
		return nil, standardizeErrorf(opFit, err)
	}

	return s, nil
}

// Forward returns (x − mean) / (stddev + eps) applied to every row of x.
// x is not modified. Element-wise results equal ForwardVec on each row,
// including ±Inf when a finite input overflows.
// Errors: matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when x.Cols()
// differs from Features().
//
// Complexity: Time O(r*c), Space O(r*c).
func (s *Standardizer) Forward(x matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, standardizeErrorf(opForward, err)
	}
	if x.Cols() != len(s.mean) {
		return nil, standardizeErrorf(opForward, matrix.ErrDimensionMismatch)
	}

	r, c := x.Rows(), x.Cols()
	out, err := matrix.NewDenseWith(r, c, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, standardizeErrorf(opForward, err)
	}
	row := make([]float64, c)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, standardizeErrorf(opForward, err)
			}
			row[j] = v
		}
		s.apply(row)
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, row[j]); err != nil {
				return nil, standardizeErrorf(opForward, err)
			}
		}
	}

	return out, nil
}

// ForwardVec standardizes a single observation into a new slice.
func (s *Standardizer) ForwardVec(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, len(s.mean)); err != nil {
		return nil, standardizeErrorf(opForwardVec, err)
	}
	out := append([]float64(nil), x...)
	s.apply(out)

	return out, nil
}

// apply standardizes v in place.
func (s *Standardizer) apply(v []float64) {
	floats.Sub(v, s.mean)
	floats.Div(v, s.scale)
}

// Features returns the number of features.
func (s *Standardizer) Features() int { return len(s.mean) }

// Eps returns the additive stabilizer.
func (s *Standardizer) Eps() float64 { return s.eps }

// Mean returns a copy of the per-feature means.
func (s *Standardizer) Mean() []float64 { return append([]float64(nil), s.mean...) }

// StdDev returns a copy of the per-feature standard deviations (without eps).
func (s *Standardizer) StdDev() []float64 { return append([]float64(nil), s.std...) }
