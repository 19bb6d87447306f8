// SPDX-License-Identifier: MIT

package spectral

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/slowcv/matrix"
)

// Float32Epsilon is the machine epsilon of IEEE-754 single precision (2⁻²³).
const Float32Epsilon = 1.0 / (1 << 23)

const (
	// DefaultEigenFloor is the eigenvalue threshold of StableSymmetricInverse:
	// eigenvalues ≤ DefaultEigenFloor are replaced by exactly zero. It is kept
	// at float32 epsilon even for float64 work so that results match models
	// trained with single-precision tooling.
	DefaultEigenFloor = Float32Epsilon

	// DefaultSymmetryRTol and DefaultSymmetryATol define the allclose-style
	// symmetry precondition (|a-b| ≤ atol + rtol*|b|).
	DefaultSymmetryRTol = matrix.DefaultSymmetryRTol
	DefaultSymmetryATol = matrix.DefaultSymmetryATol

	// condWarnThreshold is the Cholesky condition estimate above which
	// GenEigChol logs a warning: results are still returned but lose digits.
	condWarnThreshold = 1e12
)

const (
	panicEigenFloorInvalid = "spectral: WithEigenFloor: floor must be finite, non-negative"
	panicToleranceInvalid  = "spectral: WithSymmetryTolerance: rtol and atol must be finite, non-negative"
)

// Option configures StableSymmetricInverse and GenEigChol.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	floor   float64      // eigenvalue floor for the stabilizer
	invSqrt bool         // return A^-1/2 instead of A^-1
	rtol    float64      // symmetry check, relative
	atol    float64      // symmetry check, absolute
	strict  bool         // GenEigChol: validate C symmetric
	logger  *slog.Logger // nil → slog.Default()
}

// WithInverseSqrt makes StableSymmetricInverse return V·diag(w^-1/2)·Vᵀ.
func WithInverseSqrt() Option {
	return func(o *Options) { o.invSqrt = true }
}

// WithEigenFloor overrides the stabilizer threshold (e.g. float64 epsilon for
// pure double-precision pipelines). Panics on negative or non-finite values.
func WithEigenFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor < 0 {
		panic(panicEigenFloorInvalid)
	}

	return func(o *Options) { o.floor = floor }
}

// WithSymmetryTolerance overrides the symmetry precondition tolerances.
func WithSymmetryTolerance(rtol, atol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 ||
		math.IsNaN(atol) || math.IsInf(atol, 0) || atol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// WithStrictSymmetry makes GenEigChol validate that C is symmetric before
// reducing it. Off by default: C̃ is symmetrized anyway.
func WithStrictSymmetry() Option {
	return func(o *Options) { o.strict = true }
}

// WithLogger routes diagnostics to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		floor: DefaultEigenFloor,
		rtol:  DefaultSymmetryRTol,
		atol:  DefaultSymmetryATol,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// symmetryOpt converts the resolved tolerances into a matrix option.
func (o Options) symmetryOpt() matrix.Option {
	return matrix.WithSymmetryTolerance(o.rtol, o.atol)
}
