// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
)

// ErrNotPositiveDefinite is returned by GenEigChol when the metric matrix Q
// cannot be Cholesky-factorized. In training this almost always means the
// covariance estimate became rank deficient: too few samples for the number
// of basis functions, or a learning step large enough to collapse them.
var ErrNotPositiveDefinite = errors.New(
	"spectral: Q matrix is not positive semi-definite; try reducing the learning rate, " +
		"increasing the batch size or asking for fewer components (smaller output size)")

// Operation tags for error wrapping.
const (
	opStableSymmetricInverse = "StableSymmetricInverse"
	opGenEigChol             = "GenEigChol"
)

// spectralErrorf wraps err with an operation tag, preserving it for errors.Is.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
