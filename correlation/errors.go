// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeWeight indicates a path weight below zero.
	ErrNegativeWeight = errors.New("correlation: negative path weight")

	// ErrEmpty indicates a normalization request before any weight was accumulated.
	ErrEmpty = errors.New("correlation: no accumulated weight")
)

const (
	opAccumulate          = "Accumulate"
	opNewAccumulator      = "NewAccumulator"
	opNewAccumulatorFrom  = "NewAccumulatorFrom"
	opAccumulatorNormed   = "Accumulator.Normalized"
	opAccumulatorSymmetry = "Accumulator.Symmetrized"
)

func correlationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
