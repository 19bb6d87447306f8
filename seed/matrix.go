// SPDX-License-Identifier: MIT

package seed

import (
	"fmt"

	"github.com/katalvlaran/slowcv/matrix"
)

// NormalMatrix returns an r×c matrix of standard normal draws from the
// tensor stream, filled in row-major order.
// Errors: matrix.ErrInvalidDimensions for non-positive r or c.
func NormalMatrix(r, c int) (*matrix.Dense, error) {
	return fill("NormalMatrix", r, c, func() float64 { return tensor.NormFloat64() })
}

// UniformMatrix returns an r×c matrix of draws from [0, 1) off the tensor stream.
func UniformMatrix(r, c int) (*matrix.Dense, error) {
	return fill("UniformMatrix", r, c, func() float64 { return tensor.Float64() })
}

func fill(op string, r, c int, draw func() float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	mu.Lock()
	defer mu.Unlock()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, draw()); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	return m, nil
}
