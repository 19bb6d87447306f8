// SPDX-License-Identifier: MIT

package correlation_test

import (
	"fmt"

	"github.com/katalvlaran/slowcv/correlation"
	"github.com/katalvlaran/slowcv/matrix"
)

// ExampleAccumulator accumulates one unweighted batch and prints the
// reversible lagged correlation.
func ExampleAccumulator() {
	acc, _ := correlation.NewAccumulator(1)

	// One feature observed at t and t+τ for four pairs.
	z0, _ := matrix.NewDenseFrom(4, 1, []float64{1, -1, 1, -1})
	zt, _ := matrix.NewDenseFrom(4, 1, []float64{1, -1, -1, 1})
	if err := acc.Accumulate(z0, zt, []float64{1, 1, 1, 1}); err != nil {
		fmt.Println(err)
		return
	}

	c, q, _ := acc.Symmetrized()
	cv, _ := c.At(0, 0)
	qv, _ := q.At(0, 0)
	fmt.Printf("pairs=%d C=%.2f Q=%.2f\n", acc.Observations(), cv, qv)
	// Output:
	// pairs=4 C=0.00 Q=1.00
}
