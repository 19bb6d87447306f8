// SPDX-License-Identifier: MIT

package standardize_test

import (
	"fmt"

	"github.com/katalvlaran/slowcv/standardize"
)

func ExampleStandardizer_ForwardVec() {
	s, err := standardize.New([]float64{10, 0}, []float64{2, 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	y, _ := s.ForwardVec([]float64{14, -2})
	fmt.Printf("%.3f\n", y)
	// Output:
	// [2.000 -0.500]
}
