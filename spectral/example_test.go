// SPDX-License-Identifier: MIT

package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/slowcv/matrix"
	"github.com/katalvlaran/slowcv/spectral"
)

// ExampleGenEigChol solves C·v = w·Q·v for a diagonal pair.
func ExampleGenEigChol() {
	c, _ := matrix.NewDenseFrom(2, 2, []float64{2, 0, 0, 6})
	q, _ := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 2})

	w, _, err := spectral.GenEigChol(c, q)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", w)
	// Output:
	// [3.000 2.000]
}

// ExampleStableSymmetricInverse inverts a singular diagonal matrix.
func ExampleStableSymmetricInverse() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 0, 0, 0})

	b, err := spectral.StableSymmetricInverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	b00, _ := b.At(0, 0)
	b11, _ := b.At(1, 1)
	fmt.Printf("%.2f %v\n", b00, b11 == 0)
	// Output:
	// 0.25 true
}
