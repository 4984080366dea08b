// SPDX-License-Identifier: MIT

package hafnian_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hafnian/hafnian"
)

// ExampleHafnian evaluates the three perfect matchings of the all-ones 4×4
// matrix and the fifteen of the 6×6 one.
func ExampleHafnian() {
	res, err := hafnian.Hafnian([][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res, res.Field())

	ones := make([][]float64, 6)
	for i := range ones {
		ones[i] = []float64{1, 1, 1, 1, 1, 1}
	}
	res, _ = hafnian.Hafnian(ones, hafnian.WithWorkers(1))
	fmt.Printf("%.6f\n", res.Real())
	// Output:
	// 3 real
	// 15.000000
}

// ExampleHafnian_errors shows how validation failures are matched.
func ExampleHafnian_errors() {
	_, err := hafnian.Hafnian([][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	fmt.Println(errors.Is(err, hafnian.ErrDimensionParity))

	_, err = hafnian.Hafnian([][]float64{{0, 1}, {2, 0}})
	fmt.Println(errors.Is(err, hafnian.ErrAsymmetry))
	// Output:
	// true
	// true
}

// ExampleHafComplexRows forces the complex kernel.
func ExampleHafComplexRows() {
	v, _ := hafnian.HafComplexRows([][]complex128{{0, 2i}, {2i, 0}})
	fmt.Println(v)
	// Output:
	// (0+2i)
}
