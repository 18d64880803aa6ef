// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/bijector/tensor"
)

// ExampleAdd shows broadcasting a row against a column.
func ExampleAdd() {
	row := tensor.Must(tensor.New([]int{1, 3}, []float64{1, 2, 3}))
	col := tensor.Must(tensor.New([]int{2, 1}, []float64{10, 20}))

	sum, err := tensor.Add(row, col)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum.Shape(), sum)
	// Output:
	// [2 3] [[11 12 13] [21 22 23]]
}

// ExampleSumRightmost collapses trailing event axes into one value per batch.
func ExampleSumRightmost() {
	x := tensor.Must(tensor.New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6}))
	s, _ := tensor.SumRightmost(x, 1)
	fmt.Println(s)
	// Output:
	// [6 15]
}
