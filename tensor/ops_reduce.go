// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Axis reductions (Sum, Max, Min), SumRightmost and cumulative scans.
//
// Implementation:
//   - Every kernel decomposes the shape around the axis into (outer, n, inner)
//     via splitAxis and runs a fixed o→k→i loop, so results are bitwise
//     reproducible across runs.

package tensor

import "math"

// Sum reduces along axis; keepDims retains the axis with size 1.
// Errors: ErrNilTensor, ErrAxis.
// Complexity: O(n).
func Sum(t *Dense, axis int, keepDims bool) (*Dense, error) {
	return reduce(opSum, t, axis, keepDims, 0, func(acc, v float64) float64 { return acc + v })
}

// Max reduces along axis with the maximum; an empty axis yields -Inf.
// Errors: ErrNilTensor, ErrAxis.
func Max(t *Dense, axis int, keepDims bool) (*Dense, error) {
	return reduce(opMax, t, axis, keepDims, math.Inf(-1), math.Max)
}

// Min reduces along axis with the minimum; an empty axis yields +Inf.
// Errors: ErrNilTensor, ErrAxis.
func Min(t *Dense, axis int, keepDims bool) (*Dense, error) {
	return reduce(opMin, t, axis, keepDims, math.Inf(1), math.Min)
}

// SumRightmost sums out the n rightmost axes. n <= 0 returns t unchanged.
// Errors: ErrNilTensor, ErrAxis when n > rank.
// Complexity: O(size).
func SumRightmost(t *Dense, n int) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opSumRight, ErrNilTensor)
	}
	if n <= 0 {
		return t, nil
	}
	r := len(t.shape)
	if n > r {
		return nil, shapeErrorf(opSumRight, ErrAxis, "cannot sum %d rightmost axes of rank-%d tensor", n, r)
	}
	// Collapse the n trailing axes into one and reduce it.
	collapsed := append(CloneShape(t.shape[:r-n]), NumElements(t.shape[r-n:]))

	return Sum(wrap(collapsed, t.data), -1, false)
}

// CumSum returns the running sum along axis.
// Errors: ErrNilTensor, ErrAxis.
func CumSum(t *Dense, axis int) (*Dense, error) {
	return scan(opCumSum, t, axis, 0, func(acc, v float64) float64 { return acc + v })
}

// CumProd returns the running product along axis.
// Errors: ErrNilTensor, ErrAxis.
func CumProd(t *Dense, axis int) (*Dense, error) {
	return scan(opCumProd, t, axis, 1, func(acc, v float64) float64 { return acc * v })
}

// reduce is the shared fold kernel.
func reduce(tag string, t *Dense, axis int, keepDims bool, init float64, f func(acc, v float64) float64) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(tag, ErrNilTensor)
	}
	ax, err := NormalizeAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(tag, err)
	}
	outer, n, inner := splitAxis(t.shape, ax)
	out := make([]float64, outer*inner)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			acc := init
			for k := 0; k < n; k++ {
				acc = f(acc, t.data[(o*n+k)*inner+i])
			}
			out[o*inner+i] = acc
		}
	}

	shape := make([]int, 0, len(t.shape))
	shape = append(shape, t.shape[:ax]...)
	if keepDims {
		shape = append(shape, 1)
	}
	shape = append(shape, t.shape[ax+1:]...)

	return wrap(shape, out), nil
}

// scan is the shared inclusive-prefix kernel.
func scan(tag string, t *Dense, axis int, init float64, f func(acc, v float64) float64) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(tag, ErrNilTensor)
	}
	ax, err := NormalizeAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(tag, err)
	}
	outer, n, inner := splitAxis(t.shape, ax)
	out := make([]float64, len(t.data))
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			acc := init
			for k := 0; k < n; k++ {
				off := (o*n+k)*inner + i
				acc = f(acc, t.data[off])
				out[off] = acc
			}
		}
	}

	return wrap(CloneShape(t.shape), out), nil
}
