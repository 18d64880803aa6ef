// SPDX-License-Identifier: MIT

// Package tensor: shape arithmetic helpers.
//
// Purpose:
//   - Single source of truth for element counts, axis normalization,
//     broadcasting and the (outer, n, inner) axis decomposition used by every
//     reduction and structure kernel.
//
// Determinism & Performance:
//   - All helpers are pure and allocate at most one small []int.

package tensor

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opAt        = "At"
	opItem      = "Item"
	opArange    = "Arange"
	opEye       = "Eye"
	opBroadcast = "BroadcastShapes"
	opBroadTo   = "BroadcastTo"
	opSum       = "Sum"
	opMax       = "Max"
	opMin       = "Min"
	opSumRight  = "SumRightmost"
	opCumSum    = "CumSum"
	opCumProd   = "CumProd"
	opReshape   = "Reshape"
	opStack     = "Stack"
	opUnstack   = "Unstack"
	opNarrow    = "Narrow"
	opPad       = "Pad"
	opAllClose  = "AllClose"
)

// NumElements returns the product of dims (1 for the empty shape).
// Negative dims are not checked here; use ValidateShape first.
func NumElements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// ValidateShape ensures every dimension is non-negative.
// Complexity: O(rank).
func ValidateShape(shape []int) error {
	for i, d := range shape {
		if d < 0 {
			return shapeErrorf("ValidateShape", ErrShape, "dim %d is negative (%d)", i, d)
		}
	}

	return nil
}

// EqualShapes reports whether a and b describe the same shape.
func EqualShapes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// CloneShape returns an independent copy of shape (never nil).
func CloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)

	return out
}

// NormalizeAxis maps a possibly negative axis into [0, rank).
// Returns ErrAxis when axis ∉ [-rank, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrAxis, axis, rank)
	}
	if axis < 0 {
		axis += rank
	}

	return axis, nil
}

// BroadcastShapes computes the NumPy broadcast of all shapes.
// Shapes are right-aligned; each dimension pair must be equal or contain a 1.
//
// Returns ErrBroadcast naming the offending shapes.
// Complexity: O(k·maxRank).
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}
	out := make([]int, rank)
	for i := range out {
		out[i] = 1
	}
	for _, s := range shapes {
		off := rank - len(s) // right alignment offset
		for i, d := range s {
			cur := out[off+i]
			switch {
			case cur == d:
			case cur == 1:
				out[off+i] = d
			case d == 1:
			default:
				return nil, fmt.Errorf("%s: %w: %v", opBroadcast, ErrBroadcast, shapes)
			}
		}
	}

	return out, nil
}

// splitAxis decomposes shape around axis into (outer, n, inner) so that the
// flat offset of (o, k, i) is (o*n+k)*inner + i.
func splitAxis(shape []int, axis int) (outer, n, inner int) {
	outer = NumElements(shape[:axis])
	n = shape[axis]
	inner = NumElements(shape[axis+1:])

	return outer, n, inner
}

// stridesOf returns row-major strides for shape.
func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}

	return st
}

// broadcastStrides returns strides of in laid over out (rank(out) >= rank(in)),
// with zero stride on broadcast (size-1 or missing) axes.
func broadcastStrides(in, out []int) []int {
	st := make([]int, len(out))
	inSt := stridesOf(in)
	off := len(out) - len(in)
	for i := range in {
		if in[i] != 1 {
			st[off+i] = inSt[i]
		}
	}

	return st
}
