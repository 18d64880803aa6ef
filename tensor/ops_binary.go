// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Broadcasting binary kernels (Add, Sub, Mul, Div, Pow, Maximum).
//
// Implementation:
//   - Stage 1: validate operands and compute the broadcast shape.
//   - Stage 2: fast path when both shapes are identical (single flat loop).
//   - Stage 3: general path walks the output multi-index with per-operand
//     strides where broadcast axes carry stride 0.
//
// Complexity: O(n_out·rank) worst case, O(n_out) on the fast path.

package tensor

import "math"

// Add returns a + b with broadcasting.
func Add(a, b *Dense) (*Dense, error) {
	return binary("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Dense) (*Dense, error) {
	return binary("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a ⊙ b with broadcasting.
func Mul(a, b *Dense) (*Dense, error) {
	return binary("Mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b with broadcasting (IEEE division by zero).
func Div(a, b *Dense) (*Dense, error) {
	return binary("Div", a, b, func(x, y float64) float64 { return x / y })
}

// Pow returns a^b with broadcasting.
func Pow(a, b *Dense) (*Dense, error) {
	return binary("Pow", a, b, math.Pow)
}

// Maximum returns max(a, b) element-wise with broadcasting.
func Maximum(a, b *Dense) (*Dense, error) {
	return binary("Maximum", a, b, math.Max)
}

// BroadcastTo expands t to shape following broadcasting rules.
// Errors: ErrNilTensor, ErrBroadcast when t cannot be expanded to exactly shape.
func BroadcastTo(t *Dense, shape []int) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opBroadTo, ErrNilTensor)
	}
	if err := ValidateShape(shape); err != nil {
		return nil, tensorErrorf(opBroadTo, err)
	}
	out, err := BroadcastShapes(t.shape, shape)
	if err != nil || !EqualShapes(out, shape) {
		return nil, shapeErrorf(opBroadTo, ErrBroadcast, "cannot expand %v to %v", t.shape, shape)
	}
	if EqualShapes(t.shape, shape) {
		return wrap(CloneShape(shape), t.Values()), nil
	}

	buf := make([]float64, NumElements(shape))
	st := broadcastStrides(t.shape, shape)
	walk(shape, func(flat int, offs []int) {
		buf[flat] = t.data[offs[0]]
	}, st)

	return wrap(CloneShape(shape), buf), nil
}

// binary is the shared broadcasting kernel behind every binary op.
func binary(tag string, a, b *Dense, f func(x, y float64) float64) (*Dense, error) {
	if a == nil || b == nil {
		return nil, tensorErrorf(tag, ErrNilTensor)
	}
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, tensorErrorf(tag, err)
	}
	out := make([]float64, NumElements(shape))

	// Fast path: identical shapes share the flat index.
	if EqualShapes(a.shape, b.shape) {
		for i := range out {
			out[i] = f(a.data[i], b.data[i])
		}
		return wrap(shape, out), nil
	}

	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)
	walk(shape, func(flat int, offs []int) {
		out[flat] = f(a.data[offs[0]], b.data[offs[1]])
	}, sa, sb)

	return wrap(shape, out), nil
}

// walk visits every multi-index of shape in row-major order and reports the
// flat output index together with one offset per strides slice.
func walk(shape []int, visit func(flat int, offs []int), strides ...[]int) {
	n := NumElements(shape)
	if n == 0 {
		return
	}
	rank := len(shape)
	idx := make([]int, rank)
	offs := make([]int, len(strides))
	for flat := 0; flat < n; flat++ {
		visit(flat, offs)
		// Increment the multi-index odometer from the right.
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			for k, st := range strides {
				offs[k] += st[ax]
			}
			if idx[ax] < shape[ax] {
				break
			}
			for k, st := range strides {
				offs[k] -= st[ax] * shape[ax]
			}
			idx[ax] = 0
		}
	}
}
