// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Shape-changing kernels: Reshape, Stack, Unstack, Narrow, Pad.
//
// Determinism:
//   - Fixed o→k→i copy order; no aliasing between input and output buffers.

package tensor

// Reshape returns t with a new shape holding the same elements.
// One dimension may be -1 and is inferred from the element count.
//
// Errors: ErrNilTensor, ErrShape (count mismatch, more than one -1, negative dim).
// Complexity: O(n) copy.
func Reshape(t *Dense, shape ...int) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opReshape, ErrNilTensor)
	}
	target := CloneShape(shape)
	infer := -1
	known := 1
	for i, d := range target {
		switch {
		case d == -1 && infer == -1:
			infer = i
		case d < 0:
			return nil, shapeErrorf(opReshape, ErrShape, "invalid target shape %v", shape)
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || len(t.data)%known != 0 {
			return nil, shapeErrorf(opReshape, ErrShape, "cannot infer -1 in %v for %d elements", shape, len(t.data))
		}
		target[infer] = len(t.data) / known
	}
	if NumElements(target) != len(t.data) {
		return nil, shapeErrorf(opReshape, ErrShape, "cannot reshape %v (%d elements) into %v", t.shape, len(t.data), shape)
	}

	return wrap(target, t.Values()), nil
}

// Stack joins equally shaped tensors along a new axis.
// axis ∈ [-(r+1), r] where r is the common input rank.
//
// Errors: ErrEmpty, ErrNilTensor, ErrShape (shape mismatch), ErrAxis.
// Complexity: O(total elements).
func Stack(ts []*Dense, axis int) (*Dense, error) {
	if len(ts) == 0 {
		return nil, tensorErrorf(opStack, ErrEmpty)
	}
	for i, t := range ts {
		if t == nil {
			return nil, shapeErrorf(opStack, ErrNilTensor, "operand %d", i)
		}
		if !EqualShapes(t.shape, ts[0].shape) {
			return nil, shapeErrorf(opStack, ErrShape, "operand %d has shape %v, want %v", i, t.shape, ts[0].shape)
		}
	}
	base := ts[0].shape
	ax, err := NormalizeAxis(axis, len(base)+1)
	if err != nil {
		return nil, tensorErrorf(opStack, err)
	}

	shape := make([]int, 0, len(base)+1)
	shape = append(shape, base[:ax]...)
	shape = append(shape, len(ts))
	shape = append(shape, base[ax:]...)

	outer, n, inner := splitAxis(shape, ax)
	out := make([]float64, NumElements(shape))
	for o := 0; o < outer; o++ {
		for k := 0; k < n; k++ {
			copy(out[(o*n+k)*inner:(o*n+k+1)*inner], ts[k].data[o*inner:(o+1)*inner])
		}
	}

	return wrap(shape, out), nil
}

// Unstack splits t along axis into t.Shape()[axis] tensors of rank-1.
// Errors: ErrNilTensor, ErrAxis.
func Unstack(t *Dense, axis int) ([]*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opUnstack, ErrNilTensor)
	}
	ax, err := NormalizeAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opUnstack, err)
	}
	outer, n, inner := splitAxis(t.shape, ax)
	sliceShape := make([]int, 0, len(t.shape)-1)
	sliceShape = append(sliceShape, t.shape[:ax]...)
	sliceShape = append(sliceShape, t.shape[ax+1:]...)

	parts := make([]*Dense, n)
	for k := 0; k < n; k++ {
		buf := make([]float64, outer*inner)
		for o := 0; o < outer; o++ {
			copy(buf[o*inner:(o+1)*inner], t.data[(o*n+k)*inner:(o*n+k+1)*inner])
		}
		parts[k] = wrap(CloneShape(sliceShape), buf)
	}

	return parts, nil
}

// Narrow returns the slice [start, start+length) of t along axis.
// Errors: ErrNilTensor, ErrAxis, ErrIndex.
func Narrow(t *Dense, axis, start, length int) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opNarrow, ErrNilTensor)
	}
	ax, err := NormalizeAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opNarrow, err)
	}
	outer, n, inner := splitAxis(t.shape, ax)
	if start < 0 || length < 0 || start+length > n {
		return nil, shapeErrorf(opNarrow, ErrIndex, "range [%d,%d) outside axis of size %d", start, start+length, n)
	}
	shape := CloneShape(t.shape)
	shape[ax] = length
	out := make([]float64, outer*length*inner)
	for o := 0; o < outer; o++ {
		src := (o*n + start) * inner
		copy(out[o*length*inner:(o+1)*length*inner], t.data[src:src+length*inner])
	}

	return wrap(shape, out), nil
}

// Pad extends t along axis with before/after copies of value.
// Errors: ErrNilTensor, ErrAxis, ErrShape (negative widths).
func Pad(t *Dense, axis, before, after int, value float64) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opPad, ErrNilTensor)
	}
	if before < 0 || after < 0 {
		return nil, shapeErrorf(opPad, ErrShape, "negative pad widths (%d,%d)", before, after)
	}
	ax, err := NormalizeAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opPad, err)
	}
	outer, n, inner := splitAxis(t.shape, ax)
	m := n + before + after
	shape := CloneShape(t.shape)
	shape[ax] = m
	out := make([]float64, outer*m*inner)
	for o := 0; o < outer; o++ {
		for k := 0; k < m; k++ {
			dst := out[(o*m+k)*inner : (o*m+k+1)*inner]
			if k < before || k >= before+n {
				for i := range dst {
					dst[i] = value
				}
				continue
			}
			src := (o*n + k - before) * inner
			copy(dst, t.data[src:src+inner])
		}
	}

	return wrap(shape, out), nil
}
