// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with an explicit shape.
//   - Guarantee safety at the public surface: At/Item return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/Zeros/Full: O(n); At: O(rank); Values: O(n) copy.

package tensor

import (
	"fmt"
	"strings"
)

// Dense is an immutable N-dimensional row-major array of float64 values.
//   - shape holds the dimensions (rank = len(shape); rank 0 is a scalar).
//   - data is a flat buffer of length NumElements(shape).
type Dense struct {
	shape []int     // dimensions, each >= 0
	data  []float64 // row-major storage (len == NumElements(shape))
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates a tensor of the given shape from data (copied).
// Stage 1 (Validate): non-negative dims, len(data) == NumElements(shape).
// Stage 2 (Prepare): copy shape and data so the caller keeps ownership.
//
// Errors: ErrShape.
// Complexity: O(n).
func New(shape []int, data []float64) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, tensorErrorf(opNew, err)
	}
	if n := NumElements(shape); n != len(data) {
		return nil, shapeErrorf(opNew, ErrShape, "shape %v needs %d values, got %d", shape, n, len(data))
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{shape: CloneShape(shape), data: buf}, nil
}

// Must is a helper that wraps a call returning (*Dense, error) and panics if
// the error is non-nil. Intended for literals in tests and examples.
func Must(t *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}

	return t
}

// Scalar returns a rank-0 tensor holding v.
func Scalar(v float64) *Dense {
	return &Dense{shape: []int{}, data: []float64{v}}
}

// Vector returns a rank-1 tensor holding vs (copied).
func Vector(vs ...float64) *Dense {
	buf := make([]float64, len(vs))
	copy(buf, vs)

	return &Dense{shape: []int{len(vs)}, data: buf}
}

// Zeros returns a zero-filled tensor of the given shape.
func Zeros(shape ...int) (*Dense, error) {
	return Full(0, shape...)
}

// Ones returns a tensor of the given shape filled with 1.
func Ones(shape ...int) (*Dense, error) {
	return Full(1, shape...)
}

// Full returns a tensor of the given shape with every element set to v.
// Errors: ErrShape on negative dims.
func Full(v float64, shape ...int) (*Dense, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, tensorErrorf("Full", err)
	}
	buf := make([]float64, NumElements(shape))
	if v != 0 {
		for i := range buf {
			buf[i] = v
		}
	}

	return &Dense{shape: CloneShape(shape), data: buf}, nil
}

// ZerosLike returns a zero tensor with the shape of t.
func ZerosLike(t *Dense) *Dense {
	return &Dense{shape: CloneShape(t.shape), data: make([]float64, len(t.data))}
}

// Arange returns the rank-1 tensor [start, start+step, …) stopping before stop.
// Errors: ErrShape when step is zero or non-finite.
func Arange(start, stop, step float64) (*Dense, error) {
	if step == 0 || step != step {
		return nil, shapeErrorf(opArange, ErrShape, "step must be non-zero, got %g", step)
	}
	var buf []float64
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		buf = append(buf, v)
	}

	return &Dense{shape: []int{len(buf)}, data: append([]float64{}, buf...)}, nil
}

// Eye returns the n×n identity matrix.
// Errors: ErrShape when n < 0.
func Eye(n int) (*Dense, error) {
	if n < 0 {
		return nil, shapeErrorf(opEye, ErrShape, "n must be >= 0, got %d", n)
	}
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}

	return &Dense{shape: []int{n, n}, data: buf}, nil
}

// Shape returns a copy of the tensor dimensions.
// Complexity: O(rank).
func (t *Dense) Shape() []int {
	return CloneShape(t.shape)
}

// Rank returns the number of dimensions.
func (t *Dense) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Dense) Size() int {
	return len(t.data)
}

// Dim returns the size of the given (possibly negative) axis.
// Errors: ErrAxis.
func (t *Dense) Dim(axis int) (int, error) {
	ax, err := NormalizeAxis(axis, len(t.shape))
	if err != nil {
		return 0, tensorErrorf("Dim", err)
	}

	return t.shape[ax], nil
}

// Values returns a copy of the row-major buffer.
// Complexity: O(n).
func (t *Dense) Values() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// At returns the element at the given multi-index.
// Errors: ErrIndex when the index count or any coordinate is out of range.
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	if len(idx) != len(t.shape) {
		return 0, shapeErrorf(opAt, ErrIndex, "want %d indices, got %d", len(t.shape), len(idx))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			return 0, shapeErrorf(opAt, ErrIndex, "index %d out of [0,%d) on axis %d", v, t.shape[i], i)
		}
		off = off*t.shape[i] + v
	}

	return t.data[off], nil
}

// Item returns the single value of a one-element tensor (any rank).
// Errors: ErrShape when Size() != 1.
func (t *Dense) Item() (float64, error) {
	if len(t.data) != 1 {
		return 0, shapeErrorf(opItem, ErrShape, "tensor of shape %v is not a single value", t.shape)
	}

	return t.data[0], nil
}

// String implements fmt.Stringer: nested brackets in row-major order.
// Complexity: O(n) for string construction.
func (t *Dense) String() string {
	if len(t.shape) == 0 {
		return fmt.Sprintf("%g", t.data[0])
	}
	var sb strings.Builder
	t.writeAxis(&sb, 0, 0)

	return sb.String()
}

// writeAxis renders the sub-tensor starting at offset along axis.
func (t *Dense) writeAxis(sb *strings.Builder, axis, offset int) {
	sb.WriteString("[")
	inner := NumElements(t.shape[axis+1:])
	for i := 0; i < t.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		if axis == len(t.shape)-1 {
			fmt.Fprintf(sb, "%g", t.data[offset+i])
			continue
		}
		t.writeAxis(sb, axis+1, offset+i*inner)
	}
	sb.WriteString("]")
}

// wrap builds a Dense without copying; callers hand over ownership.
func wrap(shape []int, data []float64) *Dense {
	return &Dense{shape: shape, data: data}
}
