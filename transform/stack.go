// SPDX-License-Identifier: MIT
// Package: transform
//
// StackTransform applies transform k to slice k along a fixed axis:
// unstack → apply → restack, for values and for log-det-Jacobians alike.
// The input size along the axis must equal the number of transforms.

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// StackTransform is the slice-wise product of transforms along an axis.
type StackTransform struct {
	base
	transforms []Transform
	axis       int
}

// NewStack builds the stacked transform.
// Errors: ErrInvalidArgument (empty), ErrType (nil member).
func NewStack(ts []Transform, axis int) (*StackTransform, error) {
	if len(ts) == 0 {
		return nil, transformErrorf("NewStack", ErrInvalidArgument, "at least one transform is required")
	}
	names := make([]string, len(ts))
	doms := make([]*constraint.Constraint, len(ts))
	cods := make([]*constraint.Constraint, len(ts))
	for i, t := range ts {
		if t == nil {
			return nil, transformErrorf("NewStack", ErrType, "transform %d is nil", i)
		}
		names[i], doms[i], cods[i] = t.String(), t.Domain(), t.Codomain()
	}
	domain, err := constraint.Stack(doms, axis)
	if err != nil {
		return nil, err
	}
	codomain, err := constraint.Stack(cods, axis)
	if err != nil {
		return nil, err
	}

	s := &StackTransform{transforms: append([]Transform(nil), ts...), axis: axis}
	s.base = base{
		name:     fmt.Sprintf("Stack[%s](axis=%d)", strings.Join(names, ", "), axis),
		typ:      combinedType(s.transforms),
		domain:   domain,
		codomain: codomain,
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) {
				return s.apply(x, Transform.Forward)
			},
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) {
				return s.apply(y, Transform.Inverse)
			},
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				return s.ldj(x, Transform.ForwardLogDetJacobian, Transform.Domain, domain)
			},
			inverseLDJ: func(y *tensor.Dense) (*tensor.Dense, error) {
				return s.ldj(y, Transform.InverseLogDetJacobian, Transform.Codomain, codomain)
			},
			forwardShape: func(shape []int) ([]int, error) {
				return s.shape(shape, Transform.ForwardShape)
			},
			inverseShape: func(shape []int) ([]int, error) {
				return s.shape(shape, Transform.InverseShape)
			},
		},
	}

	return s, nil
}

// Transforms returns the per-slice transforms.
func (s *StackTransform) Transforms() []Transform {
	return append([]Transform(nil), s.transforms...)
}

// Axis returns the stack axis.
func (s *StackTransform) Axis() int { return s.axis }

// checkSize validates the axis and the slice count for a tensor of the given shape.
func (s *StackTransform) checkSize(shape []int) error {
	r := len(shape)
	if s.axis < -r || s.axis >= r {
		return transformErrorf("Stack", ErrShape,
			"input rank %d must exceed stack axis %d", r, s.axis)
	}
	ax, _ := tensor.NormalizeAxis(s.axis, r)
	if shape[ax] != len(s.transforms) {
		return transformErrorf("Stack", ErrShape,
			"input size %d along axis %d must equal the number of transforms %d", shape[ax], s.axis, len(s.transforms))
	}

	return nil
}

func (s *StackTransform) apply(v *tensor.Dense, op func(Transform, *tensor.Dense) (*tensor.Dense, error)) (*tensor.Dense, error) {
	if err := s.checkSize(v.Shape()); err != nil {
		return nil, err
	}
	slices, err := tensor.Unstack(v, s.axis)
	if err != nil {
		return nil, err
	}
	for i, t := range s.transforms {
		if slices[i], err = op(t, slices[i]); err != nil {
			return nil, err
		}
	}

	return tensor.Stack(slices, s.axis)
}

// ldj stacks per-slice log-det-Jacobians. Slices with a lower event rank are
// first summed up to the widest one; an axis inside the event is summed out.
func (s *StackTransform) ldj(
	v *tensor.Dense,
	op func(Transform, *tensor.Dense) (*tensor.Dense, error),
	side func(Transform) *constraint.Constraint,
	whole *constraint.Constraint,
) (*tensor.Dense, error) {
	if err := s.checkSize(v.Shape()); err != nil {
		return nil, err
	}
	slices, err := tensor.Unstack(v, s.axis)
	if err != nil {
		return nil, err
	}
	maxRank := 0
	for _, t := range s.transforms {
		maxRank = max(maxRank, side(t).EventRank())
	}
	for i, t := range s.transforms {
		l, err := op(t, slices[i])
		if err != nil {
			return nil, err
		}
		if slices[i], err = tensor.SumRightmost(l, maxRank-side(t).EventRank()); err != nil {
			return nil, err
		}
	}

	if whole.AxisInEvent() {
		stacked, err := tensor.Stack(slices, -1)
		if err != nil {
			return nil, err
		}
		return tensor.Sum(stacked, -1, false)
	}
	axis := s.axis
	if axis < 0 {
		axis += maxRank
	} else if axis > slices[0].Rank() {
		// A leading-counted axis that lands past the batch dimensions sits
		// inside the parts' events.
		stacked, err := tensor.Stack(slices, -1)
		if err != nil {
			return nil, err
		}
		return tensor.Sum(stacked, -1, false)
	}

	return tensor.Stack(slices, axis)
}

func (s *StackTransform) shape(shape []int, op func(Transform, []int) ([]int, error)) ([]int, error) {
	if err := s.checkSize(shape); err != nil {
		return nil, err
	}
	ax, _ := tensor.NormalizeAxis(s.axis, len(shape))
	slice := append(tensor.CloneShape(shape[:ax]), shape[ax+1:]...)

	var out []int
	for i, t := range s.transforms {
		got, err := op(t, slice)
		if err != nil {
			return nil, err
		}
		if i > 0 && !tensor.EqualShapes(got, out) {
			return nil, transformErrorf("Stack", ErrShape,
				"slice %d maps to %v, slice 0 maps to %v", i, got, out)
		}
		out = got
	}
	pos, err := tensor.NormalizeAxis(s.axis, len(out)+1)
	if err != nil {
		return nil, err
	}

	return append(out[:pos:pos], append([]int{len(s.transforms)}, out[pos:]...)...), nil
}
