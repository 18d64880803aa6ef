// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// ReshapeTransform reshapes the trailing event axes from an input event
// shape to an output event shape holding the same number of elements.
// Its Jacobian is the identity: log-det-Jacobians are zeros over the batch shape.
type ReshapeTransform struct {
	base
	in, out []int
}

// NewReshape builds the event reshape.
// Errors: ErrInvalidArgument (negative dims or unequal element counts).
func NewReshape(in, out []int) (*ReshapeTransform, error) {
	if tensor.ValidateShape(in) != nil || tensor.ValidateShape(out) != nil {
		return nil, transformErrorf("NewReshape", ErrInvalidArgument,
			"event shapes must be non-negative, got %v and %v", in, out)
	}
	if a, b := tensor.NumElements(in), tensor.NumElements(out); a != b {
		return nil, transformErrorf("NewReshape", ErrInvalidArgument,
			"element count of in_event_shape %v (%d) must equal out_event_shape %v (%d)", in, a, out, b)
	}
	domain, err := constraint.Independent(constraint.Real(), len(in))
	if err != nil {
		return nil, err
	}
	codomain, err := constraint.Independent(constraint.Real(), len(out))
	if err != nil {
		return nil, err
	}

	t := &ReshapeTransform{in: tensor.CloneShape(in), out: tensor.CloneShape(out)}
	t.base = base{
		name:     fmt.Sprintf("Reshape(%v -> %v)", t.in, t.out),
		typ:      Bijection,
		domain:   domain,
		codomain: codomain,
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) {
				return reshapeEvent(x, t.in, t.out)
			},
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) {
				return reshapeEvent(y, t.out, t.in)
			},
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				return zeroJacobian(x, t.in)
			},
			inverseLDJ: func(y *tensor.Dense) (*tensor.Dense, error) {
				return zeroJacobian(y, t.out)
			},
			forwardShape: func(shape []int) ([]int, error) { return swapEvent(shape, t.in, t.out) },
			inverseShape: func(shape []int) ([]int, error) { return swapEvent(shape, t.out, t.in) },
		},
	}

	return t, nil
}

// InEventShape returns the domain event shape.
func (t *ReshapeTransform) InEventShape() []int { return tensor.CloneShape(t.in) }

// OutEventShape returns the codomain event shape.
func (t *ReshapeTransform) OutEventShape() []int { return tensor.CloneShape(t.out) }

// swapEvent validates that shape ends with from and replaces it with to.
func swapEvent(shape, from, to []int) ([]int, error) {
	n := len(shape) - len(from)
	if n < 0 {
		return nil, transformErrorf("Reshape", ErrShape,
			"expected shape length not less than %d, got %d", len(from), len(shape))
	}
	if !tensor.EqualShapes(shape[n:], from) {
		return nil, transformErrorf("Reshape", ErrShape,
			"event shape mismatch, expected %v, got %v", from, shape[n:])
	}

	return append(tensor.CloneShape(shape[:n]), to...), nil
}

func reshapeEvent(v *tensor.Dense, from, to []int) (*tensor.Dense, error) {
	shape, err := swapEvent(v.Shape(), from, to)
	if err != nil {
		return nil, err
	}

	return tensor.Reshape(v, shape...)
}

func zeroJacobian(v *tensor.Dense, event []int) (*tensor.Dense, error) {
	shape, err := swapEvent(v.Shape(), event, nil)
	if err != nil {
		return nil, err
	}

	return tensor.Zeros(shape...)
}
