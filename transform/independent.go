// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// IndependentTransform reinterprets k trailing batch axes of a base
// transform as event axes. Values pass through the base unchanged; the
// per-element Jacobian is summed over the k absorbed axes.
type IndependentTransform struct {
	base
	inner Transform
	k     int
}

// NewIndependent wraps b with k reinterpreted batch axes.
// Errors: ErrType (nil base), ErrInvalidArgument (k < 0).
func NewIndependent(b Transform, k int) (*IndependentTransform, error) {
	if b == nil {
		return nil, transformErrorf("NewIndependent", ErrType, "base transform is nil")
	}
	if k < 0 {
		return nil, transformErrorf("NewIndependent", ErrInvalidArgument,
			"reinterpreted rank must be non-negative, got %d", k)
	}
	domain, err := constraint.Independent(b.Domain(), k)
	if err != nil {
		return nil, err
	}
	codomain, err := constraint.Independent(b.Codomain(), k)
	if err != nil {
		return nil, err
	}

	t := &IndependentTransform{inner: b, k: k}
	t.base = base{
		name:     fmt.Sprintf("Independent(%s, %d)", b, k),
		typ:      b.Type(),
		domain:   domain,
		codomain: codomain,
		rules: rules{
			forward: b.Forward,
			inverse: b.Inverse,
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				return t.summed(b.ForwardLogDetJacobian(x))
			},
			inverseLDJ: func(y *tensor.Dense) (*tensor.Dense, error) {
				return t.summed(b.InverseLogDetJacobian(y))
			},
			forwardShape: b.ForwardShape,
			inverseShape: b.InverseShape,
		},
	}

	return t, nil
}

// Base returns the wrapped transform.
func (t *IndependentTransform) Base() Transform { return t.inner }

// ReinterpretedRank returns k.
func (t *IndependentTransform) ReinterpretedRank() int { return t.k }

func (t *IndependentTransform) summed(ldj *tensor.Dense, err error) (*tensor.Dense, error) {
	if err != nil {
		return nil, err
	}

	return tensor.SumRightmost(ldj, t.k)
}
