// SPDX-License-Identifier: MIT
// Package: transform
//
// ChainTransform composes t₀, t₁, …, tₙ₋₁: forward applies them in order,
// inverse in reverse order.
//
// Event-rank bookkeeping (dᵢ = tᵢ.Domain rank, cᵢ = tᵢ.Codomain rank):
//   - Domain:   r = cₙ₋₁; for i = n-1..0: r = max(r - (cᵢ - dᵢ), dᵢ)
//     → Independent(t₀.Domain, r - d₀). The minimal input event rank such
//     that every step sees at least its own event rank.
//   - Codomain: r = chain domain rank; for i = 0..n-1: r = max(r + cᵢ - dᵢ, cᵢ)
//     → Independent(tₙ₋₁.Codomain, r - cₙ₋₁).
//   - fldj:     walking forward with running rank e (starting at the domain
//     rank), step i contributes SumRightmost(tᵢ.fldj(xᵢ), e - dᵢ), then
//     e += cᵢ - dᵢ.

package transform

import (
	"strings"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// ChainTransform is the sequential composition of transforms.
type ChainTransform struct {
	base
	transforms []Transform
}

// NewChain composes ts in application order.
// Errors: ErrInvalidArgument (empty), ErrType (nil member).
func NewChain(ts ...Transform) (*ChainTransform, error) {
	if len(ts) == 0 {
		return nil, transformErrorf("NewChain", ErrInvalidArgument, "at least one transform is required")
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		if t == nil {
			return nil, transformErrorf("NewChain", ErrType, "transform %d is nil", i)
		}
		names[i] = t.String()
	}

	c := &ChainTransform{transforms: append([]Transform(nil), ts...)}
	domain, codomain, err := chainConstraints(c.transforms)
	if err != nil {
		return nil, err
	}
	c.base = base{
		name:     "Chain[" + strings.Join(names, ", ") + "]",
		typ:      combinedType(c.transforms),
		domain:   domain,
		codomain: codomain,
		rules: rules{
			forward:      c.forward,
			inverse:      c.inverse,
			forwardLDJ:   c.forwardLDJ,
			forwardShape: c.forwardShape,
			inverseShape: c.inverseShape,
		},
	}

	return c, nil
}

// Transforms returns the constituents in application order.
func (c *ChainTransform) Transforms() []Transform {
	return append([]Transform(nil), c.transforms...)
}

func chainConstraints(ts []Transform) (domain, codomain *constraint.Constraint, err error) {
	first, last := ts[0], ts[len(ts)-1]

	r := last.Codomain().EventRank()
	for i := len(ts) - 1; i >= 0; i-- {
		d, cd := ts[i].Domain().EventRank(), ts[i].Codomain().EventRank()
		r = max(r-(cd-d), d)
	}
	if domain, err = constraint.Independent(first.Domain(), r-first.Domain().EventRank()); err != nil {
		return nil, nil, err
	}

	r = domain.EventRank()
	for _, t := range ts {
		d, cd := t.Domain().EventRank(), t.Codomain().EventRank()
		r = max(r+cd-d, cd)
	}
	if codomain, err = constraint.Independent(last.Codomain(), r-last.Codomain().EventRank()); err != nil {
		return nil, nil, err
	}

	return domain, codomain, nil
}

func (c *ChainTransform) forward(x *tensor.Dense) (*tensor.Dense, error) {
	var err error
	for _, t := range c.transforms {
		if x, err = t.Forward(x); err != nil {
			return nil, err
		}
	}

	return x, nil
}

func (c *ChainTransform) inverse(y *tensor.Dense) (*tensor.Dense, error) {
	var err error
	for i := len(c.transforms) - 1; i >= 0; i-- {
		if y, err = c.transforms[i].Inverse(y); err != nil {
			return nil, err
		}
	}

	return y, nil
}

func (c *ChainTransform) forwardLDJ(x *tensor.Dense) (*tensor.Dense, error) {
	total := tensor.Scalar(0)
	eventRank := c.domain.EventRank()
	for _, t := range c.transforms {
		ldj, err := t.ForwardLogDetJacobian(x)
		if err != nil {
			return nil, err
		}
		// Fold axes that this step treats as batch but the chain treats as event.
		if ldj, err = tensor.SumRightmost(ldj, eventRank-t.Domain().EventRank()); err != nil {
			return nil, err
		}
		if total, err = tensor.Add(total, ldj); err != nil {
			return nil, err
		}
		if x, err = t.Forward(x); err != nil {
			return nil, err
		}
		eventRank += t.Codomain().EventRank() - t.Domain().EventRank()
	}

	return total, nil
}

func (c *ChainTransform) forwardShape(shape []int) ([]int, error) {
	var err error
	for _, t := range c.transforms {
		if shape, err = t.ForwardShape(shape); err != nil {
			return nil, err
		}
	}

	return shape, nil
}

func (c *ChainTransform) inverseShape(shape []int) ([]int, error) {
	var err error
	for i := len(c.transforms) - 1; i >= 0; i-- {
		if shape, err = c.transforms[i].InverseShape(shape); err != nil {
			return nil, err
		}
	}

	return shape, nil
}
