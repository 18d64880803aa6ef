// SPDX-License-Identifier: MIT
// Package: transform
//
// TransformedDistribution is the push-forward of a base distribution through
// a transform Y = f(X). Its density follows the change of variables
//
//	log p_Y(y) = log p_X(f⁻¹(y)) - log|det J_f(f⁻¹(y))|
//
// with both terms summed over the axes that the transformed event covers.

package transform

import (
	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
)

// TransformedDistribution reports distribution.KindTransformed.
type TransformedDistribution struct {
	baseDist   distribution.Distribution
	transform  Transform
	batchShape []int
	eventShape []int
}

var _ distribution.Distribution = (*TransformedDistribution)(nil)

// NewTransformedDistribution pushes d through ts (chained when more than one).
//
// Stage 1 (Validate): non-nil d, at least one transform, base rank ≥ domain event rank.
// Stage 2 (Infer): out shape = ForwardShape(batch+event); the trailing
// Codomain rank + max(len(event) - Domain rank, 0) axes form the event.
//
// Errors: ErrType, ErrInvalidArgument, ErrShape.
func NewTransformedDistribution(d distribution.Distribution, ts ...Transform) (*TransformedDistribution, error) {
	const tag = "NewTransformedDistribution"
	if d == nil {
		return nil, transformErrorf(tag, ErrType, "base distribution is nil")
	}
	var (
		t   Transform
		err error
	)
	if len(ts) == 1 && ts[0] != nil {
		t = ts[0]
	} else if t, err = NewChain(ts...); err != nil {
		return nil, err
	}

	baseEvent := d.EventShape()
	baseShape := append(d.BatchShape(), baseEvent...)
	domRank := t.Domain().EventRank()
	if len(baseShape) < domRank {
		return nil, transformErrorf(tag, ErrShape,
			"base shape %v has rank below the transform domain event rank %d", baseShape, domRank)
	}
	out, err := t.ForwardShape(baseShape)
	if err != nil {
		return nil, err
	}
	eventRank := t.Codomain().EventRank() + max(len(baseEvent)-domRank, 0)
	if eventRank > len(out) {
		return nil, transformErrorf(tag, ErrShape,
			"output shape %v cannot hold an event of rank %d", out, eventRank)
	}
	cut := len(out) - eventRank

	return &TransformedDistribution{
		baseDist:   d,
		transform:  t,
		batchShape: tensor.CloneShape(out[:cut]),
		eventShape: tensor.CloneShape(out[cut:]),
	}, nil
}

// Kind implements distribution.Distribution.
func (d *TransformedDistribution) Kind() distribution.Kind { return distribution.KindTransformed }

// Base returns the untransformed distribution.
func (d *TransformedDistribution) Base() distribution.Distribution { return d.baseDist }

// Transform returns the (possibly chained) transform.
func (d *TransformedDistribution) Transform() Transform { return d.transform }

// BatchShape implements distribution.Distribution.
func (d *TransformedDistribution) BatchShape() []int { return tensor.CloneShape(d.batchShape) }

// EventShape implements distribution.Distribution.
func (d *TransformedDistribution) EventShape() []int { return tensor.CloneShape(d.eventShape) }

// LogProb evaluates the push-forward log-density at value.
// Errors: whatever Inverse, ForwardLogDetJacobian or the base LogProb return.
func (d *TransformedDistribution) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	t := d.transform
	x, err := t.Inverse(value)
	if err != nil {
		return nil, err
	}
	eventRank := len(d.eventShape) + t.Domain().EventRank() - t.Codomain().EventRank()

	ldj, err := t.ForwardLogDetJacobian(x)
	if err != nil {
		return nil, err
	}
	if ldj, err = tensor.SumRightmost(ldj, eventRank-t.Domain().EventRank()); err != nil {
		return nil, wrapTensorErr("TransformedDistribution.LogProb", err)
	}
	lp, err := d.baseDist.LogProb(x)
	if err != nil {
		return nil, err
	}
	if lp, err = tensor.SumRightmost(lp, eventRank-len(d.baseDist.EventShape())); err != nil {
		return nil, wrapTensorErr("TransformedDistribution.LogProb", err)
	}
	out, err := tensor.Sub(lp, ldj)

	return out, wrapTensorErr("TransformedDistribution.LogProb", err)
}
