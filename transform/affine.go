// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// AffineTransform is y = loc + scale·x with broadcasting parameters.
type AffineTransform struct {
	base
	loc, scale *tensor.Dense
}

// NewAffine builds the affine map.
//
// Stage 1 (Validate): both parameters non-nil, broadcast-compatible, scale
// has no zero entry.
//
// Errors: ErrType (nil parameter), ErrInvalidArgument.
func NewAffine(loc, scale *tensor.Dense) (*AffineTransform, error) {
	if loc == nil || scale == nil {
		return nil, transformErrorf("NewAffine", ErrType, "loc and scale must be tensors")
	}
	if _, err := tensor.BroadcastShapes(loc.Shape(), scale.Shape()); err != nil {
		return nil, transformErrorf("NewAffine", ErrInvalidArgument,
			"loc %v and scale %v do not broadcast", loc.Shape(), scale.Shape())
	}
	for _, v := range scale.Values() {
		if v == 0 {
			return nil, transformErrorf("NewAffine", ErrInvalidArgument, "scale must be non-zero")
		}
	}

	t := &AffineTransform{loc: loc, scale: scale}
	t.base = base{
		name:     fmt.Sprintf("Affine(loc=%v, scale=%v)", loc, scale),
		typ:      Bijection,
		domain:   constraint.Real(),
		codomain: constraint.Real(),
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) {
				sx, err := tensor.Mul(scale, x)
				if err != nil {
					return nil, err
				}
				return tensor.Add(loc, sx)
			},
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) {
				d, err := tensor.Sub(y, loc)
				if err != nil {
					return nil, err
				}
				return tensor.Div(d, scale)
			},
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				shape, err := tensor.BroadcastShapes(x.Shape(), loc.Shape(), scale.Shape())
				if err != nil {
					return nil, err
				}
				return tensor.BroadcastTo(scale.Abs().Log(), shape)
			},
			forwardShape: t.broadcastShape,
			inverseShape: t.broadcastShape,
		},
	}

	return t, nil
}

// Loc returns the shift parameter.
func (t *AffineTransform) Loc() *tensor.Dense { return t.loc }

// Scale returns the scale parameter.
func (t *AffineTransform) Scale() *tensor.Dense { return t.scale }

func (t *AffineTransform) broadcastShape(shape []int) ([]int, error) {
	return tensor.BroadcastShapes(shape, t.loc.Shape(), t.scale.Shape())
}
