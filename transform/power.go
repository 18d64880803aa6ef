// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// PowerTransform is y = x^p on the positive reals.
type PowerTransform struct {
	base
	power *tensor.Dense
}

// NewPower builds x^power; power broadcasts against the input.
// Errors: ErrType (nil power), ErrInvalidArgument (zero exponent).
func NewPower(power *tensor.Dense) (*PowerTransform, error) {
	if power == nil {
		return nil, transformErrorf("NewPower", ErrType, "power must be a tensor")
	}
	for _, v := range power.Values() {
		if v == 0 {
			return nil, transformErrorf("NewPower", ErrInvalidArgument, "power must be non-zero")
		}
	}

	t := &PowerTransform{power: power}
	t.base = base{
		name:     fmt.Sprintf("Power(%v)", power),
		typ:      Bijection,
		domain:   constraint.Positive(),
		codomain: constraint.Positive(),
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) { return tensor.Pow(x, power) },
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) {
				return tensor.Pow(y, power.PowScalar(-1))
			},
			// log|p·x^(p-1)|
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				xp, err := tensor.Pow(x, power.AddScalar(-1))
				if err != nil {
					return nil, err
				}
				d, err := tensor.Mul(power, xp)
				if err != nil {
					return nil, err
				}
				return d.Abs().Log(), nil
			},
			forwardShape: t.broadcastShape,
			inverseShape: t.broadcastShape,
		},
	}

	return t, nil
}

// Power returns the exponent.
func (t *PowerTransform) Power() *tensor.Dense { return t.power }

func (t *PowerTransform) broadcastShape(shape []int) ([]int, error) {
	return tensor.BroadcastShapes(shape, t.power.Shape())
}
