// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// AbsTransform is the surjection y = |x| from the real line onto [0, ∞).
//
// Abs has no single inverse. Inverse returns both pre-images stacked on a new
// leading axis: out[0] = -y, out[1] = y. At y = 0 both branches are 0. For
// y < 0 the result is still (-y, y) even though no real x maps there; the
// check is skipped on purpose and callers may rely on it.
//
// Only the inverse Jacobian is defined: it is identically zero in the same
// stacked layout. ForwardLogDetJacobian fails with ErrUnsupported.
type AbsTransform struct{ base }

// NewAbs returns the absolute-value surjection.
func NewAbs() *AbsTransform {
	t := &AbsTransform{}
	t.base = base{
		name:     "Abs",
		typ:      Surjection,
		domain:   constraint.Real(),
		codomain: constraint.Positive(),
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) { return x.Abs(), nil },
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) {
				return tensor.Stack([]*tensor.Dense{y.Neg(), y}, 0)
			},
			inverseLDJ: func(y *tensor.Dense) (*tensor.Dense, error) {
				zero := tensor.ZerosLike(y)
				return tensor.Stack([]*tensor.Dense{zero, zero}, 0)
			},
			inverseShape: func(shape []int) ([]int, error) {
				return append([]int{2}, shape...), nil
			},
		},
	}

	return t
}

// InversePair returns the negative and positive pre-images of y separately.
// Errors: ErrType for a nil y.
func (t *AbsTransform) InversePair(y *tensor.Dense) (neg, pos *tensor.Dense, err error) {
	if err = t.validate(opInverse, y, t.codomain); err != nil {
		return nil, nil, err
	}

	return y.Neg(), y, nil
}
