// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// SoftmaxTransform maps a real vector onto the simplex via exp(x-max)/Σ.
// It is not injective (adding a constant to x leaves y unchanged), so both
// log-det-Jacobians are unavailable; Inverse returns the representative log(y).
type SoftmaxTransform struct{ base }

// NewSoftmax returns the softmax map over the last axis.
func NewSoftmax() *SoftmaxTransform {
	t := &SoftmaxTransform{}
	t.base = base{
		name:     "Softmax",
		typ:      Other,
		domain:   constraint.RealVector(),
		codomain: constraint.Simplex(),
		rules: rules{
			forward: softmax,
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) { return y.Log(), nil },
		},
	}

	return t
}

func softmax(x *tensor.Dense) (*tensor.Dense, error) {
	m, err := tensor.Max(x, -1, true)
	if err != nil {
		return nil, err
	}
	shifted, err := tensor.Sub(x, m)
	if err != nil {
		return nil, err
	}
	e := shifted.Exp()
	s, err := tensor.Sum(e, -1, true)
	if err != nil {
		return nil, err
	}

	return tensor.Div(e, s)
}
