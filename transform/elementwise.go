// SPDX-License-Identifier: MIT
// Package: transform
//
// Element-wise bijections with closed-form Jacobians:
//
//	Exp      y = eˣ                 fldj = x
//	Sigmoid  y = 1/(1+e⁻ˣ)          fldj = -softplus(-x) - softplus(x)
//	Tanh     y = tanh x             fldj = 2·(log 2 - x - softplus(-2x))

package transform

import (
	"math"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// ExpTransform maps the real line onto the positive reals.
type ExpTransform struct{ base }

// NewExp returns y = exp(x).
func NewExp() *ExpTransform {
	t := &ExpTransform{}
	t.base = base{
		name:     "Exp",
		typ:      Bijection,
		domain:   constraint.Real(),
		codomain: constraint.Positive(),
		rules: rules{
			forward:    func(x *tensor.Dense) (*tensor.Dense, error) { return x.Exp(), nil },
			inverse:    func(y *tensor.Dense) (*tensor.Dense, error) { return y.Log(), nil },
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) { return x, nil },
		},
	}

	return t
}

// SigmoidTransform maps the real line onto the unit interval.
type SigmoidTransform struct{ base }

// NewSigmoid returns y = sigmoid(x).
func NewSigmoid() *SigmoidTransform {
	t := &SigmoidTransform{}
	t.base = base{
		name:     "Sigmoid",
		typ:      Bijection,
		domain:   constraint.Real(),
		codomain: constraint.UnitInterval(),
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) { return x.Sigmoid(), nil },
			// logit(y) = log y - log1p(-y)
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) {
				return tensor.Sub(y.Log(), y.Neg().Log1p())
			},
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				return tensor.Sub(x.Neg().Softplus().Neg(), x.Softplus())
			},
		},
	}

	return t
}

// tanhCodomain is the closed interval [-1, 1]; construction cannot fail.
var tanhCodomain, _ = constraint.Interval(-1, 1)

// TanhTransform maps the real line onto (-1, 1).
type TanhTransform struct{ base }

// NewTanh returns y = tanh(x).
func NewTanh() *TanhTransform {
	t := &TanhTransform{}
	t.base = base{
		name:     "Tanh",
		typ:      Bijection,
		domain:   constraint.Real(),
		codomain: tanhCodomain,
		rules: rules{
			forward: func(x *tensor.Dense) (*tensor.Dense, error) { return x.Tanh(), nil },
			inverse: func(y *tensor.Dense) (*tensor.Dense, error) { return y.Atanh(), nil },
			forwardLDJ: func(x *tensor.Dense) (*tensor.Dense, error) {
				return tanhLDJ(x), nil
			},
		},
	}

	return t
}

// tanhLDJ is log(1 - tanh²x) in its overflow-safe form.
func tanhLDJ(x *tensor.Dense) *tensor.Dense {
	return x.Map(tanhLogDeriv)
}

func tanhLogDeriv(v float64) float64 {
	return 2 * (math.Ln2 - v - softplus(-2*v))
}

// softplus is the scalar form of tensor.Dense.Softplus.
func softplus(v float64) float64 {
	return math.Max(v, 0) + math.Log1p(math.Exp(-math.Abs(v)))
}
