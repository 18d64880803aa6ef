// SPDX-License-Identifier: MIT

package distribution

import "github.com/katalvlaran/bijector/tensor"

// Beta(α, β) on [0, 1], stored as a Dirichlet over stack([α, β], -1).
type Beta struct {
	alpha, beta *tensor.Dense
	dirichlet   *Dirichlet
}

var _ Distribution = (*Beta)(nil)

// NewBeta broadcasts alpha and beta to a common shape.
// Errors: ErrNilParameter, ErrInvalidParameter (non-positive or non-broadcastable).
func NewBeta(alpha, beta *tensor.Dense) (*Beta, error) {
	a, b, err := broadcastPair("NewBeta", alpha, beta)
	if err != nil {
		return nil, err
	}
	stacked, err := tensor.Stack([]*tensor.Dense{a, b}, -1)
	if err != nil {
		return nil, err
	}
	dir, err := NewDirichlet(stacked)
	if err != nil {
		return nil, err
	}

	return &Beta{alpha: a, beta: b, dirichlet: dir}, nil
}

// Kind implements Distribution.
func (d *Beta) Kind() Kind { return KindBeta }

// Alpha returns α.
func (d *Beta) Alpha() *tensor.Dense { return d.alpha }

// Beta returns β.
func (d *Beta) Beta() *tensor.Dense { return d.beta }

// Concentration returns stack([α, β], -1).
func (d *Beta) Concentration() *tensor.Dense { return d.dirichlet.Concentration() }

// BatchShape implements Distribution.
func (d *Beta) BatchShape() []int { return d.alpha.Shape() }

// EventShape implements Distribution; Beta is scalar-valued.
func (d *Beta) EventShape() []int { return []int{} }

// Mean returns α / (α+β).
func (d *Beta) Mean() (*tensor.Dense, error) {
	sum, err := tensor.Add(d.alpha, d.beta)
	if err != nil {
		return nil, err
	}

	return tensor.Div(d.alpha, sum)
}

// Variance returns αβ / ((α+β)²(α+β+1)).
func (d *Beta) Variance() (*tensor.Dense, error) {
	sum, err := tensor.Add(d.alpha, d.beta)
	if err != nil {
		return nil, err
	}
	num, err := tensor.Mul(d.alpha, d.beta)
	if err != nil {
		return nil, err
	}
	den, err := tensor.Mul(sum.Square(), sum.AddScalar(1))
	if err != nil {
		return nil, err
	}

	return tensor.Div(num, den)
}

// LogProb evaluates Dirichlet.LogProb(stack([v, 1-v], -1)).
func (d *Beta) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	if value == nil {
		return nil, distErrorf("Beta.LogProb", tensor.ErrNilTensor, "value")
	}
	pair, err := tensor.Stack([]*tensor.Dense{value, value.RSubScalar(1)}, -1)
	if err != nil {
		return nil, err
	}

	return d.dirichlet.LogProb(pair)
}

// Prob returns exp(LogProb(value)).
func (d *Beta) Prob(value *tensor.Dense) (*tensor.Dense, error) {
	lp, err := d.LogProb(value)
	if err != nil {
		return nil, err
	}

	return lp.Exp(), nil
}

// Entropy delegates to the underlying Dirichlet.
func (d *Beta) Entropy() (*tensor.Dense, error) { return d.dirichlet.Entropy() }

// Dirichlet exposes the two-component Dirichlet backing this Beta.
func (d *Beta) Dirichlet() *Dirichlet { return d.dirichlet }
