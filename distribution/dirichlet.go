// SPDX-License-Identifier: MIT
// Package: distribution
//
// Dirichlet(α) over the (K-1)-simplex:
//
//	log p(v) = Σ (αᵢ-1)·log vᵢ + lgamma(α₀) - Σ lgamma(αᵢ),   α₀ = Σ αᵢ
//	H        = Σ lgamma(αᵢ) - lgamma(α₀) - (K-α₀)·ψ(α₀) - Σ (αᵢ-1)·ψ(αᵢ)
//
// Batch shape is concentration.Shape()[:-1], event shape is [K].

package distribution

import (
	"github.com/katalvlaran/bijector/tensor"
)

// Dirichlet is parameterised by a concentration tensor of rank ≥ 1.
type Dirichlet struct {
	concentration *tensor.Dense
}

var _ Distribution = (*Dirichlet)(nil)

// NewDirichlet validates and stores concentration.
// Errors: ErrNilParameter, ErrInvalidParameter (rank 0 or non-positive entries).
func NewDirichlet(concentration *tensor.Dense) (*Dirichlet, error) {
	if concentration == nil {
		return nil, distErrorf("NewDirichlet", ErrNilParameter, "concentration")
	}
	if concentration.Rank() < 1 {
		return nil, distErrorf("NewDirichlet", ErrInvalidParameter,
			"concentration must be at least one dimensional, got rank %d", concentration.Rank())
	}
	if err := requirePositive("NewDirichlet", "concentration", concentration); err != nil {
		return nil, err
	}

	return &Dirichlet{concentration: concentration}, nil
}

// Kind implements Distribution.
func (d *Dirichlet) Kind() Kind { return KindDirichlet }

// Concentration returns α.
func (d *Dirichlet) Concentration() *tensor.Dense { return d.concentration }

// BatchShape implements Distribution.
func (d *Dirichlet) BatchShape() []int {
	s := d.concentration.Shape()
	return s[:len(s)-1]
}

// EventShape implements Distribution.
func (d *Dirichlet) EventShape() []int {
	s := d.concentration.Shape()
	return s[len(s)-1:]
}

// Mean returns α / α₀.
func (d *Dirichlet) Mean() (*tensor.Dense, error) {
	a0, err := tensor.Sum(d.concentration, -1, true)
	if err != nil {
		return nil, err
	}

	return tensor.Div(d.concentration, a0)
}

// Variance returns α(α₀-α) / (α₀²(α₀+1)).
func (d *Dirichlet) Variance() (*tensor.Dense, error) {
	a0, err := tensor.Sum(d.concentration, -1, true)
	if err != nil {
		return nil, err
	}
	diff, err := tensor.Sub(a0, d.concentration)
	if err != nil {
		return nil, err
	}
	num, err := tensor.Mul(d.concentration, diff)
	if err != nil {
		return nil, err
	}
	den, err := tensor.Mul(a0.Square(), a0.AddScalar(1))
	if err != nil {
		return nil, err
	}

	return tensor.Div(num, den)
}

// LogProb evaluates the log-density at value (shape batch+[K], broadcastable).
// Errors: tensor.ErrNilTensor, tensor.ErrBroadcast.
func (d *Dirichlet) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	if value == nil {
		return nil, distErrorf("Dirichlet.LogProb", tensor.ErrNilTensor, "value")
	}
	weighted, err := tensor.Mul(value.Log(), d.concentration.AddScalar(-1))
	if err != nil {
		return nil, err
	}
	kernel, err := tensor.Sum(weighted, -1, false)
	if err != nil {
		return nil, err
	}
	norm, err := d.logNormalizer()
	if err != nil {
		return nil, err
	}

	return tensor.Sub(kernel, norm)
}

// Prob returns exp(LogProb(value)).
func (d *Dirichlet) Prob(value *tensor.Dense) (*tensor.Dense, error) {
	lp, err := d.LogProb(value)
	if err != nil {
		return nil, err
	}

	return lp.Exp(), nil
}

// Entropy returns the differential entropy per batch element.
func (d *Dirichlet) Entropy() (*tensor.Dense, error) {
	a0, err := tensor.Sum(d.concentration, -1, false)
	if err != nil {
		return nil, err
	}
	k := float64(d.concentration.Shape()[d.concentration.Rank()-1])

	logB, err := d.logNormalizer()
	if err != nil {
		return nil, err
	}
	// (K - α₀)·ψ(α₀)
	mid, err := tensor.Mul(a0.RSubScalar(k), a0.Digamma())
	if err != nil {
		return nil, err
	}
	tail, err := tensor.Mul(d.concentration.AddScalar(-1), d.concentration.Digamma())
	if err != nil {
		return nil, err
	}
	tailSum, err := tensor.Sum(tail, -1, false)
	if err != nil {
		return nil, err
	}
	h, err := tensor.Sub(logB, mid)
	if err != nil {
		return nil, err
	}

	return tensor.Sub(h, tailSum)
}

// logNormalizer returns log B(α) = Σ lgamma(αᵢ) - lgamma(α₀).
func (d *Dirichlet) logNormalizer() (*tensor.Dense, error) {
	a0, err := tensor.Sum(d.concentration, -1, false)
	if err != nil {
		return nil, err
	}
	lg, err := tensor.Sum(d.concentration.Lgamma(), -1, false)
	if err != nil {
		return nil, err
	}

	return tensor.Sub(lg, a0.Lgamma())
}
