// SPDX-License-Identifier: MIT

package distribution

import (
	"math"

	"github.com/katalvlaran/bijector/tensor"
)

// Uniform on the half-open interval [low, high).
type Uniform struct {
	low, high *tensor.Dense
}

var _ Distribution = (*Uniform)(nil)

// NewUniform broadcasts low and high.
// Errors: ErrNilParameter, ErrInvalidParameter (low ≥ high or non-broadcastable).
func NewUniform(low, high *tensor.Dense) (*Uniform, error) {
	l, h, err := broadcastPair("NewUniform", low, high)
	if err != nil {
		return nil, err
	}
	width, err := tensor.Sub(h, l)
	if err != nil {
		return nil, err
	}
	if err = requirePositive("NewUniform", "high-low", width); err != nil {
		return nil, err
	}

	return &Uniform{low: l, high: h}, nil
}

// Kind implements Distribution.
func (d *Uniform) Kind() Kind { return KindUniform }

// Low returns the inclusive lower bound.
func (d *Uniform) Low() *tensor.Dense { return d.low }

// High returns the exclusive upper bound.
func (d *Uniform) High() *tensor.Dense { return d.high }

// BatchShape implements Distribution.
func (d *Uniform) BatchShape() []int { return d.low.Shape() }

// EventShape implements Distribution.
func (d *Uniform) EventShape() []int { return []int{} }

// Width returns high - low.
func (d *Uniform) Width() *tensor.Dense {
	w, _ := tensor.Sub(d.high, d.low) // shapes equal after construction
	return w
}

// Mean returns (low+high)/2.
func (d *Uniform) Mean() *tensor.Dense {
	s, _ := tensor.Add(d.low, d.high)
	return s.MulScalar(0.5)
}

// Variance returns (high-low)²/12.
func (d *Uniform) Variance() *tensor.Dense { return d.Width().Square().MulScalar(1.0 / 12) }

// Entropy returns log(high-low).
func (d *Uniform) Entropy() *tensor.Dense { return d.Width().Log() }

// LogProb returns -log(high-low) inside the support and -Inf outside.
func (d *Uniform) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	if value == nil {
		return nil, distErrorf("Uniform.LogProb", tensor.ErrNilTensor, "value")
	}
	shape, err := tensor.BroadcastShapes(value.Shape(), d.low.Shape())
	if err != nil {
		return nil, err
	}
	v, err := tensor.BroadcastTo(value, shape)
	if err != nil {
		return nil, err
	}
	lo, err := tensor.BroadcastTo(d.low, shape)
	if err != nil {
		return nil, err
	}
	hi, err := tensor.BroadcastTo(d.high, shape)
	if err != nil {
		return nil, err
	}

	vs, ls, hs := v.Values(), lo.Values(), hi.Values()
	out := make([]float64, len(vs))
	for i := range vs {
		if vs[i] >= ls[i] && vs[i] < hs[i] {
			out[i] = -math.Log(hs[i] - ls[i])
			continue
		}
		out[i] = math.Inf(-1)
	}

	return tensor.New(shape, out)
}
