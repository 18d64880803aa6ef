// SPDX-License-Identifier: MIT

package distribution

import (
	"math"

	"github.com/katalvlaran/bijector/tensor"
)

// Normal(μ, σ) with scalar events.
type Normal struct {
	loc, scale *tensor.Dense
}

var _ Distribution = (*Normal)(nil)

// NewNormal broadcasts loc and scale.
// Errors: ErrNilParameter, ErrInvalidParameter (σ ≤ 0 or non-broadcastable).
func NewNormal(loc, scale *tensor.Dense) (*Normal, error) {
	l, s, err := broadcastPair("NewNormal", loc, scale)
	if err != nil {
		return nil, err
	}
	if err = requirePositive("NewNormal", "scale", s); err != nil {
		return nil, err
	}

	return &Normal{loc: l, scale: s}, nil
}

func (d *Normal) Kind() Kind              { return KindNormal }
func (d *Normal) Loc() *tensor.Dense      { return d.loc }
func (d *Normal) Scale() *tensor.Dense    { return d.scale }
func (d *Normal) BatchShape() []int       { return d.loc.Shape() }
func (d *Normal) EventShape() []int       { return []int{} }
func (d *Normal) Mean() *tensor.Dense     { return d.loc }
func (d *Normal) Variance() *tensor.Dense { return d.scale.Square() }

// LogProb returns -(v-μ)²/(2σ²) - log σ - ½log(2π).
func (d *Normal) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	if value == nil {
		return nil, distErrorf("Normal.LogProb", tensor.ErrNilTensor, "value")
	}
	diff, err := tensor.Sub(value, d.loc)
	if err != nil {
		return nil, err
	}
	z, err := tensor.Div(diff, d.scale)
	if err != nil {
		return nil, err
	}
	lp, err := tensor.Sub(z.Square().MulScalar(-0.5), d.scale.Log())
	if err != nil {
		return nil, err
	}

	return lp.AddScalar(-0.5 * math.Log(2*math.Pi)), nil
}

// Entropy returns ½ + ½log(2π) + log σ.
func (d *Normal) Entropy() *tensor.Dense {
	return d.scale.Log().AddScalar(0.5 + 0.5*math.Log(2*math.Pi))
}
