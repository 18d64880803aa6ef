// SPDX-License-Identifier: MIT

package distribution

import (
	"math"

	"github.com/katalvlaran/bijector/tensor"
)

// Categorical over K classes parameterised by unnormalised logits [..., K].
type Categorical struct {
	logits *tensor.Dense
}

var _ Distribution = (*Categorical)(nil)

// NewCategorical validates logits (rank ≥ 1, K ≥ 1).
// Errors: ErrNilParameter, ErrInvalidParameter.
func NewCategorical(logits *tensor.Dense) (*Categorical, error) {
	if logits == nil {
		return nil, distErrorf("NewCategorical", ErrNilParameter, "logits")
	}
	if logits.Rank() < 1 || logits.Shape()[logits.Rank()-1] == 0 {
		return nil, distErrorf("NewCategorical", ErrInvalidParameter,
			"logits need a non-empty trailing class axis, got shape %v", logits.Shape())
	}

	return &Categorical{logits: logits}, nil
}

// Kind implements Distribution.
func (d *Categorical) Kind() Kind { return KindCategorical }

// Logits returns the raw logits.
func (d *Categorical) Logits() *tensor.Dense { return d.logits }

// NumClasses returns K.
func (d *Categorical) NumClasses() int { return d.logits.Shape()[d.logits.Rank()-1] }

// BatchShape implements Distribution.
func (d *Categorical) BatchShape() []int {
	s := d.logits.Shape()
	return s[:len(s)-1]
}

// EventShape implements Distribution; a draw is a single class index.
func (d *Categorical) EventShape() []int { return []int{} }

// LogProbs returns the normalised log-probabilities (log-softmax over the class axis).
func (d *Categorical) LogProbs() (*tensor.Dense, error) {
	m, err := tensor.Max(d.logits, -1, true)
	if err != nil {
		return nil, err
	}
	shifted, err := tensor.Sub(d.logits, m)
	if err != nil {
		return nil, err
	}
	lse, err := tensor.Sum(shifted.Exp(), -1, true)
	if err != nil {
		return nil, err
	}

	return tensor.Sub(shifted, lse.Log())
}

// Probs returns softmax(logits).
func (d *Categorical) Probs() (*tensor.Dense, error) {
	lp, err := d.LogProbs()
	if err != nil {
		return nil, err
	}

	return lp.Exp(), nil
}

// LogProb gathers the log-probability of each class index in value.
// value must have the batch shape; non-integral or out-of-range indices give -Inf.
func (d *Categorical) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	if value == nil {
		return nil, distErrorf("Categorical.LogProb", tensor.ErrNilTensor, "value")
	}
	batch := d.BatchShape()
	if !tensor.EqualShapes(value.Shape(), batch) {
		return nil, distErrorf("Categorical.LogProb", tensor.ErrShape,
			"value shape %v, want batch shape %v", value.Shape(), batch)
	}
	lp, err := d.LogProbs()
	if err != nil {
		return nil, err
	}
	k := d.NumClasses()
	table := lp.Values()
	idx := value.Values()
	out := make([]float64, len(idx))
	for b, v := range idx {
		c := int(v)
		if float64(c) != v || c < 0 || c >= k {
			out[b] = math.Inf(-1)
			continue
		}
		out[b] = table[b*k+c]
	}

	return tensor.New(batch, out)
}

// Entropy returns -Σ p·log p per batch element.
func (d *Categorical) Entropy() (*tensor.Dense, error) {
	lp, err := d.LogProbs()
	if err != nil {
		return nil, err
	}
	plogp, err := tensor.Mul(lp.Exp(), lp)
	if err != nil {
		return nil, err
	}
	h, err := tensor.Sum(plogp, -1, false)
	if err != nil {
		return nil, err
	}

	return h.Neg(), nil
}
