// SPDX-License-Identifier: MIT
// Package: divergence
//
// Closed forms (batch shapes broadcast, event axes summed):
//
//	Dirichlet: lgamma(a₀) - lgamma(b₀) + Σ [lgamma(bᵢ) - lgamma(aᵢ)] + Σ (aᵢ-bᵢ)(ψ(aᵢ)-ψ(a₀))
//	Beta:      Dirichlet over [α, β]
//	Normal:    ½·(r + t - 1 - log r),  r = (σp/σq)², t = ((μp-μq)/σq)²
//	Uniform:   log((hq-lq)/(hp-lp)) when [lp, hp) ⊆ [lq, hq), else +Inf
//	Categorical: Σ pᵢ·(log pᵢ - log qᵢ), with 0·log 0 = 0

package divergence

import (
	"math"

	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
)

func klBetaBeta(p, q distribution.Distribution) (*tensor.Dense, error) {
	bp, okP := distribution.Unwrap(p).(*distribution.Beta)
	bq, okQ := distribution.Unwrap(q).(*distribution.Beta)
	if !okP || !okQ {
		return nil, unexpected("Beta", p, q)
	}

	return dirichletKL(bp.Concentration(), bq.Concentration())
}

func klDirichletDirichlet(p, q distribution.Distribution) (*tensor.Dense, error) {
	dp, okP := distribution.Unwrap(p).(*distribution.Dirichlet)
	dq, okQ := distribution.Unwrap(q).(*distribution.Dirichlet)
	if !okP || !okQ {
		return nil, unexpected("Dirichlet", p, q)
	}

	return dirichletKL(dp.Concentration(), dq.Concentration())
}

// dirichletKL evaluates the Dirichlet closed form over the last axis.
func dirichletKL(a, b *tensor.Dense) (*tensor.Dense, error) {
	ka, _ := a.Dim(-1)
	kb, _ := b.Dim(-1)
	if ka != kb {
		return nil, klErrorf(opKL, ErrIncompatible, "event sizes %d and %d differ", ka, kb)
	}
	shape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, klErrorf(opKL, ErrIncompatible, "%v", err)
	}
	if a, err = tensor.BroadcastTo(a, shape); err != nil {
		return nil, err
	}
	if b, err = tensor.BroadcastTo(b, shape); err != nil {
		return nil, err
	}

	a0, err := tensor.Sum(a, -1, true)
	if err != nil {
		return nil, err
	}
	b0, err := tensor.Sum(b, -1, false)
	if err != nil {
		return nil, err
	}
	a0flat, err := tensor.Sum(a, -1, false)
	if err != nil {
		return nil, err
	}
	norm, err := tensor.Sub(a0flat.Lgamma(), b0.Lgamma())
	if err != nil {
		return nil, err
	}

	lg, err := tensor.Sub(b.Lgamma(), a.Lgamma())
	if err != nil {
		return nil, err
	}
	lgSum, err := tensor.Sum(lg, -1, false)
	if err != nil {
		return nil, err
	}

	diff, err := tensor.Sub(a, b)
	if err != nil {
		return nil, err
	}
	psi, err := tensor.Sub(a.Digamma(), a0.Digamma())
	if err != nil {
		return nil, err
	}
	cross, err := tensor.Mul(diff, psi)
	if err != nil {
		return nil, err
	}
	crossSum, err := tensor.Sum(cross, -1, false)
	if err != nil {
		return nil, err
	}

	out, err := tensor.Add(norm, lgSum)
	if err != nil {
		return nil, err
	}

	return tensor.Add(out, crossSum)
}

func klNormalNormal(p, q distribution.Distribution) (*tensor.Dense, error) {
	np, okP := distribution.Unwrap(p).(*distribution.Normal)
	nq, okQ := distribution.Unwrap(q).(*distribution.Normal)
	if !okP || !okQ {
		return nil, unexpected("Normal", p, q)
	}

	ratio, err := tensor.Div(np.Scale(), nq.Scale())
	if err != nil {
		return nil, err
	}
	varRatio := ratio.Square()
	shift, err := tensor.Sub(np.Loc(), nq.Loc())
	if err != nil {
		return nil, err
	}
	scaled, err := tensor.Div(shift, nq.Scale())
	if err != nil {
		return nil, err
	}
	sum, err := tensor.Add(varRatio, scaled.Square())
	if err != nil {
		return nil, err
	}
	out, err := tensor.Sub(sum.AddScalar(-1), varRatio.Log())
	if err != nil {
		return nil, err
	}

	return out.MulScalar(0.5), nil
}

func klUniformUniform(p, q distribution.Distribution) (*tensor.Dense, error) {
	up, okP := distribution.Unwrap(p).(*distribution.Uniform)
	uq, okQ := distribution.Unwrap(q).(*distribution.Uniform)
	if !okP || !okQ {
		return nil, unexpected("Uniform", p, q)
	}

	shape, err := tensor.BroadcastShapes(up.BatchShape(), uq.BatchShape())
	if err != nil {
		return nil, klErrorf(opKL, ErrIncompatible, "%v", err)
	}
	bounds := make([][]float64, 4)
	for i, t := range []*tensor.Dense{up.Low(), up.High(), uq.Low(), uq.High()} {
		e, err := tensor.BroadcastTo(t, shape)
		if err != nil {
			return nil, err
		}
		bounds[i] = e.Values()
	}
	lp, hp, lq, hq := bounds[0], bounds[1], bounds[2], bounds[3]

	out := make([]float64, len(lp))
	for i := range out {
		if lq[i] > lp[i] || hp[i] > hq[i] {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = math.Log((hq[i] - lq[i]) / (hp[i] - lp[i]))
	}

	return tensor.New(shape, out)
}

func klCategoricalCategorical(p, q distribution.Distribution) (*tensor.Dense, error) {
	cp, okP := distribution.Unwrap(p).(*distribution.Categorical)
	cq, okQ := distribution.Unwrap(q).(*distribution.Categorical)
	if !okP || !okQ {
		return nil, unexpected("Categorical", p, q)
	}
	if cp.NumClasses() != cq.NumClasses() {
		return nil, klErrorf(opKL, ErrIncompatible, "class counts %d and %d differ", cp.NumClasses(), cq.NumClasses())
	}

	lp, err := cp.LogProbs()
	if err != nil {
		return nil, err
	}
	lq, err := cq.LogProbs()
	if err != nil {
		return nil, err
	}
	diff, err := tensor.Sub(lp, lq)
	if err != nil {
		return nil, klErrorf(opKL, ErrIncompatible, "%v", err)
	}
	probs, err := tensor.BroadcastTo(lp.Exp(), diff.Shape())
	if err != nil {
		return nil, err
	}

	pv, dv := probs.Values(), diff.Values()
	terms := make([]float64, len(pv))
	for i, pi := range pv {
		if pi == 0 {
			continue
		}
		terms[i] = pi * dv[i]
	}
	t, err := tensor.New(diff.Shape(), terms)
	if err != nil {
		return nil, err
	}

	return tensor.Sum(t, -1, false)
}

func unexpected(want string, p, q distribution.Distribution) error {
	return klErrorf(opKL, ErrUnexpectedType, "want (*%s, *%s), got (%T, %T)",
		want, want, distribution.Unwrap(p), distribution.Unwrap(q))
}
