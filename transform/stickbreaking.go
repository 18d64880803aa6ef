// SPDX-License-Identifier: MIT
// Package: transform
//
// Stick-breaking construction, real_vector(K) → simplex(K+1).
//
//	offsetᵢ = K - i                       (i = 0..K-1, i.e. K, K-1, …, 1)
//	zᵢ      = sigmoid(xᵢ - log offsetᵢ)
//	yᵢ      = zᵢ · Π_{j<i} (1 - zⱼ),      y_K = Π_j (1 - zⱼ)
//
// The offset centres x = 0 on the uniform simplex point.
//
//	inverse: xᵢ = log yᵢ - log(1 - Σ_{j≤i} yⱼ) + log offsetᵢ
//	fldj:    Σᵢ (-x'ᵢ + logsigmoid(x'ᵢ) + log yᵢ),   x' = x - log offset

package transform

import (
	"math"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// StickBreakingTransform maps an unconstrained K-vector onto the (K+1)-simplex.
type StickBreakingTransform struct{ base }

// NewStickBreaking returns the stick-breaking bijection over the last axis.
func NewStickBreaking() *StickBreakingTransform {
	t := &StickBreakingTransform{}
	t.base = base{
		name:     "StickBreaking",
		typ:      Bijection,
		domain:   constraint.RealVector(),
		codomain: constraint.Simplex(),
		rules: rules{
			forward:    stickForward,
			inverse:    stickInverse,
			forwardLDJ: stickForwardLDJ,
			forwardShape: func(shape []int) ([]int, error) {
				if len(shape) == 0 {
					return nil, transformErrorf("StickBreaking", ErrShape, "expected a non-empty shape")
				}
				shape[len(shape)-1]++
				return shape, nil
			},
			inverseShape: func(shape []int) ([]int, error) {
				if len(shape) == 0 || shape[len(shape)-1] == 0 {
					return nil, transformErrorf("StickBreaking", ErrShape,
						"expected a non-empty shape with a positive last dim, got %v", shape)
				}
				shape[len(shape)-1]--
				return shape, nil
			},
		},
	}

	return t
}

// logOffset returns log(K), log(K-1), …, log(1).
func logOffset(k int) (*tensor.Dense, error) {
	off, err := tensor.Arange(float64(k), 0, -1)
	if err != nil {
		return nil, err
	}

	return off.Log(), nil
}

func stickForward(x *tensor.Dense) (*tensor.Dense, error) {
	k, err := x.Dim(-1)
	if err != nil {
		return nil, err
	}
	lo, err := logOffset(k)
	if err != nil {
		return nil, err
	}
	shifted, err := tensor.Sub(x, lo)
	if err != nil {
		return nil, err
	}
	z := shifted.Sigmoid()
	rest, err := tensor.CumProd(z.RSubScalar(1), -1)
	if err != nil {
		return nil, err
	}
	zPad, err := tensor.Pad(z, -1, 0, 1, 1)
	if err != nil {
		return nil, err
	}
	restPad, err := tensor.Pad(rest, -1, 1, 0, 1)
	if err != nil {
		return nil, err
	}

	return tensor.Mul(zPad, restPad)
}

func stickInverse(y *tensor.Dense) (*tensor.Dense, error) {
	n, err := y.Dim(-1)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, transformErrorf("StickBreaking", ErrShape, "simplex axis must be non-empty")
	}
	crop, err := tensor.Narrow(y, -1, 0, n-1)
	if err != nil {
		return nil, err
	}
	cs, err := tensor.CumSum(crop, -1)
	if err != nil {
		return nil, err
	}
	// Remaining stick length, kept away from zero for log stability.
	sf := cs.RSubScalar(1).Clamp(math.SmallestNonzeroFloat64, math.Inf(1))
	lo, err := logOffset(n - 1)
	if err != nil {
		return nil, err
	}
	x, err := tensor.Sub(crop.Log(), sf.Log())
	if err != nil {
		return nil, err
	}

	return tensor.Add(x, lo)
}

func stickForwardLDJ(x *tensor.Dense) (*tensor.Dense, error) {
	y, err := stickForward(x)
	if err != nil {
		return nil, err
	}
	k, err := x.Dim(-1)
	if err != nil {
		return nil, err
	}
	lo, err := logOffset(k)
	if err != nil {
		return nil, err
	}
	xs, err := tensor.Sub(x, lo)
	if err != nil {
		return nil, err
	}
	yCrop, err := tensor.Narrow(y, -1, 0, k)
	if err != nil {
		return nil, err
	}
	terms, err := tensor.Add(xs.Neg(), xs.LogSigmoid())
	if err != nil {
		return nil, err
	}
	if terms, err = tensor.Add(terms, yCrop.Log()); err != nil {
		return nil, err
	}

	return tensor.Sum(terms, -1, false)
}
