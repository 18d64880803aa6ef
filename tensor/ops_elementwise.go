// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Element-wise unary kernels. All of them share a single flat loop (Map)
//     and cannot fail: the output always has the input's shape.
//
// Numeric policy:
//   - Sigmoid, Softplus and LogSigmoid use the overflow-safe split on sign(x).
//   - Domain violations (log of a negative, atanh outside (-1,1)) follow IEEE
//     semantics and yield NaN/±Inf rather than errors.

package tensor

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Map returns f applied to every element.
// Complexity: O(n) time and memory.
func (t *Dense) Map(f func(float64) float64) *Dense {
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		out[i] = f(v)
	}

	return wrap(CloneShape(t.shape), out)
}

// Exp returns e^x element-wise.
func (t *Dense) Exp() *Dense { return t.Map(math.Exp) }

// Log returns ln(x) element-wise.
func (t *Dense) Log() *Dense { return t.Map(math.Log) }

// Log1p returns ln(1+x) element-wise.
func (t *Dense) Log1p() *Dense { return t.Map(math.Log1p) }

// Abs returns |x| element-wise.
func (t *Dense) Abs() *Dense { return t.Map(math.Abs) }

// Neg returns -x element-wise.
func (t *Dense) Neg() *Dense { return t.Map(func(v float64) float64 { return -v }) }

// Sqrt returns √x element-wise.
func (t *Dense) Sqrt() *Dense { return t.Map(math.Sqrt) }

// Square returns x² element-wise.
func (t *Dense) Square() *Dense { return t.Map(func(v float64) float64 { return v * v }) }

// Tanh returns tanh(x) element-wise.
func (t *Dense) Tanh() *Dense { return t.Map(math.Tanh) }

// Atanh returns atanh(x) element-wise.
func (t *Dense) Atanh() *Dense { return t.Map(math.Atanh) }

// Sigmoid returns 1/(1+e^-x) element-wise.
func (t *Dense) Sigmoid() *Dense { return t.Map(sigmoid) }

// Softplus returns ln(1+e^x) element-wise.
func (t *Dense) Softplus() *Dense { return t.Map(softplus) }

// LogSigmoid returns ln(sigmoid(x)) = -softplus(-x) element-wise.
func (t *Dense) LogSigmoid() *Dense {
	return t.Map(func(v float64) float64 { return -softplus(-v) })
}

// Lgamma returns ln|Γ(x)| element-wise.
func (t *Dense) Lgamma() *Dense {
	return t.Map(func(v float64) float64 {
		lg, _ := math.Lgamma(v) // sign is irrelevant for positive parameters
		return lg
	})
}

// Digamma returns ψ(x) = d/dx ln Γ(x) element-wise.
func (t *Dense) Digamma() *Dense { return t.Map(mathext.Digamma) }

// AddScalar returns x + c element-wise.
func (t *Dense) AddScalar(c float64) *Dense {
	return t.Map(func(v float64) float64 { return v + c })
}

// MulScalar returns c·x element-wise.
func (t *Dense) MulScalar(c float64) *Dense {
	return t.Map(func(v float64) float64 { return v * c })
}

// PowScalar returns x^p element-wise.
func (t *Dense) PowScalar(p float64) *Dense {
	return t.Map(func(v float64) float64 { return math.Pow(v, p) })
}

// RSubScalar returns c - x element-wise.
func (t *Dense) RSubScalar(c float64) *Dense {
	return t.Map(func(v float64) float64 { return c - v })
}

// Clamp limits every element to [lo, hi].
func (t *Dense) Clamp(lo, hi float64) *Dense {
	return t.Map(func(v float64) float64 { return math.Min(math.Max(v, lo), hi) })
}

// sigmoid is the overflow-safe logistic function.
func sigmoid(v float64) float64 {
	if v >= 0 {
		return 1 / (1 + math.Exp(-v))
	}
	e := math.Exp(v)

	return e / (1 + e)
}

// softplus is the overflow-safe ln(1+e^x) = max(x,0) + ln(1+e^-|x|).
func softplus(v float64) float64 {
	return math.Max(v, 0) + math.Log1p(math.Exp(-math.Abs(v)))
}
