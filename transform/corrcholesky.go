// SPDX-License-Identifier: MIT
// Package: transform
//
// CorrelationCholesky maps an unconstrained vector of length D(D-1)/2 onto
// the lower Cholesky factor L of a D×D correlation matrix (L·Lᵀ has a unit
// diagonal).
//
//	r     = tanh(x), clamped into (-1, 1), packed row-major into the strictly
//	        lower triangle
//	L[i,j] = r[i,j] · Π_{k<j} √(1 - r[i,k]²)     (j < i)
//	L[i,i] = Π_{k<i} √(1 - r[i,k]²)
//
// fldj = ½·Σ_{j≤i-2} log(1 - Σ_{k≤j} L[i,k]²)  +  Σ log(1 - tanh²x)
//
// Complexity: O(batch·D²).

package transform

import (
	"math"

	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// CorrelationCholeskyTransform is real_vector → correlation_cholesky.
type CorrelationCholeskyTransform struct{ base }

// NewCorrelationCholesky returns the tanh + stick-breaking Cholesky map.
func NewCorrelationCholesky() *CorrelationCholeskyTransform {
	t := &CorrelationCholeskyTransform{}
	t.base = base{
		name:     "CorrelationCholesky",
		typ:      Bijection,
		domain:   constraint.RealVector(),
		codomain: constraint.CorrelationCholesky(),
		rules: rules{
			forward:      corrForward,
			inverse:      corrInverse,
			forwardLDJ:   corrForwardLDJ,
			forwardShape: corrForwardShape,
			inverseShape: corrInverseShape,
		},
	}

	return t
}

// clampEps keeps tanh(x) strictly inside (-1, 1).
var clampEps = math.Nextafter(1, 2) - 1

// matrixDim solves n = D(D-1)/2 for D.
func matrixDim(n int) (int, error) {
	d := (1 + int(math.Round(math.Sqrt(float64(1+8*n))))) / 2
	if d*(d-1)/2 != n {
		return 0, transformErrorf("CorrelationCholesky", ErrShape,
			"vector length %d is not a triangular number D(D-1)/2", n)
	}

	return d, nil
}

func corrForwardShape(shape []int) ([]int, error) {
	if len(shape) == 0 {
		return nil, transformErrorf("CorrelationCholesky", ErrShape, "expected a non-empty shape")
	}
	d, err := matrixDim(shape[len(shape)-1])
	if err != nil {
		return nil, err
	}

	return append(shape[:len(shape)-1], d, d), nil
}

func corrInverseShape(shape []int) ([]int, error) {
	r := len(shape)
	if r < 2 || shape[r-1] != shape[r-2] {
		return nil, transformErrorf("CorrelationCholesky", ErrShape,
			"expected trailing square matrix dims, got %v", shape)
	}
	d := shape[r-1]

	return append(shape[:r-2], d*(d-1)/2), nil
}

func corrForward(x *tensor.Dense) (*tensor.Dense, error) {
	outShape, err := corrForwardShape(x.Shape())
	if err != nil {
		return nil, err
	}
	d := outShape[len(outShape)-1]
	n := d * (d - 1) / 2
	r := x.Tanh().Clamp(-1+clampEps, 1-clampEps).Values()

	out := make([]float64, tensor.NumElements(outShape))
	for b := 0; b*d*d < len(out); b++ {
		vec := r[b*n : (b+1)*n]
		mat := out[b*d*d : (b+1)*d*d]
		k := 0
		for i := 0; i < d; i++ {
			rem := 1.0
			for j := 0; j < i; j++ {
				mat[i*d+j] = vec[k] * rem
				rem *= math.Sqrt(1 - vec[k]*vec[k])
				k++
			}
			mat[i*d+i] = rem
		}
	}

	return tensor.New(outShape, out)
}

func corrInverse(y *tensor.Dense) (*tensor.Dense, error) {
	outShape, err := corrInverseShape(y.Shape())
	if err != nil {
		return nil, err
	}
	shape := y.Shape()
	d := shape[len(shape)-1]
	n := outShape[len(outShape)-1]
	data := y.Values()

	out := make([]float64, tensor.NumElements(outShape))
	for b := 0; b*d*d < len(data); b++ {
		mat := data[b*d*d : (b+1)*d*d]
		vec := out[b*n : (b+1)*n]
		k := 0
		for i := 0; i < d; i++ {
			cum := 0.0
			for j := 0; j < i; j++ {
				v := mat[i*d+j]
				vec[k] = math.Atanh(v / math.Sqrt(1-cum))
				cum += v * v
				k++
			}
		}
	}

	return tensor.New(outShape, out)
}

func corrForwardLDJ(x *tensor.Dense) (*tensor.Dense, error) {
	y, err := corrForward(x)
	if err != nil {
		return nil, err
	}
	shape := y.Shape()
	d := shape[len(shape)-1]
	n := d * (d - 1) / 2
	batch := shape[:len(shape)-2]
	ys := y.Values()
	xs := x.Values()

	out := make([]float64, tensor.NumElements(batch))
	for b := range out {
		mat := ys[b*d*d : (b+1)*d*d]
		acc := 0.0
		for i := 2; i < d; i++ {
			cum := 0.0
			for j := 0; j <= i-2; j++ {
				cum += mat[i*d+j] * mat[i*d+j]
				acc += 0.5 * math.Log(1-cum)
			}
		}
		for _, v := range xs[b*n : (b+1)*n] {
			acc += tanhLogDeriv(v)
		}
		out[b] = acc
	}

	return tensor.New(batch, out)
}
