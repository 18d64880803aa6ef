// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bijector/tensor"
	"github.com/katalvlaran/bijector/transform"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

// requireClose asserts equal shapes and element-wise closeness.
func requireClose(t *testing.T, want, got *tensor.Dense, atol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Shape(), got.Shape(), "shape mismatch")
	ok, err := tensor.AllClose(got, want, 1e-7, atol)
	require.NoError(t, err)
	require.True(t, ok, "want %v\n got %v", want, got)
}

func mustDense(shape []int, data ...float64) *tensor.Dense {
	return tensor.Must(tensor.New(shape, data))
}

func mustT[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// numericLogDet estimates log|det ∂f/∂x| at x by central differences.
func numericLogDet(f func([]float64) []float64, x []float64) float64 {
	const h = 1e-6
	n := len(x)
	jac := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		up := append([]float64(nil), x...)
		dn := append([]float64(nil), x...)
		up[j] += h
		dn[j] -= h
		fu, fd := f(up), f(dn)
		for i := 0; i < n; i++ {
			jac.Set(i, j, (fu[i]-fd[i])/(2*h))
		}
	}

	return math.Log(math.Abs(mat.Det(jac)))
}

// forwardValues runs t.Forward on a rank-1 input and returns the flat output.
func forwardValues(t transform.Transform, x []float64) []float64 {
	y := mustT(t.Forward(tensor.Vector(x...)))
	return y.Values()
}
