// SPDX-License-Identifier: MIT
// Package tensor_test contains shared fixtures for the tensor tests.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/bijector/tensor"
	"github.com/stretchr/testify/require"
)

// mustNew builds a tensor or fails the test.
func mustNew(t *testing.T, shape []int, data []float64) *tensor.Dense {
	t.Helper()
	d, err := tensor.New(shape, data)
	require.NoError(t, err)

	return d
}

// requireClose asserts shape equality and element-wise closeness.
func requireClose(t *testing.T, want, got *tensor.Dense) {
	t.Helper()
	require.Equal(t, want.Shape(), got.Shape(), "shape mismatch")
	ok, err := tensor.AllClose(got, want, 1e-9, 1e-12)
	require.NoError(t, err)
	require.True(t, ok, "want %v, got %v", want, got)
}
