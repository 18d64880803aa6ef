// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/katalvlaran/bijector/tensor"
	"github.com/katalvlaran/bijector/transform"
)

// benchmarkLDJ measures ForwardLogDetJacobian on a (batch × n) input.
func benchmarkLDJ(b *testing.B, t transform.Transform, batch, n int) {
	x := tensor.Must(tensor.Full(0.1, batch, n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := t.ForwardLogDetJacobian(x); err != nil {
			b.Fatalf("ForwardLogDetJacobian failed: %v", err)
		}
	}
}

// BenchmarkStickBreaking_LDJ_256x16 exercises the pad/cumprod pipeline.
func BenchmarkStickBreaking_LDJ_256x16(b *testing.B) {
	benchmarkLDJ(b, transform.NewStickBreaking(), 256, 16)
}

// BenchmarkCorrelationCholesky_LDJ_256x28 uses 8×8 factors.
func BenchmarkCorrelationCholesky_LDJ_256x28(b *testing.B) {
	benchmarkLDJ(b, transform.NewCorrelationCholesky(), 256, 28)
}

// BenchmarkChain_LDJ_256x16 sums a scalar step over a vector event.
func BenchmarkChain_LDJ_256x16(b *testing.B) {
	c, err := transform.NewChain(transform.NewTanh(), transform.NewStickBreaking())
	if err != nil {
		b.Fatal(err)
	}
	benchmarkLDJ(b, c, 256, 16)
}
