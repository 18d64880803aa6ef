// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/bijector/tensor"
)

// benchmarkAdd broadcasts an n-vector against an (n×n) matrix.
func benchmarkAdd(b *testing.B, n int) {
	m := tensor.Must(tensor.Ones(n, n))
	v := tensor.Must(tensor.Ones(n))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := tensor.Add(m, v); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkAdd_Broadcast64 benchmarks the strided path on 64×64.
func BenchmarkAdd_Broadcast64(b *testing.B) { benchmarkAdd(b, 64) }

// BenchmarkAdd_Broadcast256 benchmarks the strided path on 256×256.
func BenchmarkAdd_Broadcast256(b *testing.B) { benchmarkAdd(b, 256) }

// BenchmarkSumRightmost benchmarks collapsing two trailing axes.
func BenchmarkSumRightmost(b *testing.B) {
	x := tensor.Must(tensor.Ones(32, 32, 32))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tensor.SumRightmost(x, 2); err != nil {
			b.Fatalf("SumRightmost failed: %v", err)
		}
	}
}
