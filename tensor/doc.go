// SPDX-License-Identifier: MIT

// Package tensor is the N-dimensional numeric array used by the transform,
// constraint, distribution and divergence packages.
//
// 🚀 What is a Dense?
//
//	A row-major buffer of float64 values plus a shape. Rank-0 tensors are
//	scalars (shape [] with one element); zero-length axes are legal and
//	produce empty buffers.
//
// ✨ Key features:
//   - element-wise math: Exp, Log, Log1p, Tanh, Atanh, Sigmoid, Softplus,
//     LogSigmoid, Lgamma, Digamma, …
//   - NumPy broadcasting for binary ops (Add, Sub, Mul, Div, Pow)
//   - axis reductions (Sum, Max, Min) with optional keep-dims, SumRightmost,
//     cumulative sums and products
//   - structure ops: Reshape, Stack, Unstack, Narrow, Pad
//   - AllClose for tolerance-based comparison in tests and checks
//
// Value semantics:
//
//	Every operation allocates its result; inputs are never mutated. A *Dense
//	is therefore safe to share between goroutines once constructed.
//
// Axis arguments accept negative indices counted from the right
// (-1 is the last axis).
//
// Errors:
//   - ErrNilTensor  — nil *Dense passed where a tensor was required.
//   - ErrShape      — invalid shape, data length mismatch, reshape mismatch.
//   - ErrBroadcast  — operand shapes cannot be broadcast together.
//   - ErrAxis       — axis outside [-rank, rank).
//   - ErrIndex      — element index outside bounds.
//   - ErrEmpty      — an operation needs at least one operand.
//   - ErrNaNInf     — non-finite tolerance passed to AllClose.
//
// Usage:
//
//	import "github.com/katalvlaran/bijector/tensor"
//
//	x := tensor.Vector(1, 2, 3)
//	y, err := tensor.Add(x.Exp(), tensor.Scalar(1))
package tensor
