// SPDX-License-Identifier: MIT

// Package transform implements composable bijectors: invertible maps with a
// tractable log-absolute-determinant of their Jacobian.
//
// 🚀 Contract (every Transform):
//
//	Forward(x)                 y = f(x)                 rank(x) ≥ Domain().EventRank()
//	Inverse(y)                 x = f⁻¹(y)               rank(y) ≥ Codomain().EventRank()
//	ForwardLogDetJacobian(x)   log|det ∂f/∂x|           injective types only
//	InverseLogDetJacobian(y)   log|det ∂f⁻¹/∂y|
//	ForwardShape / InverseShape  pure shape inference
//
//	Only one Jacobian rule is required per variant: the other is derived as
//	ildj(y) = -fldj(f⁻¹(y)) or fldj(x) = -ildj(f(x)).
//
// ✨ Variants:
//
//   - Primitives: Exp, Abs, Affine, Power, Sigmoid, Tanh
//   - Simplex / correlation: Softmax, StickBreaking, CorrelationCholesky
//   - Combinators: Chain, Stack, Independent, Reshape
//
// ⚙️ Composition:
//
//	Chain tracks the running event rank so per-element Jacobians of early
//	steps are summed over axes that later steps fold into their events.
//	Call(t, v) forwards tensors, wraps distributions and chains transforms.
//
// ⚠️ Errors:
//
//	ErrType, ErrShape, ErrUnsupported, ErrNotImplemented, ErrInvalidArgument.
//	Tensor shape failures are joined with ErrShape so both sentinels match.
//
// Transforms are immutable after construction and safe for concurrent use.
package transform
