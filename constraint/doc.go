// SPDX-License-Identifier: MIT

// Package constraint describes the value spaces that transforms accept and
// produce.
//
// 🚀 What is a Constraint?
//
//	A Constraint is an immutable descriptor pairing a value-space kind
//	(real line, positive reals, unit interval, simplex, …) with an event rank:
//	the number of trailing axes that form one atomic event.
//
// ✨ Kinds:
//
//   - Real, Positive, UnitInterval, Interval(lo, hi)   → event rank 0
//   - RealVector, Simplex                               → event rank 1
//   - CorrelationCholesky                               → event rank 2
//   - Independent(base, k)                              → base rank + k
//   - Stack(parts, axis)                                → max(part ranks), +1 when a
//     negative axis falls inside the event
//
// ⚙️ Membership:
//
//	Check(x) returns a 1/0 mask over the batch shape of x: the element
//	predicate reduced with logical AND over the event axes.
//
// Determinism: all descriptors are values; no global mutable state.
package constraint
