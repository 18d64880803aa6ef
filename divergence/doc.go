// SPDX-License-Identifier: MIT

// Package divergence dispatches KL(p‖q) to a handler registered for a pair
// of distribution kinds.
//
// 🚀 Dispatch:
//
//	Handlers are registered for (kindP, kindQ). Resolution for a runtime
//	pair collects every registered pair whose kinds are super-kinds of the
//	runtime kinds, then picks the most specific one under a lexicographic
//	sub-kind order twice: once comparing the p-side first and once comparing
//	the q-side first. When the two picks differ a warning is logged and the
//	p-side pick wins. Results are cached per exact runtime pair and the
//	cache is cleared on every registration.
//
// ✨ Closed forms in the default registry:
//
//   - Beta‖Beta, Dirichlet‖Dirichlet
//   - Normal‖Normal, Uniform‖Uniform, Categorical‖Categorical
//
// Concurrency:
//
//	A Registry is safe for concurrent Register, Resolve and KLDivergence.
//	Concurrent cache misses for the same pair are coalesced.
package divergence
