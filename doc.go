// SPDX-License-Identifier: MIT

// Package bijector is a library of composable invertible transforms used to
// reparameterize probability distributions, plus a dispatch registry for
// closed-form KL divergences between distribution pairs.
//
// 🚀 What is a bijector?
//
//	A transform with a forward map, its inverse and the log-absolute-determinant
//	of its Jacobian, computed without ever materializing the Jacobian matrix.
//	Transforms compose into chains, stacks and event-reinterpreting wrappers
//	while keeping Jacobian accumulation, constraint tracking and shape
//	inference consistent.
//
// ✨ Packages:
//
//	tensor/       — row-major N-dimensional float64 arrays with broadcasting
//	constraint/   — domain/codomain descriptors with event ranks and membership checks
//	transform/    — Exp, Sigmoid, Tanh, Power, Affine, Abs, Softmax, StickBreaking,
//	                CorrelationCholesky, Chain, Stack, Independent, Reshape,
//	                TransformedDistribution
//	distribution/ — Beta, Dirichlet, Normal, Uniform, Categorical and the kind hierarchy
//	divergence/   — KL(p‖q) registry with most-specific-match resolution
//
//	cmd/bijector  — command-line front end (forward, inverse, ldj, shape, kl)
//
// Quick example:
//
//	a, _ := transform.NewAffine(tensor.Scalar(1), tensor.Scalar(2))
//	c, _ := transform.NewChain(a, transform.NewExp())
//	y, _ := c.Forward(tensor.Vector(0, 1))       // exp(1 + 2x)
//	ldj, _ := c.ForwardLogDetJacobian(tensor.Vector(0, 1))
//
//	kl, _ := divergence.KLDivergence(p, q)      // dispatches on (p.Kind(), q.Kind())
//
// Sampling and automatic differentiation are out of scope.
package bijector
