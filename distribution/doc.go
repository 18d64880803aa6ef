// SPDX-License-Identifier: MIT

// Package distribution provides the distribution parameter objects used as
// keys of the divergence registry and as bases of transformed distributions.
//
// 🚀 Kinds:
//
//	Every distribution reports a Kind: a stable string discriminator placed in
//	an explicit parent table rather than discovered through reflection.
//
//	  Distribution
//	  ├── ExponentialFamily
//	  │   ├── Beta
//	  │   └── Dirichlet
//	  ├── Normal
//	  ├── Uniform
//	  ├── Categorical
//	  └── Transformed
//
//	RegisterKind adds user sub-kinds at runtime; WithKind lets a value report
//	one of them while keeping its parameters.
//
// ✨ Parameter objects:
//
//   - Dirichlet(concentration)   Mean, Variance, LogProb, Prob, Entropy
//   - Beta(alpha, beta)          delegates its density to Dirichlet over [v, 1-v]
//   - Normal(loc, scale), Uniform(low, high), Categorical(logits)
//
// Sampling is intentionally absent.
package distribution
