// SPDX-License-Identifier: MIT

package divergence

import (
	"sync"

	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// closedForms lists the handlers installed by RegisterClosedForms, in order.
var closedForms = []struct {
	pair    Pair
	handler Handler
}{
	{Pair{distribution.KindBeta, distribution.KindBeta}, klBetaBeta},
	{Pair{distribution.KindDirichlet, distribution.KindDirichlet}, klDirichletDirichlet},
	{Pair{distribution.KindNormal, distribution.KindNormal}, klNormalNormal},
	{Pair{distribution.KindUniform, distribution.KindUniform}, klUniformUniform},
	{Pair{distribution.KindCategorical, distribution.KindCategorical}, klCategoricalCategorical},
}

// RegisterClosedForms installs the built-in closed-form handlers into r.
func RegisterClosedForms(r *Registry) error {
	for _, cf := range closedForms {
		if err := r.Register(cf.pair.P, cf.pair.Q, cf.handler); err != nil {
			return err
		}
	}

	return nil
}

// Default returns the process-wide registry preloaded with the closed forms.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterClosedForms(defaultRegistry); err != nil {
			panic(err) // built-in kinds are always known
		}
	})

	return defaultRegistry
}

// Register installs h for (p, q) in the default registry.
func Register(p, q distribution.Kind, h Handler) error {
	return Default().Register(p, q, h)
}

// Resolve returns the default registry's handler for (p, q).
func Resolve(p, q distribution.Kind) Handler {
	return Default().Resolve(p, q)
}

// KLDivergence evaluates KL(p‖q) with the default registry.
func KLDivergence(p, q distribution.Distribution) (*tensor.Dense, error) {
	return Default().KLDivergence(p, q)
}
