// SPDX-License-Identifier: MIT
// Package: divergence
//
// Purpose:
//   - Pair-keyed handler table with most-specific-match resolution.
//
// Resolution (for a runtime pair (P, Q)):
//  1. Collect registered pairs (p, q) with P ⊑ p and Q ⊑ q, in registration order.
//  2. left  = minimum over candidates comparing (p, q) lexicographically.
//  3. right = minimum over candidates comparing (q, p) lexicographically.
//  4. left != right → warn; left wins.
//
// The lexicographic order compares position by position: a candidate precedes
// another when each compared kind is a sub-kind, stopping at the first
// position where the kinds differ. Ties keep the earlier registration.
//
// Concurrency:
//   - Register is one critical section: insert, clear cache, bump generation.
//   - Resolve reads the cache under the read lock; misses are coalesced per
//     (pair, generation) and cached only if no registration happened meanwhile.

package divergence

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
)

// Handler computes KL(p‖q) with shape equal to the broadcast batch shape.
type Handler func(p, q distribution.Distribution) (*tensor.Dense, error)

// Unimplemented is the placeholder handler for pairs without a closed form.
// It always fails with ErrNotImplemented.
func Unimplemented(p, q distribution.Distribution) (*tensor.Dense, error) {
	return nil, klErrorf(opKL, ErrNotImplemented, "no closed form for (%s, %s)", p.Kind(), q.Kind())
}

const (
	opKL       = "KLDivergence"
	opRegister = "Register"
)

// Pair is a registration key.
type Pair struct {
	P, Q distribution.Kind
}

// String implements fmt.Stringer.
func (k Pair) String() string { return fmt.Sprintf("(%s, %s)", k.P, k.Q) }

// resolution is one cached dispatch result.
type resolution struct {
	handler Handler
	match   Pair
	ok      bool
}

// Registry maps kind pairs to KL handlers.
type Registry struct {
	mu         sync.RWMutex
	handlers   map[Pair]Handler
	order      []Pair // first-registration order of handlers' keys
	cache      map[Pair]resolution
	generation uint64

	group   singleflight.Group
	logger  *log.Logger
	metrics *Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for ambiguity warnings and debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics attaches Prometheus metrics to the registry.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[Pair]Handler),
		cache:    make(map[Pair]resolution),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register installs h for (p, q), replacing any previous handler for the
// exact pair, and invalidates every cached resolution.
//
// Errors: ErrUnknownKind, ErrNilHandler.
func (r *Registry) Register(p, q distribution.Kind, h Handler) error {
	for _, k := range []distribution.Kind{p, q} {
		if !distribution.Known(k) {
			return klErrorf(opRegister, ErrUnknownKind, "%q", k)
		}
	}
	if h == nil {
		return klErrorf(opRegister, ErrNilHandler, "pair %s", Pair{p, q})
	}

	key := Pair{P: p, Q: q}
	r.mu.Lock()
	if _, ok := r.handlers[key]; !ok {
		r.order = append(r.order, key)
	}
	r.handlers[key] = h
	clear(r.cache)
	r.generation++
	r.mu.Unlock()

	r.metrics.IncrementRegistration()
	r.logger.Debug("registered KL handler", "pair", key)

	return nil
}

// Resolve returns the handler for the runtime pair (p, q), or Unimplemented
// when no registered pair covers it.
func (r *Registry) Resolve(p, q distribution.Kind) Handler {
	return r.resolve(Pair{P: p, Q: q}).handler
}

// Match reports the registered pair selected for (p, q).
func (r *Registry) Match(p, q distribution.Kind) (Pair, bool) {
	res := r.resolve(Pair{P: p, Q: q})

	return res.match, res.ok
}

// Pairs returns the registered pairs in first-registration order.
func (r *Registry) Pairs() []Pair {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Pair(nil), r.order...)
}

// KLDivergence resolves the handler for (p.Kind(), q.Kind()) and evaluates it.
//
// Errors: ErrNilDistribution, ErrNotImplemented, and whatever the handler returns.
func (r *Registry) KLDivergence(p, q distribution.Distribution) (*tensor.Dense, error) {
	if p == nil || q == nil {
		return nil, klErrorf(opKL, ErrNilDistribution, "p and q must be non-nil")
	}
	h := r.Resolve(p.Kind(), q.Kind())

	start := time.Now()
	out, err := h(p, q)
	r.metrics.ObserveEvaluateLatency(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Registry) resolve(key Pair) resolution {
	r.mu.RLock()
	res, ok := r.cache[key]
	gen := r.generation
	r.mu.RUnlock()
	if ok {
		r.metrics.IncrementResolution(outcomeHit)
		return res
	}

	v, _, _ := r.group.Do(fmt.Sprintf("%q|%q|%d", key.P, key.Q, gen), func() (any, error) {
		r.mu.RLock()
		if res, ok := r.cache[key]; ok {
			r.mu.RUnlock()
			return res, nil
		}
		at := r.generation
		res, right := r.dispatch(key)
		r.mu.RUnlock()

		r.metrics.IncrementResolution(outcomeMiss)
		switch {
		case !res.ok:
			r.metrics.IncrementResolution(outcomeNone)
		case right != res.match:
			r.metrics.IncrementResolution(outcomeAmbiguous)
			r.logger.Warn("ambiguous KL divergence",
				"p", key.P, "q", key.Q, "left", res.match, "right", right,
				"hint", fmt.Sprintf("register a handler for (%s, %s)", res.match.P, right.Q))
		}

		r.mu.Lock()
		if r.generation == at {
			r.cache[key] = res
		}
		r.mu.Unlock()

		return res, nil
	})

	return v.(resolution)
}

// dispatch computes the resolution for key and the q-side pick. Caller holds r.mu.
func (r *Registry) dispatch(key Pair) (resolution, Pair) {
	var left, right Pair
	found := false
	for _, c := range r.order {
		if !distribution.IsSubKind(key.P, c.P) || !distribution.IsSubKind(key.Q, c.Q) {
			continue
		}
		if !found {
			left, right, found = c, c, true
			continue
		}
		if precedes(c.P, c.Q, left.P, left.Q) {
			left = c
		}
		if precedes(c.Q, c.P, right.Q, right.P) {
			right = c
		}
	}
	if !found {
		return resolution{handler: Unimplemented}, Pair{}
	}

	return resolution{handler: r.handlers[left], match: left, ok: true}, right
}

// precedes reports (a1, a2) < (b1, b2) under the lexicographic sub-kind order.
func precedes(a1, a2, b1, b2 distribution.Kind) bool {
	if a1 == b1 && a2 == b2 {
		return false
	}
	if !distribution.IsSubKind(a1, b1) {
		return false
	}
	if a1 != b1 {
		return true
	}

	return distribution.IsSubKind(a2, b2)
}
