// SPDX-License-Identifier: MIT
// Package: constraint
//
// Purpose:
//   - Constraint value type, constructors and event-rank bookkeeping.
//
// Invariants:
//   - EventRank() of Independent(base, k) == base.EventRank() + k.
//   - Descriptors are never mutated after construction; parts slices are copied.

package constraint

import (
	"fmt"
	"strings"
)

// Kind enumerates the value-space families.
type Kind int

const (
	KindReal Kind = iota
	KindPositive
	KindUnitInterval
	KindInterval
	KindRealVector
	KindSimplex
	KindCorrelationCholesky
	KindIndependent
	KindStack
)

var kindNames = [...]string{
	KindReal:                "real",
	KindPositive:            "positive",
	KindUnitInterval:        "unit_interval",
	KindInterval:            "interval",
	KindRealVector:          "real_vector",
	KindSimplex:             "simplex",
	KindCorrelationCholesky: "correlation_cholesky",
	KindIndependent:         "independent",
	KindStack:               "stack",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Constraint is an immutable value-space descriptor.
type Constraint struct {
	kind      Kind
	eventRank int
	lo, hi    float64       // KindInterval bounds (closed)
	base      *Constraint   // KindIndependent
	extra     int           // KindIndependent reinterpreted rank
	parts     []*Constraint // KindStack
	axis      int           // KindStack axis
	inEvent   bool          // KindStack axis is an event axis
}

// Shared leaf descriptors; they carry no parameters.
var (
	realLine            = &Constraint{kind: KindReal}
	positive            = &Constraint{kind: KindPositive}
	unitInterval        = &Constraint{kind: KindUnitInterval, lo: 0, hi: 1}
	realVector          = &Constraint{kind: KindRealVector, eventRank: 1}
	simplex             = &Constraint{kind: KindSimplex, eventRank: 1}
	correlationCholesky = &Constraint{kind: KindCorrelationCholesky, eventRank: 2}
)

// Real is the whole real line.
func Real() *Constraint { return realLine }

// Positive is the open half-line (0, +Inf).
func Positive() *Constraint { return positive }

// UnitInterval is [0, 1].
func UnitInterval() *Constraint { return unitInterval }

// RealVector is an unconstrained vector event.
func RealVector() *Constraint { return realVector }

// Simplex is a non-negative vector summing to one.
func Simplex() *Constraint { return simplex }

// CorrelationCholesky is a lower-triangular matrix with positive diagonal
// and unit-norm rows.
func CorrelationCholesky() *Constraint { return correlationCholesky }

// Interval returns the closed interval [lo, hi].
// Errors: ErrInvalid when lo > hi or a bound is NaN.
func Interval(lo, hi float64) (*Constraint, error) {
	if !(lo <= hi) {
		return nil, constraintErrorf("Interval", ErrInvalid, "lo=%g must not exceed hi=%g", lo, hi)
	}

	return &Constraint{kind: KindInterval, lo: lo, hi: hi}, nil
}

// Independent reinterprets k additional trailing batch axes of base as event axes.
// k == 0 returns base itself.
// Errors: ErrInvalid for a nil base or k < 0.
func Independent(base *Constraint, k int) (*Constraint, error) {
	if base == nil || k < 0 {
		return nil, constraintErrorf("Independent", ErrInvalid, "base=%v k=%d", base, k)
	}
	if k == 0 {
		return base, nil
	}

	return &Constraint{
		kind:      KindIndependent,
		eventRank: base.eventRank + k,
		base:      base,
		extra:     k,
	}, nil
}

// Stack describes a tensor whose slices along axis satisfy parts in order.
// The event rank is the maximum part rank m, plus one when the axis is
// negative and within the last m positions (it then lies inside the event).
// Errors: ErrInvalid for an empty or nil-containing parts list.
func Stack(parts []*Constraint, axis int) (*Constraint, error) {
	if len(parts) == 0 {
		return nil, constraintErrorf("Stack", ErrInvalid, "no parts")
	}
	rank := 0
	for i, p := range parts {
		if p == nil {
			return nil, constraintErrorf("Stack", ErrInvalid, "part %d is nil", i)
		}
		if p.eventRank > rank {
			rank = p.eventRank
		}
	}
	// A negative axis within the trailing rank positions sits between event axes.
	inEvent := axis < 0 && axis+rank >= 0
	if inEvent {
		rank++
	}

	return &Constraint{
		kind:      KindStack,
		eventRank: rank,
		parts:     append([]*Constraint(nil), parts...),
		axis:      axis,
		inEvent:   inEvent,
	}, nil
}

// Kind returns the descriptor family.
func (c *Constraint) Kind() Kind { return c.kind }

// EventRank returns the number of trailing axes forming one event.
func (c *Constraint) EventRank() int { return c.eventRank }

// Bounds returns the closed bounds for KindInterval and KindUnitInterval.
func (c *Constraint) Bounds() (lo, hi float64) { return c.lo, c.hi }

// Base returns the wrapped descriptor and extra rank for KindIndependent.
func (c *Constraint) Base() (*Constraint, int) { return c.base, c.extra }

// AxisInEvent reports whether a KindStack axis is one of the event axes.
func (c *Constraint) AxisInEvent() bool { return c.inEvent }

// Parts returns a copy of the stacked descriptors and the stack axis.
func (c *Constraint) Parts() ([]*Constraint, int) {
	return append([]*Constraint(nil), c.parts...), c.axis
}

// String renders the descriptor, e.g. "independent(real, 2)".
func (c *Constraint) String() string {
	if c == nil {
		return "<nil>"
	}
	switch c.kind {
	case KindInterval:
		return fmt.Sprintf("interval(%g, %g)", c.lo, c.hi)
	case KindIndependent:
		return fmt.Sprintf("independent(%s, %d)", c.base, c.extra)
	case KindStack:
		names := make([]string, len(c.parts))
		for i, p := range c.parts {
			names[i] = p.String()
		}
		return fmt.Sprintf("stack([%s], %d)", strings.Join(names, ", "), c.axis)
	default:
		return c.kind.String()
	}
}
