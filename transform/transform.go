// SPDX-License-Identifier: MIT
// Package: transform
//
// Purpose:
//   - The Transform interface and the shared base that enforces its contract.
//
// Implementation:
//   - Each variant fills a rules value (forward, inverse and two optional
//     Jacobian strategy slots plus optional shape rules). The base applies
//     validation and the fallback resolution once, so variants only supply math.
//
// Fallback resolution (log-det-Jacobian):
//   - Stage 1 (Validate): non-nil input, rank ≥ event rank, injective type (forward only).
//   - Stage 2 (Dispatch): own rule if present, otherwise negate the opposite
//     rule evaluated at the mapped point, otherwise ErrNotImplemented.

package transform

import (
	"github.com/katalvlaran/bijector/constraint"
	"github.com/katalvlaran/bijector/tensor"
)

// Operation tags for error wrapping.
const (
	opForward      = "Forward"
	opInverse      = "Inverse"
	opForwardLDJ   = "ForwardLogDetJacobian"
	opInverseLDJ   = "InverseLogDetJacobian"
	opForwardShape = "ForwardShape"
	opInverseShape = "InverseShape"
)

// Transform is a differentiable map between tensor spaces.
type Transform interface {
	// Type reports the mapping class; only injective types have log-det-Jacobians.
	Type() Type
	// Domain describes accepted inputs and their event rank.
	Domain() *constraint.Constraint
	// Codomain describes produced outputs and their event rank.
	Codomain() *constraint.Constraint

	Forward(x *tensor.Dense) (*tensor.Dense, error)
	Inverse(y *tensor.Dense) (*tensor.Dense, error)
	ForwardLogDetJacobian(x *tensor.Dense) (*tensor.Dense, error)
	InverseLogDetJacobian(y *tensor.Dense) (*tensor.Dense, error)
	ForwardShape(shape []int) ([]int, error)
	InverseShape(shape []int) ([]int, error)

	String() string
}

type (
	mapFunc   func(*tensor.Dense) (*tensor.Dense, error)
	shapeFunc func([]int) ([]int, error)
)

// rules are the variant-specific strategies. forward and inverse are
// mandatory; any other slot may be nil.
type rules struct {
	forward      mapFunc
	inverse      mapFunc
	forwardLDJ   mapFunc
	inverseLDJ   mapFunc
	forwardShape shapeFunc
	inverseShape shapeFunc
}

// base implements Transform on top of rules.
type base struct {
	name     string
	typ      Type
	domain   *constraint.Constraint
	codomain *constraint.Constraint
	rules    rules
}

func (b *base) Type() Type                       { return b.typ }
func (b *base) Domain() *constraint.Constraint   { return b.domain }
func (b *base) Codomain() *constraint.Constraint { return b.codomain }
func (b *base) String() string                   { return b.name }

// Forward computes y = f(x).
// Errors: ErrType (nil x), ErrShape (rank below Domain().EventRank()).
func (b *base) Forward(x *tensor.Dense) (*tensor.Dense, error) {
	if err := b.validate(opForward, x, b.domain); err != nil {
		return nil, err
	}
	y, err := b.rules.forward(x)

	return y, wrapTensorErr(b.tag(opForward), err)
}

// Inverse computes x = f⁻¹(y).
// Errors: ErrType (nil y), ErrShape (rank below Codomain().EventRank()).
func (b *base) Inverse(y *tensor.Dense) (*tensor.Dense, error) {
	if err := b.validate(opInverse, y, b.codomain); err != nil {
		return nil, err
	}
	x, err := b.rules.inverse(y)

	return x, wrapTensorErr(b.tag(opInverse), err)
}

// ForwardLogDetJacobian computes log|det J_f(x)| over the batch shape.
// Errors: ErrType, ErrShape, ErrUnsupported (non-injective), ErrNotImplemented.
func (b *base) ForwardLogDetJacobian(x *tensor.Dense) (*tensor.Dense, error) {
	if err := b.validate(opForwardLDJ, x, b.domain); err != nil {
		return nil, err
	}
	if !b.typ.IsInjective() {
		return nil, transformErrorf(b.tag(opForwardLDJ), ErrUnsupported,
			"%s is a %s; log-det-Jacobian requires an injective transform", b.name, b.typ)
	}

	var (
		out *tensor.Dense
		err error
	)
	switch {
	case b.rules.forwardLDJ != nil:
		out, err = b.rules.forwardLDJ(x)
	case b.rules.inverseLDJ != nil:
		out, err = b.negatedAt(b.rules.forward, b.rules.inverseLDJ, x)
	default:
		return nil, transformErrorf(b.tag(opForwardLDJ), ErrNotImplemented,
			"%s defines neither a forward nor an inverse Jacobian rule", b.name)
	}

	return out, wrapTensorErr(b.tag(opForwardLDJ), err)
}

// InverseLogDetJacobian computes log|det J_{f⁻¹}(y)| over the batch shape.
// Errors: ErrType, ErrShape, ErrNotImplemented.
func (b *base) InverseLogDetJacobian(y *tensor.Dense) (*tensor.Dense, error) {
	if err := b.validate(opInverseLDJ, y, b.codomain); err != nil {
		return nil, err
	}

	var (
		out *tensor.Dense
		err error
	)
	switch {
	case b.rules.inverseLDJ != nil:
		out, err = b.rules.inverseLDJ(y)
	case b.rules.forwardLDJ != nil:
		out, err = b.negatedAt(b.rules.inverse, b.rules.forwardLDJ, y)
	default:
		return nil, transformErrorf(b.tag(opInverseLDJ), ErrNotImplemented,
			"%s defines neither a forward nor an inverse Jacobian rule", b.name)
	}

	return out, wrapTensorErr(b.tag(opInverseLDJ), err)
}

// ForwardShape infers the output shape for an input of the given shape.
// Errors: ErrShape (negative dims or variant-specific mismatch).
func (b *base) ForwardShape(shape []int) ([]int, error) {
	return b.inferShape(opForwardShape, shape, b.rules.forwardShape)
}

// InverseShape infers the input shape for an output of the given shape.
// Errors: ErrShape.
func (b *base) InverseShape(shape []int) ([]int, error) {
	return b.inferShape(opInverseShape, shape, b.rules.inverseShape)
}

func (b *base) inferShape(op string, shape []int, rule shapeFunc) ([]int, error) {
	if err := tensor.ValidateShape(shape); err != nil {
		return nil, wrapTensorErr(b.tag(op), err)
	}
	if rule == nil {
		return tensor.CloneShape(shape), nil
	}
	out, err := rule(tensor.CloneShape(shape))

	return out, wrapTensorErr(b.tag(op), err)
}

// negatedAt returns -ldj(mapping(v)).
func (b *base) negatedAt(mapping, ldj mapFunc, v *tensor.Dense) (*tensor.Dense, error) {
	mapped, err := mapping(v)
	if err != nil {
		return nil, err
	}
	out, err := ldj(mapped)
	if err != nil {
		return nil, err
	}

	return out.Neg(), nil
}

// validate enforces the shared input preconditions.
func (b *base) validate(op string, v *tensor.Dense, c *constraint.Constraint) error {
	if v == nil {
		return transformErrorf(b.tag(op), ErrType, "expected a tensor, got nil")
	}
	if v.Rank() < c.EventRank() {
		return transformErrorf(b.tag(op), ErrShape,
			"input rank must be at least %d, got %d (shape %v)", c.EventRank(), v.Rank(), v.Shape())
	}

	return nil
}

func (b *base) tag(op string) string { return b.name + "." + op }
