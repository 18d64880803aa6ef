// SPDX-License-Identifier: MIT

package distribution

import "github.com/katalvlaran/bijector/tensor"

// Distribution is the narrow surface shared by all parameter objects.
type Distribution interface {
	// Kind returns the dispatch discriminator.
	Kind() Kind
	// BatchShape returns the shape of independent parameterisations.
	BatchShape() []int
	// EventShape returns the shape of a single draw.
	EventShape() []int
	// LogProb evaluates the log-density at value (shape batch+event → batch).
	LogProb(value *tensor.Dense) (*tensor.Dense, error)
}

// kinded overrides the reported kind of an inner distribution.
type kinded struct {
	Distribution
	kind Kind
}

func (d kinded) Kind() Kind { return d.kind }

// WithKind returns d reporting k instead of its own kind. k must be a known
// sub-kind of d.Kind().
//
// Errors: ErrNilParameter, ErrUnknownKind, ErrKindMismatch.
func WithKind(d Distribution, k Kind) (Distribution, error) {
	if d == nil {
		return nil, distErrorf("WithKind", ErrNilParameter, "nil distribution")
	}
	if !Known(k) {
		return nil, distErrorf("WithKind", ErrUnknownKind, "%q", k)
	}
	if !IsSubKind(k, d.Kind()) {
		return nil, distErrorf("WithKind", ErrKindMismatch, "%q is not a sub-kind of %q", k, d.Kind())
	}

	return kinded{Distribution: Unwrap(d), kind: k}, nil
}

// Unwrap strips any WithKind override and returns the parameter object.
func Unwrap(d Distribution) Distribution {
	if k, ok := d.(kinded); ok {
		return k.Distribution
	}

	return d
}

// broadcastPair expands two parameters to their common shape.
func broadcastPair(name string, a, b *tensor.Dense) (*tensor.Dense, *tensor.Dense, error) {
	if a == nil || b == nil {
		return nil, nil, distErrorf(name, ErrNilParameter, "parameters must be non-nil")
	}
	shape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, nil, distErrorf(name, ErrInvalidParameter, "%v", err)
	}
	ea, err := tensor.BroadcastTo(a, shape)
	if err != nil {
		return nil, nil, err
	}
	eb, err := tensor.BroadcastTo(b, shape)
	if err != nil {
		return nil, nil, err
	}

	return ea, eb, nil
}

// requirePositive fails unless every element of t is > 0.
func requirePositive(name, param string, t *tensor.Dense) error {
	for _, v := range t.Values() {
		if !(v > 0) {
			return distErrorf(name, ErrInvalidParameter, "%s must be positive, got %g", param, v)
		}
	}

	return nil
}
