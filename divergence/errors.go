// SPDX-License-Identifier: MIT

package divergence

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind indicates a registration for a kind absent from the kind table.
	ErrUnknownKind = errors.New("divergence: unknown kind")

	// ErrNilHandler indicates a registration with a nil handler.
	ErrNilHandler = errors.New("divergence: nil handler")

	// ErrNilDistribution indicates a nil p or q.
	ErrNilDistribution = errors.New("divergence: nil distribution")

	// ErrNotImplemented indicates that no handler covers the pair, or that
	// the matched handler is the Unimplemented placeholder.
	ErrNotImplemented = errors.New("divergence: not implemented")

	// ErrIncompatible indicates parameter objects whose event sizes cannot be compared.
	ErrIncompatible = errors.New("divergence: incompatible parameters")

	// ErrUnexpectedType indicates a handler received a parameter object it cannot read.
	ErrUnexpectedType = errors.New("divergence: unexpected distribution type")
)

// klErrorf wraps err with the operation name and a detail.
func klErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
