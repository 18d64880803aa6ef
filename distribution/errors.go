// SPDX-License-Identifier: MIT

package distribution

import (
	"errors"
	"fmt"
)

var (
	// ErrNilParameter indicates a nil parameter tensor.
	ErrNilParameter = errors.New("distribution: nil parameter")

	// ErrInvalidParameter indicates a parameter outside its support or of insufficient rank.
	ErrInvalidParameter = errors.New("distribution: invalid parameter")

	// ErrUnknownKind indicates a kind that is not present in the kind table.
	ErrUnknownKind = errors.New("distribution: unknown kind")

	// ErrDuplicateKind indicates an attempt to re-register a kind under another parent.
	ErrDuplicateKind = errors.New("distribution: kind already registered")

	// ErrKindMismatch indicates a WithKind override that is not a sub-kind of the value's kind.
	ErrKindMismatch = errors.New("distribution: kind is not a sub-kind")
)

// distErrorf wraps err with the constructor/method name and a detail.
func distErrorf(name string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", name, err, fmt.Sprintf(format, args...))
}
