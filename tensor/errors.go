// SPDX-License-Identifier: MIT

// Package tensor: sentinel error set.
// Algorithms MUST return these sentinels (optionally wrapped with context)
// and tests MUST check them via errors.Is. No exported function panics on a
// user-triggered condition.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTensor indicates that a nil *Dense was passed to an operation.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrShape is returned for negative dimensions, data/shape length
	// mismatches and reshapes that change the element count.
	ErrShape = errors.New("tensor: invalid shape")

	// ErrBroadcast indicates operand shapes that are not broadcast-compatible.
	ErrBroadcast = errors.New("tensor: shapes are not broadcastable")

	// ErrAxis indicates an axis outside [-rank, rank).
	ErrAxis = errors.New("tensor: axis out of range")

	// ErrIndex indicates an element index outside bounds.
	ErrIndex = errors.New("tensor: index out of range")

	// ErrEmpty indicates that an operation received no operands (e.g. Stack of nothing).
	ErrEmpty = errors.New("tensor: empty input")

	// ErrNaNInf signals a non-finite tolerance or parameter where a finite one is required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)

// IsShapeError reports whether err is one of the structural (shape-related)
// sentinels of this package. Callers in higher layers use it to translate
// tensor failures into their own shape error kind.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrShape) ||
		errors.Is(err, ErrBroadcast) ||
		errors.Is(err, ErrAxis) ||
		errors.Is(err, ErrIndex) ||
		errors.Is(err, ErrEmpty)
}

// tensorErrorf wraps err with the operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps err with the operation tag and a formatted detail.
func shapeErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", tag, err, fmt.Sprintf(format, args...))
}
