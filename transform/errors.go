// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bijector/tensor"
)

var (
	// ErrType indicates a value of the wrong kind (nil tensor, unsupported Call input).
	ErrType = errors.New("transform: wrong value type")

	// ErrShape indicates a rank or shape precondition violation.
	ErrShape = errors.New("transform: shape mismatch")

	// ErrUnsupported indicates a log-det-Jacobian request on a non-injective transform.
	ErrUnsupported = errors.New("transform: unsupported operation")

	// ErrNotImplemented indicates a transform lacking both Jacobian rules.
	ErrNotImplemented = errors.New("transform: not implemented")

	// ErrInvalidArgument indicates invalid construction parameters.
	ErrInvalidArgument = errors.New("transform: invalid argument")
)

// transformErrorf wraps a sentinel with the operation tag and a detail.
func transformErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", tag, err, fmt.Sprintf(format, args...))
}

// wrapTensorErr attaches tag to an error raised by the tensor layer; shape
// related failures additionally match ErrShape.
func wrapTensorErr(tag string, err error) error {
	if err == nil {
		return nil
	}
	if tensor.IsShapeError(err) && !errors.Is(err, ErrShape) {
		return fmt.Errorf("%s: %w: %w", tag, ErrShape, err)
	}

	return fmt.Errorf("%s: %w", tag, err)
}
