// SPDX-License-Identifier: MIT

package constraint

import (
	"errors"
	"fmt"
)

var (
	// ErrRank indicates an input whose rank is below the descriptor's event rank.
	ErrRank = errors.New("constraint: rank below event rank")

	// ErrInvalid indicates an invalid descriptor argument (empty stack, lo > hi, negative k).
	ErrInvalid = errors.New("constraint: invalid descriptor")
)

// constraintErrorf wraps err with the descriptor name and a formatted detail.
func constraintErrorf(name string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", name, err, fmt.Sprintf(format, args...))
}
