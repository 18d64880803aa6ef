// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Canonical guards shared by this package and its callers (transform,
//     constraint, distribution) so rank and nil checks read the same everywhere.
//   - Return plain sentinels wrapped with the validator tag; callers wrap again
//     with their own operation tag.

package tensor

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the tensor reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(t *Dense) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateMinRank ensures t is non-nil and has at least minRank axes.
// The message names the expected minimum and the actual rank.
// Complexity: O(1).
func ValidateMinRank(t *Dense, minRank int) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if len(t.shape) < minRank {
		return fmt.Errorf("ValidateMinRank: %w: rank %d is less than required minimum %d", ErrShape, len(t.shape), minRank)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and of identical shape.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilTensor)
	}
	if !EqualShapes(a.shape, b.shape) {
		return fmt.Errorf("ValidateSameShape: %w: %v vs %v", ErrShape, a.shape, b.shape)
	}

	return nil
}
