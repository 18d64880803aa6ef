// SPDX-License-Identifier: MIT

package tensor

import "math"

// Default tolerances for AllClose (NumPy defaults).
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShape otherwise).
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances fail with ErrNaNInf.
//
// Time: O(n). Space: O(1).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, tensorErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, tensorErrorf(opAllClose, ErrNilTensor)
	}
	if !EqualShapes(a.shape, b.shape) {
		return false, shapeErrorf(opAllClose, ErrShape, "%v vs %v", a.shape, b.shape)
	}

	for i, av := range a.data {
		bv := b.data[i]
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			if av != bv {
				return false, nil
			}
			continue
		}
		// NaN fails the comparison below on its own.
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
