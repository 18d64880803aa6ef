// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
)

// Call applies t to input according to its kind:
//   - *tensor.Dense               → t.Forward(input)
//   - Transform                   → NewChain(t, input)
//   - distribution.Distribution   → NewTransformedDistribution(input, t)
//
// Errors: ErrType for any other input, plus whatever the delegate returns.
func Call(t Transform, input any) (any, error) {
	if t == nil {
		return nil, transformErrorf("Call", ErrType, "transform is nil")
	}
	switch v := input.(type) {
	case *tensor.Dense:
		return t.Forward(v)
	case Transform:
		return NewChain(t, v)
	case distribution.Distribution:
		return NewTransformedDistribution(v, t)
	default:
		return nil, transformErrorf("Call", ErrType,
			"expected a tensor, a transform or a distribution, got %T", input)
	}
}
