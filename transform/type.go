// SPDX-License-Identifier: MIT

package transform

import "fmt"

// Type classifies a transform by its mapping behaviour.
type Type int

const (
	// Bijection is one-to-one and onto.
	Bijection Type = iota
	// Injection is one-to-one but not onto.
	Injection
	// Surjection is onto but not one-to-one.
	Surjection
	// Other is neither.
	Other
)

// IsInjective reports whether log-det-Jacobians are defined for t.
func (t Type) IsInjective() bool { return t == Bijection || t == Injection }

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Bijection:
		return "bijection"
	case Injection:
		return "injection"
	case Surjection:
		return "surjection"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// combinedType is the type of a composition: bijective if every part is,
// injective if every part is, otherwise Other.
func combinedType(ts []Transform) Type {
	out := Bijection
	for _, t := range ts {
		switch t.Type() {
		case Bijection:
		case Injection:
			out = Injection
		default:
			return Other
		}
	}

	return out
}
