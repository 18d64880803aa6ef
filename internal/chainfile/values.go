// SPDX-License-Identifier: MIT

package chainfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bijector/tensor"
)

// Values is a parameter written either as a single number or as a list.
type Values []float64

// Tensor returns a rank-0 tensor for a single number and a vector otherwise.
func (v Values) Tensor() *tensor.Dense {
	if len(v) == 1 {
		return tensor.Scalar(v[0])
	}

	return tensor.Vector(v...)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (v *Values) UnmarshalTOML(data any) error {
	switch x := data.(type) {
	case []any:
		out := make(Values, len(x))
		for i, e := range x {
			f, err := tomlNumber(e)
			if err != nil {
				return err
			}
			out[i] = f
		}
		*v = out
	default:
		f, err := tomlNumber(x)
		if err != nil {
			return err
		}
		*v = Values{f}
	}

	return nil
}

func tomlNumber(x any) (float64, error) {
	switch n := x.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", x)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Values) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		*v = Values{f}
	case yaml.SequenceNode:
		var fs []float64
		if err := n.Decode(&fs); err != nil {
			return err
		}
		*v = fs
	default:
		return fmt.Errorf("line %d: expected a number or a list of numbers", n.Line)
	}

	return nil
}
