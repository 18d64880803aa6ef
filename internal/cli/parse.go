// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
)

// parseFloats splits a comma-separated list; the empty string yields no values.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %v", ErrUsage, i, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseInts splits a comma-separated shape; the empty string is the scalar shape.
func parseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: dimension %d: %v", ErrUsage, i, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseTensor builds a tensor from --values and an optional --shape.
func parseTensor(values, shape string) (*tensor.Dense, error) {
	vs, err := parseFloats(values)
	if err != nil {
		return nil, err
	}
	if shape == "" {
		if len(vs) == 1 {
			return tensor.Scalar(vs[0]), nil
		}
		return tensor.Vector(vs...), nil
	}
	dims, err := parseInts(shape)
	if err != nil {
		return nil, err
	}
	t, err := tensor.New(dims, vs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return t, nil
}

// parseDistribution builds a distribution from kind:params.
func parseDistribution(spec string) (distribution.Distribution, error) {
	name, params, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%w: distribution %q, want kind:params", ErrUsage, spec)
	}
	vs, err := parseFloats(params)
	if err != nil {
		return nil, err
	}
	pair := func() (*tensor.Dense, *tensor.Dense, error) {
		if len(vs) != 2 {
			return nil, nil, fmt.Errorf("%w: %s takes 2 parameters, got %d", ErrUsage, name, len(vs))
		}
		return tensor.Scalar(vs[0]), tensor.Scalar(vs[1]), nil
	}

	switch strings.ToLower(name) {
	case "beta":
		a, b, err := pair()
		if err != nil {
			return nil, err
		}
		return distribution.NewBeta(a, b)
	case "normal":
		loc, scale, err := pair()
		if err != nil {
			return nil, err
		}
		return distribution.NewNormal(loc, scale)
	case "uniform":
		lo, hi, err := pair()
		if err != nil {
			return nil, err
		}
		return distribution.NewUniform(lo, hi)
	case "dirichlet":
		return distribution.NewDirichlet(tensor.Vector(vs...))
	case "categorical":
		return distribution.NewCategorical(tensor.Vector(vs...))
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q", ErrUsage, name)
	}
}
