// SPDX-License-Identifier: MIT

package chainfile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bijector/tensor"
	"github.com/katalvlaran/bijector/transform"
)

// Step types.
const (
	TypeExp                 = "exp"
	TypeSigmoid             = "sigmoid"
	TypeTanh                = "tanh"
	TypeAbs                 = "abs"
	TypeSoftmax             = "softmax"
	TypeStickBreaking       = "stick_breaking"
	TypeCorrelationCholesky = "corr_cholesky"
	TypeAffine              = "affine"
	TypePower               = "power"
	TypeReshape             = "reshape"
	TypeIndependent         = "independent"
	TypeStack               = "stack"
	TypeChain               = "chain"
)

// Build returns the single transform of a one-step file or the chain of all steps.
func (f *File) Build() (transform.Transform, error) {
	return buildSeq(f.Transforms, "transforms")
}

// Build constructs the transform described by s.
func (s Step) Build() (transform.Transform, error) {
	return s.build("step")
}

func (s Step) build(path string) (transform.Transform, error) {
	switch strings.ToLower(s.Type) {
	case TypeExp:
		return transform.NewExp(), nil
	case TypeSigmoid:
		return transform.NewSigmoid(), nil
	case TypeTanh:
		return transform.NewTanh(), nil
	case TypeAbs:
		return transform.NewAbs(), nil
	case TypeSoftmax:
		return transform.NewSoftmax(), nil
	case TypeStickBreaking:
		return transform.NewStickBreaking(), nil
	case TypeCorrelationCholesky:
		return transform.NewCorrelationCholesky(), nil
	case TypeAffine:
		loc, scale := tensor.Scalar(0), tensor.Scalar(1)
		if len(s.Loc) > 0 {
			loc = s.Loc.Tensor()
		}
		if len(s.Scale) > 0 {
			scale = s.Scale.Tensor()
		}
		t, err := transform.NewAffine(loc, scale)
		if err != nil {
			return nil, stepErr(path, err)
		}
		return t, nil
	case TypePower:
		if len(s.Power) == 0 {
			return nil, fmt.Errorf("%w: %s: power is required", ErrStep, path)
		}
		t, err := transform.NewPower(s.Power.Tensor())
		if err != nil {
			return nil, stepErr(path, err)
		}
		return t, nil
	case TypeReshape:
		t, err := transform.NewReshape(orEmpty(s.In), orEmpty(s.Out))
		if err != nil {
			return nil, stepErr(path, err)
		}
		return t, nil
	case TypeIndependent:
		if s.Base == nil {
			return nil, fmt.Errorf("%w: %s: base is required", ErrStep, path)
		}
		base, err := s.Base.build(path + ".base")
		if err != nil {
			return nil, err
		}
		t, err := transform.NewIndependent(base, s.Rank)
		if err != nil {
			return nil, stepErr(path, err)
		}
		return t, nil
	case TypeStack:
		parts := make([]transform.Transform, len(s.Parts))
		for i, p := range s.Parts {
			t, err := p.build(fmt.Sprintf("%s.parts[%d]", path, i))
			if err != nil {
				return nil, err
			}
			parts[i] = t
		}
		t, err := transform.NewStack(parts, s.Axis)
		if err != nil {
			return nil, stepErr(path, err)
		}
		return t, nil
	case TypeChain:
		return buildSeq(s.Steps, path+".steps")
	case "":
		return nil, fmt.Errorf("%w: %s: type is required", ErrStep, path)
	default:
		return nil, fmt.Errorf("%w: %s: unknown type %q", ErrStep, path, s.Type)
	}
}

func buildSeq(steps []Step, path string) (transform.Transform, error) {
	ts := make([]transform.Transform, len(steps))
	for i, s := range steps {
		t, err := s.build(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	if len(ts) == 1 {
		return ts[0], nil
	}

	c, err := transform.NewChain(ts...)
	if err != nil {
		return nil, stepErr(path, err)
	}

	return c, nil
}

// stepErr joins ErrStep and the constructor error under the step path.
func stepErr(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStep, path, err)
}

func orEmpty(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}
