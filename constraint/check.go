// SPDX-License-Identifier: MIT
// Package: constraint
//
// Purpose:
//   - Membership predicate Check(x) for every descriptor kind.
//
// Contract:
//   - Output shape is x.Shape() with the EventRank() trailing axes removed.
//   - Each output element is 1 when the whole event satisfies the descriptor, else 0.

package constraint

import (
	"math"

	"github.com/katalvlaran/bijector/tensor"
)

// SimplexTolerance bounds |sum(x)-1| for Simplex membership.
const SimplexTolerance = 1e-6

// CholeskyTolerance bounds |‖row‖-1| for CorrelationCholesky membership.
const CholeskyTolerance = 1e-6

// Check evaluates membership of x.
// Errors: tensor.ErrNilTensor, ErrRank when x.Rank() < EventRank().
func (c *Constraint) Check(x *tensor.Dense) (*tensor.Dense, error) {
	if x == nil {
		return nil, constraintErrorf("Check", tensor.ErrNilTensor, "%s", c)
	}
	if x.Rank() < c.eventRank {
		return nil, constraintErrorf("Check", ErrRank, "%s needs rank >= %d, got %d", c, c.eventRank, x.Rank())
	}

	switch c.kind {
	case KindReal:
		return predicate(x, func(v float64) bool { return !math.IsNaN(v) }), nil
	case KindPositive:
		return predicate(x, func(v float64) bool { return v > 0 }), nil
	case KindUnitInterval, KindInterval:
		return predicate(x, func(v float64) bool { return v >= c.lo && v <= c.hi }), nil
	case KindRealVector:
		return allRightmost(predicate(x, func(v float64) bool { return !math.IsNaN(v) }), 1)
	case KindSimplex:
		return checkSimplex(x)
	case KindCorrelationCholesky:
		return checkCorrCholesky(x)
	case KindIndependent:
		m, err := c.base.Check(x)
		if err != nil {
			return nil, err
		}
		return allRightmost(m, c.extra)
	case KindStack:
		return c.checkStack(x)
	default:
		return nil, constraintErrorf("Check", ErrInvalid, "unknown kind %v", c.kind)
	}
}

// predicate maps x to a 1/0 mask.
func predicate(x *tensor.Dense, ok func(float64) bool) *tensor.Dense {
	return x.Map(func(v float64) float64 {
		if ok(v) {
			return 1
		}
		return 0
	})
}

// allRightmost reduces a 1/0 mask with logical AND over its k trailing axes.
func allRightmost(mask *tensor.Dense, k int) (*tensor.Dense, error) {
	var err error
	for i := 0; i < k; i++ {
		if mask, err = tensor.Min(mask, -1, false); err != nil {
			return nil, err
		}
	}

	return mask, nil
}

func checkSimplex(x *tensor.Dense) (*tensor.Dense, error) {
	nonNeg, err := allRightmost(predicate(x, func(v float64) bool { return v >= 0 }), 1)
	if err != nil {
		return nil, err
	}
	sum, err := tensor.Sum(x, -1, false)
	if err != nil {
		return nil, err
	}
	unit := predicate(sum, func(v float64) bool { return math.Abs(v-1) < SimplexTolerance })

	return tensor.Mul(nonNeg, unit)
}

// checkCorrCholesky walks each D×D event: strictly upper part zero,
// diagonal positive, every row of unit Euclidean norm.
func checkCorrCholesky(x *tensor.Dense) (*tensor.Dense, error) {
	shape := x.Shape()
	r := len(shape)
	rows, cols := shape[r-2], shape[r-1]
	batch := shape[:r-2]
	out := make([]float64, tensor.NumElements(batch))
	if rows != cols {
		return tensor.New(batch, out)
	}
	d := rows
	data := x.Values()
	for b := range out {
		ev := data[b*d*d : (b+1)*d*d]
		ok := true
		for i := 0; i < d && ok; i++ {
			norm := 0.0
			for j := 0; j < d; j++ {
				v := ev[i*d+j]
				if j > i && v != 0 {
					ok = false
					break
				}
				norm += v * v
			}
			if ok && (!(ev[i*d+i] > 0) || math.Abs(math.Sqrt(norm)-1) > CholeskyTolerance) {
				ok = false
			}
		}
		if ok {
			out[b] = 1
		}
	}

	return tensor.New(batch, out)
}

// checkStack checks every slice along the stack axis with its own part and
// reassembles the masks. When the axis belongs to the event it is AND-reduced.
func (c *Constraint) checkStack(x *tensor.Dense) (*tensor.Dense, error) {
	slices, err := tensor.Unstack(x, c.axis)
	if err != nil {
		return nil, constraintErrorf("Check", ErrRank, "%s: %v", c, err)
	}
	if len(slices) != len(c.parts) {
		return nil, constraintErrorf("Check", ErrRank, "%s expects %d slices along axis %d, got %d",
			c, len(c.parts), c.axis, len(slices))
	}

	partRank := c.eventRank
	if c.inEvent {
		partRank--
	}
	masks := make([]*tensor.Dense, len(slices))
	for i, s := range slices {
		m, err := c.parts[i].Check(s)
		if err != nil {
			return nil, err
		}
		// Align every part to the widest event so the masks share a shape.
		if masks[i], err = allRightmost(m, partRank-c.parts[i].eventRank); err != nil {
			return nil, err
		}
	}

	if c.inEvent {
		stacked, err := tensor.Stack(masks, -1)
		if err != nil {
			return nil, err
		}
		return allRightmost(stacked, 1)
	}
	axis := c.axis
	if axis < 0 {
		axis += partRank
	}

	return tensor.Stack(masks, axis)
}
