// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bijector/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- element-wise -------------------------------------------------------------

func TestUnary_StableFunctions(t *testing.T) {
	x := tensor.Vector(-800, 0, 800)

	s := x.Sigmoid().Values()
	assert.InDelta(t, 0.0, s[0], 1e-300)
	assert.InDelta(t, 0.5, s[1], 1e-15)
	assert.InDelta(t, 1.0, s[2], 1e-15)

	sp := x.Softplus().Values()
	assert.InDelta(t, 0.0, sp[0], 1e-300)
	assert.InDelta(t, math.Log(2), sp[1], 1e-15)
	assert.InDelta(t, 800.0, sp[2], 1e-12)

	ls := x.LogSigmoid().Values()
	assert.InDelta(t, -800.0, ls[0], 1e-12)
	assert.False(t, math.IsInf(ls[0], 0))
}

func TestUnary_SpecialFunctions(t *testing.T) {
	x := tensor.Vector(1, 2, 5)
	assert.InDeltaSlice(t, []float64{0, 0, math.Log(24)}, x.Lgamma().Values(), 1e-12)

	const eulerGamma = 0.5772156649015329
	dg := x.Digamma().Values()
	assert.InDelta(t, -eulerGamma, dg[0], 1e-9)
	assert.InDelta(t, 1-eulerGamma, dg[1], 1e-9)
}

// --- broadcasting -------------------------------------------------------------

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name   string
		shapes [][]int
		want   []int
		err    error
	}{
		{"scalar with matrix", [][]int{{}, {2, 3}}, []int{2, 3}, nil},
		{"row with column", [][]int{{1, 3}, {2, 1}}, []int{2, 3}, nil},
		{"three way", [][]int{{4, 1, 3}, {2, 1}, {3}}, []int{4, 2, 3}, nil},
		{"mismatch", [][]int{{2}, {3}}, nil, tensor.ErrBroadcast},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tensor.BroadcastShapes(tc.shapes...)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBinary_Broadcast(t *testing.T) {
	row := mustNew(t, []int{1, 3}, []float64{1, 2, 3})
	col := mustNew(t, []int{2, 1}, []float64{10, 20})

	sum, err := tensor.Add(row, col)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{2, 3}, []float64{11, 12, 13, 21, 22, 23}), sum)

	diff, err := tensor.Sub(tensor.Scalar(1), row)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{1, 3}, []float64{0, -1, -2}), diff)

	_, err = tensor.Mul(tensor.Vector(1, 2), tensor.Vector(1, 2, 3))
	assert.ErrorIs(t, err, tensor.ErrBroadcast)
	assert.True(t, tensor.IsShapeError(err))

	_, err = tensor.Div(nil, row)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

func TestBroadcastTo(t *testing.T) {
	got, err := tensor.BroadcastTo(tensor.Scalar(2), []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 2}, got.Values())

	_, err = tensor.BroadcastTo(tensor.Vector(1, 2), []int{3})
	assert.ErrorIs(t, err, tensor.ErrBroadcast)
}

// --- reductions ---------------------------------------------------------------

func TestReductions(t *testing.T) {
	x := mustNew(t, []int{2, 3}, []float64{1, 5, 3, 4, 2, 6})

	s, err := tensor.Sum(x, -1, false)
	require.NoError(t, err)
	requireClose(t, tensor.Vector(9, 12), s)

	m, err := tensor.Max(x, 0, true)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{1, 3}, []float64{4, 5, 6}), m)

	mn, err := tensor.Min(x, 1, false)
	require.NoError(t, err)
	requireClose(t, tensor.Vector(1, 2), mn)

	_, err = tensor.Sum(x, 2, false)
	assert.ErrorIs(t, err, tensor.ErrAxis)
}

func TestSumRightmost(t *testing.T) {
	x := mustNew(t, []int{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	same, err := tensor.SumRightmost(x, 0)
	require.NoError(t, err)
	assert.Same(t, x, same)

	two, err := tensor.SumRightmost(x, 2)
	require.NoError(t, err)
	requireClose(t, tensor.Vector(10, 26), two)

	all, err := tensor.SumRightmost(x, 3)
	require.NoError(t, err)
	requireClose(t, tensor.Scalar(36), all)

	_, err = tensor.SumRightmost(x, 4)
	assert.ErrorIs(t, err, tensor.ErrAxis)
}

func TestScans(t *testing.T) {
	x := mustNew(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	cs, err := tensor.CumSum(x, -1)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{2, 3}, []float64{1, 3, 6, 4, 9, 15}), cs)

	cp, err := tensor.CumProd(x, 0)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{2, 3}, []float64{1, 2, 3, 4, 10, 18}), cp)
}

// --- structure ----------------------------------------------------------------

func TestReshape(t *testing.T) {
	x := mustNew(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	r, err := tensor.Reshape(x, 3, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, r.Shape())
	assert.Equal(t, x.Values(), r.Values())

	_, err = tensor.Reshape(x, 4, 2)
	assert.ErrorIs(t, err, tensor.ErrShape)
	_, err = tensor.Reshape(x, -1, -1)
	assert.ErrorIs(t, err, tensor.ErrShape)
}

func TestStackUnstack_RoundTrip(t *testing.T) {
	x := mustNew(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	for _, axis := range []int{0, 1, -1, -2} {
		parts, err := tensor.Unstack(x, axis)
		require.NoError(t, err)
		back, err := tensor.Stack(parts, axis)
		require.NoError(t, err)
		requireClose(t, x, back)
	}

	cols, err := tensor.Unstack(x, 1)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	requireClose(t, tensor.Vector(2, 5), cols[1])

	_, err = tensor.Stack(nil, 0)
	assert.ErrorIs(t, err, tensor.ErrEmpty)
	_, err = tensor.Stack([]*tensor.Dense{tensor.Vector(1), tensor.Vector(1, 2)}, 0)
	assert.ErrorIs(t, err, tensor.ErrShape)
}

func TestNarrowPad(t *testing.T) {
	x := mustNew(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	n, err := tensor.Narrow(x, -1, 0, 2)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{2, 2}, []float64{1, 2, 4, 5}), n)

	_, err = tensor.Narrow(x, -1, 2, 2)
	assert.ErrorIs(t, err, tensor.ErrIndex)

	p, err := tensor.Pad(x, -1, 1, 0, 9)
	require.NoError(t, err)
	requireClose(t, mustNew(t, []int{2, 4}, []float64{9, 1, 2, 3, 9, 4, 5, 6}), p)
}

func TestAllClose(t *testing.T) {
	a := tensor.Vector(1, math.Inf(1), 3)
	b := tensor.Vector(1+1e-10, math.Inf(1), 3)
	ok, err := tensor.AllClose(a, b, tensor.DefaultRTol, tensor.DefaultATol)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tensor.AllClose(tensor.Vector(math.NaN()), tensor.Vector(math.NaN()), 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = tensor.AllClose(a, tensor.Vector(1), 0, 0)
	assert.ErrorIs(t, err, tensor.ErrShape)
	_, err = tensor.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, tensor.ErrNaNInf)
}

func TestValidateMinRank(t *testing.T) {
	assert.NoError(t, tensor.ValidateMinRank(tensor.Vector(1), 1))
	err := tensor.ValidateMinRank(tensor.Scalar(1), 1)
	assert.ErrorIs(t, err, tensor.ErrShape)
	assert.Contains(t, err.Error(), "required minimum 1")
	assert.ErrorIs(t, tensor.ValidateMinRank(nil, 0), tensor.ErrNilTensor)
}
