// SPDX-License-Identifier: MIT

package distribution_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func item(t *testing.T, d *tensor.Dense, err error) float64 {
	t.Helper()
	require.NoError(t, err)
	v, err := d.Item()
	require.NoError(t, err)

	return v
}

func TestDirichlet(t *testing.T) {
	d, err := distribution.NewDirichlet(tensor.Vector(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{}, d.BatchShape())
	assert.Equal(t, []int{3}, d.EventShape())

	lp, err := d.LogProb(tensor.Vector(0.2, 0.3, 0.5))
	assert.InDelta(t, math.Log(2), item(t, lp, err), eps)

	h, err := d.Entropy()
	assert.InDelta(t, -math.Log(2), item(t, h, err), eps)

	mean, err := d.Mean()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, mean.Values(), eps)

	v, err := d.Variance()
	require.NoError(t, err)
	assert.InDelta(t, (1.0*2)/(9*4), v.Values()[0], eps)
}

func TestDirichlet_Validation(t *testing.T) {
	_, err := distribution.NewDirichlet(tensor.Scalar(1))
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewDirichlet(tensor.Vector(1, 0))
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewDirichlet(nil)
	assert.ErrorIs(t, err, distribution.ErrNilParameter)
}

func TestBeta(t *testing.T) {
	b, err := distribution.NewBeta(tensor.Scalar(2), tensor.Scalar(3))
	require.NoError(t, err)
	assert.Equal(t, distribution.KindBeta, b.Kind())

	m, err := b.Mean()
	assert.InDelta(t, 0.4, item(t, m, err), eps)
	v, err := b.Variance()
	assert.InDelta(t, 0.04, item(t, v, err), eps)

	lp, err := b.LogProb(tensor.Scalar(0.5))
	assert.InDelta(t, math.Log(1.5), item(t, lp, err), 1e-10)
	p, err := b.Prob(tensor.Scalar(0.5))
	assert.InDelta(t, 1.5, item(t, p, err), 1e-10)

	flat, err := distribution.NewBeta(tensor.Scalar(1), tensor.Scalar(1))
	require.NoError(t, err)
	h, err := flat.Entropy()
	assert.InDelta(t, 0.0, item(t, h, err), eps)
}

func TestBeta_Broadcast(t *testing.T) {
	b, err := distribution.NewBeta(tensor.Vector(1, 2, 3), tensor.Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, b.BatchShape())
	assert.Equal(t, []int{3, 2}, b.Concentration().Shape())

	_, err = distribution.NewBeta(tensor.Vector(1, 2), tensor.Vector(1, 2, 3))
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
}

func TestNormalUniformCategorical(t *testing.T) {
	n, err := distribution.NewNormal(tensor.Scalar(0), tensor.Scalar(1))
	require.NoError(t, err)
	lp, err := n.LogProb(tensor.Scalar(0))
	assert.InDelta(t, -0.5*math.Log(2*math.Pi), item(t, lp, err), eps)
	_, err = distribution.NewNormal(tensor.Scalar(0), tensor.Scalar(-1))
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)

	u, err := distribution.NewUniform(tensor.Scalar(0), tensor.Scalar(2))
	require.NoError(t, err)
	ulp, err := u.LogProb(tensor.Vector(1, 3))
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(2), ulp.Values()[0], eps)
	assert.True(t, math.IsInf(ulp.Values()[1], -1))
	assert.InDelta(t, 1.0/3, item(t, u.Variance(), nil), eps)

	c, err := distribution.NewCategorical(tensor.Vector(0, 0))
	require.NoError(t, err)
	clp, err := c.LogProb(tensor.Scalar(1))
	assert.InDelta(t, math.Log(0.5), item(t, clp, err), eps)
	ch, err := c.Entropy()
	assert.InDelta(t, math.Log(2), item(t, ch, err), eps)
	_, err = c.LogProb(tensor.Vector(1))
	assert.ErrorIs(t, err, tensor.ErrShape)
}
