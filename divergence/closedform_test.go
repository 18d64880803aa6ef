// SPDX-License-Identifier: MIT

package divergence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bijector/distribution"
	"github.com/katalvlaran/bijector/divergence"
	"github.com/katalvlaran/bijector/tensor"
)

const tol = 1e-9

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// kl evaluates the default registry and returns the flat result.
func kl(t *testing.T, p, q distribution.Distribution) []float64 {
	t.Helper()
	out, err := divergence.KLDivergence(p, q)
	require.NoError(t, err)

	return out.Values()
}

func TestKL_SelfIsZero(t *testing.T) {
	cases := map[string]distribution.Distribution{
		"beta":        must(distribution.NewBeta(tensor.Vector(2, 0.5), tensor.Vector(3, 0.5))),
		"dirichlet":   must(distribution.NewDirichlet(tensor.Vector(1, 2, 3))),
		"normal":      must(distribution.NewNormal(tensor.Vector(-1, 4), tensor.Vector(0.5, 2))),
		"uniform":     must(distribution.NewUniform(tensor.Scalar(-2), tensor.Scalar(3))),
		"categorical": must(distribution.NewCategorical(tensor.Vector(0.1, -1, 2))),
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			for _, v := range kl(t, d, d) {
				assert.InDelta(t, 0, v, tol)
			}
		})
	}
}

func TestKL_ReferenceValues(t *testing.T) {
	beta := must(distribution.NewBeta(tensor.Scalar(2), tensor.Scalar(3)))
	flat := must(distribution.NewBeta(tensor.Scalar(1), tensor.Scalar(1)))
	// Against the flat Beta the divergence is the negated entropy.
	assert.InDelta(t, 0.2349066497879999, kl(t, beta, flat)[0], 1e-9)

	d1 := must(distribution.NewDirichlet(tensor.Vector(1, 2, 3)))
	d2 := must(distribution.NewDirichlet(tensor.Vector(2, 2, 2)))
	assert.InDelta(t, 1.5-math.Ln2, kl(t, d1, d2)[0], 1e-9)

	n1 := must(distribution.NewNormal(tensor.Scalar(0), tensor.Scalar(1)))
	n2 := must(distribution.NewNormal(tensor.Scalar(1), tensor.Scalar(2)))
	assert.InDelta(t, math.Ln2+0.25-0.5, kl(t, n1, n2)[0], tol)

	c1 := must(distribution.NewCategorical(tensor.Vector(math.Log(0.5), math.Log(0.5))))
	c2 := must(distribution.NewCategorical(tensor.Vector(math.Log(0.25), math.Log(0.75))))
	assert.InDelta(t, 0.5*(math.Log(2)+math.Log(2.0/3)), kl(t, c1, c2)[0], tol)
}

func TestKL_BetaMatchesDirichlet(t *testing.T) {
	b1 := must(distribution.NewBeta(tensor.Vector(2, 5), tensor.Vector(3, 1)))
	b2 := must(distribution.NewBeta(tensor.Scalar(1.5), tensor.Scalar(0.5)))
	got := kl(t, b1, b2)
	require.Len(t, got, 2)

	for i, ab := range [][2]float64{{2, 3}, {5, 1}} {
		d1 := must(distribution.NewDirichlet(tensor.Vector(ab[0], ab[1])))
		d2 := must(distribution.NewDirichlet(tensor.Vector(1.5, 0.5)))
		assert.InDelta(t, kl(t, d1, d2)[0], got[i], tol)
	}
}

func TestKL_UniformSupport(t *testing.T) {
	inner := must(distribution.NewUniform(tensor.Scalar(0), tensor.Scalar(1)))
	outer := must(distribution.NewUniform(tensor.Scalar(-1), tensor.Scalar(1)))

	assert.InDelta(t, math.Ln2, kl(t, inner, outer)[0], tol)
	assert.True(t, math.IsInf(kl(t, outer, inner)[0], 1))
}

func TestKL_CategoricalZeroProbability(t *testing.T) {
	p := must(distribution.NewCategorical(tensor.Vector(math.Inf(-1), 0)))
	q := must(distribution.NewCategorical(tensor.Vector(0, 0)))
	assert.InDelta(t, math.Ln2, kl(t, p, q)[0], tol)
}

func TestKL_BatchBroadcast(t *testing.T) {
	p := must(distribution.NewNormal(tensor.Vector(0, 1, 2), tensor.Scalar(1)))
	q := must(distribution.NewNormal(tensor.Scalar(0), tensor.Scalar(1)))
	out, err := divergence.KLDivergence(p, q)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out.Shape())
	assert.InDeltaSlice(t, []float64{0, 0.5, 2}, out.Values(), tol)
}

func TestKL_Errors(t *testing.T) {
	c2 := must(distribution.NewCategorical(tensor.Vector(0, 0)))
	c3 := must(distribution.NewCategorical(tensor.Vector(0, 0, 0)))
	_, err := divergence.KLDivergence(c2, c3)
	assert.ErrorIs(t, err, divergence.ErrIncompatible)

	d2 := must(distribution.NewDirichlet(tensor.Vector(1, 1)))
	d3 := must(distribution.NewDirichlet(tensor.Vector(1, 1, 1)))
	_, err = divergence.KLDivergence(d2, d3)
	assert.ErrorIs(t, err, divergence.ErrIncompatible)

	n := must(distribution.NewNormal(tensor.Scalar(0), tensor.Scalar(1)))
	u := must(distribution.NewUniform(tensor.Scalar(0), tensor.Scalar(1)))
	_, err = divergence.KLDivergence(n, u)
	assert.ErrorIs(t, err, divergence.ErrNotImplemented)
}

// fakeBeta reports a Beta sub-kind without being a *distribution.Beta.
type fakeBeta struct{ kind distribution.Kind }

func (f fakeBeta) Kind() distribution.Kind { return f.kind }
func (fakeBeta) BatchShape() []int         { return []int{} }
func (fakeBeta) EventShape() []int         { return []int{} }
func (fakeBeta) LogProb(v *tensor.Dense) (*tensor.Dense, error) {
	return tensor.ZerosLike(v), nil
}

func TestKL_UnexpectedType(t *testing.T) {
	kind, err := distribution.RegisterKind("TestFakeBeta", distribution.KindBeta)
	require.NoError(t, err)
	reg := divergence.NewRegistry()
	require.NoError(t, divergence.RegisterClosedForms(reg))

	flat := must(distribution.NewBeta(tensor.Scalar(1), tensor.Scalar(1)))
	_, err = reg.KLDivergence(fakeBeta{kind: kind}, flat)
	assert.ErrorIs(t, err, divergence.ErrUnexpectedType)
}

func TestDefault_Pairs(t *testing.T) {
	pairs := divergence.Default().Pairs()
	require.GreaterOrEqual(t, len(pairs), 5)
	assert.Equal(t, divergence.Pair{P: distribution.KindBeta, Q: distribution.KindBeta}, pairs[0])

	h := divergence.Resolve(distribution.KindDirichlet, distribution.KindDirichlet)
	require.NotNil(t, h)
}
