// SPDX-License-Identifier: MIT

package chainfile_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bijector/internal/chainfile"
	"github.com/katalvlaran/bijector/tensor"
	"github.com/katalvlaran/bijector/transform"
)

const tomlChain = `
[[transform]]
type  = "affine"
loc   = 1
scale = [1.0, 2.0]

[[transform]]
type = "independent"
rank = 1
[transform.base]
type = "exp"
`

const yamlChain = `
transforms:
  - type: affine
    loc: 1
    scale: [1.0, 2.0]
  - type: independent
    rank: 1
    base:
      type: exp
`

func build(t *testing.T, data string, format chainfile.Format) transform.Transform {
	t.Helper()
	f, err := chainfile.Parse([]byte(data), format)
	require.NoError(t, err)
	tr, err := f.Build()
	require.NoError(t, err)

	return tr
}

func TestParse_FormatsAgree(t *testing.T) {
	fromTOML := build(t, tomlChain, chainfile.FormatTOML)
	fromYAML := build(t, yamlChain, chainfile.FormatYAML)

	const want = "Chain[Affine(loc=1, scale=[1 2]), Independent(Exp, 1)]"
	assert.Equal(t, want, fromTOML.String())
	assert.Equal(t, want, fromYAML.String())
	assert.Equal(t, 1, fromTOML.Codomain().EventRank())
}

func TestBuild_RoundTrip(t *testing.T) {
	tr := build(t, tomlChain, chainfile.FormatTOML)
	x := tensor.Vector(0.5, -1)

	y, err := tr.Forward(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Exp(1.5), math.Exp(-1)}, y.Values(), 1e-12)

	back, err := tr.Inverse(y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x.Values(), back.Values(), 1e-12)

	// log 2 from the scale plus the Exp Jacobian summed over the event.
	ldj, err := tr.ForwardLogDetJacobian(x)
	require.NoError(t, err)
	v, err := ldj.Item()
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2+1.5-1, v, 1e-12)
}

func TestBuild_AllTypes(t *testing.T) {
	data := `
transforms:
  - type: chain
    steps:
      - type: power
        power: 2
      - type: sigmoid
  - type: stack
    axis: -1
    parts:
      - type: tanh
      - type: affine
        scale: 3
  - type: reshape
    in: [2]
    out: [2, 1]
`
	tr := build(t, data, chainfile.FormatYAML)
	assert.Equal(t,
		"Chain[Chain[Power(2), Sigmoid], Stack[Tanh, Affine(loc=0, scale=3)](axis=-1), Reshape([2] -> [2 1])]",
		tr.String())

	for _, typ := range []string{"exp", "abs", "softmax", "stick_breaking", "corr_cholesky"} {
		tr, err := chainfile.Step{Type: typ}.Build()
		require.NoError(t, err, typ)
		assert.NotNil(t, tr)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := chainfile.Parse([]byte("[[transform]]\ntype = \"exp\"\nbogus = 1\n"), chainfile.FormatTOML)
	assert.ErrorIs(t, err, chainfile.ErrDecode)

	_, err = chainfile.Parse([]byte("transforms:\n  - type: exp\n    bogus: 1\n"), chainfile.FormatYAML)
	assert.ErrorIs(t, err, chainfile.ErrDecode)

	_, err = chainfile.Parse([]byte("transforms:\n  - type: affine\n    loc: {a: 1}\n"), chainfile.FormatYAML)
	assert.ErrorIs(t, err, chainfile.ErrDecode)

	_, err = chainfile.Parse([]byte("[[transform]]\ntype = \"affine\"\nloc = \"one\"\n"), chainfile.FormatTOML)
	assert.ErrorIs(t, err, chainfile.ErrDecode)

	_, err = chainfile.Parse([]byte("transforms: []\n"), chainfile.FormatYAML)
	assert.ErrorIs(t, err, chainfile.ErrStep)

	_, err = chainfile.Parse([]byte("{}"), "json")
	assert.ErrorIs(t, err, chainfile.ErrFormat)
}

func TestBuild_Errors(t *testing.T) {
	cases := map[string]chainfile.Step{
		"unknown":         {Type: "warp"},
		"missing type":    {},
		"missing power":   {Type: "power"},
		"zero power":      {Type: "power", Power: chainfile.Values{0}},
		"zero scale":      {Type: "affine", Scale: chainfile.Values{0}},
		"missing base":    {Type: "independent", Rank: 1},
		"bad reshape":     {Type: "reshape", In: []int{3}, Out: []int{2}},
		"empty chain":     {Type: "chain"},
		"bad nested part": {Type: "stack", Parts: []chainfile.Step{{Type: "warp"}}},
		"negative rank":   {Type: "independent", Rank: -1, Base: &chainfile.Step{Type: "exp"}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Build()
			assert.ErrorIs(t, err, chainfile.ErrStep)
		})
	}

	_, err := chainfile.Step{Type: "power", Power: chainfile.Values{0}}.Build()
	assert.ErrorIs(t, err, transform.ErrInvalidArgument)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"c.toml": tomlChain, "c.yml": yamlChain, "c.yaml": yamlChain} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		f, err := chainfile.Load(path)
		require.NoError(t, err, name)
		assert.Len(t, f.Transforms, 2)
	}

	_, err := chainfile.Load(filepath.Join(dir, "c.json"))
	assert.ErrorIs(t, err, chainfile.ErrFormat)
	_, err = chainfile.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
