// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bijector/internal/cli"
)

const logNormalChain = `
[[transform]]
type  = "affine"
loc   = 1
scale = 1

[[transform]]
type = "exp"
`

const reshapeChain = `
transforms:
  - type: reshape
    in: [6]
    out: [2, 3]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the CLI and returns trimmed stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return strings.TrimSpace(out.String()), errOut.String(), err
}

func TestApply_Commands(t *testing.T) {
	chain := writeFile(t, "lognormal.toml", logNormalChain)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"forward", []string{"forward", "--chain", chain, "--values", "-1,0"}, "[1 2.718282]"},
		{"inverse", []string{"inverse", "-c", chain, "--values", "1"}, "-1"},
		{"ldj", []string{"ldj", "-c", chain, "--values", "0"}, "1"},
		{"inverse ldj", []string{"ldj", "-c", chain, "--values", "7.38905609893065", "--inverse"}, "-2"},
		{"matrix", []string{"forward", "-c", chain, "--values", "-1,-1,-1,-1", "--shape", "2,2"}, "[[1 1] [1 1]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestShape_Command(t *testing.T) {
	chain := writeFile(t, "reshape.yaml", reshapeChain)

	out, _, err := run(t, "shape", "--chain", chain, "--shape", "4,6")
	require.NoError(t, err)
	assert.Equal(t, "[4 2 3]", out)

	out, _, err = run(t, "shape", "--chain", chain, "--shape", "4,2,3", "--inverse")
	require.NoError(t, err)
	assert.Equal(t, "[4 6]", out)

	_, _, err = run(t, "shape", "--chain", chain, "--shape", "5")
	assert.Error(t, err)
}

func TestKL_Command(t *testing.T) {
	out, _, err := run(t, "kl", "--p", "beta:2,3", "--q", "beta:1,1")
	require.NoError(t, err)
	assert.Equal(t, "0.234907", out)

	out, _, err = run(t, "kl", "--p", "normal:0,1", "--q", "normal:0,1")
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	out, _, err = run(t, "kl", "--list")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "(Beta, Beta)", lines[0])
}

func TestConfig_JSONAndDefaultChain(t *testing.T) {
	chain := writeFile(t, "lognormal.toml", logNormalChain)
	cfg := writeFile(t, "bijector.yaml", "output:\n  format: json\n  precision: 2\nchain: "+chain+"\n")

	out, _, err := run(t, "--config", cfg, "forward", "--values", "0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"shape":[],"values":[2.72]}`, out)

	out, _, err = run(t, "--config", cfg, "kl", "--p", "uniform:-1,1", "--q", "uniform:0,1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"shape":[],"values":["+Inf"]}`, out)

	out, _, err = run(t, "--config", cfg, "shape", "--shape", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"shape":[3]}`, out)
}

func TestVerboseLogging(t *testing.T) {
	chain := writeFile(t, "lognormal.toml", logNormalChain)

	_, logs, err := run(t, "-v", "forward", "-c", chain, "--values", "0")
	require.NoError(t, err)
	assert.Contains(t, logs, "applying")

	_, logs, err = run(t, "forward", "-c", chain, "--values", "0")
	require.NoError(t, err)
	assert.NotContains(t, logs, "applying")
}

func TestErrors(t *testing.T) {
	chain := writeFile(t, "lognormal.toml", logNormalChain)

	_, _, err := run(t, "forward", "--values", "1")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "forward", "-c", chain, "--values", "1,x")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "forward", "-c", chain, "--values", "1,2,3", "--shape", "2,2")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "kl", "--p", "gamma:1,1", "--q", "beta:1,1")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "kl", "--p", "beta:1", "--q", "beta:1,1")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "kl", "--p", "beta:1,1")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "kl", "--p", "normal:0,1", "--q", "uniform:0,1")
	assert.Error(t, err)

	_, _, err = run(t, "--config", writeFile(t, "bad.yaml", "log:\n  level: loud\n"), "kl", "--list")
	assert.Error(t, err)
}
