// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bijector/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bijector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
schema_version: v1
log:
  level: warn
output:
  precision: 3
  format: json
chain: flows/lognormal.toml
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, "flows/lognormal.toml", cfg.Chain)

	t.Setenv("BIJECTOR__LOG__LEVEL", "debug")
	t.Setenv("BIJECTOR__OUTPUT__PRECISION", "8")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Output.Precision)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "schema_version: v2\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "output:\n  format: xml\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "log: [unclosed\n"))
	assert.Error(t, err)
}
