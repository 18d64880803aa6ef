// SPDX-License-Identifier: MIT

// Package config loads CLI settings from an optional YAML file overlaid with
// BIJECTOR__-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix selects the environment variables read by Load.
// Nested keys use "__": BIJECTOR__LOG__LEVEL=debug sets log.level.
const EnvPrefix = "BIJECTOR__"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

type LogConfig struct {
	Level string `koanf:"level"` // debug|info|warn|error
}

type OutputConfig struct {
	Precision int    `koanf:"precision"` // digits after the point, -1 for shortest
	Format    string `koanf:"format"`    // text|json
}

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
	Chain  string       `koanf:"chain"` // default chain file for forward/inverse/ldj/shape
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Precision: 6, Format: FormatText},
	}
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// Load merges YAML at path (skipped when empty or missing) with environment
// variables, then fills defaults and validates.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if sv := k.String("schema_version"); sv != "" && sv != "v1" {
		return Config{}, fmt.Errorf("%w: schema_version %q not supported (want v1)", ErrInvalid, sv)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// envKey maps BIJECTOR__OUTPUT__PRECISION to output.precision.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q (want %s or %s)", ErrInvalid, c.Output.Format, FormatText, FormatJSON)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("%w: output.precision %d", ErrInvalid, c.Output.Precision)
	}

	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}
