// SPDX-License-Identifier: MIT

// Package chainfile reads declarative transform chains from TOML or YAML.
//
// TOML:
//
//	[[transform]]
//	type  = "affine"
//	loc   = 1.0
//	scale = [1.0, 2.0]
//
//	[[transform]]
//	type = "independent"
//	rank = 1
//	[transform.base]
//	type = "exp"
//
// YAML uses the key "transforms" with the same step fields.
package chainfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrFormat indicates an unknown file format or extension.
	ErrFormat = errors.New("chainfile: unknown format")

	// ErrDecode indicates a syntax error or an unknown field.
	ErrDecode = errors.New("chainfile: decode")

	// ErrStep indicates a step that names an unknown type or lacks a required field.
	ErrStep = errors.New("chainfile: invalid step")
)

// Format is a chain file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// File is a decoded chain file.
type File struct {
	Transforms []Step `toml:"transform" yaml:"transforms"`
}

// Step describes one transform. Which fields apply depends on Type.
type Step struct {
	Type  string `toml:"type" yaml:"type"`
	Loc   Values `toml:"loc" yaml:"loc"`
	Scale Values `toml:"scale" yaml:"scale"`
	Power Values `toml:"power" yaml:"power"`
	In    []int  `toml:"in" yaml:"in"`
	Out   []int  `toml:"out" yaml:"out"`
	Rank  int    `toml:"rank" yaml:"rank"`
	Axis  int    `toml:"axis" yaml:"axis"`
	Base  *Step  `toml:"base" yaml:"base"`
	Parts []Step `toml:"parts" yaml:"parts"`
	Steps []Step `toml:"steps" yaml:"steps"`
}

// Load reads and decodes path, choosing the format by extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, format)
}

// Parse decodes data. Unknown fields are rejected in both formats.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, fmt.Errorf("%w: unknown keys %v", ErrDecode, extra)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if len(f.Transforms) == 0 {
		return nil, fmt.Errorf("%w: no transforms", ErrStep)
	}

	return &f, nil
}
