// File: profile.go
// Title: Formatter Preset Loading
// Description: Implements loading, parsing, and validation of formatter
//              presets from TOML and YAML files, and their resolution into
//              formatx formatter values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation with TOML/YAML support

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/formatkit/formatx"
	"github.com/msto63/formatkit/stringx"
)

// Format represents the profile file format.
type Format int

const (
	// FormatAuto auto-detects the format from the file extension.
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing.
	FormatTOML

	// FormatYAML forces YAML parsing.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Formatter kinds accepted in a profile.
const (
	KindInt      = "int"
	KindFixed    = "fixed"
	KindSci      = "sci"
	KindShortest = "shortest"
)

// Profile is a formatter preset as stored on disk.
type Profile struct {
	Kind      string   `toml:"kind" yaml:"kind"`
	Base      int      `toml:"base" yaml:"base"`
	Width     int      `toml:"width" yaml:"width"`
	Precision int      `toml:"precision" yaml:"precision"`
	Flags     []string `toml:"flags" yaml:"flags"`
}

// flagNames maps the on-disk flag spellings to their bits.
var flagNames = map[string]formatx.Flags{
	"upper_case": formatx.UpperCase,
	"pad_zeros":  formatx.PadZeros,
	"plus_sign":  formatx.PlusSign,
	"left_just":  formatx.LeftJust,
	"quoted":     formatx.Quoted,
}

// Load loads a profile from path, detecting the format from the extension.
func Load(path string) (*Profile, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads a profile from path using the given format.
func LoadWithFormat(path string, format Format) (*Profile, error) {
	if stringx.IsBlank(path) {
		return nil, fmt.Errorf("profile: file path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %s: %w", path, err)
	}

	if format == FormatAuto {
		format, err = detectFormat(path)
		if err != nil {
			return nil, err
		}
	}

	// Defaults mirror the zero-configuration formatters.
	p := &Profile{Kind: KindInt, Base: 10, Precision: 6}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("profile: parsing %s as TOML: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("profile: parsing %s as YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("profile: unsupported format %s", format)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}
	return p, nil
}

// detectFormat determines the file format from the extension.
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("profile: cannot detect format of %s", path)
	}
}

func (p *Profile) validate() error {
	switch p.Kind {
	case KindInt:
		switch p.Base {
		case 8, 10, 16:
		default:
			return fmt.Errorf("base must be 8, 10, or 16, got %d", p.Base)
		}
	case KindFixed, KindSci, KindShortest:
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", p.Width)
	}
	if p.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", p.Precision)
	}
	if _, err := p.ParsedFlags(); err != nil {
		return err
	}
	return nil
}

// ParsedFlags resolves the flag name list into a formatx bitmask.
func (p *Profile) ParsedFlags() (formatx.Flags, error) {
	var flags formatx.Flags
	for _, name := range p.Flags {
		bit, ok := flagNames[strings.ToLower(stringx.Trim(name))]
		if !ok {
			return 0, fmt.Errorf("unknown flag %q", name)
		}
		flags |= bit
	}
	return flags, nil
}

// IntFormatter resolves the profile into an integer formatter. The profile
// kind must be "int".
func (p *Profile) IntFormatter() (formatx.IntFormatter, error) {
	if p.Kind != KindInt {
		return formatx.IntFormatter{}, fmt.Errorf("profile: kind %q is not an integer profile", p.Kind)
	}
	flags, err := p.ParsedFlags()
	if err != nil {
		return formatx.IntFormatter{}, fmt.Errorf("profile: %w", err)
	}
	return formatx.Dec().WithBase(p.Base).WithWidth(p.Width).WithFlags(flags), nil
}

// FloatFormatter resolves the profile into a float formatter. The profile
// kind must be "fixed", "sci", or "shortest".
func (p *Profile) FloatFormatter() (formatx.Formatter[float64], error) {
	flags, err := p.ParsedFlags()
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	switch p.Kind {
	case KindFixed:
		return formatx.Fixed().WithWidth(p.Width).WithPrecision(p.Precision).WithFlags(flags), nil
	case KindSci:
		return formatx.Sci().WithWidth(p.Width).WithPrecision(p.Precision).WithFlags(flags), nil
	case KindShortest:
		return formatx.Shortest(), nil
	default:
		return nil, fmt.Errorf("profile: kind %q is not a float profile", p.Kind)
	}
}
