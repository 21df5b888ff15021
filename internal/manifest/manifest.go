// Package manifest describes PREMIS documents in YAML or TOML and builds
// them with the premis package.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for manifest files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the manifest format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

type Identifier struct {
	Type  string `yaml:"type,omitempty" toml:"type"`
	Value string `yaml:"value,omitempty" toml:"value"`
}

type Fixity struct {
	Algorithm string `yaml:"algorithm,omitempty" toml:"algorithm"`
	Digest    string `yaml:"digest" toml:"digest"`
}

type FormatInfo struct {
	Name        string `yaml:"name" toml:"name"`
	Version     string `yaml:"version,omitempty" toml:"version"`
	Registry    string `yaml:"registry,omitempty" toml:"registry"`
	RegistryKey string `yaml:"registry_key,omitempty" toml:"registry_key"`
}

type Relationship struct {
	Type    string `yaml:"type" toml:"type"`
	SubType string `yaml:"sub_type" toml:"sub_type"`
	// Object is the identifier value of another manifest object.
	Object string `yaml:"object" toml:"object"`
}

type Environment struct {
	Characteristic string   `yaml:"characteristic,omitempty" toml:"characteristic"`
	Purposes       []string `yaml:"purposes,omitempty" toml:"purposes"`
	Notes          []string `yaml:"notes,omitempty" toml:"notes"`
	// Dependencies are identifier values of other manifest objects.
	Dependencies []string `yaml:"dependencies,omitempty" toml:"dependencies"`
}

type Object struct {
	ID               Identifier     `yaml:"id" toml:"id"`
	Kind             string         `yaml:"kind,omitempty" toml:"kind"`
	OriginalName     string         `yaml:"original_name,omitempty" toml:"original_name"`
	CompositionLevel string         `yaml:"composition_level,omitempty" toml:"composition_level"`
	Fixity           []Fixity       `yaml:"fixity,omitempty" toml:"fixity"`
	Formats          []FormatInfo   `yaml:"formats,omitempty" toml:"formats"`
	DateCreated      string         `yaml:"date_created,omitempty" toml:"date_created"`
	Environments     []Environment  `yaml:"environments,omitempty" toml:"environments"`
	Relationships    []Relationship `yaml:"relationships,omitempty" toml:"relationships"`
}

// Link references a manifest agent or object by identifier value.
type Link struct {
	ID   string `yaml:"id" toml:"id"`
	Role string `yaml:"role,omitempty" toml:"role"`
}

type Event struct {
	ID          Identifier `yaml:"id" toml:"id"`
	Type        string     `yaml:"type" toml:"type"`
	DateTime    string     `yaml:"datetime,omitempty" toml:"datetime"`
	Detail      string     `yaml:"detail,omitempty" toml:"detail"`
	Outcome     string     `yaml:"outcome,omitempty" toml:"outcome"`
	OutcomeNote string     `yaml:"outcome_note,omitempty" toml:"outcome_note"`
	Agents      []Link     `yaml:"agents,omitempty" toml:"agents"`
	Objects     []Link     `yaml:"objects,omitempty" toml:"objects"`
}

type Agent struct {
	ID    Identifier `yaml:"id" toml:"id"`
	Name  string     `yaml:"name" toml:"name"`
	Type  string     `yaml:"type" toml:"type"`
	Notes []string   `yaml:"notes,omitempty" toml:"notes"`
}

// Manifest lists the entities of one PREMIS document.
type Manifest struct {
	Objects []Object `yaml:"objects,omitempty" toml:"objects"`
	Events  []Event  `yaml:"events,omitempty" toml:"events"`
	Agents  []Agent  `yaml:"agents,omitempty" toml:"agents"`
}

// Load reads a manifest file, choosing the decoder from its extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Decode reads a manifest in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &m, nil
}
