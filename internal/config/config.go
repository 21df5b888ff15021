// Package config loads premisctl project settings from premisctl.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the config file looked up in the working directory.
const FileName = "premisctl.yaml"

// Environment overrides, applied after the file is read.
const (
	EnvIdentifierType = "PREMIS_IDENTIFIER_TYPE"
	EnvIndent         = "PREMIS_INDENT"
)

const (
	defaultIndent         = "  "
	defaultIdentifierType = "local"
)

type OutputConfig struct {
	Indent      string `yaml:"indent"`
	Declaration *bool  `yaml:"declaration,omitempty"`
}

// WantDeclaration reports whether documents start with an XML declaration.
func (o OutputConfig) WantDeclaration() bool {
	return o.Declaration == nil || *o.Declaration
}

type IdentifierConfig struct {
	DefaultType string `yaml:"default_type"`
}

// AgentConfig describes an agent linked to every manifest event that names
// no agent of its own.
type AgentConfig struct {
	IdentifierType  string `yaml:"identifier_type,omitempty"`
	IdentifierValue string `yaml:"identifier_value"`
	Name            string `yaml:"name"`
	Type            string `yaml:"type"`
	Role            string `yaml:"role,omitempty"`
}

type Config struct {
	Output      OutputConfig     `yaml:"output"`
	Identifiers IdentifierConfig `yaml:"identifiers"`
	Agent       *AgentConfig     `yaml:"agent,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads FileName from dir and fills in defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvIdentifierType); ok && strings.TrimSpace(v) != "" {
		c.Identifiers.DefaultType = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvIndent); ok {
		c.Output.Indent = v
	}
}

// Validate reports settings that cannot produce a document.
func (c *Config) Validate() error {
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return fmt.Errorf("output.indent must contain only spaces or tabs, got %q", c.Output.Indent)
	}
	if c.Agent != nil {
		if c.Agent.Name == "" {
			return errors.New("agent.name is required")
		}
		if c.Agent.Type == "" {
			return errors.New("agent.type is required")
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Output.Indent == "" {
		c.Output.Indent = defaultIndent
	}
	if c.Identifiers.DefaultType == "" {
		c.Identifiers.DefaultType = defaultIdentifierType
	}
	if c.Agent != nil && c.Agent.IdentifierType == "" {
		c.Agent.IdentifierType = c.Identifiers.DefaultType
	}
}
