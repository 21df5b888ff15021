package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `output:
  indent: "    "
  declaration: false

identifiers:
  default_type: urn:uuid

agent:
  identifier_value: premisctl
  name: premisctl
  type: software
  role: executing program
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.False(t, cfg.Output.WantDeclaration())
	assert.Equal(t, "urn:uuid", cfg.Identifiers.DefaultType)
	require.NotNil(t, cfg.Agent)
	assert.Equal(t, "urn:uuid", cfg.Agent.IdentifierType)
	assert.Equal(t, "premisctl", cfg.Agent.IdentifierValue)
	assert.Equal(t, "software", cfg.Agent.Type)
	assert.Equal(t, "executing program", cfg.Agent.Role)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("identifiers: {}\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "  ", cfg.Output.Indent)
	assert.True(t, cfg.Output.WantDeclaration())
	assert.Equal(t, "local", cfg.Identifiers.DefaultType)
	assert.Nil(t, cfg.Agent)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidAgent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("agent:\n  name: x\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent.type")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{EnvIdentifierType: " urn:uuid ", EnvIndent: "\t"}
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	assert.Equal(t, "urn:uuid", cfg.Identifiers.DefaultType)
	assert.Equal(t, "\t", cfg.Output.Indent)
	assert.NoError(t, cfg.Validate())
}
