package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDefaultConfig(t *testing.T) {
	var buf bytes.Buffer

	runtime := DefaultConfig(ProfileRuntime, &buf)
	assert.Equal(t, zerolog.WarnLevel, runtime.Level)
	assert.True(t, runtime.Timestamp)
	assert.True(t, runtime.NoColor, "a buffer is not a terminal")

	test := DefaultConfig(ProfileTest, &buf)
	assert.Equal(t, zerolog.DebugLevel, test.Level)
	assert.False(t, test.Timestamp)
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "no overrides",
			env:  nil,
			want: Config{Level: zerolog.WarnLevel, Timestamp: true},
		},
		{
			name: "all overrides",
			env:  map[string]string{EnvLogLevel: " DEBUG ", EnvLogTimestamp: "false", EnvLogNoColor: "1"},
			want: Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true},
		},
		{
			name: "disabled",
			env:  map[string]string{EnvLogLevel: "off"},
			want: Config{Level: zerolog.Disabled, Timestamp: true},
		},
		{
			name: "garbage ignored",
			env:  map[string]string{EnvLogLevel: "loud", EnvLogTimestamp: "sometimes"},
			want: Config{Level: zerolog.WarnLevel, Timestamp: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Level: zerolog.WarnLevel, Timestamp: true}
			ApplyEnv(&cfg, envOf(tt.env))
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: zerolog.InfoLevel, NoColor: true})

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "doc.xml").Msg("checked")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "checked")
	assert.Contains(t, out, "file=doc.xml")
}
