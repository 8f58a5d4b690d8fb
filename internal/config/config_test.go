package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-derive/internal/derive"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, derive.DefaultFrameworkPath, cfg.Framework.Path)
	assert.Empty(t, cfg.Framework.Alias)
	assert.Equal(t, "component", cfg.DefaultField)
	assert.Equal(t, "_component.go", cfg.Suffix)
	assert.Empty(t, cfg.Types)
	require.NoError(t, cfg.Validate())
}

func TestParse_AllKeys(t *testing.T) {
	yamlData := `
version: "1"
framework:
  path: example.com/tui/realm
  alias: ui
default_field: backend
suffix: _mock.go
output: gen
types:
  - IpAddressInput
  - Labeled
`

	cfg, err := Parse([]byte(yamlData))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "example.com/tui/realm", cfg.Framework.Path)
	assert.Equal(t, "ui", cfg.Framework.Alias)
	assert.Equal(t, "backend", cfg.DefaultField)
	assert.Equal(t, "_mock.go", cfg.Suffix)
	assert.Equal(t, "gen", cfg.Output)
	assert.Equal(t, []string{"IpAddressInput", "Labeled"}, cfg.Types)

	opts := cfg.Options()
	assert.Equal(t, "backend", opts.DefaultField)
	assert.Equal(t, "ui", opts.Framework.Name())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("defualt_field: inner\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("types: [unterminated\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad alias", func(c *Config) { c.Framework.Alias = "1ui" }, "framework.alias"},
		{"bad path", func(c *Config) { c.Framework.Path = "a b" }, "framework.path"},
		{"bad default field", func(c *Config) { c.DefaultField = "_" }, "default_field"},
		{"test suffix", func(c *Config) { c.Suffix = "_component_test.go" }, "suffix"},
		{"not go suffix", func(c *Config) { c.Suffix = ".txt" }, "suffix"},
		{"bad type", func(c *Config) { c.Types = []string{"pkg.Type"} }, "types"},
		{"bad version", func(c *Config) { c.Version = "2" }, "unsupported version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "component-derive.yaml")

	cfg := Default()
	cfg.Types = []string{"IpAddressInput"}

	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
