package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

var envVars = []string{
	"EDOCMP_CELL_WIDTH",
	"EDOCMP_OUTPUT",
	"EDOCMP_LOG_LEVEL",
	"EDOCMP_LOG_FORMAT",
	"EDOCMP_SOURCES",
	"EDOCMP_REFERENCES",
}

// clearEnvVars unsets every EDOCMP_ variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		if val, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, val) })
		}
	}
}

// unsetAfter removes variables a .env file may have set.
func unsetAfter(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, key := range envVars {
			_ = os.Unsetenv(key)
		}
	})
}

// TestLoadFromEnv_Defaults verifies the built-in defaults when no
// EDOCMP_ variable is set.
func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.CellWidth)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, []string{"15edo"}, cfg.Sources)
	assert.Equal(t, []string{"12edo", "harmonic:32"}, cfg.References)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, model.OutputText, cfg.OutputFormat())
}

// TestLoadFromEnv_Overrides reads every supported variable, including the
// comma-separated temperament lists.
func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("EDOCMP_CELL_WIDTH", "10")
	t.Setenv("EDOCMP_OUTPUT", "yaml")
	t.Setenv("EDOCMP_SOURCES", "19edo,22edo")
	t.Setenv("EDOCMP_REFERENCES", "hs16")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.CellWidth)
	assert.Equal(t, model.OutputYAML, cfg.OutputFormat())
	assert.Equal(t, []string{"19edo", "22edo"}, cfg.Sources)
	assert.Equal(t, []string{"hs16"}, cfg.References)
}

// TestLoadFromEnv_BadInt rejects a non-numeric cell width.
func TestLoadFromEnv_BadInt(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("EDOCMP_CELL_WIDTH", "wide")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

// TestValidate checks each field Validate guards, naming the offending
// variable in the error.
func TestValidate(t *testing.T) {
	base := EnvConfig{
		CellWidth:  15,
		Output:     "text",
		LogLevel:   "INFO",
		LogFormat:  "pretty",
		Sources:    []string{"15edo"},
		References: []string{"12edo"},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *EnvConfig)
		want   string
	}{
		{"narrow cells", func(c *EnvConfig) { c.CellWidth = 3 }, "CELL_WIDTH"},
		{"bad output", func(c *EnvConfig) { c.Output = "html" }, "OUTPUT"},
		{"bad log format", func(c *EnvConfig) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"bad source", func(c *EnvConfig) { c.Sources = []string{"0edo"} }, "SOURCES"},
		{"bad reference", func(c *EnvConfig) { c.References = []string{"x"} }, "REFERENCES"},
		{"oversized source", func(c *EnvConfig) { c.Sources = []string{"5000edo"} }, "SOURCES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Sources = append([]string(nil), base.Sources...)
			cfg.References = append([]string(nil), base.References...)
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestLoadConfig_DotEnv loads settings from an explicit .env file.
func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnvVars(t)
	unsetAfter(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EDOCMP_CELL_WIDTH=9\nEDOCMP_OUTPUT=json\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.CellWidth)
	assert.Equal(t, model.OutputJSON, cfg.OutputFormat())
}

// TestLoadConfig_EnvWinsOverDotEnv keeps variables already set in the
// environment.
func TestLoadConfig_EnvWinsOverDotEnv(t *testing.T) {
	clearEnvVars(t)
	unsetAfter(t)
	t.Setenv("EDOCMP_OUTPUT", "yaml")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EDOCMP_OUTPUT=json\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

// TestLoadConfig_MissingDefaultDotEnv falls back to defaults when the
// working directory has no .env file.
func TestLoadConfig_MissingDefaultDotEnv(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.CellWidth)
}

// TestLoadConfig_DefaultDotEnv reads .env from the working directory when
// no path is given.
func TestLoadConfig_DefaultDotEnv(t *testing.T) {
	clearEnvVars(t)
	unsetAfter(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultDotEnv), []byte("EDOCMP_CELL_WIDTH=11\n"), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.CellWidth)
}

// TestLoadConfig_MissingExplicitDotEnv fails when a named file is absent.
func TestLoadConfig_MissingExplicitDotEnv(t *testing.T) {
	clearEnvVars(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

// TestLoadConfig_Invalid rejects values that fail validation.
func TestLoadConfig_Invalid(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())
	t.Setenv("EDOCMP_CELL_WIDTH", "2")

	_, err := LoadConfig("")
	assert.Error(t, err)
}
