// Package config provides environment-based configuration for the CLI.
//
// Every setting can be supplied as an EDOCMP_-prefixed environment
// variable or in an optional .env file. Command-line flags and profile
// files take precedence over these values.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/report"
)

// Prefix is the environment variable prefix, e.g. EDOCMP_CELL_WIDTH.
const Prefix = "EDOCMP"

// Log formats.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// CellWidth is the text table column width.
	// Env: EDOCMP_CELL_WIDTH (default: 15)
	CellWidth int `envconfig:"CELL_WIDTH" default:"15"`

	// Output is the default output format (text, json, yaml).
	// Env: EDOCMP_OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`

	// LogLevel is the log verbosity level.
	// Env: EDOCMP_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: EDOCMP_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Sources are the default source temperaments for compare.
	// Env: EDOCMP_SOURCES (default: 15edo)
	Sources []string `envconfig:"SOURCES" default:"15edo"`

	// References are the default reference temperaments for compare.
	// Env: EDOCMP_REFERENCES (default: 12edo,harmonic:32)
	References []string `envconfig:"REFERENCES" default:"12edo,harmonic:32"`
}

// LoadFromEnv reads EDOCMP_* variables into an EnvConfig.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// DefaultDotEnv is the file LoadDotEnv reads when no path is given.
const DefaultDotEnv = ".env"

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads DefaultDotEnv from the current directory and
// a missing file is not an error. An explicit path must exist. Variables
// already set in the environment are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		if _, err := os.Stat(DefaultDotEnv); os.IsNotExist(err) {
			return nil
		}
		path = DefaultDotEnv
	}
	return godotenv.Load(path)
}

// LoadConfig loads the optional .env file, then the environment, and
// validates the result.
func LoadConfig(envPath string) (EnvConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return EnvConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Validate checks values that envconfig cannot express as types.
func (c EnvConfig) Validate() error {
	if c.CellWidth < report.MinCellWidth {
		return fmt.Errorf("%s_CELL_WIDTH must be at least %d, got %d", Prefix, report.MinCellWidth, c.CellWidth)
	}
	if _, err := model.ParseOutputFormat(c.Output); err != nil {
		return fmt.Errorf("%s_OUTPUT: %w", Prefix, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("%s_LOG_FORMAT: invalid value %q (valid: pretty, json)", Prefix, c.LogFormat)
	}
	if _, err := model.ParseTemperamentSpecs(c.Sources); err != nil {
		return fmt.Errorf("%s_SOURCES: %w", Prefix, err)
	}
	if _, err := model.ParseTemperamentSpecs(c.References); err != nil {
		return fmt.Errorf("%s_REFERENCES: %w", Prefix, err)
	}
	return nil
}

// OutputFormat returns the parsed output format. Call Validate first.
func (c EnvConfig) OutputFormat() model.OutputFormat {
	f, err := model.ParseOutputFormat(c.Output)
	if err != nil {
		return model.OutputText
	}
	return f
}
