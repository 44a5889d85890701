// Package model defines the shared value types for the edo-compare CLI.
//
// These types are passed between the temperament, report, profile and cli
// packages. They carry no behavior beyond parsing and validation, so every
// other package can depend on model without creating import cycles.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TemperamentKind identifies the algorithm used to generate a temperament.
type TemperamentKind string

const (
	// KindEDO is an equal division of the octave: degree n of an N-EDO
	// system has the ratio 2^(n/N).
	KindEDO TemperamentKind = "edo"

	// KindHarmonic is the harmonic series folded into a single octave:
	// harmonic n maps to n divided by the largest power of two <= n.
	KindHarmonic TemperamentKind = "harmonic"

	// KindCustom is a temperament built directly from caller-supplied
	// degrees rather than by a generator.
	KindCustom TemperamentKind = "custom"
)

// String returns the string representation of TemperamentKind.
func (k TemperamentKind) String() string {
	return string(k)
}

// IsValid checks whether the TemperamentKind value is one of the
// predefined kinds.
func (k TemperamentKind) IsValid() bool {
	switch k {
	case KindEDO, KindHarmonic, KindCustom:
		return true
	default:
		return false
	}
}

// IsGenerated reports whether the kind has a generator, i.e. whether a
// TemperamentSpec of this kind can be built from a size alone.
func (k TemperamentKind) IsGenerated() bool {
	return k == KindEDO || k == KindHarmonic
}

// TemperamentSpec is a parsed temperament token such as "12edo" or
// "harmonic:32". It describes how to generate a temperament without
// holding any of its degrees.
type TemperamentSpec struct {
	// Kind selects the generator.
	Kind TemperamentKind `json:"kind" yaml:"kind"`

	// Size is the number of degrees (EDO) or harmonics to generate.
	// Always >= 1 for a spec produced by ParseTemperamentSpec.
	Size int `json:"size" yaml:"size"`
}

// String returns the canonical token for s. The result parses back
// to an equal TemperamentSpec.
func (s TemperamentSpec) String() string {
	switch s.Kind {
	case KindEDO:
		return fmt.Sprintf("%dedo", s.Size)
	case KindHarmonic:
		return fmt.Sprintf("harmonic:%d", s.Size)
	default:
		return fmt.Sprintf("%s:%d", s.Kind, s.Size)
	}
}

// DisplayName returns the human-readable name used in report headers,
// e.g. "12-EDO" or "Harmonic series (32)".
func (s TemperamentSpec) DisplayName() string {
	switch s.Kind {
	case KindEDO:
		return fmt.Sprintf("%d-EDO", s.Size)
	case KindHarmonic:
		return fmt.Sprintf("Harmonic series (%d)", s.Size)
	default:
		return s.String()
	}
}

// MaxSize is the largest number of degrees or harmonics a generated
// temperament may have.
const MaxSize = 4096

// Validate checks that s names a generated kind and a size in
// 1..MaxSize.
func (s TemperamentSpec) Validate() error {
	if !s.Kind.IsGenerated() {
		return fmt.Errorf("invalid temperament kind %q (valid: edo, harmonic)", s.Kind)
	}
	if s.Size < 1 {
		return fmt.Errorf("invalid temperament size %d: must be a positive integer", s.Size)
	}
	if s.Size > MaxSize {
		return fmt.Errorf("invalid temperament size %d: must be at most %d", s.Size, MaxSize)
	}
	return nil
}

// specRegex accepts the token forms understood by ParseTemperamentSpec.
// Group 1/2 match suffix forms ("12edo", "12-edo"), group 3/4 match prefix
// forms ("edo:12", "edo12", "harmonic:32", "hs32").
var specRegex = regexp.MustCompile(`^(?:(\d+)-?(edo|hs|harmonics?)|(edo|hs|harmonics?):?(\d+))$`)

// ParseTemperamentSpec converts a token such as "12edo", "12-EDO",
// "edo:19", "harmonic:32", "harmonics:16" or "hs32" into a TemperamentSpec.
// Parsing is case-insensitive. The size must be a positive integer.
func ParseTemperamentSpec(token string) (TemperamentSpec, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	m := specRegex.FindStringSubmatch(normalized)
	if m == nil {
		return TemperamentSpec{}, fmt.Errorf("invalid temperament %q (examples: 12edo, edo:19, harmonic:32, hs16)", token)
	}

	sizeStr, kindStr := m[1], m[2]
	if sizeStr == "" {
		kindStr, sizeStr = m[3], m[4]
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return TemperamentSpec{}, fmt.Errorf("invalid temperament size in %q: %w", token, err)
	}

	kind := KindEDO
	if kindStr != "edo" {
		kind = KindHarmonic
	}

	spec := TemperamentSpec{Kind: kind, Size: size}
	if err := spec.Validate(); err != nil {
		return TemperamentSpec{}, err
	}
	return spec, nil
}

// ParseTemperamentSpecs parses a list of tokens, stopping at the first
// invalid one. Empty tokens (e.g. from a trailing comma) are skipped.
func ParseTemperamentSpecs(tokens []string) ([]TemperamentSpec, error) {
	specs := make([]TemperamentSpec, 0, len(tokens))
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		spec, err := ParseTemperamentSpec(tok)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// OutputFormat selects how command results are written to stdout.
type OutputFormat string

const (
	// OutputText is the human-readable table layout (default).
	OutputText OutputFormat = "text"

	// OutputJSON is indented JSON for machine consumption.
	OutputJSON OutputFormat = "json"

	// OutputYAML is a YAML document with the same shape as OutputJSON.
	OutputYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the
// predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// "yml" is accepted as an alias for "yaml".
func ParseOutputFormat(s string) (OutputFormat, error) {
	lower := strings.ToLower(s)
	if lower == "yml" {
		lower = "yaml"
	}
	format := OutputFormat(lower)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// ExitCode defines the CLI exit codes. Scripts can rely on these values
// to distinguish usage errors from profile problems. A successful run
// exits with 0.
type ExitCode int

const (
	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates a malformed temperament token, ratio or
	// degree count.
	ExitInvalidInput ExitCode = 2

	// ExitEmptyMatchTarget indicates a nearest-match search was run against
	// a temperament with no eligible degrees (e.g. 1-EDO).
	ExitEmptyMatchTarget ExitCode = 3

	// ExitProfileNotFound indicates the --profile file does not exist.
	ExitProfileNotFound ExitCode = 4

	// ExitInvalidProfile indicates the profile file could not be parsed or
	// failed validation.
	ExitInvalidProfile ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
