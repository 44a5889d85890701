package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

// TestDegreesCommand_Text checks the aligned table for 12-EDO.
func TestDegreesCommand_Text(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "degrees", "12edo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2+11)
	assert.Equal(t, "12-EDO", lines[0])
	assert.Equal(t, []string{"DEGREE", "RATIO", "CENTS", "NAME"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "1.05946", "100.00", "m2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"4", "1.25992", "400.00", "M3"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"11", "1.88775", "1100.00", "M7"}, strings.Fields(lines[12]))
}

// TestDegreesCommand_WithZero includes the reference pitch.
func TestDegreesCommand_WithZero(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "degrees", "harmonic:4", "--with-zero")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2+4)
	assert.Equal(t, "Harmonic series (4)", lines[0])
	assert.Equal(t, []string{"0", "1", "0.00", "-"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"3", "1.5", "701.96", "-"}, strings.Fields(lines[5]))
}

// TestDegreesCommand_Structured decodes the JSON and YAML forms.
func TestDegreesCommand_Structured(t *testing.T) {
	tests := []struct {
		name   string
		format string
		decode func([]byte, interface{}) error
	}{
		{name: "json", format: "json", decode: json.Unmarshal},
		{name: "yaml", format: "yaml", decode: yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			out, _, err := execute(t, "degrees", "hs8", "-o", tt.format)
			require.NoError(t, err)

			var got degreesResult
			require.NoError(t, tt.decode([]byte(out), &got))
			assert.Equal(t, "Harmonic series (8)", got.Temperament)
			assert.Equal(t, "harmonic", got.Kind)
			require.Len(t, got.Degrees, 7)
			assert.Equal(t, 5, got.Degrees[4].Degree)
			assert.Equal(t, 1.25, got.Degrees[4].Ratio)
			assert.InDelta(t, 386.3137, got.Degrees[4].Cents, 1e-4)
			assert.Empty(t, got.Degrees[4].Name)
		})
	}
}

// TestDegreesCommand_Errors covers argument validation.
func TestDegreesCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want model.ExitCode
	}{
		{name: "unknown token", args: []string{"degrees", "12tet"}, want: model.ExitInvalidInput},
		{name: "zero size", args: []string{"degrees", "0edo"}, want: model.ExitInvalidInput},
		{name: "harmonic zero size", args: []string{"degrees", "harmonic:0"}, want: model.ExitInvalidInput},
		{name: "size above limit", args: []string{"degrees", "4097edo"}, want: model.ExitInvalidInput},
		{name: "size near max int", args: []string{"degrees", "4611686018427387904edo"}, want: model.ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, _, err := execute(t, tt.args...)
			requireExitCode(t, err, tt.want)
		})
	}

	t.Run("missing argument", func(t *testing.T) {
		isolate(t)
		_, _, err := execute(t, "degrees")
		assert.Error(t, err)
	})
}
