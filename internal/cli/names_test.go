package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/edo-compare/internal/intervals"
)

// TestNamesCommand_Text checks the interval table.
func TestNamesCommand_Text(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "names")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+12)
	assert.Equal(t, []string{"DEGREE", "ABBREV", "NAME"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "P1", "unison"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"7", "P5", "perfect", "fifth"}, strings.Fields(lines[8]))
}

// TestNamesCommand_YAML decodes the structured form.
func TestNamesCommand_YAML(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "names", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		Intervals []intervals.Interval `yaml:"intervals"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, intervals.All(), got.Intervals)
}

// TestNamesCommand_RejectsArgs verifies that names takes no arguments.
func TestNamesCommand_RejectsArgs(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "names", "12edo")
	assert.Error(t, err)
}
