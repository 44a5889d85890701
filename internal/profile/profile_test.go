package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

// writeFile creates a fixture file in a fresh temp directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_JSONC verifies comments and trailing commas are accepted.
func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "profile.jsonc", `{
  // compare the usual suspects
  "sources": ["15edo", "19edo"],
  /* references are matched in order */
  "references": ["12edo", "harmonic:32",],
  "output": "json",
  "cellWidth": 12,
}`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"15edo", "19edo"}, p.Sources)
	assert.Equal(t, []string{"12edo", "harmonic:32"}, p.References)
	assert.Equal(t, "json", p.Output)
	assert.Equal(t, 12, p.CellWidth)
	assert.Equal(t, path, p.Path)
}

// TestLoad_YAML verifies YAML profiles are selected by extension.
func TestLoad_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeFile(t, "profile"+ext, `
sources:
  - 22edo
references:
  - 12edo
  - hs16
`)
			p, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"22edo"}, p.Sources)
			assert.Equal(t, []string{"12edo", "hs16"}, p.References)
			assert.Empty(t, p.Output)
			assert.Zero(t, p.CellWidth)
		})
	}
}

// TestLoad_NotFound maps a missing file to ExitProfileNotFound.
func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitProfileNotFound, cliErr.Code)
}

// TestLoad_Invalid maps parse failures and unknown keys to ExitInvalidProfile.
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken json", "p.json", `{"sources": [`},
		{"unknown json key", "p.jsonc", `{"sources": ["12edo"], "refrences": ["hs8"]}`},
		{"unknown yaml key", "p.yaml", "sources: [12edo]\nrefrences: [hs8]\n"},
		{"wrong type", "p.json", `{"sources": "12edo"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitInvalidProfile, cliErr.Code)
		})
	}
}

// TestFind checks default file discovery order.
func TestFind(t *testing.T) {
	dir := t.TempDir()

	_, err := Find(dir)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".edo-compare.yaml"), []byte("sources: [12edo]\n"), 0o644))
	path, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".edo-compare.yaml"), path)

	// The JSONC name takes precedence when both exist.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".edo-compare.jsonc"), []byte("{}"), 0o644))
	path, err = Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".edo-compare.jsonc"), path)
}

// TestResolve parses tokens into specs.
func TestResolve(t *testing.T) {
	p := &Profile{Sources: []string{"15edo"}, References: []string{"12edo", "hs32"}}
	sources, refs, err := p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []model.TemperamentSpec{{Kind: model.KindEDO, Size: 15}}, sources)
	assert.Equal(t, []model.TemperamentSpec{
		{Kind: model.KindEDO, Size: 12},
		{Kind: model.KindHarmonic, Size: 32},
	}, refs)

	p.References = []string{"12edo", "nope"}
	_, _, err = p.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references")
}

// TestValidate lists every problem in a profile.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		p      Profile
		fields []string
	}{
		{
			name:   "valid",
			p:      Profile{Sources: []string{"15edo"}, References: []string{"12edo"}, Output: "yaml", CellWidth: 10},
			fields: nil,
		},
		{
			name:   "empty",
			p:      Profile{},
			fields: []string{"sources", "references"},
		},
		{
			name:   "bad tokens",
			p:      Profile{Sources: []string{"15edo", "0edo"}, References: []string{"bogus"}},
			fields: []string{"sources[1]", "references[0]"},
		},
		{
			name:   "bad output and width",
			p:      Profile{Sources: []string{"15edo"}, References: []string{"12edo"}, Output: "xml", CellWidth: 4},
			fields: []string{"output", "cellWidth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.p)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
				assert.Contains(t, e.Error(), e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}
