package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

// DefaultFileNames are searched, in order, by Find.
var DefaultFileNames = []string{
	".edo-compare.jsonc",
	".edo-compare.json",
	".edo-compare.yaml",
	".edo-compare.yml",
}

// ErrNotFound is returned by Find when no default profile exists.
var ErrNotFound = errors.New("no profile found")

// Profile is the parsed content of a profile file. Temperament fields hold
// raw tokens ("12edo", "harmonic:32"); Resolve turns them into specs.
type Profile struct {
	// Sources are the temperaments whose degrees are listed as columns.
	Sources []string `json:"sources" yaml:"sources"`

	// References are matched against every source degree, in order.
	References []string `json:"references" yaml:"references"`

	// Output is the output format (text, json, yaml). Optional.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// CellWidth is the text table column width. Optional; 0 means unset.
	CellWidth int `json:"cellWidth,omitempty" yaml:"cellWidth,omitempty"`

	// Path is the file the profile was read from.
	Path string `json:"-" yaml:"-"`
}

// Load reads a profile file. Files ending in .yaml or .yml are parsed as
// YAML; everything else is treated as JSONC, so comments and trailing
// commas are allowed.
//
// Returns a CLIError with ExitProfileNotFound if the file does not exist
// and ExitInvalidProfile if it cannot be parsed.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitProfileNotFound,
				fmt.Sprintf("profile not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	p, err := Parse(data, formatFor(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidProfile,
			fmt.Sprintf("failed to parse profile %s", path),
			err,
		)
	}
	p.Path = path
	return p, nil
}

// Format is the serialization of a profile file.
type Format int

const (
	// FormatJSONC is JSON with comments and trailing commas.
	FormatJSONC Format = iota

	// FormatYAML is a YAML document.
	FormatYAML
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSONC
	}
}

// Parse decodes profile data in the given format. Unknown fields are
// rejected so that typos such as "refrences" do not go unnoticed.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Find returns the path of the first DefaultFileNames entry present in
// dir, or ErrNotFound.
func Find(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// Resolve parses the profile's temperament tokens.
func (p *Profile) Resolve() (sources, references []model.TemperamentSpec, err error) {
	sources, err = model.ParseTemperamentSpecs(p.Sources)
	if err != nil {
		return nil, nil, fmt.Errorf("sources: %w", err)
	}
	references, err = model.ParseTemperamentSpecs(p.References)
	if err != nil {
		return nil, nil, fmt.Errorf("references: %w", err)
	}
	return sources, references, nil
}
