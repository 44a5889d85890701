// Package cli: degrees.go implements the "edo-compare degrees" command.
//
// The degrees command lists every degree of a single temperament with its
// frequency ratio and its size in cents above the reference pitch.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/edo-compare/internal/intervals"
	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/report"
	"github.com/shinji-kodama/edo-compare/internal/temperament"
)

// degreesFlags holds the flag values for the degrees command.
type degreesFlags struct {
	withZero bool // --with-zero: include the reference pitch
}

// NewDegreesCommand creates the "degrees" cobra command.
func NewDegreesCommand() *cobra.Command {
	flags := &degreesFlags{}

	cmd := &cobra.Command{
		Use:   "degrees <temperament>",
		Short: "List the degrees of a temperament",
		Long: `List the degrees of an EDO or harmonic-series temperament in ascending
order, with their frequency ratio and size in cents. Degree 0, the
reference pitch, is omitted unless --with-zero is given.

Examples:
  edo-compare degrees 12edo
  edo-compare degrees harmonic:16 --with-zero
  edo-compare degrees 31edo -o json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDegrees(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.withZero, "with-zero", false, "Include degree 0 (ratio 1.0)")

	return cmd
}

// runDegrees builds the temperament and prints its degrees.
func runDegrees(cmd *cobra.Command, token string, flags *degreesFlags) error {
	spec, err := parseSpecArg(token)
	if err != nil {
		return err
	}

	t, err := buildTemperament(spec)
	if err != nil {
		return err
	}
	VerboseLog("temperament built", "name", t.Name(), "degrees", t.Len())

	result := newDegreesResult(spec, t, flags.withZero)

	w := cmd.OutOrStdout()
	if outputFormat == model.OutputText {
		return printDegreesText(w, result)
	}
	return writeStructured(w, outputFormat, result)
}

// degreesResult is the JSON/YAML output of the degrees command.
type degreesResult struct {
	Temperament string        `json:"temperament" yaml:"temperament"`
	Kind        string        `json:"kind" yaml:"kind"`
	Degrees     []degreeEntry `json:"degrees" yaml:"degrees"`
}

// degreeEntry is one degree in degreesResult. Name is only set for
// 12-EDO.
type degreeEntry struct {
	Degree int     `json:"degree" yaml:"degree"`
	Ratio  float64 `json:"ratio" yaml:"ratio"`
	Cents  float64 `json:"cents" yaml:"cents"`
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
}

// newDegreesResult projects t into the output structure.
func newDegreesResult(spec model.TemperamentSpec, t *temperament.Temperament, withZero bool) degreesResult {
	degrees := t.Degrees(withZero)
	result := degreesResult{
		Temperament: t.Name(),
		Kind:        spec.Kind.String(),
		Degrees:     make([]degreeEntry, 0, len(degrees)),
	}

	for _, d := range degrees {
		entry := degreeEntry{
			Degree: d.Number,
			Ratio:  d.Ratio,
			Cents:  d.Cents(),
		}
		if spec.Kind == model.KindEDO {
			if iv, ok := intervals.Lookup(spec.Size, d.Number); ok {
				entry.Name = iv.Abbrev
			}
		}
		result.Degrees = append(result.Degrees, entry)
	}
	return result
}

// printDegreesText outputs the degrees as an aligned table:
//
//	DEGREE  RATIO      CENTS     NAME
//	1       1.05946    100.00    m2
//	2       1.12246    200.00    M2
func printDegreesText(w io.Writer, result degreesResult) error {
	fmt.Fprintf(w, "%s\n", result.Temperament)

	if len(result.Degrees) == 0 {
		fmt.Fprintln(w, "No degrees.")
		return nil
	}

	fmt.Fprintf(w, "%-7s %-10s %-9s %s\n", "DEGREE", "RATIO", "CENTS", "NAME")
	for _, d := range result.Degrees {
		name := d.Name
		if name == "" {
			name = intervals.NoName
		}
		if _, err := fmt.Fprintf(w, "%-7d %-10s %-9.2f %s\n",
			d.Degree,
			report.FormatRatio(d.Ratio),
			d.Cents,
			name,
		); err != nil {
			return err
		}
	}
	return nil
}
