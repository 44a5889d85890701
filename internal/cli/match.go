// Package cli: match.go implements the "edo-compare match" command.
//
// The match command finds the degree of a temperament closest to an
// arbitrary frequency ratio. EDO targets are searched through the raw
// tone-index mapping; harmonic targets through their degrees.
package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/edo-compare/internal/intervals"
	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/report"
	"github.com/shinji-kodama/edo-compare/internal/temperament"
)

// errInvalidRatio is returned by ParseRatio for malformed input.
var errInvalidRatio = errors.New("invalid ratio")

// matchFlags holds the flag values for the match command.
type matchFlags struct {
	target string // --in: temperament to search
}

// NewMatchCommand creates the "match" cobra command.
func NewMatchCommand() *cobra.Command {
	flags := &matchFlags{}

	cmd := &cobra.Command{
		Use:   "match <ratio>",
		Short: "Find the closest degree to a ratio",
		Long: `Find the non-zero degree of a temperament whose ratio is closest to the
given one. The ratio may be a decimal (1.25), a fraction (5/4) or a size
in cents with a "c" suffix (386.3c).

Examples:
  edo-compare match 5/4
  edo-compare match 1.5 --in 19edo
  edo-compare match 702c --in harmonic:32 -o json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.target, "in", "12edo", "Temperament to search")

	return cmd
}

// matchResult is the output of the match command.
type matchResult struct {
	Input       string  `json:"input" yaml:"input"`
	Ratio       float64 `json:"ratio" yaml:"ratio"`
	Temperament string  `json:"temperament" yaml:"temperament"`
	Degree      int     `json:"degree" yaml:"degree"`
	MatchRatio  float64 `json:"matchRatio" yaml:"matchRatio"`
	Cents       float64 `json:"cents" yaml:"cents"`
	Name        string  `json:"name,omitempty" yaml:"name,omitempty"`
}

// runMatch parses the ratio, searches the target and prints the result.
func runMatch(cmd *cobra.Command, input string, flags *matchFlags) error {
	ratio, err := ParseRatio(input)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid ratio argument", err)
	}

	spec, err := parseSpecArg(flags.target)
	if err != nil {
		return err
	}

	result, err := findMatch(ratio, spec)
	if err != nil {
		return err
	}
	result.Input = input
	VerboseLog("match found", "ratio", ratio, "temperament", result.Temperament, "degree", result.Degree)

	w := cmd.OutOrStdout()
	if outputFormat == model.OutputText {
		return printMatchText(w, result)
	}
	return writeStructured(w, outputFormat, result)
}

// findMatch searches spec's temperament for the degree closest to ratio.
func findMatch(ratio float64, spec model.TemperamentSpec) (*matchResult, error) {
	source := temperament.Degree{Number: 0, Ratio: ratio}
	var best temperament.Degree

	switch spec.Kind {
	case model.KindEDO:
		ratios, err := temperament.EDORatios(spec.Size)
		if err != nil {
			return nil, domainError(fmt.Sprintf("failed to build %s", spec), err)
		}
		n, r, err := temperament.ClosestRatio(ratio, ratios)
		if err != nil {
			return nil, domainError(fmt.Sprintf("cannot match in %s", spec), err)
		}
		best = temperament.Degree{Number: n, Ratio: r}
	default:
		t, err := buildTemperament(spec)
		if err != nil {
			return nil, err
		}
		best, err = temperament.ClosestDegreeIn(source, t)
		if err != nil {
			return nil, domainError(fmt.Sprintf("cannot match in %s", spec), err)
		}
	}

	result := &matchResult{
		Ratio:       ratio,
		Temperament: spec.DisplayName(),
		Degree:      best.Number,
		MatchRatio:  best.Ratio,
		Cents:       source.Minus(best).Cents(),
	}
	if spec.Kind == model.KindEDO {
		if iv, ok := intervals.Lookup(spec.Size, best.Number); ok {
			result.Name = iv.FullName
		}
	}
	return result, nil
}

// printMatchText outputs a one-line summary, e.g.
//
//	5/4 -> 12-EDO degree 4 (1.25992, major third): -14 cents
func printMatchText(w io.Writer, r *matchResult) error {
	label := report.FormatRatio(r.MatchRatio)
	if r.Name != "" {
		label += ", " + r.Name
	}
	_, err := fmt.Fprintf(w, "%s -> %s degree %d (%s): %+d cents\n",
		r.Input, r.Temperament, r.Degree, label, report.RoundCents(r.Cents))
	return err
}

// ParseRatio converts a decimal ("1.5"), fraction ("3/2") or cents value
// ("701.955c") into a frequency ratio. The result is always positive.
func ParseRatio(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", errInvalidRatio)
	}

	var ratio float64
	switch {
	case strings.HasSuffix(s, "c"):
		cents, err := strconv.ParseFloat(strings.TrimSuffix(s, "c"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errInvalidRatio, s)
		}
		ratio = math.Exp2(cents / temperament.CentsPerOctave)
	case strings.Contains(s, "/"):
		num, den, _ := strings.Cut(s, "/")
		a, errA := strconv.ParseFloat(strings.TrimSpace(num), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errA != nil || errB != nil {
			return 0, fmt.Errorf("%w: %q", errInvalidRatio, s)
		}
		if b == 0 {
			return 0, fmt.Errorf("%w: %q has a zero denominator", errInvalidRatio, s)
		}
		ratio = a / b
	default:
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errInvalidRatio, s)
		}
		ratio = r
	}

	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("%w: %q must be a positive finite number", errInvalidRatio, s)
	}
	return ratio, nil
}
