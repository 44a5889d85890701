// Package cli: compare.go implements the "edo-compare compare" command.
//
// The compare command builds one report per source temperament, matching
// every non-zero source degree against each reference temperament.
//
// Settings are resolved in this order (first wins):
//  1. command-line arguments and flags
//  2. the profile file (--profile, or a default profile in the working directory)
//  3. EDOCMP_* environment variables / .env
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/profile"
	"github.com/shinji-kodama/edo-compare/internal/report"
	"github.com/shinji-kodama/edo-compare/internal/temperament"
)

// compareFlags holds the flag values for the compare command.
type compareFlags struct {
	refs        []string // --ref: reference temperaments
	profilePath string   // --profile: profile file
	noProfile   bool     // --no-profile: skip default profile discovery
	cellWidth   int      // --cell-width: text column width
}

// NewCompareCommand creates the "compare" cobra command.
func NewCompareCommand() *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare [source...]",
		Short: "Compare temperaments degree by degree",
		Long: `Compare each degree of one or more source temperaments with the closest
degree of every reference temperament. Differences are shown in cents;
a positive value means the source degree is sharp of its match.

Degree 0 (the unison) is never listed or matched. When two reference
degrees are equally close, the lower degree number is reported.

Examples:
  edo-compare compare 15edo
  edo-compare compare 19edo 22edo --ref 12edo --ref harmonic:32
  edo-compare compare --profile tunings.jsonc -o yaml`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.refs, "ref", "r", nil, "Reference temperament (repeatable, default: 12edo,harmonic:32)")
	cmd.Flags().StringVarP(&flags.profilePath, "profile", "p", "", "Profile file (JSONC or YAML)")
	cmd.Flags().BoolVar(&flags.noProfile, "no-profile", false, "Do not look for a default profile in the working directory")
	cmd.Flags().IntVarP(&flags.cellWidth, "cell-width", "w", report.DefaultCellWidth, "Column width of the text table")

	return cmd
}

// compareSettings is the fully resolved input of a compare run.
type compareSettings struct {
	sources    []model.TemperamentSpec
	references []model.TemperamentSpec
	format     model.OutputFormat
	cellWidth  int
}

// runCompare resolves settings, builds the reports and writes them.
func runCompare(cmd *cobra.Command, args []string, flags *compareFlags) error {
	prof, err := loadProfile(flags)
	if err != nil {
		return err
	}

	settings, err := resolveCompareSettings(cmd, args, flags, prof)
	if err != nil {
		return err
	}
	// Later errors are reported in the same format as the reports.
	outputFormat = settings.format

	if settings.format != model.OutputText && cmd.Flags().Changed("cell-width") {
		logger.Warn("--cell-width only applies to text output", "output", settings.format)
	}
	VerboseLog("compare settings resolved",
		"sources", len(settings.sources),
		"references", len(settings.references),
		"format", settings.format)

	reports, err := buildReports(settings)
	if err != nil {
		return err
	}

	return writeReports(cmd.OutOrStdout(), reports, settings)
}

// loadProfile returns the explicit --profile, a discovered default
// profile, or nil. A discovered profile must be valid just like an
// explicit one.
func loadProfile(flags *compareFlags) (*profile.Profile, error) {
	path := flags.profilePath
	if path == "" && !flags.noProfile {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		found, err := profile.Find(cwd)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		path = found
	}
	if path == "" {
		return nil, nil
	}

	prof, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	VerboseLog("profile loaded", "path", path)

	if errs := profile.Validate(prof); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for i := range errs {
			msgs = append(msgs, errs[i].Error())
		}
		return nil, model.WrapCLIError(model.ExitInvalidProfile,
			fmt.Sprintf("invalid profile %s", path),
			errors.New(strings.Join(msgs, "; ")))
	}
	return prof, nil
}

// resolveCompareSettings merges arguments, flags, profile and environment.
func resolveCompareSettings(cmd *cobra.Command, args []string, flags *compareFlags, prof *profile.Profile) (*compareSettings, error) {
	sources, err := model.ParseTemperamentSpecs(envCfg.Sources)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidInput, "invalid source temperament", err)
	}
	references, err := model.ParseTemperamentSpecs(envCfg.References)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidInput, "invalid reference temperament", err)
	}
	cellWidth := envCfg.CellWidth
	format := outputFormat

	if prof != nil {
		profSources, profRefs, err := prof.Resolve()
		if err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidProfile, fmt.Sprintf("invalid profile %s", prof.Path), err)
		}
		if len(profSources) > 0 {
			sources = profSources
		}
		if len(profRefs) > 0 {
			references = profRefs
		}
		if prof.CellWidth != 0 {
			cellWidth = prof.CellWidth
		}
		if prof.Output != "" && !cmd.Flags().Changed("output") {
			// Validate has already checked the value.
			format, _ = model.ParseOutputFormat(prof.Output)
		}
	}

	if len(args) > 0 {
		if sources, err = model.ParseTemperamentSpecs(args); err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidInput, "invalid source temperament", err)
		}
	}
	if cmd.Flags().Changed("ref") {
		if references, err = model.ParseTemperamentSpecs(flags.refs); err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidInput, "invalid reference temperament", err)
		}
	}
	if cmd.Flags().Changed("cell-width") {
		cellWidth = flags.cellWidth
	}

	if len(sources) == 0 {
		return nil, model.NewCLIError(model.ExitInvalidInput, "no source temperament given")
	}
	if len(references) == 0 {
		return nil, model.NewCLIError(model.ExitInvalidInput, "no reference temperament given")
	}
	if cellWidth < report.MinCellWidth {
		return nil, model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("cell width must be at least %d, got %d", report.MinCellWidth, cellWidth))
	}

	return &compareSettings{
		sources:    sources,
		references: references,
		format:     format,
		cellWidth:  cellWidth,
	}, nil
}

// buildReports generates every temperament once and compares each source
// against all references.
func buildReports(s *compareSettings) ([]*report.Report, error) {
	refs := make([]*temperament.Temperament, 0, len(s.references))
	for _, spec := range s.references {
		t, err := buildTemperament(spec)
		if err != nil {
			return nil, err
		}
		refs = append(refs, t)
	}

	reports := make([]*report.Report, 0, len(s.sources))
	for _, spec := range s.sources {
		src, err := buildTemperament(spec)
		if err != nil {
			return nil, err
		}

		r, err := report.Build(src, refs...)
		if err != nil {
			return nil, domainError(fmt.Sprintf("cannot compare %s", spec), err)
		}
		VerboseLog("report built", "source", r.Source, "rows", len(r.Rows))
		reports = append(reports, r)
	}
	return reports, nil
}

// writeReports renders the reports in the resolved format.
func writeReports(w io.Writer, reports []*report.Report, s *compareSettings) error {
	switch s.format {
	case model.OutputJSON:
		return report.RenderJSON(w, reports)
	case model.OutputYAML:
		return report.RenderYAML(w, reports)
	default:
		return report.RenderText(w, reports, s.cellWidth)
	}
}
