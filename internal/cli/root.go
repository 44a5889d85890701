// Package cli implements the cobra-based CLI commands for edo-compare.
//
// Each subcommand (compare, degrees, match, names) is defined in its own
// file within this package. This file defines the root command that serves
// as the parent for all subcommands and handles global flags, environment
// configuration and logging setup.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/edo-compare/internal/config"
	"github.com/shinji-kodama/edo-compare/internal/log"
	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/temperament"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// outputFlag is the raw --output value. It only wins over the
	// environment and profile when the user actually set it.
	outputFlag string

	// verbose forces DEBUG logging to stderr.
	verbose bool

	// envFile is the optional .env file loaded before the environment.
	envFile string
)

// State resolved in PersistentPreRunE and read by subcommands.
var (
	envCfg       config.EnvConfig
	outputFormat = model.OutputText
	logger       = log.Discard()
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action; it provides help
// text and global flags. Actual functionality is provided by subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "edo-compare",
		Short: "Compare equal temperaments and the harmonic series",
		Long: `edo-compare builds tuning systems from equal divisions of the octave (EDO)
or from the harmonic series, and reports how closely each degree of one
system matches the degrees of another, in cents.

Temperaments are named with short tokens: 12edo, edo:19, harmonic:32, hs16.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them as text or JSON based on --output.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load EDOCMP_* settings from this .env file (default: ./.env if present)")

	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewDegreesCommand())
	rootCmd.AddCommand(NewMatchCommand())
	rootCmd.AddCommand(NewNamesCommand())

	return rootCmd
}

// setup loads environment configuration, creates the logger and resolves
// the output format. Flag values take precedence over the environment.
func setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid configuration", err)
	}
	envCfg = cfg

	level := cfg.LogLevel
	if verbose {
		level = "DEBUG"
	}
	logger = log.NewLoggerWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, level).With("command", cmd.Name())

	outputFormat = cfg.OutputFormat()
	if cmd.Flags().Changed("output") {
		f, err := model.ParseOutputFormat(outputFlag)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, "invalid --output", err)
		}
		outputFormat = f
	}

	VerboseLog("configuration loaded", "output", outputFormat, "cell_width", cfg.CellWidth)
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the resolved output format.
// JSON and YAML errors share one shape:
//
//	error:
//	  message: invalid ratio argument
//	  detail: zero denominator
//
// The format is the one known when the error occurred: --output or
// EDOCMP_OUTPUT, or a profile's output once compare has loaded it.
func printError(w io.Writer, message string, underlying error) {
	errMap := map[string]interface{}{
		"message": message,
	}
	if underlying != nil {
		errMap["detail"] = underlying.Error()
	}
	errObj := map[string]interface{}{"error": errMap}

	switch outputFormat {
	case model.OutputJSON:
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	case model.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		_ = enc.Encode(errObj)
		_ = enc.Close()
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog writes a debug record. It is shown when --verbose is set or
// EDOCMP_LOG_LEVEL=DEBUG.
func VerboseLog(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// domainError translates temperament errors into CLIErrors with the
// matching exit code.
func domainError(message string, err error) error {
	switch {
	case errors.Is(err, temperament.ErrEmptyMatchTarget):
		return model.WrapCLIError(model.ExitEmptyMatchTarget, message, err)
	case errors.Is(err, temperament.ErrInvalidDegreeCount),
		errors.Is(err, temperament.ErrUndefinedPowerOfTwo):
		return model.WrapCLIError(model.ExitInvalidInput, message, err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, message, err)
	}
}

// buildTemperament generates the temperament for spec, reusing the shared
// 12-EDO reference.
func buildTemperament(spec model.TemperamentSpec) (*temperament.Temperament, error) {
	if spec == (model.TemperamentSpec{Kind: model.KindEDO, Size: 12}) {
		return temperament.TwelveEDO(), nil
	}
	t, err := temperament.Build(spec)
	if err != nil {
		return nil, domainError(fmt.Sprintf("failed to build %s", spec), err)
	}
	return t, nil
}

// parseSpecArg parses a temperament token from the command line.
func parseSpecArg(token string) (model.TemperamentSpec, error) {
	spec, err := model.ParseTemperamentSpec(token)
	if err != nil {
		return model.TemperamentSpec{}, model.WrapCLIError(model.ExitInvalidInput, "invalid temperament", err)
	}
	return spec, nil
}
