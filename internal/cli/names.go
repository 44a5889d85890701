// Package cli: names.go implements the "edo-compare names" command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/edo-compare/internal/intervals"
	"github.com/shinji-kodama/edo-compare/internal/model"
)

// NewNamesCommand creates the "names" cobra command.
func NewNamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print the 12-EDO interval names",
		Long: `Print the conventional interval name and abbreviation of every 12-EDO
degree. These names label 12-EDO matches in compare reports.

Examples:
  edo-compare names
  edo-compare names -o yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(cmd)
		},
	}
}

// runNames prints the interval table.
func runNames(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	all := intervals.All()

	if outputFormat != model.OutputText {
		return writeStructured(w, outputFormat, struct {
			Intervals []intervals.Interval `json:"intervals" yaml:"intervals"`
		}{all})
	}
	return printNamesText(w, all)
}

// printNamesText outputs the table:
//
//	DEGREE  ABBREV  NAME
//	0       P1      unison
func printNamesText(w io.Writer, all []intervals.Interval) error {
	fmt.Fprintf(w, "%-7s %-7s %s\n", "DEGREE", "ABBREV", "NAME")
	for _, iv := range all {
		if _, err := fmt.Fprintf(w, "%-7d %-7s %s\n", iv.Degree, iv.Abbrev, iv.FullName); err != nil {
			return err
		}
	}
	return nil
}
