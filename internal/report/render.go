package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCellWidth is the width of one degree column in the text table.
	DefaultCellWidth = 15

	// MinCellWidth keeps at least one space between adjacent cells so the
	// text table can be parsed back.
	MinCellWidth = 8

	// labelSeparator divides the row label from the cells.
	labelSeparator = " |"

	sourceRule    = "+"
	referenceRule = "-"
)

// Row labels of the text table.
const (
	labelDegree = "degree"
	labelRatio  = "ratio"
	labelName   = "name"
	labelCents  = "cents"
)

// FormatRatio renders a ratio rounded to RatioDecimals places using the
// shortest representation, so "1.0" prints as "1" and "1.25" as "1.25".
func FormatRatio(r float64) string {
	return strconv.FormatFloat(RoundRatio(r), 'f', -1, 64)
}

// RenderText writes each report as a wide table with one right-aligned
// column per source degree:
//
//	15-EDO  |+++++++++++++++++++++++++++++++...
//	degree  |              1              2
//	ratio   |        1.04729        1.09681
//	12-EDO  |-------------------------------...
//	ratio   |        1.05946        1.12246
//	name    |             m2             M2
//	cents   |            -20             -40
//
// Reports are separated by a blank line.
func RenderText(w io.Writer, reports []*Report, cellWidth int) error {
	if cellWidth < MinCellWidth {
		return fmt.Errorf("cell width %d is below the minimum of %d", cellWidth, MinCellWidth)
	}

	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderTable(w, r.Table(), cellWidth); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, t *Table, cellWidth int) error {
	labelWidth := len(labelDegree)
	for _, name := range append([]string{t.Source}, referenceNames(t)...) {
		if len(name) > labelWidth {
			labelWidth = len(name)
		}
	}

	var b strings.Builder
	line := func(label string, cells []string) {
		fmt.Fprintf(&b, "%-*s%s", labelWidth, label, labelSeparator)
		for _, c := range cells {
			fmt.Fprintf(&b, "%*s", cellWidth, c)
		}
		b.WriteByte('\n')
	}
	// A table without degrees still gets one cell of rule so the header
	// survives a round trip through ParseText.
	ruleCells := len(t.Degrees)
	if ruleCells == 0 {
		ruleCells = 1
	}
	rule := func(label, ch string) {
		fmt.Fprintf(&b, "%-*s%s%s\n", labelWidth, label, labelSeparator,
			strings.Repeat(ch, cellWidth*ruleCells))
	}

	rule(t.Source, sourceRule)
	line(labelDegree, intCells(t.Degrees))
	line(labelRatio, ratioCells(t.Ratios))

	for _, sec := range t.Sections {
		rule(sec.Reference, referenceRule)
		line(labelRatio, ratioCells(sec.Ratios))
		line(labelName, sec.Labels)
		line(labelCents, intCells(sec.Cents))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func referenceNames(t *Table) []string {
	names := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		names = append(names, s.Reference)
	}
	return names
}

func intCells(vals []int) []string {
	cells := make([]string, 0, len(vals))
	for _, v := range vals {
		cells = append(cells, strconv.Itoa(v))
	}
	return cells
}

func ratioCells(vals []float64) []string {
	cells := make([]string, 0, len(vals))
	for _, v := range vals {
		cells = append(cells, FormatRatio(v))
	}
	return cells
}

// document is the top-level JSON/YAML shape.
type document struct {
	Reports []*Report `json:"reports" yaml:"reports"`
}

// RenderJSON writes the reports as indented JSON under a "reports" key.
func RenderJSON(w io.Writer, reports []*Report) error {
	data, err := json.MarshalIndent(document{Reports: nonNil(reports)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderYAML writes the same document as RenderJSON in YAML form.
func RenderYAML(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Reports: nonNil(reports)}); err != nil {
		return fmt.Errorf("failed to marshal report YAML: %w", err)
	}
	return enc.Close()
}

// nonNil makes an empty result encode as [] rather than null.
func nonNil(reports []*Report) []*Report {
	if reports == nil {
		return []*Report{}
	}
	return reports
}
