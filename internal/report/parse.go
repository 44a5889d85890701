package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseText reads tables written by RenderText. Rule lines start a new
// table ('+') or a new reference section ('-'); the remaining lines are
// matched by their label. Blank lines are ignored.
func ParseText(rd io.Reader) ([]*Table, error) {
	var (
		tables  []*Table
		current *Table
		section *Section
	)

	sc := bufio.NewScanner(rd)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		// Temperament names may contain the separator; cells never do.
		sep := strings.LastIndex(text, labelSeparator)
		if sep < 0 {
			return nil, fmt.Errorf("line %d: missing %q separator", lineNo, strings.TrimSpace(labelSeparator))
		}
		label := strings.TrimSpace(text[:sep])
		cells := text[sep+len(labelSeparator):]
		fields := strings.Fields(cells)

		switch {
		case isRule(fields, sourceRule):
			current = &Table{Source: label}
			section = nil
			tables = append(tables, current)
			continue
		case isRule(fields, referenceRule):
			if current == nil {
				return nil, fmt.Errorf("line %d: reference section before source header", lineNo)
			}
			current.Sections = append(current.Sections, Section{Reference: label})
			section = &current.Sections[len(current.Sections)-1]
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: %q row before source header", lineNo, label)
		}

		var err error
		switch {
		case label == labelDegree && section == nil:
			current.Degrees, err = parseInts(fields)
		case label == labelRatio && section == nil:
			current.Ratios, err = parseFloats(fields)
		case label == labelRatio:
			section.Ratios, err = parseFloats(fields)
		case label == labelName && section != nil:
			section.Labels = fields
		case label == labelCents && section != nil:
			section.Cents, err = parseInts(fields)
		default:
			err = fmt.Errorf("unexpected row %q", label)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

// isRule reports whether fields is a single run of ch.
func isRule(fields []string, ch string) bool {
	return len(fields) == 1 && strings.Trim(fields[0], ch) == ""
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
