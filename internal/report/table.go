package report

// Table is the display projection of a Report: exactly the values that
// appear in the text rendering, already rounded.
type Table struct {
	Source   string
	Degrees  []int
	Ratios   []float64
	Sections []Section
}

// Section holds the text lines of one reference temperament.
type Section struct {
	Reference string
	Ratios    []float64
	Labels    []string
	Cents     []int
}

// Table projects the report onto its rounded display values.
func (r *Report) Table() *Table {
	t := &Table{
		Source:   r.Source,
		Degrees:  make([]int, 0, len(r.Rows)),
		Ratios:   make([]float64, 0, len(r.Rows)),
		Sections: make([]Section, len(r.References)),
	}
	for i, name := range r.References {
		t.Sections[i] = Section{
			Reference: name,
			Ratios:    make([]float64, 0, len(r.Rows)),
			Labels:    make([]string, 0, len(r.Rows)),
			Cents:     make([]int, 0, len(r.Rows)),
		}
	}

	for _, row := range r.Rows {
		t.Degrees = append(t.Degrees, row.Degree)
		t.Ratios = append(t.Ratios, row.RatioRounded)
		for i, m := range row.Matches {
			sec := &t.Sections[i]
			sec.Ratios = append(sec.Ratios, m.RatioRounded)
			sec.Labels = append(sec.Labels, m.Label())
			sec.Cents = append(sec.Cents, m.CentsRounded)
		}
	}
	return t
}
