package report

import (
	"fmt"
	"math"

	"github.com/shinji-kodama/edo-compare/internal/intervals"
	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/temperament"
)

// RatioDecimals is the number of decimal places ratios are displayed with.
const RatioDecimals = 5

// RoundRatio rounds a ratio to RatioDecimals places for display.
func RoundRatio(r float64) float64 {
	scale := math.Pow(10, RatioDecimals)
	return math.Round(r*scale) / scale
}

// RoundCents rounds a cents value to the nearest whole cent, halves away
// from zero (12.5 -> 13, -12.5 -> -13).
func RoundCents(c float64) int {
	return int(math.Round(c))
}

// Match is the nearest degree of one reference temperament.
type Match struct {
	// Reference is the reference temperament's display name.
	Reference string `json:"reference" yaml:"reference"`

	Degree int     `json:"degree" yaml:"degree"`
	Ratio  float64 `json:"ratio" yaml:"ratio"`

	// Raw is source ratio minus matched ratio.
	Raw float64 `json:"raw" yaml:"raw"`

	// Cents is 1200 * log2(source / matched). Positive means the source
	// degree is sharp of the match.
	Cents float64 `json:"cents" yaml:"cents"`

	RatioRounded float64 `json:"ratioRounded" yaml:"ratioRounded"`
	CentsRounded int     `json:"centsRounded" yaml:"centsRounded"`

	// Name and Abbrev are set only for 12-EDO references.
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Abbrev string `json:"abbrev,omitempty" yaml:"abbrev,omitempty"`
}

// Label is the text shown in the name line of the text table: the
// interval abbreviation when known, otherwise the matched degree number.
func (m Match) Label() string {
	if m.Abbrev != "" {
		return m.Abbrev
	}
	return fmt.Sprintf("%d", m.Degree)
}

// Row is one source degree and its matches, in reference order.
type Row struct {
	Degree       int     `json:"degree" yaml:"degree"`
	Ratio        float64 `json:"ratio" yaml:"ratio"`
	RatioRounded float64 `json:"ratioRounded" yaml:"ratioRounded"`
	Matches      []Match `json:"matches" yaml:"matches"`
}

// Summary aggregates the cents deviation of one reference across all rows.
type Summary struct {
	Reference    string  `json:"reference" yaml:"reference"`
	MeanAbsCents float64 `json:"meanAbsCents" yaml:"meanAbsCents"`
	MaxAbsCents  float64 `json:"maxAbsCents" yaml:"maxAbsCents"`

	// Exact counts matches with a zero raw difference.
	Exact int `json:"exact" yaml:"exact"`
}

// Report is the comparison of one source temperament against references.
type Report struct {
	Source     string    `json:"source" yaml:"source"`
	References []string  `json:"references" yaml:"references"`
	Rows       []Row     `json:"rows" yaml:"rows"`
	Summaries  []Summary `json:"summaries" yaml:"summaries"`
}

// Build compares every non-zero degree of source against each reference.
// It fails with temperament.ErrEmptyMatchTarget if any reference has no
// eligible degrees.
func Build(source *temperament.Temperament, refs ...*temperament.Temperament) (*Report, error) {
	r := &Report{
		Source:     source.Name(),
		References: make([]string, 0, len(refs)),
		Rows:       make([]Row, 0, source.Len()),
		Summaries:  make([]Summary, len(refs)),
	}
	for i, ref := range refs {
		r.References = append(r.References, ref.Name())
		r.Summaries[i].Reference = ref.Name()
	}

	for _, d := range source.Degrees(false) {
		row := Row{
			Degree:       d.Number,
			Ratio:        d.Ratio,
			RatioRounded: RoundRatio(d.Ratio),
			Matches:      make([]Match, 0, len(refs)),
		}
		for _, ref := range refs {
			m, err := match(d, ref)
			if err != nil {
				return nil, fmt.Errorf("comparing %s degree %d: %w", source.Name(), d.Number, err)
			}
			row.Matches = append(row.Matches, m)
		}
		r.Rows = append(r.Rows, row)
	}

	r.summarize()
	return r, nil
}

func match(d temperament.Degree, ref *temperament.Temperament) (Match, error) {
	closest, err := temperament.ClosestDegreeIn(d, ref)
	if err != nil {
		return Match{}, err
	}

	diff := d.Minus(closest)
	m := Match{
		Reference:    ref.Name(),
		Degree:       closest.Number,
		Ratio:        closest.Ratio,
		Raw:          diff.Raw(),
		Cents:        diff.Cents(),
		RatioRounded: RoundRatio(closest.Ratio),
		CentsRounded: RoundCents(diff.Cents()),
	}
	if ref.Kind() == model.KindEDO {
		if iv, ok := intervals.Lookup(ref.Len(), closest.Number); ok {
			m.Name = iv.FullName
			m.Abbrev = iv.Abbrev
		}
	}
	return m, nil
}

func (r *Report) summarize() {
	if len(r.Rows) == 0 {
		return
	}
	for i := range r.Summaries {
		s := &r.Summaries[i]
		var total float64
		for _, row := range r.Rows {
			m := row.Matches[i]
			abs := math.Abs(m.Cents)
			total += abs
			if abs > s.MaxAbsCents {
				s.MaxAbsCents = abs
			}
			if m.Raw == 0 {
				s.Exact++
			}
		}
		s.MeanAbsCents = total / float64(len(r.Rows))
	}
}
