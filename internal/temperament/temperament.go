package temperament

import (
	"sort"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

// Temperament is an immutable set of degrees keyed by degree number.
// Degree numbers are unique; they need not be contiguous, although the
// generators always produce 0..N-1.
type Temperament struct {
	name string
	kind model.TemperamentKind

	byNumber map[int]Degree

	// ordered holds the degrees sorted by number, including degree 0.
	ordered []Degree
}

// New builds a custom temperament from caller-supplied degrees. When two
// degrees share a number the later one wins.
func New(name string, degrees []Degree) *Temperament {
	return newTemperament(name, model.KindCustom, degrees)
}

func newTemperament(name string, kind model.TemperamentKind, degrees []Degree) *Temperament {
	byNumber := make(map[int]Degree, len(degrees))
	for _, d := range degrees {
		byNumber[d.Number] = d
	}

	ordered := make([]Degree, 0, len(byNumber))
	for _, d := range byNumber {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	return &Temperament{
		name:     name,
		kind:     kind,
		byNumber: byNumber,
		ordered:  ordered,
	}
}

// Name returns the display name, e.g. "12-EDO".
func (t *Temperament) Name() string {
	return t.name
}

// Kind returns the generator kind, or model.KindCustom for New.
func (t *Temperament) Kind() model.TemperamentKind {
	return t.kind
}

// Len returns the number of degrees, including degree 0.
func (t *Temperament) Len() int {
	return len(t.ordered)
}

// Degree looks up a degree by number.
func (t *Temperament) Degree(number int) (Degree, bool) {
	d, ok := t.byNumber[number]
	return d, ok
}

// Degrees returns the degrees in ascending degree-number order. Degree 0
// is left out unless withZero is set, since the unison is rarely a
// meaningful match target. The returned slice is a copy.
func (t *Temperament) Degrees(withZero bool) []Degree {
	out := make([]Degree, 0, len(t.ordered))
	for _, d := range t.ordered {
		if d.Number == 0 && !withZero {
			continue
		}
		out = append(out, d)
	}
	return out
}
