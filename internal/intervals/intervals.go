// Package intervals holds the conventional interval names for 12-EDO
// degrees. It is a static lookup table; other tunings have no names.
package intervals

// NoName is the placeholder rendered when a degree has no conventional name.
const NoName = "-"

// Interval is the conventional name of a 12-EDO degree.
type Interval struct {
	Degree   int    `json:"degree" yaml:"degree"`
	FullName string `json:"fullName" yaml:"fullName"`
	Abbrev   string `json:"abbrev" yaml:"abbrev"`
}

// names is keyed by EDO size, then degree number.
var names = map[int]map[int]Interval{
	12: {
		0:  {0, "unison", "P1"},
		1:  {1, "minor second", "m2"},
		2:  {2, "major second", "M2"},
		3:  {3, "minor third", "m3"},
		4:  {4, "major third", "M3"},
		5:  {5, "perfect fourth", "P4"},
		6:  {6, "tritone", "d5"},
		7:  {7, "perfect fifth", "P5"},
		8:  {8, "minor sixth", "m6"},
		9:  {9, "major sixth", "M6"},
		10: {10, "minor seventh", "m7"},
		11: {11, "major seventh", "M7"},
	},
}

// Lookup returns the name of degree in an edo-note equal temperament.
// ok is false when the EDO has no name table or the degree is out of
// range; it never panics.
func Lookup(edo, degree int) (Interval, bool) {
	table, ok := names[edo]
	if !ok {
		return Interval{}, false
	}
	iv, ok := table[degree]
	return iv, ok
}

// All returns the 12-EDO table in degree order.
func All() []Interval {
	table := names[12]
	out := make([]Interval, 0, len(table))
	for i := 0; i < len(table); i++ {
		out = append(out, table[i])
	}
	return out
}
