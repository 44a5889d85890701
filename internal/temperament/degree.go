package temperament

import (
	"fmt"
	"math"
)

// CentsPerOctave is the size of the octave (ratio 2:1) in cents.
const CentsPerOctave = 1200

// Degree is a single pitch within a temperament: its index and its
// frequency ratio relative to degree 0.
type Degree struct {
	// Number is the index of the degree within its temperament.
	// 0 is the reference pitch.
	Number int `json:"degree" yaml:"degree"`

	// Ratio is the frequency ratio from degree 0. Always positive.
	Ratio float64 `json:"ratio" yaml:"ratio"`
}

// Minus returns the pitch difference from other to d. The sign of Raw and
// Cents depends on operand order; the magnitude used for matching does not.
func (d Degree) Minus(other Degree) PitchDifference {
	return PitchDifference{A: d, B: other}
}

// Cents returns the size of the degree above degree 0 in cents.
func (d Degree) Cents() float64 {
	return CentsPerOctave * math.Log2(d.Ratio)
}

// String renders the degree as "(n , ratio)".
func (d Degree) String() string {
	return fmt.Sprintf("(%-2d, %f)", d.Number, d.Ratio)
}

// PitchDifference is the computed relation between two degrees. It is a
// transient value and copies the degrees it compares.
type PitchDifference struct {
	A Degree
	B Degree
}

// Raw is the plain ratio difference A - B.
func (p PitchDifference) Raw() float64 {
	return p.A.Ratio - p.B.Ratio
}

// Cents is the logarithmic difference 1200 * log2(A / B).
func (p PitchDifference) Cents() float64 {
	return CentsPerOctave * math.Log2(p.A.Ratio/p.B.Ratio)
}

// Magnitude is |Raw()|, the quantity minimized by nearest-match search.
func (p PitchDifference) Magnitude() float64 {
	return math.Abs(p.Raw())
}

// Compare orders two differences by magnitude. It returns -1 if p is
// closer than other, +1 if farther and 0 if they are equally close.
func (p PitchDifference) Compare(other PitchDifference) int {
	a, b := p.Magnitude(), other.Magnitude()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
