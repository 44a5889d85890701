package temperament

import (
	"fmt"
	"math"
	"sort"
)

// ClosestDegreeIn returns the non-zero degree of target whose ratio is
// closest to source, measured by PitchDifference magnitude. Candidates are
// visited in ascending degree order and only a strictly smaller magnitude
// replaces the current best, so ties go to the lowest degree number.
//
// Returns ErrEmptyMatchTarget if target has no degree other than 0.
func ClosestDegreeIn(source Degree, target *Temperament) (Degree, error) {
	candidates := target.Degrees(false)
	if len(candidates) == 0 {
		return Degree{}, fmt.Errorf("%w: %s", ErrEmptyMatchTarget, target.Name())
	}

	best := candidates[0]
	bestDiff := source.Minus(best)
	for _, c := range candidates[1:] {
		diff := source.Minus(c)
		if diff.Compare(bestDiff) < 0 {
			best, bestDiff = c, diff
		}
	}
	return best, nil
}

// ClosestRatio is the raw-mapping form of ClosestDegreeIn: it searches a
// tone-index -> ratio map (as produced by EDORatios) for the entry closest
// to ratio by absolute ratio difference. Index 0 is skipped and keys are
// scanned in ascending order, so exclusion and tie-breaking match
// ClosestDegreeIn exactly.
func ClosestRatio(ratio float64, ratios map[int]float64) (int, float64, error) {
	keys := make([]int, 0, len(ratios))
	for k := range ratios {
		if k != 0 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return 0, 0, ErrEmptyMatchTarget
	}
	sort.Ints(keys)

	bestKey := keys[0]
	bestDist := math.Abs(ratio - ratios[bestKey])
	for _, k := range keys[1:] {
		if dist := math.Abs(ratio - ratios[k]); dist < bestDist {
			bestKey, bestDist = k, dist
		}
	}
	return bestKey, ratios[bestKey], nil
}
