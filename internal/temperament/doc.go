// Package temperament models tuning systems as ordered collections of
// degrees and finds the closest-matching degree between two systems.
//
// A Temperament is generated either as an equal division of the octave
// (GenerateEDO) or as the harmonic series folded into one octave
// (GenerateHarmonicSeries). All ratios are float64 relative to degree 0.
//
// Nearest-match search (ClosestDegreeIn, ClosestRatio) never considers
// degree 0: the unison matches every unison trivially, so it is removed
// from the candidate set rather than deprioritized. Ties resolve to the
// lowest degree number.
//
// Everything in this package is immutable after construction. The only
// shared state is the memoized 12-EDO reference returned by TwelveEDO.
package temperament
