package temperament

import (
	"fmt"
	"math"
	"math/bits"
	"sync"

	"github.com/shinji-kodama/edo-compare/internal/model"
)

// ClosestLowerPowerOfTwo returns the largest power of two that is <= n,
// i.e. 2^floor(log2(n)). n must be >= 1.
//
//	ClosestLowerPowerOfTwo(5)  = 4
//	ClosestLowerPowerOfTwo(63) = 32
func ClosestLowerPowerOfTwo(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrUndefinedPowerOfTwo, n)
	}
	return 1 << (bits.Len(uint(n)) - 1), nil
}

// edoRatio is the ratio of degree k in an n-EDO system.
func edoRatio(k, n int) float64 {
	return math.Pow(2, float64(k)/float64(n))
}

// checkCount rejects negative counts and counts above model.MaxSize.
func checkCount(n int, what string) error {
	if n < 0 || n > model.MaxSize {
		return fmt.Errorf("%w: %d %s requested (valid: 0..%d)", ErrInvalidDegreeCount, n, what, model.MaxSize)
	}
	return nil
}

// GenerateEDO builds an n-EDO temperament with degrees 0..n-1, where
// degree k has ratio 2^(k/n). The octave itself (ratio 2.0) is not a
// degree. n == 0 yields an empty temperament.
func GenerateEDO(n int) (*Temperament, error) {
	if err := checkCount(n, "degrees"); err != nil {
		return nil, err
	}

	degrees := make([]Degree, n)
	for k := range degrees {
		degrees[k] = Degree{Number: k, Ratio: edoRatio(k, n)}
	}
	name := model.TemperamentSpec{Kind: model.KindEDO, Size: n}.DisplayName()
	return newTemperament(name, model.KindEDO, degrees), nil
}

// EDORatios returns the raw n-EDO ratio mapping keyed by tone index,
// without wrapping the values in Degrees. It shares its formula with
// GenerateEDO and is the input to ClosestRatio.
func EDORatios(n int) (map[int]float64, error) {
	if err := checkCount(n, "tones"); err != nil {
		return nil, err
	}

	ratios := make(map[int]float64, n)
	for k := 0; k < n; k++ {
		ratios[k] = edoRatio(k, n)
	}
	return ratios, nil
}

// GenerateHarmonicSeries builds the first n harmonics folded into the
// octave [1, 2). Degree 0 is defined as the fundamental with ratio 1.0
// (the 0th harmonic does not exist); degree k > 0 has ratio
// k / ClosestLowerPowerOfTwo(k), so harmonic 5 becomes 5/4 and harmonic
// 11 becomes 11/8.
func GenerateHarmonicSeries(n int) (*Temperament, error) {
	if err := checkCount(n, "harmonics"); err != nil {
		return nil, err
	}

	degrees := make([]Degree, n)
	for k := range degrees {
		if k == 0 {
			degrees[k] = Degree{Number: 0, Ratio: 1.0}
			continue
		}
		p, err := ClosestLowerPowerOfTwo(k)
		if err != nil {
			return nil, err
		}
		degrees[k] = Degree{Number: k, Ratio: float64(k) / float64(p)}
	}
	name := model.TemperamentSpec{Kind: model.KindHarmonic, Size: n}.DisplayName()
	return newTemperament(name, model.KindHarmonic, degrees), nil
}

// Build generates the temperament described by spec.
func Build(spec model.TemperamentSpec) (*Temperament, error) {
	switch spec.Kind {
	case model.KindEDO:
		return GenerateEDO(spec.Size)
	case model.KindHarmonic:
		return GenerateHarmonicSeries(spec.Size)
	default:
		return nil, fmt.Errorf("temperament kind %q has no generator", spec.Kind)
	}
}

var (
	twelveOnce sync.Once
	twelveEDO  *Temperament
)

// TwelveEDO returns the 12-EDO reference temperament. It is generated once
// and shared; callers must not rely on identity beyond that.
func TwelveEDO() *Temperament {
	twelveOnce.Do(func() {
		// 12 is a valid count, so the error is always nil.
		twelveEDO, _ = GenerateEDO(12)
	})
	return twelveEDO
}
