package temperament

import "errors"

var (
	// ErrInvalidDegreeCount is returned when a generator is asked for a
	// negative number of degrees or harmonics.
	ErrInvalidDegreeCount = errors.New("invalid degree count")

	// ErrEmptyMatchTarget is returned when a nearest-match search has no
	// eligible candidates, e.g. a 1-EDO target whose only degree is 0.
	ErrEmptyMatchTarget = errors.New("match target has no eligible degrees")

	// ErrUndefinedPowerOfTwo is returned by ClosestLowerPowerOfTwo for
	// n <= 0.
	ErrUndefinedPowerOfTwo = errors.New("closest lower power of two is undefined for n <= 0")
)
