package codec

import "math"

// coordinate scalar candidates in finest-to-coarsest order, matching the
// convention: positive values (none considered by FindScalar, only
// round-tripped by ParseScalar) multiply, negative values divide.
var negativeScalars = [4]int16{-10000, -1000, -100, -10}

const maxInt32Magnitude = float64(1<<31 - 1)

// scalarEpsilon bounds how close a scaled value must be to its nearest
// integer to be considered "exactly representable" at that precision.
const scalarEpsilon = 1e-6

// FindScalar chooses a SEG-Y coordinate scalar in
// {-10000,-1000,-100,-10,1,10,100,1000,10000} such that value can be stored
// as a scaled int32 with minimum precision loss:
//
//   - If the integer part of value overflows int32, return the smallest
//     positive power of ten that brings it into range (or 0 if none do).
//   - Otherwise pick the most-negative (finest-precision) scalar that
//     preserves value's fractional digits; return 1 if value is integral.
func FindScalar(value float64) int16 {
	absVal := math.Abs(value)
	if absVal == 0 {
		return 1
	}

	if absVal > maxInt32Magnitude {
		for _, pow := range [4]int16{10, 100, 1000, 10000} {
			if absVal/float64(pow) <= maxInt32Magnitude {
				return pow
			}
		}

		return 0
	}

	if absVal == math.Trunc(absVal) {
		return 1
	}

	// Prefer the finest scalar that represents value exactly (no
	// fractional digits beyond that precision are discarded).
	for _, scalar := range negativeScalars {
		mag := float64(-scalar)
		scaled := absVal * mag
		if scaled > maxInt32Magnitude {
			continue
		}

		if math.Abs(scaled-math.Round(scaled)) < scalarEpsilon*mag {
			return scalar
		}
	}

	// value has more fractional precision than any scale can capture
	// losslessly; use the finest scale that still fits in int32.
	for _, scalar := range negativeScalars {
		mag := float64(-scalar)
		if absVal*mag <= maxInt32Magnitude {
			return scalar
		}
	}

	return 1
}

// ParseScalar is the inverse of the SEG-Y coordinate-scalar storage
// convention: positive values multiply, negative values divide by their
// magnitude, and zero behaves as 1.
func ParseScalar(s int16) float64 {
	switch {
	case s > 0:
		return float64(s)
	case s < 0:
		return 1.0 / float64(-s)
	default:
		return 1
	}
}
