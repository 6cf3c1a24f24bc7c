package radix

import (
	"math/bits"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// WouldOverflow reports whether raw exceeds the maximum magnitude by
// comparing it with the literal "9223372036854775807": shorter strings pass,
// longer strings fail, equal-length strings fail if lexically greater.
//
// The comparison ignores base, so it is exact only for base 10. For other
// bases it both rejects values that fit (long binary strings) and accepts
// values that do not (16-digit hex). ExceedsMaxMagnitude is the exact check.
func WouldOverflow(raw string, base domain.Base) bool {
	const limit = domain.MaxMagnitudeString

	switch {
	case len(raw) > len(limit):
		return true
	case len(raw) < len(limit):
		return false
	default:
		return raw > limit
	}
}

// ExceedsMaxMagnitude reports whether n's value is greater than
// domain.MaxMagnitude. It panics if n is not valid for its base.
func ExceedsMaxMagnitude(n domain.Numeral) bool {
	_, ok := checkedMagnitude(n)
	return !ok
}

// checkedMagnitude evaluates n in uint64 arithmetic, stopping as soon as
// the accumulator passes domain.MaxMagnitude.
func checkedMagnitude(n domain.Numeral) (uint64, bool) {
	mustValidBase(n.Base)

	var acc uint64
	for i := 0; i < len(n.Digits); i++ {
		hi, lo := bits.Mul64(acc, uint64(n.Base))
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, uint64(digitAt(n, i)), 0)
		if carry != 0 || sum > uint64(domain.MaxMagnitude) {
			return 0, false
		}
		acc = sum
	}
	return acc, true
}
