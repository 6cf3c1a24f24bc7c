package radix

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// ToMagnitude evaluates n left to right: acc = acc*base + digit.
// It does not trap overflow; callers check ExceedsMaxMagnitude or
// WouldOverflow first. It panics if n holds a digit invalid for its base.
func ToMagnitude(n domain.Numeral) int64 {
	mustValidBase(n.Base)
	if n.Digits == "" {
		panic("radix: ToMagnitude called with an empty numeral")
	}

	var acc int64
	for i := 0; i < len(n.Digits); i++ {
		acc = acc*int64(n.Base) + int64(digitAt(n, i))
	}
	return acc
}

// FromMagnitude renders m in base using the division-remainder method.
// Zero renders as "0". It panics if m is negative or base is out of range.
func FromMagnitude(m int64, base domain.Base) domain.Numeral {
	mustValidBase(base)
	if m < 0 {
		panic(fmt.Sprintf("radix: FromMagnitude called with negative magnitude %d", m))
	}
	if m == 0 {
		return domain.Numeral{Digits: "0", Base: base}
	}

	b := int64(base)
	var digits []byte
	for m != 0 {
		digits = append(digits, domain.SymbolOf(int(m%b)))
		m /= b
	}
	slices.Reverse(digits)

	return domain.Numeral{Digits: string(digits), Base: base}
}

// digitAt returns the value of the i-th digit of n, panicking if the
// digit does not belong to n's base.
func digitAt(n domain.Numeral, i int) int {
	v, ok := domain.ValueOf(n.Digits[i])
	if !ok || v >= int(n.Base) {
		panic(fmt.Sprintf("radix: unvalidated numeral %q: %q is not a base %d digit",
			n.Digits, n.Digits[i], int(n.Base)))
	}
	return v
}

func mustValidBase(base domain.Base) {
	if !base.IsValid() {
		panic(fmt.Sprintf("radix: base %d outside %d-%d", int(base), domain.MinBase, domain.MaxBase))
	}
}
