package radix

import (
	"fmt"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// Validate checks that raw is a non-empty string of uppercase digits whose
// values are all below base. Lowercase letters are always rejected.
func Validate(raw string, base domain.Base) (domain.Numeral, error) {
	if !base.IsValid() {
		return domain.Numeral{}, fmt.Errorf("%w: %d", domain.ErrInvalidBase, int(base))
	}
	if raw == "" {
		return domain.Numeral{}, &domain.DigitError{Input: raw, Base: base, Position: -1}
	}

	for i := 0; i < len(raw); i++ {
		v, ok := domain.ValueOf(raw[i])
		if !ok || v >= int(base) {
			return domain.Numeral{}, &domain.DigitError{Input: raw, Base: base, Position: i, Char: raw[i]}
		}
	}

	return domain.Numeral{Digits: raw, Base: base}, nil
}
