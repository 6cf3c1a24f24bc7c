package radix

import (
	"fmt"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// Options controls a single Convert call.
type Options struct {
	// Trace requests the step derivation.
	Trace bool

	// Overflow selects the overflow guard. The zero value behaves as
	// domain.OverflowLiteral.
	Overflow domain.OverflowMode
}

// Convert validates raw in source, checks it against the maximum magnitude
// and renders it in target. Checks run in this order: base range, same
// base, digits, overflow. Failures return no partial result.
//
// In literal mode both the literal comparison and the exact magnitude check
// apply; in exact mode only the latter does.
func Convert(raw string, source, target domain.Base, opts Options) (*domain.ConversionResult, error) {
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: source base %d", domain.ErrInvalidBase, int(source))
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: target base %d", domain.ErrInvalidBase, int(target))
	}
	if source == target {
		return nil, domain.ErrSameBase
	}

	n, err := Validate(raw, source)
	if err != nil {
		return nil, err
	}
	if overflows(n, opts.Overflow) {
		return nil, fmt.Errorf("%w: %s exceeds %s", domain.ErrOverflow, raw, domain.MaxMagnitudeString)
	}

	m := ToMagnitude(n)
	result := &domain.ConversionResult{
		Source:    n,
		Target:    FromMagnitude(m, target),
		Magnitude: m,
	}
	if opts.Trace {
		result.Strategy = StrategyFor(source, target)
		result.Steps = Trace(n, target)
	}

	return result, nil
}

func overflows(n domain.Numeral, mode domain.OverflowMode) bool {
	if mode != domain.OverflowExact && WouldOverflow(n.Digits, n.Base) {
		return true
	}
	return ExceedsMaxMagnitude(n)
}
