package radix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// Bits per group for the grouping strategies.
const (
	hexGroupSize   = 4
	octalGroupSize = 3
)

// StrategyFor selects the trace strategy for a base pair.
func StrategyFor(source, target domain.Base) domain.TraceStrategy {
	switch {
	case source == domain.Decimal:
		return domain.StrategyDivision
	case source == domain.Binary && target == domain.Hexadecimal:
		return domain.StrategyHexGrouping
	case source == domain.Binary && target == domain.Octal:
		return domain.StrategyOctalGrouping
	default:
		return domain.StrategyViaDecimal
	}
}

// Trace returns the ordered derivation of converting source to target.
// Source must be valid and within the maximum magnitude.
func Trace(source domain.Numeral, target domain.Base) []domain.ConversionStep {
	mustValidBase(target)

	switch StrategyFor(source.Base, target) {
	case domain.StrategyDivision:
		return divisionSteps(ToMagnitude(source), target)
	case domain.StrategyHexGrouping:
		return groupingSteps(source, target, hexGroupSize)
	case domain.StrategyOctalGrouping:
		return groupingSteps(source, target, octalGroupSize)
	default:
		m := ToMagnitude(source)
		steps := []domain.ConversionStep{{
			Kind:   domain.StepIntermediate,
			Base:   source.Base,
			Digits: source.Digits,
			Value:  m,
		}}
		return append(steps, divisionSteps(m, target)...)
	}
}

// divisionSteps narrates repeated division of m by base, then the
// reversal of the remainders into the answer.
func divisionSteps(m int64, base domain.Base) []domain.ConversionStep {
	b := int64(base)
	if m == 0 {
		return []domain.ConversionStep{{Kind: domain.StepDivide, Divisor: b}}
	}

	var (
		steps      []domain.ConversionStep
		remainders []byte
	)
	for v := m; v != 0; v /= b {
		r := int(v % b)
		sym := domain.SymbolOf(r)
		steps = append(steps, domain.ConversionStep{
			Kind:      domain.StepDivide,
			Dividend:  v,
			Divisor:   b,
			Quotient:  v / b,
			Remainder: r,
			Symbol:    string(sym),
		})
		remainders = append(remainders, sym)
	}
	slices.Reverse(remainders)

	return append(steps, domain.ConversionStep{Kind: domain.StepReverse, Result: string(remainders)})
}

// groupingSteps narrates a binary source split into size-bit groups from
// the right. The merged answer comes from FromMagnitude and must agree
// with the per-group digits.
func groupingSteps(source domain.Numeral, target domain.Base, size int) []domain.ConversionStep {
	pad := (size - len(source.Digits)%size) % size
	padded := strings.Repeat("0", pad) + source.Digits

	groups := make([]string, 0, len(padded)/size)
	for i := 0; i < len(padded); i += size {
		groups = append(groups, padded[i:i+size])
	}

	steps := make([]domain.ConversionStep, 0, len(groups)+2)
	steps = append(steps, domain.ConversionStep{
		Kind:      domain.StepGroup,
		GroupSize: size,
		Digits:    strings.Join(groups, " "),
	})

	merged := make([]byte, 0, len(groups))
	for _, g := range groups {
		v := ToMagnitude(domain.Numeral{Digits: g, Base: domain.Binary})
		sym := domain.SymbolOf(int(v))
		steps = append(steps, domain.ConversionStep{
			Kind:   domain.StepGroupValue,
			Digits: g,
			Value:  v,
			Symbol: string(sym),
		})
		merged = append(merged, sym)
	}

	result := FromMagnitude(ToMagnitude(source), target).Digits
	if trimLeadingZeros(string(merged)) != result {
		panic(fmt.Sprintf("radix: grouped digits %s disagree with converted %s", merged, result))
	}

	return append(steps, domain.ConversionStep{Kind: domain.StepMerge, Result: result})
}

func trimLeadingZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
