package domain

import "fmt"

// ConversionResult is the outcome of a single conversion.
type ConversionResult struct {
	// Source is the validated input numeral.
	Source Numeral `json:"source"`

	// Target is the converted numeral.
	Target Numeral `json:"target"`

	// Magnitude is the base-independent value of Source.
	Magnitude int64 `json:"magnitude"`

	// Strategy is the trace strategy, set only when Steps were requested.
	Strategy TraceStrategy `json:"strategy,omitempty"`

	// Steps is the ordered derivation, nil unless requested.
	Steps []ConversionStep `json:"steps,omitempty"`
}

// HasTrace returns true if the result carries a derivation.
func (r *ConversionResult) HasTrace() bool {
	return len(r.Steps) > 0
}

// TraceTitle returns the heading for the result's derivation.
func (r *ConversionResult) TraceTitle() string {
	switch r.Strategy {
	case StrategyDivision:
		return fmt.Sprintf("Decimal %d → %d-base", r.Magnitude, int(r.Target.Base))
	case StrategyHexGrouping:
		return fmt.Sprintf("Binary %s → Hexadecimal", r.Source.Digits)
	case StrategyOctalGrouping:
		return fmt.Sprintf("Binary %s → Octal", r.Source.Digits)
	case StrategyViaDecimal:
		return fmt.Sprintf("%d-base → Decimal → %d-base", int(r.Source.Base), int(r.Target.Base))
	default:
		return ""
	}
}
