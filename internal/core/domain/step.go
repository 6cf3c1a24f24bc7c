package domain

import (
	"encoding/json"
	"fmt"
)

// StepKind identifies what a ConversionStep narrates.
type StepKind string

// Available step kinds.
const (
	// StepIntermediate states the source value's decimal equivalent.
	StepIntermediate StepKind = "intermediate"

	// StepDivide is one division of the division-remainder method.
	StepDivide StepKind = "divide"

	// StepReverse concatenates the recorded remainders, last first.
	StepReverse StepKind = "reverse"

	// StepGroup shows the zero-padded source bits split into groups.
	StepGroup StepKind = "group"

	// StepGroupValue maps one bit group to its value and digit.
	StepGroupValue StepKind = "group_value"

	// StepMerge concatenates the group digits into the answer.
	StepMerge StepKind = "merge"
)

// ConversionStep is one line of a conversion's derivation.
// Which fields are meaningful depends on Kind.
type ConversionStep struct {
	Kind StepKind `json:"kind"`

	// Division operands (StepDivide).
	Dividend  int64 `json:"dividend"`
	Divisor   int64 `json:"divisor"`
	Quotient  int64 `json:"quotient"`
	Remainder int   `json:"remainder"`

	// Base is the source base (StepIntermediate).
	Base Base `json:"base"`

	// GroupSize is the bits per group (StepGroup).
	GroupSize int `json:"group_size"`

	// Digits holds the source digits (StepIntermediate), the grouped
	// representation (StepGroup) or one group's bits (StepGroupValue).
	Digits string `json:"digits"`

	// Value is the decimal value of Digits (StepIntermediate, StepGroupValue).
	Value int64 `json:"value"`

	// Symbol is the digit annotation, empty when the step has none.
	Symbol string `json:"symbol,omitempty"`

	// Result is the concatenated answer (StepReverse, StepMerge).
	Result string `json:"result"`
}

// MarshalJSON encodes the fields Kind uses, zeros included.
func (s ConversionStep) MarshalJSON() ([]byte, error) {
	aux := struct {
		Kind      StepKind `json:"kind"`
		Dividend  *int64   `json:"dividend,omitempty"`
		Divisor   *int64   `json:"divisor,omitempty"`
		Quotient  *int64   `json:"quotient,omitempty"`
		Remainder *int     `json:"remainder,omitempty"`
		Base      *Base    `json:"base,omitempty"`
		GroupSize *int     `json:"group_size,omitempty"`
		Digits    *string  `json:"digits,omitempty"`
		Value     *int64   `json:"value,omitempty"`
		Symbol    string   `json:"symbol,omitempty"`
		Result    *string  `json:"result,omitempty"`
	}{Kind: s.Kind, Symbol: s.Symbol}

	switch s.Kind {
	case StepDivide:
		aux.Dividend, aux.Divisor, aux.Quotient, aux.Remainder = &s.Dividend, &s.Divisor, &s.Quotient, &s.Remainder
	case StepIntermediate:
		aux.Base, aux.Digits, aux.Value = &s.Base, &s.Digits, &s.Value
	case StepGroup:
		aux.GroupSize, aux.Digits = &s.GroupSize, &s.Digits
	case StepGroupValue:
		aux.Digits, aux.Value = &s.Digits, &s.Value
	case StepReverse, StepMerge:
		aux.Result = &s.Result
	default:
		type plain ConversionStep
		return json.Marshal(plain(s))
	}
	return json.Marshal(aux)
}

// String renders the step as a line of narration.
func (s ConversionStep) String() string {
	switch s.Kind {
	case StepIntermediate:
		return fmt.Sprintf("%d-base %s → Decimal: %d (intermediate)", int(s.Base), s.Digits, s.Value)
	case StepDivide:
		if s.Symbol == "" {
			return fmt.Sprintf("%d ÷ %d = %d remainder %d", s.Dividend, s.Divisor, s.Quotient, s.Remainder)
		}
		return fmt.Sprintf("%d ÷ %d = %d remainder %d (digit %s)",
			s.Dividend, s.Divisor, s.Quotient, s.Remainder, s.Symbol)
	case StepReverse:
		return "Reverse remainders → " + s.Result
	case StepGroup:
		return fmt.Sprintf("Group into %d-bit groups from the right: %s", s.GroupSize, s.Digits)
	case StepGroupValue:
		return fmt.Sprintf("Group %s → %d → %s", s.Digits, s.Value, s.Symbol)
	case StepMerge:
		return "Merge groups → " + s.Result
	default:
		return string(s.Kind)
	}
}

// TraceStrategy identifies which derivation a trace follows.
type TraceStrategy string

// Available trace strategies.
const (
	// StrategyDivision divides a decimal source by the target base.
	StrategyDivision TraceStrategy = "division"

	// StrategyHexGrouping maps 4-bit groups of a binary source to hex digits.
	StrategyHexGrouping TraceStrategy = "hex_grouping"

	// StrategyOctalGrouping maps 3-bit groups of a binary source to octal digits.
	StrategyOctalGrouping TraceStrategy = "octal_grouping"

	// StrategyViaDecimal states the decimal equivalent, then divides.
	StrategyViaDecimal TraceStrategy = "via_decimal"
)

// Description returns a human-readable description of the strategy.
func (s TraceStrategy) Description() string {
	switch s {
	case StrategyDivision:
		return "Division-remainder"
	case StrategyHexGrouping:
		return "4-bit grouping"
	case StrategyOctalGrouping:
		return "3-bit grouping"
	case StrategyViaDecimal:
		return "Via decimal"
	default:
		return unknownDescription
	}
}
