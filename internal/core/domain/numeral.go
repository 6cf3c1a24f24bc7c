package domain

import "math"

// MaxMagnitude is the largest value the engine represents.
const MaxMagnitude int64 = math.MaxInt64

// MaxMagnitudeString is MaxMagnitude written in decimal.
const MaxMagnitudeString = "9223372036854775807"

// Numeral is a digit string in a given base.
// Numerals produced by the engine always satisfy: non-empty, and every
// digit's value is below Base.
type Numeral struct {
	// Digits is the most-significant-first digit string.
	Digits string `json:"digits"`

	// Base is the numeral's radix.
	Base Base `json:"base"`
}

// String returns the digit string without any prefix.
func (n Numeral) String() string {
	return n.Digits
}

// Format returns the digit string, prefixed with the base's literal
// prefix when withPrefix is true.
func (n Numeral) Format(withPrefix bool) string {
	if !withPrefix {
		return n.Digits
	}
	return n.Base.Prefix() + n.Digits
}
