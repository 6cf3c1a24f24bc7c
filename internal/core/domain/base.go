package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is the radix of a positional numeral system.
type Base int

// Supported base range and the common bases.
const (
	MinBase Base = 2
	MaxBase Base = 16

	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// MaxInputLength is the longest raw input the presentation layer accepts.
const MaxInputLength = 49

// CheckInputLength returns ErrInvalidInput if raw is longer than MaxInputLength.
func CheckInputLength(raw string) error {
	if len(raw) > MaxInputLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidInput, MaxInputLength)
	}
	return nil
}

// IsValid returns true if the base lies within 2-16.
func (b Base) IsValid() bool {
	return b >= MinBase && b <= MaxBase
}

// Prefix returns the conventional literal prefix for the base:
// "0b" for binary, "0" for octal, "0x" for hexadecimal, "" otherwise.
func (b Base) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0"
	case Hexadecimal:
		return "0x"
	default:
		return ""
	}
}

// Name returns the common name of the base, or "Base-N" for the rest.
func (b Base) Name() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return fmt.Sprintf("Base-%d", int(b))
	}
}

// Description returns a human-readable description of the base.
func (b Base) Description() string {
	return fmt.Sprintf("%s (%d-base)", b.Name(), int(b))
}

// String returns the decimal representation of the base.
func (b Base) String() string {
	return strconv.Itoa(int(b))
}

// CommonBases returns the quick-select bases in menu order.
func CommonBases() []Base {
	return []Base{Binary, Octal, Decimal, Hexadecimal}
}

// ParseBase parses a base given as a number (2-16) or as one of the
// names bin, binary, oct, octal, dec, decimal, hex, hexadecimal.
// It never falls back to a default.
func ParseBase(s string) (Base, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "bin", "binary":
		return Binary, nil
	case "oct", "octal":
		return Octal, nil
	case "dec", "decimal":
		return Decimal, nil
	case "hex", "hexadecimal":
		return Hexadecimal, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number or base name", ErrInvalidBase, s)
	}
	b := Base(n)
	if !b.IsValid() {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidBase, n, MinBase, MaxBase)
	}
	return b, nil
}
