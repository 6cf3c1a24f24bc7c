package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidDigit indicates an empty numeral or a character outside
	// the declared base's alphabet.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrOverflow indicates the numeral exceeds the maximum representable magnitude.
	ErrOverflow = errors.New("value too large")

	// ErrSameBase indicates source and target bases are identical.
	ErrSameBase = errors.New("source and target base are the same")

	// ErrInvalidBase indicates a base outside 2-16.
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// DigitError describes why a numeral failed validation.
// It matches ErrInvalidDigit with errors.Is.
type DigitError struct {
	// Input is the raw text that was validated.
	Input string

	// Base is the base the input was validated against.
	Base Base

	// Position is the zero-based index of the offending character.
	// It is -1 when the input is empty.
	Position int

	// Char is the offending character. Zero when the input is empty.
	Char byte
}

// Error implements error.
func (e *DigitError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s: empty value for base %d", ErrInvalidDigit, e.Base)
	}
	return fmt.Sprintf("%s: %q at position %d is not a base %d digit",
		ErrInvalidDigit, e.Char, e.Position+1, e.Base)
}

// Is reports whether target is ErrInvalidDigit.
func (e *DigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}
