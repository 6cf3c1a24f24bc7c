// Package radix is the base conversion engine.
//
// It converts numerals between bases 2-16 through an int64 magnitude and
// narrates the arithmetic as an ordered list of domain.ConversionStep values.
//
// # Components
//
//   - Validate: digit-set membership against the declared base
//   - WouldOverflow, ExceedsMaxMagnitude: the overflow guard
//   - ToMagnitude, FromMagnitude: Horner evaluation and division-remainder
//   - Trace: step narration, selected by base pair (see StrategyFor)
//   - Convert: validation, overflow check, conversion and optional trace
//
// Every function is pure. Nothing here logs, reads settings or holds state,
// so independent conversions may run concurrently.
//
// # Preconditions
//
// ToMagnitude, FromMagnitude and Trace expect validated input. Calling them
// with digits outside the base, a negative magnitude or a base outside 2-16
// is a programming error and panics. Convert never panics on user input.
package radix
