// Package domain defines the core entities for radix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Base: A positional radix between 2 and 16
//   - Numeral: A digit string paired with its base
//   - ConversionStep: One line of a conversion's derivation
//   - ConversionResult: The outcome of a single conversion
//   - AppSettings: Display, engine and history preferences
//   - HistoryEntry: A recorded conversion
//
// The digit alphabet (SymbolOf, ValueOf) also lives here because every
// other layer renders and parses digits through it.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
