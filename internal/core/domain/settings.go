package domain

const unknownDescription = "Unknown"

// NumberType selects how numerals are interpreted.
// Only unsigned interpretation is implemented; the setting is persisted
// so the choice survives until signed support exists.
type NumberType string

// Available number types.
const (
	// NumberTypeUnsigned treats every numeral as a non-negative magnitude.
	NumberTypeUnsigned NumberType = "unsigned"

	// NumberTypeSigned requests two's-complement interpretation (not yet supported).
	NumberTypeSigned NumberType = "signed"
)

// IsValid returns true if the number type is recognised.
func (t NumberType) IsValid() bool {
	return t == NumberTypeUnsigned || t == NumberTypeSigned
}

// IsSupported returns true if conversions honour this number type.
func (t NumberType) IsSupported() bool {
	return t == NumberTypeUnsigned
}

// String returns the string representation.
func (t NumberType) String() string {
	return string(t)
}

// Description returns a human-readable description of the number type.
func (t NumberType) Description() string {
	switch t {
	case NumberTypeUnsigned:
		return "Unsigned Integer"
	case NumberTypeSigned:
		return "Signed Integer (2's complement for negatives)"
	default:
		return unknownDescription
	}
}

// OverflowMode selects how the overflow guard decides a value is too large.
type OverflowMode string

// Available overflow modes.
const (
	// OverflowLiteral compares the digit string against the decimal
	// literal of MaxMagnitude regardless of base. Exact for base 10 only.
	OverflowLiteral OverflowMode = "literal"

	// OverflowExact compares the numeral's computed magnitude against MaxMagnitude.
	OverflowExact OverflowMode = "exact"
)

// IsValid returns true if the overflow mode is recognised.
func (m OverflowMode) IsValid() bool {
	return m == OverflowLiteral || m == OverflowExact
}

// String returns the string representation.
func (m OverflowMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the overflow mode.
func (m OverflowMode) Description() string {
	switch m {
	case OverflowLiteral:
		return "Literal (compare digits with 9223372036854775807)"
	case OverflowExact:
		return "Exact (compare computed magnitude)"
	default:
		return unknownDescription
	}
}

// DisplaySettings holds presentation toggles. The engine never reads them.
type DisplaySettings struct {
	// ShowSteps requests a step trace with every conversion.
	ShowSteps bool

	// PrefixAnnotations prepends 0b, 0 or 0x to displayed numerals.
	PrefixAnnotations bool

	// NumberType is the requested number interpretation.
	NumberType NumberType
}

// EngineSettings holds conversion behaviour configuration.
type EngineSettings struct {
	// Overflow is the overflow guard mode.
	Overflow OverflowMode
}

// HistorySettings holds conversion history configuration.
type HistorySettings struct {
	// Enabled records every successful conversion.
	Enabled bool

	// Limit is the default number of entries listed.
	Limit int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Display holds presentation toggles.
	Display DisplaySettings

	// Engine holds conversion behaviour settings.
	Engine EngineSettings

	// History holds history settings.
	History HistorySettings
}

// DefaultAppSettings returns settings matching the classic converter:
// steps shown, prefixes shown, unsigned numbers, literal overflow check.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			ShowSteps:         true,
			PrefixAnnotations: true,
			NumberType:        NumberTypeUnsigned,
		},
		Engine: EngineSettings{
			Overflow: OverflowLiteral,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   50,
		},
	}
}

// AllNumberTypes returns all available number types.
func AllNumberTypes() []NumberType {
	return []NumberType{NumberTypeUnsigned, NumberTypeSigned}
}

// AllOverflowModes returns all available overflow modes.
func AllOverflowModes() []OverflowMode {
	return []OverflowMode{OverflowLiteral, OverflowExact}
}

// EnabledLabel renders a toggle state the way the settings menu shows it.
func EnabledLabel(on bool) string {
	if on {
		return "Enabled"
	}
	return "Disabled"
}
