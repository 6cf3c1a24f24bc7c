package driving

import "github.com/custodia-labs/radix/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// ToggleShowSteps flips step visualisation and returns the new state.
	ToggleShowSteps() (bool, error)

	// TogglePrefixAnnotations flips prefix annotation and returns the new state.
	TogglePrefixAnnotations() (bool, error)

	// ToggleNumberType switches between unsigned and signed and returns the new type.
	ToggleNumberType() (domain.NumberType, error)

	// SetOverflowMode updates the overflow guard mode.
	SetOverflowMode(mode domain.OverflowMode) error

	// SetHistoryEnabled turns conversion recording on or off.
	SetHistoryEnabled(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
