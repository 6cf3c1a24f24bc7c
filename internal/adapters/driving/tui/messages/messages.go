// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/radix/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewConvert is the base picker, input and result flow.
	ViewConvert
	// ViewSettings is the settings toggles view.
	ViewSettings
	// ViewHistory lists recorded conversions.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewConvert:
		return "convert"
	case ViewSettings:
		return "settings"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ConversionCompleted carries the outcome of a conversion.
type ConversionCompleted struct {
	Result *domain.ConversionResult
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals a setting was changed.
// Notice is an optional message to show the user.
type SettingsSaved struct {
	Notice string
	Err    error
}

// ConfigReloaded signals the configuration file changed on disk.
type ConfigReloaded struct{}

// HistoryLoaded carries recorded conversions.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// HistoryCleared signals the history was cleared.
type HistoryCleared struct {
	Removed int
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
