// Package tui provides an interactive terminal user interface for radix.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Converter runs conversions.
	Converter driving.ConverterService

	// Settings manages application settings.
	Settings driving.SettingsService

	// History exposes recorded conversions. Optional.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	converter driving.ConverterService,
	settings driving.SettingsService,
	history driving.HistoryService,
) *Ports {
	return &Ports{
		Converter: converter,
		Settings:  settings,
		History:   history,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
