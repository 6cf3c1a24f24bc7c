package tui

import "errors"

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("tui: converter service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")
