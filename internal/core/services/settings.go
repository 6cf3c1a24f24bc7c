package services

import (
	"fmt"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driven"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyShowSteps      = "display.show_steps"
	keyPrefix         = "display.prefix_annotations"
	keyNumberType     = "display.number_type"
	keyOverflowMode   = "engine.overflow_mode"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Display: domain.DisplaySettings{
			ShowSteps:         s.getBool(keyShowSteps, defaults.Display.ShowSteps),
			PrefixAnnotations: s.getBool(keyPrefix, defaults.Display.PrefixAnnotations),
			NumberType:        s.getNumberType(defaults.Display.NumberType),
		},
		Engine: domain.EngineSettings{
			Overflow: s.getOverflowMode(defaults.Engine.Overflow),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getPositiveInt(keyHistoryLimit, defaults.History.Limit),
		},
	}

	return settings, nil
}

// Save persists application settings in one store write.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	err := s.configStore.SetMany(map[string]any{
		keyShowSteps:      settings.Display.ShowSteps,
		keyPrefix:         settings.Display.PrefixAnnotations,
		keyNumberType:     settings.Display.NumberType.String(),
		keyOverflowMode:   settings.Engine.Overflow.String(),
		keyHistoryEnabled: settings.History.Enabled,
		keyHistoryLimit:   settings.History.Limit,
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ToggleShowSteps flips step visualisation and returns the new state.
func (s *SettingsService) ToggleShowSteps() (bool, error) {
	settings, err := s.Get()
	if err != nil {
		return false, err
	}
	settings.Display.ShowSteps = !settings.Display.ShowSteps
	return settings.Display.ShowSteps, s.Save(settings)
}

// TogglePrefixAnnotations flips prefix annotation and returns the new state.
func (s *SettingsService) TogglePrefixAnnotations() (bool, error) {
	settings, err := s.Get()
	if err != nil {
		return false, err
	}
	settings.Display.PrefixAnnotations = !settings.Display.PrefixAnnotations
	return settings.Display.PrefixAnnotations, s.Save(settings)
}

// ToggleNumberType switches between unsigned and signed and returns the new type.
func (s *SettingsService) ToggleNumberType() (domain.NumberType, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	if settings.Display.NumberType == domain.NumberTypeSigned {
		settings.Display.NumberType = domain.NumberTypeUnsigned
	} else {
		settings.Display.NumberType = domain.NumberTypeSigned
	}
	return settings.Display.NumberType, s.Save(settings)
}

// SetOverflowMode updates the overflow guard mode.
func (s *SettingsService) SetOverflowMode(mode domain.OverflowMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: overflow mode %q", domain.ErrInvalidInput, mode)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Engine.Overflow = mode
	return s.Save(settings)
}

// SetHistoryEnabled turns conversion recording on or off.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.History.Enabled = enabled
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getNumberType(defaultVal domain.NumberType) domain.NumberType {
	t := domain.NumberType(s.configStore.GetString(keyNumberType))
	if t.IsValid() {
		return t
	}
	return defaultVal
}

func (s *SettingsService) getOverflowMode(defaultVal domain.OverflowMode) domain.OverflowMode {
	m := domain.OverflowMode(s.configStore.GetString(keyOverflowMode))
	if m.IsValid() {
		return m
	}
	return defaultVal
}
