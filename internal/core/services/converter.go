package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driven"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
	"github.com/custodia-labs/radix/internal/logger"
	"github.com/custodia-labs/radix/internal/radix"
)

// Ensure ConverterService implements the interface.
var _ driving.ConverterService = (*ConverterService)(nil)

// ConverterService runs conversions with the engine, applying the current
// settings and recording successful conversions.
type ConverterService struct {
	settings driving.SettingsService
	history  driven.HistoryStore
	now      func() time.Time
}

// NewConverterService creates a new converter service.
// history may be nil, in which case nothing is recorded.
func NewConverterService(settings driving.SettingsService, history driven.HistoryStore) *ConverterService {
	return &ConverterService{
		settings: settings,
		history:  history,
		now:      time.Now,
	}
}

// Validate checks raw against the digit alphabet of base.
func (s *ConverterService) Validate(raw string, base domain.Base) (domain.Numeral, error) {
	return radix.Validate(raw, base)
}

// Convert runs a conversion using the current settings.
func (s *ConverterService) Convert(ctx context.Context, req driving.ConvertRequest) (*domain.ConversionResult, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	opts := radix.Options{
		Trace:    settings.Display.ShowSteps,
		Overflow: settings.Engine.Overflow,
	}
	if req.Steps != nil {
		opts.Trace = *req.Steps
	}

	logger.Debug("convert %q from base %d to base %d (trace=%t, overflow=%s)",
		req.Input, req.From, req.To, opts.Trace, opts.Overflow)

	result, err := radix.Convert(req.Input, req.From, req.To, opts)
	if err != nil {
		logger.Debug("convert rejected: %v", err)
		return nil, err
	}
	if opts.Trace {
		logger.Debug("trace strategy %s, %d steps", result.Strategy, len(result.Steps))
	}

	if settings.History.Enabled && s.history != nil {
		s.record(ctx, result)
	}

	return result, nil
}

// record saves a history entry. Failures are logged and never fail the conversion.
func (s *ConverterService) record(ctx context.Context, result *domain.ConversionResult) {
	entry := domain.HistoryEntry{
		ID:        uuid.New().String(),
		Source:    result.Source,
		Target:    result.Target,
		Magnitude: result.Magnitude,
		CreatedAt: s.now().UTC(),
	}
	if err := s.history.Save(ctx, entry); err != nil {
		logger.Warn("recording history entry: %v", err)
	}
}
