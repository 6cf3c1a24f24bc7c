package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driven"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// ErrHistoryUnavailable indicates no history store is configured.
var ErrHistoryUnavailable = errors.New("history store not configured")

// HistoryService exposes recorded conversions.
type HistoryService struct {
	store    driven.HistoryStore
	settings driving.SettingsService
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{store: store, settings: settings}
}

// List returns up to limit entries, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, ErrHistoryUnavailable
	}
	if limit <= 0 {
		limit = domain.DefaultAppSettings().History.Limit
		if s.settings != nil {
			settings, err := s.settings.Get()
			if err != nil {
				return nil, err
			}
			limit = settings.History.Limit
		}
	}

	entries, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

// Get retrieves an entry by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, ErrHistoryUnavailable
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty history id", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// Clear removes every entry and returns how many were removed.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, ErrHistoryUnavailable
	}
	n, err := s.store.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return n, nil
}
