package driving

import (
	"context"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// HistoryService exposes recorded conversions.
type HistoryService interface {
	// List returns up to limit entries, newest first.
	// A limit of zero or less uses the history.limit setting.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Get retrieves an entry by ID.
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)

	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
