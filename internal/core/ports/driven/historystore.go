package driven

import (
	"context"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// HistoryStore persists recorded conversions.
type HistoryStore interface {
	// Save stores an entry.
	Save(ctx context.Context, entry domain.HistoryEntry) error

	// Get retrieves an entry by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)

	// List returns up to limit entries, newest first.
	// A limit of zero or less returns every entry.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
