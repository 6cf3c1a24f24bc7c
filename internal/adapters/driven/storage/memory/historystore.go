package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Entries are kept in insertion order.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Save stores an entry, replacing any existing entry with the same ID.
func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: history entry has no id", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(entry.ID); i >= 0 {
		s.entries[i] = entry
		return nil
	}
	s.entries = append(s.entries, entry)
	return nil
}

// Get retrieves an entry by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	entry := s.entries[i]
	return &entry, nil
}

// List returns up to limit entries, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.entries)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b domain.HistoryEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Clear removes every entry.
func (s *HistoryStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	s.entries = nil
	return n, nil
}

func (s *HistoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.entries, func(e domain.HistoryEntry) bool {
		return e.ID == id
	})
}
