package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Timestamps are stored as fixed-width UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Save stores or replaces an entry.
func (s *historyStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: history entry has no id", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO history (id, source_digits, source_base, target_digits, target_base, magnitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_digits = excluded.source_digits,
			source_base = excluded.source_base,
			target_digits = excluded.target_digits,
			target_base = excluded.target_base,
			magnitude = excluded.magnitude,
			created_at = excluded.created_at
	`,
		entry.ID,
		entry.Source.Digits, int(entry.Source.Base),
		entry.Target.Digits, int(entry.Target.Base),
		entry.Magnitude,
		entry.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_digits, source_base, target_digits, target_base, magnitude, created_at
		FROM history
		WHERE id = ?
	`, id)

	entry, err := scanHistoryEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns up to limit entries, newest first.
// SQLite treats a negative LIMIT as unbounded.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source_digits, source_base, target_digits, target_base, magnitude, created_at
		FROM history
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Clear removes every entry.
func (s *historyStore) Clear(ctx context.Context) (int, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared rows: %w", err)
	}
	return int(n), nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanHistoryEntry(sc scanner) (*domain.HistoryEntry, error) {
	var (
		entry                  domain.HistoryEntry
		sourceBase, targetBase int
		createdAt              string
	)

	err := sc.Scan(
		&entry.ID,
		&entry.Source.Digits, &sourceBase,
		&entry.Target.Digits, &targetBase,
		&entry.Magnitude,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}

	entry.Source.Base = domain.Base(sourceBase)
	entry.Target.Base = domain.Base(targetBase)

	entry.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}

	return &entry, nil
}
