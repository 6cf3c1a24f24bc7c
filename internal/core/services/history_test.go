package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix/internal/core/domain"
)

func seedHistory(t *testing.T, store *memory.HistoryStore, n int) {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, store.Save(context.Background(), domain.HistoryEntry{
			ID:        fmt.Sprintf("id-%d", i),
			Source:    domain.Numeral{Digits: "1", Base: domain.Binary},
			Target:    domain.Numeral{Digits: "1", Base: domain.Decimal},
			Magnitude: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
}

func TestHistoryService_List_UsesSettingLimit(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store, 5)
	settings := NewSettingsService(memory.NewConfigStore(map[string]any{"history.limit": 3}))
	svc := NewHistoryService(store, settings)

	entries, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "id-4", entries[0].ID)
}

func TestHistoryService_List_ExplicitLimit(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store, 5)
	svc := NewHistoryService(store, nil)

	entries, err := svc.List(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestHistoryService_Get(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store, 1)
	svc := NewHistoryService(store, nil)

	entry, err := svc.Get(context.Background(), "id-0")
	require.NoError(t, err)
	assert.Equal(t, "id-0", entry.ID)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_Clear(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store, 4)
	svc := NewHistoryService(store, nil)

	n, err := svc.Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestHistoryService_NoStore(t *testing.T) {
	svc := NewHistoryService(nil, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, 0)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = svc.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = svc.Clear(ctx)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)
}
