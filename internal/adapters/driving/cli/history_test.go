package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/core/domain"
)

func TestHistory_Empty(t *testing.T) {
	setupTestServices(t, nil)

	stdout, _, err := execute(t, nil, "history")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No conversions recorded.")
}

func TestHistory_ListShowClear(t *testing.T) {
	store := setupTestServices(t, nil)

	_, _, err := execute(t, nil, "convert", "-f", "bin", "-t", "hex", "11111111")
	require.NoError(t, err)
	_, _, err = execute(t, nil, "convert", "-t", "oct", "8")
	require.NoError(t, err)

	stdout, _, err := execute(t, nil, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "11111111 (2) → FF (16)")
	assert.Contains(t, stdout, "8 (10) → 10 (8)")

	entries, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	stdout, _, err = execute(t, nil, "history", "--limit", "1", "--json")
	require.NoError(t, err)
	var listed []domain.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, entries[0].ID, listed[0].ID)

	stdout, _, err = execute(t, nil, "history", "show", entries[1].ID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ID: "+entries[1].ID)
	assert.Contains(t, stdout, "Hexadecimal (16-base): FF")
	assert.Contains(t, stdout, "Validation (Decimal): 255")

	stdout, _, err = execute(t, nil, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed 2 entries")

	entries, err = store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_ShowMissing(t *testing.T) {
	setupTestServices(t, nil)

	_, _, err := execute(t, nil, "history", "show", "nope")

	assert.EqualError(t, err, `no history entry with id "nope"`)
}

func TestHistory_DisabledRecordsNothing(t *testing.T) {
	store := setupTestServices(t, map[string]any{"history.enabled": false})

	_, _, err := execute(t, nil, "convert", "-t", "2", "5")
	require.NoError(t, err)

	entries, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_NoService(t *testing.T) {
	SetServices(Services{})

	_, _, err := execute(t, nil, "history", "list")

	assert.EqualError(t, err, "history service not configured")
}
