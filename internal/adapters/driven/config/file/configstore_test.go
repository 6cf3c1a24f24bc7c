package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_Getters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("display.show_steps", true))
	require.NoError(t, store.Set("display.number_type", "unsigned"))
	require.NoError(t, store.Set("history.limit", 25))

	assert.True(t, store.GetBool("display.show_steps"))
	assert.Equal(t, "unsigned", store.GetString("display.number_type"))
	assert.Equal(t, 25, store.GetInt("history.limit"))

	// Wrong types yield zero values
	assert.False(t, store.GetBool("display.number_type"))
	assert.Empty(t, store.GetString("history.limit"))
	assert.Zero(t, store.GetInt("display.show_steps"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("display.show_steps", false))
	require.NoError(t, store.Set("engine.overflow_mode", "exact"))
	require.NoError(t, store.Set("history.limit", 10))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.False(t, reopened.GetBool("display.show_steps"))
	_, ok := reopened.Get("display.show_steps")
	assert.True(t, ok)
	assert.Equal(t, "exact", reopened.GetString("engine.overflow_mode"))
	assert.Equal(t, 10, reopened.GetInt("history.limit"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("display.show_steps", true))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Contains(t, string(raw), "[display]")
	assert.Contains(t, string(raw), "show_steps = true")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[display]\nprefix_annotations = false\n\n[engine]\noverflow_mode = 'exact'\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("display.prefix_annotations")
	assert.True(t, ok)
	assert.Equal(t, false, val)
	assert.Equal(t, "exact", store.GetString("engine.overflow_mode"))
}

func TestConfigStore_Load_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("history.limit", n)
			_ = store.GetInt("history.limit")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("history.limit")
	assert.True(t, ok)
}

func TestConfigStore_Watch_ReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("display.show_steps", true))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[display]\nshow_steps = false\n"), 0600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not report change")
	}

	assert.False(t, store.GetBool("display.show_steps"))

	cancel()
	assert.NoError(t, <-done)
}

func TestConfigStore_SetMany(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.SetMany(map[string]any{
		"display.show_steps":   false,
		"engine.overflow_mode": "exact",
	}))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.False(t, reopened.GetBool("display.show_steps"))
	_, ok := reopened.Get("display.show_steps")
	assert.True(t, ok)
	assert.Equal(t, "exact", reopened.GetString("engine.overflow_mode"))
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"display.show_steps":  true,
		"display.number_type": "unsigned",
		"top":                 1,
		"top.child":           2,
	}

	nested := nestMap(flat)

	display, ok := nested["display"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, display["show_steps"])
	assert.Equal(t, "unsigned", display["number_type"])
	assert.Equal(t, 1, nested["top"])
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": "x",
		},
		"e": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"a.b.c": 1, "a.d": "x", "e": true}, flat)
}
