package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix/internal/adapters/driving/mcp"
	"github.com/custodia-labs/radix/internal/core/services"
)

// fakeWatcher records that Watch ran and blocks until its context ends.
type fakeWatcher struct {
	started chan struct{}
	stopped chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{started: make(chan struct{}), stopped: make(chan struct{})}
}

func (w *fakeWatcher) Watch(ctx context.Context, _ func()) error {
	close(w.started)
	<-ctx.Done()
	close(w.stopped)
	return nil
}

// stubServe replaces the MCP transport for the duration of a test.
func stubServe(t *testing.T, fn func(ctx context.Context, addr string, opts mcp.HTTPOptions) error) {
	t.Helper()
	orig := serveMCP
	serveMCP = func(ctx context.Context, _ *mcp.Server, addr string, opts mcp.HTTPOptions) error {
		return fn(ctx, addr, opts)
	}
	t.Cleanup(func() { serveMCP = orig })
}

func setupMCPServices(t *testing.T, watcher *fakeWatcher) {
	t.Helper()
	settings := services.NewSettingsService(memory.NewConfigStore())
	store := memory.NewHistoryStore()
	s := Services{
		Converter: services.NewConverterService(settings, store),
		Settings:  settings,
		History:   services.NewHistoryService(store, settings),
	}
	if watcher != nil {
		s.Watcher = watcher
	}
	SetServices(s)
	t.Cleanup(func() { SetServices(Services{}) })
}

func TestMCPServe_WatchesConfigWhileServing(t *testing.T) {
	watcher := newFakeWatcher()
	setupMCPServices(t, watcher)

	var (
		gotAddr string
		gotOpts mcp.HTTPOptions
	)
	stubServe(t, func(_ context.Context, addr string, opts mcp.HTTPOptions) error {
		gotAddr, gotOpts = addr, opts
		select {
		case <-watcher.started:
			return nil
		case <-time.After(5 * time.Second):
			return errors.New("config watcher not started")
		}
	})

	_, stderr, err := execute(t, nil, "mcp", "serve", "--port", "8080", "--rate", "5", "--burst", "10")

	require.NoError(t, err)
	assert.Equal(t, ":8080", gotAddr)
	assert.Equal(t, mcp.HTTPOptions{RequestsPerSecond: 5, Burst: 10}, gotOpts)
	assert.Contains(t, stderr, "http://localhost:8080")

	select {
	case <-watcher.stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("config watcher still running after the server returned")
	}
}

func TestMCPServe_StdioWithoutWatcher(t *testing.T) {
	setupMCPServices(t, nil)

	called := false
	stubServe(t, func(_ context.Context, addr string, _ mcp.HTTPOptions) error {
		called = true
		assert.Empty(t, addr)
		return nil
	})

	_, _, err := execute(t, nil, "mcp", "serve")

	require.NoError(t, err)
	assert.True(t, called)
}

func TestMCPServe_PropagatesServerError(t *testing.T) {
	setupMCPServices(t, nil)
	stubServe(t, func(context.Context, string, mcp.HTTPOptions) error {
		return errors.New("listen failed")
	})

	_, _, err := execute(t, nil, "mcp", "serve")

	assert.EqualError(t, err, "listen failed")
}
