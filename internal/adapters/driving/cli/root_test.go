package cli

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix/internal/core/services"
)

// setupTestServices installs real services backed by in-memory stores.
func setupTestServices(t *testing.T, seed map[string]any) *memory.HistoryStore {
	t.Helper()
	settings := services.NewSettingsService(memory.NewConfigStore(seed))
	store := memory.NewHistoryStore()
	SetServices(Services{
		Converter: services.NewConverterService(settings, store),
		Settings:  settings,
		History:   services.NewHistoryService(store, settings),
	})
	t.Cleanup(func() { SetServices(Services{}) })
	return store
}

// execute runs the root command with fresh flag state.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestRoot_NonTerminalShowsHelp(t *testing.T) {
	setupTestServices(t, nil)

	stdout, _, err := execute(t, new(bytes.Buffer))

	require.NoError(t, err)
	assert.Contains(t, stdout, "radix converts numerals")
	assert.Contains(t, stdout, "convert")
}

func TestRoot_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "ephemeral"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}

func TestRequireServices(t *testing.T) {
	SetServices(Services{})

	assert.Error(t, requireConverter())
	assert.Error(t, requireSettings())
	assert.Error(t, requireHistory())

	setupTestServices(t, nil)

	assert.NoError(t, requireConverter())
	assert.NoError(t, requireSettings())
	assert.NoError(t, requireHistory())
}

func TestSetup_Bootstrap(t *testing.T) {
	SetServices(Services{})
	var (
		got    BootstrapOptions
		closed bool
	)
	SetBootstrap(func(opts BootstrapOptions) (*Services, func() error, error) {
		got = opts
		settings := services.NewSettingsService(memory.NewConfigStore())
		return &Services{
			Converter: services.NewConverterService(settings, nil),
			Settings:  settings,
		}, func() error { closed = true; return nil }, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		SetServices(Services{})
	})

	resetFlags(rootCmd)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--config-dir", "/tmp/radix-test", "--ephemeral", "version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())

	assert.Equal(t, BootstrapOptions{ConfigDir: "/tmp/radix-test", Ephemeral: true}, got)
	assert.NotNil(t, converterService)
	assert.True(t, closed)
}

func TestSetup_BootstrapError(t *testing.T) {
	SetServices(Services{})
	SetBootstrap(func(BootstrapOptions) (*Services, func() error, error) {
		return nil, nil, errors.New("disk on fire")
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, _, err := execute(t, nil, "version")

	assert.EqualError(t, err, "disk on fire")
}

func TestSetup_SkipsBootstrapWhenServicesSet(t *testing.T) {
	setupTestServices(t, nil)
	called := false
	SetBootstrap(func(BootstrapOptions) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, _, err := execute(t, nil, "version")

	require.NoError(t, err)
	assert.False(t, called)
}
