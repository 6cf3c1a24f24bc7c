// Command radix converts numbers between bases 2 to 16.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/radix/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/radix/internal/adapters/driving/cli"
	"github.com/custodia-labs/radix/internal/core/ports/driven"
	"github.com/custodia-labs/radix/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.BootstrapOptions) (*cli.Services, func() error, error) {
	if opts.Ephemeral {
		return newServices(memory.NewConfigStore(), memory.NewHistoryStore(), nil), nil, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		var err error
		dir, err = file.DefaultConfigDir()
		if err != nil {
			return nil, nil, err
		}
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}

	return newServices(configStore, store.HistoryStore(), configStore), store.Close, nil
}

func newServices(config driven.ConfigStore, history driven.HistoryStore, watcher driven.ConfigWatcher) *cli.Services {
	settings := services.NewSettingsService(config)
	return &cli.Services{
		Converter: services.NewConverterService(settings, history),
		Settings:  settings,
		History:   services.NewHistoryService(history, settings),
		Watcher:   watcher,
	}
}
