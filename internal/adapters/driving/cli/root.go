// Package cli provides the cobra command tree for radix.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/radix/internal/core/ports/driven"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
	"github.com/custodia-labs/radix/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	ephemeral bool
)

// Services used by the commands. Set by SetServices or by the bootstrap hook.
var (
	converterService driving.ConverterService
	settingsService  driving.SettingsService
	historyService   driving.HistoryService
	configWatcher    driven.ConfigWatcher
)

// Services bundles the ports the commands depend on.
type Services struct {
	Converter driving.ConverterService
	Settings  driving.SettingsService
	History   driving.HistoryService

	// Watcher reloads configuration for long-running commands. May be nil.
	Watcher driven.ConfigWatcher
}

// BootstrapOptions carries the persistent flags needed to build services.
type BootstrapOptions struct {
	ConfigDir string
	Ephemeral bool
}

// BootstrapFunc builds services after flags are parsed. The returned close
// function releases any resources and may be nil.
type BootstrapFunc func(opts BootstrapOptions) (*Services, func() error, error)

var (
	bootstrap     BootstrapFunc
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Convert numbers between bases 2 to 16",
	Long: `radix converts numerals between positional bases 2 through 16 and
explains each conversion step by step.

Run without arguments in a terminal to open the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.radix)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings and history in memory only")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices installs the services used by commands.
func SetServices(s Services) {
	converterService = s.Converter
	settingsService = s.Settings
	historyService = s.History
	configWatcher = s.Watcher
}

// SetBootstrap registers a hook that builds services from the parsed flags.
// It only runs when no services have been set.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// Execute runs the root command and releases bootstrapped resources.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("closing services: %v", cerr)
		}
		closeServices = nil
	}
	return err
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || converterService != nil {
		return nil
	}

	logger.Debug("bootstrapping services (config-dir=%q, ephemeral=%t)", configDir, ephemeral)
	services, closer, err := bootstrap(BootstrapOptions{ConfigDir: configDir, Ephemeral: ephemeral})
	if err != nil {
		return err
	}
	SetServices(*services)
	closeServices = closer
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.InOrStdin()) {
		return cmd.Help()
	}
	return runTUI(cmd, args)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func requireConverter() error {
	if converterService == nil {
		return errors.New("converter service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func requireHistory() error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	return nil
}
