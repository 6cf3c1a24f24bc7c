package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change display, engine and history settings.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsStepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Toggle step visualization",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSteps,
}

var settingsPrefixCmd = &cobra.Command{
	Use:   "prefix",
	Short: "Toggle base prefix annotations (0b, 0, 0x)",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPrefix,
}

var settingsNumberTypeCmd = &cobra.Command{
	Use:   "number-type",
	Short: "Toggle between unsigned and signed number type",
	Args:  cobra.NoArgs,
	RunE:  runSettingsNumberType,
}

var settingsOverflowCmd = &cobra.Command{
	Use:   "overflow <literal|exact>",
	Short: "Set the overflow check mode",
	Long: `Set how the overflow check decides a value is too large.

Available modes:
  literal - compare the digits with 9223372036854775807 (exact for decimal input only)
  exact   - compare the computed value with 9223372036854775807

Values above 9223372036854775807 are rejected in both modes.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.OverflowLiteral), string(domain.OverflowExact)},
	RunE:      runSettingsOverflow,
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history <on|off>",
	Short: "Enable or disable conversion history",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHistory,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsStepsCmd)
	settingsCmd.AddCommand(settingsPrefixCmd)
	settingsCmd.AddCommand(settingsNumberTypeCmd)
	settingsCmd.AddCommand(settingsOverflowCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Step Visualization: %s\n", domain.EnabledLabel(settings.Display.ShowSteps))
	cmd.Printf("  Prefix Annotations: %s\n", domain.EnabledLabel(settings.Display.PrefixAnnotations))
	cmd.Printf("  Number Type: %s\n", settings.Display.NumberType.Description())
	cmd.Println()

	cmd.Println("[Engine]")
	cmd.Printf("  Overflow Mode: %s\n", settings.Engine.Overflow.Description())
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Recording: %s\n", domain.EnabledLabel(settings.History.Enabled))
	cmd.Printf("  List Limit: %d\n", settings.History.Limit)

	return nil
}

func runSettingsSteps(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	enabled, err := settingsService.ToggleShowSteps()
	if err != nil {
		return fmt.Errorf("failed to toggle steps: %w", err)
	}
	cmd.Printf("Step visualization %s\n", strings.ToLower(domain.EnabledLabel(enabled)))
	return nil
}

func runSettingsPrefix(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	enabled, err := settingsService.TogglePrefixAnnotations()
	if err != nil {
		return fmt.Errorf("failed to toggle prefixes: %w", err)
	}
	cmd.Printf("Prefix annotations %s\n", strings.ToLower(domain.EnabledLabel(enabled)))
	return nil
}

func runSettingsNumberType(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	nt, err := settingsService.ToggleNumberType()
	if err != nil {
		return fmt.Errorf("failed to toggle number type: %w", err)
	}
	cmd.Printf("Number type set to %s\n", nt.Description())
	if !nt.IsSupported() {
		cmd.Println("Note: conversions still treat every value as unsigned.")
	}
	return nil
}

func runSettingsOverflow(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	mode := domain.OverflowMode(args[0])
	if err := settingsService.SetOverflowMode(mode); err != nil {
		return fmt.Errorf("failed to set overflow mode: %w", err)
	}
	cmd.Printf("Overflow mode set to %s\n", mode.Description())
	return nil
}

func runSettingsHistory(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	enabled, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetHistoryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to update history setting: %w", err)
	}
	cmd.Printf("History recording %s\n", strings.ToLower(domain.EnabledLabel(enabled)))
	return nil
}

// parseSwitch accepts on/off as well as anything strconv.ParseBool understands.
func parseSwitch(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: expected on or off, got %q", domain.ErrInvalidInput, s)
	}
	return b, nil
}
