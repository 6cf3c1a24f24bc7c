package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

var (
	convertFrom  string
	convertTo    string
	convertSteps bool
	convertJSON  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [numeral...]",
	Short: "Convert numerals between bases",
	Long: `Convert one or more numerals from one base to another.

Bases may be given as a number from 2 to 16 or by name:
  bin, binary, oct, octal, dec, decimal, hex, hexadecimal

Digits must use 0-9 and uppercase A-F. When no numerals are given and
stdin is not a terminal, one numeral is read per line.

Examples:
  radix convert --from bin --to hex 11111111
  radix convert -f 10 -t 2 255 1024 --steps=false
  echo FF | radix convert -f hex -t dec --json`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "dec", "source base")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target base")
	convertCmd.Flags().BoolVar(&convertSteps, "steps", true, "show conversion steps (defaults to the display.show_steps setting)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output results as JSON")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := requireConverter(); err != nil {
		return err
	}

	from, err := domain.ParseBase(convertFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := domain.ParseBase(convertTo)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	inputs := args
	if len(inputs) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return errors.New("no numerals given")
		}
		inputs, err = readInputs(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	var steps *bool
	if cmd.Flags().Changed("steps") {
		steps = &convertSteps
	}

	prefix := true
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			prefix = settings.Display.PrefixAnnotations
		}
	}

	var (
		results []*domain.ConversionResult
		failed  int
	)
	for _, input := range inputs {
		result, err := convertOne(cmd, input, from, to, steps)
		if err != nil {
			failed++
			cmd.PrintErrf("Error: %s: %v\n", input, err)
			continue
		}
		if convertJSON {
			results = append(results, result)
			continue
		}
		printResult(cmd.OutOrStdout(), result, prefix)
	}

	if convertJSON && len(results) > 0 {
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		if err := outputJSON(cmd, v); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(inputs))
	}
	return nil
}

func convertOne(cmd *cobra.Command, input string, from, to domain.Base, steps *bool) (*domain.ConversionResult, error) {
	if err := domain.CheckInputLength(input); err != nil {
		return nil, err
	}
	return converterService.Convert(cmd.Context(), driving.ConvertRequest{
		Input: input,
		From:  from,
		To:    to,
		Steps: steps,
	})
}

// readInputs returns the non-blank lines of r. Lines are not trimmed, so
// surrounding spaces fail digit validation.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(inputs) == 0 {
		return nil, errors.New("no numerals given")
	}
	return inputs, nil
}

// printResult writes r in the plain-text layout.
func printResult(w io.Writer, r *domain.ConversionResult, prefix bool) {
	fmt.Fprintf(w, "%s: %s\n", r.Source.Base.Description(), r.Source.Format(prefix))
	fmt.Fprintf(w, "%s: %s\n", r.Target.Base.Description(), r.Target.Format(prefix))
	fmt.Fprintf(w, "Validation (Decimal): %d\n", r.Magnitude)

	if r.HasTrace() {
		fmt.Fprintf(w, "\nSteps (%s):\n", r.TraceTitle())
		for i, step := range r.Steps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step.String())
		}
	}
	fmt.Fprintln(w)
}
