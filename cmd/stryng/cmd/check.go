package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stryng/pkg/logger"
	"github.com/dmitrymomot/stryng/pkg/validator"
)

var errChecksFailed = errors.New("check failed")

type checkResult struct {
	Value string `json:"value" yaml:"value"`
	Valid bool   `json:"valid" yaml:"valid"`
}

type checkReport struct {
	Check   string        `json:"check" yaml:"check"`
	Results []checkResult `json:"results" yaml:"results"`
}

var checkCmd = &cobra.Command{
	Use:   "check <name> <value...>",
	Short: "Validate values against a named check",
	Long: `Runs a named check against every value and prints one result per value.
The command fails when any value does not pass. Use "stryng checks" to list names.`,
	Example: `  stryng check iban "GB82 WEST 1234 5698 7654 32"
  stryng check email a@b.co not-an-email -o json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, values := args[0], args[1:]
	check, ok := validator.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", validator.ErrUnknownCheck, name)
	}

	report := checkReport{Check: name, Results: make([]checkResult, 0, len(values))}
	failed := 0
	for _, v := range values {
		valid := check(v)
		if !valid {
			failed++
		}
		report.Results = append(report.Results, checkResult{Value: v, Valid: valid})
	}

	ctx := logger.WithScope(cmd.Context(), logger.Check(name))
	log.DebugContext(ctx, "check finished", logger.Count(len(values)), slog.Int("failed", failed))

	err := render(cmd.OutOrStdout(), format, report, func(w io.Writer) error {
		for _, r := range report.Results {
			status := "ok"
			if !r.Valid {
				status = "fail"
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", status, r.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d values failed %s", errChecksFailed, failed, len(values), name)
	}
	return nil
}
