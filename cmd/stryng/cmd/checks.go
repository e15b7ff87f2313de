package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stryng/pkg/validator"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List available check names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names := validator.Names()
		return render(cmd.OutOrStdout(), format, names, func(w io.Writer) error {
			for _, n := range names {
				if _, err := fmt.Fprintln(w, n); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
