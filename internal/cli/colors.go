// Package cli: colors.go implements the "resistor colors" command.
//
// The colors command prints the color tables used for decoding: which
// colors each band role accepts and what value each one stands for.
// Output follows the global --output flag.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// NewColorsCommand creates the "colors" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewColorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the band colors and their values",
		Long: `List every band role (base digit, multiplier, tolerance and
temperature coefficient) with the colors it accepts and their values.

Temperature coefficient colors without a defined value are shown as "-"
and are rejected when decoding.

Examples:
  resistor colors
  resistor colors --output yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runColors(cmd)
		},
	}

	return cmd
}

// runColors renders the role tables in the selected format.
func runColors(cmd *cobra.Command) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	out, err := formatter.Table()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to format color table", err)
	}
	VerboseLog("Rendered color table")

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
