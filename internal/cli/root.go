// Package cli implements the cobra-based CLI commands for resistor.
//
// The root command decodes the band colors given as positional arguments.
// The "colors" subcommand is defined in its own file. This file defines the
// root command, the global flags, and the error-to-exit-code handling.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/resistor-bands/internal/band"
	"github.com/shinji-kodama/resistor-bands/internal/model"
	"github.com/shinji-kodama/resistor-bands/internal/report"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput is a shortcut for --output json.
	jsonOutput bool

	// outputFormat selects text, json or yaml output.
	outputFormat string

	// colorMode controls ANSI colors in text output: auto, always, never.
	colorMode string

	// verbose enables detailed logging output for debugging.
	// When true, the resolution of each band is printed to stderr.
	verbose bool

	// logOut receives verbose output. It is the root command's error
	// stream once the command runs.
	logOut io.Writer = os.Stderr
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a pure command group, the root command does real work: its
// positional arguments are the bands to decode (see decode.go).
func NewRootCommand() *cobra.Command {
	flags := &decodeFlags{}

	rootCmd := &cobra.Command{
		Use:   "resistor [flags] <band>...",
		Short: "Decode resistor color bands",
		Long: `resistor decodes the color bands of a 4, 5 or 6 band resistor into its
resistance, tolerance and (for 6 bands) temperature coefficient.

Bands are given in reading order as color names or unambiguous prefixes,
case-insensitive: black, brown, red, orange, yellow, green, blue, violet,
grey, white, gold, silver.

Examples:
  resistor brown black red gold
  resistor br bla bla br vi
  resistor --output yaml yellow violet black red brown brown
  resistor --bands-json '["red", "violet", "yellow", "gold"]'`,

		// Any number of arguments is accepted here so that a wrong band
		// count is reported by the decoder with its own message and exit code.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text, JSON or YAML).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logOut = cmd.ErrOrStderr()
			_, err := newFormatter()
			return err
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (same as --output json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(report.FormatText), "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", string(report.ColorAuto), "Colorize text output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.MarkFlagsMutuallyExclusive("json", "output")

	rootCmd.Flags().StringVar(&flags.bandsJSON, "bands-json", "",
		`Bands as a JSON array, e.g. '["brown", "black", "red", "gold"]' (comments allowed)`)

	rootCmd.AddCommand(NewColorsCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(int(ExitCodeFor(err)))
	}
}

// ExitCodeFor translates an error returned by a command into the process
// exit code. CLIError types carry their own exit codes; band errors that
// were not wrapped map by kind; everything else is a general error.
func ExitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	var bandErr *band.Error
	if errors.As(err, &bandErr) {
		return exitCodeForKind(bandErr.Kind)
	}
	return model.ExitGeneralError
}

func exitCodeForKind(kind band.Kind) model.ExitCode {
	switch kind {
	case band.KindUnknownShorthand:
		return model.ExitUnknownShorthand
	case band.KindAmbiguousShorthand:
		return model.ExitAmbiguousShorthand
	case band.KindInvalidColor:
		return model.ExitInvalidColor
	case band.KindInvalidBandCount:
		return model.ExitInvalidBandCount
	case band.KindInvalidRoleColor:
		return model.ExitInvalidRoleColor
	case band.KindUnsupportedTempCoefficient:
		return model.ExitUnsupportedTempCoefficient
	default:
		return model.ExitGeneralError
	}
}

// wrapBandError attaches the exit code for a band error. Other errors are
// returned unchanged.
func wrapBandError(err error) error {
	var bandErr *band.Error
	if errors.As(err, &bandErr) {
		return model.WrapCLIError(exitCodeForKind(bandErr.Kind), "cannot decode bands", err)
	}
	return err
}

// printError outputs an error message in the selected output format.
// Errors always go to stderr, even in JSON mode, because stdout is
// reserved for successful command output. If the format flags themselves
// are invalid, plain text is used.
func printError(w io.Writer, err error) {
	formatter, fmtErr := newFormatter()
	if fmtErr != nil {
		formatter, _ = report.New(report.FormatText, report.Options{Color: report.ColorNever})
	}
	fmt.Fprint(w, formatter.Error(err))
}

// newFormatter builds the report formatter selected by the global flags.
func newFormatter() (report.Formatter, error) {
	format, err := selectedFormat()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "invalid --output value", err)
	}
	mode, err := report.ParseColorMode(colorMode)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "invalid --color value", err)
	}
	return report.New(format, report.Options{Color: mode})
}

func selectedFormat() (report.Format, error) {
	if jsonOutput {
		return report.FormatJSON, nil
	}
	return report.ParseFormat(outputFormat)
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand how their input was interpreted.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(logOut, "[verbose] "+format+"\n", args...)
	}
}
