// Package cli: decode.go implements the root "resistor <band>..." action.
//
// The bands are taken from the positional arguments or, alternatively,
// from the --bands-json flag. Each token is resolved to a color (expanding
// shorthand), the sequence is decoded, and the result is printed in the
// selected output format.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/resistor-bands/internal/band"
	"github.com/shinji-kodama/resistor-bands/internal/model"
	"github.com/shinji-kodama/resistor-bands/internal/report"
)

// decodeFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type decodeFlags struct {
	// bandsJSON is a JSON (or JSONC) array of band tokens. It replaces
	// the positional arguments when set.
	bandsJSON string
}

// runDecode is the main logic function for the root command.
// It collects the band tokens, resolves and decodes them, and prints
// the result.
func runDecode(cmd *cobra.Command, args []string, flags *decodeFlags) error {
	// Step 1: Pick the formatter first so that flag errors surface before
	// any decoding work.
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	// Step 2: Collect the raw tokens.
	tokens, err := collectTokens(args, flags)
	if err != nil {
		return err
	}
	VerboseLog("Decoding %d band(s): %s", len(tokens), strings.Join(tokens, " "))

	// Step 3: Resolve tokens to colors. Shorthand expansion is logged so
	// users can see how a prefix was interpreted.
	colors, err := band.ResolveAll(tokens)
	if err != nil {
		return wrapBandError(err)
	}
	for i, c := range colors {
		if !strings.EqualFold(strings.TrimSpace(tokens[i]), c.String()) {
			VerboseLog("Expanded %q to %s (band %d)", tokens[i], c, i+1)
		}
	}

	// Step 4: Validate and decode. The first invalid band aborts.
	result, err := band.Decode(colors)
	if err != nil {
		return wrapBandError(err)
	}
	VerboseLog("Decoded %d-band resistor: %sΩ", len(result.Bands), report.FormatNumber(result.Resistance))

	// Step 5: Output the result.
	out, err := formatter.Result(result)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to format result", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// collectTokens returns the band tokens from the positional arguments or
// the --bands-json flag. Using both at once is an error.
func collectTokens(args []string, flags *decodeFlags) ([]string, error) {
	if flags.bandsJSON == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, model.NewCLIError(model.ExitGeneralError,
			"bands must be given either as arguments or with --bands-json, not both")
	}
	return ParseBandsJSON(flags.bandsJSON)
}

// ParseBandsJSON parses a JSON array of band tokens. Comments and trailing
// commas are accepted (JSONC), so the value can be pasted from annotated
// notes:
//
//	["brown", "black", /* 10 */ "red", "gold",]
func ParseBandsJSON(value string) ([]string, error) {
	// jsonc.ToJSON strips comments and trailing commas, producing
	// standard JSON that encoding/json can parse.
	cleanJSON := jsonc.ToJSON([]byte(value))

	var tokens []string
	if err := json.Unmarshal(cleanJSON, &tokens); err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			"invalid --bands-json value (expected a JSON array of color names)", err)
	}
	return tokens, nil
}
