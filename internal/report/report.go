// Package report renders decoded resistor values, decoding errors and the
// color tables for display.
//
// Three output formats are supported: human-readable text (optionally
// colorized with github.com/fatih/color), JSON, and YAML. The band
// package never imports this package; presentation concerns such as
// terminal color detection stay here.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/shinji-kodama/resistor-bands/internal/band"
	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// Format selects the output rendering.
type Format string

const (
	// FormatText is the default human-readable output.
	FormatText Format = "text"

	// FormatJSON is indented JSON for machine consumption.
	FormatJSON Format = "json"

	// FormatYAML is YAML for machine consumption.
	FormatYAML Format = "yaml"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format value is one of the supported formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
// Returns an error if the string does not match any supported format.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// ColorMode controls whether text output contains ANSI color sequences.
type ColorMode string

const (
	// ColorAuto colors output when stdout is a terminal and NO_COLOR is
	// not set (fatih/color's detection).
	ColorAuto ColorMode = "auto"

	// ColorAlways forces color sequences.
	ColorAlways ColorMode = "always"

	// ColorNever disables color sequences.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a string to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(s))
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode: %q (valid: auto, always, never)", s)
	}
}

// Options configures a Formatter.
type Options struct {
	// Color controls ANSI colors in text output. Structured formats
	// ignore it. The zero value behaves like ColorAuto.
	Color ColorMode
}

// Formatter renders values for one output format. Returned strings end
// with a newline.
type Formatter interface {
	// Result renders a decoded resistor, including the resolved bands.
	Result(r *model.Result) (string, error)

	// Error renders a failure. *band.Error values (possibly wrapped, for
	// example in a *model.CLIError) are rendered with their position and
	// the permitted values.
	Error(err error) string

	// Table renders the permitted colors and values of every role.
	Table() (string, error)
}

// New returns the Formatter for format.
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatText:
		return newTextFormatter(opts), nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatYAML:
		return yamlFormatter{}, nil
	default:
		return nil, fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", string(format))
	}
}

// applyColorMode configures c for mode. ColorAuto leaves fatih/color's
// global detection in charge.
func applyColorMode(c *color.Color, mode ColorMode) *color.Color {
	switch mode {
	case ColorAlways:
		c.EnableColor()
	case ColorNever:
		c.DisableColor()
	}
	return c
}

// FormatNumber renders v with the fewest digits that identify it exactly,
// without exponent: 1000, 270000, 0.1, 0.05.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRoleValue renders a role table value with its unit:
// "7" for digits, "×1000" for multipliers, "±5%" for tolerance and
// "100ppm/K" for temperature coefficients.
func FormatRoleValue(role band.Role, v float64) string {
	switch role {
	case band.RoleMultiplier:
		return "×" + FormatNumber(v)
	case band.RoleTolerance:
		return "±" + FormatNumber(v) + "%"
	case band.RoleTempCoefficient:
		return FormatNumber(v) + "ppm/K"
	default:
		return FormatNumber(v)
	}
}
