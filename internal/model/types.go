// Package model defines the domain types for the resistor CLI.
//
// All entities in this package are transient: a Color sequence is parsed
// from the command line, decoded into a Result, printed, and discarded.
package model

import (
	"fmt"
	"strings"
)

// Color is one of the twelve colors used on resistor bands.
//
// The numeric value of each constant is its position in the standard color
// order (black first, silver last). For black through white this position
// is also the digit the color encodes.
type Color int

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
	Gold
	Silver

	// numColors is the number of defined colors. It is not a valid Color.
	numColors
)

// colorNames holds the canonical lowercase name of every Color, indexed
// by the Color value.
var colorNames = [numColors]string{
	Black:  "black",
	Brown:  "brown",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	Grey:   "grey",
	White:  "white",
	Gold:   "gold",
	Silver: "silver",
}

// String returns the canonical lowercase name of the color.
// Undefined values render as "color(N)" so they are still identifiable
// in error messages.
func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// IsValid checks whether the Color value is one of the twelve defined colors.
func (c Color) IsValid() bool {
	return c >= 0 && c < numColors
}

// MarshalText implements encoding.TextMarshaler so that colors serialize
// as their names in JSON and YAML output.
func (c Color) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid color value %d", int(c))
	}
	return []byte(colorNames[c]), nil
}

// AllColors returns the twelve colors in standard order.
// The returned slice is a fresh copy and may be modified by the caller.
func AllColors() []Color {
	colors := make([]Color, 0, numColors)
	for c := Black; c < numColors; c++ {
		colors = append(colors, c)
	}
	return colors
}

// ParseColor converts a full color name to a Color.
// Matching is case-insensitive and ignores surrounding whitespace, but
// the name must be complete. Shorthand expansion lives in the band package.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range colorNames {
		if n == name {
			return Color(c), nil
		}
	}
	return 0, fmt.Errorf("invalid color: %q (valid: %s)", s, strings.Join(colorNames[:], ", "))
}

// ColorNames converts a slice of colors to their names, preserving order.
func ColorNames(colors []Color) []string {
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, c.String())
	}
	return names
}

// Result is the decoded value of a band sequence.
type Result struct {
	// Bands is the resolved color sequence the result was decoded from.
	Bands []Color `json:"bands" yaml:"bands"`

	// Resistance is the nominal resistance in ohms.
	Resistance float64 `json:"resistanceOhms" yaml:"resistanceOhms"`

	// Tolerance is the manufacturing tolerance as a percentage (5.0 = ±5%).
	Tolerance float64 `json:"tolerancePercent" yaml:"tolerancePercent"`

	// TemperatureCoefficient is the drift in ppm/K.
	// Only set for 6-band resistors.
	TemperatureCoefficient *float64 `json:"temperatureCoefficientPpmK,omitempty" yaml:"temperatureCoefficientPpmK,omitempty"`
}

// HasTemperatureCoefficient reports whether the result carries a
// temperature coefficient (i.e. it was decoded from six bands).
func (r *Result) HasTemperatureCoefficient() bool {
	return r.TemperatureCoefficient != nil
}

// Min returns the lowest resistance within tolerance, in ohms.
func (r *Result) Min() float64 {
	return r.Resistance - r.Resistance*r.Tolerance/100
}

// Max returns the highest resistance within tolerance, in ohms.
func (r *Result) Max() float64 {
	return r.Resistance + r.Resistance*r.Tolerance/100
}

// ExitCode defines the CLI exit codes.
// These codes allow scripts to tell the different kinds of rejected input
// apart without parsing the error message.
type ExitCode int

const (
	// ExitSuccess indicates the bands were decoded successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, such as
	// an invalid flag value.
	ExitGeneralError ExitCode = 1

	// ExitUnknownShorthand indicates an input token matched no color.
	ExitUnknownShorthand ExitCode = 2

	// ExitAmbiguousShorthand indicates an input token matched several colors.
	ExitAmbiguousShorthand ExitCode = 3

	// ExitInvalidColor indicates a value outside the twelve known colors.
	ExitInvalidColor ExitCode = 4

	// ExitInvalidBandCount indicates fewer than 4 or more than 6 bands.
	ExitInvalidBandCount ExitCode = 5

	// ExitInvalidRoleColor indicates a color that is not allowed at its
	// band position (e.g. white as a multiplier).
	ExitInvalidRoleColor ExitCode = 6

	// ExitUnsupportedTempCoefficient indicates a temperature coefficient
	// color that is allowed but has no defined ppm/K value.
	ExitUnsupportedTempCoefficient ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
