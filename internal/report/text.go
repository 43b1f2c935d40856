package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shinji-kodama/resistor-bands/internal/band"
	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// textFormatter renders human-readable output. Expected values are shown
// in green, rejected values in red and positions dimmed, as in the
// message layout below:
//
//	Error: invalid multiplier color (band 3 of 4) (expected one of [...], got white)
type textFormatter struct {
	value    *color.Color
	dim      *color.Color
	expected *color.Color
	rejected *color.Color
}

func newTextFormatter(opts Options) *textFormatter {
	return &textFormatter{
		value:    applyColorMode(color.New(color.Bold), opts.Color),
		dim:      applyColorMode(color.New(color.Faint), opts.Color),
		expected: applyColorMode(color.New(color.FgGreen), opts.Color),
		rejected: applyColorMode(color.New(color.FgRed), opts.Color),
	}
}

// Result renders the resolved bands and the decoded values:
//
//	Bands: brown black red gold
//	Resistance: 1000Ω ±5%
//
// Six-band results append the temperature coefficient, e.g. " (50ppm/K)".
func (f *textFormatter) Result(r *model.Result) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no result to format")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Bands: %s\n", strings.Join(model.ColorNames(r.Bands), " "))
	fmt.Fprintf(&b, "Resistance: %s ±%s",
		f.value.Sprint(FormatNumber(r.Resistance)+"Ω"),
		f.value.Sprint(FormatNumber(r.Tolerance)+"%"))
	if r.HasTemperatureCoefficient() {
		fmt.Fprintf(&b, " (%s)", f.value.Sprint(FormatNumber(*r.TemperatureCoefficient)+"ppm/K"))
	}
	b.WriteString("\n")
	return b.String(), nil
}

// Error renders "Error: <message>". Band errors get colored value lists.
func (f *textFormatter) Error(err error) string {
	var bandErr *band.Error
	if errors.As(err, &bandErr) {
		var b strings.Builder
		b.WriteString("Error: ")
		b.WriteString(bandErr.Summary())
		if loc := bandErr.Location(); loc != "" {
			fmt.Fprintf(&b, " %s", f.dim.Sprintf("(%s)", loc))
		}
		fmt.Fprintf(&b, " (%s %s, got %s)\n",
			bandErr.ExpectedLabel(),
			f.expected.Sprintf("[%s]", strings.Join(bandErr.Expected, ", ")),
			f.rejected.Sprint(bandErr.GotValue()))
		return b.String()
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) && cliErr.Err != nil {
		return fmt.Sprintf("Error: %s: %v\n", cliErr.Message, cliErr.Err)
	}
	return fmt.Sprintf("Error: %v\n", err)
}

// Table renders every role's permitted colors and values as an aligned
// table:
//
//	ROLE                     COLOR    VALUE
//	base                     black    0
//	multiplier               gold     ×0.1
//	temperature coefficient  yellow   -
func (f *textFormatter) Table() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %-8s %s\n", "ROLE", "COLOR", "VALUE")
	for _, row := range tableRows() {
		value := "-"
		if row.value != nil {
			value = FormatRoleValue(row.role, *row.value)
		}
		fmt.Fprintf(&b, "%-24s %-8s %s\n", row.role, row.color, value)
	}
	return b.String(), nil
}

// tableRow is one permitted color of one role. value is nil when the
// color is permitted but has no defined value.
type tableRow struct {
	role  band.Role
	color model.Color
	value *float64
}

// tableRows flattens the role tables in role order, then table order.
func tableRows() []tableRow {
	var rows []tableRow
	for _, role := range band.Roles() {
		for _, c := range role.Colors() {
			row := tableRow{role: role, color: c}
			if v, ok := role.Value(c); ok {
				row.value = &v
			}
			rows = append(rows, row)
		}
	}
	return rows
}
