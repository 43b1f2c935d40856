package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/resistor-bands/internal/band"
)

// TestParseFormat verifies string-to-format conversion, including case
// normalization and error cases.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false}, // case insensitive
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never", "NEVER"} {
		_, err := ParseColorMode(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, format := range []Format{FormatText, FormatJSON, FormatYAML} {
		f, err := New(format, Options{})
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := New(Format("csv"), Options{})
	assert.Error(t, err)
}

// TestFormatNumber verifies shortest exact rendering without exponents.
func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1000, "1000"},
		{270000, "270000"},
		{0.1, "0.1"},
		{0.05, "0.05"},
		{10000000, "10000000"},
		{9.99e9, "9990000000"},
		{0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestFormatRoleValue(t *testing.T) {
	assert.Equal(t, "7", FormatRoleValue(band.RoleDigit, 7))
	assert.Equal(t, "×0.01", FormatRoleValue(band.RoleMultiplier, 0.01))
	assert.Equal(t, "±0.25%", FormatRoleValue(band.RoleTolerance, 0.25))
	assert.Equal(t, "15ppm/K", FormatRoleValue(band.RoleTempCoefficient, 15))
}
