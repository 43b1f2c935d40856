package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColor_String verifies that every color renders as its canonical
// lowercase name, in standard order.
func TestColor_String(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{Black, "black"},
		{Brown, "brown"},
		{Red, "red"},
		{Orange, "orange"},
		{Yellow, "yellow"},
		{Green, "green"},
		{Blue, "blue"},
		{Violet, "violet"},
		{Grey, "grey"},
		{White, "white"},
		{Gold, "gold"},
		{Silver, "silver"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.String())
		})
	}
}

// TestColor_IsValid checks that only the twelve defined colors pass validation.
func TestColor_IsValid(t *testing.T) {
	assert.True(t, Black.IsValid())
	assert.True(t, Silver.IsValid())
	assert.False(t, Color(12).IsValid())
	assert.False(t, Color(255).IsValid())
	assert.Equal(t, "color(12)", Color(12).String())
}

// TestAllColors verifies the full color set and that callers get a copy.
func TestAllColors(t *testing.T) {
	all := AllColors()
	require.Len(t, all, 12)
	assert.Equal(t, Black, all[0])
	assert.Equal(t, Silver, all[11])

	all[0] = Gold
	assert.Equal(t, Black, AllColors()[0], "AllColors must return a fresh slice")
}

// TestParseColor verifies name-to-color conversion, including case
// normalization and error cases.
func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		hasError bool
	}{
		{"black", Black, false},
		{"violet", Violet, false},
		{"silver", Silver, false},
		{"Gold", Gold, false}, // case insensitive
		{"GREY", Grey, false}, // case insensitive
		{" red ", Red, false}, // surrounding whitespace
		{"gray", 0, true},     // only the canonical spelling
		{"bl", 0, true},       // shorthand is not accepted here
		{"", 0, true},         // empty string
		{"purple", 0, true},   // unknown name
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseColor(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestParseColor_RoundTrip verifies that every color name parses back to itself.
func TestParseColor_RoundTrip(t *testing.T) {
	for _, c := range AllColors() {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, []string{"brown", "black", "red", "gold"},
		ColorNames([]Color{Brown, Black, Red, Gold}))
	assert.Empty(t, ColorNames(nil))
}

// TestResult_JSON verifies that colors serialize by name and that the
// temperature coefficient is omitted when absent.
func TestResult_JSON(t *testing.T) {
	r := &Result{
		Bands:      []Color{Brown, Black, Red, Gold},
		Resistance: 1000,
		Tolerance:  5,
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"bands":["brown","black","red","gold"],"resistanceOhms":1000,"tolerancePercent":5}`,
		string(data))

	tc := 100.0
	r.TemperatureCoefficient = &tc
	data, err = json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"temperatureCoefficientPpmK":100`)
}

// TestResult_Bounds verifies the tolerance window around the nominal value.
func TestResult_Bounds(t *testing.T) {
	r := &Result{Resistance: 1000, Tolerance: 5}
	assert.InDelta(t, 950.0, r.Min(), 1e-9)
	assert.InDelta(t, 1050.0, r.Max(), 1e-9)
	assert.False(t, r.HasTemperatureCoefficient())

	tc := 50.0
	r.TemperatureCoefficient = &tc
	assert.True(t, r.HasTemperatureCoefficient())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInvalidBandCount, "invalid number of bands")
		assert.Equal(t, ExitInvalidBandCount, err.Code)
		assert.Equal(t, "invalid number of bands", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("got 2")
		err := WrapCLIError(ExitInvalidBandCount, "invalid number of bands", inner)
		assert.Equal(t, ExitInvalidBandCount, err.Code)
		assert.Equal(t, "invalid number of bands: got 2", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("got 2")
		err := WrapCLIError(ExitInvalidBandCount, "invalid number of bands", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
