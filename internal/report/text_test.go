package report

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/resistor-bands/internal/band"
	"github.com/shinji-kodama/resistor-bands/internal/model"
)

func plainText(t *testing.T) Formatter {
	t.Helper()
	f, err := New(FormatText, Options{Color: ColorNever})
	require.NoError(t, err)
	return f
}

// TestTextResult verifies the echo line and the value line for each band
// count.
func TestTextResult(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "4-band",
			tokens: []string{"br", "bla", "r", "gol"},
			want:   "Bands: brown black red gold\nResistance: 1000Ω ±5%\n",
		},
		{
			name:   "4-band 270k",
			tokens: []string{"red", "violet", "yellow", "gold"},
			want:   "Bands: red violet yellow gold\nResistance: 270000Ω ±5%\n",
		},
		{
			name:   "5-band",
			tokens: []string{"brown", "black", "black", "brown", "violet"},
			want:   "Bands: brown black black brown violet\nResistance: 1000Ω ±0.1%\n",
		},
		{
			name:   "6-band",
			tokens: []string{"yellow", "violet", "black", "red", "brown", "brown"},
			want:   "Bands: yellow violet black red brown brown\nResistance: 47000Ω ±1% (50ppm/K)\n",
		},
	}

	f := plainText(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := band.DecodeTokens(tt.tokens)
			require.NoError(t, err)

			out, err := f.Result(result)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTextResult_Nil(t *testing.T) {
	_, err := plainText(t).Result(nil)
	assert.Error(t, err)
}

// TestTextError verifies rendering of band errors, wrapped errors and
// plain errors without color.
func TestTextError(t *testing.T) {
	_, bandErr := band.DecodeTokens([]string{"brown", "black", "white", "gold"})
	require.Error(t, bandErr)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "band error",
			err:  bandErr,
			want: "Error: invalid multiplier color (band 3 of 4) (expected one of " +
				"[black, brown, red, orange, yellow, green, blue, violet, gold, silver], got white)\n",
		},
		{
			name: "band error inside CLIError",
			err:  model.WrapCLIError(model.ExitInvalidRoleColor, "cannot decode bands", bandErr),
			want: "Error: invalid multiplier color (band 3 of 4) (expected one of " +
				"[black, brown, red, orange, yellow, green, blue, violet, gold, silver], got white)\n",
		},
		{
			name: "CLIError with cause",
			err:  model.WrapCLIError(model.ExitGeneralError, "invalid --bands-json", errors.New("unexpected end of input")),
			want: "Error: invalid --bands-json: unexpected end of input\n",
		},
		{
			name: "plain error",
			err:  fmt.Errorf("unknown flag: --foo"),
			want: "Error: unknown flag: --foo\n",
		},
	}

	f := plainText(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Error(tt.err))
		})
	}
}

// TestTextError_Color verifies that expected values are green, the
// rejected value red and the position dimmed when color is forced.
func TestTextError_Color(t *testing.T) {
	f, err := New(FormatText, Options{Color: ColorAlways})
	require.NoError(t, err)

	_, decodeErr := band.DecodeTokens([]string{"g", "black", "red", "gold"})
	require.Error(t, decodeErr)

	out := f.Error(decodeErr)
	assert.Contains(t, out, "\x1b[2m(argument 1)")
	assert.Contains(t, out, "\x1b[32m[green, grey, gold]")
	assert.Contains(t, out, "\x1b[31m\"g\"")
}

// TestTextTable verifies the header and a few representative rows.
func TestTextTable(t *testing.T) {
	out, err := plainText(t).Table()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// header + 10 digits + 10 multipliers + 8 tolerances + 9 coefficients
	require.Len(t, lines, 38)
	assert.Equal(t, "ROLE                     COLOR    VALUE", lines[0])
	assert.Contains(t, out, "base                     white    9\n")
	assert.Contains(t, out, "multiplier               gold     ×0.1\n")
	assert.Contains(t, out, "tolerance                silver   ±10%\n")
	assert.Contains(t, out, "temperature coefficient  orange   25ppm/K\n")
	assert.Contains(t, out, "temperature coefficient  grey     -\n")
}
