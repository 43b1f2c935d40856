package band

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestError_Is verifies sentinel matching by kind, including through
// wrapping.
func TestError_Is(t *testing.T) {
	err := bandCountError(2)
	assert.ErrorIs(t, err, ErrInvalidBandCount)
	assert.False(t, errors.Is(err, ErrInvalidRoleColor))

	wrapped := fmt.Errorf("decode: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidBandCount)
}

// TestError_Parts verifies the pieces renderers use to build messages.
func TestError_Parts(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		summary  string
		location string
		label    string
		got      string
	}{
		{
			name:     "role",
			err:      &Error{Kind: KindInvalidRoleColor, Role: RoleMultiplier, Position: 3, Count: 4, Got: "white"},
			summary:  "invalid multiplier color",
			location: "band 3 of 4",
			label:    "expected one of",
			got:      "white",
		},
		{
			name:     "ambiguous",
			err:      &Error{Kind: KindAmbiguousShorthand, Position: 1, Got: "g"},
			summary:  "ambiguous shorthand",
			location: "argument 1",
			label:    "matches",
			got:      `"g"`,
		},
		{
			name:     "unknown without position",
			err:      &Error{Kind: KindUnknownShorthand, Got: ""},
			summary:  "unknown shorthand",
			location: "",
			label:    "expected one of",
			got:      `""`,
		},
		{
			name:     "band count",
			err:      bandCountError(7),
			summary:  "invalid number of bands",
			location: "",
			label:    "expected one of",
			got:      "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.summary, tt.err.Summary())
			assert.Equal(t, tt.location, tt.err.Location())
			assert.Equal(t, tt.label, tt.err.ExpectedLabel())
			assert.Equal(t, tt.got, tt.err.GotValue())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unknown-shorthand", KindUnknownShorthand.String())
	assert.Equal(t, "ambiguous-shorthand", KindAmbiguousShorthand.String())
	assert.Equal(t, "invalid-color", KindInvalidColor.String())
	assert.Equal(t, "invalid-band-count", KindInvalidBandCount.String())
	assert.Equal(t, "invalid-role-color", KindInvalidRoleColor.String())
	assert.Equal(t, "unsupported-temperature-coefficient", KindUnsupportedTempCoefficient.String())
}
