package band

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// Decode converts a resolved band sequence into its electrical values.
//
// The first failure aborts decoding and no partial result is returned.
// Resistance is the base value times the multiplier, without rounding.
// The temperature coefficient is set only for six bands.
func Decode(colors []model.Color) (*model.Result, error) {
	if err := checkColors(colors); err != nil {
		return nil, err
	}
	layout, err := LayoutFor(len(colors))
	if err != nil {
		return nil, err
	}

	base, err := Base(colors)
	if err != nil {
		return nil, err
	}
	multiplier, err := Multiplier(colors)
	if err != nil {
		return nil, err
	}
	tolerance, err := Tolerance(colors)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		Bands:      slices.Clone(colors),
		Resistance: float64(base) * multiplier,
		Tolerance:  tolerance,
	}

	if layout.HasTempCoefficient() {
		tc, err := TemperatureCoefficient(colors)
		if err != nil {
			return nil, err
		}
		result.TemperatureCoefficient = &tc
	}

	return result, nil
}

// DecodeTokens resolves raw tokens and decodes the resulting sequence.
func DecodeTokens(tokens []string) (*model.Result, error) {
	colors, err := ResolveAll(tokens)
	if err != nil {
		return nil, err
	}
	return Decode(colors)
}

// Base returns the significant-digits value formed by the digit bands:
// two for four bands, three for five or six. The digits are concatenated
// as a decimal string and parsed, so brown-black gives 10 and
// brown-black-black gives 100.
func Base(colors []model.Color) (uint64, error) {
	layout, err := layoutOf(colors)
	if err != nil {
		return 0, err
	}

	var digits strings.Builder
	for pos := 1; pos <= layout.Digits; pos++ {
		if err := checkRole(colors, RoleDigit, pos); err != nil {
			return 0, err
		}
		digit, _ := RoleDigit.Value(colors[pos-1])
		digits.WriteString(strconv.Itoa(int(digit)))
	}

	base, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse base digits %q: %w", digits.String(), err)
	}
	return base, nil
}

// Multiplier returns the scale factor of the multiplier band: 10^0
// through 10^7 for black through violet, 0.1 for gold and 0.01 for silver.
func Multiplier(colors []model.Color) (float64, error) {
	return lookup(colors, RoleMultiplier, func(l Layout) int { return l.Multiplier })
}

// Tolerance returns the tolerance band's value in percent.
func Tolerance(colors []model.Color) (float64, error) {
	return lookup(colors, RoleTolerance, func(l Layout) int { return l.Tolerance })
}

// TemperatureCoefficient returns the sixth band's value in ppm/K.
// Sequences without a temperature coefficient band fail with
// KindInvalidBandCount. Yellow, green, blue, violet and grey are permitted
// in the position but have no defined value and fail with
// KindUnsupportedTempCoefficient.
func TemperatureCoefficient(colors []model.Color) (float64, error) {
	layout, err := layoutOf(colors)
	if err != nil {
		return 0, err
	}
	if !layout.HasTempCoefficient() {
		e := bandCountError(layout.Count)
		e.Expected = []string{"6"}
		return 0, e
	}

	return lookup(colors, RoleTempCoefficient, func(l Layout) int { return l.TempCoefficient })
}

// lookup validates the single band of role at the position chosen by
// positionOf and returns its table value.
func lookup(colors []model.Color, role Role, positionOf func(Layout) int) (float64, error) {
	layout, err := layoutOf(colors)
	if err != nil {
		return 0, err
	}
	pos := positionOf(layout)
	if err := checkRole(colors, role, pos); err != nil {
		return 0, err
	}
	if role == RoleTempCoefficient {
		if err := checkTempCoefficientDefined(colors, pos); err != nil {
			return 0, err
		}
	}
	value, _ := role.Value(colors[pos-1])
	return value, nil
}

// layoutOf validates the colors and band count of a sequence and returns
// its layout.
func layoutOf(colors []model.Color) (Layout, error) {
	if err := checkColors(colors); err != nil {
		return Layout{}, err
	}
	return LayoutFor(len(colors))
}
