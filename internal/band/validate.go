package band

import (
	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// Validate checks a resolved band sequence without decoding it.
//
// Checks are performed in the same order Decode performs them, so both
// report the same first failure:
//   - every value is one of the twelve colors
//   - the sequence has 4, 5 or 6 bands
//   - each band is permitted for the role of its position
//   - a temperature coefficient band has a defined ppm/K value
func Validate(colors []model.Color) error {
	if err := checkColors(colors); err != nil {
		return err
	}
	layout, err := LayoutFor(len(colors))
	if err != nil {
		return err
	}
	for pos := 1; pos <= layout.Count; pos++ {
		role, _ := layout.RoleAt(pos)
		if err := checkRole(colors, role, pos); err != nil {
			return err
		}
	}
	if layout.HasTempCoefficient() {
		if err := checkTempCoefficientDefined(colors, layout.TempCoefficient); err != nil {
			return err
		}
	}
	return nil
}

// checkColors rejects values outside the twelve defined colors. Resolved
// input never contains such values; the check guards programmatic callers.
func checkColors(colors []model.Color) error {
	for i, c := range colors {
		if !c.IsValid() {
			return invalidColorError(c, i+1, len(colors))
		}
	}
	return nil
}

// checkRole verifies that the band at the 1-based position is permitted
// for role.
func checkRole(colors []model.Color, role Role, position int) error {
	c := colors[position-1]
	if !role.Allows(c) {
		return roleColorError(role, c, position, len(colors))
	}
	return nil
}

// checkTempCoefficientDefined verifies that the temperature coefficient
// band at the 1-based position has a ppm/K value. Call it after checkRole.
func checkTempCoefficientDefined(colors []model.Color, position int) error {
	c := colors[position-1]
	if _, ok := RoleTempCoefficient.Value(c); !ok {
		return unsupportedTempCoefficientError(c, position, len(colors))
	}
	return nil
}
