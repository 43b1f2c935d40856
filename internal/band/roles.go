package band

import (
	"fmt"

	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// Role is the meaning a band carries at its position in the sequence.
type Role int

const (
	// RoleDigit bands form the significant digits of the base value.
	RoleDigit Role = iota

	// RoleMultiplier is the power-of-ten scale applied to the base value.
	RoleMultiplier

	// RoleTolerance is the manufacturing tolerance in percent.
	RoleTolerance

	// RoleTempCoefficient is the temperature coefficient in ppm/K.
	// Only six-band resistors carry it.
	RoleTempCoefficient
)

// String returns the human-readable role name used in error messages.
func (r Role) String() string {
	switch r {
	case RoleDigit:
		return "base"
	case RoleMultiplier:
		return "multiplier"
	case RoleTolerance:
		return "tolerance"
	case RoleTempCoefficient:
		return "temperature coefficient"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Roles returns every role in band order.
func Roles() []Role {
	return []Role{RoleDigit, RoleMultiplier, RoleTolerance, RoleTempCoefficient}
}

// entry is one row of a role table.
type entry struct {
	color model.Color
	value float64

	// undefined marks a color that is permitted at the position but has no
	// assigned numeric value.
	undefined bool
}

// roleTable is the fixed lookup table of one role.
type roleTable struct {
	entries []entry
	byColor map[model.Color]entry
}

func newRoleTable(entries ...entry) roleTable {
	byColor := make(map[model.Color]entry, len(entries))
	for _, e := range entries {
		byColor[e.color] = e
	}
	return roleTable{entries: entries, byColor: byColor}
}

// tables holds the four role tables, indexed by Role. Entry order is the
// order used when listing permitted colors.
var tables = [...]roleTable{
	RoleDigit: newRoleTable(
		entry{color: model.Black, value: 0},
		entry{color: model.Brown, value: 1},
		entry{color: model.Red, value: 2},
		entry{color: model.Orange, value: 3},
		entry{color: model.Yellow, value: 4},
		entry{color: model.Green, value: 5},
		entry{color: model.Blue, value: 6},
		entry{color: model.Violet, value: 7},
		entry{color: model.Grey, value: 8},
		entry{color: model.White, value: 9},
	),
	RoleMultiplier: newRoleTable(
		entry{color: model.Black, value: 1},
		entry{color: model.Brown, value: 1e1},
		entry{color: model.Red, value: 1e2},
		entry{color: model.Orange, value: 1e3},
		entry{color: model.Yellow, value: 1e4},
		entry{color: model.Green, value: 1e5},
		entry{color: model.Blue, value: 1e6},
		entry{color: model.Violet, value: 1e7},
		entry{color: model.Gold, value: 0.1},
		entry{color: model.Silver, value: 0.01},
	),
	RoleTolerance: newRoleTable(
		entry{color: model.Brown, value: 1.0},
		entry{color: model.Red, value: 2.0},
		entry{color: model.Green, value: 0.5},
		entry{color: model.Blue, value: 0.25},
		entry{color: model.Violet, value: 0.1},
		entry{color: model.Grey, value: 0.05},
		entry{color: model.Gold, value: 5.0},
		entry{color: model.Silver, value: 10.0},
	),
	RoleTempCoefficient: newRoleTable(
		entry{color: model.Black, value: 100},
		entry{color: model.Brown, value: 50},
		entry{color: model.Red, value: 15},
		entry{color: model.Orange, value: 25},
		entry{color: model.Yellow, undefined: true},
		entry{color: model.Green, undefined: true},
		entry{color: model.Blue, undefined: true},
		entry{color: model.Violet, undefined: true},
		entry{color: model.Grey, undefined: true},
	),
}

func (r Role) table() roleTable {
	if r < 0 || int(r) >= len(tables) {
		return roleTable{}
	}
	return tables[r]
}

// Allows reports whether c is permitted at a band position playing role r.
func (r Role) Allows(c model.Color) bool {
	_, ok := r.table().byColor[c]
	return ok
}

// Colors returns the colors permitted for the role, in table order.
func (r Role) Colors() []model.Color {
	t := r.table()
	colors := make([]model.Color, 0, len(t.entries))
	for _, e := range t.entries {
		colors = append(colors, e.color)
	}
	return colors
}

// DefinedColors returns the permitted colors that also have a numeric
// value, in table order. It differs from Colors only for the temperature
// coefficient role.
func (r Role) DefinedColors() []model.Color {
	t := r.table()
	colors := make([]model.Color, 0, len(t.entries))
	for _, e := range t.entries {
		if !e.undefined {
			colors = append(colors, e.color)
		}
	}
	return colors
}

// Value returns the numeric meaning of c for the role. The boolean is false
// when c is not permitted or has no defined value.
func (r Role) Value(c model.Color) (float64, bool) {
	e, ok := r.table().byColor[c]
	if !ok || e.undefined {
		return 0, false
	}
	return e.value, true
}

// Layout describes which band positions play which role for a given band
// count. Positions are 1-based.
type Layout struct {
	// Count is the total number of bands.
	Count int

	// Digits is the number of leading digit bands (2 or 3).
	Digits int

	// Multiplier is the position of the multiplier band.
	Multiplier int

	// Tolerance is the position of the tolerance band.
	Tolerance int

	// TempCoefficient is the position of the temperature coefficient band,
	// or 0 when the layout has none.
	TempCoefficient int
}

// MinBands and MaxBands bound the supported band counts.
const (
	MinBands = 4
	MaxBands = 6
)

// LayoutFor returns the band layout for count bands.
//
//	bands  digits  multiplier  tolerance  temp. coefficient
//	4      1-2     3           4          -
//	5      1-3     4           5          -
//	6      1-3     4           5          6
func LayoutFor(count int) (Layout, error) {
	switch count {
	case 4:
		return Layout{Count: 4, Digits: 2, Multiplier: 3, Tolerance: 4}, nil
	case 5:
		return Layout{Count: 5, Digits: 3, Multiplier: 4, Tolerance: 5}, nil
	case 6:
		return Layout{Count: 6, Digits: 3, Multiplier: 4, Tolerance: 5, TempCoefficient: 6}, nil
	default:
		return Layout{}, bandCountError(count)
	}
}

// HasTempCoefficient reports whether the layout includes a temperature
// coefficient band.
func (l Layout) HasTempCoefficient() bool {
	return l.TempCoefficient > 0
}

// RoleAt returns the role played by the band at the 1-based position.
// The boolean is false for positions outside the layout.
func (l Layout) RoleAt(position int) (Role, bool) {
	switch {
	case position < 1 || position > l.Count:
		return 0, false
	case position <= l.Digits:
		return RoleDigit, true
	case position == l.Multiplier:
		return RoleMultiplier, true
	case position == l.Tolerance:
		return RoleTolerance, true
	case l.HasTempCoefficient() && position == l.TempCoefficient:
		return RoleTempCoefficient, true
	default:
		return 0, false
	}
}
