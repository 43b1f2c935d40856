package band

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// Kind classifies a decoding failure.
type Kind int

const (
	// KindUnknownShorthand means a token is neither a color name nor the
	// prefix of one.
	KindUnknownShorthand Kind = iota + 1

	// KindAmbiguousShorthand means a token is the prefix of several colors.
	KindAmbiguousShorthand

	// KindInvalidColor means a value is not one of the twelve colors.
	KindInvalidColor

	// KindInvalidBandCount means the sequence does not have 4, 5 or 6 bands.
	KindInvalidBandCount

	// KindInvalidRoleColor means a color is not permitted for the role its
	// position plays.
	KindInvalidRoleColor

	// KindUnsupportedTempCoefficient means a temperature coefficient color
	// is permitted but has no defined ppm/K value.
	KindUnsupportedTempCoefficient
)

// String returns a short identifier for the kind, used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindUnknownShorthand:
		return "unknown-shorthand"
	case KindAmbiguousShorthand:
		return "ambiguous-shorthand"
	case KindInvalidColor:
		return "invalid-color"
	case KindInvalidBandCount:
		return "invalid-band-count"
	case KindInvalidRoleColor:
		return "invalid-role-color"
	case KindUnsupportedTempCoefficient:
		return "unsupported-temperature-coefficient"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors for use with errors.Is. Any *Error matches the sentinel
// of the same Kind.
var (
	ErrUnknownShorthand           error = &Error{Kind: KindUnknownShorthand}
	ErrAmbiguousShorthand         error = &Error{Kind: KindAmbiguousShorthand}
	ErrInvalidColor               error = &Error{Kind: KindInvalidColor}
	ErrInvalidBandCount           error = &Error{Kind: KindInvalidBandCount}
	ErrInvalidRoleColor           error = &Error{Kind: KindInvalidRoleColor}
	ErrUnsupportedTempCoefficient error = &Error{Kind: KindUnsupportedTempCoefficient}
)

// Error describes why a token or band sequence was rejected.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Role is the role of the offending band. Only meaningful for
	// KindInvalidRoleColor and KindUnsupportedTempCoefficient.
	Role Role

	// Position is the 1-based band position, or for shorthand errors the
	// 1-based argument position. Zero when not applicable.
	Position int

	// Count is the total number of bands. Zero for shorthand errors.
	Count int

	// Expected lists the values that would have been accepted. For
	// ambiguous shorthand it lists the colors the token matched.
	Expected []string

	// Got is the rejected value: the raw token, color name or band count.
	Got string
}

// Summary returns the failure description without location or values,
// e.g. "invalid multiplier color".
func (e *Error) Summary() string {
	switch e.Kind {
	case KindUnknownShorthand:
		return "unknown shorthand"
	case KindAmbiguousShorthand:
		return "ambiguous shorthand"
	case KindInvalidColor:
		return "invalid color"
	case KindInvalidBandCount:
		return "invalid number of bands"
	case KindInvalidRoleColor:
		return fmt.Sprintf("invalid %s color", e.Role)
	case KindUnsupportedTempCoefficient:
		return "unsupported temperature coefficient color"
	default:
		return "invalid input"
	}
}

// Location returns where the failure happened, e.g. "band 3 of 4" or
// "argument 2". It is empty when no position is known.
func (e *Error) Location() string {
	if e.Position == 0 {
		return ""
	}
	if e.Kind == KindUnknownShorthand || e.Kind == KindAmbiguousShorthand {
		return fmt.Sprintf("argument %d", e.Position)
	}
	return fmt.Sprintf("band %d of %d", e.Position, e.Count)
}

// ExpectedLabel introduces the Expected list: "matches" for ambiguous
// shorthand and "expected one of" otherwise.
func (e *Error) ExpectedLabel() string {
	if e.Kind == KindAmbiguousShorthand {
		return "matches"
	}
	return "expected one of"
}

// GotValue returns Got formatted for display. Raw tokens are quoted so
// that empty or whitespace-only input stays visible.
func (e *Error) GotValue() string {
	if e.Kind == KindUnknownShorthand || e.Kind == KindAmbiguousShorthand {
		return strconv.Quote(e.Got)
	}
	return e.Got
}

// Error formats the failure as
//
//	<summary> (<location>) (<label> [<expected>], got <value>)
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Summary())
	if loc := e.Location(); loc != "" {
		fmt.Fprintf(&b, " (%s)", loc)
	}
	fmt.Fprintf(&b, " (%s [%s], got %s)",
		e.ExpectedLabel(), strings.Join(e.Expected, ", "), e.GotValue())
	return b.String()
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrInvalidBandCount) works for any band count error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func bandCountError(count int) *Error {
	return &Error{
		Kind:     KindInvalidBandCount,
		Count:    count,
		Expected: []string{"4", "5", "6"},
		Got:      strconv.Itoa(count),
	}
}

func invalidColorError(c model.Color, position, count int) *Error {
	return &Error{
		Kind:     KindInvalidColor,
		Position: position,
		Count:    count,
		Expected: model.ColorNames(model.AllColors()),
		Got:      c.String(),
	}
}

func roleColorError(role Role, c model.Color, position, count int) *Error {
	return &Error{
		Kind:     KindInvalidRoleColor,
		Role:     role,
		Position: position,
		Count:    count,
		Expected: model.ColorNames(role.Colors()),
		Got:      c.String(),
	}
}

func unsupportedTempCoefficientError(c model.Color, position, count int) *Error {
	return &Error{
		Kind:     KindUnsupportedTempCoefficient,
		Role:     RoleTempCoefficient,
		Position: position,
		Count:    count,
		Expected: model.ColorNames(RoleTempCoefficient.DefinedColors()),
		Got:      c.String(),
	}
}
