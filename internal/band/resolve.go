package band

import (
	"errors"
	"strings"

	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// Resolve converts one raw token to a Color.
//
// A token that is a full color name (case-insensitive) resolves directly
// and prefix matching is never attempted. Otherwise the token is treated
// as a shorthand prefix: exactly one matching color resolves, no match is
// a KindUnknownShorthand error listing all colors, and several matches are
// a KindAmbiguousShorthand error listing the candidates in standard order.
// An empty token is a prefix of every color and is therefore ambiguous.
func Resolve(token string) (model.Color, error) {
	if c, err := model.ParseColor(token); err == nil {
		return c, nil
	}

	prefix := strings.ToLower(strings.TrimSpace(token))
	var matches []model.Color
	for _, c := range model.AllColors() {
		if strings.HasPrefix(c.String(), prefix) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return 0, &Error{
			Kind:     KindUnknownShorthand,
			Expected: model.ColorNames(model.AllColors()),
			Got:      token,
		}
	default:
		return 0, &Error{
			Kind:     KindAmbiguousShorthand,
			Expected: model.ColorNames(matches),
			Got:      token,
		}
	}
}

// ResolveAll resolves tokens in order and stops at the first failure.
// The returned *Error carries the 1-based argument position of the token
// that failed.
func ResolveAll(tokens []string) ([]model.Color, error) {
	colors := make([]model.Color, 0, len(tokens))
	for i, token := range tokens {
		c, err := Resolve(token)
		if err != nil {
			var bandErr *Error
			if errors.As(err, &bandErr) {
				bandErr.Position = i + 1
			}
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
