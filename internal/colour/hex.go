package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidHexFormat is returned when a string is not of the form #RRGGBB or #RRGGBBAA.
var ErrInvalidHexFormat = errors.New("invalid hex colour format")

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// IsHex reports whether s is a valid #RRGGBB or #RRGGBBAA string.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses #RRGGBB or #RRGGBBAA. Without an alpha pair the colour is fully opaque.
func ParseHex(s string) (RGBA, error) {
	if !IsHex(s) {
		return RGBA{}, fmt.Errorf("%w: %q (expected #RRGGBB or #RRGGBBAA)", ErrInvalidHexFormat, s)
	}

	c := RGBA{
		R: parseHexPair(s[1:3]),
		G: parseHexPair(s[3:5]),
		B: parseHexPair(s[5:7]),
		A: 1,
	}
	if len(s) == 9 {
		c.A = float64(parseHexPair(s[7:9])) / 255
	}
	return c, nil
}

// FormatHex formats a colour as #RRGGBBAA with upper-case digits.
func FormatHex(c RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.AlphaByte())
}

// parseHexPair decodes two hex digits already checked by hexPattern.
func parseHexPair(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}
