package colour

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColourName is returned when a name is not a CSS/SVG colour keyword.
var ErrUnknownColourName = errors.New("unknown colour name")

// LookupName resolves a CSS colour keyword (case-insensitive), e.g. "teal".
func LookupName(name string) (RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColourName, name)
	}
	return FromColor(c), nil
}

// Names returns the known colour names in sorted order, optionally filtered
// to those containing substr.
func Names(substr string) []string {
	substr = strings.ToLower(substr)
	names := make([]string, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		if strings.Contains(name, substr) {
			names = append(names, name)
		}
	}
	return names
}

// Parse accepts either a hex string or a colour name.
func Parse(s string) (RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	return LookupName(s)
}
