package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/huepick/internal/colour"
	"github.com/jmylchreest/huepick/internal/config"
)

// colourJSON is the JSON output shape for a single colour.
type colourJSON struct {
	HSL colour.HSLA `json:"hsl"`
	RGB colour.RGBA `json:"rgb"`
	Hex string      `json:"hex"`
	CSS string      `json:"css"`
}

// formatColour renders the model's colour in the requested format.
func formatColour(m *colour.Model, format string, preview bool, width int) (string, error) {
	state := m.State()
	rgb := m.RGB()

	prefix := ""
	if preview {
		prefix = colour.Swatch(rgb, width) + " "
	}

	switch format {
	case config.FormatHex:
		if preview {
			return colour.FormatWithPreview(rgb, width) + "\n", nil
		}
		return m.Hex() + "\n", nil
	case config.FormatRGBA:
		return prefix + rgb.String() + "\n", nil
	case config.FormatHSL:
		return prefix + state.String() + "\n", nil
	case config.FormatJSON:
		jsonBytes, err := json.MarshalIndent(colourJSON{
			HSL: state,
			RGB: rgb,
			Hex: m.Hex(),
			CSS: rgb.String(),
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case config.FormatTable:
		table := NewTable([]string{"Field", "Value"})
		if preview {
			table.AddRow([]string{"preview", colour.Swatch(rgb, width)})
		}
		table.AddRow([]string{"hex", m.Hex()})
		table.AddRow([]string{"rgba", rgb.String()})
		table.AddRow([]string{"hsla", state.String()})
		table.AddRow([]string{"hue", colour.FormatNumber(state.H)})
		table.AddRow([]string{"saturation", colour.FormatNumber(state.S)})
		table.AddRow([]string{"lightness", colour.FormatNumber(state.L)})
		table.AddRow([]string{"opacity", colour.FormatNumber(state.A)})
		return table.Render(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(config.ValidFormats, ", "))
	}
}
