package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns every preview into plain text.
var DisableColourOutput = false

// Swatch returns an ANSI-coloured block for c.
// Width specifies how many characters wide the block should be.
// Opacity is not rendered; terminals have no alpha channel.
func Swatch(c RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return "[" + strings.Repeat("#", width-min(width, 2)) + "]"
	}
	return bgSequence(c) + block + ansiReset
}

// SwatchWithText returns a swatch with text centred on it.
// The text is black on light colours and white on dark ones.
func SwatchWithText(c RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	if DisableColourOutput {
		return displayText
	}

	fg := RGBA{R: 255, G: 255, B: 255}
	if RGBToLightness(c.R, c.G, c.B) > 50 {
		fg = RGBA{}
	}
	return bgSequence(c) + fgSequence(fg) + displayText + ansiReset
}

// FormatWithPreview formats a colour as its swatch followed by its hex code.
func FormatWithPreview(c RGBA, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}

// ColourString returns text in colour c, or plain text when colour output is disabled.
func ColourString(c RGBA, text string) string {
	if DisableColourOutput {
		return text
	}
	return fgSequence(c) + text + ansiReset
}

func bgSequence(c RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgSequence(c RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
