// Package colour provides the HSL colour model and its conversions to RGB and hex.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGBA represents a colour as 8-bit RGB channels plus a fractional opacity.
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// String returns the colour as a CSS function string, e.g. "rgba(255, 0, 0, 0.5)".
// The alpha component is the raw opacity fraction.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatNumber(c.A))
}

// Hex returns the colour as an 8-digit hex string (e.g. "#1A2B3CFF").
func (c RGBA) Hex() string {
	return FormatHex(c)
}

// AlphaByte returns the opacity scaled to [0, 255].
func (c RGBA) AlphaByte() uint8 {
	return uint8(roundHalfUp(clamp(c.A, 0, 1) * 255))
}

// FromColor converts any color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255}
}

// HSLA is the canonical colour state: hue in degrees, saturation and
// lightness in percent, opacity as a fraction.
type HSLA struct {
	H float64 `json:"hue" yaml:"hue"`
	S float64 `json:"saturation" yaml:"saturation"`
	L float64 `json:"lightness" yaml:"lightness"`
	A float64 `json:"opacity" yaml:"opacity"`
}

// String returns the state as a CSS hsla() string.
func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
		FormatNumber(c.H), FormatNumber(c.S), FormatNumber(c.L), FormatNumber(c.A))
}

// RGB converts the state to RGB.
func (c HSLA) RGB() RGBA {
	r, g, b := HSLToRGB(c.H, c.S, c.L)
	return RGBA{R: r, G: g, B: b, A: c.A}
}

// FormatNumber formats a channel value in its shortest exact decimal form
// without an exponent, e.g. 120, 0.5 or 0.5019607843137255.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
