package colour

import (
	"math"
	"testing"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    [3]uint8
	}{
		{name: "red", h: 0, s: 100, l: 50, want: [3]uint8{255, 0, 0}},
		{name: "green", h: 120, s: 100, l: 50, want: [3]uint8{0, 255, 0}},
		{name: "blue", h: 240, s: 100, l: 50, want: [3]uint8{0, 0, 255}},
		{name: "yellow", h: 60, s: 100, l: 50, want: [3]uint8{255, 255, 0}},
		{name: "cyan", h: 180, s: 100, l: 50, want: [3]uint8{0, 255, 255}},
		{name: "magenta", h: 300, s: 100, l: 50, want: [3]uint8{255, 0, 255}},
		{name: "hue 360 is red", h: 360, s: 100, l: 50, want: [3]uint8{255, 0, 0}},
		{name: "dark red", h: 0, s: 100, l: 25, want: [3]uint8{128, 0, 0}},
		{name: "white", h: 0, s: 0, l: 100, want: [3]uint8{255, 255, 255}},
		{name: "black", h: 200, s: 100, l: 0, want: [3]uint8{0, 0, 0}},
		{name: "mid grey rounds half up", h: 0, s: 0, l: 50, want: [3]uint8{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tt.h, tt.s, tt.l)
			if got := [3]uint8{r, g, b}; got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestAchromaticIsGrey(t *testing.T) {
	for _, h := range []float64{0, 45, 180, 359} {
		for l := 0.0; l <= 100; l += 10 {
			r, g, b := HSLToRGB(h, 0, l)
			if r != g || g != b {
				t.Fatalf("HSLToRGB(%v, 0, %v) = (%d, %d, %d), want equal channels", h, l, r, g, b)
			}
			if s := RGBToSaturation(r, g, b); s != 0 {
				t.Errorf("saturation of grey %d = %v, want 0", r, s)
			}
			if hue := RGBToHue(r, g, b); hue != 0 {
				t.Errorf("hue of grey %d = %v, want 0", r, hue)
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		rgb     [3]uint8
		h, s, l float64
	}{
		{name: "red", rgb: [3]uint8{255, 0, 0}, h: 0, s: 100, l: 50},
		{name: "green", rgb: [3]uint8{0, 255, 0}, h: 120, s: 100, l: 50},
		{name: "blue", rgb: [3]uint8{0, 0, 255}, h: 240, s: 100, l: 50},
		{name: "black", rgb: [3]uint8{0, 0, 0}, h: 0, s: 0, l: 0},
		{name: "white", rgb: [3]uint8{255, 255, 255}, h: 0, s: 0, l: 100},
		{name: "grey", rgb: [3]uint8{128, 128, 128}, h: 0, s: 0, l: 50},
		{name: "yellow ties resolve to red branch", rgb: [3]uint8{255, 255, 0}, h: 60, s: 100, l: 50},
		{name: "cyan ties resolve to green branch", rgb: [3]uint8{0, 255, 255}, h: 180, s: 100, l: 50},
		{name: "magenta ties resolve to red branch", rgb: [3]uint8{255, 0, 255}, h: 300, s: 100, l: 50},
		{name: "light colour uses upper saturation formula", rgb: [3]uint8{255, 128, 128}, h: 0, s: 100, l: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.rgb[0], tt.rgb[1], tt.rgb[2])
			if h != tt.h || s != tt.s || l != tt.l {
				t.Errorf("RGBToHSL(%v) = (%v, %v, %v), want (%v, %v, %v)", tt.rgb, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

// Minimum chroma, on the chromaTimes100 scale, at which hue and saturation survive
// an HSL->RGB->HSL round trip within one unit. Below it the 8-bit channels
// are too close together to resolve whole-degree hue or whole-percent
// saturation (e.g. h,s,l = 0,2,1 becomes rgb(3,2,2) and comes back as 0,20,1).
const roundTripMinChroma = 2200

// TestHSLRoundTripWithinRounding sweeps every whole-number HSL state.
// Lightness always survives within one unit; hue and saturation only where
// chroma is at least 22%.
func TestHSLRoundTripWithinRounding(t *testing.T) {
	hueStep := 1.0
	if testing.Short() {
		hueStep = 7
	}

	for h := 0.0; h < 360; h += hueStep {
		for s := 0.0; s <= 100; s++ {
			for l := 0.0; l <= 100; l++ {
				r, g, b := HSLToRGB(h, s, l)
				gh, gs, gl := RGBToHSL(r, g, b)

				if math.Abs(gl-l) > 1 {
					t.Fatalf("lightness %v (h=%v s=%v) -> rgb(%d,%d,%d) -> %v", l, h, s, r, g, b, gl)
				}
				if chromaTimes100(s, l) < roundTripMinChroma {
					continue
				}
				if d := hueDistance(gh, h); d > 1 {
					t.Fatalf("hue %v (s=%v l=%v) -> rgb(%d,%d,%d) -> %v, off by %v", h, s, l, r, g, b, gh, d)
				}
				if math.Abs(gs-s) > 1 {
					t.Fatalf("saturation %v (h=%v l=%v) -> rgb(%d,%d,%d) -> %v", s, h, l, r, g, b, gs)
				}
			}
		}
	}
}

func TestHSLRoundTripLowChromaDrifts(t *testing.T) {
	r, g, b := HSLToRGB(0, 2, 1)
	if _, s, _ := RGBToHSL(r, g, b); s != 20 {
		t.Errorf("h,s,l = 0,2,1 round-tripped saturation = %v, want 20", s)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "in range", v: 0.4, want: 0.4},
		{name: "below", v: -3, want: 0},
		{name: "above", v: 7, want: 1},
		{name: "NaN", v: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, 0, 1); got != tt.want {
				t.Errorf("clamp(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

// chromaTimes100 is S*(100-|2L-100|), i.e. HSL chroma in percent scaled by
// 100 so whole-number states compare exactly.
func chromaTimes100(s, l float64) float64 {
	return s * (100 - math.Abs(2*l-100))
}

// hueDistance is the angular distance between two hues in degrees.
func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
