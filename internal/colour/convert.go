package colour

import "math"

// Domain limits of the stored HSLA fields.
const (
	MaxHue        = 360.0
	MaxSaturation = 100.0
	MaxLightness  = 100.0
	MaxOpacity    = 1.0
)

// HSLToRGB converts HSL to 8-bit RGB channels.
// h is hue in degrees (0-360), s is saturation (0-100), l is lightness (0-100).
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h /= MaxHue
	s /= MaxSaturation
	l /= MaxLightness

	var rf, gf, bf float64
	if s == 0 {
		// Achromatic (grey).
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		rf = hueToChannel(p, q, h+1.0/3)
		gf = hueToChannel(p, q, h)
		bf = hueToChannel(p, q, h-1.0/3)
	}

	return toByte(rf), toByte(gf), toByte(bf)
}

// hueToChannel interpolates one channel for a hue offset t, where t is a
// fraction of the colour wheel.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// RGBToHSL converts 8-bit RGB channels to rounded hue (degrees), saturation
// and lightness (percent).
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	return RGBToHue(r, g, b), RGBToSaturation(r, g, b), RGBToLightness(r, g, b)
}

// RGBToHue returns the hue in whole degrees. Grey has hue 0.
// When two channels share the maximum, red wins over green and green over blue.
func RGBToHue(r, g, b uint8) float64 {
	rf, gf, bf := normalise(r, g, b)
	maxVal, minVal := maxMin(rf, gf, bf)
	if maxVal == minVal {
		return 0
	}

	delta := maxVal - minVal
	var h float64
	switch maxVal {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	case bf:
		h = (rf-gf)/delta + 4
	}

	return roundHalfUp(h / 6 * MaxHue)
}

// RGBToSaturation returns the HSL saturation in whole percent.
func RGBToSaturation(r, g, b uint8) float64 {
	rf, gf, bf := normalise(r, g, b)
	maxVal, minVal := maxMin(rf, gf, bf)
	if maxVal == minVal {
		return 0
	}

	delta := maxVal - minVal
	var s float64
	if (maxVal+minVal)/2 > 0.5 {
		s = delta / (2 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}
	return roundHalfUp(s * MaxSaturation)
}

// RGBToLightness returns the HSL lightness in whole percent.
func RGBToLightness(r, g, b uint8) float64 {
	rf, gf, bf := normalise(r, g, b)
	maxVal, minVal := maxMin(rf, gf, bf)
	return roundHalfUp((maxVal + minVal) / 2 * MaxLightness)
}

func normalise(r, g, b uint8) (float64, float64, float64) {
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}

func maxMin(r, g, b float64) (float64, float64) {
	return math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
}

// toByte scales a [0,1] channel to [0,255].
func toByte(v float64) uint8 {
	return uint8(roundHalfUp(clamp(v, 0, 1) * 255))
}

// roundHalfUp rounds to the nearest integer with halves rounded towards +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// clamp limits v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
