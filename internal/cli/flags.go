package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huepick/internal/colour"
)

// colourValue is a flag accepting a hex code or CSS colour name.
type colourValue struct {
	raw  string
	rgba colour.RGBA
	set  bool
}

var _ pflag.Value = (*colourValue)(nil)

func (v *colourValue) String() string { return v.raw }

func (v *colourValue) Set(s string) error {
	c, err := colour.Parse(s)
	if err != nil {
		return err
	}
	v.raw, v.rgba, v.set = s, c, true
	return nil
}

func (v *colourValue) Type() string { return "colour" }

// hslFlags are the per-channel flags shared by convert and pick.
type hslFlags struct {
	hue, saturation, lightness, opacity float64
	from                                colourValue
}

func (f *hslFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.hue, "hue", 0, "hue in degrees (0-360)")
	fs.Float64VarP(&f.saturation, "saturation", "s", 0, "saturation percent (0-100)")
	fs.Float64VarP(&f.lightness, "lightness", "l", 0, "lightness percent (0-100)")
	fs.Float64VarP(&f.opacity, "opacity", "a", 0, "opacity (0-1)")
	fs.Var(&f.from, "from", "starting colour as #RRGGBB[AA] or a CSS colour name")
}

// apply sets up m from the configured defaults, then --from, then any
// channel flag given on the command line.
func (f *hslFlags) apply(fs *pflag.FlagSet, defaults colour.HSLA, m *colour.Model) {
	m.Set(defaults)
	if f.from.set {
		m.SetFromRGB(f.from.rgba)
	}
	if fs.Changed("hue") {
		m.SetHue(f.hue)
	}
	if fs.Changed("saturation") {
		m.SetSaturation(f.saturation)
	}
	if fs.Changed("lightness") {
		m.SetLightness(f.lightness)
	}
	if fs.Changed("opacity") {
		m.SetOpacity(f.opacity)
	}
}
