package colour

// DefaultState is the state of a new Model: opaque pure red.
var DefaultState = HSLA{H: 0, S: 100, L: 50, A: 1}

// Model holds the canonical colour of an editing session.
//
// Setters clamp their argument into the field's domain (hue [0,360],
// saturation and lightness [0,100], opacity [0,1]) and then notify every
// listener registered with OnChange. RGB and hex values are always derived
// from the current state and never cached.
//
// A Model is owned by a single session and is not safe for concurrent use.
type Model struct {
	hue        float64
	saturation float64
	lightness  float64
	opacity    float64

	listeners []func(HSLA)
}

// NewModel returns a Model in DefaultState.
func NewModel() *Model {
	m := &Model{}
	m.assign(DefaultState)
	return m
}

// OnChange registers fn to be called with the new state after every mutation.
func (m *Model) OnChange(fn func(HSLA)) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// State returns a snapshot of the stored fields.
func (m *Model) State() HSLA {
	return HSLA{H: m.hue, S: m.saturation, L: m.lightness, A: m.opacity}
}

// SetHue sets the hue in degrees.
func (m *Model) SetHue(v float64) {
	m.hue = clamp(v, 0, MaxHue)
	m.notify()
}

// SetSaturation sets the saturation in percent.
func (m *Model) SetSaturation(v float64) {
	m.saturation = clamp(v, 0, MaxSaturation)
	m.notify()
}

// SetLightness sets the lightness in percent.
func (m *Model) SetLightness(v float64) {
	m.lightness = clamp(v, 0, MaxLightness)
	m.notify()
}

// SetOpacity sets the opacity fraction.
func (m *Model) SetOpacity(v float64) {
	m.opacity = clamp(v, 0, MaxOpacity)
	m.notify()
}

// Set overwrites all four fields with a single notification.
func (m *Model) Set(c HSLA) {
	m.assign(c)
	m.notify()
}

// RGB returns the current colour as RGB channels plus opacity.
func (m *Model) RGB() RGBA {
	return m.State().RGB()
}

// Hex returns the current colour as #RRGGBBAA.
func (m *Model) Hex() string {
	return FormatHex(m.RGB())
}

// SetFromHex replaces the state with the colour in s (#RRGGBB or #RRGGBBAA).
// Opacity resets to 1 when s carries no alpha pair. On error the state is unchanged.
func (m *Model) SetFromHex(s string) error {
	c, err := ParseHex(s)
	if err != nil {
		return err
	}
	m.SetFromRGB(c)
	return nil
}

// SetFromName replaces the state with a named CSS colour.
func (m *Model) SetFromName(name string) error {
	c, err := LookupName(name)
	if err != nil {
		return err
	}
	m.SetFromRGB(c)
	return nil
}

// SetFromRGB replaces the state with the HSL equivalent of c.
func (m *Model) SetFromRGB(c RGBA) {
	h, s, l := RGBToHSL(c.R, c.G, c.B)
	m.Set(HSLA{H: h, S: s, L: l, A: c.A})
}

func (m *Model) assign(c HSLA) {
	m.hue = clamp(c.H, 0, MaxHue)
	m.saturation = clamp(c.S, 0, MaxSaturation)
	m.lightness = clamp(c.L, 0, MaxLightness)
	m.opacity = clamp(c.A, 0, MaxOpacity)
}

func (m *Model) notify() {
	state := m.State()
	for _, fn := range m.listeners {
		fn(state)
	}
}
