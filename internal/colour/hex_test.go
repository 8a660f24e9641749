package colour

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGBA
		wantErr bool
	}{
		{name: "six digits defaults to opaque", input: "#FF0000", want: RGBA{R: 255, A: 1}},
		{name: "eight digits", input: "#00FF0080", want: RGBA{G: 255, A: 128.0 / 255}},
		{name: "lower case", input: "#1a2b3cff", want: RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 1}},
		{name: "fully transparent", input: "#00000000", want: RGBA{}},
		{name: "missing hash", input: "FF0000", wantErr: true},
		{name: "short form", input: "#F00", wantErr: true},
		{name: "seven digits", input: "#FF00000", wantErr: true},
		{name: "non hex", input: "#GG0000", wantErr: true},
		{name: "trailing space", input: "#FF0000 ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHexFormat) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidHexFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{name: "opaque red", c: RGBA{R: 255, A: 1}, want: "#FF0000FF"},
		{name: "half opacity", c: RGBA{G: 255, A: 0.5}, want: "#00FF0080"},
		{name: "zero padded", c: RGBA{R: 1, G: 2, B: 3, A: 0}, want: "#01020300"},
		{name: "opacity out of range is clamped", c: RGBA{A: 2}, want: "#000000FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHex(tt.c); got != tt.want {
				t.Errorf("FormatHex(%+v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestAlphaRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGBA{A: float64(v) / 255}
		if got := c.AlphaByte(); int(got) != v {
			t.Fatalf("alpha %d decoded and re-encoded as %d", v, got)
		}
	}
}

func TestRGBAString(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{c: RGBA{R: 255, A: 1}, want: "rgba(255, 0, 0, 1)"},
		{c: RGBA{R: 10, G: 20, B: 30, A: 0.5}, want: "rgba(10, 20, 30, 0.5)"},
		{c: RGBA{}, want: "rgba(0, 0, 0, 0)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 120, want: "120"},
		{v: 0.5, want: "0.5"},
		{v: 128.0 / 255, want: "0.5019607843137255"},
		{v: 1e21, want: "1000000000000000000000"},
		{v: 1e-7, want: "0.0000001"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
