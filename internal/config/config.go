// Package config loads huepick settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huepick/internal/colour"
)

// Output formats understood by the CLI.
const (
	FormatHex   = "hex"
	FormatRGBA  = "rgba"
	FormatHSL   = "hsl"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ValidFormats lists every accepted output format.
var ValidFormats = []string{FormatHex, FormatRGBA, FormatHSL, FormatJSON, FormatTable}

// Environment variables applied on top of the config file.
const (
	EnvFormat       = "HUEPICK_FORMAT"
	EnvPreview      = "HUEPICK_PREVIEW"
	EnvPreviewWidth = "HUEPICK_PREVIEW_WIDTH"
	EnvNoColor      = "HUEPICK_NO_COLOR"
	EnvNoColorStd   = "NO_COLOR"
)

// Config holds user settings.
type Config struct {
	// Defaults is the starting colour for convert and pick when no flag overrides it.
	Defaults     colour.HSLA `yaml:"defaults"`
	Format       string      `yaml:"format"`
	Preview      bool        `yaml:"preview"`
	PreviewWidth int         `yaml:"preview_width"`
	NoColor      bool        `yaml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults:     colour.DefaultState,
		Format:       FormatHex,
		Preview:      false,
		PreviewWidth: 8,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/huepick/config.yaml (or the platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "huepick", "config.yaml")
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !isValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q (valid: %s)", c.Format, strings.Join(ValidFormats, ", "))
	}
	if c.PreviewWidth < 1 || c.PreviewWidth > 64 {
		return fmt.Errorf("preview_width must be between 1 and 64, got %d", c.PreviewWidth)
	}
	d := c.Defaults
	if !inRange(d.H, colour.MaxHue) {
		return fmt.Errorf("defaults.hue must be between 0 and 360, got %v", d.H)
	}
	if !inRange(d.S, colour.MaxSaturation) {
		return fmt.Errorf("defaults.saturation must be between 0 and 100, got %v", d.S)
	}
	if !inRange(d.L, colour.MaxLightness) {
		return fmt.Errorf("defaults.lightness must be between 0 and 100, got %v", d.L)
	}
	if !inRange(d.A, colour.MaxOpacity) {
		return fmt.Errorf("defaults.opacity must be between 0 and 1, got %v", d.A)
	}
	return nil
}

// inRange reports whether v lies in [0, hi]. NaN is never in range.
func inRange(v, hi float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= hi
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Loader builds a Config from defaults, an optional file and the environment.
type Loader struct {
	path         string
	requireFile  bool
	useEnv       bool
	lookupEnvVar func(string) (string, bool)
}

// NewLoader creates a Loader that only yields defaults until configured.
func NewLoader() *Loader {
	return &Loader{lookupEnvVar: os.LookupEnv}
}

// WithFile reads settings from path. An explicit path must exist; the
// default path is skipped silently when missing.
func (l *Loader) WithFile(path string) *Loader {
	if path == "" {
		l.path = DefaultPath()
		l.requireFile = false
		return l
	}
	l.path = path
	l.requireFile = true
	return l
}

// WithEnvConfig applies HUEPICK_* environment overrides after the file.
func (l *Loader) WithEnvConfig() *Loader {
	l.useEnv = true
	return l
}

// Load builds and validates the configuration.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if l.path != "" {
		data, err := os.ReadFile(l.path) // #nosec G304 - user-specified config file
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", l.path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !l.requireFile:
		default:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if l.useEnv {
		if err := l.applyEnv(&cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) applyEnv(cfg *Config) error {
	if v, ok := l.lookupEnvVar(EnvFormat); ok && v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v, ok := l.lookupEnvVar(EnvPreview); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvPreview, v, err)
		}
		cfg.Preview = b
	}
	if v, ok := l.lookupEnvVar(EnvPreviewWidth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvPreviewWidth, v, err)
		}
		cfg.PreviewWidth = n
	}
	for _, key := range []string{EnvNoColor, EnvNoColorStd} {
		if v, ok := l.lookupEnvVar(key); ok && v != "" {
			cfg.NoColor = true
		}
	}
	return nil
}
