package seedbed

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ScreenConfig sets the window.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SwatchConfig is one palette entry in a config file, with a "#rrggbb" hex color.
type SwatchConfig struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// GestureConfig tunes the recognizer thresholds.
type GestureConfig struct {
	DragDeadZone     float64 `yaml:"dragDeadZone"`     // pixels before a press becomes a drag
	LongPressSeconds float64 `yaml:"longPressSeconds"` // hold duration that tends/clears
	DoubleTapSeconds float64 `yaml:"doubleTapSeconds"` // pairing window for double taps
}

// ScaleConfig bounds the committed plant scale.
type ScaleConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config collects everything tunable about the toy. The zero value is
// usable: missing fields fall back to the package defaults.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Palette  []SwatchConfig `yaml:"palette"`
	Gestures GestureConfig  `yaml:"gestures"`
	Scale    ScaleConfig    `yaml:"scale"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

// applyDefaults fills any zero-valued field with its default.
func (c *Config) applyDefaults() {
	if c.Screen.Width == 0 {
		c.Screen.Width = 960
	}
	if c.Screen.Height == 0 {
		c.Screen.Height = 640
	}
	if c.Screen.Title == "" {
		c.Screen.Title = "Seedbed"
	}
	if c.Gestures.DragDeadZone == 0 {
		c.Gestures.DragDeadZone = defaultDragDeadZone
	}
	if c.Gestures.LongPressSeconds == 0 {
		c.Gestures.LongPressSeconds = defaultLongPressSeconds
	}
	if c.Gestures.DoubleTapSeconds == 0 {
		c.Gestures.DoubleTapSeconds = defaultDoubleTapSeconds
	}
	if c.Scale.Min == 0 {
		c.Scale.Min = ScaleMin
	}
	if c.Scale.Max == 0 {
		c.Scale.Max = ScaleMax
	}
}

// ParseConfig parses YAML config data over the defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

func (c *Config) validate() error {
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("config: negative screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Gestures.DragDeadZone < 0 {
		return fmt.Errorf("config: gestures.dragDeadZone must not be negative, got %v", c.Gestures.DragDeadZone)
	}
	if c.Gestures.LongPressSeconds < 0 {
		return fmt.Errorf("config: gestures.longPressSeconds must not be negative, got %v", c.Gestures.LongPressSeconds)
	}
	if c.Gestures.DoubleTapSeconds < 0 {
		return fmt.Errorf("config: gestures.doubleTapSeconds must not be negative, got %v", c.Gestures.DoubleTapSeconds)
	}
	if c.Scale.Min <= 0 {
		return fmt.Errorf("config: scale.min must be positive, got %v", c.Scale.Min)
	}
	if c.Scale.Min > c.Scale.Max {
		return fmt.Errorf("config: scale.min %v exceeds scale.max %v", c.Scale.Min, c.Scale.Max)
	}
	for i, sw := range c.Palette {
		if sw.Name == "" {
			return fmt.Errorf("config: palette[%d] has no name", i)
		}
		if _, err := parseHexColor(sw.Hex); err != nil {
			return fmt.Errorf("config: palette[%d] %q: %w", i, sw.Name, err)
		}
	}
	return nil
}

// swatches converts the configured palette, or returns nil when the file
// did not set one (NewGarden then uses DefaultPalette).
func (c Config) swatches() []Swatch {
	if len(c.Palette) == 0 {
		return nil
	}
	out := make([]Swatch, len(c.Palette))
	for i, sw := range c.Palette {
		col, err := parseHexColor(sw.Hex)
		if err != nil {
			// validate() already rejected bad entries; unreachable after ParseConfig.
			col = DefaultPalette[0].Color
		}
		out[i] = Swatch{Name: sw.Name, Color: col}
	}
	return out
}

// parseHexColor parses "#rrggbb" into a Color with A = 1.
func parseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("hex color must look like #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}
