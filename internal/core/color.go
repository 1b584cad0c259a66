package core

import (
	"fmt"
	"strings"
)

// Color is a named draw color. Backends translate it to whatever their
// output understands (truecolor escape, tcell color, RGBA pixel).
type Color uint8

// Predefined colors.
const (
	ColorBlack Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
)

var colorNames = [...]string{
	ColorBlack:   "black",
	ColorWhite:   "white",
	ColorGray:    "gray",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorOrange:  "orange",
}

var colorRGB = [...][3]uint8{
	ColorBlack:   {0, 0, 0},
	ColorWhite:   {255, 255, 255},
	ColorGray:    {128, 128, 128},
	ColorRed:     {220, 50, 47},
	ColorGreen:   {80, 200, 80},
	ColorYellow:  {240, 200, 40},
	ColorBlue:    {60, 110, 220},
	ColorMagenta: {200, 60, 200},
	ColorCyan:    {40, 190, 200},
	ColorOrange:  {250, 140, 30},
}

// RGB returns the 8-bit channel values of the color.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(colorRGB) {
		return 0, 0, 0
	}
	v := colorRGB[c]
	return v[0], v[1], v[2]
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String returns the color name.
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor looks up a color by name, case-insensitively.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorBlack, fmt.Errorf("unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
