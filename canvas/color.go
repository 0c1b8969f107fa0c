package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed 24-bit RGB value, (r << 16) | (g << 8) | b.
// Bits above 23 are ignored.
type Color uint32

const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0xFF0000
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Yellow Color = 0xFFFF00
)

func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := c.RGB()
	return uint32(r) * 0x101, uint32(g) * 0x101, uint32(b) * 0x101, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}

	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB(rgba.R, rgba.G, rgba.B)
}

// ParseColor reads #RGB, #RRGGBB or 0xRRGGBB.
func ParseColor(s string) (Color, error) {
	var digits string
	switch {
	case len(s) == 4 && s[0] == '#':
		digits = string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	case len(s) == 7 && s[0] == '#':
		digits = s[1:]
	case len(s) == 8 && strings.HasPrefix(strings.ToLower(s), "0x"):
		digits = s[2:]
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB, #RRGGBB or 0xRRGGBB", s)
	}

	// ParseUint rejects anything but hex digits here: no sign, space or prefix
	v, err := strconv.ParseUint(digits, 16, 24)
	if err != nil {
		return 0, fmt.Errorf("could not read color %q: %w", s, err)
	}
	return Color(v), nil
}
