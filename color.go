package artist

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. The zero value represents "no color", which is
// how a [Cell] rendered without color mode is marked. Two colors are equal iff
// their channels are equal
type Color uint32

const rgb Color = 1 << 24

// RGBColor returns the Color with the given channel intensities
func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

// HexColor creates a Color from a 0xRRGGBB value
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}

// IsSet reports whether c carries a color
func (c Color) IsSet() bool {
	return c&rgb != 0
}

// RGB returns the channel intensities of the color. An unset color reports
// black
func (c Color) RGB() (r uint8, g uint8, b uint8) {
	if !c.IsSet() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as #rrggbb, or an empty string if the color is unset
func (c Color) Hex() string {
	if !c.IsSet() {
		return ""
	}
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

func (c Color) String() string {
	if !c.IsSet() {
		return "none"
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
