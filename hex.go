package okcolor

import (
	"fmt"
	"image/color"
	"math"

	"github.com/kovidgoyal/okcolor/colorconv"
)

func to8(x float64) uint8 {
	return uint8(math.Round(colorconv.Clamp01(x) * 255))
}

func to16(x float64) uint16 {
	return uint16(math.Round(colorconv.Clamp01(x) * 65535))
}

// NRGBA returns the gamut mapped sRGB form of c as an 8 bit color.
func (c Color) NRGBA() color.NRGBA {
	s := c.To(SRGB)
	return color.NRGBA{to8(s.V[0]), to8(s.V[1]), to8(s.V[2]), to8(s.Alpha)}
}

func (c Color) NRGBA64() color.NRGBA64 {
	s := c.To(SRGB)
	return color.NRGBA64{to16(s.V[0]), to16(s.V[1]), to16(s.V[2]), to16(s.Alpha)}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA64().RGBA()
}

// FromStdColor converts any color.Color into an sRGB Color.
func FromStdColor(c color.Color) Color {
	if x, ok := c.(Color); ok {
		return x
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA(float64(n.R)/65535, float64(n.G)/65535, float64(n.B)/65535, float64(n.A)/65535)
}

// Hex returns the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// HexNumber returns the color as 0xrrggbb, ignoring alpha.
func (c Color) HexNumber() uint32 {
	n := c.NRGBA()
	return uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// FromHexNumber creates an opaque sRGB color from 0xrrggbb.
func FromHexNumber(n uint32) (Color, error) {
	if n > 0xffffff {
		return Color{}, fmt.Errorf("%w: hex number %#x is larger than 0xffffff", ErrInvalidChannelType, n)
	}
	return RGB(float64(n>>16)/255, float64((n>>8)&0xff)/255, float64(n&0xff)/255), nil
}
