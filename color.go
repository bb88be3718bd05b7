package okcolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kovidgoyal/okcolor/colorconv"
)

// Color is a color in a specific Space. Alpha is straight (not
// premultiplied) and is carried unchanged through every conversion.
type Color struct {
	Space Space
	V     [3]float64
	Alpha float64
}

// New creates a validated color. channels must have three or four entries,
// the fourth being alpha, which defaults to 1. Channels that have a fixed
// range in the space (sRGB components, HSL saturation and lightness, HWB
// whiteness and blackness) are clamped to it, as is alpha.
func New(space Space, channels ...float64) (ans Color, err error) {
	if !space.Valid() {
		return ans, fmt.Errorf("%w: %d", ErrUnknownColorSpace, int(space))
	}
	if len(channels) < 3 || len(channels) > 4 {
		return ans, fmt.Errorf("%w: got %d channels for %s", ErrInvalidDimension, len(channels), space)
	}
	for i, c := range channels {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ans, fmt.Errorf("%w: channel %d of %s is %v", ErrInvalidChannelType, i, space, c)
		}
	}
	ans = Color{Space: space, V: [3]float64{channels[0], channels[1], channels[2]}, Alpha: 1}
	if len(channels) == 4 {
		ans.Alpha = colorconv.Clamp01(channels[3])
	}
	switch space {
	case SRGB:
		for i := range ans.V {
			ans.V[i] = colorconv.Clamp01(ans.V[i])
		}
	case HSL, HWB:
		ans.V[1] = colorconv.Clamp01(ans.V[1])
		ans.V[2] = colorconv.Clamp01(ans.V[2])
	}
	return
}

// Of returns an opaque color without any validation, for use with literals.
func Of(space Space, c0, c1, c2 float64) Color {
	return Color{Space: space, V: [3]float64{c0, c1, c2}, Alpha: 1}
}

func RGB(r, g, b float64) Color           { return Of(SRGB, r, g, b) }
func RGBA(r, g, b, a float64) Color       { return RGB(r, g, b).WithAlpha(a) }
func OklabColor(l, a, b float64) Color    { return Of(Oklab, l, a, b) }
func OklchColor(l, c, h float64) Color    { return Of(Oklch, l, c, h) }
func (c Color) WithAlpha(a float64) Color { c.Alpha = a; return c }

// Tuple returns the channels followed by alpha.
func (c Color) Tuple() [4]float64 {
	return [4]float64{c.V[0], c.V[1], c.V[2], c.Alpha}
}

func (c Color) vec() colorconv.Vec3 { return colorconv.Vec3(c.V) }

func (c Color) with(space Space, v colorconv.Vec3) Color {
	return Color{Space: space, V: [3]float64(v), Alpha: c.Alpha}
}

// Format returns a CSS like representation of the color, with channels
// rounded to the specified number of decimal places.
func (c Color) Format(precision int) string {
	f := func(x float64) string {
		s := strconv.FormatFloat(x, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	ans := fmt.Sprintf("%s(%s %s %s", c.Space, f(c.V[0]), f(c.V[1]), f(c.V[2]))
	if c.Alpha < 1 {
		ans += " / " + f(c.Alpha)
	}
	return ans + ")"
}

func (c Color) String() string { return c.Format(6) }
