package okcolor

import (
	"math"

	"github.com/kovidgoyal/okcolor/colorconv"
)

// HSLToSRGB converts hue (degrees), saturation and lightness (both [0,1]).
func HSLToSRGB(c Color) Color {
	h, s, l := colorconv.NormalizeHue(c.V[0]), c.V[1], c.V[2]
	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := l - chroma/2
	return c.with(SRGB, colorconv.Vec3{r + m, g + m, b + m})
}

// hue returns the hexagonal hue of an sRGB color along with its largest and
// smallest channels. Grays have a hue of zero.
func hue(r, g, b float64) (h, mx, mn float64) {
	mx, mn = max(r, g, b), min(r, g, b)
	d := mx - mn
	if d == 0 {
		return 0, mx, mn
	}
	switch mx {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return colorconv.NormalizeHue(h * 60), mx, mn
}

func SRGBToHSL(c Color) Color {
	h, mx, mn := hue(c.V[0], c.V[1], c.V[2])
	l := (mx + mn) / 2
	s := 0.0
	if d := mx - mn; d != 0 && l > 0 && l < 1 {
		s = d / (1 - math.Abs(2*l-1))
	}
	return c.with(HSL, colorconv.Vec3{h, s, l})
}

// HWBToSRGB converts hue (degrees), whiteness and blackness. When whiteness
// and blackness sum to one or more the result is a gray.
func HWBToSRGB(c Color) Color {
	h, w, b := c.V[0], c.V[1], c.V[2]
	if w+b >= 1 {
		gray := w / (w + b)
		return c.with(SRGB, colorconv.Vec3{gray, gray, gray})
	}
	pure := HSLToSRGB(Of(HSL, h, 1, 0.5))
	for i := range pure.V {
		pure.V[i] = pure.V[i]*(1-w-b) + w
	}
	return c.with(SRGB, colorconv.Vec3(pure.V))
}

func SRGBToHWB(c Color) Color {
	h, mx, mn := hue(c.V[0], c.V[1], c.V[2])
	return c.with(HWB, colorconv.Vec3{h, mn, 1 - mx})
}
