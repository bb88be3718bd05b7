package okcolor

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/okcolor/colorconv"
)

// MixSpaces are the spaces that Mix can interpolate in.
var MixSpaces = []Space{Oklab, Oklch, LMS, LinearRGB, SRGB, XYZ}

func checkMixSpace(space Space) error {
	for _, s := range MixSpaces {
		if s == space {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot mix in %s", ErrUnknownColorSpace, space)
}

func isAchromatic(c Color) bool {
	lab := c.To(Oklab)
	return math.Abs(lab.V[1]) < colorconv.AchromaticThreshold && math.Abs(lab.V[2]) < colorconv.AchromaticThreshold
}

// Mix interpolates between a and b in the specified space, weight being the
// fraction of b in the result. weight is clamped to [0,1]. The result is in
// sRGB, gamut mapped if needed.
//
// When mixing in Oklch, if either color is achromatic the interpolation is
// done in Oklab instead, since a gray has no meaningful hue, and hues are
// interpolated along the shorter arc.
func Mix(a, b Color, weight float64, space Space) (Color, error) {
	if err := checkMixSpace(space); err != nil {
		return Color{}, err
	}
	if math.IsNaN(weight) {
		return Color{}, fmt.Errorf("%w: mix weight is NaN", ErrInvalidChannelType)
	}
	weight = colorconv.Clamp01(weight)
	switch weight {
	case 0:
		return a.To(SRGB), nil
	case 1:
		return b.To(SRGB), nil
	}
	if space == Oklch && (isAchromatic(a) || isAchromatic(b)) {
		space = Oklab
	}
	x, y := a.To(space), b.To(space)
	if space == Oklch {
		h1, h2 := x.V[2], y.V[2]
		if math.Abs(h2-h1) > 180 {
			if h1 > h2 {
				h1 -= 360
			} else {
				h2 -= 360
			}
		}
		x.V[2], y.V[2] = h1, h2
	}
	ans := Color{Space: space}
	for i := range ans.V {
		ans.V[i] = x.V[i]*(1-weight) + y.V[i]*weight
	}
	ans.Alpha = x.Alpha*(1-weight) + y.Alpha*weight
	if space == Oklch {
		ans.V[2] = colorconv.NormalizeHue(ans.V[2])
	}
	return ans.To(SRGB), nil
}

// Lighten mixes c with white. amount is in [-1,1], negative amounts darken.
func Lighten(c Color, amount float64, space Space) (Color, error) {
	if amount < 0 {
		return Darken(c, -amount, space)
	}
	return Mix(c, RGBA(1, 1, 1, c.Alpha), amount, space)
}

// Darken mixes c with black. amount is in [-1,1], negative amounts lighten.
func Darken(c Color, amount float64, space Space) (Color, error) {
	if amount < 0 {
		return Lighten(c, -amount, space)
	}
	return Mix(c, RGBA(0, 0, 0, c.Alpha), amount, space)
}

// Scale returns steps colors evenly spaced from a to b inclusive. A single
// step returns just a.
func Scale(a, b Color, steps int, space Space) ([]Color, error) {
	if err := checkMixSpace(space); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, nil
	}
	ans := make([]Color, steps)
	for i := range ans {
		w := 0.0
		if steps > 1 {
			w = float64(i) / float64(steps-1)
		}
		c, err := Mix(a, b, w, space)
		if err != nil {
			return nil, err
		}
		ans[i] = c
	}
	return ans, nil
}

// Grayscale returns a perceptually even ramp from black to white.
func Grayscale(steps int) []Color {
	ans, _ := Scale(RGB(0, 0, 0), RGB(1, 1, 1), steps, Oklab)
	return ans
}
