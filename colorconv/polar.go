package colorconv

import (
	"math"
)

// AchromaticThreshold is the magnitude below which both opponent axes are
// treated as zero when computing a hue.
const AchromaticThreshold = 0.0002

// NormalizeHue wraps h into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 || h == 0 {
		// -1e-20 + 360 rounds to 360, and -0 should not leak out
		h = 0
	}
	return h
}

// ToPolar converts opponent axes into chroma and hue in degrees. The hue of
// an achromatic color is 0.
func ToPolar(a, b float64) (c, h float64) {
	c = math.Sqrt(a*a + b*b)
	if math.Abs(a) < AchromaticThreshold && math.Abs(b) < AchromaticThreshold {
		return c, 0
	}
	return c, NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

func FromPolar(c, h float64) (a, b float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return c * co, c * s
}
