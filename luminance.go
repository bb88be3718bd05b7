package okcolor

import (
	"fmt"

	"github.com/kovidgoyal/okcolor/colorconv"
)

// whiteY is the Y of sRGB white, which rounding leaves a hair below one.
var whiteY = RGB(1, 1, 1).To(XYZ).V[1]

// Luminance returns the relative luminance of c as displayed, that is, the Y
// component of the XYZ coordinates of its gamut mapped sRGB form, scaled so
// that white is exactly one.
func Luminance(c Color) float64 {
	return colorconv.Clamp01(c.To(SRGB).To(XYZ).V[1] / whiteY)
}

// Lightness returns the perceptual lightness of c, the L component of Oklab.
func Lightness(c Color) float64 {
	return c.To(Oklab).V[0]
}

type Tone int

const (
	Light Tone = iota
	Dark
)

func (t Tone) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// DarkLuminanceThreshold is the luminance below which a color counts as
// dark, that is, one that needs light text on top of it.
const DarkLuminanceThreshold = 0.36

func LightOrDark(c Color) Tone {
	if Luminance(c) < DarkLuminanceThreshold {
		return Dark
	}
	return Light
}

// WCAG 2.1 minimum contrast ratios for normal text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7
)

type Contrast struct {
	Ratio   float64
	AA, AAA bool
}

func (c Contrast) String() string {
	level := "fail"
	switch {
	case c.AAA:
		level = "AAA"
	case c.AA:
		level = "AA"
	}
	return fmt.Sprintf("%.2f:1 (%s)", c.Ratio, level)
}

// ContrastRatio returns the WCAG 2.1 contrast ratio between two colors. It
// is symmetric in its arguments.
func ContrastRatio(a, b Color) Contrast {
	la, lb := Luminance(a), Luminance(b)
	hi, lo := max(la, lb), min(la, lb)
	r := (hi + 0.05) / (lo + 0.05)
	return Contrast{Ratio: r, AA: r >= ContrastAA, AAA: r >= ContrastAAA}
}
