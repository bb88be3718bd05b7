package okcolor

import (
	"github.com/kovidgoyal/okcolor/colorconv"
)

type AdjustMode int

const (
	// Absolute sets the adjusted channels to the specified values.
	Absolute AdjustMode = iota
	// Relative adds the specified values to the channels.
	Relative
)

func (m AdjustMode) String() string {
	if m == Relative {
		return "relative"
	}
	return "absolute"
}

// Adjustment describes changes to the Oklch channels of a color. Nil fields
// are left alone.
type Adjustment struct {
	Mode                          AdjustMode
	Lightness, Chroma, Hue, Alpha *float64
}

// Set returns a pointer to v, for use in Adjustment literals.
func Set(v float64) *float64 { return &v }

func (adj Adjustment) IsZero() bool {
	return adj.Lightness == nil && adj.Chroma == nil && adj.Hue == nil && adj.Alpha == nil
}

func (adj Adjustment) apply(current float64, v *float64) float64 {
	switch {
	case v == nil:
		return current
	case adj.Mode == Relative:
		return current + *v
	}
	return *v
}

// Adjust changes the lightness, chroma, hue and alpha of c in Oklch and
// returns the result in sRGB, gamut mapped if needed. Negative chroma is
// treated as zero and hue wraps around.
func Adjust(c Color, adj Adjustment) Color {
	lch := c.To(Oklch)
	lch.V[0] = adj.apply(lch.V[0], adj.Lightness)
	lch.V[1] = max(0, adj.apply(lch.V[1], adj.Chroma))
	lch.V[2] = colorconv.NormalizeHue(adj.apply(lch.V[2], adj.Hue))
	lch.Alpha = colorconv.Clamp01(adj.apply(lch.Alpha, adj.Alpha))
	return lch.To(SRGB)
}
