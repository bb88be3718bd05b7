package okcolor

import (
	"github.com/kovidgoyal/okcolor/colorconv"
	"github.com/kovidgoyal/okcolor/gamut"
)

// The functions below are the individual steps of the conversion pipeline.
// They interpret the channels of their input in the space named by the
// function and do not look at its Space field. Use Color.To to convert
// between arbitrary spaces.

func SRGBToLinearRGB(c Color) Color { return c.with(LinearRGB, colorconv.DecodeSRGB(c.vec())) }

// LinearRGBToSRGB applies the sRGB transfer function without gamut mapping.
func LinearRGBToSRGB(c Color) Color { return c.with(SRGB, colorconv.EncodeSRGB(c.vec())) }

func LinearRGBToLMS(c Color) Color   { return c.with(LMS, colorconv.LinearRGBToLMS(c.vec())) }
func LMSToLinearRGB(c Color) Color   { return c.with(LinearRGB, colorconv.LMSToLinearRGB(c.vec())) }
func LMSToOklab(c Color) Color       { return c.with(Oklab, colorconv.LMSToOklab(c.vec())) }
func OklabToLMS(c Color) Color       { return c.with(LMS, colorconv.OklabToLMS(c.vec())) }
func LinearRGBToOklab(c Color) Color { return c.with(Oklab, colorconv.LinearRGBToOklab(c.vec())) }
func OklabToLinearRGB(c Color) Color { return c.with(LinearRGB, colorconv.OklabToLinearRGB(c.vec())) }
func LinearRGBToXYZ(c Color) Color   { return c.with(XYZ, colorconv.LinearRGBToXYZ(c.vec())) }
func XYZToLinearRGB(c Color) Color   { return c.with(LinearRGB, colorconv.XYZToLinearRGB(c.vec())) }
func XYZToLMS(c Color) Color         { return c.with(LMS, colorconv.XYZToLMS(c.vec())) }
func LMSToXYZ(c Color) Color         { return c.with(XYZ, colorconv.LMSToXYZ(c.vec())) }
func XYZToOklab(c Color) Color       { return c.with(Oklab, colorconv.XYZToOklab(c.vec())) }
func OklabToXYZ(c Color) Color       { return c.with(XYZ, colorconv.OklabToXYZ(c.vec())) }
func XYZToLuv(c Color) Color         { return c.with(Luv, colorconv.XYZToLuv(c.vec())) }
func LuvToXYZ(c Color) Color         { return c.with(XYZ, colorconv.LuvToXYZ(c.vec())) }

func SRGBToOklab(c Color) Color { return LinearRGBToOklab(SRGBToLinearRGB(c)) }

// OklabToSRGB converts to sRGB, mapping colors that are outside the sRGB
// gamut onto its surface first. The channels of the result are in [0,1].
func OklabToSRGB(c Color) Color { return clampEncoded(LinearRGBToSRGB(OklabToLinearRGB(Map(c)))) }

// OklabToSRGBUnmapped converts to sRGB without gamut mapping, so channels
// can be outside [0,1].
func OklabToSRGBUnmapped(c Color) Color { return LinearRGBToSRGB(OklabToLinearRGB(c)) }

// Map returns the in-gamut Oklab color closest to c. Colors that are already
// displayable are returned unchanged.
func Map(c Color) Color {
	L, a, b := gamut.MapOklab(c.V[0], c.V[1], c.V[2])
	return c.with(Oklab, colorconv.Vec3{L, a, b})
}

func OklabToOklch(c Color) Color {
	C, h := colorconv.ToPolar(c.V[1], c.V[2])
	return c.with(Oklch, colorconv.Vec3{c.V[0], C, h})
}

// OklchToOklab converts from polar form. Zero lightness is always black.
func OklchToOklab(c Color) Color {
	if c.V[0] == 0 {
		return c.with(Oklab, colorconv.Vec3{})
	}
	a, b := colorconv.FromPolar(c.V[1], c.V[2])
	return c.with(Oklab, colorconv.Vec3{c.V[0], a, b})
}

func SRGBToOklch(c Color) Color { return OklabToOklch(SRGBToOklab(c)) }
func OklchToSRGB(c Color) Color { return OklabToSRGB(OklchToOklab(c)) }

// XYZToLab converts D65 XYZ to CIE Lab relative to D50 (L in [0,100]).
func XYZToLab(c Color) Color {
	return c.with(Lab, colorconv.XYZToLabD50(colorconv.AdaptD65ToD50(c.vec())))
}

func LabToXYZ(c Color) Color {
	return c.with(XYZ, colorconv.AdaptD50ToD65(colorconv.LabD50ToXYZ(c.vec())))
}

func LabToLCh(c Color) Color {
	C, h := colorconv.ToPolar(c.V[1], c.V[2])
	return c.with(LCh, colorconv.Vec3{c.V[0], C, h})
}

func LChToLab(c Color) Color {
	if c.V[0] == 0 {
		return c.with(Lab, colorconv.Vec3{})
	}
	a, b := colorconv.FromPolar(c.V[1], c.V[2])
	return c.with(Lab, colorconv.Vec3{c.V[0], a, b})
}

// DisplayP3ToXYZ converts gamma encoded Display P3, which uses the sRGB
// transfer function, to XYZ.
func DisplayP3ToXYZ(c Color) Color {
	return c.with(XYZ, colorconv.LinearP3ToXYZ(colorconv.DecodeSRGB(c.vec())))
}

func XYZToDisplayP3(c Color) Color {
	return c.with(DisplayP3, colorconv.EncodeSRGB(colorconv.XYZToLinearP3(c.vec())))
}

// To converts c into the target space. Conversions into sRGB, HSL and HWB
// from any other space map the color into the sRGB gamut. Converting to or
// from an invalid space returns c unchanged.
func (c Color) To(target Space) Color {
	if c.Space == target || !target.Valid() || !c.Space.Valid() {
		return c
	}
	from, to := c.Space.family(), target.family()
	if from == to {
		switch from {
		case perceptualFamily:
			return fromOklab(c.toOklab(), target)
		case encodedFamily:
			return fromSRGB(c.toSRGB(), target)
		}
		return fromXYZ(c.toXYZ(), target)
	}
	switch to {
	case perceptualFamily:
		if from == cieFamily {
			return fromOklab(XYZToOklab(c.toXYZ()), target)
		}
		return fromOklab(LinearRGBToOklab(c.toLinear()), target)
	case encodedFamily:
		if from == perceptualFamily {
			return fromSRGB(OklabToSRGB(c.toOklab()), target)
		}
		return fromSRGB(mapLinear(c.toLinear()), target)
	case linearFamily:
		return c.toLinear()
	}
	if from == perceptualFamily {
		return fromXYZ(OklabToXYZ(c.toOklab()), target)
	}
	return fromXYZ(LinearRGBToXYZ(c.toLinear()), target)
}

// mapLinear encodes linear sRGB, gamut mapping it through Oklab when needed.
// clampEncoded removes the slack gamut mapping leaves around [0,1].
func clampEncoded(c Color) Color {
	for i, x := range c.V {
		c.V[i] = colorconv.Clamp01(x)
	}
	return c
}

func mapLinear(lin Color) Color {
	if gamut.InGamut(lin.V[0], lin.V[1], lin.V[2]) {
		return clampEncoded(LinearRGBToSRGB(lin))
	}
	return OklabToSRGB(LinearRGBToOklab(lin))
}

func (c Color) toOklab() Color {
	switch c.Space {
	case Oklch:
		return OklchToOklab(c)
	case LMS:
		return LMSToOklab(c)
	}
	return c
}

func fromOklab(c Color, target Space) Color {
	switch target {
	case Oklch:
		return OklabToOklch(c)
	case LMS:
		return OklabToLMS(c)
	}
	return c
}

func (c Color) toSRGB() Color {
	switch c.Space {
	case HSL:
		return HSLToSRGB(c)
	case HWB:
		return HWBToSRGB(c)
	}
	return c
}

func fromSRGB(c Color, target Space) Color {
	switch target {
	case HSL:
		return SRGBToHSL(c)
	case HWB:
		return SRGBToHWB(c)
	}
	return c
}

func (c Color) toXYZ() Color {
	switch c.Space {
	case Lab:
		return LabToXYZ(c)
	case LCh:
		return LabToXYZ(LChToLab(c))
	case Luv:
		return LuvToXYZ(c)
	case DisplayP3:
		return DisplayP3ToXYZ(c)
	}
	return c
}

func fromXYZ(c Color, target Space) Color {
	switch target {
	case Lab:
		return XYZToLab(c)
	case LCh:
		return LabToLCh(XYZToLab(c))
	case Luv:
		return XYZToLuv(c)
	case DisplayP3:
		return XYZToDisplayP3(c)
	}
	return c
}

func (c Color) toLinear() Color {
	switch c.Space.family() {
	case encodedFamily:
		return SRGBToLinearRGB(c.toSRGB())
	case perceptualFamily:
		return OklabToLinearRGB(c.toOklab())
	case cieFamily:
		return XYZToLinearRGB(c.toXYZ())
	}
	return c
}
