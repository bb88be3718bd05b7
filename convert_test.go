package okcolor

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func requireTuple(t *testing.T, expected, actual Color, margin float64, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(expected.Tuple(), actual.Tuple(), approx(margin)); diff != "" {
		require.FailNow(t, fmt.Sprintf("tuple mismatch (-expected +actual):\n%s", diff), msgAndArgs...)
	}
}

func TestPipelineFixtures(t *testing.T) {
	red := RGB(1, 0, 0)
	requireTuple(t, OklabColor(0.627955, 0.224863, 0.125846), SRGBToOklab(red), 1e-5)
	requireTuple(t, OklchColor(0.627955, 0.257683, 29.233885), SRGBToOklch(red), 1e-5)
	requireTuple(t, Of(XYZ, 0.412391, 0.212639, 0.019331), red.To(XYZ), 1e-5)
	requireTuple(t, OklchColor(0.627955, 0.257683, 29.233885), red.To(Oklch), 1e-5)

	for _, tc := range []struct {
		lch      Color
		expected string
	}{
		{OklchColor(1, 0.128, 168.9), "#ffffff"},
		{OklchColor(0.85, 0.17463, 54.108), "#ffbd93"},
		{OklchColor(0.0457, 0.02683, 264.05), "#000003"},
		{OklchColor(0.7, 0.4, 150), "#00be58"},
	} {
		assert.Equal(t, tc.expected, tc.lch.Hex(), tc.lch.String())
		assert.Equal(t, tc.expected, OklchToSRGB(tc.lch).Hex(), tc.lch.String())
	}
}

func TestBoundaries(t *testing.T) {
	requireTuple(t, RGB(0, 0, 0), OklabToSRGB(OklabColor(0, 0, 0)), 1e-12)
	requireTuple(t, RGB(1, 1, 1), OklabToSRGB(OklabColor(1, 0, 0)), 1e-7)
	requireTuple(t, OklabColor(0, 0, 0), OklchToOklab(OklchColor(0, 0.3, 100)), 0)
	requireTuple(t, Of(Lab, 0, 0, 0), LChToLab(Of(LCh, 0, 40, 100)), 0)
	assert.Equal(t, 0.0, OklabToOklch(OklabColor(0.5, 0.0001, -0.00015)).V[2])
	assert.Equal(t, 0.0, LabToLCh(Of(Lab, 50, 0.0001, 0.0001)).V[2])
	white := RGB(1, 1, 1)
	requireTuple(t, Of(Lab, 100, 0, 0), white.To(Lab), 1e-6)
	requireTuple(t, Of(LCh, 100, 0, 0), white.To(LCh), 1e-6)
	requireTuple(t, Of(Luv, 1, 0, 0), white.To(Luv), 1e-9)
}

func TestAlphaIsCarried(t *testing.T) {
	c := RGBA(0.2, 0.4, 0.6, 0.3)
	for i := range numSpaces {
		assert.Equal(t, 0.3, c.To(Space(i)).Alpha, Space(i).String())
	}
	assert.Equal(t, 0.3, OklabToSRGB(SRGBToOklab(c)).Alpha)
}

func TestRoundTripThroughEverySpace(t *testing.T) {
	colors := []Color{
		RGB(0, 0, 0), RGB(1, 1, 1), RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1),
		RGB(0.2, 0.4, 0.6), RGB(0.9, 0.8, 0.1), RGB(0.5, 0.5, 0.5), RGB(0.01, 0.02, 0.03),
	}
	for _, c := range colors {
		for i := range numSpaces {
			s := Space(i)
			converted := c.To(s)
			require.Equal(t, s, converted.Space)
			back := converted.To(SRGB)
			require.Equal(t, SRGB, back.Space)
			requireTuple(t, c, back, 1e-5, "%s via %s", c, s)
			// and from that space to every other space and back
			for j := range numSpaces {
				other := converted.To(Space(j)).To(s)
				requireTuple(t, c, other.To(SRGB), 1e-5, "%s via %s and %s", c, s, Space(j))
			}
		}
	}
}

func TestNamedConversionsAgree(t *testing.T) {
	c := RGB(0.3, 0.6, 0.9)
	lin := SRGBToLinearRGB(c)
	requireTuple(t, c, LinearRGBToSRGB(lin), 1e-12)
	requireTuple(t, lin, LMSToLinearRGB(LinearRGBToLMS(lin)), 1e-7)
	requireTuple(t, LinearRGBToOklab(lin), LMSToOklab(LinearRGBToLMS(lin)), 1e-12)
	requireTuple(t, LinearRGBToLMS(lin), OklabToLMS(LinearRGBToOklab(lin)), 1e-7)
	xyz := LinearRGBToXYZ(lin)
	requireTuple(t, lin, XYZToLinearRGB(xyz), 1e-12)
	requireTuple(t, LinearRGBToOklab(lin), XYZToOklab(xyz), 1e-7)
	requireTuple(t, LinearRGBToOklab(lin), LMSToOklab(XYZToLMS(xyz)), 1e-7)
	requireTuple(t, xyz, OklabToXYZ(XYZToOklab(xyz)), 1e-6)
	requireTuple(t, xyz, LMSToXYZ(XYZToLMS(xyz)), 1e-9)
	requireTuple(t, xyz, LabToXYZ(XYZToLab(xyz)), 1e-12)
	requireTuple(t, xyz, LuvToXYZ(XYZToLuv(xyz)), 1e-12)
	requireTuple(t, xyz, DisplayP3ToXYZ(XYZToDisplayP3(xyz)), 1e-12)
	requireTuple(t, c, OklabToSRGBUnmapped(SRGBToOklab(c)), 1e-6)
	requireTuple(t, c, OklabToSRGB(SRGBToOklab(c)), 1e-6)
}

func TestCIEFixtures(t *testing.T) {
	red := RGB(1, 0, 0)
	requireTuple(t, Of(Lab, 54.2905, 80.8049, 69.8910), red.To(Lab), 1e-3)
	requireTuple(t, Of(DisplayP3, 0.917488, 0.200287, 0.138561), red.To(DisplayP3), 1e-5)
	p3red := Of(DisplayP3, 1, 0, 0)
	mapped := p3red.To(SRGB)
	for _, x := range SRGBToLinearRGB(mapped).V {
		assert.True(t, x >= -0.001 && x <= 1.001, "P3 red mapped out of sRGB gamut: %s", mapped)
	}
	x, y, z := colorful.Color{R: 0.2, G: 0.4, B: 0.6}.Xyz()
	l, u, v := colorful.XyzToLuvWhiteRef(x, y, z, [3]float64{0.3127 / 0.3290, 1, (1 - 0.3127 - 0.3290) / 0.3290})
	requireTuple(t, Of(Luv, l, u, v), RGB(0.2, 0.4, 0.6).To(Luv), 1e-6)
}

func TestGamutMappingOnConversion(t *testing.T) {
	out := OklchColor(0.7, 0.4, 150)
	unmapped := OklabToSRGBUnmapped(OklchToOklab(out))
	assert.Less(t, unmapped.V[0], 0.0)
	for _, target := range []Space{SRGB, HSL, HWB} {
		c := out.To(target).To(SRGB)
		for _, x := range SRGBToLinearRGB(c).V {
			assert.True(t, x >= -0.001 && x <= 1.001, "%s: %s", target, c)
		}
	}
	// linear values out of range are mapped when encoding to sRGB but not
	// by the bare transfer function
	hdr := Of(LinearRGB, 1.2, 0, 0)
	assert.Greater(t, LinearRGBToSRGB(hdr).V[0], 1.0)
	assert.LessOrEqual(t, hdr.To(SRGB).V[0], 1.001)
	// in gamut colors are untouched by Map
	lab := SRGBToOklab(RGB(0.2, 0.4, 0.6))
	assert.Equal(t, lab, Map(lab))
}

func TestEncodedChannelsStayFinite(t *testing.T) {
	white := RGB(1, 1, 1)
	for _, via := range []Space{Lab, LCh, Luv, XYZ, DisplayP3, Oklab, Oklch, LMS, LinearRGB} {
		hsl := white.To(via).To(HSL)
		for _, x := range hsl.V {
			require.False(t, math.IsNaN(x) || math.IsInf(x, 0), "white via %s: %s", via, hsl)
		}
		assert.Equal(t, "#ffffff", hsl.To(SRGB).Hex(), "white via %s", via)
		assert.Equal(t, "#000000", RGB(0, 0, 0).To(via).To(HSL).To(SRGB).Hex(), "black via %s", via)
	}
	hsl := SRGBToHSL(Of(SRGB, 1.0000001, 1, 0.9999999))
	assert.False(t, math.IsInf(hsl.V[1], 0), hsl.String())
	assert.Equal(t, 0.0, SRGBToHSL(Of(SRGB, 0, 0, -1e-9)).V[1])

	for _, c := range []Color{OklchColor(0.7, 0.4, 150), OklchColor(1, 0.128, 168.9), Of(LinearRGB, 1.2, -0.1, 0.5), Of(Lab, 100, 0, 0)} {
		for _, x := range c.To(SRGB).V {
			assert.True(t, x >= 0 && x <= 1, "%s -> %s", c, c.To(SRGB))
		}
	}
}

func TestHSL(t *testing.T) {
	for _, tc := range []struct {
		hsl, rgb Color
	}{
		{Of(HSL, 0, 1, 0.5), RGB(1, 0, 0)},
		{Of(HSL, 120, 1, 0.25), RGB(0, 0.5, 0)},
		{Of(HSL, 240, 1, 0.5), RGB(0, 0, 1)},
		{Of(HSL, 60, 1, 0.5), RGB(1, 1, 0)},
		{Of(HSL, 300, 0.5, 0.5), RGB(0.75, 0.25, 0.75)},
		{Of(HSL, 0, 0, 0.5), RGB(0.5, 0.5, 0.5)},
	} {
		requireTuple(t, tc.rgb, HSLToSRGB(tc.hsl), 1e-12, tc.hsl.String())
		requireTuple(t, tc.hsl, SRGBToHSL(tc.rgb), 1e-12, tc.rgb.String())
	}
	// hue wraps around rather than being mirrored
	requireTuple(t, HSLToSRGB(Of(HSL, 330, 1, 0.5)), HSLToSRGB(Of(HSL, -30, 1, 0.5)), 1e-12)
	requireTuple(t, HSLToSRGB(Of(HSL, 30, 1, 0.5)), HSLToSRGB(Of(HSL, 750, 1, 0.5)), 1e-12)

	for _, h := range []float64{0, 15, 75, 130, 185, 250, 299, 345} {
		for _, s := range []float64{0.1, 0.6, 1} {
			for _, l := range []float64{0.2, 0.5, 0.8} {
				c := colorful.Hsl(h, s, l)
				requireTuple(t, RGB(c.R, c.G, c.B), HSLToSRGB(Of(HSL, h, s, l)), 1e-9)
				ch, cs, cl := c.Hsl()
				requireTuple(t, Of(HSL, ch, cs, cl), SRGBToHSL(RGB(c.R, c.G, c.B)), 1e-9)
			}
		}
	}
}

func TestHWB(t *testing.T) {
	requireTuple(t, RGB(0.8, 0.2, 0.2), HWBToSRGB(Of(HWB, 0, 0.2, 0.2)), 1e-12)
	requireTuple(t, RGB(0.5, 0.5, 0.5), HWBToSRGB(Of(HWB, 120, 0.6, 0.6)), 1e-12)
	requireTuple(t, RGB(0.25, 0.25, 0.25), HWBToSRGB(Of(HWB, 200, 0.25, 0.75)), 1e-12)
	requireTuple(t, RGB(0, 0, 1), HWBToSRGB(Of(HWB, 240, 0, 0)), 1e-12)
	requireTuple(t, Of(HWB, 0, 0.2, 0.2), SRGBToHWB(RGB(0.8, 0.2, 0.2)), 1e-12)
	requireTuple(t, Of(HWB, 0, 0.5, 0.5), SRGBToHWB(RGB(0.5, 0.5, 0.5)), 1e-12)
	requireTuple(t, Of(HSL, 0, 1, 0.5), Of(HWB, 0, 0, 0).To(HSL), 1e-12)
}

func TestToInvalidSpace(t *testing.T) {
	c := RGB(0.1, 0.2, 0.3)
	assert.Equal(t, c, c.To(Space(77)))
	bad := Color{Space: Space(-3), V: [3]float64{1, 2, 3}, Alpha: 1}
	assert.Equal(t, bad, bad.To(Oklab))
}
