// Package gamut maps Oklab colors that fall outside the sRGB cube back onto
// its surface, keeping hue fixed and moving along a line that trades chroma
// for lightness as little as possible.
package gamut

import (
	"math"

	"github.com/kovidgoyal/okcolor/colorconv"
)

const (
	// Lower and Upper bound the linear sRGB channels of colors that are
	// considered displayable.
	Lower = -0.001
	Upper = 1.001
	// Epsilon is the chroma floor that keeps the hue direction finite.
	Epsilon = 1e-5
	// HalleySteps is the number of Halley refinements applied to the
	// polynomial estimates. One step keeps the error below what an 8 bit
	// channel can represent.
	HalleySteps = 1
)

// Cusp is the point of maximum chroma, with its lightness, on the edge of
// the sRGB gamut for a given hue.
type Cusp struct {
	L, C float64
}

// InGamut reports whether all linear sRGB channels are within [Lower, Upper].
func InGamut(r, g, b float64) bool {
	return r >= Lower && r <= Upper && g >= Lower && g <= Upper && b >= Lower && b <= Upper
}

type saturationCoefficients struct {
	k0, k1, k2, k3, k4 float64
	// row of the LMS to linear sRGB matrix for the channel that clips first
	wl, wm, ws float64
}

var (
	redCoefficients = saturationCoefficients{
		1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245,
		4.0767416621, -3.3077115913, 0.2309699292,
	}
	greenCoefficients = saturationCoefficients{
		0.73956515, -0.45954404, 0.08285427, 0.1254107, 0.14503204,
		-1.2684380046, 2.6097574011, -0.3413193965,
	}
	blueCoefficients = saturationCoefficients{
		1.35733652, -0.00915799, -1.1513021, -0.50559606, 0.00692167,
		-0.0041960863, -0.7034186147, 1.707614701,
	}
)

// MaxSaturation returns the largest S = C/L that stays inside the sRGB
// gamut for the hue direction (a, b), which must be normalized so that
// a² + b² = 1.
func MaxSaturation(a, b float64) float64 {
	var k saturationCoefficients
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		k = redCoefficients
	case 1.81444104*a-1.19445276*b > 1:
		k = greenCoefficients
	default:
		k = blueCoefficients
	}
	S := k.k0 + k.k1*a + k.k2*b + k.k3*a*a + k.k4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.291485548*b
	for range HalleySteps {
		l_ := 1 + S*kl
		m_ := 1 + S*km
		s_ := 1 + S*ks

		l := l_ * l_ * l_
		m := m_ * m_ * m_
		s := s_ * s_ * s_

		ldS := 3 * kl * l_ * l_
		mdS := 3 * km * m_ * m_
		sdS := 3 * ks * s_ * s_

		ldS2 := 6 * kl * kl * l_
		mdS2 := 6 * km * km * m_
		sdS2 := 6 * ks * ks * s_

		f := k.wl*l + k.wm*m + k.ws*s
		f1 := k.wl*ldS + k.wm*mdS + k.ws*sdS
		f2 := k.wl*ldS2 + k.wm*mdS2 + k.ws*sdS2

		S -= f * f1 / (f1*f1 - 0.5*f*f2)
	}
	return S
}

// FindCusp returns the lightness and chroma of the most saturated in-gamut
// color for the normalized hue direction (a, b).
func FindCusp(a, b float64) Cusp {
	S := MaxSaturation(a, b)
	rgb := colorconv.OklabToLinearRGB(colorconv.Vec3{1, S * a, S * b})
	L := math.Cbrt(1 / max(rgb[0], rgb[1], rgb[2]))
	return Cusp{L: L, C: L * S}
}

// FindGamutIntersection finds t such that the point
//
//	L = L0·(1−t) + t·L1, C = t·C1
//
// lies on the gamut boundary, for the normalized hue direction (a, b).
func FindGamutIntersection(a, b, L1, C1, L0 float64) float64 {
	cusp := FindCusp(a, b)
	return intersect(a, b, L1, C1, L0, cusp)
}

func intersect(a, b, L1, C1, L0 float64, cusp Cusp) (t float64) {
	if (L1-L0)*cusp.C-(cusp.L-L0)*C1 <= 0 {
		// lower half, the boundary is a straight line to black
		return cusp.C * L0 / (C1*cusp.L + cusp.C*(L0-L1))
	}
	// upper half, start from the intersection with the line to white
	t = cusp.C * (L0 - 1) / (C1*(cusp.L-1) + cusp.C*(L0-L1))

	dL := L1 - L0
	dC := C1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.291485548*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	for range HalleySteps {
		L := L0*(1-t) + t*L1
		C := t * C1

		l_ := L + C*kl
		m_ := L + C*km
		s_ := L + C*ks

		l := l_ * l_ * l_
		m := m_ * m_ * m_
		s := s_ * s_ * s_

		ldt1 := 3 * ldt * l_ * l_
		mdt1 := 3 * mdt * m_ * m_
		sdt1 := 3 * sdt * s_ * s_

		ldt2 := 6 * ldt * ldt * l_
		mdt2 := 6 * mdt * mdt * m_
		sdt2 := 6 * sdt * sdt * s_

		step := math.Inf(1)
		for _, w := range [3]saturationCoefficients{redCoefficients, greenCoefficients, blueCoefficients} {
			v := w.wl*l + w.wm*m + w.ws*s - 1
			v1 := w.wl*ldt1 + w.wm*mdt1 + w.ws*sdt1
			v2 := w.wl*ldt2 + w.wm*mdt2 + w.ws*sdt2
			u := v1 / (v1*v1 - 0.5*v*v2)
			if u >= 0 {
				step = min(step, -v*u)
			}
		}
		if math.IsInf(step, 1) {
			step = 0
		}
		t += step
	}
	return t
}

// MapOklab returns the in-gamut Oklab color closest to (L, a, b) along the
// line towards the clamped lightness of the input. Colors already inside the
// gamut are returned unchanged.
func MapOklab(L, a, b float64) (float64, float64, float64) {
	rgb := colorconv.OklabToLinearRGB(colorconv.Vec3{L, a, b})
	if InGamut(rgb[0], rgb[1], rgb[2]) {
		return L, a, b
	}
	L0 := colorconv.Clamp01(L)
	C := math.Sqrt(a*a + b*b)
	if C < Epsilon {
		return L0, 0, 0
	}
	an, bn := a/C, b/C
	t := FindGamutIntersection(an, bn, L, C, L0)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}
	t = colorconv.Clamp01(t)
	return L0*(1-t) + t*L, an * t * C, bn * t * C
}

// MaxChroma returns the largest chroma that is displayable in sRGB at the
// specified Oklab lightness and hue (in degrees).
func MaxChroma(L, h float64) float64 {
	if L <= 0 || L >= 1 {
		return 0
	}
	a, b := colorconv.FromPolar(1, h)
	_, a, b = MapOklab(L, a, b)
	return math.Sqrt(a*a + b*b)
}
