package colorconv

import (
	"math"
)

// Reference whites derived from the CIE xy chromaticities, normalized so
// that Y = 1. WhiteD65 matches the row sums of the linear sRGB to XYZ table.
var (
	WhiteD50 = Vec3{0.3457 / 0.3585, 1, (1 - 0.3457 - 0.3585) / 0.3585}
	WhiteD65 = Vec3{0.3127 / 0.3290, 1, (1 - 0.3127 - 0.3290) / 0.3290}
)

var (
	d65ToD50 = chromaticAdaptationMatrix(WhiteD65, WhiteD50)
	d50ToD65 = chromaticAdaptationMatrix(WhiteD50, WhiteD65)
)

func invertedBradford() Mat3 {
	ans, err := bradford.Inverted()
	if err != nil {
		panic(err)
	}
	return ans
}

// chromaticAdaptationMatrix constructs a 3x3 matrix that adapts XYZ values
// from sourceWhite to targetWhite using the Bradford method.
func chromaticAdaptationMatrix(sourceWhite, targetWhite Vec3) Mat3 {
	src := Multiply(sourceWhite, bradford)
	tgt := Multiply(targetWhite, bradford)
	diag := diagonal(Vec3{tgt[0] / src[0], tgt[1] / src[1], tgt[2] / src[2]})
	// invB * diag * B
	return invertedBradford().Mul(diag.Mul(bradford))
}

func AdaptD65ToD50(v Vec3) Vec3 { return Multiply(v, d65ToD50) }
func AdaptD50ToD65(v Vec3) Vec3 { return Multiply(v, d50ToD65) }

const (
	labDelta = 6.0 / 29.0
	// (29/3)^3
	labKappa = 24389.0 / 27.0
)

func finv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	// when t <= delta: 3*delta^2*(t - 4/29)
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

func ff(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// XYZToLabD50 converts XYZ (relative to D50, Y=1) into CIELAB with L in
// [0,100].
func XYZToLabD50(v Vec3) Vec3 {
	fx := ff(v[0] / WhiteD50[0])
	fy := ff(v[1] / WhiteD50[1])
	fz := ff(v[2] / WhiteD50[2])
	return Vec3{116.0*fy - 16.0, 500.0 * (fx - fy), 200.0 * (fy - fz)}
}

// LabD50ToXYZ converts CIELAB into XYZ relative to the D50 whitepoint.
func LabD50ToXYZ(v Vec3) Vec3 {
	fy := (v[0] + 16.0) / 116.0
	fx := fy + (v[1] / 500.0)
	fz := fy - (v[2] / 200.0)
	return Vec3{finv(fx) * WhiteD50[0], finv(fy) * WhiteD50[1], finv(fz) * WhiteD50[2]}
}

func uvPrime(v Vec3) (u, w float64) {
	denom := v[0] + 15*v[1] + 3*v[2]
	if denom == 0 {
		return 0, 0
	}
	return 4 * v[0] / denom, 9 * v[1] / denom
}

// XYZToLuv converts D65 XYZ into CIE L*u*v* with L scaled to [0,1].
func XYZToLuv(v Vec3) Vec3 {
	yr := v[1] / WhiteD65[1]
	var l float64
	if yr <= labDelta*labDelta*labDelta {
		l = yr * labKappa / 100
	} else {
		l = 1.16*math.Cbrt(yr) - 0.16
	}
	u, w := uvPrime(v)
	un, wn := uvPrime(WhiteD65)
	return Vec3{l, 13 * l * (u - un), 13 * l * (w - wn)}
}

func LuvToXYZ(v Vec3) Vec3 {
	l := v[0]
	if l == 0 {
		return Vec3{}
	}
	var y float64
	if l <= 0.08 {
		y = WhiteD65[1] * l * 100 / labKappa
	} else {
		t := (l + 0.16) / 1.16
		y = WhiteD65[1] * t * t * t
	}
	un, wn := uvPrime(WhiteD65)
	u := v[1]/(13*l) + un
	w := v[2]/(13*l) + wn
	if w == 0 {
		return Vec3{0, y, 0}
	}
	return Vec3{y * 9 * u / (4 * w), y, y * (12 - 3*u - 20*w) / (4 * w)}
}
