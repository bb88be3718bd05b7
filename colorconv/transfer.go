package colorconv

import (
	"math"
)

// SRGBTransfer applies the sRGB companding curve to a linear value. Negative
// values are mirrored rather than clipped so that out of gamut colors survive
// a round trip.
func SRGBTransfer(v float64) float64 {
	a := math.Abs(v)
	if a <= 0.0031308 {
		return 12.92 * v
	}
	return math.Copysign(1.055*math.Pow(a, 1.0/2.4)-0.055, v)
}

// SRGBInverseTransfer undoes SRGBTransfer.
func SRGBInverseTransfer(v float64) float64 {
	a := math.Abs(v)
	if a <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((a+0.055)/1.055, 2.4), v)
}

func EncodeSRGB(v Vec3) Vec3 {
	return Vec3{SRGBTransfer(v[0]), SRGBTransfer(v[1]), SRGBTransfer(v[2])}
}

func DecodeSRGB(v Vec3) Vec3 {
	return Vec3{SRGBInverseTransfer(v[0]), SRGBInverseTransfer(v[1]), SRGBInverseTransfer(v[2])}
}
