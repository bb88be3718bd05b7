package colorconv

import (
	"math"
)

// The LMS values used throughout this package are the non-linear cone
// responses, that is after the cube root has been applied, since that is
// the form the Oklab matrix operates on.

func cbrt3(v Vec3) Vec3 {
	return Vec3{math.Cbrt(v[0]), math.Cbrt(v[1]), math.Cbrt(v[2])}
}

func cube3(v Vec3) Vec3 {
	return Vec3{v[0] * v[0] * v[0], v[1] * v[1] * v[1], v[2] * v[2] * v[2]}
}

func LinearRGBToLMS(v Vec3) Vec3 { return cbrt3(Multiply(v, linearRGBToLMS)) }
func LMSToLinearRGB(v Vec3) Vec3 { return Multiply(cube3(v), lmsToLinearRGB) }
func LMSToOklab(v Vec3) Vec3     { return Multiply(v, lmsToOklab) }
func OklabToLMS(v Vec3) Vec3     { return Multiply(v, oklabToLMS) }
func XYZToLMS(v Vec3) Vec3       { return cbrt3(Multiply(v, xyzToLMS)) }
func LMSToXYZ(v Vec3) Vec3       { return Multiply(cube3(v), lmsToXYZ) }

func LinearRGBToOklab(v Vec3) Vec3 { return LMSToOklab(LinearRGBToLMS(v)) }
func OklabToLinearRGB(v Vec3) Vec3 { return LMSToLinearRGB(OklabToLMS(v)) }
func XYZToOklab(v Vec3) Vec3       { return LMSToOklab(XYZToLMS(v)) }
func OklabToXYZ(v Vec3) Vec3       { return LMSToXYZ(OklabToLMS(v)) }

func LinearRGBToXYZ(v Vec3) Vec3 { return Multiply(v, linearRGBToXYZ) }
func XYZToLinearRGB(v Vec3) Vec3 { return Multiply(v, xyzToLinearRGB) }
func LinearP3ToXYZ(v Vec3) Vec3  { return Multiply(v, linearP3ToXYZ) }
func XYZToLinearP3(v Vec3) Vec3  { return Multiply(v, xyzToLinearP3) }
