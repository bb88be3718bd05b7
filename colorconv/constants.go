package colorconv

// The tables below are reproduced digit for digit from the published Oklab
// and sRGB definitions. They are unexported so that the accessors hand out
// copies.

var (
	linearRGBToXYZ = Mat3{
		{0.4123907992659593, 0.357584339383878, 0.1804807884018343},
		{0.2126390058715102, 0.715168678767756, 0.0721923153607337},
		{0.0193308187155918, 0.119194779794626, 0.9505321522496607},
	}
	xyzToLinearRGB = Mat3{
		{3.2409699419045221, -1.5373831775700939, -0.4986107602930034},
		{-0.9692436362808793, 1.8759675015077202, 0.0415550574071756},
		{0.0556300796969937, -0.2039769588889766, 1.0569715142428782},
	}
	lmsToOklab = Mat3{
		{0.2104542553, 0.793617785, -0.0040720468},
		{1.9779984951, -2.428592205, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.808675766},
	}
	oklabToLMS = Mat3{
		{1, 0.39633779217376774, 0.2158037580607588},
		{1, -0.10556134232365633, -0.0638541747717059},
		{1, -0.08948418209496574, -1.2914855378640917},
	}
	lmsToLinearRGB = Mat3{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.707614701},
	}
	linearRGBToLMS = Mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}

	// Display P3 primaries with a D65 white, as exact rationals.
	linearP3ToXYZ = Mat3{
		{608311.0 / 1250200, 189793.0 / 714400, 198249.0 / 1000160},
		{35783.0 / 156275, 247089.0 / 357200, 198249.0 / 2500400},
		{0, 32229.0 / 714400, 5220557.0 / 5000800},
	}
	xyzToLinearP3 = Mat3{
		{446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915},
		{-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905},
		{11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415},
	}

	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	xyzToLMS = linearRGBToLMS.Mul(xyzToLinearRGB)
	lmsToXYZ = linearRGBToXYZ.Mul(lmsToLinearRGB)
)

func LinearRGBToXYZMatrix() Mat3 { return linearRGBToXYZ }
func XYZToLinearRGBMatrix() Mat3 { return xyzToLinearRGB }
func LMSToOklabMatrix() Mat3     { return lmsToOklab }
func OklabToLMSMatrix() Mat3     { return oklabToLMS }
func LMSToLinearRGBMatrix() Mat3 { return lmsToLinearRGB }
func LinearRGBToLMSMatrix() Mat3 { return linearRGBToLMS }
func LinearP3ToXYZMatrix() Mat3  { return linearP3ToXYZ }
func XYZToLinearP3Matrix() Mat3  { return xyzToLinearP3 }
func BradfordMatrix() Mat3       { return bradford }
func InvBradfordMatrix() Mat3    { return invertedBradford() }

// XYZToLMSMatrix is the product of the linear RGB to LMS and XYZ to linear
// RGB tables.
func XYZToLMSMatrix() Mat3 { return xyzToLMS }

// LMSToXYZMatrix is the product of the LMS to linear RGB and linear RGB to
// XYZ tables.
func LMSToXYZMatrix() Mat3 { return lmsToXYZ }
