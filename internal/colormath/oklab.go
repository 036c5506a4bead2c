package colormath

import "math"

// Oklab is defined in terms of linear sRGB; conversion to and from the XYZ
// interchange goes through the sRGB primary matrices.

// Oklab forward matrices (Ottosson). The inverses are derived so the
// cube/cube-root pipeline round-trips exactly.
var (
	oklabLMSFromRGB = Matrix3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	oklabFromLMS = Matrix3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabRGBFromLMS = oklabLMSFromRGB.Inverse()
	oklabLMSFromLab = oklabFromLMS.Inverse()
)

// LinearRGBToOklab converts linear sRGB to Oklab.
func LinearRGBToOklab(r, g, b float64) (float64, float64, float64) {
	l, m, s := oklabLMSFromRGB.MulVec(r, g, b)
	return oklabFromLMS.MulVec(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
}

// OklabToLinearRGB converts Oklab to linear sRGB.
func OklabToLinearRGB(l, a, b float64) (float64, float64, float64) {
	lp, mp, sp := oklabLMSFromLab.MulVec(l, a, b)
	return oklabRGBFromLMS.MulVec(lp*lp*lp, mp*mp*mp, sp*sp*sp)
}

// XYZToOklab converts D65 XYZ to Oklab.
func XYZToOklab(x, y, z float64) (float64, float64, float64) {
	r, g, b := XYZToSRGB.MulVec(x, y, z)
	return LinearRGBToOklab(r, g, b)
}

// OklabToXYZ converts Oklab to D65 XYZ.
func OklabToXYZ(l, a, b float64) (float64, float64, float64) {
	r, g, bl := OklabToLinearRGB(l, a, b)
	return SRGBToXYZ.MulVec(r, g, bl)
}
