package colormath

import "math"

// SRGBToLinear converts a gamma-encoded sRGB component in [0,1] to linear
// light.
func SRGBToLinear(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to gamma-encoded sRGB.
func LinearToSRGB(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v <= 0.0031308 {
		return sign * v * 12.92
	}
	return sign * (1.055*math.Pow(v, 1.0/2.4) - 0.055)
}

// SRGBToXYZ is the linear-sRGB to XYZ (D65) primary matrix.
var SRGBToXYZ = Matrix3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// XYZToSRGB is the XYZ (D65) to linear-sRGB primary matrix.
var XYZToSRGB = SRGBToXYZ.Inverse()

// Display P3 shares the sRGB transfer function with wider primaries.
var (
	P3ToXYZ = Matrix3{
		{0.4865709486, 0.2656676932, 0.1982172852},
		{0.2289745641, 0.6917385218, 0.0792869141},
		{0.0000000000, 0.0451133819, 1.0439443689},
	}
	XYZToP3 = P3ToXYZ.Inverse()
)

// A98 RGB (Adobe RGB 1998): pure 563/256 gamma, D65.
var (
	A98ToXYZ = Matrix3{
		{0.5766690429, 0.1855582379, 0.1882286462},
		{0.2973449753, 0.6273635663, 0.0752914585},
		{0.0270313614, 0.0706888525, 0.9913375368},
	}
	XYZToA98 = A98ToXYZ.Inverse()
)

// ProPhoto RGB: 1.8 gamma with a linear toe, D50 native white.
var (
	ProPhotoToXYZ = Matrix3{
		{0.7977604896, 0.1351791173, 0.0313493495},
		{0.2880711282, 0.7118432179, 0.0000856540},
		{0.0000000000, 0.0000000000, 0.8251046025},
	}
	XYZToProPhoto = ProPhotoToXYZ.Inverse()
)

// Rec. 2020: BT.2020 transfer, D65.
var (
	Rec2020ToXYZ = Matrix3{
		{0.6369580483, 0.1446169036, 0.1688809752},
		{0.2627002120, 0.6779980715, 0.0593017165},
		{0.0000000000, 0.0280726930, 1.0609850577},
	}
	XYZToRec2020 = Rec2020ToXYZ.Inverse()
)

// Identity is the identity matrix, used by the xyz pass-through spaces.
var Identity = Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// A98ToLinear is the Adobe RGB decoding function.
func A98ToLinear(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	return sign * math.Pow(v, 563.0/256.0)
}

// A98FromLinear is the Adobe RGB encoding function.
func A98FromLinear(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	return sign * math.Pow(v, 256.0/563.0)
}

// ProPhotoToLinear decodes the ROMM transfer function.
func ProPhotoToLinear(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v <= 16.0/512.0 {
		return sign * v / 16.0
	}
	return sign * math.Pow(v, 1.8)
}

// ProPhotoFromLinear encodes the ROMM transfer function.
func ProPhotoFromLinear(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v < 1.0/512.0 {
		return sign * v * 16.0
	}
	return sign * math.Pow(v, 1.0/1.8)
}

// Rec2020ToLinear decodes the BT.2020 transfer function.
func Rec2020ToLinear(v float64) float64 {
	const alpha = 1.09929682680944
	const beta = 0.018053968510807
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v < beta*4.5 {
		return sign * v / 4.5
	}
	return sign * math.Pow((v+alpha-1)/alpha, 1.0/0.45)
}

// Rec2020FromLinear encodes the BT.2020 transfer function.
func Rec2020FromLinear(v float64) float64 {
	const alpha = 1.09929682680944
	const beta = 0.018053968510807
	sign := 1.0
	if v < 0 {
		sign, v = -1.0, -v
	}
	if v < beta {
		return sign * v * 4.5
	}
	return sign * (alpha*math.Pow(v, 0.45) - (alpha - 1))
}

// LinearIdentity is the transfer function of already-linear spaces.
func LinearIdentity(v float64) float64 { return v }
