// Package colormath implements the numeric color-space transforms the engine
// pivots through: sRGB transfer functions, 3x3 matrix transforms between
// RGB-like spaces and CIE XYZ, Bradford chromatic adaptation, CIELAB, Oklab,
// and the cylindrical HSL/HWB family.
//
// Everything here is pure float64 math with no allocation beyond return
// values; the conversion contracts (clamping, wraparound, rounding) live in
// the engine, not here.
package colormath

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// MulVec applies the matrix to a column vector.
func (m Matrix3) MulVec(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// Mul returns the matrix product m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Inverse returns the matrix inverse by cofactor expansion. Every inverse
// transform in this package is derived from its forward matrix with this, so
// each forward/inverse pair round-trips to within float64 rounding rather
// than to the precision of independently published constants.
func (m Matrix3) Inverse() Matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	return Matrix3{
		{(e*i - f*h) / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{(f*g - d*i) / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{(d*h - e*g) / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

// Reference whites (CIE 1931 2-degree observer).
var (
	// D65WhitePoint is the reference white of sRGB and of the engine's
	// interchange space.
	D65WhitePoint = [3]float64{0.95047, 1.0, 1.08883}

	// D50WhitePoint is the reference white of CIELAB and ProPhoto RGB.
	D50WhitePoint = [3]float64{0.96422, 1.0, 0.82521}
)

// Bradford chromatic-adaptation matrices between the two reference whites.
var (
	BradfordD65ToD50 = Matrix3{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	BradfordD50ToD65 = BradfordD65ToD50.Inverse()
)
