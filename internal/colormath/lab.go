package colormath

import "math"

// CIELAB is computed against the D50 reference white, as the CSS lab() and
// lch() grammars require; callers adapt to and from the D65 interchange with
// the Bradford matrices.

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3.0*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3.0 * delta * delta * (t - 4.0/29.0)
}

// XYZToLab converts D50-adapted XYZ to CIELAB (L 0..100).
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := labF(x / D50WhitePoint[0])
	fy := labF(y / D50WhitePoint[1])
	fz := labF(z / D50WhitePoint[2])
	return 116.0*fy - 16.0, 500.0 * (fx - fy), 200.0 * (fy - fz)
}

// LabToXYZ converts CIELAB to D50-adapted XYZ.
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16.0) / 116.0
	fx := fy + a/500.0
	fz := fy - b/200.0
	return D50WhitePoint[0] * labFInv(fx),
		D50WhitePoint[1] * labFInv(fy),
		D50WhitePoint[2] * labFInv(fz)
}

// RectToPolar converts opponent axes (a,b) to (chroma, hue°), hue in [0,360).
func RectToPolar(a, b float64) (c, h float64) {
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180.0 / math.Pi
	if h < 0 {
		h += 360.0
	}
	return c, h
}

// PolarToRect converts (chroma, hue°) back to opponent axes.
func PolarToRect(c, h float64) (a, b float64) {
	rad := h * math.Pi / 180.0
	return c * math.Cos(rad), c * math.Sin(rad)
}
