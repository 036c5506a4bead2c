package colormath

import "math"

// RGBToHSL converts gamma-encoded sRGB fractions to HSL with hue in degrees
// [0,360) and saturation/lightness as fractions.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2.0

	d := max - min
	if d == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	default:
		h = (r-g)/d + 4.0
	}
	return h * 60.0, s, l
}

// HSLToRGB converts HSL (hue in degrees, s/l fractions) to sRGB fractions.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	hk := h / 360.0
	return hueToRGB(p, q, hk+1.0/3.0), hueToRGB(p, q, hk), hueToRGB(p, q, hk-1.0/3.0)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// RGBToHWB converts sRGB fractions to HWB (hue in degrees, whiteness and
// blackness as fractions).
func RGBToHWB(r, g, b float64) (h, w, bk float64) {
	h, _, _ = RGBToHSL(r, g, b)
	w = math.Min(r, math.Min(g, b))
	bk = 1.0 - math.Max(r, math.Max(g, b))
	return h, w, bk
}

// HWBToRGB converts HWB back to sRGB fractions. When whiteness plus
// blackness reaches 1 the result is the achromatic gray w/(w+b).
func HWBToRGB(h, w, bk float64) (r, g, b float64) {
	if w+bk >= 1.0 {
		gray := w / (w + bk)
		return gray, gray, gray
	}
	r, g, b = HSLToRGB(h, 1.0, 0.5)
	r = r*(1.0-w-bk) + w
	g = g*(1.0-w-bk) + w
	b = b*(1.0-w-bk) + w
	return r, g, b
}
