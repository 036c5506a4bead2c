package csspectrum

import (
	"fmt"

	"github.com/ganemedelabs/csspectrum/internal/colormath"
)

// Luminance returns the WCAG relative luminance of the gamut-clamped sRGB
// rendering, in [0,1]. When a background color is supplied and the receiver
// is translucent, the receiver is composited over it first (the background
// is treated as opaque).
func (c *Color) Luminance(background ...string) (float64, error) {
	r, g, b := gamutRGB(c.xyz)
	alpha := clamp01(c.xyz.Alpha)
	if len(background) > 0 && alpha < 1 {
		bg, err := c.reg.From(background[0])
		if err != nil {
			return 0, err
		}
		br, bgr, bb := gamutRGB(bg.xyz)
		r = r*alpha + br*(1-alpha)
		g = g*alpha + bgr*(1-alpha)
		b = b*alpha + bb*(1-alpha)
	}
	return 0.2126*colormath.SRGBToLinear(r) +
		0.7152*colormath.SRGBToLinear(g) +
		0.0722*colormath.SRGBToLinear(b), nil
}

// IsLight reports luminance above 0.5.
func (c *Color) IsLight() bool {
	lum, _ := c.Luminance()
	return lum > 0.5
}

// IsDark is the complement of IsLight.
func (c *Color) IsDark() bool { return !c.IsLight() }

// IsCool reports a hue strictly inside (60,300): the green-blue-violet arc.
func (c *Color) IsCool() bool {
	view, err := c.In("hsl")
	if err != nil {
		return false
	}
	h, err := view.Get("h")
	if err != nil {
		return false
	}
	return h > 60 && h < 300
}

// IsWarm is the complement of IsCool, boundaries included.
func (c *Color) IsWarm() bool { return !c.IsCool() }

// InGamut reports whether the color's coordinates in the given space fall
// inside the space's component ranges (within a small tolerance).
func (c *Color) InGamut(space string) (bool, error) {
	conv, err := c.reg.resolveModel(space)
	if err != nil {
		return false, err
	}
	const eps = 1e-6
	vals := conv.FromXYZ(c.xyz)
	for i := 0; i < len(vals)-1; i++ {
		def, ok := conv.componentAt(i)
		if !ok {
			return false, fmt.Errorf("%w: array position %d", ErrMissingComponent, i)
		}
		if def.Loop {
			continue
		}
		if vals[i] < def.Min-eps || vals[i] > def.Max+eps {
			return false, nil
		}
	}
	return true, nil
}

// ContrastRatio computes the WCAG contrast ratio between two colors, in
// [1,21].
func (r *Registry) ContrastRatio(c1, c2 string) (float64, error) {
	a, err := r.From(c1)
	if err != nil {
		return 0, err
	}
	b, err := r.From(c2)
	if err != nil {
		return 0, err
	}
	l1, _ := a.Luminance()
	l2, _ := b.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}

// IsAccessiblePair checks a foreground/background pair against the WCAG
// contrast thresholds: AA needs 4.5 (3.0 for large text), AAA needs 7.0
// (4.5 for large text).
func (r *Registry) IsAccessiblePair(fg, bg, level string, largeText bool) (bool, error) {
	var threshold float64
	switch level {
	case "AA":
		threshold = 4.5
		if largeText {
			threshold = 3.0
		}
	case "AAA":
		threshold = 7.0
		if largeText {
			threshold = 4.5
		}
	default:
		return false, fmt.Errorf("%w: unknown accessibility level %q", ErrInvalidArgument, level)
	}
	ratio, err := r.ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	return ratio >= threshold, nil
}
