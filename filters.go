package csspectrum

import (
	"fmt"
	"math"
)

// The filter methods mirror the CSS filter functions, computed with the SVG
// feColorMatrix definitions on gamma-encoded sRGB fractions. Every filter
// returns a fresh Color and leaves the receiver untouched, so a palette can
// be branched from one base color.

func (c *Color) deriveRGB(fn func(r, g, b float64) (float64, float64, float64)) *Color {
	r, g, b := gamutRGB(c.xyz)
	r, g, b = fn(r, g, b)
	return newColor(c.reg, srgbFractionsToXYZ(clamp01(r), clamp01(g), clamp01(b), c.xyz.Alpha))
}

func checkRange(name string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return fmt.Errorf("%w: %s amount %v outside [%v,%v]", ErrInvalidArgument, name, v, min, max)
	}
	return nil
}

// Opacity multiplies the alpha channel by amount in [0,1].
func (c *Color) Opacity(amount float64) (*Color, error) {
	if err := checkRange("opacity", amount, 0, 1); err != nil {
		return nil, err
	}
	out := newColor(c.reg, XYZ{c.xyz.X, c.xyz.Y, c.xyz.Z, c.xyz.Alpha * amount})
	return out, nil
}

// Invert inverts each channel by amount in [0,1]; Invert(1) maps every
// channel to its complement and Invert(0) is the identity.
func (c *Color) Invert(amount float64) (*Color, error) {
	if err := checkRange("invert", amount, 0, 1); err != nil {
		return nil, err
	}
	return c.deriveRGB(func(r, g, b float64) (float64, float64, float64) {
		inv := func(v float64) float64 { return v*(1-amount) + (1-v)*amount }
		return inv(r), inv(g), inv(b)
	}), nil
}

// Grayscale desaturates toward the luma gray by amount in [0,1].
func (c *Color) Grayscale(amount float64) (*Color, error) {
	if err := checkRange("grayscale", amount, 0, 1); err != nil {
		return nil, err
	}
	return c.Saturate(1 - amount)
}

// Sepia applies the sepia tone matrix scaled by amount in [0,1].
func (c *Color) Sepia(amount float64) (*Color, error) {
	if err := checkRange("sepia", amount, 0, 1); err != nil {
		return nil, err
	}
	return c.deriveRGB(func(r, g, b float64) (float64, float64, float64) {
		sr := 0.393*r + 0.769*g + 0.189*b
		sg := 0.349*r + 0.686*g + 0.168*b
		sb := 0.272*r + 0.534*g + 0.131*b
		return r*(1-amount) + sr*amount,
			g*(1-amount) + sg*amount,
			b*(1-amount) + sb*amount
	}), nil
}

// Saturate scales saturation by amount >= 0; 1 is the identity, 0 is full
// desaturation.
func (c *Color) Saturate(amount float64) (*Color, error) {
	if math.IsNaN(amount) || amount < 0 {
		return nil, fmt.Errorf("%w: saturate amount %v must be >= 0", ErrInvalidArgument, amount)
	}
	s := amount
	return c.deriveRGB(func(r, g, b float64) (float64, float64, float64) {
		return (0.213+0.787*s)*r + (0.715-0.715*s)*g + (0.072-0.072*s)*b,
			(0.213-0.213*s)*r + (0.715+0.285*s)*g + (0.072-0.072*s)*b,
			(0.213-0.213*s)*r + (0.715-0.715*s)*g + (0.072+0.928*s)*b
	}), nil
}

// HueRotate rotates the hue by degrees in [-360,360].
func (c *Color) HueRotate(degrees float64) (*Color, error) {
	if err := checkRange("hue-rotate", degrees, -360, 360); err != nil {
		return nil, err
	}
	rad := degrees * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return c.deriveRGB(func(r, g, b float64) (float64, float64, float64) {
		return (0.213+cos*0.787-sin*0.213)*r + (0.715-cos*0.715-sin*0.715)*g + (0.072-cos*0.072+sin*0.928)*b,
			(0.213-cos*0.213+sin*0.143)*r + (0.715+cos*0.285+sin*0.140)*g + (0.072-cos*0.072-sin*0.283)*b,
			(0.213-cos*0.213-sin*0.787)*r + (0.715-cos*0.715+sin*0.715)*g + (0.072+cos*0.928+sin*0.072)*b
	}), nil
}

// Brightness scales each channel by amount >= 0; 1 is the identity.
func (c *Color) Brightness(amount float64) (*Color, error) {
	if math.IsNaN(amount) || amount < 0 {
		return nil, fmt.Errorf("%w: brightness amount %v must be >= 0", ErrInvalidArgument, amount)
	}
	return c.deriveRGB(func(r, g, b float64) (float64, float64, float64) {
		return r * amount, g * amount, b * amount
	}), nil
}

// Contrast scales the distance from mid-gray by amount >= 0; 1 is the
// identity.
func (c *Color) Contrast(amount float64) (*Color, error) {
	if math.IsNaN(amount) || amount < 0 {
		return nil, fmt.Errorf("%w: contrast amount %v must be >= 0", ErrInvalidArgument, amount)
	}
	return c.deriveRGB(func(r, g, b float64) (float64, float64, float64) {
		adj := func(v float64) float64 { return (v-0.5)*amount + 0.5 }
		return adj(r), adj(g), adj(b)
	}), nil
}
