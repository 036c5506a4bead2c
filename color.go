package csspectrum

import "math"

// Color is the public handle over one interchange value. It is created by a
// parse entry point or by direct component construction, and owns a cached
// display name recomputed whenever the interchange value is replaced.
//
// A Color is independently owned by its caller: component-model operations
// mutate the receiver in place and return a chainable view, while filter
// methods return a fresh Color and leave the receiver untouched.
type Color struct {
	reg  *Registry
	xyz  XYZ
	name string
}

func newColor(reg *Registry, v XYZ) *Color {
	c := &Color{reg: reg}
	c.setXYZ(v)
	return c
}

// setXYZ is the single mutation boundary: it replaces the interchange value
// and recomputes the cached named-color match (first exact table match,
// including alpha) as a pure function of the new value.
func (c *Color) setXYZ(v XYZ) {
	c.xyz = v
	if name, ok := c.reg.named.nameFor(rgbBytes(v)); ok {
		c.name = name
	} else {
		c.name = ""
	}
}

// Interchange returns the underlying interchange-space value.
func (c *Color) Interchange() XYZ { return c.xyz }

// Name returns the cached named-color match, or "" when no table entry
// matches exactly.
func (c *Color) Name() string { return c.name }

// To serializes the color in the given target format or space.
func (c *Color) To(format string, opts ...Options) (string, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return c.reg.serialize(c.xyz, format, o)
}

// Equals reports whether other parses to the same color, compared in the
// interchange space within a small tolerance.
func (c *Color) Equals(other string) (bool, error) {
	oc, err := c.reg.From(other)
	if err != nil {
		return false, err
	}
	const eps = 1e-6
	return math.Abs(c.xyz.X-oc.xyz.X) < eps &&
		math.Abs(c.xyz.Y-oc.xyz.Y) < eps &&
		math.Abs(c.xyz.Z-oc.xyz.Z) < eps &&
		math.Abs(c.xyz.Alpha-oc.xyz.Alpha) < eps, nil
}

// RGBA implements image/color.Color, rendering the gamut-clamped 8-bit sRGB
// value in the standard library's alpha-premultiplied form.
func (c *Color) RGBA() (r, g, b, a uint32) {
	bs := rgbBytes(c.xyz)
	a = uint32(bs[3]) * 0x101
	r = uint32(bs[0]) * 0x101 * a / 0xffff
	g = uint32(bs[1]) * 0x101 * a / 0xffff
	b = uint32(bs[2]) * 0x101 * a / 0xffff
	return r, g, b, a
}
