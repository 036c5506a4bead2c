package csspectrum

import "math"

// XYZ is the interchange representation every conversion pivots through:
// CIE 1931 XYZ with a D65 white point, plus alpha. Alpha defaults to 1 and is
// conceptually in [0,1], but it is not clamped on write; clamping happens at
// serialization boundaries so intermediate arithmetic may transiently exceed
// bounds.
type XYZ struct {
	X, Y, Z float64
	Alpha   float64
}

// Component describes one named component of a structured converter: its
// position in the value array, numeric range, whether out-of-range values
// wrap rather than clamp (hue), and the rounding granularity used at
// serialization.
type Component struct {
	Index int
	Min   float64
	Max   float64
	Loop  bool
	Step  float64
}

// Clamp forces v into [Min,Max]. NaN maps to Min so IEEE results from
// calc() arithmetic (0/0, inf-inf) cannot leak into serialized output.
func (c Component) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return c.Min
	}
	return math.Min(c.Max, math.Max(c.Min, v))
}

// finite maps non-finite values onto the nearest bound before they reach
// matrix transforms, where an infinity would turn into NaN for every channel.
func (c Component) finite(v float64) float64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return c.Min
	case math.IsInf(v, 1):
		return c.Max
	}
	return v
}

// Wrap maps v into [Min, Min+range) by modulo arithmetic. Negative inputs
// wrap correctly.
func (c Component) Wrap(v float64) float64 {
	span := c.Max - c.Min
	if span <= 0 {
		return c.Min
	}
	v = math.Mod(v-c.Min, span)
	if v < 0 {
		v += span
	}
	return v + c.Min
}

// Round rounds v to the nearest Step. The value is re-rounded to 10 decimal
// digits both before and after: the leading pass keeps round-trip noise a
// hair under a half-step boundary (127.49999999999997) from rounding the
// wrong way, the trailing pass suppresses noise introduced by the division.
func (c Component) Round(v float64) float64 {
	v = round10(v)
	if c.Step > 0 {
		v = math.Round(v/c.Step) * c.Step
	}
	return round10(v)
}

func round10(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}

// normalize applies the serialization range rule: loop components wrap,
// everything else clamps.
func (c Component) normalize(v float64) float64 {
	if c.Loop {
		return c.Wrap(v)
	}
	return c.Clamp(v)
}
