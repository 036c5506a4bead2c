package csspectrum

import (
	"strings"

	"github.com/ganemedelabs/csspectrum/internal/colormath"
)

// White-point identifiers accepted by SpaceSpec.
const (
	WhiteD65 = "D65"
	WhiteD50 = "D50"
)

// SpaceSpec describes a linear/gamma RGB-like color space reachable through
// the color() grammar. The factory turns it into a full structured
// converter; spaces with a D50 native white are Bradford-adapted so that
// every space interoperates through the D65 interchange.
type SpaceSpec struct {
	// Components names the three channels in order (e.g. r,g,b or x,y,z).
	Components [3]string

	// ToLinear and FromLinear are the per-channel transfer functions. Nil
	// means the space is already linear.
	ToLinear   func(float64) float64
	FromLinear func(float64) float64

	// ToXYZ and FromXYZ transform linear channel values to and from the
	// space's native-white XYZ.
	ToXYZ   colormath.Matrix3
	FromXYZ colormath.Matrix3

	// WhitePoint is WhiteD65 (default) or WhiteD50.
	WhitePoint string

	// ComponentRange overrides the default [0,1] channel range. The xyz
	// pass-through spaces need headroom above 1 (the D65 white has
	// Z ≈ 1.089).
	ComponentRange [2]float64
}

// newSpaceConverter builds the structured converter for one registered
// space. Component ranges are the normalized fraction range [0,1] with a
// fine step; these are not byte-range spaces.
func newSpaceConverter(name string, spec SpaceSpec) *ComponentConverter {
	toLinear := spec.ToLinear
	if toLinear == nil {
		toLinear = colormath.LinearIdentity
	}
	fromLinear := spec.FromLinear
	if fromLinear == nil {
		fromLinear = colormath.LinearIdentity
	}

	toXYZ, fromXYZ := spec.ToXYZ, spec.FromXYZ
	if spec.WhitePoint == WhiteD50 {
		toXYZ = colormath.BradfordD50ToD65.Mul(toXYZ)
		fromXYZ = fromXYZ.Mul(colormath.BradfordD65ToD50)
	}

	min, max := spec.ComponentRange[0], spec.ComponentRange[1]
	if min == 0 && max == 0 {
		max = 1
	}
	comps := make(map[string]Component, 3)
	for i, compName := range spec.Components {
		comps[strings.ToLower(compName)] = Component{Index: i, Min: min, Max: max, Step: 1e-7}
	}

	return &ComponentConverter{
		Pattern:    spacePattern(name),
		Components: comps,
		Parse: func(s string) ([]float64, error) {
			fields, err := expectFields(innerBody(s), 4)
			if err != nil {
				return nil, err
			}
			// fields[0] is the space name.
			out := make([]float64, 4)
			out[3] = 1
			for i := 0; i < 3; i++ {
				if out[i], err = parseNumOrPct(fields[i+1], 1); err != nil {
					return nil, err
				}
			}
			if len(fields) == 5 {
				if out[3], err = parseAlphaTok(fields[4]); err != nil {
					return nil, err
				}
			}
			return out, nil
		},
		Serialize: func(vals []float64, opts Options) string {
			parts := []string{
				name,
				formatNumber(vals[0], 1e-7, opts.Precision),
				formatNumber(vals[1], 1e-7, opts.Precision),
				formatNumber(vals[2], 1e-7, opts.Precision),
			}
			return funcString("color", parts, vals, opts)
		},
		ToXYZ: func(vals []float64) XYZ {
			a := toLinear(vals[0])
			b := toLinear(vals[1])
			c := toLinear(vals[2])
			x, y, z := toXYZ.MulVec(a, b, c)
			return XYZ{x, y, z, vals[3]}
		},
		FromXYZ: func(c XYZ) []float64 {
			a, b, d := fromXYZ.MulVec(c.X, c.Y, c.Z)
			return []float64{fromLinear(a), fromLinear(b), fromLinear(d), c.Alpha}
		},
	}
}

// builtinSpaces returns the specs of the CSS predefined spaces in
// registration order.
func builtinSpaces() []struct {
	name string
	spec SpaceSpec
} {
	rgbNames := [3]string{"r", "g", "b"}
	xyzNames := [3]string{"x", "y", "z"}
	return []struct {
		name string
		spec SpaceSpec
	}{
		{"srgb", SpaceSpec{
			Components: rgbNames,
			ToLinear:   colormath.SRGBToLinear, FromLinear: colormath.LinearToSRGB,
			ToXYZ: colormath.SRGBToXYZ, FromXYZ: colormath.XYZToSRGB,
		}},
		{"srgb-linear", SpaceSpec{
			Components: rgbNames,
			ToXYZ:      colormath.SRGBToXYZ, FromXYZ: colormath.XYZToSRGB,
		}},
		{"display-p3", SpaceSpec{
			Components: rgbNames,
			ToLinear:   colormath.SRGBToLinear, FromLinear: colormath.LinearToSRGB,
			ToXYZ: colormath.P3ToXYZ, FromXYZ: colormath.XYZToP3,
		}},
		{"a98-rgb", SpaceSpec{
			Components: rgbNames,
			ToLinear:   colormath.A98ToLinear, FromLinear: colormath.A98FromLinear,
			ToXYZ: colormath.A98ToXYZ, FromXYZ: colormath.XYZToA98,
		}},
		{"prophoto-rgb", SpaceSpec{
			Components: rgbNames,
			ToLinear:   colormath.ProPhotoToLinear, FromLinear: colormath.ProPhotoFromLinear,
			ToXYZ: colormath.ProPhotoToXYZ, FromXYZ: colormath.XYZToProPhoto,
			WhitePoint: WhiteD50,
		}},
		{"rec2020", SpaceSpec{
			Components: rgbNames,
			ToLinear:   colormath.Rec2020ToLinear, FromLinear: colormath.Rec2020FromLinear,
			ToXYZ: colormath.Rec2020ToXYZ, FromXYZ: colormath.XYZToRec2020,
		}},
		{"xyz-d65", SpaceSpec{
			Components: xyzNames,
			ToXYZ:      colormath.Identity, FromXYZ: colormath.Identity,
			ComponentRange: [2]float64{0, 2},
		}},
		{"xyz-d50", SpaceSpec{
			Components: xyzNames,
			ToXYZ:      colormath.Identity, FromXYZ: colormath.Identity,
			WhitePoint:     WhiteD50,
			ComponentRange: [2]float64{0, 2},
		}},
		{"xyz", SpaceSpec{
			Components: xyzNames,
			ToXYZ:      colormath.Identity, FromXYZ: colormath.Identity,
			ComponentRange: [2]float64{0, 2},
		}},
	}
}
