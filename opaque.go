package csspectrum

import (
	"fmt"
	"math"
	"strconv"
)

// rgbBytes reduces an interchange value to clamped 8-bit sRGB plus an alpha
// byte, the resolution at which hex and named colors are defined.
func rgbBytes(c XYZ) [4]uint8 {
	r, g, b := gamutRGB(c)
	alpha := clamp01(c.Alpha)
	return [4]uint8{
		uint8(math.Round(r * 255.0)),
		uint8(math.Round(g * 255.0)),
		uint8(math.Round(b * 255.0)),
		uint8(math.Round(alpha * 255.0)),
	}
}

func hexConverter() *OpaqueConverter {
	return &OpaqueConverter{
		Pattern: patternHex,
		Model:   "rgb",
		ToXYZ: func(s string) (XYZ, error) {
			digits := s[1:]
			var r, g, b, a uint64
			a = 0xff
			var err error
			expand := func(d byte) uint64 {
				v, _ := strconv.ParseUint(string([]byte{d, d}), 16, 8)
				return v
			}
			switch len(digits) {
			case 3, 4:
				r, g, b = expand(digits[0]), expand(digits[1]), expand(digits[2])
				if len(digits) == 4 {
					a = expand(digits[3])
				}
			case 6, 8:
				r, err = strconv.ParseUint(digits[0:2], 16, 8)
				if err == nil {
					g, err = strconv.ParseUint(digits[2:4], 16, 8)
				}
				if err == nil {
					b, err = strconv.ParseUint(digits[4:6], 16, 8)
				}
				if err == nil && len(digits) == 8 {
					a, err = strconv.ParseUint(digits[6:8], 16, 8)
				}
				if err != nil {
					return XYZ{}, fmt.Errorf("bad hex digits %q", digits)
				}
			default:
				return XYZ{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits, got %d", len(digits))
			}
			return srgbFractionsToXYZ(
				float64(r)/255.0,
				float64(g)/255.0,
				float64(b)/255.0,
				float64(a)/255.0), nil
		},
		FromXYZ: func(c XYZ) (string, error) {
			b := rgbBytes(c)
			if b[3] != 0xff {
				return fmt.Sprintf("#%02x%02x%02x%02x", b[0], b[1], b[2], b[3]), nil
			}
			return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2]), nil
		},
	}
}

// newNamedConverter builds the named-color converter against one registry's
// table. The pattern is regenerated whenever a name is registered.
func newNamedConverter(table *namedTable) *OpaqueConverter {
	return &OpaqueConverter{
		Pattern: table.pattern(),
		Model:   "rgb",
		Match: func(s string) bool {
			_, ok := table.lookup(s)
			return ok
		},
		ToXYZ: func(s string) (XYZ, error) {
			rgba, ok := table.lookup(s)
			if !ok {
				return XYZ{}, fmt.Errorf("unknown color name %q", s)
			}
			return srgbFractionsToXYZ(
				float64(rgba[0])/255.0,
				float64(rgba[1])/255.0,
				float64(rgba[2])/255.0,
				float64(rgba[3])/255.0), nil
		},
		FromXYZ: func(c XYZ) (string, error) {
			name, ok := table.nameFor(rgbBytes(c))
			if !ok {
				return "", ErrNoNamedMatch
			}
			return name, nil
		},
	}
}
