package csspectrum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ganemedelabs/csspectrum/internal/colormath"
)

// innerBody returns the text between a function token's parentheses.
func innerBody(s string) string {
	open := strings.Index(s, "(")
	close := strings.LastIndex(s, ")")
	if open < 0 || close < open {
		return ""
	}
	return s[open+1 : close]
}

// splitFields tokenizes a function body, treating commas and the alpha slash
// as plain separators. The coarse pattern has already validated the syntax,
// so the separator flavor no longer matters here.
func splitFields(body string) []string {
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body)
	return strings.Fields(body)
}

func parseNum(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", tok)
	}
	return v, nil
}

// parseNumOrPct parses a number, or a percentage scaled so that 100% maps to
// ref.
func parseNumOrPct(tok string, ref float64) (float64, error) {
	if strings.HasSuffix(tok, "%") {
		v, err := parseNum(strings.TrimSuffix(tok, "%"))
		if err != nil {
			return 0, err
		}
		return v * ref / 100.0, nil
	}
	return parseNum(tok)
}

// parseHueTok parses a hue literal with an optional angle unit, normalized
// to degrees.
func parseHueTok(tok string) (float64, error) {
	switch {
	case strings.HasSuffix(tok, "deg"):
		return parseNum(strings.TrimSuffix(tok, "deg"))
	case strings.HasSuffix(tok, "grad"):
		v, err := parseNum(strings.TrimSuffix(tok, "grad"))
		return v * 0.9, err
	case strings.HasSuffix(tok, "rad"):
		v, err := parseNum(strings.TrimSuffix(tok, "rad"))
		return v * 180.0 / math.Pi, err
	case strings.HasSuffix(tok, "turn"):
		v, err := parseNum(strings.TrimSuffix(tok, "turn"))
		return v * 360.0, err
	}
	return parseNum(tok)
}

func parseAlphaTok(tok string) (float64, error) {
	return parseNumOrPct(tok, 1)
}

func decimalsForStep(step float64) int {
	if step <= 0 || step >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(step) - 1e-9))
}

// formatNumber renders v with precision decimals (or decimals derived from
// step when precision <= 0), trimming trailing zeros.
func formatNumber(v float64, step float64, precision int) string {
	if v == 0 {
		v = 0 // normalize -0
	}
	dec := precision
	if dec <= 0 {
		dec = decimalsForStep(step)
	}
	s := strconv.FormatFloat(v, 'f', dec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

const alphaStep = 0.001

// hasAlpha reports whether a cleaned value array carries a non-opaque alpha
// worth serializing.
func hasAlpha(vals []float64) bool {
	return vals[len(vals)-1] != 1
}

func formatAlpha(vals []float64, opts Options) string {
	return formatNumber(vals[len(vals)-1], alphaStep, opts.Precision)
}

// funcString assembles "name(a b c)" or "name(a b c / alpha)".
func funcString(name string, parts []string, vals []float64, opts Options) string {
	body := strings.Join(parts, " ")
	if hasAlpha(vals) {
		body += " / " + formatAlpha(vals, opts)
	}
	return name + "(" + body + ")"
}

func expectFields(body string, want int) ([]string, error) {
	f := splitFields(body)
	if len(f) != want && len(f) != want+1 {
		return nil, fmt.Errorf("expected %d or %d components, got %d", want, want+1, len(f))
	}
	return f, nil
}

// ---- rgb ----

func rgbConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternRGB,
		Components: map[string]Component{
			"r": {Index: 0, Min: 0, Max: 255, Step: 1},
			"g": {Index: 1, Min: 0, Max: 255, Step: 1},
			"b": {Index: 2, Min: 0, Max: 255, Step: 1},
		},
		Parse: func(s string) ([]float64, error) {
			f, err := expectFields(innerBody(s), 3)
			if err != nil {
				return nil, err
			}
			out := make([]float64, 4)
			out[3] = 1
			for i := 0; i < 3; i++ {
				if out[i], err = parseNumOrPct(f[i], 255); err != nil {
					return nil, err
				}
			}
			if len(f) == 4 {
				if out[3], err = parseAlphaTok(f[3]); err != nil {
					return nil, err
				}
			}
			return out, nil
		},
		Serialize: func(vals []float64, opts Options) string {
			r := formatNumber(vals[0], 1, opts.Precision)
			g := formatNumber(vals[1], 1, opts.Precision)
			b := formatNumber(vals[2], 1, opts.Precision)
			if opts.Modern {
				return funcString("rgb", []string{r, g, b}, vals, opts)
			}
			if hasAlpha(vals) {
				return fmt.Sprintf("rgba(%s, %s, %s, %s)", r, g, b, formatAlpha(vals, opts))
			}
			return fmt.Sprintf("rgb(%s, %s, %s)", r, g, b)
		},
		ToXYZ: func(vals []float64) XYZ {
			r := colormath.SRGBToLinear(vals[0] / 255.0)
			g := colormath.SRGBToLinear(vals[1] / 255.0)
			b := colormath.SRGBToLinear(vals[2] / 255.0)
			x, y, z := colormath.SRGBToXYZ.MulVec(r, g, b)
			return XYZ{x, y, z, vals[3]}
		},
		FromXYZ: func(c XYZ) []float64 {
			r, g, b := colormath.XYZToSRGB.MulVec(c.X, c.Y, c.Z)
			return []float64{
				colormath.LinearToSRGB(r) * 255.0,
				colormath.LinearToSRGB(g) * 255.0,
				colormath.LinearToSRGB(b) * 255.0,
				c.Alpha,
			}
		},
	}
}

// clamp01 forces a fraction into [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

// gamutRGB derives clamped gamma sRGB fractions from the interchange value;
// the cylindrical formats are defined on in-gamut sRGB.
func gamutRGB(c XYZ) (float64, float64, float64) {
	r, g, b := colormath.XYZToSRGB.MulVec(c.X, c.Y, c.Z)
	return clamp01(colormath.LinearToSRGB(r)),
		clamp01(colormath.LinearToSRGB(g)),
		clamp01(colormath.LinearToSRGB(b))
}

func srgbFractionsToXYZ(r, g, b, alpha float64) XYZ {
	x, y, z := colormath.SRGBToXYZ.MulVec(
		colormath.SRGBToLinear(r),
		colormath.SRGBToLinear(g),
		colormath.SRGBToLinear(b))
	return XYZ{x, y, z, alpha}
}

// ---- hsl ----

func hslConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternHSL,
		Components: map[string]Component{
			"h": {Index: 0, Min: 0, Max: 360, Loop: true, Step: 1},
			"s": {Index: 1, Min: 0, Max: 100, Step: 1},
			"l": {Index: 2, Min: 0, Max: 100, Step: 1},
		},
		Parse:     parsePolarPercents(),
		Serialize: serializeHSL,
		ToXYZ: func(vals []float64) XYZ {
			r, g, b := colormath.HSLToRGB(vals[0], vals[1]/100.0, vals[2]/100.0)
			return srgbFractionsToXYZ(r, g, b, vals[3])
		},
		FromXYZ: func(c XYZ) []float64 {
			r, g, b := gamutRGB(c)
			h, s, l := colormath.RGBToHSL(r, g, b)
			return []float64{h, s * 100.0, l * 100.0, c.Alpha}
		},
	}
}

// parsePolarPercents parses bodies of the shape: hue, percent, percent,
// optional alpha. Shared by hsl and hwb.
func parsePolarPercents() func(string) ([]float64, error) {
	return func(s string) ([]float64, error) {
		f, err := expectFields(innerBody(s), 3)
		if err != nil {
			return nil, err
		}
		out := make([]float64, 4)
		out[3] = 1
		if out[0], err = parseHueTok(f[0]); err != nil {
			return nil, err
		}
		for i := 1; i < 3; i++ {
			if out[i], err = parseNumOrPct(f[i], 100); err != nil {
				return nil, err
			}
		}
		if len(f) == 4 {
			if out[3], err = parseAlphaTok(f[3]); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

func serializeHSL(vals []float64, opts Options) string {
	h := formatNumber(vals[0], 1, opts.Precision)
	s := formatNumber(vals[1], 1, opts.Precision) + "%"
	l := formatNumber(vals[2], 1, opts.Precision) + "%"
	if opts.Modern {
		return funcString("hsl", []string{h, s, l}, vals, opts)
	}
	if hasAlpha(vals) {
		return fmt.Sprintf("hsla(%s, %s, %s, %s)", h, s, l, formatAlpha(vals, opts))
	}
	return fmt.Sprintf("hsl(%s, %s, %s)", h, s, l)
}

// ---- hwb ----

func hwbConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternHWB,
		Components: map[string]Component{
			"h": {Index: 0, Min: 0, Max: 360, Loop: true, Step: 1},
			"w": {Index: 1, Min: 0, Max: 100, Step: 1},
			"b": {Index: 2, Min: 0, Max: 100, Step: 1},
		},
		Parse: parsePolarPercents(),
		Serialize: func(vals []float64, opts Options) string {
			return funcString("hwb", []string{
				formatNumber(vals[0], 1, opts.Precision),
				formatNumber(vals[1], 1, opts.Precision) + "%",
				formatNumber(vals[2], 1, opts.Precision) + "%",
			}, vals, opts)
		},
		ToXYZ: func(vals []float64) XYZ {
			r, g, b := colormath.HWBToRGB(vals[0], vals[1]/100.0, vals[2]/100.0)
			return srgbFractionsToXYZ(r, g, b, vals[3])
		},
		FromXYZ: func(c XYZ) []float64 {
			r, g, b := gamutRGB(c)
			h, w, bk := colormath.RGBToHWB(r, g, b)
			return []float64{h, w * 100.0, bk * 100.0, c.Alpha}
		},
	}
}

// ---- lab / lch ----

// The lab()/lch() grammars are defined against the D50 white point; the
// Bradford matrices adapt to and from the D65 interchange.

func labToInterchange(l, a, b, alpha float64) XYZ {
	x, y, z := colormath.LabToXYZ(l, a, b)
	x, y, z = colormath.BradfordD50ToD65.MulVec(x, y, z)
	return XYZ{x, y, z, alpha}
}

func labFromInterchange(c XYZ) (l, a, b float64) {
	x, y, z := colormath.BradfordD65ToD50.MulVec(c.X, c.Y, c.Z)
	return colormath.XYZToLab(x, y, z)
}

func parseTriple(refs [3]float64, hueLast bool) func(string) ([]float64, error) {
	return func(s string) ([]float64, error) {
		f, err := expectFields(innerBody(s), 3)
		if err != nil {
			return nil, err
		}
		out := make([]float64, 4)
		out[3] = 1
		for i := 0; i < 3; i++ {
			if hueLast && i == 2 {
				out[i], err = parseHueTok(f[i])
			} else {
				out[i], err = parseNumOrPct(f[i], refs[i])
			}
			if err != nil {
				return nil, err
			}
		}
		if len(f) == 4 {
			if out[3], err = parseAlphaTok(f[3]); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

func serializeTriple(name string, step float64) func([]float64, Options) string {
	return func(vals []float64, opts Options) string {
		return funcString(name, []string{
			formatNumber(vals[0], step, opts.Precision),
			formatNumber(vals[1], step, opts.Precision),
			formatNumber(vals[2], step, opts.Precision),
		}, vals, opts)
	}
}

func labConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternLab,
		Components: map[string]Component{
			"l": {Index: 0, Min: 0, Max: 100, Step: 0.01},
			"a": {Index: 1, Min: -125, Max: 125, Step: 0.01},
			"b": {Index: 2, Min: -125, Max: 125, Step: 0.01},
		},
		Parse:     parseTriple([3]float64{100, 125, 125}, false),
		Serialize: serializeTriple("lab", 0.01),
		ToXYZ: func(vals []float64) XYZ {
			return labToInterchange(vals[0], vals[1], vals[2], vals[3])
		},
		FromXYZ: func(c XYZ) []float64 {
			l, a, b := labFromInterchange(c)
			return []float64{l, a, b, c.Alpha}
		},
	}
}

func lchConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternLCH,
		Components: map[string]Component{
			"l": {Index: 0, Min: 0, Max: 100, Step: 0.01},
			"c": {Index: 1, Min: 0, Max: 150, Step: 0.01},
			"h": {Index: 2, Min: 0, Max: 360, Loop: true, Step: 0.01},
		},
		Parse:     parseTriple([3]float64{100, 150, 0}, true),
		Serialize: serializeTriple("lch", 0.01),
		ToXYZ: func(vals []float64) XYZ {
			a, b := colormath.PolarToRect(vals[1], vals[2])
			return labToInterchange(vals[0], a, b, vals[3])
		},
		FromXYZ: func(c XYZ) []float64 {
			l, a, b := labFromInterchange(c)
			ch, h := colormath.RectToPolar(a, b)
			return []float64{l, ch, h, c.Alpha}
		},
	}
}

// ---- oklab / oklch ----

func oklabConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternOklab,
		Components: map[string]Component{
			"l": {Index: 0, Min: 0, Max: 1, Step: 0.001},
			"a": {Index: 1, Min: -0.4, Max: 0.4, Step: 0.001},
			"b": {Index: 2, Min: -0.4, Max: 0.4, Step: 0.001},
		},
		Parse:     parseTriple([3]float64{1, 0.4, 0.4}, false),
		Serialize: serializeTriple("oklab", 0.001),
		ToXYZ: func(vals []float64) XYZ {
			x, y, z := colormath.OklabToXYZ(vals[0], vals[1], vals[2])
			return XYZ{x, y, z, vals[3]}
		},
		FromXYZ: func(c XYZ) []float64 {
			l, a, b := colormath.XYZToOklab(c.X, c.Y, c.Z)
			return []float64{l, a, b, c.Alpha}
		},
	}
}

func oklchConverter() *ComponentConverter {
	return &ComponentConverter{
		Pattern: patternOklch,
		Components: map[string]Component{
			"l": {Index: 0, Min: 0, Max: 1, Step: 0.001},
			"c": {Index: 1, Min: 0, Max: 0.4, Step: 0.001},
			"h": {Index: 2, Min: 0, Max: 360, Loop: true, Step: 0.01},
		},
		Parse:     parseTriple([3]float64{1, 0.4, 0}, true),
		Serialize: serializeTriple("oklch", 0.001),
		ToXYZ: func(vals []float64) XYZ {
			a, b := colormath.PolarToRect(vals[1], vals[2])
			x, y, z := colormath.OklabToXYZ(vals[0], a, b)
			return XYZ{x, y, z, vals[3]}
		},
		FromXYZ: func(c XYZ) []float64 {
			l, a, b := colormath.XYZToOklab(c.X, c.Y, c.Z)
			ch, h := colormath.RectToPolar(a, b)
			return []float64{l, ch, h, c.Alpha}
		},
	}
}
