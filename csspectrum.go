// Package csspectrum parses, converts, and manipulates CSS colors.
//
// Every supported syntax (hex, named colors, the rgb/hsl/hwb/lab/lch/
// oklab/oklch functions, color() spaces, relative colors, and color-mix)
// parses into a single interchange representation, from which a color can
// be serialized back out in any other syntax.
//
// Usage as a library:
//
//	c, _ := csspectrum.From("rgb(255 0 0)")
//	hex, _ := c.To("hex")        // "#ff0000"
//	hsl, _ := c.To("hsl")        // "hsl(0, 100%, 50%)"
//
// Component access goes through a model view:
//
//	m, _ := c.In("hsl")
//	m, _ = m.Set(map[string]float64{"l": 80})
//
// The package-level functions operate on a shared default registry.
// Build a separate Registry with NewRegistry to register custom formats,
// spaces, or named colors in isolation.
package csspectrum

// From parses a color string using the default registry.
func From(input string) (*Color, error) {
	return Default.From(input)
}

// Type returns the format or space identifier that matches the input.
func Type(input string) (string, error) {
	return Default.Type(input)
}

// In returns a zero-value model view in the given format or space.
func In(model string) (*Model, error) {
	return Default.In(model)
}

// Random generates a random color serialized in the given format or space.
func Random(format string) (string, error) {
	return Default.Random(format)
}

// ContrastRatio computes the WCAG contrast ratio between two color strings.
func ContrastRatio(color1, color2 string) (float64, error) {
	return Default.ContrastRatio(color1, color2)
}

// IsAccessiblePair reports whether a foreground and background pair meets
// the given WCAG level ("AA" or "AAA").
func IsAccessiblePair(foreground, background, level string, largeText bool) (bool, error) {
	return Default.IsAccessiblePair(foreground, background, level, largeText)
}

// RegisterNamedColor adds a named color to the default registry.
func RegisterNamedColor(name string, rgba []uint8) error {
	return Default.RegisterNamedColor(name, rgba)
}

// RegisterFormat adds or replaces a color format in the default registry.
func RegisterFormat(name string, conv Converter) error {
	return Default.RegisterFormat(name, conv)
}

// RegisterSpace adds or replaces a color() space in the default registry.
func RegisterSpace(name string, spec SpaceSpec) error {
	return Default.RegisterSpace(name, spec)
}
