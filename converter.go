package csspectrum

import (
	"regexp"
	"sort"
)

// Options control serialization produced by To.
type Options struct {
	// Modern selects the space-separated syntax with "/" alpha
	// ("rgb(255 87 51 / 0.5)") instead of the legacy comma syntax
	// ("rgba(255, 87, 51, 0.5)") for formats that have both.
	Modern bool

	// Precision overrides the number of decimal places. Zero or negative
	// derives the precision from each component's declared Step.
	Precision int
}

// Converter is the closed union of the two converter shapes. Only
// *ComponentConverter and *OpaqueConverter implement it; call sites
// type-switch between the two.
type Converter interface {
	matchString(s string) bool
	patternSource() string
}

// ComponentConverter converts a format with addressable numeric components.
// Value arrays are positional per the Components index order, with alpha
// always last (the alpha definition is appended at registration time).
type ComponentConverter struct {
	Pattern    *regexp.Regexp
	Components map[string]Component

	// Parse converts a matched string to the positional value array.
	Parse func(s string) ([]float64, error)
	// Serialize renders a cleaned (clamped/wrapped, step-rounded) array.
	Serialize func(vals []float64, opts Options) string
	// ToXYZ and FromXYZ transform between value arrays and the interchange
	// space without clamping.
	ToXYZ   func(vals []float64) XYZ
	FromXYZ func(c XYZ) []float64
}

func (c *ComponentConverter) matchString(s string) bool { return c.Pattern.MatchString(s) }
func (c *ComponentConverter) patternSource() string     { return c.Pattern.String() }

// componentAt returns the component definition for an array position.
func (c *ComponentConverter) componentAt(index int) (Component, bool) {
	for _, def := range c.Components {
		if def.Index == index {
			return def, true
		}
	}
	return Component{}, false
}

// names returns the component names in index order.
func (c *ComponentConverter) names() []string {
	out := make([]string, 0, len(c.Components))
	for name := range c.Components {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return c.Components[out[i]].Index < c.Components[out[j]].Index
	})
	return out
}

// OpaqueConverter converts a format with no addressable components (hex,
// named colors): the string maps directly to and from the interchange space.
// Model names the structured format backing component access for colors
// parsed from this format.
type OpaqueConverter struct {
	Pattern *regexp.Regexp
	Model   string

	// Match overrides Pattern for whole-string classification when set.
	// The named format uses it to accept case and separator variants
	// ("Test Color", "test-color") that normalize to a registered name;
	// Pattern still feeds the composite patterns for color-mix and
	// relative syntax, which carry canonical names only.
	Match func(s string) bool

	ToXYZ   func(s string) (XYZ, error)
	FromXYZ func(c XYZ) (string, error)
}

func (c *OpaqueConverter) matchString(s string) bool {
	if c.Match != nil {
		return c.Match(s)
	}
	return c.Pattern.MatchString(s)
}
func (c *OpaqueConverter) patternSource() string     { return c.Pattern.String() }
