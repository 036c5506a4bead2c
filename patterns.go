package csspectrum

import (
	"regexp"
	"strings"
)

// Regular-expression fragments the per-format grammars are assembled from.
// Every converter pattern is anchored; composite patterns (relative color,
// color-mix) splice the de-anchored simple patterns back together.
const (
	reNumber = `[+-]?(?:\d+\.?\d*|\.\d+)`
	reNumPct = reNumber + `%?`
	rePct    = reNumber + `%`
	reHue    = reNumber + `(?:deg|rad|grad|turn)?`
	reIdent  = `[a-zA-Z][a-zA-Z0-9-]*`

	// One component token of relative-color syntax: a bare identifier, a
	// number, a percentage, or a calc() expression (one nesting level of
	// inner parentheses is enough for the supported operator set).
	reRelComp = `(?:` + reNumPct + `|calc\((?:[^()]|\([^()]*\))*\)|[a-zA-Z]+)`
)

var (
	patternHex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3,4})$`)

	patternRGB = regexp.MustCompile(`^rgba?\(\s*(?:` +
		reNumPct + `\s*,\s*` + reNumPct + `\s*,\s*` + reNumPct + `(?:\s*,\s*` + reNumPct + `)?` +
		`|` +
		reNumPct + `\s+` + reNumPct + `\s+` + reNumPct + `(?:\s*/\s*` + reNumPct + `)?` +
		`)\s*\)$`)

	patternHSL = regexp.MustCompile(`^hsla?\(\s*(?:` +
		reHue + `\s*,\s*` + rePct + `\s*,\s*` + rePct + `(?:\s*,\s*` + reNumPct + `)?` +
		`|` +
		reHue + `\s+` + rePct + `\s+` + rePct + `(?:\s*/\s*` + reNumPct + `)?` +
		`)\s*\)$`)

	patternHWB = regexp.MustCompile(`^hwb\(\s*` +
		reHue + `\s+` + rePct + `\s+` + rePct +
		`(?:\s*/\s*` + reNumPct + `)?\s*\)$`)

	patternLab = regexp.MustCompile(`^lab\(\s*` +
		reNumPct + `\s+` + reNumPct + `\s+` + reNumPct +
		`(?:\s*/\s*` + reNumPct + `)?\s*\)$`)

	patternLCH = regexp.MustCompile(`^lch\(\s*` +
		reNumPct + `\s+` + reNumPct + `\s+` + reHue +
		`(?:\s*/\s*` + reNumPct + `)?\s*\)$`)

	patternOklab = regexp.MustCompile(`^oklab\(\s*` +
		reNumPct + `\s+` + reNumPct + `\s+` + reNumPct +
		`(?:\s*/\s*` + reNumPct + `)?\s*\)$`)

	patternOklch = regexp.MustCompile(`^oklch\(\s*` +
		reNumPct + `\s+` + reNumPct + `\s+` + reHue +
		`(?:\s*/\s*` + reNumPct + `)?\s*\)$`)
)

// spacePattern builds the color() grammar anchored to one space name.
func spacePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`^color\(\s*(?i:` + regexp.QuoteMeta(name) + `)` +
		`(?:\s+` + reNumPct + `){3}` +
		`(?:\s*/\s*` + reNumPct + `)?\s*\)$`)
}

// stripAnchors removes the ^/$ anchors from a converter pattern so it can be
// embedded in a composite alternation.
func stripAnchors(p string) string {
	p = strings.TrimPrefix(p, "^")
	return strings.TrimSuffix(p, "$")
}

// buildRelativePattern assembles the relative-color grammar:
//
//	<func>( from <any-simple-color> [<space>] c1 c2 c3 [ / c4 ] )
//
// funcNames are the structured format names plus "color".
func buildRelativePattern(funcNames []string, anySimple string) *regexp.Regexp {
	alts := make([]string, len(funcNames))
	for i, n := range funcNames {
		alts[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`^(?:` + strings.Join(alts, "|") + `)\(\s*from\s+` +
		`(?:` + anySimple + `)` +
		`(?:\s+` + reIdent + `)?` +
		`(?:\s+` + reRelComp + `){3}` +
		`(?:\s*/\s*` + reRelComp + `)?\s*\)$`)
}

// buildMixPattern assembles the color-mix grammar:
//
//	color-mix( in <model> [<hue-method> hue] , <color> [<pct>%] , <color> [<pct>%] )
func buildMixPattern(anySimple string) *regexp.Regexp {
	operand := `(?:` + anySimple + `)(?:\s+` + rePct + `)?`
	return regexp.MustCompile(`^color-mix\(\s*in\s+` + reIdent +
		`(?:\s+(?:shorter|longer|increasing|decreasing)\s+hue)?\s*,\s*` +
		operand + `\s*,\s*` + operand + `\s*\)$`)
}
