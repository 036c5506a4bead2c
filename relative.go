package csspectrum

import (
	"fmt"
	"strings"

	"github.com/ganemedelabs/csspectrum/internal/expr"
)

// tokenizeTopLevel splits on whitespace outside parentheses, so a function
// token like "rgb(255, 0, 0)" or "calc(h + 100)" stays whole.
func tokenizeTopLevel(s string) []string {
	var tokens []string
	depth := 0
	start := -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// splitSlash further splits tokens on a top-level "/" (the alpha separator
// may be glued to its neighbors). Slashes inside calc() stay put.
func splitSlash(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		depth := 0
		start := 0
		for i, r := range tok {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
			case '/':
				if depth == 0 {
					if i > start {
						out = append(out, tok[start:i])
					}
					out = append(out, "/")
					start = i + 1
				}
			}
		}
		if start < len(tok) {
			out = append(out, tok[start:])
		}
	}
	return out
}

type relativeHeader struct {
	funcName string
	target   string
	base     string
	comps    []string // exactly 3
	alphaTok string   // "" when absent
}

// parseRelativeHeader structurally decomposes a coarse-matched relative
// color string without evaluating components; Type uses it too.
func (r *Registry) parseRelativeHeader(s string) (*relativeHeader, error) {
	funcName := strings.ToLower(strings.TrimSpace(s[:strings.Index(s, "(")]))
	tokens := splitSlash(tokenizeTopLevel(innerBody(s)))
	if len(tokens) < 2 || strings.ToLower(tokens[0]) != "from" {
		return nil, fmt.Errorf("%w: relative color must start with \"from\"", ErrInvalidFormat)
	}

	h := &relativeHeader{funcName: funcName, target: funcName, base: tokens[1]}
	rest := tokens[2:]
	if funcName == "color" {
		if len(rest) == 0 {
			return nil, fmt.Errorf("%w: color() relative form needs a space name", ErrInvalidFormat)
		}
		h.target = strings.ToLower(rest[0])
		rest = rest[1:]
	}
	if _, err := r.resolveModel(h.target); err != nil {
		return nil, fmt.Errorf("%w: relative color target %q is not registered", ErrInvalidFormat, h.target)
	}

	switch {
	case len(rest) == 3:
		h.comps = rest
	case len(rest) == 5 && rest[3] == "/":
		h.comps = rest[:3]
		h.alphaTok = rest[4]
	default:
		return nil, fmt.Errorf("%w: relative color needs 3 components and an optional \"/ alpha\"", ErrInvalidFormat)
	}
	return h, nil
}

// parseRelative evaluates a relative color: parse the base, resolve each
// component token against the base in the target model, and construct the
// result through the component-setter path.
func (r *Registry) parseRelative(s string) (*Color, error) {
	h, err := r.parseRelativeHeader(s)
	if err != nil {
		return nil, err
	}

	base, err := r.From(h.base)
	if err != nil {
		return nil, fmt.Errorf("%w: relative color base: %v", ErrInvalidFormat, err)
	}
	baseView, err := base.In(h.target)
	if err != nil {
		return nil, err
	}
	conv := baseView.conv

	vals := make([]float64, len(conv.Components))
	for i, tok := range h.comps {
		def, ok := conv.componentAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: array position %d", ErrMissingComponent, i)
		}
		if vals[i], err = resolveComponentToken(tok, def, baseView); err != nil {
			return nil, err
		}
	}

	alphaIdx := len(vals) - 1
	if h.alphaTok != "" {
		def, ok := conv.componentAt(alphaIdx)
		if !ok {
			return nil, fmt.Errorf("%w: array position %d", ErrMissingComponent, alphaIdx)
		}
		if vals[alphaIdx], err = resolveComponentToken(h.alphaTok, def, baseView); err != nil {
			return nil, err
		}
	} else {
		vals[alphaIdx] = base.xyz.Alpha
	}

	out, err := r.In(h.target)
	if err != nil {
		return nil, err
	}
	if _, err := out.SetArray(vals); err != nil {
		return nil, err
	}
	return out.Color(), nil
}

// resolveComponentToken applies the four resolution rules in order: bare
// number; percentage mapped into the component's declared range; calc()
// evaluated against the base color's components; bare identifier read from
// the base color.
func resolveComponentToken(tok string, def Component, base *Model) (float64, error) {
	if v, err := parseNum(tok); err == nil {
		return v, nil
	}
	if strings.HasSuffix(tok, "%") {
		p, err := parseNum(strings.TrimSuffix(tok, "%"))
		if err != nil {
			return 0, fmt.Errorf("%w: bad percentage %q", ErrInvalidFormat, tok)
		}
		return def.Min + (def.Max-def.Min)*p/100.0, nil
	}
	if strings.HasPrefix(strings.ToLower(tok), "calc(") {
		v, err := expr.Evaluate(innerBody(tok), func(name string) (float64, error) {
			return base.Get(name)
		})
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, tok, err)
		}
		return v, nil
	}
	v, err := base.Get(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown component reference %q", ErrInvalidFormat, tok)
	}
	return v, nil
}
