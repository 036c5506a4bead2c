package csspectrum

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Hue interpolation methods accepted by MixWith and the color-mix grammar.
const (
	hueShorter    = "shorter"
	hueLonger     = "longer"
	hueIncreasing = "increasing"
	hueDecreasing = "decreasing"
)

// mixAngle interpolates between two angular values in [0,span) under the
// given method and normalizes the result back into [0,span).
func mixAngle(a, b, t, span float64, method string) (float64, error) {
	half := span / 2

	// Signed delta along the shorter path, in (-half, half].
	shortDelta := math.Mod(b-a, span)
	if shortDelta > half {
		shortDelta -= span
	} else if shortDelta <= -half {
		shortDelta += span
	}
	// Conversion round-trip noise on equal hues must not flip the
	// long-way branch.
	if math.Abs(shortDelta) < 1e-9 {
		shortDelta = 0
	}

	var v float64
	switch method {
	case hueShorter:
		v = a + shortDelta*t
	case hueLonger:
		d := shortDelta
		if d > 0 {
			d -= span
		} else if d < 0 {
			d += span
		}
		v = a + d*t
	case hueIncreasing:
		if b < a {
			b += span
		}
		v = a*(1-t) + b*t
	case hueDecreasing:
		if b > a {
			b -= span
		}
		v = a*(1-t) + b*t
	default:
		return 0, fmt.Errorf("%w: unknown hue interpolation method %q", ErrInvalidArgument, method)
	}

	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v, nil
}

type mixClauses struct {
	model     string
	hueMethod string
	colors    [2]string
	weights   [2]float64
	hasWeight [2]bool
}

// splitTopLevel splits s on sep runes that sit outside any parentheses.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(string(r))
			}
		}
	}
	return append(parts, s[start:])
}

// splitMixClauses decomposes a coarse-matched color-mix string into its mode
// clause and two operands.
func (r *Registry) splitMixClauses(s string) (*mixClauses, error) {
	parts := splitTopLevel(innerBody(s), ',')
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: color-mix needs two comma-separated colors, got %d clauses", ErrInvalidFormat, len(parts))
	}

	out := &mixClauses{hueMethod: hueShorter}

	mode := strings.Fields(parts[0])
	switch {
	case len(mode) == 2 && mode[0] == "in":
	case len(mode) == 4 && mode[0] == "in" && mode[3] == "hue":
		out.hueMethod = mode[2]
	default:
		return nil, fmt.Errorf("%w: bad color-mix mode clause %q", ErrInvalidFormat, parts[0])
	}
	out.model = strings.ToLower(mode[1])
	if _, err := r.resolveModel(out.model); err != nil {
		return nil, fmt.Errorf("%w: color-mix model %q is not registered", ErrInvalidFormat, out.model)
	}

	for i := 0; i < 2; i++ {
		color, weight, ok, err := splitOperand(parts[i+1])
		if err != nil {
			return nil, err
		}
		out.colors[i] = color
		out.weights[i] = weight
		out.hasWeight[i] = ok
	}
	return out, nil
}

// splitOperand separates "<color> [<weight>%]"; the weight trails the color.
func splitOperand(s string) (color string, weight float64, ok bool, err error) {
	tokens := tokenizeTopLevel(strings.TrimSpace(s))
	if len(tokens) == 0 {
		return "", 0, false, fmt.Errorf("%w: empty color-mix operand", ErrInvalidFormat)
	}
	last := tokens[len(tokens)-1]
	if strings.HasSuffix(last, "%") && len(tokens) > 1 {
		pct, perr := parseNum(strings.TrimSuffix(last, "%"))
		if perr != nil {
			return "", 0, false, fmt.Errorf("%w: bad weight %q", ErrInvalidFormat, last)
		}
		return strings.Join(tokens[:len(tokens)-1], " "), pct / 100.0, true, nil
	}
	return strings.Join(tokens, " "), 0, false, nil
}

// parseColorMix evaluates a coarse-matched color-mix string: normalize the
// weights, then blend through the component model.
func (r *Registry) parseColorMix(s string) (*Color, error) {
	clauses, err := r.splitMixClauses(s)
	if err != nil {
		return nil, err
	}

	w1, w2 := clauses.weights[0], clauses.weights[1]
	switch {
	case !clauses.hasWeight[0] && !clauses.hasWeight[1]:
		w1, w2 = 0.5, 0.5
	case clauses.hasWeight[0] && !clauses.hasWeight[1]:
		w2 = 1 - w1
	case !clauses.hasWeight[0] && clauses.hasWeight[1]:
		w1 = 1 - w2
	default:
		// Both given: scale down proportionally when they overshoot, but
		// never scale up; under-specified mixes stay under-represented.
		if sum := w1 + w2; sum > 1 {
			w1, w2 = w1/sum, w2/sum
		}
	}
	if w1+w2 <= 0 {
		return nil, fmt.Errorf("%w: color-mix weights sum to zero", ErrInvalidFormat)
	}
	t := w2 / (w1 + w2)

	base, err := r.From(clauses.colors[0])
	if err != nil {
		return nil, fmt.Errorf("%w: color-mix operand: %v", ErrInvalidFormat, err)
	}
	view, err := base.In(clauses.model)
	if err != nil {
		return nil, err
	}
	if _, err := view.MixWith(clauses.colors[1], t, clauses.hueMethod); err != nil {
		if errors.Is(err, ErrUnsupported) {
			return nil, fmt.Errorf("%w: color-mix operand: %v", ErrInvalidFormat, err)
		}
		return nil, err
	}
	return view.Color(), nil
}
