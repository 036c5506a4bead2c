package csspectrum

import (
	"fmt"
	"regexp"
	"strings"
)

type entry struct {
	name    string
	conv    Converter
	isSpace bool
}

// Registry owns the converter tables, the named-color table, and the
// composite patterns derived from them. A Registry is built once and then
// read concurrently; registration calls mutate it and must be serialized by
// the caller (complete registration before concurrent reads begin).
type Registry struct {
	formats []*entry
	spaces  []*entry
	byName  map[string]*entry
	named   *namedTable

	anySimple  string
	relativeRe *regexp.Regexp
	mixRe      *regexp.Regexp
}

// Default is the process-wide registry used by the package-level entry
// points.
var Default = NewRegistry()

// NewRegistry builds an independent registry with the full built-in format
// and space set. Independent registries let one process host differently
// configured engines (test isolation, embedded hosts).
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]*entry),
		named:  defaultNamedTable(),
	}

	builtins := []struct {
		name string
		conv Converter
	}{
		{"rgb", rgbConverter()},
		{"hsl", hslConverter()},
		{"hwb", hwbConverter()},
		{"lab", labConverter()},
		{"lch", lchConverter()},
		{"oklab", oklabConverter()},
		{"oklch", oklchConverter()},
		{"hex", hexConverter()},
		{"named", newNamedConverter(r.named)},
	}
	for _, b := range builtins {
		if err := r.RegisterFormat(b.name, b.conv); err != nil {
			panic(err)
		}
	}
	for _, s := range builtinSpaces() {
		if err := r.RegisterSpace(s.name, s.spec); err != nil {
			panic(err)
		}
	}
	return r
}

// RegisterFormat inserts or overwrites a format converter. Converters with
// components get a synthetic alpha component appended at the next free
// index. Later registrations of the same name overwrite in place; distinct
// names keep their insertion order for classification. A name already held
// by a space fails with ErrAlreadyRegistered.
func (r *Registry) RegisterFormat(name string, conv Converter) error {
	name = strings.ToLower(name)
	if cc, ok := conv.(*ComponentConverter); ok {
		prepared, err := withAlpha(cc)
		if err != nil {
			return fmt.Errorf("format %q: %w", name, err)
		}
		conv = prepared
	}
	if err := r.insert(name, conv, false); err != nil {
		return err
	}
	r.rebuildPatterns()
	return nil
}

// RegisterSpace runs spec through the device-space factory and inserts the
// resulting converter into the space registry. A name already held by a
// format fails with ErrAlreadyRegistered.
func (r *Registry) RegisterSpace(name string, spec SpaceSpec) error {
	name = strings.ToLower(name)
	conv, err := withAlpha(newSpaceConverter(name, spec))
	if err != nil {
		return fmt.Errorf("space %q: %w", name, err)
	}
	if err := r.insert(name, conv, true); err != nil {
		return err
	}
	r.rebuildPatterns()
	return nil
}

// RegisterNamedColor adds a named color. rgba is a 3- or 4-element
// red/green/blue[/alpha] byte tuple. The name is normalized (lowercased,
// spaces and hyphens stripped); a collision after normalization fails with
// ErrAlreadyRegistered.
func (r *Registry) RegisterNamedColor(name string, rgba []uint8) error {
	var quad [4]uint8
	switch len(rgba) {
	case 3:
		quad = [4]uint8{rgba[0], rgba[1], rgba[2], 0xff}
	case 4:
		quad = [4]uint8{rgba[0], rgba[1], rgba[2], rgba[3]}
	default:
		return fmt.Errorf("%w: rgba must have 3 or 4 elements, got %d", ErrInvalidArgument, len(rgba))
	}
	if err := r.named.register(name, quad); err != nil {
		return err
	}
	if e, ok := r.byName["named"]; ok {
		e.conv.(*OpaqueConverter).Pattern = r.named.pattern()
	}
	r.rebuildPatterns()
	return nil
}

func (r *Registry) insert(name string, conv Converter, isSpace bool) error {
	if e, ok := r.byName[name]; ok {
		// A name lives in exactly one of the two slices. Re-registering
		// under the other kind would leave a stale entry behind, so it
		// is rejected rather than shadowed.
		if e.isSpace != isSpace {
			kind := "format"
			if e.isSpace {
				kind = "space"
			}
			return fmt.Errorf("%w: %q is registered as a %s", ErrAlreadyRegistered, name, kind)
		}
		e.conv = conv
		return nil
	}
	e := &entry{name: name, conv: conv, isSpace: isSpace}
	r.byName[name] = e
	if isSpace {
		r.spaces = append(r.spaces, e)
	} else {
		r.formats = append(r.formats, e)
	}
	return nil
}

// withAlpha validates component metadata (unique, dense indices) and returns
// a copy of the converter with the synthetic alpha definition appended.
func withAlpha(cc *ComponentConverter) (*ComponentConverter, error) {
	out := *cc
	out.Components = make(map[string]Component, len(cc.Components)+1)
	seen := make([]bool, len(cc.Components))
	for name, def := range cc.Components {
		if def.Index < 0 || def.Index >= len(cc.Components) || seen[def.Index] {
			return nil, fmt.Errorf("%w: component %q index %d", ErrMissingComponent, name, def.Index)
		}
		seen[def.Index] = true
		out.Components[strings.ToLower(name)] = def
	}
	if _, ok := out.Components["alpha"]; !ok {
		out.Components["alpha"] = Component{
			Index: len(cc.Components), Min: 0, Max: 1, Step: alphaStep,
		}
	}
	return &out, nil
}

// rebuildPatterns recomposes the any-simple-color alternation and the
// relative-color and color-mix grammars from the current converter set.
func (r *Registry) rebuildPatterns() {
	var simple []string
	var funcNames []string
	for _, e := range r.formats {
		simple = append(simple, "(?:"+stripAnchors(e.conv.patternSource())+")")
		if _, ok := e.conv.(*ComponentConverter); ok {
			funcNames = append(funcNames, e.name)
		}
	}
	for _, e := range r.spaces {
		simple = append(simple, "(?:"+stripAnchors(e.conv.patternSource())+")")
	}
	funcNames = append(funcNames, "color")

	r.anySimple = strings.Join(simple, "|")
	r.relativeRe = buildRelativePattern(funcNames, r.anySimple)
	r.mixRe = buildMixPattern(r.anySimple)
}

// identifiers lists the registered format and space names in registration
// order, for ErrUnsupported messages.
func (r *Registry) identifiers() []string {
	out := make([]string, 0, len(r.formats)+len(r.spaces))
	for _, e := range r.formats {
		out = append(out, e.name)
	}
	for _, e := range r.spaces {
		out = append(out, e.name)
	}
	return out
}

func (r *Registry) unsupported(what string) error {
	return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupported, what,
		strings.Join(r.identifiers(), ", "))
}

func (r *Registry) lookup(name string) (*entry, bool) {
	e, ok := r.byName[strings.ToLower(name)]
	return e, ok
}

// Type classifies a raw string and returns the identifier of the format or
// space it denotes, without constructing a color. Relative-color and
// color-mix strings resolve to their target format and interpolation model
// respectively.
func (r *Registry) Type(s string) (string, error) {
	s = strings.TrimSpace(s)
	if r.relativeRe.MatchString(s) {
		header, err := r.parseRelativeHeader(s)
		if err != nil {
			return "", err
		}
		return header.target, nil
	}
	if r.mixRe.MatchString(s) {
		clause, err := r.splitMixClauses(s)
		if err != nil {
			return "", err
		}
		return clause.model, nil
	}
	for _, e := range r.formats {
		if e.conv.matchString(s) {
			return e.name, nil
		}
	}
	for _, e := range r.spaces {
		if e.conv.matchString(s) {
			return e.name, nil
		}
	}
	return "", r.unsupported(s)
}

// From parses any supported color string into a Color. Relative-color and
// color-mix forms are checked first because their grammars embed the simple
// color grammars.
func (r *Registry) From(s string) (*Color, error) {
	s = strings.TrimSpace(s)
	if r.relativeRe.MatchString(s) {
		return r.parseRelative(s)
	}
	if r.mixRe.MatchString(s) {
		return r.parseColorMix(s)
	}
	for _, e := range append(append([]*entry{}, r.formats...), r.spaces...) {
		if !e.conv.matchString(s) {
			continue
		}
		switch conv := e.conv.(type) {
		case *ComponentConverter:
			vals, err := conv.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
			}
			return newColor(r, conv.ToXYZ(vals)), nil
		case *OpaqueConverter:
			xyz, err := conv.ToXYZ(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
			}
			return newColor(r, xyz), nil
		}
	}
	return nil, r.unsupported(s)
}

// serialize renders an interchange value in the given target format or
// space. Loop components wrap, others clamp, then step rounding applies.
func (r *Registry) serialize(c XYZ, format string, opts Options) (string, error) {
	e, ok := r.lookup(format)
	if !ok {
		return "", r.unsupported(format)
	}
	switch conv := e.conv.(type) {
	case *ComponentConverter:
		vals, err := cleanValues(conv, conv.FromXYZ(c))
		if err != nil {
			return "", err
		}
		return conv.Serialize(vals, opts), nil
	case *OpaqueConverter:
		out, err := conv.FromXYZ(c)
		if err != nil {
			return "", err
		}
		return out, nil
	}
	return "", r.unsupported(format)
}

// cleanValues applies the serialization boundary rules to a raw derived
// array.
func cleanValues(conv *ComponentConverter, vals []float64) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		def, ok := conv.componentAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: array position %d", ErrMissingComponent, i)
		}
		out[i] = def.Round(def.normalize(v))
	}
	return out, nil
}
