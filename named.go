package csspectrum

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

// namedEntry is one row of the named-color table. Declaration order matters:
// serialization to the named format returns the first exact match, which
// makes the earliest-registered synonym the canonical name.
type namedEntry struct {
	name string
	rgba [4]uint8
}

type namedTable struct {
	entries []namedEntry
	index   map[string]int
}

// normalizeName strips spaces and hyphens and lowercases, so "Test Color"
// and "testcolor" collide.
func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, "-", "")
}

// defaultNamedTable seeds the CSS named-color set from the SVG 1.1 table
// shipped in x/image, plus rebeccapurple which CSS added on top of it.
func defaultNamedTable() *namedTable {
	t := &namedTable{index: make(map[string]int, len(colornames.Names)+1)}
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		t.put(name, [4]uint8{c.R, c.G, c.B, c.A})
	}
	t.put("rebeccapurple", [4]uint8{0x66, 0x33, 0x99, 0xff})
	return t
}

func (t *namedTable) put(name string, rgba [4]uint8) {
	key := normalizeName(name)
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, namedEntry{name: key, rgba: rgba})
}

func (t *namedTable) register(name string, rgba [4]uint8) error {
	key := normalizeName(name)
	if _, ok := t.index[key]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, key)
	}
	t.put(name, rgba)
	return nil
}

func (t *namedTable) lookup(name string) ([4]uint8, bool) {
	i, ok := t.index[normalizeName(name)]
	if !ok {
		return [4]uint8{}, false
	}
	return t.entries[i].rgba, true
}

// nameFor scans the table in declaration order and returns the first entry
// matching rgba exactly, including alpha.
func (t *namedTable) nameFor(rgba [4]uint8) (string, bool) {
	for _, e := range t.entries {
		if e.rgba == rgba {
			return e.name, true
		}
	}
	return "", false
}

// pattern builds the anchored alternation matching exactly the registered
// names, case-insensitively.
func (t *namedTable) pattern() *regexp.Regexp {
	alts := make([]string, len(t.entries))
	for i, e := range t.entries {
		alts[i] = regexp.QuoteMeta(e.name)
	}
	return regexp.MustCompile(`^(?i:` + strings.Join(alts, "|") + `)$`)
}
