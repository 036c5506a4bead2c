package csspectrum

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestRegisterNamedColor(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterNamedColor("Test Color", []uint8{10, 20, 30}); err != nil {
		t.Fatal(err)
	}

	// The name is normalized and parses case-insensitively.
	for _, input := range []string{"testcolor", "TestColor", "test color", "test-color"} {
		c, err := r.From(input)
		if err != nil {
			t.Fatalf("From(%q): %v", input, err)
		}
		out, err := c.To("rgb")
		if err != nil {
			t.Fatal(err)
		}
		if out != "rgb(10, 20, 30)" {
			t.Errorf("From(%q) = %q", input, out)
		}
	}

	// The new name becomes an exact-match display name.
	c, _ := r.From("rgb(10 20 30)")
	if c.Name() != "testcolor" {
		t.Errorf("Name() = %q, want testcolor", c.Name())
	}

	// Classification picks it up too, separator variants included.
	for _, input := range []string{"testcolor", "test color", "test-color"} {
		kind, err := r.Type(input)
		if err != nil || kind != "named" {
			t.Errorf("Type(%q) = %q, %v", input, kind, err)
		}
	}
}

func TestRegisterNamedColorDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterNamedColor("red", []uint8{1, 2, 3}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("got %v, want ErrAlreadyRegistered", err)
	}
	// Normalized collision with an existing name.
	if err := r.RegisterNamedColor("Rebecca Purple", []uint8{1, 2, 3}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("got %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegisterNamedColorBadArity(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterNamedColor("x", []uint8{1, 2}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestRegisterNamedColorWithAlpha(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterNamedColor("halfred", []uint8{255, 0, 0, 128}); err != nil {
		t.Fatal(err)
	}
	c, err := r.From("halfred")
	if err != nil {
		t.Fatal(err)
	}
	out, _ := c.To("hex")
	if out != "#ff000080" {
		t.Errorf("got %q", out)
	}
}

func TestRegisterSpace(t *testing.T) {
	r := NewRegistry()
	spec := builtinSpaces()[0].spec // srgb
	if err := r.RegisterSpace("my-srgb", spec); err != nil {
		t.Fatal(err)
	}
	c, err := r.From("color(my-srgb 1 0 0)")
	if err != nil {
		t.Fatal(err)
	}
	out, _ := c.To("hex")
	if out != "#ff0000" {
		t.Errorf("got %q", out)
	}
	kind, _ := r.Type("color(my-srgb 1 0 0)")
	if kind != "my-srgb" {
		t.Errorf("Type = %q", kind)
	}
}

func TestRegisterFormat(t *testing.T) {
	r := NewRegistry()
	// A toy gray(<fraction>) format with a single component.
	conv := &ComponentConverter{
		Pattern: regexp.MustCompile(`^gray\(\s*[+-]?(?:\d+\.?\d*|\.\d+)\s*\)$`),
		Components: map[string]Component{
			"level": {Index: 0, Min: 0, Max: 1, Step: 0.001},
		},
		Parse: func(s string) ([]float64, error) {
			f, err := expectFields(innerBody(s), 1)
			if err != nil {
				return nil, err
			}
			v, err := parseNum(f[0])
			if err != nil {
				return nil, err
			}
			out := []float64{v, 1}
			if len(f) == 2 {
				if out[1], err = parseAlphaTok(f[1]); err != nil {
					return nil, err
				}
			}
			return out, nil
		},
		Serialize: func(vals []float64, opts Options) string {
			return funcString("gray", []string{formatNumber(vals[0], 0.001, opts.Precision)}, vals, opts)
		},
		ToXYZ: func(vals []float64) XYZ {
			return srgbFractionsToXYZ(vals[0], vals[0], vals[0], vals[1])
		},
		FromXYZ: func(c XYZ) []float64 {
			_, g, _ := gamutRGB(c)
			return []float64{g, c.Alpha}
		},
	}
	if err := r.RegisterFormat("gray", conv); err != nil {
		t.Fatal(err)
	}

	c, err := r.From("gray(0.5)")
	if err != nil {
		t.Fatal(err)
	}
	out, _ := c.To("rgb")
	if out != "rgb(128, 128, 128)" {
		t.Errorf("got %q", out)
	}
	out, _ = c.To("gray")
	if out != "gray(0.5)" {
		t.Errorf("round trip: got %q", out)
	}
}

func TestRegisterFormatBadComponents(t *testing.T) {
	r := NewRegistry()
	conv := &ComponentConverter{
		Pattern: regexp.MustCompile(`^x$`),
		Components: map[string]Component{
			"a": {Index: 0}, "b": {Index: 0},
		},
	}
	if err := r.RegisterFormat("x", conv); !errors.Is(err, ErrMissingComponent) {
		t.Errorf("got %v, want ErrMissingComponent", err)
	}
	conv2 := &ComponentConverter{
		Pattern: regexp.MustCompile(`^y$`),
		Components: map[string]Component{
			"a": {Index: 0}, "b": {Index: 5},
		},
	}
	if err := r.RegisterFormat("y", conv2); !errors.Is(err, ErrMissingComponent) {
		t.Errorf("got %v, want ErrMissingComponent", err)
	}
}

func TestRegisterCrossKindCollision(t *testing.T) {
	r := NewRegistry()

	// "rgb" is a format; registering a space under it must not leave a
	// second entry shadowing the first.
	if err := r.RegisterSpace("rgb", builtinSpaces()[0].spec); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("space over format: got %v, want ErrAlreadyRegistered", err)
	}

	// And the converse: "srgb" is a space.
	if err := r.RegisterFormat("srgb", hexConverter()); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("format over space: got %v, want ErrAlreadyRegistered", err)
	}

	// The registry is untouched: no duplicate identifiers, and both names
	// still classify as their original kinds.
	seen := make(map[string]bool)
	for _, id := range r.identifiers() {
		if seen[id] {
			t.Errorf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
	if kind, err := r.Type("rgb(1 2 3)"); err != nil || kind != "rgb" {
		t.Errorf("Type(rgb) = %q, %v", kind, err)
	}
	if kind, err := r.Type("color(srgb 1 0 0)"); err != nil || kind != "srgb" {
		t.Errorf("Type(srgb) = %q, %v", kind, err)
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterNamedColor("isolated", []uint8{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := From("isolated"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("default registry leaked: %v", err)
	}
}

func TestRandom(t *testing.T) {
	r := NewRegistry()
	for _, format := range []string{"rgb", "hsl", "hwb", "lab", "lch", "oklab", "oklch", "hex", "named", "srgb", "display-p3"} {
		t.Run(format, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				s, err := r.Random(format)
				if err != nil {
					t.Fatalf("Random(%q): %v", format, err)
				}
				kind, err := r.Type(s)
				if err != nil {
					t.Fatalf("Random(%q) produced unparseable %q: %v", format, s, err)
				}
				if kind != format {
					t.Fatalf("Random(%q) produced %q classified as %q", format, s, kind)
				}
			}
		})
	}
}

func TestRandomUnsupported(t *testing.T) {
	if _, err := Random("nonsense"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func TestDefaultIdentifiers(t *testing.T) {
	ids := Default.identifiers()
	want := []string{"rgb", "hsl", "hwb", "lab", "lch", "oklab", "oklch", "hex", "named",
		"srgb", "srgb-linear", "display-p3", "a98-rgb", "prophoto-rgb", "rec2020",
		"xyz-d65", "xyz-d50", "xyz"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("identifiers = %v", ids)
	}
}
