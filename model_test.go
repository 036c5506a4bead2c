package csspectrum

import (
	"errors"
	"math"
	"testing"
)

func TestGet(t *testing.T) {
	m, err := mustFrom(t, "hsl(120, 50%, 60%)").In("hsl")
	if err != nil {
		t.Fatal(err)
	}
	for comp, want := range map[string]float64{
		"h": 120, "s": 50, "l": 60, "alpha": 1,
	} {
		got, err := m.Get(comp)
		if err != nil {
			t.Fatalf("Get(%q): %v", comp, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Get(%q) = %v, want %v", comp, got, want)
		}
	}
}

func TestGetUnknownComponent(t *testing.T) {
	m, _ := mustFrom(t, "red").In("rgb")
	if _, err := m.Get("q"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestGetAcrossModels(t *testing.T) {
	// A color parsed in one format is readable in any other.
	c := mustFrom(t, "#ff0000")
	m, err := c.In("hsl")
	if err != nil {
		t.Fatal(err)
	}
	h, _ := m.Get("h")
	s, _ := m.Get("s")
	if h != 0 || s != 100 {
		t.Errorf("red in hsl = (%v, %v), want (0, 100)", h, s)
	}
}

func TestOpaqueFormatDelegatesModel(t *testing.T) {
	// hex and named have no components of their own; component access goes
	// through their backing rgb model.
	for _, input := range []string{"#ff0000", "red"} {
		c := mustFrom(t, input)
		m, err := c.In("hex")
		if err != nil {
			t.Fatalf("In(hex) for %q: %v", input, err)
		}
		if r, _ := m.Get("r"); r != 255 {
			t.Errorf("%q: r = %v, want 255", input, r)
		}
	}
}

func TestGetComponents(t *testing.T) {
	m, _ := mustFrom(t, "rgb(10 20 30)").In("rgb")
	got, err := m.GetComponents()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"r": 10, "g": 20, "b": 30, "alpha": 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestSet(t *testing.T) {
	m, _ := mustFrom(t, "rgb(10 20 30)").In("rgb")
	if _, err := m.Set(map[string]float64{"r": 200}); err != nil {
		t.Fatal(err)
	}
	out := mustTo(t, m.Color(), "rgb")
	if out != "rgb(200, 20, 30)" {
		t.Errorf("got %q", out)
	}
}

func TestSetOutOfRangeClampsOnRead(t *testing.T) {
	m, _ := mustFrom(t, "rgb(10 20 30)").In("rgb")
	if _, err := m.Set(map[string]float64{"g": 400}); err != nil {
		t.Fatal(err)
	}
	g, _ := m.Get("g")
	if g != 255 {
		t.Errorf("g = %v, want 255", g)
	}
}

func TestSetNonFinite(t *testing.T) {
	m, _ := mustFrom(t, "rgb(10 20 30)").In("rgb")
	if _, err := m.Set(map[string]float64{"g": math.Inf(1), "b": math.NaN()}); err != nil {
		t.Fatal(err)
	}
	out := mustTo(t, m.Color(), "rgb")
	if out != "rgb(10, 255, 0)" {
		t.Errorf("got %q, want %q", out, "rgb(10, 255, 0)")
	}
}

func TestSetUnknownComponent(t *testing.T) {
	m, _ := mustFrom(t, "red").In("rgb")
	if _, err := m.Set(map[string]float64{"q": 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestSetFunc(t *testing.T) {
	m, _ := mustFrom(t, "hsl(100, 50%, 30%)").In("hsl")
	_, err := m.SetFunc(map[string]func(float64) float64{
		"l": func(l float64) float64 { return l * 2 },
	})
	if err != nil {
		t.Fatal(err)
	}
	l, _ := m.Get("l")
	if l != 60 {
		t.Errorf("l = %v, want 60", l)
	}
}

func TestSetArray(t *testing.T) {
	m, _ := mustFrom(t, "rgba(10, 20, 30, 0.5)").In("rgb")

	// Full array replaces alpha too.
	if _, err := m.SetArray([]float64{1, 2, 3, 1}); err != nil {
		t.Fatal(err)
	}
	out := mustTo(t, m.Color(), "rgb")
	if out != "rgb(1, 2, 3)" {
		t.Errorf("got %q", out)
	}

	// Short array preserves current alpha.
	m2, _ := mustFrom(t, "rgba(10, 20, 30, 0.5)").In("rgb")
	if _, err := m2.SetArray([]float64{255, 0, 0}); err != nil {
		t.Fatal(err)
	}
	out = mustTo(t, m2.Color(), "rgb")
	if out != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("got %q", out)
	}

	// Wrong length errors.
	if _, err := m2.SetArray([]float64{1, 2}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestChaining(t *testing.T) {
	m, _ := mustFrom(t, "hsl(0, 100%, 50%)").In("hsl")
	m, err := m.Set(map[string]float64{"h": 240})
	if err != nil {
		t.Fatal(err)
	}
	out := mustTo(t, m.Color(), "named")
	if out != "blue" {
		t.Errorf("got %q, want blue", out)
	}
}

func TestInZeroColor(t *testing.T) {
	m, err := In("rgb")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.SetArray([]float64{0, 128, 255}); err != nil {
		t.Fatal(err)
	}
	out := mustTo(t, m.Color(), "rgb")
	if out != "rgb(0, 128, 255)" {
		t.Errorf("got %q", out)
	}
}

func TestMixWith(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		other  string
		amount float64
		method []string
		model  string
		want   string
	}{
		{"midpoint shorter", "hsl(0, 100%, 50%)", "hsl(120, 50%, 50%)", 0.5, nil, "hsl", "hsl(60, 75%, 50%)"},
		{"explicit shorter", "hsl(0, 100%, 50%)", "hsl(120, 50%, 50%)", 0.5, []string{"shorter"}, "hsl", "hsl(60, 75%, 50%)"},
		{"longer", "hsl(0, 100%, 50%)", "hsl(120, 50%, 50%)", 0.5, []string{"longer"}, "hsl", "hsl(240, 75%, 50%)"},
		{"increasing", "hsl(0, 100%, 50%)", "hsl(120, 50%, 50%)", 0.5, []string{"increasing"}, "hsl", "hsl(60, 75%, 50%)"},
		{"decreasing", "hsl(0, 100%, 50%)", "hsl(120, 50%, 50%)", 0.5, []string{"decreasing"}, "hsl", "hsl(240, 75%, 50%)"},
		{"shorter crosses zero", "hsl(350, 100%, 50%)", "hsl(10, 100%, 50%)", 0.5, nil, "hsl", "hsl(0, 100%, 50%)"},
		{"amount zero keeps base", "rgb(255 0 0)", "blue", 0, nil, "rgb", "rgb(255, 0, 0)"},
		{"amount one takes other", "rgb(255 0 0)", "blue", 1, nil, "rgb", "rgb(0, 0, 255)"},
		{"srgb midpoint", "color(srgb 1 0 0)", "color(srgb 0 0 1)", 0.5, nil, "srgb", "color(srgb 0.5 0 0.5)"},
		{"longer equal hues stays put", "hsl(100, 100%, 50%)", "hsl(100, 50%, 50%)", 0.5, []string{"longer"}, "hsl", "hsl(100, 75%, 50%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := mustFrom(t, tt.base).In(tt.model)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := m.MixWith(tt.other, tt.amount, tt.method...); err != nil {
				t.Fatal(err)
			}
			got := mustTo(t, m.Color(), tt.model)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMixWithAlpha(t *testing.T) {
	m, _ := mustFrom(t, "rgb(255 0 0 / 0)").In("rgb")
	if _, err := m.MixWith("rgb(255 0 0 / 1)", 0.5); err != nil {
		t.Fatal(err)
	}
	a, _ := m.Get("alpha")
	if a != 0.5 {
		t.Errorf("alpha = %v, want 0.5", a)
	}
}

func TestMixWithErrors(t *testing.T) {
	m, _ := mustFrom(t, "red").In("rgb")
	if _, err := m.MixWith("blue", 1.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("amount out of range: got %v, want ErrInvalidArgument", err)
	}
	if _, err := m.MixWith("blue", -0.1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative amount: got %v, want ErrInvalidArgument", err)
	}
	if _, err := m.MixWith("nonsense", 0.5); !errors.Is(err, ErrUnsupported) {
		t.Errorf("bad other: got %v, want ErrUnsupported", err)
	}
	hm, _ := mustFrom(t, "red").In("hsl")
	if _, err := hm.MixWith("blue", 0.5, "sideways"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad hue method: got %v, want ErrInvalidArgument", err)
	}
}

func TestInUnknownModel(t *testing.T) {
	if _, err := mustFrom(t, "red").In("nonsense"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
	if _, err := In("nonsense"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}
