package csspectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		delta float64
	}{
		{"black", 0, 1e-9},
		{"white", 1, 1e-9},
		{"red", 0.2126, 1e-4},
		{"lime", 0.7152, 1e-4},
		{"blue", 0.0722, 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lum, err := mustFrom(t, tt.input).Luminance()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, lum, tt.delta)
		})
	}
}

func TestLuminanceCompositesOverBackground(t *testing.T) {
	c := mustFrom(t, "rgba(255, 255, 255, 0.5)")
	lum, err := c.Luminance("black")
	require.NoError(t, err)
	// Half-white over black is 50% gray in gamma space.
	assert.InDelta(t, 0.2140, lum, 1e-3)

	lum, err = c.Luminance("white")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lum, 1e-9)
}

func TestContrastRatio(t *testing.T) {
	ratio, err := ContrastRatio("black", "white")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9)

	// Symmetric in argument order.
	rev, err := ContrastRatio("white", "black")
	require.NoError(t, err)
	assert.Equal(t, ratio, rev)

	same, err := ContrastRatio("red", "red")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-9)

	_, err = ContrastRatio("nonsense", "white")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestIsAccessiblePair(t *testing.T) {
	tests := []struct {
		name      string
		fg, bg    string
		level     string
		largeText bool
		want      bool
	}{
		{"black on white AAA", "black", "white", "AAA", false, true},
		{"gray 767676 passes AA", "#767676", "#ffffff", "AA", false, true},
		{"gray 777 fails AA", "#777777", "#ffffff", "AA", false, false},
		{"gray 777 passes AA large", "#777777", "#ffffff", "AA", true, true},
		{"767676 fails AAA", "#767676", "#ffffff", "AAA", false, false},
		{"white on white", "white", "white", "AA", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAccessiblePair(tt.fg, tt.bg, tt.level, tt.largeText)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsAccessiblePair("black", "white", "AAAA", false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIsLightIsDark(t *testing.T) {
	assert.True(t, mustFrom(t, "white").IsLight())
	assert.True(t, mustFrom(t, "black").IsDark())
	assert.True(t, mustFrom(t, "yellow").IsLight())
	assert.True(t, mustFrom(t, "navy").IsDark())
}

func TestIsCoolIsWarm(t *testing.T) {
	assert.True(t, mustFrom(t, "blue").IsCool())
	assert.True(t, mustFrom(t, "green").IsCool())
	assert.True(t, mustFrom(t, "red").IsWarm())
	assert.True(t, mustFrom(t, "orange").IsWarm())
	// Boundary hues are warm: the interval is exclusive.
	assert.True(t, mustFrom(t, "hsl(60, 100%, 50%)").IsWarm())
	assert.True(t, mustFrom(t, "hsl(300, 100%, 50%)").IsWarm())
	assert.True(t, mustFrom(t, "hsl(61, 100%, 50%)").IsCool())
}

func TestInGamut(t *testing.T) {
	inSRGB, err := mustFrom(t, "red").InGamut("srgb")
	require.NoError(t, err)
	assert.True(t, inSRGB)

	p3Red := mustFrom(t, "color(display-p3 1 0 0)")
	inSRGB, err = p3Red.InGamut("srgb")
	require.NoError(t, err)
	assert.False(t, inSRGB)

	inP3, err := p3Red.InGamut("display-p3")
	require.NoError(t, err)
	assert.True(t, inP3)

	_, err = p3Red.InGamut("nonsense")
	assert.ErrorIs(t, err, ErrUnsupported)
}
