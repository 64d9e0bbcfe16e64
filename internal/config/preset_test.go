package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/dotwheels/internal/palette"
	"github.com/iburimskiy/dotwheels/internal/wheel"
)

func TestBuiltinsAreValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(name)
			require.NoError(t, err)
			assert.NoError(t, p.Validate())
			assert.Equal(t, name, p.Name)
		})
	}
}

func TestGroupPreset(t *testing.T) {
	p := Group()
	assert.Equal(t, LayoutGrid, p.Layout)
	assert.Equal(t, 9, p.Count)
	assert.Equal(t, int64(DefaultSeed), p.Seed)
	assert.Equal(t, palette.PolicyFixed, p.ColorPolicy)
	assert.Equal(t, wheel.FormDots, p.Style.Form)
	assert.False(t, p.Style.Glow)
	assert.Len(t, p.RadiusFactors, 9)
}

func TestCompactPreset(t *testing.T) {
	p := Compact()
	assert.Equal(t, LayoutScatter, p.Layout)
	assert.Equal(t, palette.PolicyRandom, p.ColorPolicy)
	assert.Equal(t, wheel.FormCompact, p.Style.Form)
	assert.True(t, p.Style.Glow)
}

func TestLookupReturnsCopies(t *testing.T) {
	a, err := Lookup("group")
	require.NoError(t, err)
	a.RadiusFactors[0] = 99
	b, err := Lookup("group")
	require.NoError(t, err)
	assert.Equal(t, 0.14, b.RadiusFactors[0])
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("baroque")
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestParseOverridesBase(t *testing.T) {
	data := []byte(`
preset = "group"
name = "evening"
seed = 7
palette = 2

[background]
h = 230
s = 40
b = 20

[style]
glow = true
spoke_easing = "out-quad"
`)
	p, err := Parse(data, "compact")
	require.NoError(t, err)
	assert.Equal(t, "evening", p.Name)
	assert.Equal(t, int64(7), p.Seed)
	assert.Equal(t, 2, p.PaletteIndex)
	assert.Equal(t, palette.HSB{H: 230, S: 40, B: 20}, p.Background)
	assert.True(t, p.Style.Glow)
	assert.Equal(t, "out-quad", p.Style.SpokeEasing)
	// Untouched fields keep the base values.
	assert.Equal(t, LayoutGrid, p.Layout)
	assert.Equal(t, 50, p.Style.CoreDots)
}

func TestParseFallbackBase(t *testing.T) {
	p, err := Parse([]byte(`count = 20`), "compact")
	require.NoError(t, err)
	assert.Equal(t, LayoutScatter, p.Layout)
	assert.Equal(t, 20, p.Count)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `count = `},
		{"unknown key", `colour = "red"`},
		{"unknown base", `preset = "rococo"`},
		{"bad layout", `layout = "spiral"`},
		{"bad grid", `grid_cols = 0`},
		{"bad margin", `margin_ratio = 0.6`},
		{"bad policy", `color_policy = "sepia"`},
		{"bad factor", `radius_factors = [0.1, -0.2]`},
		{"bad form", "[style]\nform = \"hexagon\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "group")
			assert.Error(t, err)
		})
	}
}

func TestValidateScatterSizeRange(t *testing.T) {
	p := Compact()
	p.MinSize, p.MaxSize = 0.5, 0.2
	assert.ErrorIs(t, p.Validate(), ErrInvalidPreset)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheels.toml")
	require.NoError(t, os.WriteFile(path, []byte("preset = \"compact\"\ncount = 5\n"), 0o644))

	p, err := Load(path, "group")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Count)
	assert.Equal(t, "compact", p.Base)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), "group")
	assert.Error(t, err)
}
