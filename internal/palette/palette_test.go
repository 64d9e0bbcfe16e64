package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/dotwheels/internal/rng"
)

func TestSelectClampsIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"first", 0, 0},
		{"middle", 1, 1},
		{"last", 2, 2},
		{"negative", -5, 0},
		{"past end", 17, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, palettes[tt.want], Select(tt.index))
		})
	}
}

func TestPickBaseFromPalette(t *testing.T) {
	r := rng.New(20251114)
	p := Select(0)
	for i := 0; i < 200; i++ {
		assert.Contains(t, p, PickBase(r, p))
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{365, 5},
		{-15, 345},
		{720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapHue(tt.in), 1e-9, "WrapHue(%v)", tt.in)
	}
}

func TestJitterClampsChannels(t *testing.T) {
	base := HSB{H: 355, S: 85, B: 95}
	tests := []struct {
		name     string
		dh, s, b float64
		wantS    float64
		wantB    float64
		wantH    float64
	}{
		{"in range", 0, 70, 90, 70, 90, 355},
		{"low floors", 10, 5, 10, 40, 50, 5},
		{"high ceilings", -20, 140, 120, 100, 100, 335},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Jitter(tt.dh, tt.s, 40, tt.b, 50)
			assert.InDelta(t, tt.wantH, got.H, 1e-9)
			assert.Equal(t, tt.wantS, got.S)
			assert.Equal(t, tt.wantB, got.B)
		})
	}
}

func TestNRGBA(t *testing.T) {
	tests := []struct {
		name  string
		c     HSB
		alpha float64
		want  color.NRGBA
	}{
		{"red", HSB{0, 100, 100}, 100, color.NRGBA{255, 0, 0, 255}},
		{"green", HSB{120, 100, 100}, 100, color.NRGBA{0, 255, 0, 255}},
		{"white", HSB{220, 0, 100}, 100, color.NRGBA{255, 255, 255, 255}},
		{"black half", HSB{0, 0, 0}, 50, color.NRGBA{0, 0, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.NRGBA(tt.alpha))
		})
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.NRGBA{10, 20, 30, 255}, 0)
	assert.Equal(t, color.NRGBA{10, 20, 30, 0}, got)
}

func TestRandomRGBIsOpaqueAndVaried(t *testing.T) {
	r := rng.New(1)
	seen := map[color.NRGBA]bool{}
	for i := 0; i < 50; i++ {
		c := RandomRGB(r)
		require.Equal(t, uint8(255), c.A)
		seen[c] = true
	}
	assert.Greater(t, len(seen), 40)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("fixed")
	require.NoError(t, err)
	assert.Equal(t, PolicyFixed, p)

	p, err = ParsePolicy("random")
	require.NoError(t, err)
	assert.Equal(t, PolicyRandom, p)

	_, err = ParsePolicy("rainbow")
	assert.Error(t, err)
}
