package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel ranges of the HSB model.
const (
	MaxHue     = 360
	MaxChannel = 100
)

// HSB is a hue/saturation/brightness triple. H is in degrees, S and B in
// [0, 100].
type HSB struct {
	H float64 `toml:"h"`
	S float64 `toml:"s"`
	B float64 `toml:"b"`
}

// WrapHue maps any angle in degrees into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	return h
}

// Clamp returns x limited to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Jitter returns c with its hue shifted by dh (wrapped) and s, b replaced by
// the given values clamped to their floors and 100.
func (c HSB) Jitter(dh, s, sFloor, b, bFloor float64) HSB {
	return HSB{
		H: WrapHue(c.H + dh),
		S: Clamp(s, sFloor, MaxChannel),
		B: Clamp(b, bFloor, MaxChannel),
	}
}

// NRGBA converts c to an 8-bit color with the given opacity in [0, 100].
func (c HSB) NRGBA(alpha float64) color.NRGBA {
	col := colorful.Hsv(WrapHue(c.H), Clamp(c.S, 0, MaxChannel)/MaxChannel, Clamp(c.B, 0, MaxChannel)/MaxChannel).Clamped()
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(Clamp(alpha, 0, MaxChannel) * 255 / MaxChannel))}
}

// RGBA implements color.Color for a fully opaque c.
func (c HSB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA(MaxChannel).RGBA()
}

// WithAlpha returns a copy of col with its opacity replaced. alpha is in
// [0, 100].
func WithAlpha(col color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = uint8(math.Round(Clamp(alpha, 0, MaxChannel) * 255 / MaxChannel))
	return n
}
