// Package palette supplies the base colors of the wheels: fixed HSB
// palettes picked per motif, or unconstrained random RGB per draw call.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/dotwheels/internal/rng"
)

// Palette is an ordered set of base colors.
type Palette []HSB

// High-saturation palettes loosely after Pacita Abad's use of color.
var palettes = []Palette{
	{{355, 85, 95}, {45, 95, 95}, {195, 70, 90}, {115, 70, 90}, {270, 50, 90}},
	{{5, 90, 95}, {35, 95, 95}, {200, 70, 92}, {140, 60, 92}, {290, 55, 90}},
	{{355, 80, 96}, {28, 95, 96}, {210, 55, 95}, {150, 55, 92}, {300, 45, 92}},
}

// Select returns the predefined palette at index, clamped into range.
func Select(index int) Palette {
	if index < 0 {
		index = 0
	}
	if index > len(palettes)-1 {
		index = len(palettes) - 1
	}
	return palettes[index]
}

// PickBase draws one entry of p uniformly.
func PickBase(r *rng.Controller, p Palette) HSB {
	return rng.Pick(r, p)
}

// RandomRGB draws an opaque color with independent uniform channels.
func RandomRGB(r *rng.Controller) color.NRGBA {
	c := colorful.Color{R: r.Float64(), G: r.Float64(), B: r.Float64()}
	cr, cg, cb := c.RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: 255}
}

// Policy selects how motifs get their colors.
type Policy string

const (
	// PolicyFixed picks every motif's base hue from one palette chosen per run.
	PolicyFixed Policy = "fixed"
	// PolicyRandom draws a fresh RGB color for every draw call.
	PolicyRandom Policy = "random"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyFixed, PolicyRandom:
		return p, nil
	default:
		return "", fmt.Errorf("unknown color policy %q", s)
	}
}
