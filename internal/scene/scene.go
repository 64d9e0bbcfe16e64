// Package scene ties layout, palette and wheel rendering together: it
// builds the ordered set of motifs for a frame and renders them in one pass.
package scene

import (
	"fmt"
	"log/slog"

	"github.com/iburimskiy/dotwheels/internal/canvas"
	"github.com/iburimskiy/dotwheels/internal/config"
	"github.com/iburimskiy/dotwheels/internal/layout"
	"github.com/iburimskiy/dotwheels/internal/palette"
	"github.com/iburimskiy/dotwheels/internal/rng"
	"github.com/iburimskiy/dotwheels/internal/wheel"
)

// Scene owns the motifs of the current frame. Every regeneration replaces
// them entirely.
type Scene struct {
	preset config.Preset
	rng    *rng.Controller
	log    *slog.Logger

	seed          int64
	width, height float64
	rect          layout.Rect
	motifs        []wheel.Motif
	// drawSeed seeds the per-dot jitter of RenderFrame.
	drawSeed int64
}

// New returns an empty scene for preset p. A nil logger discards output.
func New(p config.Preset, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Scene{
		preset: p,
		rng:    rng.New(p.Seed),
		log:    log.With("preset", p.Name),
		seed:   p.Seed,
	}
}

// Initialize sets the seed and builds the scene for a width×height frame.
func (s *Scene) Initialize(width, height float64, seed int64) {
	s.seed = seed
	s.Regenerate(width, height)
}

// Regenerate rebuilds the scene for a new frame size. The same seed and
// size always give the same motifs.
func (s *Scene) Regenerate(width, height float64) {
	p := s.preset
	s.rng.Seed(s.seed)
	s.width, s.height = width, height
	s.rect = layout.ContentRect(width, height, p.MarginRatio)
	unit := s.rect.Unit

	var pts []layout.Placement
	switch p.Layout {
	case config.LayoutScatter:
		pts = layout.Scatter(s.rng, p.Count, s.rect.W, s.rect.H, p.MinSize*unit, p.MaxSize*unit)
		for i := range pts {
			pts[i].X += s.rect.X
			pts[i].Y += s.rect.Y
		}
	default:
		pts = layout.GridCenters(s.rng, p.Count, s.rect, p.GridCols, p.GridRows)
		for i := range pts {
			pts[i].Radius = s.radius(i, unit)
		}
	}

	pal := palette.Select(p.PaletteIndex)
	motifs := make([]wheel.Motif, 0, len(pts))
	for _, pt := range pts {
		if pt.Radius < 0 {
			panic(fmt.Sprintf("scene: negative radius %v", pt.Radius))
		}
		m := wheel.Motif{X: pt.X, Y: pt.Y, Radius: pt.Radius, Policy: p.ColorPolicy}
		switch p.ColorPolicy {
		case palette.PolicyRandom:
			m.Color = palette.RandomRGB(s.rng)
		default:
			m.Hue = palette.PickBase(s.rng, pal).H
		}
		motifs = append(motifs, m)
	}
	s.motifs = motifs
	s.drawSeed = s.rng.Fork().SeedValue()

	s.log.Debug("scene regenerated",
		"seed", s.seed,
		"width", width,
		"height", height,
		"motifs", len(motifs),
	)
}

// radius gives grid motif i its radius: the factor list cycled by index,
// or a random size when the list is empty.
func (s *Scene) radius(i int, unit float64) float64 {
	f := s.preset.RadiusFactors
	if len(f) > 0 {
		return unit * f[i%len(f)]
	}
	return s.rng.Range(s.preset.MinSize, s.preset.MaxSize) * unit / 2
}

// RenderFrame clears r with the background and draws every motif in scene
// order.
func (s *Scene) RenderFrame(r canvas.Renderer) {
	src := rng.New(s.drawSeed)
	if s.preset.Organic {
		src = rng.NewUnseeded()
	}
	r.Clear(s.preset.Background)
	for _, m := range s.motifs {
		wheel.Render(r, src, m, s.preset.Style)
	}
}

// Motifs returns a copy of the current motifs.
func (s *Scene) Motifs() []wheel.Motif {
	out := make([]wheel.Motif, len(s.motifs))
	copy(out, s.motifs)
	return out
}

// Rect returns the content rectangle of the current frame.
func (s *Scene) Rect() layout.Rect {
	return s.rect
}

// Size returns the frame size of the last regeneration.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Seed returns the seed regenerations start from.
func (s *Scene) Seed() int64 {
	return s.seed
}

// Preset returns the scene's configuration.
func (s *Scene) Preset() config.Preset {
	return s.preset
}
