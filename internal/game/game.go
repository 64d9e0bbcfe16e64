// Package game hosts a scene in an ebiten window. The scene is rendered
// once per regeneration into an offscreen image that every frame reuses.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/dotwheels/internal/canvas"
	"github.com/iburimskiy/dotwheels/internal/config"
	"github.com/iburimskiy/dotwheels/internal/scene"
)

var _ canvas.Renderer = (*screenRenderer)(nil)

type game struct {
	scene *scene.Scene
	log   *slog.Logger

	// frame size the scene was last built for
	width, height int

	canvas *ebiten.Image
	dirty  bool
}

func NewGame(s *scene.Scene, log *slog.Logger) *game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w, h := s.Size()
	return &game{
		scene:  s,
		log:    log,
		width:  int(w),
		height: int(h),
		dirty:  true,
	}
}

// Update has nothing to advance; the composition is static.
func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	if g.dirty || g.canvas == nil {
		g.render()
	}
	screen.DrawImage(g.canvas, nil)
}

// render runs the single render pass for the current scene.
func (g *game) render() {
	if g.canvas != nil {
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.scene.RenderFrame(newScreenRenderer(g.canvas))
	g.dirty = false
	g.log.Debug("frame rendered", "width", g.width, "height", g.height)
}

// Layout treats a change of the outside size as a resize and regenerates
// the scene for it.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

func (g *game) resize(w, h int) {
	g.width, g.height = w, h
	g.scene.Regenerate(float64(w), float64(h))
	g.dirty = true
	g.log.Info("window resized", "width", w, "height", h)
}

// Run opens a resizable window showing s until it is closed.
func Run(s *scene.Scene, log *slog.Logger) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(s, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
