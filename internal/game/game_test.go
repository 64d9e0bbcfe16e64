package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/dotwheels/internal/config"
	"github.com/iburimskiy/dotwheels/internal/scene"
)

func newTestGame(w, h float64) *game {
	s := scene.New(config.Group(), nil)
	s.Initialize(w, h, config.DefaultSeed)
	return NewGame(s, nil)
}

func TestLayoutKeepsSceneWhenSizeUnchanged(t *testing.T) {
	g := newTestGame(800, 600)
	before := g.scene.Motifs()
	g.dirty = false

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.False(t, g.dirty)
	assert.Equal(t, before, g.scene.Motifs())
}

func TestLayoutRegeneratesOnResize(t *testing.T) {
	g := newTestGame(800, 600)
	g.dirty = false

	g.Layout(1024, 768)
	assert.True(t, g.dirty)
	sw, sh := g.scene.Size()
	assert.Equal(t, 1024.0, sw)
	assert.Equal(t, 768.0, sh)

	fresh := scene.New(config.Group(), nil)
	fresh.Initialize(1024, 768, config.DefaultSeed)
	assert.Equal(t, fresh.Motifs(), g.scene.Motifs(), "resize equals a fresh start at the new size")
}

func TestLayoutMinimizedWindow(t *testing.T) {
	g := newTestGame(800, 600)
	w, h := g.Layout(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Empty(t, filterPositive(g))
}

func filterPositive(g *game) []float64 {
	var out []float64
	for _, m := range g.scene.Motifs() {
		if m.Radius > 0 {
			out = append(out, m.Radius)
		}
	}
	return out
}

func TestUpdateIsNoop(t *testing.T) {
	g := newTestGame(800, 600)
	assert.NoError(t, g.Update())
}

func TestScreenRendererSkipsUnstrokedLine(t *testing.T) {
	r := newScreenRenderer(nil)
	r.NoStroke()
	r.Line(0, 0, 10, 10) // no image needed when nothing is drawn
	r.NoFill()
	r.Circle(5, 5, 4)
	assert.False(t, r.Current().Stroked())
	r.SetFill(color.White)
	assert.Equal(t, color.White, r.Current().Fill)
}

func TestConversions(t *testing.T) {
	assert.Equal(t, float32(2.5), f32(2.5))
	assert.Equal(t, float32(3), radius(6))
}
