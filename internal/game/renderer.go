package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/dotwheels/internal/canvas"
)

// screenRenderer draws canvas primitives onto an ebiten image with
// antialiased vector paths.
type screenRenderer struct {
	*canvas.Stack
	dst *ebiten.Image
}

func newScreenRenderer(dst *ebiten.Image) *screenRenderer {
	return &screenRenderer{Stack: canvas.NewStack(), dst: dst}
}

func (r *screenRenderer) Clear(c color.Color) {
	r.dst.Fill(c)
}

func (r *screenRenderer) Circle(x, y, d float64) {
	st := r.Current()
	x, y = st.Point(x, y)
	if st.Fill != nil {
		vector.DrawFilledCircle(r.dst, f32(x), f32(y), radius(d), st.Fill, true)
	}
	if st.Stroked() {
		vector.StrokeCircle(r.dst, f32(x), f32(y), radius(d), f32(st.Weight), st.Stroke, true)
	}
}

func (r *screenRenderer) Line(x1, y1, x2, y2 float64) {
	st := r.Current()
	if !st.Stroked() {
		return
	}
	x1, y1 = st.Point(x1, y1)
	x2, y2 = st.Point(x2, y2)
	vector.StrokeLine(r.dst, f32(x1), f32(y1), f32(x2), f32(y2), f32(st.Weight), st.Stroke, true)
}
