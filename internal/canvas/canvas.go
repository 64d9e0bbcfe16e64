// Package canvas defines the drawing primitives the wheels are rendered
// with, and adapters that put them on a raster image, an SVG document or a
// recording for inspection.
package canvas

import "image/color"

// Renderer is the primitive drawing surface. Fill and stroke state applies
// to every shape drawn until it is changed or popped.
type Renderer interface {
	// Clear paints the whole surface with c, ignoring the transform.
	Clear(c color.Color)
	// Push saves the fill, stroke and translation state.
	Push()
	// Pop restores the state saved by the matching Push.
	Pop()
	Translate(dx, dy float64)
	SetFill(c color.Color)
	NoFill()
	SetStroke(c color.Color, weight float64)
	NoStroke()
	// Circle draws a circle of diameter d centered on (x, y).
	Circle(x, y, d float64)
	// Line draws a straight stroke. It draws nothing when stroke is off.
	Line(x1, y1, x2, y2 float64)
}

// State is the drawing state Push and Pop save and restore. A nil Fill or
// Stroke disables it.
type State struct {
	Fill   color.Color
	Stroke color.Color
	Weight float64
	DX, DY float64
}

// Stack tracks drawing state for adapters. Embed it to get the state half
// of Renderer.
type Stack struct {
	cur   State
	saved []State
}

// NewStack returns a stack with a white fill and a 1px black stroke.
func NewStack() *Stack {
	return &Stack{cur: State{Fill: color.White, Stroke: color.Black, Weight: 1}}
}

// Current returns the active state.
func (s *Stack) Current() State {
	return s.cur
}

// Depth returns the number of unmatched Push calls.
func (s *Stack) Depth() int {
	return len(s.saved)
}

func (s *Stack) Push() {
	s.saved = append(s.saved, s.cur)
}

// Pop without a matching Push is a no-op.
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(dx, dy float64) {
	s.cur.DX += dx
	s.cur.DY += dy
}

func (s *Stack) SetFill(c color.Color) { s.cur.Fill = c }

func (s *Stack) NoFill() { s.cur.Fill = nil }

func (s *Stack) SetStroke(c color.Color, weight float64) {
	s.cur.Stroke = c
	s.cur.Weight = weight
}

func (s *Stack) NoStroke() { s.cur.Stroke = nil }

// Stroked reports whether shapes get an outline.
func (st State) Stroked() bool {
	return st.Stroke != nil && st.Weight > 0
}

// Point applies the translation to (x, y).
func (st State) Point(x, y float64) (float64, float64) {
	return x + st.DX, y + st.DY
}
