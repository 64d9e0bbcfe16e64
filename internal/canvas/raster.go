package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Raster draws onto an in-memory RGBA image.
type Raster struct {
	*Stack
	dc *gg.Context
}

// NewRaster returns a transparent w×h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{Stack: NewStack(), dc: gg.NewContext(w, h)}
}

func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) Circle(x, y, d float64) {
	st := r.Current()
	x, y = st.Point(x, y)
	r.dc.DrawCircle(x, y, d/2)
	r.paint(st)
}

func (r *Raster) Line(x1, y1, x2, y2 float64) {
	st := r.Current()
	if !st.Stroked() {
		return
	}
	x1, y1 = st.Point(x1, y1)
	x2, y2 = st.Point(x2, y2)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.SetColor(st.Stroke)
	r.dc.SetLineWidth(st.Weight)
	r.dc.Stroke()
}

// paint fills then strokes the current path.
func (r *Raster) paint(st State) {
	switch {
	case st.Fill != nil && st.Stroked():
		r.dc.SetColor(st.Fill)
		r.dc.FillPreserve()
	case st.Fill != nil:
		r.dc.SetColor(st.Fill)
		r.dc.Fill()
	}
	if st.Stroked() {
		r.dc.SetColor(st.Stroke)
		r.dc.SetLineWidth(st.Weight)
		r.dc.Stroke()
		return
	}
	r.dc.ClearPath()
}

// Image returns the drawn image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to a PNG file.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
