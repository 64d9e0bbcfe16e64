package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgo takes integer coordinates; everything is drawn in hundredths of a
// pixel inside a scaled group.
const svgPrecision = 100

// SVG writes the drawing as an SVG document. Call Close to finish it.
type SVG struct {
	*Stack
	doc  *svg.SVG
	out  *errWriter
	w, h int
}

// NewSVG starts a w×h SVG document on out.
func NewSVG(out io.Writer, w, h int) *SVG {
	ew := &errWriter{w: out}
	doc := svg.New(ew)
	doc.Start(w, h)
	doc.Scale(1.0 / svgPrecision)
	return &SVG{Stack: NewStack(), doc: doc, out: ew, w: w, h: h}
}

func (s *SVG) Clear(c color.Color) {
	s.doc.Rect(0, 0, s.w*svgPrecision, s.h*svgPrecision, paintStyle("fill", c)+";stroke:none")
}

func (s *SVG) Circle(x, y, d float64) {
	st := s.Current()
	x, y = st.Point(x, y)
	s.doc.Circle(fixed(x), fixed(y), fixed(d/2), shapeStyle(st))
}

func (s *SVG) Line(x1, y1, x2, y2 float64) {
	st := s.Current()
	if !st.Stroked() {
		return
	}
	x1, y1 = st.Point(x1, y1)
	x2, y2 = st.Point(x2, y2)
	s.doc.Line(fixed(x1), fixed(y1), fixed(x2), fixed(y2), shapeStyle(State{Stroke: st.Stroke, Weight: st.Weight}))
}

// Close ends the document and reports the first write error.
func (s *SVG) Close() error {
	s.doc.Gend()
	s.doc.End()
	if s.out.err != nil {
		return fmt.Errorf("write svg: %w", s.out.err)
	}
	return nil
}

func fixed(v float64) int {
	return int(math.Round(v * svgPrecision))
}

func shapeStyle(st State) string {
	style := "fill:none"
	if st.Fill != nil {
		style = paintStyle("fill", st.Fill)
	}
	if st.Stroked() {
		return style + ";" + paintStyle("stroke", st.Stroke) + fmt.Sprintf(";stroke-width:%d", fixed(st.Weight))
	}
	return style + ";stroke:none"
}

// paintStyle renders c as an SVG paint property with its opacity.
func paintStyle(prop string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	style := fmt.Sprintf("%s:rgb(%d,%d,%d)", prop, n.R, n.G, n.B)
	if n.A < 255 {
		style += fmt.Sprintf(";%s-opacity:%.3f", prop, float64(n.A)/255)
	}
	return style
}

// errWriter keeps the first error so svgo's unchecked writes surface on
// Close.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
