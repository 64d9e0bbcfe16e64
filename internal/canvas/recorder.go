package canvas

import "image/color"

// OpKind identifies a recorded primitive.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive with coordinates already translated.
type Op struct {
	Kind   OpKind
	X, Y   float64
	X2, Y2 float64
	D      float64
	Fill   color.Color
	Stroke color.Color
	Weight float64
}

// Recorder is a Renderer that keeps every primitive instead of drawing it.
type Recorder struct {
	*Stack
	Ops      []Op
	MaxDepth int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Stack: NewStack()}
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Fill: c})
}

func (r *Recorder) Push() {
	r.Stack.Push()
	r.MaxDepth = max(r.MaxDepth, r.Depth())
}

func (r *Recorder) Circle(x, y, d float64) {
	st := r.Current()
	x, y = st.Point(x, y)
	op := Op{Kind: OpCircle, X: x, Y: y, D: d, Fill: st.Fill}
	if st.Stroked() {
		op.Stroke, op.Weight = st.Stroke, st.Weight
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	st := r.Current()
	if !st.Stroked() {
		return
	}
	x1, y1 = st.Point(x1, y1)
	x2, y2 = st.Point(x2, y2)
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: st.Stroke, Weight: st.Weight})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops and state.
func (r *Recorder) Reset() {
	r.Stack = NewStack()
	r.Ops = r.Ops[:0]
	r.MaxDepth = 0
}
