package wheel

import (
	"math"

	"github.com/iburimskiy/dotwheels/internal/rng"
)

// Compact form proportions, as fractions of the wheel radius.
const (
	lineRingStart = 0.35
	lineRingStep  = 0.15
	innerDotRing  = 0.575
	innerDotSize  = 0.07
	outerDotRing  = 0.9
	outerDotSize  = 0.045
	spokeInner    = 0.12
	spokeOuter    = 0.8
	centerOuter   = 0.24
	centerInner   = 0.1
)

var compactHueJitter = []float64{-30, -15, 0, 15, 30}

// compact draws the main disc, outline rings, inner and outer dot rings,
// line spokes and the center dot, back to front.
func (p *painter) compact() {
	rad := p.m.Radius

	p.r.NoStroke()
	main := p.m.Color
	if main == nil {
		main = p.tint(0, 80, 20, 90, 50)
	}
	p.r.SetFill(main)
	p.r.Circle(0, 0, 2*rad)

	if p.st.RingLines {
		p.r.NoFill()
		weight := math.Max(1, rad*0.02)
		for i := 0; i < p.st.LineRings; i++ {
			d := rad * (lineRingStart + lineRingStep*float64(i))
			p.r.SetStroke(p.tint(rng.Pick(p.src, compactHueJitter), 55, 20, 100, 50), weight)
			p.r.Circle(0, 0, 2*d)
		}
		p.r.NoStroke()
	}

	p.dotRing(p.st.InnerDots, rad*innerDotRing, rad*innerDotSize)
	p.dotRing(p.st.OuterDots, rad*outerDotRing, rad*outerDotSize)

	if p.st.Spokes && p.st.SpokeCount > 0 {
		weight := math.Max(1, rad*0.015)
		p.r.SetStroke(p.tint(rng.Pick(p.src, compactHueJitter), 90, 20, 60, 40), weight)
		for i := 0; i < p.st.SpokeCount; i++ {
			a := radians(float64(i) * 360 / float64(p.st.SpokeCount))
			x1, y1 := polar(rad*spokeInner, a)
			x2, y2 := polar(rad*spokeOuter, a)
			p.r.Line(x1, y1, x2, y2)
		}
		p.r.NoStroke()
	}

	if p.st.CenterDot {
		p.r.SetFill(p.tint(180, 70, 20, 95, 50))
		p.r.Circle(0, 0, rad*centerOuter)
		p.r.SetFill(p.tint(0, 100, 20, 40, 40))
		p.r.Circle(0, 0, rad*centerInner)
	}
}

// dotRing places n evenly spaced dots of diameter size at distance d.
func (p *painter) dotRing(n int, d, size float64) {
	if n <= 0 {
		return
	}
	p.r.SetFill(p.tint(rng.Pick(p.src, compactHueJitter), 60, 20, 100, 50))
	for i := 0; i < n; i++ {
		x, y := polar(d, 2*math.Pi*float64(i)/float64(n))
		p.r.Circle(x, y, size)
	}
}
