package wheel

import "github.com/iburimskiy/dotwheels/internal/rng"

// Hue offsets in degrees, narrowing from core to spokes.
var (
	coreHueJitter  = []float64{-20, -10, 0, 10, 20}
	ringHueJitter  = []float64{-12, -6, 0, 6, 12}
	spokeHueJitter = []float64{-5, 0, 5}
)

// Saturation and brightness floors per layer. The ceiling is always 100.
const (
	coreSatFloor     = 40
	coreBrightFloor  = 50
	ringSatFloor     = 35
	ringBrightFloor  = 40
	spokeSatFloor    = 20
	spokeBrightFloor = 40
)

// coreCluster scatters dots inside 0.35r. The distance is a uniform draw
// scaled by a second one, which crowds dots toward the center.
func (p *painter) coreCluster() {
	rad := p.m.Radius
	rMax := rad * 0.35

	p.r.Push()
	p.r.NoStroke()
	for i := 0; i < p.st.CoreDots; i++ {
		a := p.src.Angle()
		d := p.src.Upto(rMax) * p.src.Range(0.2, 1)
		x, y := polar(d, a)

		dh := rng.Pick(p.src, coreHueJitter)
		s := 70 + p.src.Range(-10, 15)
		b := 95 + p.src.Range(-10, 0)
		size := p.src.Range(rad*0.05, rad*0.11)

		p.r.SetFill(p.tint(dh, s, coreSatFloor, b, coreBrightFloor))
		p.r.Circle(x, y, size)
	}
	p.r.Pop()
}

// ringBands draws concentric bands between 0.55r and 0.95r, each made of
// randomly placed dots whose size grows outward.
func (p *painter) ringBands() {
	rad := p.m.Radius
	bands := p.st.Bands

	p.r.Push()
	p.r.NoStroke()
	for i := 0; i < bands; i++ {
		t := 0.0
		if bands > 1 {
			t = float64(i) / float64(bands-1)
		}
		band := rad * (0.55 + 0.4*t)
		baseSize := lerp(rad*0.04, rad*0.10, t)

		for j := 0; j < p.st.BandDots; j++ {
			a := p.src.Angle()
			d := band + p.src.Range(-rad*0.03, rad*0.03)
			x, y := polar(d, a)

			dh := rng.Pick(p.src, ringHueJitter)
			s := 65 + p.src.Range(-15, 15)
			b := 90 + p.src.Range(-15, 10)
			size := baseSize * p.src.Range(0.75, 1.25)

			p.r.SetFill(p.tint(dh, s, ringSatFloor, b, ringBrightFloor))
			p.r.Circle(x, y, size)
		}
	}
	p.r.Pop()
}

// spokeChains draws evenly spaced spokes as chains of dots from 0.2r to
// 0.9r. Along a spoke the dots shrink, saturation rises and brightness
// falls.
func (p *painter) spokeChains() {
	rad := p.m.Radius
	inner, outer := rad*0.2, rad*0.9
	steps := p.st.SpokeSteps

	p.r.Push()
	p.r.NoStroke()
	for i := 0; i < p.st.SpokeCount; i++ {
		a := radians(float64(i) * 360 / float64(p.st.SpokeCount))
		for k := 0; k <= steps; k++ {
			t := 0.0
			if steps > 0 {
				t = p.st.shape(float64(k) / float64(steps))
			}
			d := lerp(inner, outer, t) + p.src.Range(-rad*0.01, rad*0.01)
			x, y := polar(d, a)

			dh := rng.Pick(p.src, spokeHueJitter)
			s := 30 + t*55 + p.src.Range(-10, 10)
			b := 100 - t*45 + p.src.Range(-5, 5)
			size := lerp(rad*0.09, rad*0.03, t) * p.src.Range(0.85, 1.1)

			p.r.SetFill(p.tint(dh, s, spokeSatFloor, b, spokeBrightFloor))
			p.r.Circle(x, y, size)
		}
	}
	p.r.Pop()
}
