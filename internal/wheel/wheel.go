// Package wheel draws one dot wheel: a circular motif built from a core
// cluster, ring bands and spokes of small dots, or its compact outline form.
package wheel

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/dotwheels/internal/canvas"
	"github.com/iburimskiy/dotwheels/internal/palette"
	"github.com/iburimskiy/dotwheels/internal/rng"
)

// Motif describes one wheel. It is never changed after it is built.
type Motif struct {
	X, Y   float64
	Radius float64
	// Hue is the base hue of the fixed palette policy.
	Hue float64
	// Policy decides whether colors derive from Hue or are random per call.
	Policy palette.Policy
	// Color is the main disc color under the random policy.
	Color color.Color
}

// glowColor is the halo tint; its alpha comes from the style.
var glowColor = palette.HSB{H: 220, S: 30, B: 10}

// noiseScale maps canvas pixels to noise space for the glow.
const noiseScale = 0.01

// Render draws m onto r. Per-dot jitter is drawn from src, so the shape and
// dot counts are fixed by the style while the exact look follows the stream.
// A negative radius is a programming error and panics.
func Render(r canvas.Renderer, src *rng.Controller, m Motif, st Style) {
	if m.Radius < 0 || math.IsNaN(m.Radius) {
		panic(fmt.Sprintf("wheel: invalid radius %v", m.Radius))
	}
	if m.Radius == 0 {
		return
	}

	p := painter{r: r, src: src, m: m, st: st}
	r.Push()
	r.Translate(m.X, m.Y)
	if st.Glow {
		p.glow()
	}
	switch st.Form {
	case FormCompact:
		p.compact()
	default:
		if st.Core {
			p.coreCluster()
		}
		if st.Rings {
			p.ringBands()
		}
		if st.Spokes {
			p.spokeChains()
		}
	}
	r.Pop()
}

// painter carries one Render call. Coordinates are relative to the motif
// center.
type painter struct {
	r   canvas.Renderer
	src *rng.Controller
	m   Motif
	st  Style
}

// tint returns the color of one primitive: the base hue jittered and
// clamped, or a fresh random color under the random policy.
func (p *painter) tint(dh, s, sFloor, b, bFloor float64) color.Color {
	if p.m.Policy == palette.PolicyRandom {
		return palette.RandomRGB(p.src)
	}
	return palette.HSB{H: p.m.Hue}.Jitter(dh, s, sFloor, b, bFloor)
}

func (p *painter) glow() {
	scale := p.st.GlowScale * (1 + 0.05*p.src.Noise2D(p.m.X*noiseScale, p.m.Y*noiseScale))
	p.r.NoStroke()
	p.r.SetFill(glowColor.NRGBA(p.st.GlowAlpha))
	p.r.Circle(0, 0, 2*p.m.Radius*scale)
}

// polar returns the point at distance d and angle a (radians).
func polar(d, a float64) (float64, float64) {
	return d * math.Cos(a), d * math.Sin(a)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// radians converts degrees.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
