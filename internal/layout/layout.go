// Package layout computes where the wheels go: the content rectangle of a
// frame, a jittered grid of centers, or random scattered placements.
package layout

import (
	"math"

	"github.com/iburimskiy/dotwheels/internal/rng"
)

const (
	// GridJitter is the largest center offset as a fraction of a cell side.
	GridJitter = 0.15
	// ScatterMargin is the edge margin as a multiple of a motif's size.
	ScatterMargin = 0.7
)

// Rect is the drawable area inside a frame.
type Rect struct {
	X, Y, W, H float64
	// Unit is the smaller frame dimension, the base length for radii.
	Unit   float64
	Margin float64
}

// Placement is a motif's center and radius.
type Placement struct {
	X, Y   float64
	Radius float64
}

// ContentRect derives the content rectangle of a width×height frame from a
// margin ratio applied to the smaller dimension. The ratio is clamped to
// [0, 0.5] so the rectangle never leaves the frame.
func ContentRect(width, height, marginRatio float64) Rect {
	unit := math.Min(width, height)
	if unit < 0 {
		unit = 0
	}
	m := unit * math.Max(0, math.Min(0.5, marginRatio))
	return Rect{
		X:      m,
		Y:      m,
		W:      math.Max(0, width-2*m),
		H:      math.Max(0, height-2*m),
		Unit:   unit,
		Margin: m,
	}
}

// GridCenters returns up to n cell centers of a cols×rows grid laid over
// rect, row-major, each offset by uniform jitter of at most GridJitter of
// the cell size per axis. Radii are left zero.
func GridCenters(r *rng.Controller, n int, rect Rect, cols, rows int) []Placement {
	if n <= 0 || cols <= 0 || rows <= 0 {
		return []Placement{}
	}
	pts := make([]Placement, 0, min(n, cols*rows))
	cw, ch := rect.W/float64(cols), rect.H/float64(rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := rect.X + float64(col)*cw + cw*0.5 + r.Range(-cw*GridJitter, cw*GridJitter)
			cy := rect.Y + float64(row)*ch + ch*0.5 + r.Range(-ch*GridJitter, ch*GridJitter)
			pts = append(pts, Placement{X: cx, Y: cy})
			if len(pts) >= n {
				return pts
			}
		}
	}
	return pts
}

// Scatter draws n placements on a width×height frame. Each motif gets a
// size in [minSize, maxSize) and a center at least ScatterMargin×size from
// every edge. The margin is clamped to half of each dimension, so oversized
// motifs collapse onto the middle axis instead of inverting the range.
// Overlap between motifs is allowed.
func Scatter(r *rng.Controller, n int, width, height, minSize, maxSize float64) []Placement {
	if n <= 0 {
		return []Placement{}
	}
	pts := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		size := r.Range(minSize, maxSize)
		mx, my := ScatterMargins(size/2, width, height)
		pts = append(pts, Placement{
			X:      r.Range(mx, width-mx),
			Y:      r.Range(my, height-my),
			Radius: size / 2,
		})
	}
	return pts
}

// ScatterMargins returns the per-axis margins Scatter uses for a motif of
// the given radius.
func ScatterMargins(radius, width, height float64) (mx, my float64) {
	m := radius * 2 * ScatterMargin
	return math.Min(m, width/2), math.Min(m, height/2)
}
