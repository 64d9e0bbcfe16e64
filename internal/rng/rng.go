// Package rng holds the seedable random and noise sources shared by the
// layout planner, orchestrator and wheel renderer.
package rng

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters for the noise source.
const (
	noiseAlpha  = 2
	noiseBeta   = 2
	noiseOctave = 3
)

// Controller wraps a seedable pseudo-random source and a Perlin noise
// source. A given seed followed by the same sequence of calls always
// yields the same values.
type Controller struct {
	seed  int64
	src   *rand.Rand
	noise *perlin.Perlin
}

// New returns a controller seeded with seed.
func New(seed int64) *Controller {
	c := &Controller{}
	c.Seed(seed)
	return c
}

// NewUnseeded returns a controller seeded from the wall clock.
func NewUnseeded() *Controller {
	return New(time.Now().UnixNano())
}

// Seed resets both the random and the noise source.
func (c *Controller) Seed(seed int64) {
	c.seed = seed
	c.src = rand.New(rand.NewSource(seed))
	c.noise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
}

// SeedValue returns the seed of the last Seed call.
func (c *Controller) SeedValue() int64 {
	return c.seed
}

// Fork derives a child controller from the next value of this stream.
func (c *Controller) Fork() *Controller {
	return New(c.src.Int63())
}

// Float64 returns a value in [0, 1).
func (c *Controller) Float64() float64 {
	return c.src.Float64()
}

// Range returns a value between lo (inclusive) and hi.
func (c *Controller) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*c.src.Float64()
}

// Upto returns a value in [0, n).
func (c *Controller) Upto(n float64) float64 {
	return n * c.src.Float64()
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (c *Controller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return c.src.Intn(n)
}

// Angle returns a uniform angle in radians.
func (c *Controller) Angle() float64 {
	return c.Upto(2 * math.Pi)
}

// Noise2D samples the noise source. The result lies roughly in [-1, 1].
func (c *Controller) Noise2D(x, y float64) float64 {
	return c.noise.Noise2D(x, y)
}

// Pick returns a uniformly chosen element of items. It panics on an empty
// slice.
func Pick[T any](c *Controller, items []T) T {
	return items[c.Intn(len(items))]
}
