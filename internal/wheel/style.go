package wheel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Form selects how a wheel is built.
type Form string

const (
	// FormDots builds the wheel from a core cluster, dotted ring bands and
	// dot-chain spokes.
	FormDots Form = "dots"
	// FormCompact builds a filled disc with outline rings, two dot rings,
	// line spokes and a two-tier center dot.
	FormCompact Form = "compact"
)

// ParseForm validates a form name.
func ParseForm(s string) (Form, error) {
	switch f := Form(s); f {
	case FormDots, FormCompact:
		return f, nil
	default:
		return "", fmt.Errorf("unknown wheel form %q", s)
	}
}

// Style toggles the layers of a wheel and sets their counts.
type Style struct {
	Form Form `toml:"form"`

	// Glow draws a soft dark halo behind the wheel.
	Glow      bool    `toml:"glow"`
	GlowScale float64 `toml:"glow_scale"` // halo radius / wheel radius
	GlowAlpha float64 `toml:"glow_alpha"` // 0..100

	// Dot form layers.
	Core       bool `toml:"core"`
	CoreDots   int  `toml:"core_dots"`
	Rings      bool `toml:"rings"`
	Bands      int  `toml:"bands"`
	BandDots   int  `toml:"band_dots"`
	Spokes     bool `toml:"spokes"`
	SpokeCount int  `toml:"spoke_count"`
	SpokeSteps int  `toml:"spoke_steps"`
	// SpokeEasing reshapes the inner-to-outer fade of a spoke. See Easings.
	SpokeEasing string `toml:"spoke_easing"`

	// Compact form layers. SpokeCount is shared with the dot form.
	RingLines bool `toml:"ring_lines"`
	LineRings int  `toml:"line_rings"`
	InnerDots int  `toml:"inner_dots"`
	OuterDots int  `toml:"outer_dots"`
	CenterDot bool `toml:"center_dot"`
}

// DotStyle returns the dot form with every layer on and no glow.
func DotStyle() Style {
	return Style{
		Form:        FormDots,
		GlowScale:   1.12,
		GlowAlpha:   12,
		Core:        true,
		CoreDots:    50,
		Rings:       true,
		Bands:       3,
		BandDots:    60,
		Spokes:      true,
		SpokeCount:  8,
		SpokeSteps:  11,
		SpokeEasing: "linear",
	}
}

// CompactStyle returns the compact form with every layer on, glow included.
func CompactStyle() Style {
	return Style{
		Form:        FormCompact,
		Glow:        true,
		GlowScale:   1.12,
		GlowAlpha:   16,
		Spokes:      true,
		SpokeCount:  8,
		SpokeEasing: "linear",
		RingLines:   true,
		LineRings:   4,
		InnerDots:   12,
		OuterDots:   24,
		CenterDot:   true,
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-cubic":    ease.InCubic,
	"out-cubic":   ease.OutCubic,
	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
	"in-out-sine": ease.InOutSine,
}

// Easings lists the accepted SpokeEasing names.
func Easings() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports unknown forms, easings and negative counts.
func (s Style) Validate() error {
	if _, err := ParseForm(string(s.Form)); err != nil {
		return err
	}
	if _, ok := easings[s.SpokeEasing]; !ok && s.SpokeEasing != "" {
		return fmt.Errorf("unknown spoke easing %q, want one of %s", s.SpokeEasing, strings.Join(Easings(), ", "))
	}
	counts := map[string]int{
		"core dots":   s.CoreDots,
		"bands":       s.Bands,
		"band dots":   s.BandDots,
		"spokes":      s.SpokeCount,
		"spoke steps": s.SpokeSteps,
		"line rings":  s.LineRings,
		"inner dots":  s.InnerDots,
		"outer dots":  s.OuterDots,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("negative %s count %d", name, n)
		}
	}
	return nil
}

// shape maps t in [0, 1] through the spoke easing. Linear and unknown
// easings return t unchanged.
func (s Style) shape(t float64) float64 {
	fn, ok := easings[s.SpokeEasing]
	if !ok || s.SpokeEasing == "linear" {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}
