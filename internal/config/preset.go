package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/iburimskiy/dotwheels/internal/palette"
	"github.com/iburimskiy/dotwheels/internal/wheel"
)

// ErrInvalidPreset wraps every preset validation failure.
var ErrInvalidPreset = errors.New("invalid preset")

// Layout names a placement algorithm.
type Layout string

const (
	LayoutGrid    Layout = "grid"
	LayoutScatter Layout = "scatter"
)

// Preset is one complete sketch configuration.
type Preset struct {
	// Base names the built-in preset a TOML file starts from.
	Base string `toml:"preset"`
	Name string `toml:"name"`
	Seed int64  `toml:"seed"`

	Layout      Layout  `toml:"layout"`
	Count       int     `toml:"count"`
	GridCols    int     `toml:"grid_cols"`
	GridRows    int     `toml:"grid_rows"`
	MarginRatio float64 `toml:"margin_ratio"`

	// RadiusFactors, when set, give motif i the radius
	// unit × RadiusFactors[i mod len]. Otherwise radii are drawn from
	// [MinSize, MaxSize) × unit / 2, sizes being diameters.
	RadiusFactors []float64 `toml:"radius_factors"`
	MinSize       float64   `toml:"min_size"`
	MaxSize       float64   `toml:"max_size"`

	ColorPolicy  palette.Policy `toml:"color_policy"`
	PaletteIndex int            `toml:"palette"`
	Background   palette.HSB    `toml:"background"`

	// Organic draws per-dot jitter from an unseeded stream, so only the
	// macro layout repeats between runs.
	Organic bool `toml:"organic"`

	Style wheel.Style `toml:"style"`
}

// Group is the nine-wheel grid composition with a fixed palette.
func Group() Preset {
	return Preset{
		Base:          "group",
		Name:          "group",
		Seed:          DefaultSeed,
		Layout:        LayoutGrid,
		Count:         9,
		GridCols:      3,
		GridRows:      3,
		MarginRatio:   0.08,
		RadiusFactors: []float64{0.14, 0.18, 0.24, 0.20, 0.26, 0.16, 0.22, 0.13, 0.28},
		MinSize:       0.26,
		MaxSize:       0.56,
		ColorPolicy:   palette.PolicyFixed,
		PaletteIndex:  0,
		Background:    palette.HSB{H: 220, S: 10, B: 97},
		Style:         wheel.DotStyle(),
	}
}

// Compact is the scattered composition with random colors per draw call.
func Compact() Preset {
	return Preset{
		Base:         "compact",
		Name:         "compact",
		Seed:         DefaultSeed,
		Layout:       LayoutScatter,
		Count:        14,
		MarginRatio:  0,
		MinSize:      0.18,
		MaxSize:      0.42,
		ColorPolicy:  palette.PolicyRandom,
		PaletteIndex: 0,
		Background:   palette.HSB{H: 35, S: 8, B: 96},
		Style:        wheel.CompactStyle(),
	}
}

var builtins = map[string]func() Preset{
	"group":   Group,
	"compact": Compact,
}

// Names lists the built-in presets.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of a built-in preset.
func Lookup(name string) (Preset, error) {
	fn, ok := builtins[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidPreset, name)
	}
	return fn(), nil
}

// Load reads a TOML preset file. The file's "preset" key picks the
// built-in it overrides; it defaults to fallback.
func Load(path, fallback string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	return Parse(data, fallback)
}

// Parse decodes TOML preset data over its base preset and validates the
// result. Unknown keys are rejected.
func Parse(data []byte, fallback string) (Preset, error) {
	var head struct {
		Base string `toml:"preset"`
	}
	if err := toml.Unmarshal(data, &head); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	base := head.Base
	if base == "" {
		base = fallback
	}
	p, err := Lookup(base)
	if err != nil {
		return Preset{}, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Validate reports configurations that cannot produce a scene.
func (p Preset) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidPreset, p.Name, fmt.Sprintf(format, args...))
	}

	switch p.Layout {
	case LayoutGrid:
		if p.GridCols <= 0 || p.GridRows <= 0 {
			return invalid("grid %dx%d", p.GridCols, p.GridRows)
		}
	case LayoutScatter:
	default:
		return invalid("unknown layout %q", p.Layout)
	}
	if p.Count < 0 {
		return invalid("negative count %d", p.Count)
	}
	if p.MarginRatio < 0 || p.MarginRatio >= 0.5 {
		return invalid("margin ratio %v outside [0, 0.5)", p.MarginRatio)
	}
	for i, f := range p.RadiusFactors {
		if f <= 0 {
			return invalid("radius factor %d is %v", i, f)
		}
	}
	if p.Layout == LayoutScatter || len(p.RadiusFactors) == 0 {
		if p.MinSize <= 0 || p.MaxSize < p.MinSize {
			return invalid("size range [%v, %v)", p.MinSize, p.MaxSize)
		}
	}
	if _, err := palette.ParsePolicy(string(p.ColorPolicy)); err != nil {
		return invalid("%v", err)
	}
	if err := p.Style.Validate(); err != nil {
		return invalid("%v", err)
	}
	return nil
}
