// pkg/render/color.go
package render

import (
	"fmt"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"image/color"
	"log"
	"strconv"
	"strings"
)

// BoardColors holds all the color definitions needed to render the static board background.
type BoardColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	PathColor       color.RGBA
	PathEdgeColor   color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	StrokeWidth     float32
}

// DefaultBoardColors takes the board palette from config.
func DefaultBoardColors() BoardColors {
	return BoardColors{
		BackgroundColor: config.BackgroundColor,
		GridLineColor:   config.GridLineColor,
		PathColor:       config.PathColor,
		PathEdgeColor:   config.PathEdgeColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		StrokeWidth:     1,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// HealthColor picks the health bar color for a fraction in [0, 1].
func HealthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.6:
		return config.HealthHigh
	case fraction > 0.3:
		return config.HealthMid
	}
	return config.HealthLow
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Swatch is the resolved pair of colors for one tower or enemy kind.
type Swatch struct {
	Fill   color.RGBA
	Accent color.RGBA
	Glyph  string
}

// Palette resolves catalog visuals once, so drawing never parses strings.
type Palette struct {
	towers  map[string]Swatch
	enemies map[string]Swatch
}

var fallbackSwatch = Swatch{
	Fill:   color.RGBA{127, 140, 141, 255},
	Accent: color.RGBA{200, 200, 200, 255},
	Glyph:  "?",
}

func NewPalette(catalog *defs.Catalog) *Palette {
	p := &Palette{
		towers:  make(map[string]Swatch, len(catalog.Towers)),
		enemies: make(map[string]Swatch, len(catalog.Enemies)),
	}
	for id, def := range catalog.Towers {
		p.towers[id] = swatchFor(id, def.Visuals)
	}
	for id, def := range catalog.Enemies {
		p.enemies[id] = swatchFor(id, def.Visuals)
	}
	return p
}

func swatchFor(id string, v defs.Visuals) Swatch {
	sw := fallbackSwatch
	if fill, err := ParseHexColor(v.Color); err == nil {
		sw.Fill = fill
		sw.Accent = fill
	} else {
		log.Printf("Palette: %s: %v", id, err)
	}
	if v.Accent != "" {
		if accent, err := ParseHexColor(v.Accent); err == nil {
			sw.Accent = accent
		}
	}
	if v.Glyph != "" {
		sw.Glyph = v.Glyph
	}
	return sw
}

func (p *Palette) Tower(kind string) Swatch {
	if sw, ok := p.towers[kind]; ok {
		return sw
	}
	return fallbackSwatch
}

func (p *Palette) Enemy(kind string) Swatch {
	if sw, ok := p.enemies[kind]; ok {
		return sw
	}
	return fallbackSwatch
}
