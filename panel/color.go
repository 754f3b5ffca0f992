// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"image/color"
	"math/rand"

	"github.com/aclements/go-gg/palette/brewer"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// A Palette is a finite, ordered set of distinct colors. The zero
// Palette is empty and must not be used to assign colors; construct
// palettes with NewPalette, ParsePalette, or DefaultPalette.
type Palette []color.Color

// NewPalette returns a palette of the given colors in order, with
// later duplicates removed. Colors are compared by their RGBA values.
func NewPalette(colors ...color.Color) (Palette, error) {
	type key struct{ r, g, b, a uint32 }
	seen := make(map[key]bool)
	var p Palette
	for _, c := range colors {
		if c == nil {
			continue
		}
		r, g, b, a := c.RGBA()
		k := key{r, g, b, a}
		if seen[k] {
			continue
		}
		seen[k] = true
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty palette")
	}
	return p, nil
}

// ParsePalette parses a palette from hex color strings such as
// "#66c2a5".
func ParsePalette(hex []string) (Palette, error) {
	colors := make([]color.Color, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "palette color %q", h)
		}
		colors = append(colors, c)
	}
	return NewPalette(colors...)
}

// DefaultPalette returns the ColorBrewer Set2 palette followed by the
// Set3 palette.
func DefaultPalette() Palette {
	var colors []color.Color
	for _, c := range brewer.Set2_8 {
		colors = append(colors, c)
	}
	for _, c := range brewer.Set3_12 {
		colors = append(colors, c)
	}
	p, err := NewPalette(colors...)
	if err != nil {
		panic(err)
	}
	return p
}

// Hex returns the palette as "#rrggbb" strings.
func (p Palette) Hex() []string {
	hex := make([]string, len(p))
	for i, c := range p {
		cf, _ := colorful.MakeColor(c)
		hex[i] = cf.Hex()
	}
	return hex
}

// ColorMode selects how colors are drawn from a Palette.
type ColorMode int

const (
	// Sequential cycles through the palette in order, so index i
	// gets color i mod len(palette).
	Sequential ColorMode = iota

	// Random draws each color uniformly and independently. The
	// same color may be drawn more than once in a panel.
	Random
)

func (m ColorMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	}
	return "ColorMode(?)"
}

// ParseColorMode parses "sequential" or "random".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "sequential":
		return Sequential, nil
	case "random":
		return Random, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown color mode %q", s)
}

// ColorFor returns the color for variable index. Random mode draws
// from the math/rand top-level source.
func (p Palette) ColorFor(index int, mode ColorMode) color.Color {
	return p.colorFor(index, mode, rand.Intn)
}

func (p Palette) colorFor(index int, mode ColorMode, intn func(int) int) color.Color {
	n := len(p)
	if mode == Random {
		return p[intn(n)]
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return p[i]
}

// An Assigner assigns colors from Palette according to Mode. If Rand
// is nil, Random mode uses the math/rand top-level source.
type Assigner struct {
	Palette Palette
	Mode    ColorMode
	Rand    *rand.Rand
}

// ColorFor returns the color for variable index.
func (a *Assigner) ColorFor(index int) color.Color {
	if a.Rand == nil {
		return a.Palette.ColorFor(index, a.Mode)
	}
	return a.Palette.colorFor(index, a.Mode, a.Rand.Intn)
}
