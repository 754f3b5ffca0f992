// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"fmt"
	"image/color"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	green = color.RGBA{0, 0xff, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
)

func TestNewPalette(t *testing.T) {
	p, err := NewPalette(red, green, red, blue, color.NRGBA{0, 0xff, 0, 0xff})
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 || p[0] != red || p[1] != green || p[2] != blue {
		t.Errorf("want [red green blue], got %v", p)
	}

	if _, err := NewPalette(); errors.Cause(err) != ErrInvalidArgument {
		t.Errorf("empty palette: want ErrInvalidArgument, got %v", err)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000", "#00ff00", "#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"#ff0000", "#00ff00"}; fmt.Sprint(p.Hex()) != fmt.Sprint(want) {
		t.Errorf("want %v, got %v", want, p.Hex())
	}
	if _, err := ParsePalette([]string{"red"}); err == nil {
		t.Errorf("want error parsing %q", "red")
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 20 {
		t.Errorf("want 20 colors, got %d", len(p))
	}
	if hex := p.Hex(); hex[0] != "#66c2a5" || hex[8] != "#8dd3c7" {
		t.Errorf("want Set2 then Set3, got %v", hex)
	}
}

func TestSequential(t *testing.T) {
	p, _ := NewPalette(red, green, blue)
	for i := -6; i < 12; i++ {
		a, b := p.ColorFor(i, Sequential), p.ColorFor(i+3, Sequential)
		if a != b {
			t.Errorf("ColorFor(%d) = %v, ColorFor(%d) = %v; want period 3", i, a, i+3, b)
		}
	}
	if c := p.ColorFor(0, Sequential); c != red {
		t.Errorf("ColorFor(0) = %v, want red", c)
	}
	if c := p.ColorFor(6, Sequential); c != red {
		t.Errorf("ColorFor(6) = %v, want red", c)
	}
	if c := p.ColorFor(-1, Sequential); c != blue {
		t.Errorf("ColorFor(-1) = %v, want blue", c)
	}
}

func TestRandom(t *testing.T) {
	p, _ := NewPalette(red, green, blue)
	a1 := &Assigner{Palette: p, Mode: Random, Rand: rand.New(rand.NewSource(1))}
	a2 := &Assigner{Palette: p, Mode: Random, Rand: rand.New(rand.NewSource(1))}
	seen := make(map[color.Color]int)
	for i := 0; i < 300; i++ {
		c := a1.ColorFor(i)
		if c2 := a2.ColorFor(i); c != c2 {
			t.Fatalf("draw %d: same seed gave %v and %v", i, c, c2)
		}
		seen[c]++
	}
	if len(seen) != 3 {
		t.Errorf("want all 3 colors drawn, got %v", seen)
	}
	for i := 0; i < 10; i++ {
		c := p.ColorFor(i, Random)
		if c != red && c != green && c != blue {
			t.Errorf("ColorFor(%d, Random) = %v, not in palette", i, c)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	for _, m := range []ColorMode{Sequential, Random} {
		got, err := ParseColorMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseColorMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseColorMode("rainbow"); errors.Cause(err) != ErrInvalidArgument {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}

func TestSwatch(t *testing.T) {
	p, _ := NewPalette(red, green, blue)
	img := Swatch(p, 10, 4)
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 4 {
		t.Fatalf("want 30x4, got %v", b)
	}
	for x, want := range map[int]color.RGBA{0: red, 9: red, 10: green, 19: green, 25: blue} {
		if got := img.RGBAAt(x, 2); got != want {
			t.Errorf("pixel %d: want %v, got %v", x, want, got)
		}
	}
}
