// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz renders exploratory charts of a dataset: bar plots of
// categorical columns, histograms and histogram panels, correlation
// triangles, and box-plot panels.
//
// Charts are built as gg plots and written as SVG through a Figure,
// which applies the fonts of a Style. A Style is passed explicitly to
// every chart; there is no package-level styling state.
package viz

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/edaviz/edaviz/panel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Warning is a logger for conditions that don't prevent a chart from
// being drawn, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[viz] ", 0)

// A Font describes how a class of text is drawn.
type Font struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Weight string  `yaml:"weight,omitempty"`
}

// css returns f as CSS declarations.
func (f Font) css() string {
	var b strings.Builder
	if f.Family != "" {
		fmt.Fprintf(&b, "font-family:%s;", f.Family)
	}
	if f.Size > 0 {
		fmt.Fprintf(&b, "font-size:%gpx;", f.Size)
	}
	if f.Weight != "" {
		fmt.Fprintf(&b, "font-weight:%s;", cssWeight(f.Weight))
	}
	return b.String()
}

// cssWeight maps font weight names to CSS font-weight values.
func cssWeight(w string) string {
	switch w {
	case "semibold", "demibold":
		return "600"
	case "light":
		return "300"
	}
	return w
}

// Style is the set of cosmetic options applied to every chart.
type Style struct {
	// Title is the font of top-level chart and panel titles.
	Title Font
	// Axis is the font of axis labels and of subplot titles.
	Axis Font
	// Ticks is the font of tick labels and annotations.
	Ticks Font

	// Palette supplies the fill colors of bars and boxes.
	Palette panel.Palette

	// CellWidth and CellHeight are the size in pixels of one
	// chart, or of one cell of a panel.
	CellWidth, CellHeight int
}

// DefaultStyle returns serif fonts at 14, 12, and 10 pixels, the
// default palette, and 500x350 cells.
func DefaultStyle() Style {
	return Style{
		Title:      Font{Family: "serif", Size: 14, Weight: "semibold"},
		Axis:       Font{Family: "serif", Size: 12},
		Ticks:      Font{Family: "serif", Size: 10},
		Palette:    panel.DefaultPalette(),
		CellWidth:  500,
		CellHeight: 350,
	}
}

// TitleFont returns the font for a chart title. Charts drawn as part
// of a larger figure use the axis font.
func (s Style) TitleFont(sub bool) Font {
	if sub {
		return s.Axis
	}
	return s.Title
}

type styleFile struct {
	Title      Font     `yaml:"title"`
	Axis       Font     `yaml:"axis"`
	Ticks      Font     `yaml:"ticks"`
	Palette    []string `yaml:"palette"`
	CellWidth  int      `yaml:"cell_width"`
	CellHeight int      `yaml:"cell_height"`
}

// LoadStyle reads a YAML style from r. Options missing from r keep
// their DefaultStyle values; unknown options are an error.
func LoadStyle(r io.Reader) (Style, error) {
	def := DefaultStyle()
	sf := styleFile{
		Title:      def.Title,
		Axis:       def.Axis,
		Ticks:      def.Ticks,
		Palette:    def.Palette.Hex(),
		CellWidth:  def.CellWidth,
		CellHeight: def.CellHeight,
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && err != io.EOF {
		return Style{}, errors.Wrap(err, "parsing style")
	}
	pal, err := panel.ParsePalette(sf.Palette)
	if err != nil {
		return Style{}, errors.Wrap(err, "parsing style")
	}
	if sf.CellWidth <= 0 || sf.CellHeight <= 0 {
		return Style{}, errors.Wrapf(panel.ErrInvalidArgument, "cell size %dx%d", sf.CellWidth, sf.CellHeight)
	}
	return Style{
		Title:      sf.Title,
		Axis:       sf.Axis,
		Ticks:      sf.Ticks,
		Palette:    pal,
		CellWidth:  sf.CellWidth,
		CellHeight: sf.CellHeight,
	}, nil
}

// LoadStyleFile reads a YAML style from the named file.
func LoadStyleFile(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, err
	}
	defer f.Close()
	s, err := LoadStyle(f)
	if err != nil {
		return Style{}, errors.Wrap(err, path)
	}
	return s, nil
}

// css returns the style sheet applied to a figure.
func (s Style) css() string {
	// gg draws tick labels in #666.
	return fmt.Sprintf("text{%s}\ntext[fill=\"#666\"]{%s}\n", s.Axis.css(), s.Ticks.css())
}
