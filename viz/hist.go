// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/stats"
	"github.com/edaviz/edaviz/dataset"
	"github.com/edaviz/edaviz/panel"
	"github.com/pkg/errors"
)

// DefaultBins is the number of histogram bins if none is given.
const DefaultBins = 10

// cutQuantile is the upper bound of a histogram that cuts off its
// largest values.
const cutQuantile = 0.95

// A Hist is a histogram of one variable with equal-width bins
// covering [Lo, Hi]. The last bin is closed on both ends.
type Hist struct {
	Variable string
	Lo, Hi   float64
	Counts   []float64
}

// NewHist bins the non-NaN values of xs into bins bins. If cut is
// true, the range is cut off at the 95th percentile and larger values
// are not counted.
func NewHist(variable string, xs []float64, bins int, cut bool) Hist {
	if bins <= 0 {
		bins = DefaultBins
	}
	var sample stats.Sample
	for _, x := range xs {
		if !math.IsNaN(x) {
			sample.Xs = append(sample.Xs, x)
		}
	}
	h := Hist{Variable: variable, Counts: make([]float64, bins)}
	if len(sample.Xs) == 0 {
		h.Lo, h.Hi = math.NaN(), math.NaN()
		return h
	}
	sample.Sort()
	h.Lo, h.Hi = sample.Bounds()
	if cut {
		h.Hi = sample.Quantile(cutQuantile)
	}
	if h.Lo == h.Hi {
		h.Lo, h.Hi = h.Lo-0.5, h.Hi+0.5
	}

	lh := stats.NewLinearHist(h.Lo, h.Hi, bins)
	inRange := 0
	for _, x := range sample.Xs {
		if x < h.Lo || x > h.Hi {
			continue
		}
		inRange++
		lh.Add(x)
	}
	_, counts, _ := lh.Counts()
	binned := 0
	for i, n := range counts {
		h.Counts[i] = float64(n)
		binned += int(n)
	}
	// Values at Hi (and any that round past it) land beyond the
	// last bin of the linear histogram.
	h.Counts[bins-1] += float64(inRange - binned)
	return h
}

// Width returns the width of each bin.
func (h Hist) Width() float64 {
	return (h.Hi - h.Lo) / float64(len(h.Counts))
}

// Total returns the number of values counted in h.
func (h Hist) Total() float64 {
	t := 0.0
	for _, n := range h.Counts {
		t += n
	}
	return t
}

func (h Hist) addTo(s *shapeSet, fill color.Color) {
	if math.IsNaN(h.Lo) {
		return
	}
	w := h.Width()
	for i, n := range h.Counts {
		if n == 0 {
			continue
		}
		x0 := h.Lo + float64(i)*w
		s.rect(x0, x0+w, 0, n, fill)
	}
}

// plot returns a gg plot of h, or nil if h has no values.
func (h Hist) plot(fill color.Color) *gg.Plot {
	var shapes shapeSet
	h.addTo(&shapes, fill)
	if shapes.len() == 0 {
		return nil
	}
	p := gg.NewPlot(shapes.table())
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	drawShapes(p)
	p.Add(gg.AxisLabel("x", strings.Title(h.Variable)), gg.AxisLabel("y", "Frequency"))
	return p
}

// HistPlot draws a histogram of numeric column col in a single color.
// If cut is true, the largest 5% of values are cut off.
func HistPlot(ds *dataset.Dataset, col string, fill color.Color, cut bool, style Style) (*Figure, error) {
	xs, err := ds.Float(col)
	if err != nil {
		return nil, err
	}
	p := NewHist(col, xs, DefaultBins, cut).plot(fill)
	if p == nil {
		return nil, errors.Errorf("column %q has no values", col)
	}
	return &Figure{
		Plot:   p,
		Sub:    true,
		Width:  style.CellWidth,
		Height: style.CellHeight,
		Style:  style,
	}, nil
}

// PanelOptions configure HistPanel and BoxPanel.
type PanelOptions struct {
	Title string

	// Columns is the number of charts per row. If 0, it is 2.
	Columns int

	// Layout selects how the number of rows is computed. Note
	// that the zero value is panel.TruncatingLayout.
	Layout panel.Variant

	// Color selects how each chart's color is drawn from the
	// style's palette. Rand, if non-nil, is the source for
	// panel.Random.
	Color panel.ColorMode
	Rand  *rand.Rand

	// Cut cuts off the largest 5% of values of each histogram.
	Cut bool

	// Bins is the number of bins per histogram. If 0, it is
	// DefaultBins.
	Bins int
}

// DefaultHistPanelOptions returns the options histogram panels have
// always used: two histograms per row, a truncating layout, and
// randomly drawn colors.
func DefaultHistPanelOptions() PanelOptions {
	return PanelOptions{Columns: 2, Layout: panel.TruncatingLayout, Color: panel.Random}
}

// DefaultBoxPanelOptions returns two box plots per row, a layout that
// places every variable, and randomly drawn colors.
func DefaultBoxPanelOptions() PanelOptions {
	return PanelOptions{Columns: 2, Layout: panel.CeilingLayout, Color: panel.Random}
}

// plan lays out cols according to opts and warns about dropped
// variables.
func (opts PanelOptions) plan(cols []string) (panel.Layout, error) {
	ncols := opts.Columns
	if ncols == 0 {
		ncols = 2
	}
	l, err := panel.New(opts.Layout, len(cols), ncols)
	if err != nil {
		return l, err
	}
	if d := l.Dropped(); d > 0 {
		Warning.Printf("%s layout of %d variables in %d columns drops %v", l.Variant, l.Count, l.Cols, cols[l.Placed():])
	}
	if l.Placed() == 0 {
		return l, errors.Wrapf(panel.ErrInvalidArgument, "%s layout of %d variables in %d columns has no cells", l.Variant, l.Count, l.Cols)
	}
	return l, nil
}

// HistPanel draws a histogram of each numeric column in cols, laid
// out in a grid.
func HistPanel(ds *dataset.Dataset, cols []string, opts PanelOptions, style Style) (*Figure, error) {
	l, err := opts.plan(cols)
	if err != nil {
		return nil, err
	}
	colors := &panel.Assigner{Palette: style.Palette, Mode: opts.Color, Rand: opts.Rand}

	fig := &Figure{
		Layout: l,
		Title:  opts.Title,
		Width:  style.CellWidth * l.Cols,
		Height: style.CellHeight * l.Rows,
		Style:  style,
	}
	for _, c := range l.Cells() {
		name := cols[c.Index]
		xs, err := ds.Float(name)
		if err != nil {
			return nil, err
		}
		p := NewHist(name, xs, opts.Bins, opts.Cut).plot(colors.ColorFor(c.Index))
		if p == nil {
			Warning.Printf("column %q has no values", name)
			continue
		}
		fig.Panels = append(fig.Panels, Panel{c, name, p})
	}
	if len(fig.Panels) == 0 {
		return nil, errors.New("no values to plot")
	}
	return fig, nil
}
