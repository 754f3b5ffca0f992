// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/stats"
	"github.com/edaviz/edaviz/dataset"
	"github.com/edaviz/edaviz/panel"
	"github.com/pkg/errors"
)

// whiskerIQR is how far past the quartiles, in units of the
// interquartile range, a whisker may reach.
const whiskerIQR = 1.5

// BoxStats is the five-number summary drawn by a box plot.
type BoxStats struct {
	Variable string
	N        int

	Q1, Median, Q3 float64

	// Lo and Hi are the ends of the whiskers: the most extreme
	// values within 1.5 IQR of the box.
	Lo, Hi float64

	// Outliers are the values beyond the whiskers, in ascending
	// order.
	Outliers []float64
}

// NewBoxStats summarizes the non-NaN values of xs. It returns an error
// if there are none.
func NewBoxStats(variable string, xs []float64) (BoxStats, error) {
	sample := stats.Sample{Xs: make([]float64, 0, len(xs))}
	for _, x := range xs {
		if !math.IsNaN(x) {
			sample.Xs = append(sample.Xs, x)
		}
	}
	if len(sample.Xs) == 0 {
		return BoxStats{}, errors.Errorf("column %q has no values", variable)
	}
	sample.Sort()

	b := BoxStats{
		Variable: variable,
		N:        len(sample.Xs),
		Q1:       sample.Quantile(0.25),
		Median:   sample.Quantile(0.5),
		Q3:       sample.Quantile(0.75),
	}
	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-whiskerIQR*iqr, b.Q3+whiskerIQR*iqr
	b.Lo, b.Hi = math.Inf(1), math.Inf(-1)
	for _, x := range sample.Xs {
		if x < lo || x > hi {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		b.Lo = math.Min(b.Lo, x)
		b.Hi = math.Max(b.Hi, x)
	}
	// Whiskers never reach into the box.
	b.Lo = math.Min(b.Lo, b.Q1)
	b.Hi = math.Max(b.Hi, b.Q3)
	return b, nil
}

// Extent returns the range of values drawn for b. A range of zero
// width is widened to one unit around its value.
func (b BoxStats) Extent() (lo, hi float64) {
	lo, hi = b.Lo, b.Hi
	if len(b.Outliers) > 0 {
		lo = math.Min(lo, b.Outliers[0])
		hi = math.Max(hi, b.Outliers[len(b.Outliers)-1])
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

const (
	boxHalfWidth = 0.4
	capHalfWidth = 0.2
)

func (b BoxStats) addTo(s *shapeSet, fill color.Color) {
	s.rect(-boxHalfWidth, boxHalfWidth, b.Q1, b.Q3, fill)
	s.line(-boxHalfWidth, b.Median, boxHalfWidth, b.Median)
	s.line(0, b.Q1, 0, b.Lo)
	s.line(0, b.Q3, 0, b.Hi)
	s.line(-capHalfWidth, b.Lo, capHalfWidth, b.Lo)
	s.line(-capHalfWidth, b.Hi, capHalfWidth, b.Hi)
	for _, x := range b.Outliers {
		s.dot(0, x)
	}
}

// plot returns a gg plot of b.
func (b BoxStats) plot(fill color.Color) *gg.Plot {
	var shapes shapeSet
	b.addTo(&shapes, fill)

	p := gg.NewPlot(shapes.table())
	x := gg.NewLinearScaler().SetMin(-0.5).SetMax(0.5)
	x.SetFormatter(func(float64) string { return "" })
	p.SetScale("x", x)
	lo, hi := b.Extent()
	p.SetScale("y", gg.NewLinearScaler().Include(lo).Include(hi))
	drawShapes(p)
	p.Add(gg.AxisLabel("x", strings.Title(b.Variable)), gg.AxisLabel("y", ""))
	return p
}

// BoxPanel draws a box plot of each numeric column in cols, laid out
// in a grid.
func BoxPanel(ds *dataset.Dataset, cols []string, opts PanelOptions, style Style) (*Figure, error) {
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
		b, err := NewBoxStats(name, xs)
		if err != nil {
			return nil, err
		}
		fig.Panels = append(fig.Panels, Panel{c, name, b.plot(colors.ColorFor(c.Index))})
	}
	return fig, nil
}
