// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/edaviz/edaviz/dataset"
	"github.com/edaviz/edaviz/panel"
	"github.com/pkg/errors"
)

// BarOptions configure BarPlot.
type BarOptions struct {
	// Column is the categorical column to count.
	Column string

	Title, XLabel, YLabel string

	// Sub indicates the plot is part of a larger figure.
	Sub bool

	// TickLabels, if non-nil, replaces the category names on the
	// X axis, in category order.
	TickLabels []string
}

// A Count is the number of rows with a given category value.
type Count struct {
	Category string
	N        int
}

// CountCategories counts the non-missing values of column col.
// Categories are in order of first appearance, except that numeric
// columns are ordered by value.
func CountCategories(ds *dataset.Dataset, col string) ([]Count, error) {
	c, ok := ds.Column(col)
	if !ok {
		return nil, errors.Errorf("unknown column %q", col)
	}
	vals, err := ds.Strings(col)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var counts []Count
	for _, v := range vals {
		if v == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Category: v})
		}
		counts[i].N++
	}
	if c.Kind == dataset.Numeric {
		sort.SliceStable(counts, func(i, j int) bool {
			a, _ := strconv.ParseFloat(counts[i].Category, 64)
			b, _ := strconv.ParseFloat(counts[j].Category, 64)
			return a < b
		})
	}
	return counts, nil
}

const barHalfWidth = 0.4

// BarPlot draws a bar for each category of a column, giving the
// number of rows in that category. Each bar is annotated with its
// count.
func BarPlot(ds *dataset.Dataset, opts BarOptions, style Style) (*Figure, error) {
	counts, err := CountCategories(ds, opts.Column)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, errors.Errorf("column %q has no values", opts.Column)
	}
	labels := make([]string, len(counts))
	for i, c := range counts {
		labels[i] = c.Category
	}
	if opts.TickLabels != nil {
		if len(opts.TickLabels) != len(counts) {
			return nil, errors.Wrapf(panel.ErrInvalidArgument, "%d tick labels for %d categories", len(opts.TickLabels), len(counts))
		}
		labels = opts.TickLabels
	}

	var shapes shapeSet
	bars := make([]int, len(counts))
	xs := make([]float64, len(counts))
	ys := make([]float64, len(counts))
	tags := make([]string, len(counts))
	for i, c := range counts {
		x := float64(i)
		shapes.rect(x-barHalfWidth, x+barHalfWidth, 0, float64(c.N), style.Palette.ColorFor(i, panel.Sequential))
		bars[i], xs[i], ys[i], tags[i] = i, x, float64(c.N), strconv.Itoa(c.N)
	}

	p := gg.NewPlot(shapes.table())
	xscale := gg.NewLinearScaler().SetMin(-0.5).SetMax(float64(len(counts)) - 0.5)
	xscale.SetFormatter(categoryFormatter(labels))
	p.SetScale("x", xscale)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	drawShapes(p)

	// Annotate each bar with its count.
	p.Save()
	p.SetData(new(table.Builder).
		Add("bar", bars).
		Add(colX, xs).
		Add(colY, ys).
		Add("count", tags).
		Done())
	p.GroupBy("bar")
	p.Add(gg.LayerTags{X: colX, Y: colY, Label: "count"})
	p.Restore()

	p.Add(gg.AxisLabel("x", opts.XLabel), gg.AxisLabel("y", opts.YLabel))

	return &Figure{
		Plot:   p,
		Title:  opts.Title,
		Sub:    opts.Sub,
		Width:  style.CellWidth,
		Height: style.CellHeight,
		Style:  style,
	}, nil
}

// categoryFormatter labels integral ticks with the category at that
// index and leaves all other ticks blank.
func categoryFormatter(labels []string) func(float64) string {
	return func(x float64) string {
		i := math.Round(x)
		if math.Abs(x-i) > 1e-9 || i < 0 || int(i) >= len(labels) {
			return ""
		}
		return labels[int(i)]
	}
}
