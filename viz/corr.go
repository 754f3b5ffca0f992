// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/edaviz/edaviz/dataset"
	"github.com/edaviz/edaviz/panel"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// CorrOptions configure CorrTriangle.
type CorrOptions struct {
	Title string

	// Sub indicates the plot is part of a larger figure.
	Sub bool
}

// A Corr is the Pearson correlation of two columns. Row is always
// greater than Col.
type Corr struct {
	Row, Col int
	R        float64
}

// Correlations computes the lower triangle of the correlation matrix
// of numeric columns cols, excluding the diagonal. Each pair uses the
// rows where both values are present. R is NaN if there are fewer
// than two such rows or either column is constant over them.
func Correlations(ds *dataset.Dataset, cols []string) ([]Corr, error) {
	vals := make([][]float64, len(cols))
	for i, name := range cols {
		xs, err := ds.Float(name)
		if err != nil {
			return nil, err
		}
		vals[i] = xs
	}

	var out []Corr
	var xs, ys []float64
	for row := 1; row < len(cols); row++ {
		for col := 0; col < row; col++ {
			xs, ys = xs[:0], ys[:0]
			for k, x := range vals[col] {
				y := vals[row][k]
				if math.IsNaN(x) || math.IsNaN(y) {
					continue
				}
				xs, ys = append(xs, x), append(ys, y)
			}
			r := math.NaN()
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
			}
			out = append(out, Corr{row, col, r})
		}
	}
	return out, nil
}

// corrPalette maps r in [-1, 1] from blue through a light neutral to
// red.
var corrPalette = palette.RGBGradient{
	Colors: []color.RGBA{
		rgba(colorful.HSLuv(220, 0.75, 0.5).Clamped()),
		rgba(colorful.HSLuv(220, 0.1, 0.95).Clamped()),
		rgba(colorful.HSLuv(10, 0.75, 0.5).Clamped()),
	},
}

var missingCorr = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}

// CorrColor returns the color of correlation r.
func CorrColor(r float64) color.Color {
	if math.IsNaN(r) {
		return missingCorr
	}
	return corrPalette.Map((r + 1) / 2)
}

// CorrTriangle draws the correlations of numeric columns cols as a
// triangle of tiles below the diagonal.
func CorrTriangle(ds *dataset.Dataset, cols []string, opts CorrOptions, style Style) (*Figure, error) {
	if len(cols) < 2 {
		return nil, errors.Wrapf(panel.ErrInvalidArgument, "correlation of %d columns", len(cols))
	}
	corrs, err := Correlations(ds, cols)
	if err != nil {
		return nil, err
	}

	// Row 1 is at the top.
	n := len(cols)
	var shapes shapeSet
	for _, c := range corrs {
		x, y := float64(c.Col), float64(n-1-c.Row)
		shapes.rect(x-0.5, x+0.5, y-0.5, y+0.5, CorrColor(c.R))
	}

	p := gg.NewPlot(shapes.table())
	xscale := gg.NewLinearScaler().SetMin(-0.5).SetMax(float64(n) - 1.5)
	xscale.SetFormatter(categoryFormatter(cols[:n-1]))
	p.SetScale("x", xscale)
	ylabels := make([]string, n-1)
	for row := 1; row < n; row++ {
		ylabels[n-1-row] = cols[row]
	}
	yscale := gg.NewLinearScaler().SetMin(-0.5).SetMax(float64(n) - 1.5)
	yscale.SetFormatter(categoryFormatter(ylabels))
	p.SetScale("y", yscale)
	drawShapes(p)

	return &Figure{
		Plot:   p,
		Title:  opts.Title,
		Sub:    opts.Sub,
		Width:  style.CellHeight,
		Height: style.CellHeight,
		Style:  style,
	}, nil
}
