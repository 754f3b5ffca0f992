// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// A shapeSet accumulates polylines and points as rows of a gg table.
// Each shape is a separate group when drawn, so shapes are never
// joined to each other.
type shapeSet struct {
	shape  []int
	xs, ys []float64
	fill   []color.RGBA
	point  []bool

	next int
}

var transparent = color.RGBA{}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (s *shapeSet) add(shape int, x, y float64, fill color.RGBA, point bool) {
	s.shape = append(s.shape, shape)
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
	s.fill = append(s.fill, fill)
	s.point = append(s.point, point)
}

// path adds an open or closed polyline through xs, ys.
func (s *shapeSet) path(xs, ys []float64, fill color.Color) {
	id := s.next
	s.next++
	f := rgba(fill)
	for i := range xs {
		s.add(id, xs[i], ys[i], f, false)
	}
}

// rect adds a filled rectangle with a black edge.
func (s *shapeSet) rect(x0, x1, y0, y1 float64, fill color.Color) {
	s.path([]float64{x0, x0, x1, x1, x0}, []float64{y0, y1, y1, y0, y0}, fill)
}

// line adds a segment from (x0, y0) to (x1, y1).
func (s *shapeSet) line(x0, y0, x1, y1 float64) {
	s.path([]float64{x0, x1}, []float64{y0, y1}, transparent)
}

// dot adds a point mark.
func (s *shapeSet) dot(x, y float64) {
	id := s.next
	s.next++
	s.add(id, x, y, transparent, true)
}

func (s *shapeSet) len() int {
	return len(s.shape)
}

const (
	colShape = "shape"
	colX     = "x"
	colY     = "y"
	colFill  = "fill"
	colPoint = "point"
)

func (s *shapeSet) table() *table.Table {
	return new(table.Builder).
		Add(colShape, s.shape).
		Add(colX, s.xs).
		Add(colY, s.ys).
		Add(colFill, s.fill).
		Add(colPoint, s.point).
		Done()
}

// drawShapes adds layers for the shapes in the current data of p.
func drawShapes(p *gg.Plot) {
	p.Save()
	p.SetData(table.Filter(p.Data(), func(point bool) bool { return !point }, colPoint))
	p.GroupBy(colShape)
	p.Add(gg.LayerPaths{X: colX, Y: colY, Fill: colFill})
	p.Restore()

	p.Save()
	p.SetData(table.Filter(p.Data(), func(point bool) bool { return point }, colPoint))
	p.Add(gg.LayerPoints{X: colX, Y: colY})
	p.Restore()
}
