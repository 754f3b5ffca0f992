// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	svg "github.com/ajstarks/svgo"
	"github.com/edaviz/edaviz/panel"
	"github.com/pkg/errors"
)

// A Figure is a rendered chart: either a single gg plot or a grid of
// them, its title, and the style to draw it with.
type Figure struct {
	// Plot is the chart of a single-plot figure.
	Plot *gg.Plot

	// Panels are the charts of a grid figure, placed by the cells
	// of Layout. They are used if Plot is nil.
	Panels []Panel
	Layout panel.Layout

	Title string

	// Sub indicates this figure is a subplot of a larger figure,
	// which selects the smaller title font.
	Sub bool

	// Width and Height give the size of the plot area in pixels,
	// not including the title.
	Width, Height int

	Style Style
}

// A Panel is one chart of a grid figure.
type Panel struct {
	panel.Cell
	Variable string
	Plot     *gg.Plot
}

// titleHeight returns the height in pixels reserved for f's title.
func (f *Figure) titleHeight() int {
	if f.Title == "" {
		return 0
	}
	return int(2 * f.Style.TitleFont(f.Sub).Size)
}

// renderPlot renders p and returns its root svg element without the
// XML prolog, so it can be embedded in another document.
func renderPlot(p *gg.Plot, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, width, height); err != nil {
		return nil, errors.Wrap(err, "rendering plot")
	}
	body := buf.Bytes()
	if i := bytes.Index(body, []byte("<svg")); i >= 0 {
		body = body[i:]
	}
	return body, nil
}

// WriteSVG renders f to w as an SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	// Render every plot before writing anything.
	type placed struct {
		x, y int
		body []byte
	}
	var plots []placed
	if f.Plot != nil {
		body, err := renderPlot(f.Plot, f.Width, f.Height)
		if err != nil {
			return err
		}
		plots = append(plots, placed{0, 0, body})
	} else {
		if f.Layout.Rows == 0 || f.Layout.Cols == 0 {
			return errors.Wrap(panel.ErrInvalidArgument, "figure has no cells")
		}
		cw, ch := f.Width/f.Layout.Cols, f.Height/f.Layout.Rows
		for _, p := range f.Panels {
			body, err := renderPlot(p.Plot, cw, ch)
			if err != nil {
				return errors.Wrap(err, p.Variable)
			}
			plots = append(plots, placed{p.Col * cw, p.Row * ch, body})
		}
	}

	bw := bufio.NewWriter(w)
	th := f.titleHeight()
	canvas := svg.New(bw)
	canvas.Start(f.Width, f.Height+th)
	canvas.Style("text/css", f.Style.css())
	if f.Title != "" {
		canvas.Text(f.Width/2, th*2/3, f.Title, "text-anchor:middle;"+f.Style.TitleFont(f.Sub).css())
	}
	for _, p := range plots {
		canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", p.x, p.y+th))
		bw.Write(p.body)
		canvas.Gend()
	}
	canvas.End()
	return bw.Flush()
}
