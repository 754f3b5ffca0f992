// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"image"

	"golang.org/x/image/draw"
)

// Swatch renders p as a horizontal strip of square-ish cells, each
// cellWidth by height pixels.
func Swatch(p Palette, cellWidth, height int) *image.RGBA {
	// Draw one pixel per color and scale it up. Nearest-neighbor
	// keeps the cell edges sharp.
	src := image.NewRGBA(image.Rect(0, 0, len(p), 1))
	for i, c := range p {
		src.Set(i, 0, c)
	}
	dst := image.NewRGBA(image.Rect(0, 0, len(p)*cellWidth, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
