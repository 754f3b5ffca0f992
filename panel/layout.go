// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel plans the grid of a multi-chart panel and assigns
// colors to the charts in it.
//
// A panel places variables 0..n-1 in row-major order on a grid with a
// fixed number of columns. Two layouts are provided. Ceiling gives
// every variable a cell. Truncating computes the row count by floor
// division, so a trailing partial row gets no cells at all.
package panel

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of errors returned for negative
// variable counts or non-positive column counts.
var ErrInvalidArgument = errors.New("invalid argument")

// Variant selects how a Layout computes its row count.
type Variant int

const (
	// TruncatingLayout computes rows = count / cols, dropping any
	// trailing partial row.
	TruncatingLayout Variant = iota

	// CeilingLayout computes rows = ceil(count / cols), so every
	// variable is placed.
	CeilingLayout
)

func (v Variant) String() string {
	switch v {
	case TruncatingLayout:
		return "truncating"
	case CeilingLayout:
		return "ceiling"
	}
	return "Variant(?)"
}

// ParseVariant parses "truncating" or "ceiling".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "truncating":
		return TruncatingLayout, nil
	case "ceiling":
		return CeilingLayout, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown layout %q", s)
}

// A Cell is the grid position of one variable. Row and Col are
// zero-based, with (0, 0) at the top left.
type Cell struct {
	Index    int
	Row, Col int
}

// A Layout maps variable indexes to grid cells. It is derived from
// its inputs and holds no other state.
type Layout struct {
	Variant Variant

	// Count is the number of variables the layout was computed
	// for. Some may not have a cell; see Dropped.
	Count int

	Rows, Cols int
}

// Truncating returns the layout of count variables on a grid with
// cols columns, using floor division for the row count.
func Truncating(count, cols int) (Layout, error) {
	return New(TruncatingLayout, count, cols)
}

// Ceiling returns the layout of count variables on a grid with cols
// columns, using as many rows as needed to place every variable.
func Ceiling(count, cols int) (Layout, error) {
	return New(CeilingLayout, count, cols)
}

// New returns the layout of count variables on a grid with cols
// columns using variant v.
func New(v Variant, count, cols int) (Layout, error) {
	if cols <= 0 {
		return Layout{}, errors.Wrapf(ErrInvalidArgument, "columns per row must be positive, got %d", cols)
	}
	if count < 0 {
		return Layout{}, errors.Wrapf(ErrInvalidArgument, "variable count must not be negative, got %d", count)
	}
	rows := count / cols
	switch v {
	case TruncatingLayout:
	case CeilingLayout:
		if count%cols != 0 {
			rows++
		}
	default:
		return Layout{}, errors.Wrapf(ErrInvalidArgument, "unknown layout variant %d", int(v))
	}
	return Layout{Variant: v, Count: count, Rows: rows, Cols: cols}, nil
}

// CellOf returns the cell of variable index. ok is false if index is
// out of range or the layout has no cell for it.
func (l Layout) CellOf(index int) (c Cell, ok bool) {
	if index < 0 || index >= l.Count || index >= l.Rows*l.Cols {
		return Cell{}, false
	}
	return Cell{index, index / l.Cols, index % l.Cols}, true
}

// Placed returns the number of variables that have a cell.
func (l Layout) Placed() int {
	if n := l.Rows * l.Cols; n < l.Count {
		return n
	}
	return l.Count
}

// Dropped returns the number of variables that have no cell. It is
// always 0 for CeilingLayout.
func (l Layout) Dropped() int {
	return l.Count - l.Placed()
}

// Cells returns the cell of every placed variable in index order.
func (l Layout) Cells() []Cell {
	cells := make([]Cell, l.Placed())
	for i := range cells {
		cells[i], _ = l.CellOf(i)
	}
	return cells
}
