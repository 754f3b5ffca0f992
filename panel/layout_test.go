// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLayoutScenarios(t *testing.T) {
	try := func(l Layout, err error, rows, index int, want Cell, wantOK bool) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if l.Rows != rows {
			t.Errorf("%v layout of %d/%d: want %d rows, have %d", l.Variant, l.Count, l.Cols, rows, l.Rows)
		}
		c, ok := l.CellOf(index)
		if ok != wantOK || c != want {
			t.Errorf("%v layout of %d/%d: CellOf(%d) want %v, %v; have %v, %v", l.Variant, l.Count, l.Cols, index, want, wantOK, c, ok)
		}
	}

	l, err := Truncating(10, 2)
	try(l, err, 5, 7, Cell{7, 3, 1}, true)
	l, err = Ceiling(10, 2)
	try(l, err, 5, 7, Cell{7, 3, 1}, true)

	l, err = Truncating(11, 2)
	try(l, err, 5, 10, Cell{}, false)
	l, err = Ceiling(11, 2)
	try(l, err, 6, 10, Cell{10, 5, 0}, true)

	l, err = Truncating(1, 2)
	try(l, err, 0, 0, Cell{}, false)
	l, err = Ceiling(0, 3)
	try(l, err, 0, 0, Cell{}, false)
	l, err = Ceiling(3, 1)
	try(l, err, 3, 2, Cell{2, 2, 0}, true)
}

func TestLayoutInvalid(t *testing.T) {
	for _, tc := range []struct{ count, cols int }{
		{1, 0}, {1, -1}, {-1, 2}, {0, 0},
	} {
		for _, v := range []Variant{TruncatingLayout, CeilingLayout} {
			_, err := New(v, tc.count, tc.cols)
			if err == nil {
				t.Errorf("%v layout of %d/%d: want error, got nil", v, tc.count, tc.cols)
				continue
			}
			if errors.Cause(err) != ErrInvalidArgument {
				t.Errorf("%v layout of %d/%d: want ErrInvalidArgument, got %v", v, tc.count, tc.cols, err)
			}
		}
	}
	if _, err := New(Variant(7), 1, 1); errors.Cause(err) != ErrInvalidArgument {
		t.Errorf("unknown variant: want ErrInvalidArgument, got %v", err)
	}
}

func TestLayoutProperties(t *testing.T) {
	for count := 0; count <= 25; count++ {
		for cols := 1; cols <= 6; cols++ {
			tl, err := Truncating(count, cols)
			if err != nil {
				t.Fatal(err)
			}
			if tl.Rows*tl.Cols > count {
				t.Errorf("truncating %d/%d: rows*cols = %d > count", count, cols, tl.Rows*tl.Cols)
			}
			if tl.Placed()+tl.Dropped() != count || tl.Dropped() >= cols {
				t.Errorf("truncating %d/%d: placed %d, dropped %d", count, cols, tl.Placed(), tl.Dropped())
			}

			cl, err := Ceiling(count, cols)
			if err != nil {
				t.Fatal(err)
			}
			if cl.Dropped() != 0 {
				t.Errorf("ceiling %d/%d: dropped %d", count, cols, cl.Dropped())
			}
			if cl.Rows*cols < count || (cl.Rows-1)*cols >= count && count > 0 {
				t.Errorf("ceiling %d/%d: %d rows is not the ceiling", count, cols, cl.Rows)
			}

			for _, l := range []Layout{tl, cl} {
				lastRow := -1
				for i := 0; i < count; i++ {
					c, ok := l.CellOf(i)
					if !ok {
						if i < l.Placed() {
							t.Errorf("%v %d/%d: index %d has no cell", l.Variant, count, cols, i)
						}
						continue
					}
					if c.Row >= l.Rows || c.Col != i%cols || c.Index != i {
						t.Errorf("%v %d/%d: bad cell %+v for index %d", l.Variant, count, cols, c, i)
					}
					if i%cols == 0 && c.Row <= lastRow {
						t.Errorf("%v %d/%d: row did not advance at index %d", l.Variant, count, cols, i)
					}
					lastRow = c.Row
				}
				if cells := l.Cells(); len(cells) != l.Placed() {
					t.Errorf("%v %d/%d: %d cells, want %d", l.Variant, count, cols, len(cells), l.Placed())
				}
			}
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{TruncatingLayout, CeilingLayout} {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseVariant("floor"); errors.Cause(err) != ErrInvalidArgument {
		t.Errorf("ParseVariant(\"floor\"): want ErrInvalidArgument, got %v", err)
	}
}
