// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"time"

	"github.com/aclements/go-gg/table"
)

// Table returns d as a gg table. Numeric columns become []float64,
// categorical columns []string, and temporal columns a sortable slice
// of time.Time.
func (d *Dataset) Table() *table.Table {
	return d.TableOf(d.Names()...)
}

// TableOf returns the named columns of d as a gg table. Unknown
// column names are skipped.
func (d *Dataset) TableOf(names ...string) *table.Table {
	tab := new(table.Builder)
	for _, name := range names {
		c, ok := d.Column(name)
		if !ok {
			continue
		}
		switch c.Kind {
		case Numeric:
			xs, _ := d.Float(name)
			tab.Add(name, xs)
		case Categorical:
			ss, _ := d.Strings(name)
			tab.Add(name, ss)
		case Temporal:
			ts, _ := d.Times(name)
			tab.Add(name, byTime(ts))
		}
	}
	return tab.Done()
}

type byTime []time.Time

func (s byTime) Len() int {
	return len(s)
}

func (s byTime) Less(i, j int) bool {
	return s[i].Before(s[j])
}

func (s byTime) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
