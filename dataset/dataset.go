// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads a delimited tabular file into an immutable,
// typed set of named columns.
//
// Every column is numeric, categorical, or temporal. Temporal columns
// are named by the caller and parsed into time.Time; the kinds of the
// remaining columns are detected from their contents.
package dataset

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Kind is the semantic type of a column.
type Kind int

const (
	Numeric Kind = iota
	Categorical
	Temporal
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Temporal:
		return "temporal"
	}
	return "Kind(?)"
}

// DefaultDir is the directory Open reads from if Options.Dir is "".
const DefaultDir = "../data/"

// DefaultTimeColumns are the columns parsed as timestamps if
// Options.TimeColumns is nil.
var DefaultTimeColumns = []string{"date_posted", "datefullyfunded"}

// DefaultTimeLayouts are tried in order for each temporal column.
var DefaultTimeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
}

// MissingValues are the cell values treated as missing.
var MissingValues = []string{"", "NA", "NaN", "<nil>"}

// Options control how a dataset is loaded.
type Options struct {
	// Dir is prepended to the file name passed to Open. If it is
	// "", DefaultDir is used.
	Dir string

	// DropNA drops every row that has a missing value in any
	// column.
	DropNA bool

	// TimeColumns names the columns to parse as timestamps. If
	// nil, DefaultTimeColumns is used. Use an empty, non-nil
	// slice to parse no columns.
	TimeColumns []string

	// TimeLayouts are the time.Parse layouts to try. If nil,
	// DefaultTimeLayouts is used.
	TimeLayouts []string
}

// A Column describes one column of a Dataset.
type Column struct {
	Name string
	Kind Kind

	// Layout is the time layout a Temporal column was parsed
	// with.
	Layout string
}

// A Dataset is an ordered collection of named, typed columns. It is
// not modified after it is loaded.
type Dataset struct {
	df    dataframe.DataFrame
	cols  []Column
	index map[string]int
	times map[string][]time.Time
}

// Open loads the file name from opts.Dir.
func Open(name string, opts Options) (*Dataset, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := Load(f, opts)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return ds, nil
}

// Load reads a comma-separated table with a header row from r.
func Load(r io.Reader, opts Options) (*Dataset, error) {
	timeCols := opts.TimeColumns
	if timeCols == nil {
		timeCols = DefaultTimeColumns
	}
	layouts := opts.TimeLayouts
	if layouts == nil {
		layouts = DefaultTimeLayouts
	}

	// Read timestamp columns as strings so type detection doesn't
	// turn, say, "20160102" into an integer.
	types := make(map[string]series.Type)
	for _, name := range timeCols {
		types[name] = series.String
	}
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingValues),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "reading table")
	}

	if opts.DropNA {
		var err error
		df, err = dropNA(df)
		if err != nil {
			return nil, err
		}
	}

	ds := &Dataset{
		df:    df,
		index: make(map[string]int),
		times: make(map[string][]time.Time),
	}
	for i, name := range df.Names() {
		kind := Numeric
		switch df.Col(name).Type() {
		case series.String, series.Bool:
			kind = Categorical
		}
		ds.cols = append(ds.cols, Column{Name: name, Kind: kind})
		ds.index[name] = i
	}

	for _, name := range timeCols {
		i, ok := ds.index[name]
		if !ok {
			return nil, errors.Errorf("time column %q not found", name)
		}
		ts, layout, err := parseTimes(df.Col(name), layouts)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", name)
		}
		ds.cols[i].Kind = Temporal
		ds.cols[i].Layout = layout
		ds.times[name] = ts
	}
	return ds, nil
}

// dropNA returns the rows of df that have no missing values.
func dropNA(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	keep := make([]bool, df.Nrow())
	for i := range keep {
		keep[i] = true
	}
	for _, name := range df.Names() {
		for i, nan := range df.Col(name).IsNaN() {
			if nan {
				keep[i] = false
			}
		}
	}
	var rows []int
	for i, k := range keep {
		if k {
			rows = append(rows, i)
		}
	}
	if len(rows) == df.Nrow() {
		return df, nil
	}
	if len(rows) == 0 {
		return df, errors.New("every row has a missing value")
	}
	df = df.Subset(rows)
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "dropping missing rows")
	}
	return df, nil
}

// parseTimes parses every non-missing value of s with the first layout
// that accepts all of them. Missing values become the zero Time.
func parseTimes(s series.Series, layouts []string) ([]time.Time, string, error) {
	recs, nans := s.Records(), s.IsNaN()
	var first error
	for _, layout := range layouts {
		ts := make([]time.Time, len(recs))
		var err error
		for i, rec := range recs {
			if nans[i] {
				continue
			}
			if ts[i], err = time.Parse(layout, rec); err != nil {
				break
			}
		}
		if err == nil {
			return ts, layout, nil
		}
		if first == nil {
			first = err
		}
	}
	if first == nil {
		return nil, "", errors.New("no time layouts")
	}
	return nil, "", first
}

// Len returns the number of rows in d.
func (d *Dataset) Len() int {
	return d.df.Nrow()
}

// Columns returns the columns of d in order.
func (d *Dataset) Columns() []Column {
	return append([]Column(nil), d.cols...)
}

// Column returns the column called name.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.cols[i], true
}

// Names returns the names of the columns of the given kinds, or of all
// columns if no kinds are given.
func (d *Dataset) Names(kinds ...Kind) []string {
	var names []string
	for _, c := range d.cols {
		if len(kinds) == 0 {
			names = append(names, c.Name)
			continue
		}
		for _, k := range kinds {
			if c.Kind == k {
				names = append(names, c.Name)
				break
			}
		}
	}
	return names
}

// Numeric returns the names of the numeric columns of d.
func (d *Dataset) Numeric() []string {
	return d.Names(Numeric)
}

func (d *Dataset) lookup(name string, kinds ...Kind) (Column, error) {
	c, ok := d.Column(name)
	if !ok {
		return c, errors.Errorf("unknown column %q", name)
	}
	for _, k := range kinds {
		if c.Kind == k {
			return c, nil
		}
	}
	return c, errors.Errorf("column %q is %s", name, c.Kind)
}

// Float returns the values of numeric column name. Missing values are
// NaN.
func (d *Dataset) Float(name string) ([]float64, error) {
	if _, err := d.lookup(name, Numeric); err != nil {
		return nil, err
	}
	s := d.df.Col(name)
	xs := s.Float()
	for i, nan := range s.IsNaN() {
		if nan {
			xs[i] = math.NaN()
		}
	}
	return xs, nil
}

// Strings returns the values of column name as they appeared in the
// input, for numeric or categorical columns. Missing values are "".
func (d *Dataset) Strings(name string) ([]string, error) {
	if _, err := d.lookup(name, Numeric, Categorical); err != nil {
		return nil, err
	}
	s := d.df.Col(name)
	recs := s.Records()
	for i, nan := range s.IsNaN() {
		if nan {
			recs[i] = ""
		}
	}
	return recs, nil
}

// Times returns the values of temporal column name. Missing values
// are the zero Time.
func (d *Dataset) Times(name string) ([]time.Time, error) {
	if _, err := d.lookup(name, Temporal); err != nil {
		return nil, err
	}
	return append([]time.Time(nil), d.times[name]...), nil
}
