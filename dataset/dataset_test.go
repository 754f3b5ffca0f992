// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const projects = `school,grade,price,students,date_posted,datefullyfunded
A,Grades PreK-2,100.5,20,2012-01-02,2012-02-01
B,Grades 3-5,200,,2012-03-04,2012-03-20
C,,50.25,31,2012-05-06,2012-07-01
D,Grades 3-5,75,12,2013-01-10,
E,Grades 6-8,300,44,2013-02-11,2013-03-01
`

func load(t *testing.T, opts Options) *Dataset {
	t.Helper()
	ds, err := Load(strings.NewReader(projects), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ds
}

func TestLoadKinds(t *testing.T) {
	ds := load(t, Options{})
	if ds.Len() != 5 {
		t.Errorf("want 5 rows, got %d", ds.Len())
	}
	want := map[string]Kind{
		"school":          Categorical,
		"grade":           Categorical,
		"price":           Numeric,
		"students":        Numeric,
		"date_posted":     Temporal,
		"datefullyfunded": Temporal,
	}
	for _, c := range ds.Columns() {
		if want[c.Name] != c.Kind {
			t.Errorf("column %q: want %v, got %v", c.Name, want[c.Name], c.Kind)
		}
	}
	if got, want := ds.Numeric(), []string{"price", "students"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Numeric() = %v, want %v", got, want)
	}
	if got, want := ds.Names(Categorical), []string{"school", "grade"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names(Categorical) = %v, want %v", got, want)
	}
}

func TestLoadValues(t *testing.T) {
	ds := load(t, Options{})

	price, err := ds.Float("price")
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{100.5, 200, 50.25, 75, 300}; !reflect.DeepEqual(price, want) {
		t.Errorf("price = %v, want %v", price, want)
	}

	students, err := ds.Float("students")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(students[1]) || students[0] != 20 {
		t.Errorf("students = %v, want NaN at 1", students)
	}

	grade, err := ds.Strings("grade")
	if err != nil {
		t.Fatal(err)
	}
	if grade[2] != "" || grade[0] != "Grades PreK-2" {
		t.Errorf("grade = %q", grade)
	}

	posted, err := ds.Times("date_posted")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2012, 3, 4, 0, 0, 0, 0, time.UTC); !posted[1].Equal(want) {
		t.Errorf("date_posted[1] = %v, want %v", posted[1], want)
	}
	funded, err := ds.Times("datefullyfunded")
	if err != nil {
		t.Fatal(err)
	}
	if !funded[3].IsZero() {
		t.Errorf("datefullyfunded[3] = %v, want zero", funded[3])
	}
	if c, _ := ds.Column("date_posted"); c.Layout != "2006-01-02" {
		t.Errorf("date_posted layout = %q", c.Layout)
	}
}

func TestDropNA(t *testing.T) {
	ds := load(t, Options{DropNA: true})
	if ds.Len() != 2 {
		t.Fatalf("want 2 complete rows, got %d", ds.Len())
	}
	school, _ := ds.Strings("school")
	if want := []string{"A", "E"}; !reflect.DeepEqual(school, want) {
		t.Errorf("school = %v, want %v", school, want)
	}
	funded, _ := ds.Times("datefullyfunded")
	if len(funded) != 2 || funded[1].Year() != 2013 {
		t.Errorf("datefullyfunded = %v", funded)
	}
}

func TestLoadErrors(t *testing.T) {
	try := func(data string, opts Options) {
		t.Helper()
		if _, err := Load(strings.NewReader(data), opts); err == nil {
			t.Errorf("want error loading %q with %+v", data, opts)
		}
	}
	try("a,b\n1,2\n", Options{})
	try("a,b\n1,x\n", Options{TimeColumns: []string{"b"}})
	try("a,b\n1,\n", Options{TimeColumns: []string{}, DropNA: true})

	if _, err := Load(strings.NewReader("a,b\n1,2\n"), Options{TimeColumns: []string{}}); err != nil {
		t.Errorf("want no error without time columns, got %v", err)
	}
}

func TestAccessorKinds(t *testing.T) {
	ds := load(t, Options{})
	if _, err := ds.Float("school"); err == nil {
		t.Error("Float of categorical column: want error")
	}
	if _, err := ds.Times("price"); err == nil {
		t.Error("Times of numeric column: want error")
	}
	if _, err := ds.Strings("nope"); err == nil {
		t.Error("Strings of unknown column: want error")
	}
	if ss, err := ds.Strings("price"); err != nil || len(ss) != 5 {
		t.Errorf("Strings(price) = %v, %v", ss, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "projects.csv"), []byte(projects), 0666); err != nil {
		t.Fatal(err)
	}
	ds, err := Open("projects.csv", Options{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 5 {
		t.Errorf("want 5 rows, got %d", ds.Len())
	}
	if _, err := Open("missing.csv", Options{Dir: dir}); !os.IsNotExist(err) {
		t.Errorf("want not-exist error, got %v", err)
	}
}

func TestTable(t *testing.T) {
	ds := load(t, Options{})
	tab := ds.Table()
	if got, want := tab.Columns(), ds.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	if _, ok := tab.MustColumn("price").([]float64); !ok {
		t.Errorf("price column is %T", tab.MustColumn("price"))
	}
	if _, ok := tab.MustColumn("date_posted").(byTime); !ok {
		t.Errorf("date_posted column is %T", tab.MustColumn("date_posted"))
	}
	if tab := ds.TableOf("price", "nope"); !reflect.DeepEqual(tab.Columns(), []string{"price"}) {
		t.Errorf("TableOf columns = %v", tab.Columns())
	}
}
