// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edaplot draws exploratory charts of a CSV dataset.
//
// Usage:
//
//	edaplot [flags] kind file [columns...]
//
// kind is one of
//
//	bar     count the categories of a column
//	hist    histogram of a numeric column
//	panel   grid of histograms, one per numeric column
//	corr    correlation triangle of numeric columns
//	box     grid of box plots, one per numeric column
//	table   print the loaded columns as a table
//	swatch  write the style's palette as a PNG (takes no file)
//
// file is read from the -data directory. If no columns are given,
// bar uses the first categorical column and the other kinds use every
// numeric column.
//
// Flags in $EDAPLOT_FLAGS are parsed before the command line.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/edaviz/edaviz/dataset"
	"github.com/edaviz/edaviz/panel"
	"github.com/edaviz/edaviz/viz"
	"github.com/pkg/errors"
)

const swatchCell, swatchHeight = 40, 40

// config is the parsed command line.
type config struct {
	kind   string
	file   string
	cols   []string
	data   dataset.Options
	title  string
	panel  viz.PanelOptions
	layout string
	style  viz.Style
}

func main() {
	log.SetPrefix("edaplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagData       = flag.String("data", dataset.DefaultDir, "read input files from `dir`")
		flagDropNA     = flag.Bool("dropna", false, "drop rows with missing values")
		flagStyle      = flag.String("style", "", "read YAML style from `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagCols       = flag.Int("cols", 2, "draw `n` charts per panel row")
		flagLayout     = flag.String("layout", "", "panel layout: truncating or ceiling (default: truncating for panel, ceiling for box)")
		flagColor      = flag.String("color", "random", "panel colors: sequential or random")
		flagSeed       = flag.Int64("seed", 0, "seed for random colors (default: time-based)")
		flagCut        = flag.Bool("cut", false, "cut off histograms at the 95th percentile")
		flagTitle      = flag.String("title", "", "chart title")
		flagTime       stringList
	)
	flag.Var(&flagTime, "time", "parse `column` as timestamps; may be repeated (default: "+strings.Join(dataset.DefaultTimeColumns, ", ")+")")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] kind file [columns...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nkind is one of bar, hist, panel, corr, box, table, swatch.\n\n")
		flag.PrintDefaults()
	}
	args, err := withEnvFlags(os.Getenv("EDAPLOT_FLAGS"), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	flag.CommandLine.Parse(args)

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg := config{
		kind:   flag.Arg(0),
		title:  *flagTitle,
		layout: *flagLayout,
		data: dataset.Options{
			Dir:         *flagData,
			DropNA:      *flagDropNA,
			TimeColumns: flagTime.values(),
		},
		panel: viz.PanelOptions{
			Title:   *flagTitle,
			Columns: *flagCols,
			Cut:     *flagCut,
		},
	}
	if cfg.kind != "swatch" {
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		cfg.file, cfg.cols = flag.Arg(1), flag.Args()[2:]
	}

	if err := checkColumns(*flagCols); err != nil {
		log.Fatal(err)
	}
	if cfg.panel.Color, err = panel.ParseColorMode(*flagColor); err != nil {
		log.Fatal(err)
	}
	cfg.panel.Rand = rand.New(rand.NewSource(seedFor(flag.CommandLine, *flagSeed)))

	cfg.style = viz.DefaultStyle()
	if *flagStyle != "" {
		if cfg.style, err = viz.LoadStyleFile(*flagStyle); err != nil {
			log.Fatal(err)
		}
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if err := run(f, &cfg); err != nil {
		log.Fatal(err)
	}
}

// run draws the chart described by cfg to w.
func run(w io.Writer, cfg *config) error {
	if cfg.kind == "swatch" {
		return png.Encode(w, panel.Swatch(cfg.style.Palette, swatchCell, swatchHeight))
	}

	ds, err := dataset.Open(cfg.file, cfg.data)
	if err != nil {
		return err
	}

	var fig *viz.Figure
	switch cfg.kind {
	default:
		return errors.Errorf("unknown kind %q", cfg.kind)

	case "table":
		cols := cfg.cols
		if len(cols) == 0 {
			cols = ds.Names()
		}
		table.Fprint(w, ds.TableOf(cols...))
		return nil

	case "bar":
		col, err := firstColumn(ds, cfg.cols, dataset.Categorical)
		if err != nil {
			return err
		}
		fig, err = viz.BarPlot(ds, viz.BarOptions{
			Column: col,
			Title:  cfg.title,
			XLabel: strings.Title(col),
			YLabel: "Count",
		}, cfg.style)
		if err != nil {
			return err
		}

	case "hist":
		col, err := firstColumn(ds, cfg.cols, dataset.Numeric)
		if err != nil {
			return err
		}
		colors := &panel.Assigner{Palette: cfg.style.Palette, Mode: cfg.panel.Color, Rand: cfg.panel.Rand}
		fig, err = viz.HistPlot(ds, col, colors.ColorFor(0), cfg.panel.Cut, cfg.style)
		if err != nil {
			return err
		}
		fig.Title = cfg.title

	case "panel", "box":
		opts := cfg.panel
		def := viz.DefaultHistPanelOptions()
		if cfg.kind == "box" {
			def = viz.DefaultBoxPanelOptions()
		}
		opts.Layout = def.Layout
		if cfg.layout != "" {
			if opts.Layout, err = panel.ParseVariant(cfg.layout); err != nil {
				return err
			}
		}
		cols := numericColumns(ds, cfg.cols)
		if cfg.kind == "box" {
			fig, err = viz.BoxPanel(ds, cols, opts, cfg.style)
		} else {
			fig, err = viz.HistPanel(ds, cols, opts, cfg.style)
		}
		if err != nil {
			return err
		}

	case "corr":
		fig, err = viz.CorrTriangle(ds, numericColumns(ds, cfg.cols), viz.CorrOptions{Title: cfg.title}, cfg.style)
		if err != nil {
			return err
		}
	}
	return fig.WriteSVG(w)
}

// firstColumn returns cols[0], or the first column of ds of the given
// kind if cols is empty.
func firstColumn(ds *dataset.Dataset, cols []string, kind dataset.Kind) (string, error) {
	if len(cols) > 0 {
		return cols[0], nil
	}
	names := ds.Names(kind)
	if len(names) == 0 {
		return "", errors.Errorf("no %s columns", kind)
	}
	return names[0], nil
}

// numericColumns returns cols, or every numeric column of ds if cols
// is empty.
func numericColumns(ds *dataset.Dataset, cols []string) []string {
	if len(cols) > 0 {
		return cols
	}
	return ds.Numeric()
}
