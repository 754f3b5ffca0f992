// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"time"

	"github.com/edaviz/edaviz/panel"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
)

// stringList is a repeatable flag. Empty values are accepted but not
// recorded, so "-time=" selects no columns at all.
type stringList struct {
	list []string
	set  bool
}

func (x *stringList) String() string {
	s := ""
	for i, s1 := range x.list {
		if i != 0 {
			s += ","
		}
		s += s1
	}
	return s
}

func (x *stringList) Set(s string) error {
	x.set = true
	if s != "" {
		x.list = append(x.list, s)
	}
	return nil
}

// values returns the flag's values, or nil if it was never set.
func (x *stringList) values() []string {
	if !x.set {
		return nil
	}
	return append([]string{}, x.list...)
}

// withEnvFlags prepends the shell-quoted flags in env to args.
func withEnvFlags(env string, args []string) ([]string, error) {
	extra, err := shellquote.Split(env)
	if err != nil {
		return nil, errors.Wrap(err, "parsing $EDAPLOT_FLAGS")
	}
	return append(extra, args...), nil
}

// checkColumns rejects a non-positive number of charts per row.
func checkColumns(n int) error {
	if n <= 0 {
		return errors.Wrapf(panel.ErrInvalidArgument, "-cols must be positive, got %d", n)
	}
	return nil
}

// seedFor returns seed if the -seed flag was set on fs, and a
// time-based seed otherwise.
func seedFor(fs *flag.FlagSet, seed int64) int64 {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	if set {
		return seed
	}
	return time.Now().UnixNano()
}
