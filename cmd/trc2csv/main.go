// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command trc2csv converts LeCroy trace files to CSV files.
//
// Each input file FILE.trc is converted to FILE.trc.csv, next to it.
// A file that fails to convert is reported and does not stop the others.
//
// -csv and -trigtime are independent: "trc2csv -csv=false -trigtime"
// only prints the trigger time of each trace.
package main // import "github.com/go-lpc/lecroy/cmd/trc2csv"

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/go-lpc/lecroy/internal/xcnv"
	"github.com/go-lpc/lecroy/trc"
	"github.com/sbinet/pmon"
	"golang.org/x/sync/errgroup"
)

var (
	msg = log.New(os.Stdout, "trc2csv: ", 0)
)

func main() {
	os.Exit(xmain(os.Stdout, os.Args[1:]))
}

func xmain(w io.Writer, args []string) int {
	var (
		fset  = flag.NewFlagSet("trc2csv", flag.ExitOnError)
		nmax  = fset.Int("n", -1, "maximum number of samples to convert (-1: all)")
		njobs = fset.Int("j", runtime.NumCPU(), "number of files converted concurrently")
		csv   = fset.Bool("csv", true, "write a CSV file for each trace")
		trig  = fset.Bool("trigtime", false, "print the trigger time of each trace")
		mon   = fset.String("pmon", "", "path to a pmon log file (empty: no monitoring)")
		freq  = fset.Duration("freq", 1*time.Second, "pmon frequency")
	)

	fset.Usage = func() {
		fmt.Printf(`Usage: trc2csv [OPTIONS] file1.trc [file2.trc [...]]

ex:
 $> trc2csv -n 1000 -j 4 ./C1--pulse--*.trc

options:
`)
		fset.PrintDefaults()
	}

	err := fset.Parse(args)
	if err != nil {
		msg.Printf("could not parse input arguments: %+v", err)
		return 2
	}

	if fset.NArg() == 0 {
		fset.Usage()
		msg.Printf("missing input trace file")
		return 2
	}

	if *mon != "" {
		stop, err := monitor(*mon, *freq)
		if err != nil {
			msg.Printf("could not start monitoring: %+v", err)
			return 1
		}
		defer stop()
	}

	nerr := run(w, fset.Args(), *nmax, *njobs, *csv, *trig)
	if nerr > 0 {
		msg.Printf("could not convert %d/%d file(s)", nerr, fset.NArg())
		return 1
	}

	return 0
}

// run processes all fnames, at most njobs at a time, and returns the
// number of files that failed.
func run(w io.Writer, fnames []string, nmax, njobs int, csv, trig bool) int {
	if njobs < 1 {
		njobs = 1
	}

	var (
		grp  errgroup.Group
		mu   sync.Mutex
		nerr int
	)
	grp.SetLimit(njobs)

	for _, fname := range fnames {
		fname := fname
		grp.Go(func() error {
			oname := ""
			if csv {
				oname = fname + ".csv"
			}
			ts, err := process(oname, fname, nmax)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				msg.Printf("could not convert %q: %+v", fname, err)
				nerr++
				return nil
			}
			if trig {
				fmt.Fprintf(w, "%s: %s\n", fname, trc.Field{Value: ts})
			}
			return nil
		})
	}
	_ = grp.Wait()

	return nerr
}

// process decodes the named trace and, unless oname is empty, writes it
// to the oname CSV file.
func process(oname, fname string, nmax int) (time.Time, error) {
	f, err := trc.Open(fname, trc.WithLimit(nmax))
	if err != nil {
		return time.Time{}, fmt.Errorf("could not open trace: %w", err)
	}
	defer f.Close()

	if oname != "" {
		err = xcnv.TRC2CSV(oname, f)
		if err != nil {
			return time.Time{}, fmt.Errorf("could not convert trace to CSV: %w", err)
		}
	}

	err = f.Close()
	if err != nil {
		return time.Time{}, fmt.Errorf("could not close trace: %w", err)
	}

	return f.TrigTime, nil
}

func monitor(fname string, freq time.Duration) (func(), error) {
	p, err := pmon.Monitor(os.Getpid())
	if err != nil {
		return nil, fmt.Errorf("could not monitor pid=%d: %w", os.Getpid(), err)
	}

	f, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("could not create pmon log file: %w", err)
	}
	p.W = f
	p.Freq = freq

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := p.Run()
		if err != nil {
			msg.Printf("could not run monitoring: %+v", err)
		}
	}()

	// the log is closed only once Run has written its last record.
	return func() {
		err := p.Kill()
		if err != nil {
			msg.Printf("could not stop monitoring: %+v", err)
		}
		<-done
		err = f.Close()
		if err != nil {
			msg.Printf("could not close pmon log file: %+v", err)
		}
	}, nil
}
