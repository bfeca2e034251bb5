// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// trc-dump decodes and displays the descriptor of LeCroy trace files.
//
// Usage: trc-dump [OPTIONS] FILE1 [FILE2 [FILE3 ...]]
//
// Example:
//
//	$> trc-dump -stats ./testdata/C1--pulse--00000.trc
//	=== C1--pulse--00000.trc ===
//	WAVEDESC               0
//	BYTE_ORDER             LOFIRST
//	WAVE_DESCRIPTOR_SIZE   346
//	USER_TEXT_SIZE         0
//	TRIGTIME_ARRAY_SIZE    0
//	WAVE_ARRAY_1_SIZE      20004
//	SAMPLES                10002
//	TEMPLATE_NAME          LECROY_2_3
//	[...]
//	STATS.MEAN             -0.0012
package main // import "github.com/go-lpc/lecroy/cmd/trc-dump"

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-lpc/lecroy"
	"github.com/go-lpc/lecroy/trc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	xmain(os.Stdout, os.Args[1:])
}

func xmain(w io.Writer, args []string) {
	log.SetPrefix("trc-dump: ")
	log.SetFlags(0)

	var (
		fset  = flag.NewFlagSet("trc-dump", flag.ExitOnError)
		stats = fset.Bool("stats", false, "display statistics of the calibrated samples")
		vers  = fset.Bool("version", false, "display version and exit")
	)

	fset.Usage = func() {
		fmt.Printf(`trc-dump decodes and displays the descriptor of LeCroy trace files.

Usage: trc-dump [OPTIONS] FILE1 [FILE2 [FILE3 ...]]

Example:

 $> trc-dump -stats ./testdata/C1--pulse--00000.trc

options:
`)
		fset.PrintDefaults()
	}

	err := fset.Parse(args)
	if err != nil {
		log.Fatalf("could not parse input arguments: %+v", err)
	}

	if *vers {
		v, sum := lecroy.Version()
		fmt.Fprintf(w, "trc-dump version=%q sum=%q\n", v, sum)
		return
	}

	if fset.NArg() == 0 {
		fset.Usage()
		log.Fatalf("missing path to input trace file")
	}

	for _, fname := range fset.Args() {
		err := process(w, fname, *stats)
		if err != nil {
			log.Fatalf("could not dump file %q: %+v", fname, err)
		}
	}
}

func process(w io.Writer, fname string, stats bool) error {
	wbuf := bufio.NewWriter(w)
	defer wbuf.Flush()

	f, err := trc.Open(fname)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", fname, err)
	}
	defer f.Close()

	n, err := f.NumSamples()
	if err != nil {
		return fmt.Errorf("could not compute number of samples: %w", err)
	}

	fmt.Fprintf(wbuf, "=== %s ===\n", filepath.Base(fname))
	fmt.Fprintf(wbuf, "%-22s %d\n", "WAVEDESC", f.Offset)
	fmt.Fprintf(wbuf, "%-22s %v\n", "BYTE_ORDER", f.CommOrder)
	fmt.Fprintf(wbuf, "%-22s %d\n", "WAVE_DESCRIPTOR_SIZE", f.DescriptorSize)
	fmt.Fprintf(wbuf, "%-22s %d\n", "USER_TEXT_SIZE", f.UserTextSize)
	fmt.Fprintf(wbuf, "%-22s %d\n", "TRIGTIME_ARRAY_SIZE", f.TrigTimeArraySize)
	fmt.Fprintf(wbuf, "%-22s %d\n", "WAVE_ARRAY_1_SIZE", f.WaveArraySize)
	fmt.Fprintf(wbuf, "%-22s %d\n", "SAMPLES", n)

	for _, field := range f.Metadata() {
		fmt.Fprintf(wbuf, "%-22s %s\n", field.Name, field)
	}

	if !stats || n == 0 {
		return nil
	}

	vs, err := f.Samples()
	if err != nil {
		return fmt.Errorf("could not decode samples: %w", err)
	}

	mean, std := stat.MeanStdDev(vs, nil)
	fmt.Fprintf(wbuf, "%-22s %g\n", "STATS.MIN", floats.Min(vs))
	fmt.Fprintf(wbuf, "%-22s %g\n", "STATS.MAX", floats.Max(vs))
	fmt.Fprintf(wbuf, "%-22s %g\n", "STATS.MEAN", mean)
	fmt.Fprintf(wbuf, "%-22s %g\n", "STATS.STDDEV", std)

	return nil
}
