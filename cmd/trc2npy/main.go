// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command trc2npy converts LeCroy trace files to NumPy arrays.
//
// Each input file FILE.trc is converted to FILE.trc.npy: a (N,2) array
// of float64 holding the time and the calibrated value of each sample.
package main // import "github.com/go-lpc/lecroy/cmd/trc2npy"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-lpc/lecroy/internal/xcnv"
	"github.com/go-lpc/lecroy/trc"
)

func main() {
	log.SetPrefix("trc2npy: ")
	log.SetFlags(0)

	xmain(os.Args[1:])
}

func xmain(args []string) {
	var (
		fset = flag.NewFlagSet("trc2npy", flag.ExitOnError)
		nmax = fset.Int("n", -1, "maximum number of samples to convert (-1: all)")
	)

	fset.Usage = func() {
		fmt.Printf(`Usage: trc2npy [OPTIONS] file1.trc [file2.trc [...]]

ex:
 $> trc2npy -n 1000 ./C1--pulse--00000.trc

options:
`)
		fset.PrintDefaults()
	}

	err := fset.Parse(args)
	if err != nil {
		log.Fatalf("could not parse input arguments: %+v", err)
	}

	if fset.NArg() == 0 {
		fset.Usage()
		log.Fatalf("missing input trace file")
	}

	for _, fname := range fset.Args() {
		err := process(fname+".npy", fname, *nmax)
		if err != nil {
			log.Fatalf("could not convert %q: %+v", fname, err)
		}
	}
}

func process(oname, fname string, nmax int) error {
	f, err := trc.Open(fname, trc.WithLimit(nmax))
	if err != nil {
		return fmt.Errorf("could not open trace: %w", err)
	}
	defer f.Close()

	o, err := os.Create(oname)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer o.Close()

	err = xcnv.TRC2NPY(o, f)
	if err != nil {
		return fmt.Errorf("could not convert trace to npy: %w", err)
	}

	err = o.Close()
	if err != nil {
		return fmt.Errorf("could not close output file: %w", err)
	}

	return f.Close()
}
