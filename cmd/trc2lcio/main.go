// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command trc2lcio converts LeCroy trace files to an LCIO one.
package main // import "github.com/go-lpc/lecroy/cmd/trc2lcio"

import (
	"compress/flate"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-lpc/lecroy/internal/xcnv"
	"github.com/go-lpc/lecroy/trc"
	"go-hep.org/x/hep/lcio"
)

var (
	msg = log.New(os.Stdout, "trc2lcio: ", 0)
)

func main() {
	var (
		oname = flag.String("o", "out.lcio", "path to output LCIO file")
		compr = flag.Int("lvl", flate.DefaultCompression, "compression level for output LCIO file")
		run   = flag.Int("run", -1, "run number (-1: inferred from the first trace file name)")
		nmax  = flag.Int("n", -1, "maximum number of samples per trace (-1: all)")
	)

	flag.Usage = func() {
		fmt.Printf(`Usage: trc2lcio [OPTIONS] file1.trc [file2.trc [...]]

ex:
 $> trc2lcio -o out.lcio -lvl=9 ./C1--pulse--00000.trc ./C1--pulse--00001.trc

options:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		msg.Fatalf("missing input trace file")
	}

	if *oname == "" {
		flag.Usage()
		msg.Fatalf("invalid output LCIO file name")
	}

	err := process(*oname, *compr, int32(*run), *nmax, flag.Args())
	if err != nil {
		msg.Fatalf("could not convert trace files: %+v", err)
	}
}

func process(oname string, lvl int, run int32, nmax int, fnames []string) error {
	if run < 0 {
		v, err := seqNbrFrom(fnames[0])
		if err != nil {
			return fmt.Errorf("could not infer run from %q: %w", fnames[0], err)
		}
		run = v
	}

	w, err := lcio.Create(oname)
	if err != nil {
		return fmt.Errorf("could not create output LCIO file: %w", err)
	}
	defer w.Close()

	w.SetCompressionLevel(lvl)

	err = xcnv.TRC2LCIO(w, fnames, run, msg, trc.WithLimit(nmax))
	if err != nil {
		return fmt.Errorf("could not convert traces to LCIO: %w", err)
	}

	err = w.Close()
	if err != nil {
		return fmt.Errorf("could not close output LCIO file: %w", err)
	}

	return nil
}

// seqNbrFrom extracts the sequence number of a trace file named after
// the scope convention "C1--label--00042.trc".
func seqNbrFrom(fname string) (int32, error) {
	name := strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	i := strings.LastIndex(name, "--")
	if i < 0 {
		return 0, fmt.Errorf("no sequence number in %q", name)
	}
	v, err := strconv.ParseInt(name[i+2:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence number in %q: %w", name, err)
	}
	return int32(v), nil
}
