// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcnv

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-lpc/lecroy/trc"
	"go-hep.org/x/hep/csvutil"
)

// TRC2CSV writes the (time, value) samples of f to the named CSV file.
//
// The samples are preceded by the metadata of the trace, as key-sorted
// JSON with every line commented out with '#'.
func TRC2CSV(oname string, f *trc.File) error {
	ts, err := f.Time()
	if err != nil {
		return fmt.Errorf("could not compute time vector: %w", err)
	}
	vs, err := f.Samples()
	if err != nil {
		return fmt.Errorf("could not decode samples: %w", err)
	}

	hdr, err := CSVHeader(f.Metadata())
	if err != nil {
		return fmt.Errorf("could not build CSV header: %w", err)
	}

	tbl, err := csvutil.Create(oname)
	if err != nil {
		return fmt.Errorf("could not create CSV file %q: %w", oname, err)
	}
	defer tbl.Close()

	err = tbl.WriteHeader(hdr)
	if err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for i := range ts {
		err = tbl.WriteRow(ts[i], vs[i])
		if err != nil {
			return fmt.Errorf("could not write CSV row %d: %w", i, err)
		}
	}

	err = tbl.Close()
	if err != nil {
		return fmt.Errorf("could not close CSV file %q: %w", oname, err)
	}

	return nil
}

// CSVHeader formats metadata as a commented block of key-sorted JSON,
// tagged with the exporter and author.
func CSVHeader(md trc.Metadata) (string, error) {
	meta := md.Strings()
	meta["EXPORTER"] = Exporter
	meta["AUTHOR"] = Author

	raw, err := json.MarshalIndent(meta, "", " ")
	if err != nil {
		return "", fmt.Errorf("could not marshal metadata: %w", err)
	}

	var o strings.Builder
	for _, line := range strings.Split(string(raw), "\n") {
		o.WriteString("# ")
		o.WriteString(line)
		o.WriteString("\n")
	}
	return o.String(), nil
}
