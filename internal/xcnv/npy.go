// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcnv

import (
	"fmt"
	"io"

	"github.com/go-lpc/lecroy/trc"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Matrix returns the n×2 matrix of (time, value) samples of f.
func Matrix(f *trc.File) (*mat.Dense, error) {
	ts, err := f.Time()
	if err != nil {
		return nil, fmt.Errorf("could not compute time vector: %w", err)
	}
	vs, err := f.Samples()
	if err != nil {
		return nil, fmt.Errorf("could not decode samples: %w", err)
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("trace holds no sample")
	}

	m := mat.NewDense(len(ts), 2, nil)
	m.SetCol(0, ts)
	m.SetCol(1, vs)
	return m, nil
}

// TRC2NPY writes the (time, value) matrix of f to w, in the NumPy format.
func TRC2NPY(w io.Writer, f *trc.File) error {
	m, err := Matrix(f)
	if err != nil {
		return fmt.Errorf("could not build samples matrix: %w", err)
	}

	err = npyio.Write(w, m)
	if err != nil {
		return fmt.Errorf("could not write NumPy array: %w", err)
	}
	return nil
}
