// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcnv

import (
	"fmt"
	"io"
	"log"

	"github.com/go-lpc/lecroy/trc"
	"go-hep.org/x/hep/lcio"
)

const (
	// LCIOCollection is the name of the collection holding a waveform.
	LCIOCollection = "TRC_WAVEFORM"

	lcioDetector = "LECROY"
)

// Trace is a waveform read back from an LCIO file.
type Trace struct {
	Run     int32
	Event   int32
	Meta    map[string]string
	Time    []float64
	Samples []float64
}

// TRC2LCIO writes the named trace files to w, one LCIO event per trace.
//
// Each event holds a GenericObject with two blocks of float64 (times and
// values) and carries the trace metadata as string parameters.
// A run header is written before the first event.
func TRC2LCIO(w *lcio.Writer, fnames []string, run int32, msg *log.Logger, opts ...trc.Option) error {
	err := w.WriteRunHeader(&lcio.RunHeader{
		RunNumber: run,
		Detector:  lcioDetector,
		Descr:     "LeCroy waveforms",
		Params: lcio.Params{
			Ints: map[string][]int32{
				"Traces": {int32(len(fnames))},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("could not write run header: %w", err)
	}

	for i, fname := range fnames {
		if i%100 == 0 {
			msg.Printf("processing trace %d...", i)
		}

		err := trc2lcio(w, fname, run, int32(i), opts)
		if err != nil {
			return fmt.Errorf("could not convert trace %q: %w", fname, err)
		}
	}

	return nil
}

func trc2lcio(w *lcio.Writer, fname string, run, ievt int32, opts []trc.Option) error {
	f, err := trc.Open(fname, opts...)
	if err != nil {
		return fmt.Errorf("could not open trace: %w", err)
	}
	defer f.Close()

	ts, err := f.Time()
	if err != nil {
		return fmt.Errorf("could not compute time vector: %w", err)
	}
	vs, err := f.Samples()
	if err != nil {
		return fmt.Errorf("could not decode samples: %w", err)
	}

	meta := f.Metadata().Strings()
	params := make(map[string][]string, len(meta))
	for k, v := range meta {
		params[k] = []string{v}
	}

	evt := lcio.Event{
		RunNumber:   run,
		EventNumber: ievt,
		TimeStamp:   f.TrigTime.UnixNano(),
		Detector:    lcioDetector,
		Params: lcio.Params{
			Strings: params,
		},
	}
	evt.Add(LCIOCollection, &lcio.GenericObject{
		Data: []lcio.GenericObjectData{
			{F64s: ts},
			{F64s: vs},
		},
	})

	err = w.WriteEvent(&evt)
	if err != nil {
		return fmt.Errorf("could not write event: %w", err)
	}

	return f.Close()
}

// LCIO2Traces reads back the waveforms written by TRC2LCIO.
func LCIO2Traces(r *lcio.Reader) ([]Trace, error) {
	var traces []Trace
	for r.Next() {
		evt := r.Event()
		obj, ok := evt.Get(LCIOCollection).(*lcio.GenericObject)
		if !ok || len(obj.Data) != 2 {
			return nil, fmt.Errorf("event %d has no valid %s collection", evt.EventNumber, LCIOCollection)
		}

		meta := make(map[string]string, len(evt.Params.Strings))
		for k, v := range evt.Params.Strings {
			if len(v) > 0 {
				meta[k] = v[0]
			}
		}

		traces = append(traces, Trace{
			Run:     evt.RunNumber,
			Event:   evt.EventNumber,
			Meta:    meta,
			Time:    obj.Data[0].F64s,
			Samples: obj.Data[1].F64s,
		})
	}

	err := r.Err()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not read LCIO file: %w", err)
	}

	return traces, nil
}
