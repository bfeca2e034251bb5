// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"io"

	"golang.org/x/xerrors"
)

// DecodeWaveform reads the sample array described by hdr from r.
//
// At most n samples are decoded when n is positive; all of them otherwise.
// It returns the raw samples, widened to int16, and the physical values:
//
//	phys[i] = VerticalGain * raw[i] - VerticalOffset
func DecodeWaveform(r io.ReaderAt, hdr *Header, n int) (raw []int16, phys []float64, err error) {
	nsamples, err := hdr.NumSamples()
	if err != nil {
		return nil, nil, err
	}
	if n > 0 && n < nsamples {
		nsamples = n
	}

	var (
		width = hdr.CommType.Width()
		order = hdr.ByteOrder()
		size  = nsamples * width
	)

	// the declared size is only trusted once the source holds its last byte.
	if size > 0 {
		var last [1]byte
		err = readAt(r, last[:], hdr.PayloadOffset()+int64(size)-1)
		if err != nil {
			return nil, nil, xerrors.Errorf("trc: could not read WAVE_ARRAY_1 (%d bytes): %w", size, err)
		}
	}

	buf := make([]byte, size)
	err = readAt(r, buf, hdr.PayloadOffset())
	if err != nil {
		return nil, nil, xerrors.Errorf("trc: could not read WAVE_ARRAY_1: %w", err)
	}

	raw = make([]int16, nsamples)
	switch width {
	case 1:
		for i, v := range buf {
			raw[i] = int16(int8(v))
		}
	default:
		for i := range raw {
			raw[i] = int16(order.Uint16(buf[2*i:]))
		}
	}

	return raw, Calibrate(raw, hdr.VerticalGain, hdr.VerticalOffset), nil
}

// Calibrate converts raw samples to physical values.
// The gain is applied first, then the offset is subtracted.
func Calibrate(raw []int16, gain, offset float32) []float64 {
	var (
		g    = float64(gain)
		o    = float64(offset)
		phys = make([]float64, len(raw))
	)
	for i, v := range raw {
		phys[i] = g*float64(v) - o
	}
	return phys
}
