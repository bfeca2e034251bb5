// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"bytes"
	"testing"
	"time"
)

func newHeader(order CommOrder, ct CommType) Header {
	return Header{
		CommOrder:        order,
		TemplateName:     "LECROY_2_3",
		CommType:         ct,
		InstrumentName:   "LECROYWR104MXi",
		InstrumentNumber: 12345,
		TraceLabel:       "C1",
		PntsPerScreen:    10000,
		LastValidPnt:     9,
		SparsingFactor:   1,
		SubarrayCount:    1,
		SweepsPerAcq:     1,
		VerticalGain:     2,
		VerticalOffset:   1,
		MaxValue:         127,
		MinValue:         -128,
		NominalBits:      8,
		NomSubarrayCount: 1,
		HorizInterval:    1e-9,
		HorizOffset:      -5e-9,
		PixelOffset:      -5e-9,
		VertUnit:         "V",
		HorUnit:          "S",
		HorizUncertainty: 1e-12,
		TrigTime:         time.Date(2020, time.March, 14, 15, 9, 26, 500000000, time.UTC),
		Timebase:         9,
		VertCoupling:     2,
		ProbeAtt:         10,
		FixedVertGain:    18,
		VerticalVernier:  1,
		WaveSource:       1,
	}
}

func encode(t *testing.T, hdr Header, raw []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	err := NewEncoder(buf).Encode(&hdr, raw)
	if err != nil {
		t.Fatalf("could not encode trace: %+v", err)
	}
	return buf.Bytes()
}

func ramp(n int, start, step int16) []int16 {
	raw := make([]int16, n)
	for i := range raw {
		raw[i] = start + int16(i)*step
	}
	return raw
}
