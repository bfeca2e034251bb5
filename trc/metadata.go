// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"fmt"
	"time"
)

// Field is a named descriptor value.
type Field struct {
	Name  string
	Value interface{}
}

// String returns the textual form of the value.
func (f Field) String() string {
	switch v := f.Value.(type) {
	case time.Time:
		if v.Nanosecond() == 0 {
			return v.Format("2006-01-02 15:04:05")
		}
		return v.Format("2006-01-02 15:04:05.000000")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Metadata is the ordered list of exportable descriptor fields.
type Metadata []Field

// NewMetadata collects the exportable fields of hdr and the quantities
// derived from them.
// Block sizes are left out: they only locate the payload.
// SAMPLING_FREQUENCY is left out when it is undefined.
func NewMetadata(hdr *Header) Metadata {
	md := Metadata{
		{"TEMPLATE_NAME", hdr.TemplateName},
		{"COMM_TYPE", uint16(hdr.CommType)},
		{"COMM_ORDER", uint16(hdr.CommOrder)},
		{"INSTRUMENT_NAME", hdr.InstrumentName},
		{"INSTRUMENT_NUMBER", hdr.InstrumentNumber},
		{"TRACE_LABEL", hdr.TraceLabel},
		{"USER_TEXT", hdr.UserText},
		{"PNTS_PER_SCREEN", hdr.PntsPerScreen},
		{"FIRST_VALID_PNT", hdr.FirstValidPnt},
		{"LAST_VALID_PNT", hdr.LastValidPnt},
		{"FIRST_POINT", hdr.FirstPoint},
		{"SPARSING_FACTOR", hdr.SparsingFactor},
		{"SEGMENT_INDEX", hdr.SegmentIndex},
		{"SUBARRAY_COUNT", hdr.SubarrayCount},
		{"SWEEPS_PER_ACQ", hdr.SweepsPerAcq},
		{"POINTS_PER_PAIR", hdr.PointsPerPair},
		{"PAIR_OFFSET", hdr.PairOffset},
		{"VERTICAL_GAIN", hdr.VerticalGain},
		{"VERTICAL_OFFSET", hdr.VerticalOffset},
		{"MAX_VALUE", hdr.MaxValue},
		{"MIN_VALUE", hdr.MinValue},
		{"NOMINAL_BITS", hdr.NominalBits},
		{"NOM_SUBARRAY_COUNT", hdr.NomSubarrayCount},
		{"HORIZ_INTERVAL", hdr.HorizInterval},
		{"HORIZ_OFFSET", hdr.HorizOffset},
		{"PIXEL_OFFSET", hdr.PixelOffset},
		{"VERTUNIT", hdr.VertUnit},
		{"HORUNIT", hdr.HorUnit},
		{"HORIZ_UNCERTAINTY", hdr.HorizUncertainty},
		{"TRIG_TIME", hdr.TrigTime},
		{"ACQ_DURATION", hdr.AcqDuration},
		{"RECORD_TYPE", hdr.RecordType},
		{"PROCESSING_DONE", hdr.ProcessingDone},
		{"RIS_SWEEPS", hdr.RISSweeps},
		{"TIMEBASE", hdr.Timebase},
		{"VERT_COUPLING", hdr.VertCoupling},
		{"PROBE_ATT", hdr.ProbeAtt},
		{"FIXED_VERT_GAIN", hdr.FixedVertGain},
		{"BANDWIDTH_LIMIT", hdr.BandwidthLimit},
		{"VERTICAL_VERNIER", hdr.VerticalVernier},
		{"ACQ_VERT_OFFSET", hdr.AcqVertOffset},
		{"WAVE_SOURCE", hdr.WaveSource},
		{"HIFIRST", hdr.HiFirst()},
		{"LOFIRST", hdr.LoFirst()},
	}

	if freq, err := hdr.SamplingFrequency(); err == nil {
		md = append(md, Field{"SAMPLING_FREQUENCY", freq})
	}

	return md
}

// Get returns the value of the named field.
func (md Metadata) Get(name string) (interface{}, bool) {
	for _, f := range md {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Strings returns the textual form of every field, keyed by name.
func (md Metadata) Strings() map[string]string {
	o := make(map[string]string, len(md))
	for _, f := range md {
		o[f.Name] = f.String()
	}
	return o
}
