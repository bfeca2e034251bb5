// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"fmt"

	"golang.org/x/xerrors"
)

// enum maps the code of an enumerated descriptor field to its symbolic name.
type enum struct {
	kind  string
	names []string
}

func (e enum) name(v uint16) (string, error) {
	if int(v) >= len(e.names) {
		return "", xerrors.Errorf("trc: invalid %s code %d: %w", e.kind, v, ErrUnknownEnum)
	}
	return e.names[v], nil
}

func (e enum) str(v uint16) string {
	name, err := e.name(v)
	if err != nil {
		return fmt.Sprintf("%s(%d)", e.kind, v)
	}
	return name
}

var (
	recordTypes = enum{
		kind: "RECORD_TYPE",
		names: []string{
			"single_sweep", "interleaved", "histogram", "graph",
			"filter_coefficient", "complex", "extrema",
			"sequence_obsolete", "centered_RIS", "peak_detect",
		},
	}

	processings = enum{
		kind: "PROCESSING_DONE",
		names: []string{
			"no_processing", "fir_filter", "interpolated", "sparsed",
			"autoscaled", "no_result", "rolling", "cumulative",
		},
	}

	couplings = enum{
		kind:  "VERT_COUPLING",
		names: []string{"DC_50_Ohms", "ground", "DC_1MOhm", "ground", "AC_1MOhm"},
	}

	bandwidths = enum{
		kind:  "BANDWIDTH_LIMIT",
		names: []string{"off", "on"},
	}

	timebases = enum{
		kind: "TIMEBASE",
		names: []string{
			"1_ps/div", "2_ps/div", "5_ps/div", "10_ps/div", "20_ps/div", "50_ps/div",
			"100_ps/div", "200_ps/div", "500_ps/div", "1_ns/div", "2_ns/div", "5_ns/div",
			"10_ns/div", "20_ns/div", "50_ns/div", "100_ns/div", "200_ns/div", "500_ns/div",
			"1_us/div", "2_us/div", "5_us/div", "10_us/div", "20_us/div", "50_us/div",
			"100_us/div", "200_us/div", "500_us/div", "1_ms/div", "2_ms/div", "5_ms/div",
			"10_ms/div", "20_ms/div", "50_ms/div", "100_ms/div", "200_ms/div", "500_ms/div",
			"1_s/div", "2_s/div", "5_s/div", "10_s/div", "20_s/div", "50_s/div",
			"100_s/div", "200_s/div", "500_s/div", "1_ks/div", "2_ks/div",
		},
	}

	vertGains = enum{
		kind: "FIXED_VERT_GAIN",
		names: []string{
			"1_uV/div", "2_uV/div", "5_uV/div", "10_uV/div", "20_uV/div", "50_uV/div",
			"100_uV/div", "200_uV/div", "500_uV/div", "1_mV/div", "2_mV/div", "5_mV/div",
			"10_mV/div", "20_mV/div", "50_mV/div", "100_mV/div", "200_mV/div", "500_mV/div",
			"1_V/div", "2_V/div", "5_V/div", "10_V/div", "20_V/div", "50_V/div",
			"100_V/div", "200_V/div", "500_V/div", "1_kV/div",
		},
	}
)

// RecordType describes the kind of acquisition stored in a trace.
type RecordType uint16

// Name returns the symbolic name of the record type.
func (v RecordType) Name() (string, error) { return recordTypes.name(uint16(v)) }
func (v RecordType) String() string        { return recordTypes.str(uint16(v)) }

// Processing describes the processing applied to the samples.
type Processing uint16

// Name returns the symbolic name of the processing.
func (v Processing) Name() (string, error) { return processings.name(uint16(v)) }
func (v Processing) String() string        { return processings.str(uint16(v)) }

// VertCoupling is the input coupling of the channel.
type VertCoupling uint16

// Name returns the symbolic name of the coupling.
func (v VertCoupling) Name() (string, error) { return couplings.name(uint16(v)) }
func (v VertCoupling) String() string        { return couplings.str(uint16(v)) }

// BandwidthLimit tells whether the bandwidth limit was on.
type BandwidthLimit uint16

// Name returns the symbolic name of the bandwidth limit.
func (v BandwidthLimit) Name() (string, error) { return bandwidths.name(uint16(v)) }
func (v BandwidthLimit) String() string        { return bandwidths.str(uint16(v)) }

// FixedVertGain is the volts-per-division setting.
type FixedVertGain uint16

// Name returns the symbolic name of the vertical gain.
func (v FixedVertGain) Name() (string, error) { return vertGains.name(uint16(v)) }
func (v FixedVertGain) String() string        { return vertGains.str(uint16(v)) }

// Timebase is the time-per-division setting.
type Timebase uint16

// TimebaseExternal is the timebase of traces clocked externally.
const TimebaseExternal Timebase = 1000

// Name returns the symbolic name of the timebase.
func (v Timebase) Name() (string, error) {
	if v == TimebaseExternal {
		return "EXTERNAL", nil
	}
	return timebases.name(uint16(v))
}

func (v Timebase) String() string {
	if v == TimebaseExternal {
		return "EXTERNAL"
	}
	return timebases.str(uint16(v))
}

// WaveSource is the channel the trace was acquired from.
//
// Codes outside the documented ones map to an empty name, they are not
// an error.
type WaveSource uint16

// Name returns the symbolic name of the wave source.
func (v WaveSource) Name() (string, error) { return v.String(), nil }

func (v WaveSource) String() string {
	switch v {
	case 0, 1, 2, 3:
		return fmt.Sprintf("CHANNEL_%d", v+1)
	case 9:
		return "UNKNOWN"
	default:
		return ""
	}
}
