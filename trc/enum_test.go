// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnums(t *testing.T) {
	type namer interface {
		Name() (string, error)
		String() string
	}

	for _, tc := range []struct {
		v    namer
		want string
		err  error
	}{
		{v: RecordType(0), want: "single_sweep"},
		{v: RecordType(8), want: "centered_RIS"},
		{v: RecordType(9), want: "peak_detect"},
		{v: RecordType(10), err: ErrUnknownEnum},
		{v: Processing(0), want: "no_processing"},
		{v: Processing(7), want: "cumulative"},
		{v: Processing(8), err: ErrUnknownEnum},
		{v: VertCoupling(0), want: "DC_50_Ohms"},
		{v: VertCoupling(3), want: "ground"},
		{v: VertCoupling(4), want: "AC_1MOhm"},
		{v: VertCoupling(5), err: ErrUnknownEnum},
		{v: BandwidthLimit(0), want: "off"},
		{v: BandwidthLimit(1), want: "on"},
		{v: BandwidthLimit(2), err: ErrUnknownEnum},
		{v: Timebase(0), want: "1_ps/div"},
		{v: Timebase(9), want: "1_ns/div"},
		{v: Timebase(36), want: "1_s/div"},
		{v: Timebase(46), want: "2_ks/div"},
		{v: Timebase(47), err: ErrUnknownEnum},
		{v: Timebase(100), err: ErrUnknownEnum},
		{v: Timebase(1000), want: "EXTERNAL"},
		{v: FixedVertGain(0), want: "1_uV/div"},
		{v: FixedVertGain(18), want: "1_V/div"},
		{v: FixedVertGain(27), want: "1_kV/div"},
		{v: FixedVertGain(28), err: ErrUnknownEnum},
		{v: WaveSource(0), want: "CHANNEL_1"},
		{v: WaveSource(3), want: "CHANNEL_4"},
		{v: WaveSource(4), want: ""},
		{v: WaveSource(9), want: "UNKNOWN"},
		{v: WaveSource(42), want: ""},
	} {
		t.Run(fmt.Sprintf("%T-%v", tc.v, tc.v), func(t *testing.T) {
			got, err := tc.v.Name()
			switch {
			case err != nil && tc.err != nil:
				if !errors.Is(err, tc.err) {
					t.Fatalf("invalid error: got=%+v, want=%+v", err, tc.err)
				}
				return
			case err != nil && tc.err == nil:
				t.Fatalf("could not decode enum: %+v", err)
			case err == nil && tc.err != nil:
				t.Fatalf("expected an error (got=%q)", got)
			}

			if got != tc.want {
				t.Fatalf("invalid name: got=%q, want=%q", got, tc.want)
			}
			if got, want := tc.v.String(), tc.want; got != want {
				t.Fatalf("invalid string: got=%q, want=%q", got, want)
			}
		})
	}
}

func TestEnumTables(t *testing.T) {
	for _, tc := range []struct {
		e enum
		n int
	}{
		{recordTypes, 10},
		{processings, 8},
		{couplings, 5},
		{bandwidths, 2},
		{timebases, 47},
		{vertGains, 28},
	} {
		t.Run(tc.e.kind, func(t *testing.T) {
			if got, want := len(tc.e.names), tc.n; got != want {
				t.Fatalf("invalid table size: got=%d, want=%d", got, want)
			}
		})
	}
}

func TestEnumString(t *testing.T) {
	for _, tc := range []struct {
		v    fmt.Stringer
		want string
	}{
		{RecordType(10), "RECORD_TYPE(10)"},
		{Timebase(47), "TIMEBASE(47)"},
		{FixedVertGain(28), "FIXED_VERT_GAIN(28)"},
		{CommByte, "byte"},
		{CommWord, "word"},
		{CommType(3), "CommType(3)"},
		{HiFirst, "HIFIRST"},
		{LoFirst, "LOFIRST"},
		{CommOrder(256), "LOFIRST"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Fatalf("invalid string: got=%q, want=%q", got, tc.want)
			}
		})
	}
}
