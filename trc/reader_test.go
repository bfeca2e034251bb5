// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestReadHeader(t *testing.T) {
	for _, tc := range []struct {
		name string
		hdr  func() Header
		raw  []int16
	}{
		{
			name: "hifirst-byte",
			hdr:  func() Header { return newHeader(HiFirst, CommByte) },
			raw:  ramp(10, -5, 1),
		},
		{
			name: "lofirst-word",
			hdr:  func() Header { return newHeader(LoFirst, CommWord) },
			raw:  ramp(10, -500, 100),
		},
		{
			name: "wrapped",
			hdr: func() Header {
				hdr := newHeader(LoFirst, CommWord)
				hdr.Offset = 11
				return hdr
			},
			raw: ramp(4, 0, 1),
		},
		{
			name: "user-text-trigtime",
			hdr: func() Header {
				hdr := newHeader(HiFirst, CommWord)
				hdr.UserText = "run 42, pulser on"
				hdr.TrigTimeArraySize = 16
				hdr.Timebase = TimebaseExternal
				hdr.WaveSource = 9
				return hdr
			},
			raw: ramp(3, 7, 7),
		},
		{
			name: "large-descriptor",
			hdr: func() Header {
				hdr := newHeader(HiFirst, CommByte)
				hdr.DescriptorSize = 400
				return hdr
			},
			raw: ramp(3, 1, 1),
		},
		{
			name: "no-samples",
			hdr:  func() Header { return newHeader(LoFirst, CommByte) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.hdr()
			raw := encode(t, want, tc.raw)

			if want.DescriptorSize == 0 {
				want.DescriptorSize = descLen
			}
			want.UserTextSize = int32(len(want.UserText))
			want.WaveArraySize = int32(len(tc.raw) * want.CommType.Width())

			got, err := ReadHeader(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("could not read header: %+v", err)
			}

			if !reflect.DeepEqual(got, want) {
				t.Fatalf("invalid header:\ngot= %+v\nwant=%+v", got, want)
			}

			if got, want := got.PayloadOffset(), int64(len(raw)-len(tc.raw)*want.CommType.Width()); got != want {
				t.Fatalf("invalid payload offset: got=%d, want=%d", got, want)
			}
		})
	}
}

func TestByteOrder(t *testing.T) {
	for _, tc := range []struct {
		name  string
		order [2]byte
		want  binary.ByteOrder
		code  CommOrder
	}{
		{"hifirst", [2]byte{0x00, 0x00}, binary.BigEndian, HiFirst},
		{"lofirst-le", [2]byte{0x01, 0x00}, binary.LittleEndian, LoFirst},
		{"lofirst-be", [2]byte{0x00, 0x01}, binary.LittleEndian, CommOrder(0x0100)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hdr := newHeader(HiFirst, CommWord)
			if tc.want == binary.LittleEndian {
				hdr.CommOrder = LoFirst
			}
			raw := encode(t, hdr, ramp(8, -4, 1000))
			copy(raw[offCommOrder:], tc.order[:])

			got, err := ReadHeader(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("could not read header: %+v", err)
			}

			if got.CommOrder != tc.code {
				t.Fatalf("invalid COMM_ORDER: got=%d, want=%d", got.CommOrder, tc.code)
			}
			if got.ByteOrder() != tc.want {
				t.Fatalf("invalid byte order: got=%v, want=%v", got.ByteOrder(), tc.want)
			}
			if got, want := got.HiFirst(), tc.code == HiFirst; got != want {
				t.Fatalf("invalid HIFIRST: got=%v, want=%v", got, want)
			}
			if got, want := got.LoFirst(), tc.code != HiFirst; got != want {
				t.Fatalf("invalid LOFIRST: got=%v, want=%v", got, want)
			}

			var (
				gain = math.Float32frombits(tc.want.Uint32(raw[offVerticalGain:]))
				dsz  = int32(tc.want.Uint32(raw[offDescriptorSize:]))
			)
			if got.VerticalGain != gain {
				t.Fatalf("invalid vertical gain: got=%v, want=%v", got.VerticalGain, gain)
			}
			if got.DescriptorSize != dsz {
				t.Fatalf("invalid descriptor size: got=%d, want=%d", got.DescriptorSize, dsz)
			}
		})
	}
}

func TestReadHeaderErrors(t *testing.T) {
	valid := func(t *testing.T) []byte {
		return encode(t, newHeader(LoFirst, CommWord), ramp(4, 0, 1))
	}

	for _, tc := range []struct {
		name string
		raw  func(t *testing.T) []byte
		want error
	}{
		{
			name: "empty",
			raw:  func(*testing.T) []byte { return nil },
			want: ErrAnchorNotFound,
		},
		{
			name: "zeros",
			raw:  func(*testing.T) []byte { return make([]byte, 50) },
			want: ErrAnchorNotFound,
		},
		{
			name: "anchor-too-far",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(HiFirst, CommByte)
				hdr.Offset = 43
				return encode(t, hdr, nil)
			},
			want: ErrAnchorNotFound,
		},
		{
			name: "anchor-only",
			raw:  func(*testing.T) []byte { return []byte("WAVEDESC") },
			want: ErrTruncated,
		},
		{
			name: "truncated-descriptor",
			raw:  func(t *testing.T) []byte { return valid(t)[:200] },
			want: ErrTruncated,
		},
		{
			name: "truncated-user-text",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(HiFirst, CommByte)
				hdr.UserText = "some long user text"
				return encode(t, hdr, nil)[:descLen+4]
			},
			want: ErrTruncated,
		},
		{
			name: "short-descriptor",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(LoFirst, CommWord)
				hdr.DescriptorSize = 300
				return encode(t, hdr, ramp(4, 0, 1))
			},
			want: ErrShortDescriptor,
		},
		{
			name: "negative-size",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(LoFirst, CommWord)
				hdr.ResDesc1Size = -1
				return encode(t, hdr, nil)
			},
			want: ErrInvalidSize,
		},
		{
			name: "record-type",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(HiFirst, CommWord)
				hdr.RecordType = 10
				return encode(t, hdr, nil)
			},
			want: ErrUnknownEnum,
		},
		{
			name: "timebase",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(HiFirst, CommWord)
				hdr.Timebase = 47
				return encode(t, hdr, nil)
			},
			want: ErrUnknownEnum,
		},
		{
			name: "bandwidth",
			raw: func(t *testing.T) []byte {
				hdr := newHeader(LoFirst, CommWord)
				hdr.BandwidthLimit = 2
				return encode(t, hdr, nil)
			},
			want: ErrUnknownEnum,
		},
		{
			name: "month",
			raw: func(t *testing.T) []byte {
				raw := valid(t)
				raw[offTrigTime+11] = 13
				return raw
			},
			want: ErrInvalidTimestamp,
		},
		{
			name: "day",
			raw: func(t *testing.T) []byte {
				raw := valid(t)
				raw[offTrigTime+10] = 31
				raw[offTrigTime+11] = 2
				return raw
			},
			want: ErrInvalidTimestamp,
		},
		{
			name: "seconds",
			raw: func(t *testing.T) []byte {
				raw := valid(t)
				binary.LittleEndian.PutUint64(raw[offTrigTime:], math.Float64bits(math.NaN()))
				return raw
			},
			want: ErrInvalidTimestamp,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hdr, err := ReadHeader(bytes.NewReader(tc.raw(t)))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("invalid error: got=%+v, want=%+v", err, tc.want)
			}
			if !reflect.DeepEqual(hdr, Header{}) {
				t.Fatalf("partial header returned: %+v", hdr)
			}
		})
	}
}
