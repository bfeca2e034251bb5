// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"time"

	"golang.org/x/xerrors"
)

// ReadHeader locates the WAVEDESC descriptor held by r and decodes it.
//
// Offsets are relative to the WAVEDESC anchor, so traces embedded after a
// short wrapper are decoded as well.
func ReadHeader(r io.ReaderAt) (Header, error) {
	pos, err := locate(r)
	if err != nil {
		return Header{}, err
	}

	hdr := Header{Offset: pos}
	dec := newDecoder(r, pos)

	// COMM_ORDER is an enum, hence subject to the very byte order it
	// declares. Its observed values are 0 (identical in both orders) or a
	// non-zero value in either order: read it assuming big-endian, then
	// read it again with the order it selected.
	dec.order = binary.BigEndian
	hdr.CommOrder = CommOrder(dec.u16(offCommOrder))
	dec.order = hdr.CommOrder.ByteOrder()
	hdr.CommOrder = CommOrder(dec.u16(offCommOrder))
	dec.order = hdr.CommOrder.ByteOrder()

	hdr.TemplateName = dec.str(offTemplateName, strLen)
	hdr.CommType = CommType(dec.u16(offCommType))
	hdr.DescriptorSize = dec.i32(offDescriptorSize)
	hdr.UserTextSize = dec.i32(offUserTextSize)
	hdr.ResDesc1Size = dec.i32(offResDesc1Size)
	hdr.TrigTimeArraySize = dec.i32(offTrigTimeSize)
	hdr.RISTimeArraySize = dec.i32(offRISTimeSize)
	hdr.ResArray1Size = dec.i32(offResArray1Size)
	hdr.WaveArraySize = dec.i32(offWaveArraySize)
	if dec.err != nil {
		return Header{}, xerrors.Errorf("trc: could not read block sizes: %w", dec.err)
	}

	for _, blk := range []struct {
		name string
		size int32
	}{
		{"WAVE_DESCRIPTOR", hdr.DescriptorSize},
		{"USER_TEXT", hdr.UserTextSize},
		{"RES_DESC1", hdr.ResDesc1Size},
		{"TRIGTIME_ARRAY", hdr.TrigTimeArraySize},
		{"RIS_TIME_ARRAY", hdr.RISTimeArraySize},
		{"RES_ARRAY1", hdr.ResArray1Size},
		{"WAVE_ARRAY_1", hdr.WaveArraySize},
	} {
		if blk.size < 0 {
			return Header{}, xerrors.Errorf("trc: %s size is %d: %w", blk.name, blk.size, ErrInvalidSize)
		}
	}

	if hdr.DescriptorSize < descLen {
		return Header{}, xerrors.Errorf(
			"trc: descriptor size %d does not hold the %d bytes of WAVEDESC: %w",
			hdr.DescriptorSize, descLen, ErrShortDescriptor,
		)
	}

	hdr.InstrumentName = dec.str(offInstrumentName, strLen)
	hdr.InstrumentNumber = dec.i32(offInstrumentNumber)
	hdr.TraceLabel = dec.str(offTraceLabel, strLen)

	hdr.PntsPerScreen = dec.i32(offPntsPerScreen)
	hdr.FirstValidPnt = dec.i32(offFirstValidPnt)
	hdr.LastValidPnt = dec.i32(offLastValidPnt)
	hdr.FirstPoint = dec.i32(offFirstPoint)
	hdr.SparsingFactor = dec.i32(offSparsingFactor)
	hdr.SegmentIndex = dec.i32(offSegmentIndex)
	hdr.SubarrayCount = dec.i32(offSubarrayCount)
	hdr.SweepsPerAcq = dec.i32(offSweepsPerAcq)
	hdr.PointsPerPair = dec.i16(offPointsPerPair)
	hdr.PairOffset = dec.i16(offPairOffset)

	hdr.VerticalGain = dec.f32(offVerticalGain)
	hdr.VerticalOffset = dec.f32(offVerticalOffset)
	hdr.MaxValue = dec.f32(offMaxValue)
	hdr.MinValue = dec.f32(offMinValue)
	hdr.NominalBits = dec.i16(offNominalBits)
	hdr.NomSubarrayCount = dec.i16(offNomSubarrayCount)

	hdr.HorizInterval = dec.f32(offHorizInterval)
	hdr.HorizOffset = dec.f64(offHorizOffset)
	hdr.PixelOffset = dec.f64(offPixelOffset)
	hdr.VertUnit = dec.str(offVertUnit, strLen)
	hdr.HorUnit = dec.str(offHorUnit, strLen)
	hdr.HorizUncertainty = dec.f32(offHorizUncertainty)

	hdr.TrigTime = dec.timestamp(offTrigTime)
	hdr.AcqDuration = dec.f32(offAcqDuration)

	hdr.RecordType = RecordType(dec.u16(offRecordType))
	hdr.ProcessingDone = Processing(dec.u16(offProcessingDone))
	hdr.RISSweeps = dec.i16(offRISSweeps)
	hdr.Timebase = Timebase(dec.u16(offTimebase))
	hdr.VertCoupling = VertCoupling(dec.u16(offVertCoupling))
	hdr.ProbeAtt = dec.f32(offProbeAtt)
	hdr.FixedVertGain = FixedVertGain(dec.u16(offFixedVertGain))
	hdr.BandwidthLimit = BandwidthLimit(dec.u16(offBandwidthLimit))
	hdr.VerticalVernier = dec.f32(offVerticalVernier)
	hdr.AcqVertOffset = dec.f32(offAcqVertOffset)
	hdr.WaveSource = WaveSource(dec.u16(offWaveSource))

	if hdr.UserTextSize > 0 {
		hdr.UserText = dec.str(int64(hdr.DescriptorSize), int(hdr.UserTextSize))
	}

	if dec.err != nil {
		return Header{}, xerrors.Errorf("trc: could not decode descriptor: %w", dec.err)
	}

	for _, v := range []interface{ Name() (string, error) }{
		hdr.RecordType,
		hdr.ProcessingDone,
		hdr.Timebase,
		hdr.VertCoupling,
		hdr.FixedVertGain,
		hdr.BandwidthLimit,
		hdr.WaveSource,
	} {
		if _, err := v.Name(); err != nil {
			return Header{}, err
		}
	}

	return hdr, nil
}

// locate returns the position of the WAVEDESC anchor.
func locate(r io.ReaderAt) (int64, error) {
	buf := make([]byte, anchorWin)
	n, err := r.ReadAt(buf, 0)
	if err != nil && n < len(buf) && !errors.Is(err, io.EOF) {
		return 0, xerrors.Errorf("trc: could not read trace preamble: %w", err)
	}

	i := bytes.Index(buf[:n], []byte(anchor))
	if i < 0 {
		return 0, ErrAnchorNotFound
	}
	return int64(i), nil
}

// readAt reads exactly len(p) bytes at off.
func readAt(r io.ReaderAt, p []byte, off int64) error {
	n, err := r.ReadAt(p, off)
	switch {
	case n == len(p):
		return nil
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return xerrors.Errorf(
			"trc: could not read %d bytes at offset %d (got=%d): %w",
			len(p), off, n, ErrTruncated,
		)
	default:
		return xerrors.Errorf("trc: could not read %d bytes at offset %d: %w", len(p), off, err)
	}
}

// decoder reads descriptor fields at offsets relative to the anchor.
// The first error is sticky: subsequent reads are no-ops returning zero values.
type decoder struct {
	r     io.ReaderAt
	base  int64
	order binary.ByteOrder

	buf []byte
	err error
}

func newDecoder(r io.ReaderAt, base int64) *decoder {
	return &decoder{
		r:     r,
		base:  base,
		order: binary.BigEndian,
		buf:   make([]byte, 16),
	}
}

func (dec *decoder) load(off int64, n int) {
	if cap(dec.buf) < n {
		dec.buf = make([]byte, n)
	}
	dec.buf = dec.buf[:n]
	if dec.err != nil {
		for i := range dec.buf {
			dec.buf[i] = 0
		}
		return
	}
	dec.err = readAt(dec.r, dec.buf, dec.base+off)
}

func (dec *decoder) u8(off int64) uint8 {
	dec.load(off, 1)
	return dec.buf[0]
}

func (dec *decoder) u16(off int64) uint16 {
	dec.load(off, 2)
	return dec.order.Uint16(dec.buf)
}

func (dec *decoder) i16(off int64) int16 {
	return int16(dec.u16(off))
}

func (dec *decoder) i32(off int64) int32 {
	dec.load(off, 4)
	return int32(dec.order.Uint32(dec.buf))
}

func (dec *decoder) f32(off int64) float32 {
	dec.load(off, 4)
	return math.Float32frombits(dec.order.Uint32(dec.buf))
}

func (dec *decoder) f64(off int64) float64 {
	dec.load(off, 8)
	return math.Float64frombits(dec.order.Uint64(dec.buf))
}

// str reads a NUL-padded string of n bytes.
func (dec *decoder) str(off int64, n int) string {
	dec.load(off, n)
	if i := bytes.IndexByte(dec.buf, 0); i >= 0 {
		return string(dec.buf[:i])
	}
	return string(dec.buf)
}

// timestamp reads a trigger time: seconds as a float64, then minutes,
// hours, days and months as bytes, then the year as an int16.
// Fractional seconds are truncated to the microsecond.
func (dec *decoder) timestamp(off int64) time.Time {
	var (
		sec   = dec.f64(off)
		mins  = dec.u8(off + 8)
		hour  = dec.u8(off + 9)
		day   = dec.u8(off + 10)
		month = dec.u8(off + 11)
		year  = dec.i16(off + 12)
	)
	if dec.err != nil {
		return time.Time{}
	}

	if !(sec >= 0 && sec < 60) || mins > 59 || hour > 23 || month < 1 || month > 12 || day < 1 {
		dec.err = xerrors.Errorf(
			"trc: trigger time %04d-%02d-%02d %02d:%02d:%v out of range: %w",
			year, month, day, hour, mins, sec, ErrInvalidTimestamp,
		)
		return time.Time{}
	}

	var (
		s  = int(sec)
		us = int((sec - float64(s)) * 1e6)
		ts = time.Date(
			int(year), time.Month(month), int(day),
			int(hour), int(mins), s, us*int(time.Microsecond),
			time.UTC,
		)
	)
	if ts.Day() != int(day) {
		dec.err = xerrors.Errorf(
			"trc: trigger time %04d-%02d-%02d is not a valid date: %w",
			year, month, day, ErrInvalidTimestamp,
		)
		return time.Time{}
	}
	return ts
}
