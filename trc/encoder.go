// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"golang.org/x/xerrors"
)

// Encoder writes traces to an output stream.
type Encoder struct {
	w     io.Writer
	order binary.ByteOrder
	buf   []byte
	err   error
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes a trace made of hdr and the raw samples.
//
// hdr.Offset zero bytes are written before the WAVEDESC anchor.
// The user text, trigger-time array and wave array sizes are derived from
// hdr.UserText, hdr.TrigTimeArraySize and raw; a zero hdr.DescriptorSize
// stands for the size of the WAVEDESC block.
// The trigger-time array is zero-filled.
func (enc *Encoder) Encode(hdr *Header, raw []int16) error {
	if hdr == nil {
		return xerrors.Errorf("trc: could not encode nil header")
	}
	if hdr.Offset < 0 || hdr.DescriptorSize < 0 || hdr.TrigTimeArraySize < 0 {
		return xerrors.Errorf("trc: could not encode header with negative offset or size: %w", ErrInvalidSize)
	}

	enc.err = nil
	enc.order = hdr.ByteOrder()

	var (
		width = hdr.CommType.Width()
		dsize = hdr.DescriptorSize
	)
	if dsize == 0 {
		dsize = descLen
	}
	blk := int(dsize)
	if blk < descLen {
		blk = descLen
	}

	enc.write(make([]byte, hdr.Offset))

	enc.reserve(blk)
	copy(enc.buf, anchor)
	enc.putStr(offTemplateName, strLen, hdr.TemplateName)
	enc.putU16(offCommType, uint16(hdr.CommType))
	enc.putU16(offCommOrder, uint16(hdr.CommOrder))
	enc.putI32(offDescriptorSize, dsize)
	enc.putI32(offUserTextSize, int32(len(hdr.UserText)))
	enc.putI32(offResDesc1Size, hdr.ResDesc1Size)
	enc.putI32(offTrigTimeSize, hdr.TrigTimeArraySize)
	enc.putI32(offRISTimeSize, hdr.RISTimeArraySize)
	enc.putI32(offResArray1Size, hdr.ResArray1Size)
	enc.putI32(offWaveArraySize, int32(len(raw)*width))

	enc.putStr(offInstrumentName, strLen, hdr.InstrumentName)
	enc.putI32(offInstrumentNumber, hdr.InstrumentNumber)
	enc.putStr(offTraceLabel, strLen, hdr.TraceLabel)

	enc.putI32(offPntsPerScreen, hdr.PntsPerScreen)
	enc.putI32(offFirstValidPnt, hdr.FirstValidPnt)
	enc.putI32(offLastValidPnt, hdr.LastValidPnt)
	enc.putI32(offFirstPoint, hdr.FirstPoint)
	enc.putI32(offSparsingFactor, hdr.SparsingFactor)
	enc.putI32(offSegmentIndex, hdr.SegmentIndex)
	enc.putI32(offSubarrayCount, hdr.SubarrayCount)
	enc.putI32(offSweepsPerAcq, hdr.SweepsPerAcq)
	enc.putU16(offPointsPerPair, uint16(hdr.PointsPerPair))
	enc.putU16(offPairOffset, uint16(hdr.PairOffset))

	enc.putF32(offVerticalGain, hdr.VerticalGain)
	enc.putF32(offVerticalOffset, hdr.VerticalOffset)
	enc.putF32(offMaxValue, hdr.MaxValue)
	enc.putF32(offMinValue, hdr.MinValue)
	enc.putU16(offNominalBits, uint16(hdr.NominalBits))
	enc.putU16(offNomSubarrayCount, uint16(hdr.NomSubarrayCount))

	enc.putF32(offHorizInterval, hdr.HorizInterval)
	enc.putF64(offHorizOffset, hdr.HorizOffset)
	enc.putF64(offPixelOffset, hdr.PixelOffset)
	enc.putStr(offVertUnit, strLen, hdr.VertUnit)
	enc.putStr(offHorUnit, strLen, hdr.HorUnit)
	enc.putF32(offHorizUncertainty, hdr.HorizUncertainty)

	enc.putTime(offTrigTime, hdr.TrigTime)
	enc.putF32(offAcqDuration, hdr.AcqDuration)

	enc.putU16(offRecordType, uint16(hdr.RecordType))
	enc.putU16(offProcessingDone, uint16(hdr.ProcessingDone))
	enc.putU16(offRISSweeps, uint16(hdr.RISSweeps))
	enc.putU16(offTimebase, uint16(hdr.Timebase))
	enc.putU16(offVertCoupling, uint16(hdr.VertCoupling))
	enc.putF32(offProbeAtt, hdr.ProbeAtt)
	enc.putU16(offFixedVertGain, uint16(hdr.FixedVertGain))
	enc.putU16(offBandwidthLimit, uint16(hdr.BandwidthLimit))
	enc.putF32(offVerticalVernier, hdr.VerticalVernier)
	enc.putF32(offAcqVertOffset, hdr.AcqVertOffset)
	enc.putU16(offWaveSource, uint16(hdr.WaveSource))

	enc.write(enc.buf)
	enc.write([]byte(hdr.UserText))
	enc.write(make([]byte, hdr.TrigTimeArraySize))

	enc.reserve(len(raw) * width)
	switch width {
	case 1:
		for i, v := range raw {
			enc.buf[i] = byte(int8(v))
		}
	default:
		for i, v := range raw {
			enc.order.PutUint16(enc.buf[2*i:], uint16(v))
		}
	}
	enc.write(enc.buf)

	if enc.err != nil {
		return xerrors.Errorf("trc: could not encode trace: %w", enc.err)
	}
	return nil
}

func (enc *Encoder) write(p []byte) {
	if enc.err != nil {
		return
	}
	_, enc.err = enc.w.Write(p)
}

// reserve resets the scratch buffer to n zero bytes.
func (enc *Encoder) reserve(n int) {
	if cap(enc.buf) < n {
		enc.buf = make([]byte, n)
	}
	enc.buf = enc.buf[:n]
	for i := range enc.buf {
		enc.buf[i] = 0
	}
}

func (enc *Encoder) putU16(off int, v uint16) {
	enc.order.PutUint16(enc.buf[off:], v)
}

func (enc *Encoder) putI32(off int, v int32) {
	enc.order.PutUint32(enc.buf[off:], uint32(v))
}

func (enc *Encoder) putF32(off int, v float32) {
	enc.order.PutUint32(enc.buf[off:], math.Float32bits(v))
}

func (enc *Encoder) putF64(off int, v float64) {
	enc.order.PutUint64(enc.buf[off:], math.Float64bits(v))
}

func (enc *Encoder) putStr(off, n int, v string) {
	if len(v) > n {
		v = v[:n]
	}
	copy(enc.buf[off:off+n], v)
}

func (enc *Encoder) putTime(off int, t time.Time) {
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	enc.putF64(off, sec)
	enc.buf[off+8] = uint8(t.Minute())
	enc.buf[off+9] = uint8(t.Hour())
	enc.buf[off+10] = uint8(t.Day())
	enc.buf[off+11] = uint8(t.Month())
	enc.putU16(off+12, uint16(int16(t.Year())))
}
