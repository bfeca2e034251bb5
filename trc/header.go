// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/xerrors"
)

// CommType is the width of the stored samples.
type CommType uint16

const (
	CommByte CommType = 0 // 8-bit samples
	CommWord CommType = 1 // 16-bit samples
)

// Width returns the size in bytes of a sample.
func (ct CommType) Width() int {
	if ct == CommByte {
		return 1
	}
	return 2
}

func (ct CommType) String() string {
	switch ct {
	case CommByte:
		return "byte"
	case CommWord:
		return "word"
	default:
		return fmt.Sprintf("CommType(%d)", uint16(ct))
	}
}

// CommOrder is the byte order declared by a trace.
type CommOrder uint16

const (
	HiFirst CommOrder = 0 // big-endian
	LoFirst CommOrder = 1 // little-endian
)

// ByteOrder returns the byte order used to decode the trace.
// Any non-zero code means little-endian.
func (co CommOrder) ByteOrder() binary.ByteOrder {
	if co == HiFirst {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (co CommOrder) String() string {
	if co == HiFirst {
		return "HIFIRST"
	}
	return "LOFIRST"
}

// Header is the decoded WAVEDESC descriptor of a trace.
type Header struct {
	Offset    int64     // position of the WAVEDESC anchor in the source
	CommOrder CommOrder // byte order of the trace

	TemplateName string
	CommType     CommType

	// block sizes, in bytes.
	DescriptorSize    int32
	UserTextSize      int32
	ResDesc1Size      int32
	TrigTimeArraySize int32
	RISTimeArraySize  int32
	ResArray1Size     int32
	WaveArraySize     int32

	InstrumentName   string
	InstrumentNumber int32
	TraceLabel       string
	UserText         string

	PntsPerScreen  int32
	FirstValidPnt  int32
	LastValidPnt   int32
	FirstPoint     int32
	SparsingFactor int32
	SegmentIndex   int32
	SubarrayCount  int32
	SweepsPerAcq   int32
	PointsPerPair  int16
	PairOffset     int16

	VerticalGain     float32
	VerticalOffset   float32
	MaxValue         float32
	MinValue         float32
	NominalBits      int16
	NomSubarrayCount int16

	HorizInterval    float32
	HorizOffset      float64
	PixelOffset      float64
	VertUnit         string
	HorUnit          string
	HorizUncertainty float32

	TrigTime    time.Time
	AcqDuration float32

	RecordType      RecordType
	ProcessingDone  Processing
	RISSweeps       int16
	Timebase        Timebase
	VertCoupling    VertCoupling
	ProbeAtt        float32
	FixedVertGain   FixedVertGain
	BandwidthLimit  BandwidthLimit
	VerticalVernier float32
	AcqVertOffset   float32
	WaveSource      WaveSource
}

// ByteOrder returns the byte order of the trace.
func (hdr *Header) ByteOrder() binary.ByteOrder {
	return hdr.CommOrder.ByteOrder()
}

// PayloadOffset returns the position of the sample array in the source.
// Only the trigger-time array is skipped between the descriptor, user text
// and the samples.
func (hdr *Header) PayloadOffset() int64 {
	return hdr.Offset +
		int64(hdr.DescriptorSize) +
		int64(hdr.UserTextSize) +
		int64(hdr.TrigTimeArraySize)
}

// NumSamples returns the number of samples stored in the trace.
func (hdr *Header) NumSamples() (int, error) {
	w := hdr.CommType.Width()
	if hdr.WaveArraySize%int32(w) != 0 {
		return 0, xerrors.Errorf(
			"trc: wave array size %d is not a multiple of the sample width %d: %w",
			hdr.WaveArraySize, w, ErrMisaligned,
		)
	}
	return int(hdr.WaveArraySize) / w, nil
}

// HiFirst reports whether the trace is big-endian.
func (hdr *Header) HiFirst() bool { return hdr.CommOrder == HiFirst }

// LoFirst reports whether the trace is little-endian.
func (hdr *Header) LoFirst() bool { return !hdr.HiFirst() }

// SamplingFrequency returns the number of samples per second.
func (hdr *Header) SamplingFrequency() (float64, error) {
	if hdr.HorizInterval == 0 {
		return 0, xerrors.Errorf("trc: sampling frequency of a null horizontal interval: %w", ErrDomain)
	}
	return 1 / float64(hdr.HorizInterval), nil
}
