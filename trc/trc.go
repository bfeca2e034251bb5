// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trc decodes LeCroy binary waveform files (.trc).
//
// A trace file holds a WAVEDESC descriptor block, optionally followed by
// a user text block and a trigger-time array, and then the raw sample
// array. All descriptor fields live at fixed offsets from the WAVEDESC
// anchor. Multi-byte values are encoded in the byte order declared by the
// file itself (COMM_ORDER).
package trc // import "github.com/go-lpc/lecroy/trc"

const (
	anchor    = "WAVEDESC"
	anchorWin = 50 // the anchor is looked up within the first 50 bytes.

	strLen  = 16 // length of fixed-size strings.
	descLen = 346
)

// descriptor offsets, relative to the WAVEDESC anchor.
const (
	offTemplateName     = 16
	offCommType         = 32
	offCommOrder        = 34
	offDescriptorSize   = 36
	offUserTextSize     = 40
	offResDesc1Size     = 44
	offTrigTimeSize     = 48
	offRISTimeSize      = 52
	offResArray1Size    = 56
	offWaveArraySize    = 60
	offInstrumentName   = 76
	offInstrumentNumber = 92
	offTraceLabel       = 96
	offPntsPerScreen    = 120
	offFirstValidPnt    = 124
	offLastValidPnt     = 128
	offFirstPoint       = 132
	offSparsingFactor   = 136
	offSegmentIndex     = 140
	offSubarrayCount    = 144
	offSweepsPerAcq     = 148
	offPointsPerPair    = 152
	offPairOffset       = 154
	offVerticalGain     = 156
	offVerticalOffset   = 160
	offMaxValue         = 164
	offMinValue         = 168
	offNominalBits      = 172
	offNomSubarrayCount = 174
	offHorizInterval    = 176
	offHorizOffset      = 180
	offPixelOffset      = 188
	offVertUnit         = 196
	offHorUnit          = 244
	offHorizUncertainty = 292
	offTrigTime         = 296
	offAcqDuration      = 312
	offRecordType       = 316
	offProcessingDone   = 318
	offRISSweeps        = 322
	offTimebase         = 324
	offVertCoupling     = 326
	offProbeAtt         = 328
	offFixedVertGain    = 332
	offBandwidthLimit   = 334
	offVerticalVernier  = 336
	offAcqVertOffset    = 340
	offWaveSource       = 344
)
