// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"errors"
)

var (
	// ErrAnchorNotFound is returned when the WAVEDESC anchor is not
	// present in the first bytes of a trace.
	ErrAnchorNotFound = errors.New("trc: WAVEDESC anchor not found")

	// ErrTruncated is returned when the byte source holds fewer bytes
	// than a field or the sample payload requires.
	ErrTruncated = errors.New("trc: truncated source")

	// ErrUnknownEnum is returned when an enumerated descriptor field holds
	// a code with no table entry.
	ErrUnknownEnum = errors.New("trc: unknown enum code")

	// ErrMisaligned is returned when the declared wave array size is not
	// a multiple of the sample width.
	ErrMisaligned = errors.New("trc: misaligned payload")

	// ErrDomain is returned when a derived quantity is undefined.
	ErrDomain = errors.New("trc: domain error")

	// ErrShortDescriptor is returned when the declared descriptor size
	// does not cover all the fixed descriptor fields.
	ErrShortDescriptor = errors.New("trc: short descriptor")

	// ErrInvalidSize is returned when a declared block size is negative.
	ErrInvalidSize = errors.New("trc: invalid block size")

	// ErrInvalidTimestamp is returned when the trigger time holds an
	// out of range calendar field.
	ErrInvalidTimestamp = errors.New("trc: invalid timestamp")
)
