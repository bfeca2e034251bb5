// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

import (
	"io"

	"github.com/go-lpc/lecroy/internal/mmap"
	"golang.org/x/xerrors"
)

// File is a decoded trace.
//
// The descriptor is decoded when the File is created. The samples are
// decoded on first access, or at creation with WithEager, and only once.
type File struct {
	Header

	r io.ReaderAt
	c io.Closer

	cfg config

	decoded bool
	raw     []int16
	phys    []float64
	tvec    []float64
	err     error
}

type config struct {
	limit int
	eager bool
}

// Option configures how a trace is decoded.
type Option func(*config)

// WithLimit limits the number of decoded samples to n.
// A non-positive n decodes all the samples.
func WithLimit(n int) Option {
	return func(cfg *config) {
		cfg.limit = n
	}
}

// WithEager decodes the samples when the trace is created.
func WithEager() Option {
	return func(cfg *config) {
		cfg.eager = true
	}
}

// Open memory-maps the named trace file and decodes its descriptor.
// The file stays mapped until Close is called.
func Open(fname string, opts ...Option) (*File, error) {
	h, err := mmap.Open(fname)
	if err != nil {
		return nil, xerrors.Errorf("trc: could not open %q: %w", fname, err)
	}

	f, err := NewFile(h, opts...)
	if err != nil {
		_ = h.Close()
		return nil, xerrors.Errorf("trc: could not decode %q: %w", fname, err)
	}
	f.c = h

	return f, nil
}

// NewFile decodes the descriptor of the trace held by r.
// r must remain readable until the samples have been decoded.
func NewFile(r io.ReaderAt, opts ...Option) (*File, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	f := &File{Header: hdr, r: r}
	for _, opt := range opts {
		opt(&f.cfg)
	}

	if f.cfg.eager {
		f.decode()
		if f.err != nil {
			return nil, f.err
		}
	}

	return f, nil
}

// Close releases the underlying memory-mapped file, if any.
func (f *File) Close() error {
	if f.c == nil {
		return nil
	}
	c := f.c
	f.c = nil
	return c.Close()
}

func (f *File) decode() {
	if f.decoded {
		return
	}
	f.decoded = true

	f.raw, f.phys, f.err = DecodeWaveform(f.r, &f.Header, f.cfg.limit)
	if f.err != nil {
		f.raw = nil
		f.phys = nil
		return
	}
	f.tvec = TimeVector(len(f.raw), f.HorizInterval, f.HorizOffset)
}

// Raw returns the raw samples.
func (f *File) Raw() ([]int16, error) {
	f.decode()
	return f.raw, f.err
}

// Samples returns the physical values of the samples.
func (f *File) Samples() ([]float64, error) {
	f.decode()
	return f.phys, f.err
}

// Time returns the acquisition time of each sample.
func (f *File) Time() ([]float64, error) {
	f.decode()
	return f.tvec, f.err
}

// Metadata returns the exportable descriptor fields of the trace.
func (f *File) Metadata() Metadata {
	return NewMetadata(&f.Header)
}
