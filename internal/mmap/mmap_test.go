// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmap // import "github.com/go-lpc/lecroy/internal/mmap"

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestHandle(t *testing.T) {
	t.Run("nil-handle", func(t *testing.T) {
		var h *Handle

		_, err := h.ReadAt(nil, 0)
		if !errors.Is(err, os.ErrInvalid) {
			t.Fatalf("invalid read-at error: %+v", err)
		}

		err = h.Close()
		if !errors.Is(err, os.ErrInvalid) {
			t.Fatalf("invalid close error: %+v", err)
		}
	})
	t.Run("nil-data", func(t *testing.T) {
		var h Handle

		_, err := h.ReadAt(nil, 0)
		if !errors.Is(err, errClosed) {
			t.Fatalf("invalid read-at error: %+v", err)
		}

		err = h.Close()
		if err != nil {
			t.Fatalf("error closing nil-data handle: %+v", err)
		}
	})
}

func TestHandleFrom(t *testing.T) {
	h := HandleFrom([]byte{0, 1, 2, 3})

	if got, want := h.Len(), 4; got != want {
		t.Fatalf("invalid len: got=%d, want=%d", got, want)
	}

	if got, want := h.At(1), byte(1); got != want {
		t.Fatalf("invalid value: got=%d, want=%d", got, want)
	}

	_, err := h.ReadAt(nil, -1)
	if got, want := err.Error(), "mmap: invalid ReadAt offset -1"; got != want {
		t.Fatalf("invalid error: %+v", err)
	}

	p := make([]byte, 3)
	n, err := h.ReadAt(p, 2)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("invalid short read error: %+v", err)
	}
	if got, want := p[:n], []byte{2, 3}; !bytes.Equal(got, want) {
		t.Fatalf("invalid short read: got=%v, want=%v", got, want)
	}

	_, err = h.ReadAt(p, 4)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("invalid read-at past end error: %+v", err)
	}

	err = h.Close()
	if err != nil {
		t.Fatalf("could not close handle: %+v", err)
	}

	_, err = h.ReadAt(p, 0)
	if !errors.Is(err, errClosed) {
		t.Fatalf("invalid read-at after close error: %+v", err)
	}
}

func TestOpen(t *testing.T) {
	tmp, err := os.MkdirTemp("", "lecroy-mmap-")
	if err != nil {
		t.Fatalf("could not create tmp dir: %+v", err)
	}
	defer os.RemoveAll(tmp)

	t.Run("data", func(t *testing.T) {
		fname := filepath.Join(tmp, "data.bin")
		err := os.WriteFile(fname, []byte("WAVEDESC"), 0644)
		if err != nil {
			t.Fatalf("could not create file: %+v", err)
		}

		h, err := Open(fname)
		if err != nil {
			t.Fatalf("could not mmap file: %+v", err)
		}
		defer h.Close()

		if got, want := h.Len(), 8; got != want {
			t.Fatalf("invalid len: got=%d, want=%d", got, want)
		}

		p := make([]byte, 4)
		_, err = h.ReadAt(p, 4)
		if err != nil {
			t.Fatalf("could not read-at: %+v", err)
		}
		if got, want := string(p), "DESC"; got != want {
			t.Fatalf("invalid read-at: got=%q, want=%q", got, want)
		}

		err = h.Close()
		if err != nil {
			t.Fatalf("could not unmap file: %+v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		fname := filepath.Join(tmp, "empty.bin")
		err := os.WriteFile(fname, nil, 0644)
		if err != nil {
			t.Fatalf("could not create file: %+v", err)
		}

		h, err := Open(fname)
		if err != nil {
			t.Fatalf("could not mmap empty file: %+v", err)
		}
		defer h.Close()

		_, err = h.ReadAt(make([]byte, 1), 0)
		if !errors.Is(err, io.EOF) {
			t.Fatalf("invalid read-at error: %+v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Open(filepath.Join(tmp, "not-there.bin"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("invalid error: %+v", err)
		}
	})
}
