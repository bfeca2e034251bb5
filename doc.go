// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lecroy holds code to read waveforms recorded by LeCroy
// oscilloscopes.
//
// The binary trace format is handled by package trc; converters to CSV,
// LCIO and NumPy files live under cmd.
package lecroy // import "github.com/go-lpc/lecroy"

import (
	"runtime/debug"
)

const modulePath = "github.com/go-lpc/lecroy"

// Version returns the version of lecroy and its checksum.
// The returned values are only valid in binaries built with module support.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	return versionOf(b)
}

func versionOf(b *debug.BuildInfo) (version, sum string) {
	if b == nil {
		return "", ""
	}

	// commands installed with "go install .../cmd/trc-dump@vX" are built
	// with lecroy as their main module.
	if b.Main.Path == modulePath {
		return b.Main.Version, b.Main.Sum
	}

	for _, m := range b.Deps {
		if m.Path == modulePath {
			return moduleVersion(m)
		}
	}
	return "", ""
}

// moduleVersion describes m, following its replacement if any.
// A local replacement without version is flagged with a trailing '*'.
func moduleVersion(m *debug.Module) (version, sum string) {
	r := m.Replace
	switch {
	case r == nil:
		return m.Version, m.Sum
	case r.Path != "" && r.Version != "":
		return r.Path + " " + r.Version, r.Sum
	case r.Version != "":
		return r.Version, r.Sum
	case r.Path != "":
		return r.Path, r.Sum
	}
	return m.Version + "*", ""
}
