// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xcnv provides tools to convert LeCroy traces to CSV, LCIO and
// NumPy files.
package xcnv // import "github.com/go-lpc/lecroy/internal/xcnv"

const (
	// Exporter and Author tag every exported CSV file.
	Exporter = "github.com/go-lpc/lecroy"
	Author   = "The go-lpc Authors"
)
