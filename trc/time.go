// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trc

// TimeVector returns the acquisition time of n samples spaced by interval,
// the first one being taken at offset.
func TimeVector(n int, interval float32, offset float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	var (
		dt = float64(interval)
		ts = make([]float64, n)
	)
	for i := range ts {
		ts[i] = float64(i)*dt + offset
	}
	return ts
}
