// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Tolerance is the curve flattening tolerance in device pixels.
	// Zero selects the default.
	Tolerance float64
}
