// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides CPU drawing surfaces for sketch.Graphics.
//
// ImageSurface renders into an *image.RGBA. Fills are rasterized with
// golang.org/x/image/vector under the non-zero rule; strokes are expanded
// into outlines in logical space first, so a scaled transform scales the
// stroke width. Bitmaps and text are composited with golang.org/x/image/draw.
//
// # Registry
//
// Backends register a factory by name and priority. Callers open one by
// name, or let Select pick the preferred backend whose Capabilities meet
// their requirements:
//
//	s, err := surface.Open("image", surface.Options{Width: 800, Height: 600})
//	name, s, err := surface.Select(opts, surface.Requirements{Text: true})
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	g := sketch.NewGraphics(s, 800, 600)
//	g.BeginDraw()
//	g.Background(sketch.White)
//	g.Ellipse(400, 300, 200, 200)
//	_ = g.EndDraw()
//
//	_ = s.SavePNG("out.png")
package surface
