// Package sketch provides a 2D retained-path shape rendering engine with an
// immediate-mode, Processing-style drawing API.
//
// # Overview
//
// A [Graphics] accumulates beginShape/vertex/endShape sequences into paths or
// immediate primitives, applies the current paint state and affine transform,
// and hands the result to a [DrawingSurface]. The engine itself never touches
// pixels: software, recording and GPU-staging surfaces live in the surface,
// recording and mesh sub-packages.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/sketch"
//		"github.com/gogpu/sketch/surface"
//	)
//
//	canvas := surface.NewImageSurface(400, 400)
//	g := sketch.NewGraphics(canvas, 400, 400)
//
//	g.BeginDraw()
//	g.Background(g.Gray(220))
//	g.Fill(g.RGB(255, 0, 0))
//	g.BeginShape(sketch.Polygon)
//	g.Vertex(100, 100)
//	g.Vertex(300, 100)
//	g.Vertex(200, 300)
//	g.EndShape(sketch.Close)
//	g.EndDraw()
//
//	_ = canvas.SavePNG("triangle.png")
//
// # Shape kinds
//
// Fixed-arity kinds (Lines, Triangles, Quads) and strip/fan kinds (LineStrip,
// TriangleStrip, TriangleFan, QuadStrip) emit one primitive as soon as enough
// vertices are known. Polygon accumulates a path that is closed (optionally)
// and rasterized at EndShape. Points are drawn at EndShape.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles are in
// radians and increase clockwise on screen.
//
// # Errors
//
// Calls that would corrupt the shape or transform state (popping an empty
// matrix stack, vertex outside beginShape, bezierVertex before vertex) panic
// with a [*PreconditionError]. 3D calls on this 2D engine are reported once
// through the logger and ignored.
//
// # Concurrency
//
// A Graphics is owned by one goroutine. Independent Graphics values share no
// mutable state and may be used from different goroutines.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
