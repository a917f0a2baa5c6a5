// Package mesh provides a DrawingSurface that stages geometry for a GPU
// instead of rasterizing it.
//
// Every draw call becomes a Batch over a shared triangle-list vertex
// buffer. Convex fills are fanned from their centroid and drawn in one
// pass, with an optional anti-aliasing fringe. Everything else, strokes
// included, is fanned from the first vertex of each contour and needs a
// stencil-then-cover pass: the fan triangles count the non-zero winding
// into the stencil buffer, and a cover quad over the bounds paints the
// covered pixels. Bitmaps are textured quads in a second buffer.
//
// The vertex layouts are described with gputypes so a wgpu pipeline can
// consume Vertices and TexturedVertices directly:
//
//	s := mesh.NewSurface(800, 600)
//	g := sketch.NewGraphics(s, 800, 600)
//	g.BeginDraw()
//	g.Ellipse(400, 300, 200, 200)
//	_ = g.EndDraw()
//
//	for _, b := range s.Batches() {
//		// upload s.Vertices(), bind s.Layout(), draw b.First..b.First+b.Count
//	}
//
// Text is not staged. Surfaces report SupportsText false and DrawText is
// ignored.
package mesh
