// Package stroke converts stroked polylines into filled outlines.
//
// A stroke is built from two offset sides of each polyline:
//   - Forward side: offset by -width/2 along the segment normal
//   - Backward side: offset by +width/2 along the segment normal
//
// For an open polyline the outline is the forward side, the end cap, the
// reversed backward side and the start cap, as one closed subpath. A
// closed polyline yields two closed subpaths of opposite winding, so a
// non-zero fill covers only the ring between them.
//
// Joins are added on the outer side of each corner; the inner side is
// routed through the corner point so the non-zero fill stays solid.
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Style{
//	    Width:      2,
//	    Cap:        sketch.LineCapRound,
//	    Join:       sketch.LineJoinMiter,
//	    MiterLimit: sketch.DefaultMiterLimit,
//	})
//	outline := e.Expand(flatten.Path(p, sketch.Identity(), 0.1))
//
// The algorithm follows kurbo's stroke expansion (src/stroke.rs).
package stroke
