// Package flatten converts sketch paths into polylines for rasterization.
package flatten

import (
	"math"

	"github.com/gogpu/sketch"
)

// Tolerance is the default maximum distance, in device pixels, between a
// curve and its flattened polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision, which also stops runaway recursion on
// NaN coordinates.
const maxDepth = 16

// Polyline is one flattened subpath.
type Polyline struct {
	Points []sketch.Point
	Closed bool
}

// Path flattens every subpath of p after mapping it through m. Curves are
// subdivided until they are within tolerance of their chords. Tolerances
// of zero or less use Tolerance.
func Path(p *sketch.Path, m sketch.Matrix, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	subpaths := p.Subpaths()
	out := make([]Polyline, 0, len(subpaths))
	for _, sp := range subpaths {
		var pts []sketch.Point
		for _, seg := range sp.Segments {
			switch seg.Op {
			case sketch.OpMoveTo, sketch.OpLineTo:
				pts = append(pts, m.TransformPoint(seg.Points[0]))
			case sketch.OpCubicTo:
				var p0 sketch.Point
				if len(pts) > 0 {
					p0 = pts[len(pts)-1]
				}
				pts = Cubic(pts, p0,
					m.TransformPoint(seg.Points[0]),
					m.TransformPoint(seg.Points[1]),
					m.TransformPoint(seg.Points[2]),
					tolerance)
			}
		}
		if len(pts) > 0 {
			out = append(out, Polyline{Points: pts, Closed: sp.Closed})
		}
	}
	return out
}

// Cubic appends the flattening of the cubic Bezier p0..p3 to dst,
// excluding p0, and returns the extended slice.
func Cubic(dst []sketch.Point, p0, p1, p2, p3 sketch.Point, tolerance float64) []sketch.Point {
	return cubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func cubicRec(dst []sketch.Point, p0, p1, p2, p3 sketch.Point, tolerance float64, depth int) []sketch.Point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance || depth >= maxDepth {
		return append(dst, p3)
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = cubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return cubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b sketch.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq < 1e-20 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// Bounds returns the bounding box of the polylines.
func Bounds(lines []Polyline) sketch.Rect {
	r := sketch.Rect{X1: math.Inf(1), Y1: math.Inf(1), X2: math.Inf(-1), Y2: math.Inf(-1)}
	for _, pl := range lines {
		for _, p := range pl.Points {
			r.X1 = math.Min(r.X1, p.X)
			r.Y1 = math.Min(r.Y1, p.Y)
			r.X2 = math.Max(r.X2, p.X)
			r.Y2 = math.Max(r.Y2, p.Y)
		}
	}
	if r.X1 > r.X2 {
		return sketch.Rect{}
	}
	return r
}
