package mesh

import (
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/flatten"
)

// aaExpand is the outward fringe width in pixels around convex fills.
const aaExpand = 0.5

// coverPadding grows the cover quad so fringe pixels at the path
// boundary are covered.
const coverPadding = 1.0

// distinct returns pts without consecutive duplicates or a trailing copy
// of the first point.
func distinct(pts []sketch.Point) []sketch.Point {
	out := make([]sketch.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || !p.ApproxEqual(out[len(out)-1], 1e-9) {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1].ApproxEqual(out[0], 1e-9) {
		out = out[:len(out)-1]
	}
	return out
}

// isConvex reports whether pts, treated as a closed polygon, is strictly
// convex: every turn has the same sign and the turns add up to one full
// revolution. Collinear edges are allowed.
func isConvex(pts []sketch.Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	var sign int
	var turning float64
	for i := 0; i < n; i++ {
		a := pts[(i+1)%n].Sub(pts[i])
		b := pts[(i+2)%n].Sub(pts[(i+1)%n])
		cross := a.Cross(b)
		switch {
		case cross > 1e-9:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < -1e-9:
			if sign > 0 {
				return false
			}
			sign = -1
		}
		turning += math.Atan2(cross, a.X*b.X+a.Y*b.Y)
	}
	return sign != 0 && math.Abs(math.Abs(turning)-2*math.Pi) < 1e-3
}

// convexFill appends a centroid fan over pts and, when antiAlias is set,
// a fringe quad along every edge whose coverage ramps to zero outward.
func convexFill(buf []byte, pts []sketch.Point, color [4]float32, antiAlias bool) []byte {
	n := len(pts)
	var c sketch.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Mul(1 / float64(n))
	cx, cy := float32(c.X), float32(c.Y)

	for i := 0; i < n; i++ {
		v0, v1 := pts[i], pts[(i+1)%n]
		buf = appendVertex(buf, cx, cy, 1, color)
		buf = appendVertex(buf, float32(v0.X), float32(v0.Y), 1, color)
		buf = appendVertex(buf, float32(v1.X), float32(v1.Y), 1, color)
	}
	if !antiAlias {
		return buf
	}

	for i := 0; i < n; i++ {
		v0, v1 := pts[i], pts[(i+1)%n]
		d := v1.Sub(v0)
		length := math.Hypot(d.X, d.Y)
		if length < 1e-8 {
			continue
		}
		normal := sketch.Pt(d.Y/length, -d.X/length)
		mid := v0.Add(v1).Mul(0.5)
		if normal.X*(mid.X-c.X)+normal.Y*(mid.Y-c.Y) < 0 {
			normal = normal.Mul(-1)
		}
		o0 := v0.Add(normal.Mul(aaExpand))
		o1 := v1.Add(normal.Mul(aaExpand))

		buf = appendVertex(buf, float32(v0.X), float32(v0.Y), 1, color)
		buf = appendVertex(buf, float32(v1.X), float32(v1.Y), 1, color)
		buf = appendVertex(buf, float32(o0.X), float32(o0.Y), 0, color)

		buf = appendVertex(buf, float32(v1.X), float32(v1.Y), 1, color)
		buf = appendVertex(buf, float32(o1.X), float32(o1.Y), 0, color)
		buf = appendVertex(buf, float32(o0.X), float32(o0.Y), 0, color)
	}
	return buf
}

// stencilFan appends, for every polyline, a fan of triangles anchored at
// its first point. Drawn into a stencil buffer with increment/decrement
// by facing, the fans leave the non-zero winding number of each pixel.
// Open polylines are closed implicitly, as fills are.
func stencilFan(buf []byte, lines []flatten.Polyline, color [4]float32) []byte {
	for _, pl := range lines {
		pts := pl.Points
		if len(pts) < 3 {
			continue
		}
		o := pts[0]
		for i := 1; i+1 < len(pts); i++ {
			buf = appendVertex(buf, float32(o.X), float32(o.Y), 1, color)
			buf = appendVertex(buf, float32(pts[i].X), float32(pts[i].Y), 1, color)
			buf = appendVertex(buf, float32(pts[i+1].X), float32(pts[i+1].Y), 1, color)
		}
	}
	return buf
}

// quad appends two triangles covering the rectangle.
func quad(buf []byte, r sketch.Rect, color [4]float32) []byte {
	x1, y1, x2, y2 := float32(r.X1), float32(r.Y1), float32(r.X2), float32(r.Y2)
	buf = appendVertex(buf, x1, y1, 1, color)
	buf = appendVertex(buf, x2, y1, 1, color)
	buf = appendVertex(buf, x2, y2, 1, color)

	buf = appendVertex(buf, x1, y1, 1, color)
	buf = appendVertex(buf, x2, y2, 1, color)
	buf = appendVertex(buf, x1, y2, 1, color)
	return buf
}

// coverQuad appends the padded bounding quad of lines.
func coverQuad(buf []byte, lines []flatten.Polyline, color [4]float32) []byte {
	b := flatten.Bounds(lines)
	b.X1 -= coverPadding
	b.Y1 -= coverPadding
	b.X2 += coverPadding
	b.Y2 += coverPadding
	return quad(buf, b, color)
}
