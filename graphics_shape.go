package sketch

import (
	"fmt"
	"math"
)

// BeginShape starts recording a shape of the given kind. Vertices added
// until EndShape are drawn according to the kind.
func (g *Graphics) BeginShape(kind ShapeKind) {
	if g.shape != noShape {
		fail("beginShape", fmt.Errorf("%s shape not ended: %w", g.shape, ErrShapeOpen))
	}
	if kind <= noShape || kind > QuadStrip {
		g.warn("beginShape", fmt.Sprintf("beginShape() with unknown kind %d, using POLYGON", int(kind)))
		kind = Polygon
	}
	g.shape = kind
	g.vertices.Reset()
	g.path.Reset()
	g.contour.Reset()
	g.inContour = false
	g.contourStart = false
	g.breakShape = false
	g.curveCount = 0
}

// ShapeKind returns the kind of the shape in progress, or 0 outside
// BeginShape/EndShape.
func (g *Graphics) ShapeKind() ShapeKind { return g.shape }

// VertexCount returns the number of buffered vertices of the shape in
// progress. Fixed-arity kinds drop their vertices after each primitive.
func (g *Graphics) VertexCount() int { return g.vertices.Len() }

// VertexAt returns the i-th buffered vertex of the shape in progress.
func (g *Graphics) VertexAt(i int) Vertex { return g.vertices.At(i) }

// Vertex adds a vertex to the shape in progress.
func (g *Graphics) Vertex(x, y float64) {
	g.addVertex("vertex", Vertex{X: x, Y: y, Fill: g.style.Paint.FillColor})
}

// VertexUV adds a vertex with texture coordinates. The coordinates are
// only stored with the vertex; no surface textures shapes.
func (g *Graphics) VertexUV(x, y, u, v float64) {
	g.addVertex("vertex", Vertex{X: x, Y: y, U: u, V: v, Fill: g.style.Paint.FillColor})
}

// Vertex3 is the 3D form of Vertex. It is ignored with a warning.
func (g *Graphics) Vertex3(x, y, z float64) {
	g.warnDepth("vertex")
}

func (g *Graphics) addVertex(op string, v Vertex) {
	if g.shape == noShape {
		fail(op, ErrNoShape)
	}
	if g.shape == Polygon {
		p, start := g.target()
		if start {
			p.MoveTo(v.X, v.Y)
			g.started()
		} else {
			p.LineTo(v.X, v.Y)
		}
		g.vertices.Append(v)
		return
	}

	g.curveCount = 0
	vb := g.vertices
	vb.Append(v)
	n := vb.Len()

	switch g.shape {
	case Lines:
		if n%2 == 0 {
			g.line(vb.Last(2).Point(), v.Point())
			vb.Reset()
		}
	case LineStrip, LineLoop:
		if n >= 2 {
			g.line(vb.Last(2).Point(), v.Point())
		}
	case Triangles:
		if n%3 == 0 {
			g.triangle(vb.Last(3).Point(), vb.Last(2).Point(), v.Point())
			vb.Reset()
		}
	case TriangleStrip:
		if n >= 3 {
			g.triangle(vb.Last(2).Point(), v.Point(), vb.Last(3).Point())
		}
	case TriangleFan:
		if n >= 3 {
			g.triangle(vb.At(0).Point(), vb.Last(2).Point(), v.Point())
		}
	case Quad, Quads:
		if n%4 == 0 {
			g.quad(vb.Last(4).Point(), vb.Last(3).Point(), vb.Last(2).Point(), v.Point())
			vb.Reset()
		}
	case QuadStrip:
		// 0---2---4
		// |   |   |
		// 1---3---5
		if n >= 4 && n%2 == 0 {
			g.quad(vb.Last(4).Point(), vb.Last(2).Point(), v.Point(), vb.Last(3).Point())
		}
	}
}

// target returns the path polygon vertices extend and whether the next
// vertex opens a new subpath in it.
func (g *Graphics) target() (p *Path, start bool) {
	if g.inContour {
		return g.contour, g.contourStart
	}
	return g.path, g.path.IsEmpty() || g.breakShape
}

// started clears the pending new-subpath flag of the current target.
func (g *Graphics) started() {
	if g.inContour {
		g.contourStart = false
	} else {
		g.breakShape = false
	}
}

// BreakShape makes the next polygon vertex start a new subpath instead of
// connecting to the previous one. A curve-vertex run is broken too: the
// next curve vertex starts a new spline.
func (g *Graphics) BreakShape() {
	g.breakShape = true
	g.curveCount = 0
}

// BezierVertex adds a cubic Bezier from the current point with controls
// (x2, y2), (x3, y3) ending at (x4, y4).
func (g *Graphics) BezierVertex(x2, y2, x3, y3, x4, y4 float64) {
	p := g.bezierTarget("bezierVertex")
	p.CubicTo(x2, y2, x3, y3, x4, y4)
	g.vertices.Append(Vertex{X: x4, Y: y4, Fill: g.style.Paint.FillColor})
}

// QuadraticVertex adds a quadratic Bezier from the current point with
// control (cx, cy) ending at (x3, y3).
func (g *Graphics) QuadraticVertex(cx, cy, x3, y3 float64) {
	p := g.bezierTarget("quadraticVertex")
	p.QuadTo(cx, cy, x3, y3)
	g.vertices.Append(Vertex{X: x3, Y: y3, Fill: g.style.Paint.FillColor})
}

func (g *Graphics) bezierTarget(op string) *Path {
	if g.shape != Polygon {
		fail(op, ErrBezierOutsidePolygon)
	}
	p, start := g.target()
	if g.inContour && start {
		fail(op, ErrNoCurrentPoint)
	}
	if _, ok := p.CurrentPoint(); !ok {
		fail(op, ErrNoCurrentPoint)
	}
	return p
}

// CurveVertex adds a Catmull-Rom spline vertex. The curve is drawn
// between the second and third of every four consecutive curve vertices,
// so the first and last vertices only guide the ends.
func (g *Graphics) CurveVertex(x, y float64) {
	if g.shape == noShape {
		fail("curveVertex", ErrNoShape)
	}
	if g.shape != Polygon {
		fail("curveVertex", ErrCurveOutsidePolygon)
	}

	w := &g.curveWindow
	pt := Point{X: x, Y: y}
	if g.curveCount < len(w) {
		w[g.curveCount] = pt
		g.curveCount++
	} else {
		copy(w[:], w[1:])
		w[3] = pt
	}
	if g.curveCount < len(w) {
		return
	}

	b0, b1, b2, b3 := curveToBezier(w[0], w[1], w[2], w[3], g.tightness)
	p, start := g.target()
	if start {
		p.MoveTo(b0.X, b0.Y)
		g.started()
	}
	p.CubicTo(b1.X, b1.Y, b2.X, b2.Y, b3.X, b3.Y)
}

// BeginContour starts a contour inside a polygon. Contours are drawn
// together with the outline, so with the surface's winding rule an
// oppositely wound contour cuts a hole.
func (g *Graphics) BeginContour() {
	switch {
	case g.shape == noShape:
		fail("beginContour", ErrNoShape)
	case g.shape != Polygon:
		fail("beginContour", ErrContourOutsidePolygon)
	case g.inContour:
		fail("beginContour", ErrNestedContour)
	}
	g.inContour = true
	g.contourStart = true
	g.curveCount = 0
}

// EndContour closes the contour started by BeginContour.
func (g *Graphics) EndContour() {
	if !g.inContour {
		fail("endContour", ErrNoContour)
	}
	if !g.contourStart {
		g.contour.Close()
	}
	g.inContour = false
	g.contourStart = false
	g.curveCount = 0
}

// EndShape finishes the shape in progress. Close joins the last polygon
// vertex to the first; it has no effect on other kinds.
func (g *Graphics) EndShape(mode EndMode) {
	if g.shape == noShape {
		fail("endShape", ErrNoShape)
	}
	ps := &g.style.Paint

	switch g.shape {
	case Points:
		if ps.Stroke && g.vertices.Len() > 0 {
			g.drawPoints(g.vertices.Vertices())
		}
	case Polygon:
		if g.inContour {
			g.warn("endShape", "endContour() was not called before endShape(), closing the contour")
			g.EndContour()
		}
		if mode == Close {
			g.path.Close()
		}
		if !g.contour.IsEmpty() {
			g.path.Append(g.contour)
		}
		if !g.path.IsEmpty() {
			g.drawPath(g.path)
		}
	case LineLoop:
		if n := g.vertices.Len(); n >= 2 {
			g.line(g.vertices.Last(1).Point(), g.vertices.At(0).Point())
		}
	}
	g.shape = noShape
}

// drawPoints draws vertices as points in the stroke color. One pixel
// points under an identity transform are written directly.
func (g *Graphics) drawPoints(vs []Vertex) {
	ps := &g.style.Paint
	m := g.transform.Current()
	if ps.StrokeWeight == 1 && m.IsIdentity() {
		for _, v := range vs {
			p := m.TransformPoint(v.Point())
			g.set(roundHalfUp(p.X), roundHalfUp(p.Y), ps.StrokeColor)
		}
		return
	}
	sw := ps.StrokeWeight / 2
	paint := ps.StrokeAsFill()
	for _, v := range vs {
		g.surface.DrawOval(v.X-sw, v.Y-sw, v.X+sw, v.Y+sw, paint)
	}
}

// line draws a segment if stroking is enabled.
func (g *Graphics) line(a, b Point) {
	if !g.style.Paint.Stroke {
		return
	}
	g.surface.DrawLine(a.X, a.Y, b.X, b.Y, g.style.Paint.StrokePaint())
}

func (g *Graphics) triangle(a, b, c Point) {
	p := g.scratch
	p.Reset()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	p.LineTo(c.X, c.Y)
	p.Close()
	g.drawPath(p)
}

func (g *Graphics) quad(a, b, c, d Point) {
	p := g.scratch
	p.Reset()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	p.LineTo(c.X, c.Y)
	p.LineTo(d.X, d.Y)
	p.Close()
	g.drawPath(p)
}

// drawPath fills and then strokes p with the current paint state.
func (g *Graphics) drawPath(p *Path) {
	ps := &g.style.Paint
	if ps.Fill {
		g.surface.DrawPath(p, ps.FillPaint())
	}
	if ps.Stroke {
		g.surface.DrawPath(p, ps.StrokePaint())
	}
}

// set writes a device pixel, ignoring coordinates outside the surface.
func (g *Graphics) set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.surface.SetPixel(x, y, c)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
